package presentvk

import (
	"fmt"
	"strings"

	vk "github.com/vulkan-go/vulkan"
)

// Engine identity reported to the driver by every GraphicsContext.
const (
	EngineName    = "presentvk"
	EngineVersion = 1
)

// APIVersion is the Vulkan API version requested at instance creation.
var APIVersion = vk.MakeVersion(1, 2, 0)

// Name fragments used to pick extensions and layers out of the enumerated lists.
const (
	swapchainSubstring  = "swapchain"
	debugSubstring      = "debug"
	validationSubstring = "validation"
)

// DebugReportMode selects which validation messages reach the log.
type DebugReportMode uint32

const (
	// DebugReportVerbose forwards debug, warning and error reports.
	DebugReportVerbose DebugReportMode = iota
	// DebugReportErrors forwards error reports only.
	DebugReportErrors
)

// Flags returns the report mask handed to the driver.
func (m DebugReportMode) Flags() vk.DebugReportFlags {
	if m == DebugReportErrors {
		return vk.DebugReportFlags(vk.DebugReportErrorBit)
	}
	return vk.DebugReportFlags(vk.DebugReportDebugBit | vk.DebugReportWarningBit | vk.DebugReportErrorBit)
}

func (m DebugReportMode) String() string {
	if m == DebugReportErrors {
		return "errors"
	}
	return "verbose"
}

// ParseDebugReportMode maps "verbose" or "errors" to a DebugReportMode.
func ParseDebugReportMode(s string) (DebugReportMode, error) {
	switch strings.ToLower(s) {
	case "", "verbose":
		return DebugReportVerbose, nil
	case "errors", "error":
		return DebugReportErrors, nil
	}
	return DebugReportVerbose, fmt.Errorf("unknown debug report mode %q", s)
}
