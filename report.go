package presentvk

import (
	"fmt"
	"io"
	"slices"
	"strings"

	vk "github.com/vulkan-go/vulkan"
)

// Reporter writes the human readable enumeration of what the driver offers.
// A nil Reporter writes nothing.
type Reporter struct {
	w      io.Writer
	Indent string
	Rule   string
}

// NewReporter returns a Reporter writing to w with tab indentation.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, Indent: "\t", Rule: strings.Repeat("-", 40)}
}

// Names lists names under title, marking those in used.
func (r *Reporter) Names(title string, names, used []string) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "%s (%d)\n%s\n", title, len(names), r.Rule)
	for _, name := range names {
		if slices.Contains(used, name) {
			fmt.Fprintf(r.w, "%s%s USED\n", r.Indent, name)
			continue
		}
		fmt.Fprintf(r.w, "%s%s\n", r.Indent, name)
	}
	fmt.Fprintln(r.w)
}

// Devices lists each physical device with its queue families, marking the
// selected device.
func (r *Reporter) Devices(gpus []PhysicalDeviceInfo, selected vk.PhysicalDevice) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "Physical devices (%d)\n%s\n", len(gpus), r.Rule)
	for i, gpu := range gpus {
		mark := ""
		if selected != nil && gpu.Handle == selected {
			mark = " USED"
		}
		fmt.Fprintf(r.w, "%s[%d] %s (%s, api %s)%s\n", r.Indent, i, gpu.Name,
			DeviceTypeName(gpu.Type), VersionString(gpu.APIVersion), mark)
		for _, family := range gpu.QueueFamilies {
			fmt.Fprintf(r.w, "%s%squeue family %d: %d queues %s\n", r.Indent, r.Indent,
				family.Index, family.Count, strings.Join(family.Capabilities(), "|"))
		}
	}
	fmt.Fprintln(r.w)
}

// DeviceTypeName names a physical device type.
func DeviceTypeName(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual"
	case vk.PhysicalDeviceTypeCpu:
		return "cpu"
	default:
		return "other"
	}
}

// VersionString formats a packed Vulkan version as major.minor.patch.
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}
