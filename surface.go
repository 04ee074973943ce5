package presentvk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// SurfaceSupport is what a physical device reports about presenting to a surface.
type SurfaceSupport struct {
	Capabilities vk.SurfaceCapabilities
	Formats      []vk.SurfaceFormat
	PresentModes []vk.PresentMode
}

// QuerySurfaceSupport reads the capabilities, formats and present modes of
// surface on gpu.
func QuerySurfaceSupport(d Driver, gpu vk.PhysicalDevice, surface vk.Surface) (SurfaceSupport, error) {
	var support SurfaceSupport
	ret := d.GetPhysicalDeviceSurfaceCapabilities(gpu, surface, &support.Capabilities)
	if isError(ret) {
		return SurfaceSupport{}, newError(errQueryFailed, ret)
	}
	support.Capabilities.Deref()
	support.Capabilities.CurrentExtent.Deref()
	support.Capabilities.MinImageExtent.Deref()
	support.Capabilities.MaxImageExtent.Deref()

	var count uint32
	ret = d.GetPhysicalDeviceSurfaceFormats(gpu, surface, &count, nil)
	if isError(ret) {
		return SurfaceSupport{}, newError(errQueryFailed, ret)
	}
	formats := make([]vk.SurfaceFormat, count)
	ret = d.GetPhysicalDeviceSurfaceFormats(gpu, surface, &count, formats)
	if isError(ret) {
		return SurfaceSupport{}, newError(errQueryFailed, ret)
	}
	for i := range formats[:count] {
		formats[i].Deref()
	}
	support.Formats = formats[:count]

	count = 0
	ret = d.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &count, nil)
	if isError(ret) {
		return SurfaceSupport{}, newError(errQueryFailed, ret)
	}
	modes := make([]vk.PresentMode, count)
	ret = d.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &count, modes)
	if isError(ret) {
		return SurfaceSupport{}, newError(errQueryFailed, ret)
	}
	support.PresentModes = modes[:count]
	return support, nil
}

// ChooseSurfaceFormat prefers B8G8R8A8_SRGB in the sRGB non-linear color space
// and otherwise takes the first format listed.
func ChooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, bool) {
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, false
	}
	for _, f := range formats {
		if f.Format == vk.FormatB8g8r8a8Srgb && f.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return f, true
		}
	}
	return formats[0], true
}

// ChoosePresentMode prefers mailbox. FIFO is always available otherwise.
func ChoosePresentMode(modes []vk.PresentMode) vk.PresentMode {
	for _, m := range modes {
		if m == vk.PresentModeMailbox {
			return m
		}
	}
	return vk.PresentModeFifo
}

// ChooseExtent clamps the current extent per axis into [min, max].
func ChooseExtent(caps vk.SurfaceCapabilities) vk.Extent2D {
	return vk.Extent2D{
		Width:  clamp(caps.CurrentExtent.Width, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clamp(caps.CurrentExtent.Height, caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// ChooseImageCount asks for one image more than the minimum so acquisition
// never waits on the image the presentation engine holds.
func ChooseImageCount(caps vk.SurfaceCapabilities) uint32 {
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NegotiateSwapchain turns the surface support of the selected device into
// swapchain creation arguments.
func NegotiateSwapchain(support SurfaceSupport, surface vk.Surface, queues QueueFamilyIndices) (SwapchainArgs, error) {
	format, ok := ChooseSurfaceFormat(support.Formats)
	if !ok {
		return SwapchainArgs{}, errors.Wrap(ErrSwapchainCreationFailed, "surface reports no formats")
	}
	return SwapchainArgs{
		Surface:       surface,
		MinImageCount: ChooseImageCount(support.Capabilities),
		Format:        format,
		Extent:        ChooseExtent(support.Capabilities),
		PresentMode:   ChoosePresentMode(support.PresentModes),
		QueueFamilies: queues,
		PreTransform:  support.Capabilities.CurrentTransform,
	}, nil
}
