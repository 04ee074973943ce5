package presentvk

import vk "github.com/vulkan-go/vulkan"

// FrameBufferArgs binds the swapchain views to a render pass.
type FrameBufferArgs struct {
	RenderPass vk.RenderPass
	ImageViews []vk.ImageView
	Width      uint32
	Height     uint32
}

// FrameBufferSet owns one framebuffer per swapchain image view.
type FrameBufferSet struct {
	driver Driver
	device vk.Device

	Handles []vk.Framebuffer
}

// NewFrameBufferSet creates a single attachment framebuffer per view. If one
// fails, those created so far are destroyed.
func NewFrameBufferSet(d Driver, device vk.Device, args FrameBufferArgs) (FrameBufferSet, error) {
	set := FrameBufferSet{
		driver:  d,
		device:  device,
		Handles: make([]vk.Framebuffer, 0, len(args.ImageViews)),
	}
	for _, view := range args.ImageViews {
		var framebuffer vk.Framebuffer
		ret := d.CreateFramebuffer(device, &vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      args.RenderPass,
			AttachmentCount: 1,
			PAttachments:    []vk.ImageView{view},
			Width:           args.Width,
			Height:          args.Height,
			Layers:          1,
		}, &framebuffer)
		if isError(ret) {
			set.Destroy()
			return FrameBufferSet{}, newError(ErrFramebufferCreationFailed, ret)
		}
		set.Handles = append(set.Handles, framebuffer)
	}
	return set, nil
}

// Destroy releases every non-null framebuffer.
func (s *FrameBufferSet) Destroy() {
	for _, framebuffer := range s.Handles {
		if framebuffer != vk.NullFramebuffer {
			s.driver.DestroyFramebuffer(s.device, framebuffer)
		}
	}
	s.Handles = nil
}
