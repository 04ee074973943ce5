package presentvk

import vk "github.com/vulkan-go/vulkan"

// DefaultClearColor is opaque black.
var DefaultClearColor = [4]float32{0, 0, 0, 1}

// CommandBufferSet holds one pre-recorded primary command buffer per framebuffer.
type CommandBufferSet struct {
	driver Driver
	device vk.Device
	pool   vk.CommandPool

	Buffers []vk.CommandBuffer
}

// RecordCommandBuffers allocates one primary buffer per framebuffer and
// records the fixed draw into each. Buffers are recorded once and replayed
// every frame.
//
// On a recording failure the returned set still lists the allocated buffers
// so the caller can Free them.
func RecordCommandBuffers(d Driver, device *DeviceContext, pipeline *GraphicsPipeline, framebuffers *FrameBufferSet, clearColor [4]float32) (CommandBufferSet, error) {
	set := CommandBufferSet{
		driver: d,
		device: device.Device,
		pool:   device.CommandPool,
	}
	if len(framebuffers.Handles) == 0 {
		return set, nil
	}
	buffers := make([]vk.CommandBuffer, len(framebuffers.Handles))
	ret := d.AllocateCommandBuffers(device.Device, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        device.CommandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(len(buffers)),
	}, buffers)
	if isError(ret) {
		return CommandBufferSet{}, newError(ErrCommandBufferAllocationFailed, ret)
	}
	set.Buffers = buffers

	renderArea := vk.Rect2D{
		Extent: vk.Extent2D{
			Width:  uint32(pipeline.Viewport.Width),
			Height: uint32(pipeline.Viewport.Height),
		},
	}
	clearValues := []vk.ClearValue{vk.NewClearValue(clearColor[:])}

	for i, cmd := range buffers {
		ret := d.BeginCommandBuffer(cmd, &vk.CommandBufferBeginInfo{
			SType: vk.StructureTypeCommandBufferBeginInfo,
			Flags: vk.CommandBufferUsageFlags(vk.CommandBufferUsageSimultaneousUseBit),
		})
		if isError(ret) {
			return set, newError(ErrCommandBufferRecordingFailed, ret)
		}

		d.CmdBeginRenderPass(cmd, &vk.RenderPassBeginInfo{
			SType:           vk.StructureTypeRenderPassBeginInfo,
			RenderPass:      pipeline.RenderPass,
			Framebuffer:     framebuffers.Handles[i],
			RenderArea:      renderArea,
			ClearValueCount: uint32(len(clearValues)),
			PClearValues:    clearValues,
		}, vk.SubpassContentsInline)
		d.CmdBindPipeline(cmd, vk.PipelineBindPointGraphics, pipeline.Handle)
		// Both dynamic states the pipeline declares must be set before drawing.
		d.CmdSetViewport(cmd, 0, []vk.Viewport{pipeline.Viewport})
		d.CmdSetLineWidth(cmd, 1.0)
		d.CmdDraw(cmd, 6, 1, 0, 0)
		d.CmdEndRenderPass(cmd)

		if ret := d.EndCommandBuffer(cmd); isError(ret) {
			return set, newError(ErrCommandBufferRecordingFailed, ret)
		}
	}
	return set, nil
}

// Free returns the buffers to their pool.
func (s *CommandBufferSet) Free() {
	if len(s.Buffers) == 0 {
		return
	}
	s.driver.FreeCommandBuffers(s.device, s.pool, s.Buffers)
	s.Buffers = nil
}
