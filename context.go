package presentvk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// PresentArgs is everything one frame touches.
type PresentArgs struct {
	Device         vk.Device
	Queue          vk.Queue
	Swapchain      vk.Swapchain
	CommandBuffers []vk.CommandBuffer
	ImageAvailable vk.Semaphore
	RenderFinished vk.Semaphore
}

// PresentFrame acquires the next swapchain image, submits the command buffer
// recorded for it and presents it on the same queue. The three steps are
// ordered on the GPU by the two semaphores only; no fence is waited on.
// It returns the index of the presented image.
func PresentFrame(d Driver, args PresentArgs) (uint32, error) {
	var index uint32
	ret := d.AcquireNextImage(args.Device, args.Swapchain, vk.MaxUint64, args.ImageAvailable, vk.NullFence, &index)
	if isError(ret) {
		return 0, newError(ErrAcquireFailed, ret)
	}
	if int(index) >= len(args.CommandBuffers) {
		return index, errors.Wrapf(ErrAcquireFailed, "image index %d has no command buffer (%d recorded)",
			index, len(args.CommandBuffers))
	}

	// PWaitDstStageMask pairs with PWaitSemaphores: the wait happens just
	// before color attachment output.
	submitInfos := []vk.SubmitInfo{{
		SType:              vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{args.ImageAvailable},
		PWaitDstStageMask: []vk.PipelineStageFlags{
			vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{args.CommandBuffers[index]},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{args.RenderFinished},
	}}
	if ret := d.QueueSubmit(args.Queue, submitInfos, vk.NullFence); isError(ret) {
		return index, newError(ErrSubmitFailed, ret)
	}

	ret = d.QueuePresent(args.Queue, &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{args.RenderFinished},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{args.Swapchain},
		PImageIndices:      []uint32{index},
	})
	if isError(ret) {
		return index, newError(ErrPresentFailed, ret)
	}
	return index, nil
}
