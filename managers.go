package presentvk

import vk "github.com/vulkan-go/vulkan"

// SyncObjects are the two semaphores ordering a frame on the GPU:
// ImageAvailable is signalled by acquisition and waited on by the submit,
// RenderFinished is signalled by the submit and waited on by present.
type SyncObjects struct {
	driver Driver
	device vk.Device

	ImageAvailable vk.Semaphore
	RenderFinished vk.Semaphore
}

// NewSyncObjects creates both semaphores or neither.
func NewSyncObjects(d Driver, device vk.Device) (SyncObjects, error) {
	s := SyncObjects{driver: d, device: device}
	var err error
	if s.ImageAvailable, err = newSemaphore(d, device); err != nil {
		return SyncObjects{}, err
	}
	if s.RenderFinished, err = newSemaphore(d, device); err != nil {
		s.Destroy()
		return SyncObjects{}, err
	}
	return s, nil
}

func newSemaphore(d Driver, device vk.Device) (vk.Semaphore, error) {
	var semaphore vk.Semaphore
	ret := d.CreateSemaphore(device, &vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}, &semaphore)
	if isError(ret) {
		return vk.NullSemaphore, newError(ErrSemaphoreCreationFailed, ret)
	}
	return semaphore, nil
}

// Destroy releases both semaphores. It is safe to call more than once.
func (s *SyncObjects) Destroy() {
	if s.RenderFinished != vk.NullSemaphore {
		s.driver.DestroySemaphore(s.device, s.RenderFinished)
		s.RenderFinished = vk.NullSemaphore
	}
	if s.ImageAvailable != vk.NullSemaphore {
		s.driver.DestroySemaphore(s.device, s.ImageAvailable)
		s.ImageAvailable = vk.NullSemaphore
	}
}
