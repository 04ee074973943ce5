package presentvk

import vk "github.com/vulkan-go/vulkan"

// newCommandPool creates a pool on family. Buffers are long lived and never
// reset one by one, so no creation flags are set.
func newCommandPool(d Driver, device vk.Device, family uint32) (vk.CommandPool, error) {
	var pool vk.CommandPool
	ret := d.CreateCommandPool(device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: family,
	}, &pool)
	if isError(ret) {
		return vk.NullCommandPool, newError(ErrCommandPoolCreationFailed, ret)
	}
	return pool, nil
}
