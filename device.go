package presentvk

import vk "github.com/vulkan-go/vulkan"

// DeviceArgs describes the logical device to create.
type DeviceArgs struct {
	QueueFamilyIndex uint32
	Extensions       []string
	Layers           []string
}

// DeviceContext owns the logical device, its single queue and a command pool
// on the same family. Buffers from CommandPool must only be submitted to Queue.
type DeviceContext struct {
	driver Driver

	Device           vk.Device
	Queue            vk.Queue
	QueueFamilyIndex uint32
	CommandPool      vk.CommandPool
}

// NewDeviceContext creates the device with one queue at priority 1.0 and its
// command pool. The device is destroyed if the pool cannot be created.
func NewDeviceContext(d Driver, gpu vk.PhysicalDevice, args DeviceArgs) (DeviceContext, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: args.QueueFamilyIndex,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	var device vk.Device
	ret := d.CreateDevice(gpu, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(args.Extensions)),
		PpEnabledExtensionNames: safeStrings(args.Extensions),
		EnabledLayerCount:       uint32(len(args.Layers)),
		PpEnabledLayerNames:     safeStrings(args.Layers),
	}, &device)
	if isError(ret) {
		return DeviceContext{}, newError(ErrDeviceCreationFailed, ret)
	}

	var queue vk.Queue
	d.GetDeviceQueue(device, args.QueueFamilyIndex, 0, &queue)

	pool, err := newCommandPool(d, device, args.QueueFamilyIndex)
	if err != nil {
		d.DestroyDevice(device)
		return DeviceContext{}, err
	}

	return DeviceContext{
		driver:           d,
		Device:           device,
		Queue:            queue,
		QueueFamilyIndex: args.QueueFamilyIndex,
		CommandPool:      pool,
	}, nil
}

// WaitIdle blocks until the device has finished all submitted work.
func (c *DeviceContext) WaitIdle() error {
	if c.Device == nil {
		return nil
	}
	if ret := c.driver.DeviceWaitIdle(c.Device); isError(ret) {
		return newError(ErrWaitIdleFailed, ret)
	}
	return nil
}

// Destroy releases the command pool, then the device.
func (c *DeviceContext) Destroy() {
	if c.CommandPool != vk.NullCommandPool {
		c.driver.DestroyCommandPool(c.Device, c.CommandPool)
		c.CommandPool = vk.NullCommandPool
	}
	if c.Device != nil {
		c.driver.DestroyDevice(c.Device)
		c.Device = nil
		c.Queue = nil
	}
}
