package presentvk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

var errQueryFailed = errors.New("capability query failed")

// InstanceExtensions gets a list of instance extensions available on the platform.
func InstanceExtensions(d Driver) ([]string, error) {
	var count uint32
	ret := d.EnumerateInstanceExtensionProperties("", &count, nil)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	list := make([]vk.ExtensionProperties, count)
	ret = d.EnumerateInstanceExtensionProperties("", &count, list)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	return extensionNames(list[:count]), nil
}

// InstanceLayers gets a list of instance layers available on the platform.
func InstanceLayers(d Driver) ([]string, error) {
	var count uint32
	ret := d.EnumerateInstanceLayerProperties(&count, nil)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	list := make([]vk.LayerProperties, count)
	ret = d.EnumerateInstanceLayerProperties(&count, list)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	return layerNames(list[:count]), nil
}

// DeviceExtensions gets a list of extensions available on the provided physical device.
func DeviceExtensions(d Driver, gpu vk.PhysicalDevice) ([]string, error) {
	var count uint32
	ret := d.EnumerateDeviceExtensionProperties(gpu, "", &count, nil)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	list := make([]vk.ExtensionProperties, count)
	ret = d.EnumerateDeviceExtensionProperties(gpu, "", &count, list)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	return extensionNames(list[:count]), nil
}

// DeviceLayers gets a list of layers available on the provided physical device.
func DeviceLayers(d Driver, gpu vk.PhysicalDevice) ([]string, error) {
	var count uint32
	ret := d.EnumerateDeviceLayerProperties(gpu, &count, nil)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	list := make([]vk.LayerProperties, count)
	ret = d.EnumerateDeviceLayerProperties(gpu, &count, list)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	return layerNames(list[:count]), nil
}

func extensionNames(list []vk.ExtensionProperties) []string {
	names := make([]string, 0, len(list))
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names
}

func layerNames(list []vk.LayerProperties) []string {
	names := make([]string, 0, len(list))
	for _, layer := range list {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names
}

// QueueFamily describes one queue family of a physical device.
type QueueFamily struct {
	Index uint32
	Count uint32
	Flags vk.QueueFlags
}

var queueCapabilities = []struct {
	bit  vk.QueueFlagBits
	name string
}{
	{vk.QueueGraphicsBit, "GRAPHICS"},
	{vk.QueueComputeBit, "COMPUTE"},
	{vk.QueueTransferBit, "TRANSFER"},
	{vk.QueueSparseBindingBit, "SPARSE"},
	{vk.QueueProtectedBit, "PROTECTED"},
}

// Has reports whether every bit in bit is set for the family.
func (q QueueFamily) Has(bit vk.QueueFlagBits) bool {
	return q.Flags&vk.QueueFlags(bit) == vk.QueueFlags(bit)
}

// Capabilities names the capability bits set for the family.
func (q QueueFamily) Capabilities() []string {
	var names []string
	for _, c := range queueCapabilities {
		if q.Has(c.bit) {
			names = append(names, c.name)
		}
	}
	return names
}

// PhysicalDeviceInfo is a snapshot of a physical device's static capabilities.
type PhysicalDeviceInfo struct {
	Handle        vk.PhysicalDevice
	Name          string
	Type          vk.PhysicalDeviceType
	APIVersion    uint32
	DriverVersion uint32
	Limits        vk.PhysicalDeviceLimits
	Memory        vk.PhysicalDeviceMemoryProperties
	QueueFamilies []QueueFamily
}

// PhysicalDevices enumerates the physical devices visible to instance and
// snapshots their properties and queue families.
func PhysicalDevices(d Driver, instance vk.Instance) ([]PhysicalDeviceInfo, error) {
	var count uint32
	ret := d.EnumeratePhysicalDevices(instance, &count, nil)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	gpus := make([]vk.PhysicalDevice, count)
	ret = d.EnumeratePhysicalDevices(instance, &count, gpus)
	if isError(ret) {
		return nil, newError(errQueryFailed, ret)
	}
	infos := make([]PhysicalDeviceInfo, 0, count)
	for _, gpu := range gpus[:count] {
		infos = append(infos, describeDevice(d, gpu))
	}
	return infos, nil
}

func describeDevice(d Driver, gpu vk.PhysicalDevice) PhysicalDeviceInfo {
	var props vk.PhysicalDeviceProperties
	d.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()
	props.Limits.Deref()

	var memory vk.PhysicalDeviceMemoryProperties
	d.GetPhysicalDeviceMemoryProperties(gpu, &memory)
	memory.Deref()

	var count uint32
	d.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, nil)
	list := make([]vk.QueueFamilyProperties, count)
	d.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, list)
	families := make([]QueueFamily, 0, count)
	for i := range list[:count] {
		list[i].Deref()
		families = append(families, QueueFamily{
			Index: uint32(i),
			Count: list[i].QueueCount,
			Flags: list[i].QueueFlags,
		})
	}

	return PhysicalDeviceInfo{
		Handle:        gpu,
		Name:          vk.ToString(props.DeviceName[:]),
		Type:          props.DeviceType,
		APIVersion:    props.ApiVersion,
		DriverVersion: props.DriverVersion,
		Limits:        props.Limits,
		Memory:        memory,
		QueueFamilies: families,
	}
}
