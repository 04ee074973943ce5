package presentvk

import (
	"strings"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// QueueFamilyUnset marks a queue role no family could fill.
const QueueFamilyUnset = ^uint32(0)

// QueueFamilyIndices holds the families chosen for drawing and presenting.
type QueueFamilyIndices struct {
	Graphics uint32
	Present  uint32
}

// Complete reports whether both roles have a family.
func (q QueueFamilyIndices) Complete() bool {
	return q.Graphics != QueueFamilyUnset && q.Present != QueueFamilyUnset
}

// Shared reports whether one family serves both roles.
func (q QueueFamilyIndices) Shared() bool {
	return q.Graphics == q.Present
}

// SelectQueueFamilies scans the device's families once, in index order. The
// first graphics-capable family and the first family able to present to
// surface win; the scan stops as soon as both are known.
func SelectQueueFamilies(d Driver, gpu PhysicalDeviceInfo, surface vk.Surface) QueueFamilyIndices {
	indices := QueueFamilyIndices{Graphics: QueueFamilyUnset, Present: QueueFamilyUnset}
	for _, family := range gpu.QueueFamilies {
		if indices.Graphics == QueueFamilyUnset && family.Has(vk.QueueGraphicsBit) {
			indices.Graphics = family.Index
		}
		if indices.Present == QueueFamilyUnset {
			var supported vk.Bool32
			ret := d.GetPhysicalDeviceSurfaceSupport(gpu.Handle, family.Index, surface, &supported)
			if !isError(ret) && supported.B() {
				indices.Present = family.Index
			}
		}
		if indices.Complete() {
			break
		}
	}
	return indices
}

// SelectDevice picks the first device that has both a graphics and a present
// family. Devices whose name contains preferred are tried first.
func SelectDevice(d Driver, gpus []PhysicalDeviceInfo, surface vk.Surface, preferred string) (PhysicalDeviceInfo, QueueFamilyIndices, error) {
	ordered := make([]PhysicalDeviceInfo, 0, len(gpus))
	if preferred != "" {
		for _, gpu := range gpus {
			if strings.Contains(gpu.Name, preferred) {
				ordered = append(ordered, gpu)
			}
		}
	}
	for _, gpu := range gpus {
		if preferred == "" || !strings.Contains(gpu.Name, preferred) {
			ordered = append(ordered, gpu)
		}
	}

	for _, gpu := range ordered {
		indices := SelectQueueFamilies(d, gpu, surface)
		if indices.Complete() {
			return gpu, indices, nil
		}
	}
	return PhysicalDeviceInfo{}, QueueFamilyIndices{Graphics: QueueFamilyUnset, Present: QueueFamilyUnset},
		errors.Wrapf(ErrNoSuitableDevice, "%d devices enumerated", len(gpus))
}
