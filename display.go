package presentvk

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// SurfaceProvider is the windowing collaborator: it owns the native window,
// knows which instance extensions presentation needs and pumps input events.
type SurfaceProvider interface {
	RequiredInstanceExtensions() []string
	CreateSurface(instance vk.Instance) (vk.Surface, error)
	ShouldClose() bool
	PollEvents()
	SetResizeHandler(fn func(width, height int))
}

// Surface is a presentable target created by a SurfaceProvider.
type Surface struct {
	driver   Driver
	instance vk.Instance

	Handle vk.Surface
}

// NewSurface asks the provider for a surface bound to instance.
func NewSurface(d Driver, provider SurfaceProvider, instance vk.Instance) (Surface, error) {
	handle, err := provider.CreateSurface(instance)
	if err != nil {
		return Surface{}, errors.Wrapf(ErrSurfaceCreationFailed, "%v", err)
	}
	if handle == vk.NullSurface {
		return Surface{}, errors.Wrap(ErrSurfaceCreationFailed, "provider returned a null surface")
	}
	return Surface{driver: d, instance: instance, Handle: handle}, nil
}

// Destroy releases the surface. It is safe to call more than once.
func (s *Surface) Destroy() {
	if s.Handle == vk.NullSurface {
		return
	}
	s.driver.DestroySurface(s.instance, s.Handle)
	s.Handle = vk.NullSurface
}
