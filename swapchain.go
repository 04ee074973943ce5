package presentvk

import vk "github.com/vulkan-go/vulkan"

// SwapchainArgs carries the negotiated swapchain parameters.
type SwapchainArgs struct {
	Surface       vk.Surface
	MinImageCount uint32
	Format        vk.SurfaceFormat
	Extent        vk.Extent2D
	PresentMode   vk.PresentMode
	QueueFamilies QueueFamilyIndices
	PreTransform  vk.SurfaceTransformFlagBits
}

// Swapchain owns the swapchain handle and one view per swapchain image.
// Images belong to the swapchain and are never destroyed individually.
type Swapchain struct {
	driver Driver
	device vk.Device

	Handle     vk.Swapchain
	Format     vk.Format
	ColorSpace vk.ColorSpace
	Extent     vk.Extent2D
	Images     []vk.Image
	ImageViews []vk.ImageView
}

// NewSwapchain creates the swapchain, fetches its images and creates a color
// view for each. Nothing is left behind on failure.
func NewSwapchain(d Driver, device vk.Device, args SwapchainArgs) (Swapchain, error) {
	info := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          args.Surface,
		MinImageCount:    args.MinImageCount,
		ImageFormat:      args.Format.Format,
		ImageColorSpace:  args.Format.ColorSpace,
		ImageExtent:      args.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		PreTransform:     args.PreTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      args.PresentMode,
		Clipped:          vk.True,
	}
	if args.QueueFamilies.Shared() {
		info.ImageSharingMode = vk.SharingModeExclusive
	} else {
		families := []uint32{args.QueueFamilies.Graphics, args.QueueFamilies.Present}
		info.ImageSharingMode = vk.SharingModeConcurrent
		info.QueueFamilyIndexCount = uint32(len(families))
		info.PQueueFamilyIndices = families
	}

	var handle vk.Swapchain
	ret := d.CreateSwapchain(device, &info, &handle)
	if isError(ret) {
		return Swapchain{}, newError(ErrSwapchainCreationFailed, ret)
	}
	sc := Swapchain{
		driver:     d,
		device:     device,
		Handle:     handle,
		Format:     args.Format.Format,
		ColorSpace: args.Format.ColorSpace,
		Extent:     args.Extent,
	}

	// The driver may hand back more images than requested.
	var count uint32
	ret = d.GetSwapchainImages(device, handle, &count, nil)
	if isError(ret) {
		sc.Destroy()
		return Swapchain{}, newError(ErrSwapchainCreationFailed, ret)
	}
	images := make([]vk.Image, count)
	ret = d.GetSwapchainImages(device, handle, &count, images)
	if isError(ret) {
		sc.Destroy()
		return Swapchain{}, newError(ErrSwapchainCreationFailed, ret)
	}
	sc.Images = images[:count]

	sc.ImageViews = make([]vk.ImageView, 0, len(sc.Images))
	for _, image := range sc.Images {
		view, err := newColorView(d, device, image, sc.Format)
		if err != nil {
			sc.Destroy()
			return Swapchain{}, err
		}
		sc.ImageViews = append(sc.ImageViews, view)
	}
	return sc, nil
}

func newColorView(d Driver, device vk.Device, image vk.Image, format vk.Format) (vk.ImageView, error) {
	var view vk.ImageView
	ret := d.CreateImageView(device, &vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image,
		ViewType: vk.ImageViewType2d,
		Format:   format,
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
			LevelCount: 1,
			LayerCount: 1,
		},
	}, &view)
	if isError(ret) {
		return vk.NullImageView, newError(ErrImageViewCreationFailed, ret)
	}
	return view, nil
}

// Destroy releases the image views, newest first, then the swapchain.
func (s *Swapchain) Destroy() {
	for i := len(s.ImageViews) - 1; i >= 0; i-- {
		if s.ImageViews[i] != vk.NullImageView {
			s.driver.DestroyImageView(s.device, s.ImageViews[i])
		}
	}
	s.ImageViews = nil
	s.Images = nil
	if s.Handle != vk.NullSwapchain {
		s.driver.DestroySwapchain(s.device, s.Handle)
		s.Handle = vk.NullSwapchain
	}
}
