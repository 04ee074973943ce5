package presentvk

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Renderer brings up the whole presentation chain against one window and
// drives the frame loop. Resources are created top to bottom and destroyed
// bottom to top.
type Renderer struct {
	driver   Driver
	provider SurfaceProvider
	log      *slog.Logger
	report   *Reporter

	Context      GraphicsContext
	Surface      Surface
	GPU          PhysicalDeviceInfo
	Queues       QueueFamilyIndices
	Device       DeviceContext
	Swapchain    Swapchain
	Pipeline     GraphicsPipeline
	Framebuffers FrameBufferSet
	Commands     CommandBufferSet
	Sync         SyncObjects

	frames uint64
}

// NewRenderer runs the startup chain. On failure everything already created
// is destroyed in reverse order before the error is returned.
func NewRenderer(d Driver, provider SurfaceProvider, cfg Config, shaders ShaderBlobs, log *slog.Logger, report *Reporter) (*Renderer, error) {
	r := &Renderer{
		driver:   d,
		provider: provider,
		log:      orNop(log),
		report:   report,
	}
	if err := r.init(cfg, shaders); err != nil {
		r.Destroy()
		return nil, err
	}
	provider.SetResizeHandler(func(width, height int) {
		// The swapchain is not recreated on resize.
		r.log.Info("window resized", "width", width, "height", height)
	})
	return r, nil
}

func (r *Renderer) init(cfg Config, shaders ShaderBlobs) error {
	mode, err := ParseDebugReportMode(cfg.DebugReport)
	if err != nil {
		return errors.WithStack(err)
	}

	availableExtensions, err := InstanceExtensions(r.driver)
	if err != nil {
		return err
	}
	availableLayers, err := InstanceLayers(r.driver)
	if err != nil {
		return err
	}
	instanceExtensions := MergeNames(r.provider.RequiredInstanceExtensions(),
		SelectNames(availableExtensions, r.extensionSubstrings(cfg)...)...)
	if missing := MissingNames(instanceExtensions, availableExtensions); len(missing) > 0 {
		r.log.Warn("required instance extensions not enumerated", "missing", missing)
	}
	instanceLayers := r.layers(cfg, availableLayers)
	r.report.Names("Instance extensions", availableExtensions, instanceExtensions)
	r.report.Names("Instance layers", availableLayers, instanceLayers)

	r.Context, err = NewGraphicsContext(r.driver, InstanceArgs{
		AppName:     cfg.App.Name,
		AppVersion:  cfg.App.Version,
		Extensions:  instanceExtensions,
		Layers:      instanceLayers,
		DebugReport: mode,
	}, r.log)
	if err != nil {
		return err
	}

	gpus, err := PhysicalDevices(r.driver, r.Context.Instance)
	if err != nil {
		return err
	}

	r.Surface, err = NewSurface(r.driver, r.provider, r.Context.Instance)
	if err != nil {
		return err
	}

	r.GPU, r.Queues, err = SelectDevice(r.driver, gpus, r.Surface.Handle, cfg.PreferredDevice)
	r.report.Devices(gpus, r.GPU.Handle)
	if err != nil {
		return err
	}
	r.log.Info("physical device selected", "name", r.GPU.Name,
		"graphics_family", r.Queues.Graphics, "present_family", r.Queues.Present)

	deviceExtensions, err := DeviceExtensions(r.driver, r.GPU.Handle)
	if err != nil {
		return err
	}
	deviceLayers, err := DeviceLayers(r.driver, r.GPU.Handle)
	if err != nil {
		return err
	}
	enabledDeviceExtensions := SelectNames(deviceExtensions, r.extensionSubstrings(cfg)...)
	enabledDeviceLayers := r.layers(cfg, deviceLayers)
	r.report.Names("Device extensions", deviceExtensions, enabledDeviceExtensions)
	r.report.Names("Device layers", deviceLayers, enabledDeviceLayers)

	r.Device, err = NewDeviceContext(r.driver, r.GPU.Handle, DeviceArgs{
		QueueFamilyIndex: r.Queues.Graphics,
		Extensions:       enabledDeviceExtensions,
		Layers:           enabledDeviceLayers,
	})
	if err != nil {
		return err
	}

	support, err := QuerySurfaceSupport(r.driver, r.GPU.Handle, r.Surface.Handle)
	if err != nil {
		return err
	}
	args, err := NegotiateSwapchain(support, r.Surface.Handle, r.Queues)
	if err != nil {
		return err
	}
	r.Swapchain, err = NewSwapchain(r.driver, r.Device.Device, args)
	if err != nil {
		return err
	}
	r.log.Info("swapchain created", "images", len(r.Swapchain.Images),
		"width", r.Swapchain.Extent.Width, "height", r.Swapchain.Extent.Height,
		"present_mode", args.PresentMode)

	extent := r.Swapchain.Extent
	r.Pipeline, err = NewGraphicsPipeline(r.driver, r.Device.Device, PipelineArgs{
		Vert: shaders.Vertex,
		Frag: shaders.Fragment,
		Viewport: vk.Viewport{
			Width:    float32(extent.Width),
			Height:   float32(extent.Height),
			MinDepth: 0,
			MaxDepth: 1,
		},
		Scissor:     vk.Rect2D{Extent: extent},
		ColorFormat: r.Swapchain.Format,
	})
	if err != nil {
		return err
	}

	r.Framebuffers, err = NewFrameBufferSet(r.driver, r.Device.Device, FrameBufferArgs{
		RenderPass: r.Pipeline.RenderPass,
		ImageViews: r.Swapchain.ImageViews,
		Width:      extent.Width,
		Height:     extent.Height,
	})
	if err != nil {
		return err
	}

	r.Commands, err = RecordCommandBuffers(r.driver, &r.Device, &r.Pipeline, &r.Framebuffers, cfg.ClearColor)
	if err != nil {
		return err
	}

	r.Sync, err = NewSyncObjects(r.driver, r.Device.Device)
	return err
}

func (r *Renderer) extensionSubstrings(cfg Config) []string {
	if cfg.Validation {
		return []string{swapchainSubstring, debugSubstring}
	}
	return []string{swapchainSubstring}
}

func (r *Renderer) layers(cfg Config, available []string) []string {
	if !cfg.Validation {
		return nil
	}
	return SelectNames(available, validationSubstring)
}

// Frame presents one frame.
func (r *Renderer) Frame() error {
	_, err := PresentFrame(r.driver, PresentArgs{
		Device:         r.Device.Device,
		Queue:          r.Device.Queue,
		Swapchain:      r.Swapchain.Handle,
		CommandBuffers: r.Commands.Buffers,
		ImageAvailable: r.Sync.ImageAvailable,
		RenderFinished: r.Sync.RenderFinished,
	})
	if err == nil {
		r.frames++
	}
	return err
}

// Frames reports how many frames have been presented.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Run polls the window and presents frames until the window asks to close,
// ctx is cancelled or a frame fails. The device is idle when Run returns.
func (r *Renderer) Run(ctx context.Context) error {
	var runErr error
	for !r.provider.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		r.provider.PollEvents()
		if err := r.Frame(); err != nil {
			runErr = err
			break
		}
	}
	if err := r.Device.WaitIdle(); err != nil && runErr == nil {
		runErr = err
	}
	r.log.Info("render loop stopped", "frames", r.frames)
	return runErr
}

// Destroy releases everything in reverse creation order. It is safe to call
// on a partially built or already destroyed Renderer.
func (r *Renderer) Destroy() {
	r.Sync.Destroy()
	r.Commands.Free()
	r.Framebuffers.Destroy()
	r.Pipeline.Destroy()
	r.Swapchain.Destroy()
	r.Device.Destroy()
	r.Surface.Destroy()
	r.Context.Destroy()
}
