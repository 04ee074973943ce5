// Package window provides a glfw backed presentvk.SurfaceProvider.
//
// glfw must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread in an init function.
package window

import (
	"context"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Init starts glfw and loads the Vulkan entry points through it.
func Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw reports no Vulkan loader")
	}
	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		glfw.Terminate()
		return errors.Wrap(err, "vulkan init")
	}
	return nil
}

// Terminate shuts glfw down. Every Window must be destroyed first.
func Terminate() {
	glfw.Terminate()
}

// Config describes the window to open.
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
}

// Window is a client-API-less glfw window presenting through Vulkan.
type Window struct {
	handle *glfw.Window
	log    *slog.Logger
}

// New opens a window. Init must have succeeded.
func New(cfg Config, log *slog.Logger) (*Window, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	log = orNop(log)
	log.Debug("window opened", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
	return &Window{handle: handle, log: log}, nil
}

// RequiredInstanceExtensions lists the instance extensions presentation needs on this platform.
func (w *Window) RequiredInstanceExtensions() []string {
	return w.handle.GetRequiredInstanceExtensions()
}

// CreateSurface creates a Vulkan surface for the window.
func (w *Window) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	ptr, err := w.handle.CreateWindowSurface(instance, nil)
	if err != nil {
		return vk.NullSurface, errors.Wrap(err, "create window surface")
	}
	return vk.SurfaceFromPointer(ptr), nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SetResizeHandler calls fn with the new size whenever the window is resized.
func (w *Window) SetResizeHandler(fn func(width, height int)) {
	w.handle.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Destroy closes the window.
func (w *Window) Destroy() {
	if w.handle == nil {
		return
	}
	w.handle.Destroy()
	w.handle = nil
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func orNop(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(nopHandler{})
	}
	return log
}
