package presentvk

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// InstanceArgs describes the connection to open with the driver.
type InstanceArgs struct {
	AppName    string
	AppVersion uint32
	// Extensions and Layers are enabled verbatim.
	Extensions  []string
	Layers      []string
	DebugReport DebugReportMode
}

// GraphicsContext owns the Vulkan instance and, when a validation layer is
// enabled, the debug report callback routed to the logger.
type GraphicsContext struct {
	driver Driver

	Instance      vk.Instance
	DebugCallback vk.DebugReportCallback
	Extensions    []string
	Layers        []string
}

// NewGraphicsContext creates the instance. If the debug report callback
// cannot be registered the returned context still holds the live instance and
// the caller is responsible for destroying it.
func NewGraphicsContext(d Driver, args InstanceArgs, log *slog.Logger) (GraphicsContext, error) {
	log = orNop(log)
	ctx := GraphicsContext{
		driver:     d,
		Extensions: append([]string(nil), args.Extensions...),
		Layers:     append([]string(nil), args.Layers...),
	}

	var instance vk.Instance
	ret := d.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			ApiVersion:         uint32(APIVersion),
			ApplicationVersion: args.AppVersion,
			PApplicationName:   safeString(args.AppName),
			EngineVersion:      EngineVersion,
			PEngineName:        safeString(EngineName),
		},
		EnabledExtensionCount:   uint32(len(args.Extensions)),
		PpEnabledExtensionNames: safeStrings(args.Extensions),
		EnabledLayerCount:       uint32(len(args.Layers)),
		PpEnabledLayerNames:     safeStrings(args.Layers),
	}, &instance)
	if isError(ret) {
		return GraphicsContext{}, newError(ErrContextCreationFailed, ret)
	}
	ctx.Instance = instance
	if err := d.InitInstance(instance); err != nil {
		ctx.Destroy()
		return GraphicsContext{}, errors.Wrapf(ErrContextCreationFailed, "load instance functions: %v", err)
	}
	log.Info("vulkan instance created",
		"extensions", len(args.Extensions), "layers", len(args.Layers))

	if !hasValidationLayer(args.Layers) {
		return ctx, nil
	}
	var callback vk.DebugReportCallback
	ret = d.CreateDebugReportCallback(instance, &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       args.DebugReport.Flags(),
		PfnCallback: debugReportFunc(log),
	}, &callback)
	if isError(ret) {
		return ctx, newError(ErrDiagnosticChannelCreationFailed, ret)
	}
	ctx.DebugCallback = callback
	log.Debug("debug report callback enabled", "mode", args.DebugReport.String())
	return ctx, nil
}

// Destroy tears down the debug callback, then the instance.
func (c *GraphicsContext) Destroy() {
	if c.DebugCallback != vk.NullDebugReportCallback {
		c.driver.DestroyDebugReportCallback(c.Instance, c.DebugCallback)
		c.DebugCallback = vk.NullDebugReportCallback
	}
	if c.Instance != nil {
		c.driver.DestroyInstance(c.Instance)
		c.Instance = nil
	}
}

func debugReportFunc(log *slog.Logger) vk.DebugReportCallbackFunc {
	return func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
		object uint64, location uint, messageCode int32, pLayerPrefix string,
		pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

		log.Log(context.Background(), debugReportLevel(flags), "validation layer: "+pMessage,
			"layer", pLayerPrefix, "code", messageCode)
		return vk.Bool32(vk.False)
	}
}

func debugReportLevel(flags vk.DebugReportFlags) slog.Level {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return slog.LevelError
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return slog.LevelWarn
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
