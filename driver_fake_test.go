package presentvk

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// fakeDriver is an in-memory Driver. It hands out unique handles, tracks
// which are alive and records every call so tests can check ordering,
// rollback and teardown without a GPU.
type fakeDriver struct {
	calls     []string
	counts    map[string]int
	failures  map[string]fakeFailure
	live      map[uintptr]string
	created   []string
	destroyed []string
	misuse    []string
	// next is the last handle value handed out.
	next      uintptr

	instanceExtensions []string
	instanceLayers     []string
	deviceExtensions   []string
	deviceLayers       []string
	gpus               []*fakeGPU
	capabilities       vk.SurfaceCapabilities
	formats            []vk.SurfaceFormat
	presentModes       []vk.PresentMode
	// swapchainImages overrides the image count; zero means MinImageCount.
	swapchainImages uint32
	acquireIndex    uint32
	acquireResult   vk.Result
	presentResult   vk.Result
	initInstanceErr error

	instanceInfo  *vk.InstanceCreateInfo
	debugInfo     *vk.DebugReportCallbackCreateInfo
	deviceInfo    *vk.DeviceCreateInfo
	swapchainInfo *vk.SwapchainCreateInfo
	poolInfo      *vk.CommandPoolCreateInfo
	pipelineInfo  *vk.GraphicsPipelineCreateInfo
	framebuffers  []*vk.FramebufferCreateInfo
	recorded      map[uintptr][]string
	viewports     map[uintptr][]vk.Viewport
	beginInfos    []*vk.RenderPassBeginInfo
	submits       []vk.SubmitInfo
	presents      []*vk.PresentInfo
}

type fakeFailure struct {
	nth int
	ret vk.Result
}

type fakeGPU struct {
	handle vk.PhysicalDevice
	name   string
	kind   vk.PhysicalDeviceType
	// families lists the flags of each queue family in index order.
	families []vk.QueueFlags
	present  map[uint32]bool
}

func newFakeDriver() *fakeDriver {
	f := &fakeDriver{
		counts:    make(map[string]int),
		failures:  make(map[string]fakeFailure),
		live:      make(map[uintptr]string),
		recorded:  make(map[uintptr][]string),
		viewports: make(map[uintptr][]vk.Viewport),

		instanceExtensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface", "VK_EXT_debug_report", "VK_EXT_debug_utils"},
		instanceLayers:     []string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_MESA_device_select"},
		deviceExtensions:   []string{"VK_KHR_swapchain", "VK_KHR_maintenance1"},
		capabilities: vk.SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    3,
			CurrentExtent:    vk.Extent2D{Width: 800, Height: 600},
			MinImageExtent:   vk.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   vk.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: vk.SurfaceTransformIdentityBit,
		},
		formats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
			{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
			{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		},
		presentModes: []vk.PresentMode{vk.PresentModeFifo},
	}
	f.addGPU("Fake Discrete GPU", vk.PhysicalDeviceTypeDiscreteGpu, map[uint32]bool{0: true},
		vk.QueueFlags(vk.QueueGraphicsBit|vk.QueueComputeBit|vk.QueueTransferBit),
		vk.QueueFlags(vk.QueueTransferBit))
	return f
}

func (f *fakeDriver) addGPU(name string, kind vk.PhysicalDeviceType, present map[uint32]bool, families ...vk.QueueFlags) *fakeGPU {
	gpu := &fakeGPU{
		handle:   newHandle[vk.PhysicalDevice](f),
		name:     name,
		kind:     kind,
		families: families,
		present:  present,
	}
	f.gpus = append(f.gpus, gpu)
	return gpu
}

// failOn makes the nth call to name return ret. nth zero fails every call.
func (f *fakeDriver) failOn(name string, nth int, ret vk.Result) {
	f.failures[name] = fakeFailure{nth: nth, ret: ret}
}

func (f *fakeDriver) call(name string) vk.Result {
	f.calls = append(f.calls, name)
	f.counts[name]++
	if fail, ok := f.failures[name]; ok && (fail.nth == 0 || fail.nth == f.counts[name]) {
		return fail.ret
	}
	return vk.Success
}

// newHandle returns a unique non-null handle. The values never point into
// the Go heap: vulkan-go handles point to incomplete C types, and reflect
// rejects those when they hold heap addresses.
func newHandle[T any](f *fakeDriver) T {
	if f.next == 0 {
		f.next = 0x10000
	}
	f.next += 8
	n := f.next
	return *(*T)(unsafe.Pointer(&n))
}

func handleKey[T any](h T) uintptr {
	return *(*uintptr)(unsafe.Pointer(&h))
}

func track[T any](f *fakeDriver, kind string) T {
	h := newHandle[T](f)
	f.live[handleKey(h)] = kind
	f.created = append(f.created, kind)
	return h
}

func release[T any](f *fakeDriver, kind string, h T) {
	key := handleKey(h)
	got, ok := f.live[key]
	switch {
	case key == 0:
		f.misuse = append(f.misuse, fmt.Sprintf("destroy null %s", kind))
	case !ok:
		f.misuse = append(f.misuse, fmt.Sprintf("destroy unknown or released %s", kind))
	case got != kind:
		f.misuse = append(f.misuse, fmt.Sprintf("destroy %s as %s", got, kind))
	}
	delete(f.live, key)
	f.destroyed = append(f.destroyed, kind)
}

// liveKinds lists the kinds of every handle not yet destroyed.
func (f *fakeDriver) liveKinds() []string {
	var kinds []string
	for _, kind := range f.live {
		kinds = append(kinds, kind)
	}
	return kinds
}

func (f *fakeDriver) gpu(h vk.PhysicalDevice) *fakeGPU {
	for _, gpu := range f.gpus {
		if gpu.handle == h {
			return gpu
		}
	}
	return nil
}

func fixedName(name string) [256]byte {
	var out [256]byte
	copy(out[:], name)
	return out
}

func (f *fakeDriver) EnumerateInstanceExtensionProperties(layer string, count *uint32, out []vk.ExtensionProperties) vk.Result {
	if ret := f.call("EnumerateInstanceExtensionProperties"); isError(ret) {
		return ret
	}
	return fillExtensions(f.instanceExtensions, count, out)
}

func (f *fakeDriver) EnumerateInstanceLayerProperties(count *uint32, out []vk.LayerProperties) vk.Result {
	if ret := f.call("EnumerateInstanceLayerProperties"); isError(ret) {
		return ret
	}
	return fillLayers(f.instanceLayers, count, out)
}

func fillExtensions(names []string, count *uint32, out []vk.ExtensionProperties) vk.Result {
	if out == nil {
		*count = uint32(len(names))
		return vk.Success
	}
	n := min(len(out), len(names))
	for i := 0; i < n; i++ {
		out[i].ExtensionName = fixedName(names[i])
		out[i].SpecVersion = 1
	}
	*count = uint32(n)
	return vk.Success
}

func fillLayers(names []string, count *uint32, out []vk.LayerProperties) vk.Result {
	if out == nil {
		*count = uint32(len(names))
		return vk.Success
	}
	n := min(len(out), len(names))
	for i := 0; i < n; i++ {
		out[i].LayerName = fixedName(names[i])
	}
	*count = uint32(n)
	return vk.Success
}

func (f *fakeDriver) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result {
	if ret := f.call("EnumeratePhysicalDevices"); isError(ret) {
		return ret
	}
	if out == nil {
		*count = uint32(len(f.gpus))
		return vk.Success
	}
	n := 0
	for ; n < len(out) && n < len(f.gpus); n++ {
		out[n] = f.gpus[n].handle
	}
	*count = uint32(n)
	return vk.Success
}

func (f *fakeDriver) EnumerateDeviceExtensionProperties(gpu vk.PhysicalDevice, layer string, count *uint32, out []vk.ExtensionProperties) vk.Result {
	if ret := f.call("EnumerateDeviceExtensionProperties"); isError(ret) {
		return ret
	}
	return fillExtensions(f.deviceExtensions, count, out)
}

func (f *fakeDriver) EnumerateDeviceLayerProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.LayerProperties) vk.Result {
	if ret := f.call("EnumerateDeviceLayerProperties"); isError(ret) {
		return ret
	}
	return fillLayers(f.deviceLayers, count, out)
}

func (f *fakeDriver) GetPhysicalDeviceProperties(h vk.PhysicalDevice, out *vk.PhysicalDeviceProperties) {
	f.call("GetPhysicalDeviceProperties")
	gpu := f.gpu(h)
	*out = vk.PhysicalDeviceProperties{
		ApiVersion:    vk.MakeVersion(1, 3, 250),
		DriverVersion: 42,
		DeviceType:    gpu.kind,
		DeviceName:    fixedName(gpu.name),
	}
}

func (f *fakeDriver) GetPhysicalDeviceMemoryProperties(gpu vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties) {
	f.call("GetPhysicalDeviceMemoryProperties")
	*out = vk.PhysicalDeviceMemoryProperties{MemoryTypeCount: 1, MemoryHeapCount: 1}
}

func (f *fakeDriver) GetPhysicalDeviceQueueFamilyProperties(h vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties) {
	f.call("GetPhysicalDeviceQueueFamilyProperties")
	gpu := f.gpu(h)
	if out == nil {
		*count = uint32(len(gpu.families))
		return
	}
	n := 0
	for ; n < len(out) && n < len(gpu.families); n++ {
		out[n] = vk.QueueFamilyProperties{QueueFlags: gpu.families[n], QueueCount: 4}
	}
	*count = uint32(n)
}

func (f *fakeDriver) GetPhysicalDeviceSurfaceSupport(h vk.PhysicalDevice, family uint32, surface vk.Surface, out *vk.Bool32) vk.Result {
	if ret := f.call("GetPhysicalDeviceSurfaceSupport"); isError(ret) {
		return ret
	}
	*out = vk.Bool32(vk.False)
	if f.gpu(h).present[family] {
		*out = vk.Bool32(vk.True)
	}
	return vk.Success
}

func (f *fakeDriver) GetPhysicalDeviceSurfaceCapabilities(gpu vk.PhysicalDevice, surface vk.Surface, out *vk.SurfaceCapabilities) vk.Result {
	if ret := f.call("GetPhysicalDeviceSurfaceCapabilities"); isError(ret) {
		return ret
	}
	*out = f.capabilities
	return vk.Success
}

func (f *fakeDriver) GetPhysicalDeviceSurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result {
	if ret := f.call("GetPhysicalDeviceSurfaceFormats"); isError(ret) {
		return ret
	}
	if out == nil {
		*count = uint32(len(f.formats))
		return vk.Success
	}
	*count = uint32(copy(out, f.formats))
	return vk.Success
}

func (f *fakeDriver) GetPhysicalDeviceSurfacePresentModes(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.PresentMode) vk.Result {
	if ret := f.call("GetPhysicalDeviceSurfacePresentModes"); isError(ret) {
		return ret
	}
	if out == nil {
		*count = uint32(len(f.presentModes))
		return vk.Success
	}
	*count = uint32(copy(out, f.presentModes))
	return vk.Success
}

func (f *fakeDriver) CreateInstance(info *vk.InstanceCreateInfo, out *vk.Instance) vk.Result {
	f.instanceInfo = info
	if ret := f.call("CreateInstance"); isError(ret) {
		return ret
	}
	*out = track[vk.Instance](f, "Instance")
	return vk.Success
}

func (f *fakeDriver) InitInstance(instance vk.Instance) error {
	f.call("InitInstance")
	return f.initInstanceErr
}

func (f *fakeDriver) DestroyInstance(instance vk.Instance) {
	f.call("DestroyInstance")
	release(f, "Instance", instance)
}

func (f *fakeDriver) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, out *vk.DebugReportCallback) vk.Result {
	f.debugInfo = info
	if ret := f.call("CreateDebugReportCallback"); isError(ret) {
		return ret
	}
	*out = track[vk.DebugReportCallback](f, "DebugReportCallback")
	return vk.Success
}

func (f *fakeDriver) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	f.call("DestroyDebugReportCallback")
	release(f, "DebugReportCallback", callback)
}

func (f *fakeDriver) createSurface() vk.Surface {
	f.call("CreateSurface")
	return track[vk.Surface](f, "Surface")
}

func (f *fakeDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	f.call("DestroySurface")
	release(f, "Surface", surface)
}

func (f *fakeDriver) CreateDevice(gpu vk.PhysicalDevice, info *vk.DeviceCreateInfo, out *vk.Device) vk.Result {
	f.deviceInfo = info
	if ret := f.call("CreateDevice"); isError(ret) {
		return ret
	}
	*out = track[vk.Device](f, "Device")
	return vk.Success
}

func (f *fakeDriver) DestroyDevice(device vk.Device) {
	f.call("DestroyDevice")
	release(f, "Device", device)
}

func (f *fakeDriver) GetDeviceQueue(device vk.Device, family, index uint32, out *vk.Queue) {
	f.call("GetDeviceQueue")
	*out = newHandle[vk.Queue](f)
}

func (f *fakeDriver) DeviceWaitIdle(device vk.Device) vk.Result {
	return f.call("DeviceWaitIdle")
}

func (f *fakeDriver) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, out *vk.CommandPool) vk.Result {
	f.poolInfo = info
	if ret := f.call("CreateCommandPool"); isError(ret) {
		return ret
	}
	*out = track[vk.CommandPool](f, "CommandPool")
	return vk.Success
}

func (f *fakeDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	f.call("DestroyCommandPool")
	release(f, "CommandPool", pool)
}

func (f *fakeDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, out *vk.Swapchain) vk.Result {
	f.swapchainInfo = info
	if ret := f.call("CreateSwapchain"); isError(ret) {
		return ret
	}
	*out = track[vk.Swapchain](f, "Swapchain")
	return vk.Success
}

func (f *fakeDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	f.call("DestroySwapchain")
	release(f, "Swapchain", swapchain)
}

func (f *fakeDriver) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, out []vk.Image) vk.Result {
	if ret := f.call("GetSwapchainImages"); isError(ret) {
		return ret
	}
	n := f.swapchainImages
	if n == 0 && f.swapchainInfo != nil {
		n = f.swapchainInfo.MinImageCount
	}
	if out == nil {
		*count = n
		return vk.Success
	}
	i := uint32(0)
	for ; i < n && int(i) < len(out); i++ {
		out[i] = newHandle[vk.Image](f)
	}
	*count = i
	return vk.Success
}

func (f *fakeDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, out *vk.ImageView) vk.Result {
	if ret := f.call("CreateImageView"); isError(ret) {
		return ret
	}
	*out = track[vk.ImageView](f, "ImageView")
	return vk.Success
}

func (f *fakeDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	f.call("DestroyImageView")
	release(f, "ImageView", view)
}

func (f *fakeDriver) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, out *vk.ShaderModule) vk.Result {
	if ret := f.call("CreateShaderModule"); isError(ret) {
		return ret
	}
	*out = track[vk.ShaderModule](f, "ShaderModule")
	return vk.Success
}

func (f *fakeDriver) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	f.call("DestroyShaderModule")
	release(f, "ShaderModule", module)
}

func (f *fakeDriver) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, out *vk.PipelineLayout) vk.Result {
	if ret := f.call("CreatePipelineLayout"); isError(ret) {
		return ret
	}
	*out = track[vk.PipelineLayout](f, "PipelineLayout")
	return vk.Success
}

func (f *fakeDriver) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	f.call("DestroyPipelineLayout")
	release(f, "PipelineLayout", layout)
}

func (f *fakeDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, out *vk.RenderPass) vk.Result {
	if ret := f.call("CreateRenderPass"); isError(ret) {
		return ret
	}
	*out = track[vk.RenderPass](f, "RenderPass")
	return vk.Success
}

func (f *fakeDriver) DestroyRenderPass(device vk.Device, pass vk.RenderPass) {
	f.call("DestroyRenderPass")
	release(f, "RenderPass", pass)
}

func (f *fakeDriver) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, out []vk.Pipeline) vk.Result {
	if len(infos) > 0 {
		f.pipelineInfo = &infos[0]
	}
	if ret := f.call("CreateGraphicsPipelines"); isError(ret) {
		return ret
	}
	for i := range infos {
		out[i] = track[vk.Pipeline](f, "Pipeline")
	}
	return vk.Success
}

func (f *fakeDriver) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	f.call("DestroyPipeline")
	release(f, "Pipeline", pipeline)
}

func (f *fakeDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, out *vk.Framebuffer) vk.Result {
	f.framebuffers = append(f.framebuffers, info)
	if ret := f.call("CreateFramebuffer"); isError(ret) {
		return ret
	}
	*out = track[vk.Framebuffer](f, "Framebuffer")
	return vk.Success
}

func (f *fakeDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	f.call("DestroyFramebuffer")
	release(f, "Framebuffer", framebuffer)
}

func (f *fakeDriver) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, out []vk.CommandBuffer) vk.Result {
	if ret := f.call("AllocateCommandBuffers"); isError(ret) {
		return ret
	}
	if int(info.CommandBufferCount) > len(out) {
		return vk.ErrorInitializationFailed
	}
	for i := uint32(0); i < info.CommandBufferCount; i++ {
		out[i] = track[vk.CommandBuffer](f, "CommandBuffer")
	}
	return vk.Success
}

func (f *fakeDriver) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer) {
	f.call("FreeCommandBuffers")
	for _, cmd := range buffers {
		release(f, "CommandBuffer", cmd)
	}
}

func (f *fakeDriver) record(cmd vk.CommandBuffer, op string) {
	key := handleKey(cmd)
	f.recorded[key] = append(f.recorded[key], op)
}

func (f *fakeDriver) BeginCommandBuffer(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	if ret := f.call("BeginCommandBuffer"); isError(ret) {
		return ret
	}
	f.record(cmd, "Begin")
	return vk.Success
}

func (f *fakeDriver) EndCommandBuffer(cmd vk.CommandBuffer) vk.Result {
	if ret := f.call("EndCommandBuffer"); isError(ret) {
		return ret
	}
	f.record(cmd, "End")
	return vk.Success
}

func (f *fakeDriver) CmdBeginRenderPass(cmd vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	f.call("CmdBeginRenderPass")
	f.beginInfos = append(f.beginInfos, info)
	f.record(cmd, "BeginRenderPass")
}

func (f *fakeDriver) CmdBindPipeline(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	f.call("CmdBindPipeline")
	f.record(cmd, "BindPipeline")
}

func (f *fakeDriver) CmdSetViewport(cmd vk.CommandBuffer, first uint32, viewports []vk.Viewport) {
	f.call("CmdSetViewport")
	f.viewports[handleKey(cmd)] = append(f.viewports[handleKey(cmd)], viewports...)
	f.record(cmd, "SetViewport")
}

func (f *fakeDriver) CmdSetLineWidth(cmd vk.CommandBuffer, width float32) {
	f.call("CmdSetLineWidth")
	f.record(cmd, "SetLineWidth")
}

func (f *fakeDriver) CmdDraw(cmd vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	f.call("CmdDraw")
	f.record(cmd, fmt.Sprintf("Draw(%d,%d,%d,%d)", vertexCount, instanceCount, firstVertex, firstInstance))
}

func (f *fakeDriver) CmdEndRenderPass(cmd vk.CommandBuffer) {
	f.call("CmdEndRenderPass")
	f.record(cmd, "EndRenderPass")
}

func (f *fakeDriver) CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo, out *vk.Semaphore) vk.Result {
	if ret := f.call("CreateSemaphore"); isError(ret) {
		return ret
	}
	*out = track[vk.Semaphore](f, "Semaphore")
	return vk.Success
}

func (f *fakeDriver) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	f.call("DestroySemaphore")
	release(f, "Semaphore", semaphore)
}

func (f *fakeDriver) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result {
	if ret := f.call("AcquireNextImage"); isError(ret) {
		return ret
	}
	*index = f.acquireIndex
	return f.acquireResult
}

func (f *fakeDriver) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	f.submits = append(f.submits, submits...)
	return f.call("QueueSubmit")
}

func (f *fakeDriver) QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	f.presents = append(f.presents, info)
	if ret := f.call("QueuePresent"); isError(ret) {
		return ret
	}
	return f.presentResult
}

// fakeProvider is a SurfaceProvider backed by a fakeDriver.
type fakeProvider struct {
	driver      *fakeDriver
	extensions  []string
	createErr   error
	nullSurface bool
	// closeAfter makes ShouldClose report true once this many events were
	// polled. Negative never closes.
	closeAfter int
	polls      int
	resize     func(width, height int)
}

func newFakeProvider(d *fakeDriver) *fakeProvider {
	return &fakeProvider{
		driver:     d,
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		closeAfter: -1,
	}
}

func (p *fakeProvider) RequiredInstanceExtensions() []string {
	return p.extensions
}

func (p *fakeProvider) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	if p.createErr != nil {
		return vk.NullSurface, p.createErr
	}
	if p.nullSurface {
		return vk.NullSurface, nil
	}
	return p.driver.createSurface(), nil
}

func (p *fakeProvider) ShouldClose() bool {
	return p.closeAfter >= 0 && p.polls >= p.closeAfter
}

func (p *fakeProvider) PollEvents() {
	p.polls++
}

func (p *fakeProvider) SetResizeHandler(fn func(width, height int)) {
	p.resize = fn
}

var errFakeWindow = errors.New("window system unavailable")
