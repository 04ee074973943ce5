package presentvk

import vk "github.com/vulkan-go/vulkan"

// Driver is the subset of the Vulkan API used to bring up and drive the
// presentation chain. Every call mirrors the vk function of the same name
// with the allocation callbacks dropped.
type Driver interface {
	EnumerateInstanceExtensionProperties(layer string, count *uint32, out []vk.ExtensionProperties) vk.Result
	EnumerateInstanceLayerProperties(count *uint32, out []vk.LayerProperties) vk.Result
	EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result
	EnumerateDeviceExtensionProperties(gpu vk.PhysicalDevice, layer string, count *uint32, out []vk.ExtensionProperties) vk.Result
	EnumerateDeviceLayerProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.LayerProperties) vk.Result
	GetPhysicalDeviceProperties(gpu vk.PhysicalDevice, out *vk.PhysicalDeviceProperties)
	GetPhysicalDeviceMemoryProperties(gpu vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties)
	GetPhysicalDeviceQueueFamilyProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties)
	GetPhysicalDeviceSurfaceSupport(gpu vk.PhysicalDevice, family uint32, surface vk.Surface, out *vk.Bool32) vk.Result
	GetPhysicalDeviceSurfaceCapabilities(gpu vk.PhysicalDevice, surface vk.Surface, out *vk.SurfaceCapabilities) vk.Result
	GetPhysicalDeviceSurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result
	GetPhysicalDeviceSurfacePresentModes(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.PresentMode) vk.Result

	CreateInstance(info *vk.InstanceCreateInfo, out *vk.Instance) vk.Result
	InitInstance(instance vk.Instance) error
	DestroyInstance(instance vk.Instance)
	CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, out *vk.DebugReportCallback) vk.Result
	DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback)
	DestroySurface(instance vk.Instance, surface vk.Surface)

	CreateDevice(gpu vk.PhysicalDevice, info *vk.DeviceCreateInfo, out *vk.Device) vk.Result
	DestroyDevice(device vk.Device)
	GetDeviceQueue(device vk.Device, family, index uint32, out *vk.Queue)
	DeviceWaitIdle(device vk.Device) vk.Result
	CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, out *vk.CommandPool) vk.Result
	DestroyCommandPool(device vk.Device, pool vk.CommandPool)

	CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, out *vk.Swapchain) vk.Result
	DestroySwapchain(device vk.Device, swapchain vk.Swapchain)
	GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, out []vk.Image) vk.Result
	CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, out *vk.ImageView) vk.Result
	DestroyImageView(device vk.Device, view vk.ImageView)

	CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, out *vk.ShaderModule) vk.Result
	DestroyShaderModule(device vk.Device, module vk.ShaderModule)
	CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, out *vk.PipelineLayout) vk.Result
	DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout)
	CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, out *vk.RenderPass) vk.Result
	DestroyRenderPass(device vk.Device, pass vk.RenderPass)
	CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, out []vk.Pipeline) vk.Result
	DestroyPipeline(device vk.Device, pipeline vk.Pipeline)
	CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, out *vk.Framebuffer) vk.Result
	DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer)

	AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, out []vk.CommandBuffer) vk.Result
	FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer)
	BeginCommandBuffer(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result
	EndCommandBuffer(cmd vk.CommandBuffer) vk.Result
	CmdBeginRenderPass(cmd vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents)
	CmdBindPipeline(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline)
	CmdSetViewport(cmd vk.CommandBuffer, first uint32, viewports []vk.Viewport)
	CmdSetLineWidth(cmd vk.CommandBuffer, width float32)
	CmdDraw(cmd vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	CmdEndRenderPass(cmd vk.CommandBuffer)

	CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo, out *vk.Semaphore) vk.Result
	DestroySemaphore(device vk.Device, semaphore vk.Semaphore)
	AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result
	QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result
	QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result
}

// NewDriver returns the Driver backed by the loaded Vulkan library.
// vk.Init must have succeeded before any call is made through it.
func NewDriver() Driver {
	return vulkanDriver{}
}

type vulkanDriver struct{}

func (vulkanDriver) EnumerateInstanceExtensionProperties(layer string, count *uint32, out []vk.ExtensionProperties) vk.Result {
	return vk.EnumerateInstanceExtensionProperties(layer, count, out)
}

func (vulkanDriver) EnumerateInstanceLayerProperties(count *uint32, out []vk.LayerProperties) vk.Result {
	return vk.EnumerateInstanceLayerProperties(count, out)
}

func (vulkanDriver) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result {
	return vk.EnumeratePhysicalDevices(instance, count, out)
}

func (vulkanDriver) EnumerateDeviceExtensionProperties(gpu vk.PhysicalDevice, layer string, count *uint32, out []vk.ExtensionProperties) vk.Result {
	return vk.EnumerateDeviceExtensionProperties(gpu, layer, count, out)
}

func (vulkanDriver) EnumerateDeviceLayerProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.LayerProperties) vk.Result {
	return vk.EnumerateDeviceLayerProperties(gpu, count, out)
}

func (vulkanDriver) GetPhysicalDeviceProperties(gpu vk.PhysicalDevice, out *vk.PhysicalDeviceProperties) {
	vk.GetPhysicalDeviceProperties(gpu, out)
}

func (vulkanDriver) GetPhysicalDeviceMemoryProperties(gpu vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties) {
	vk.GetPhysicalDeviceMemoryProperties(gpu, out)
}

func (vulkanDriver) GetPhysicalDeviceQueueFamilyProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties) {
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, count, out)
}

func (vulkanDriver) GetPhysicalDeviceSurfaceSupport(gpu vk.PhysicalDevice, family uint32, surface vk.Surface, out *vk.Bool32) vk.Result {
	return vk.GetPhysicalDeviceSurfaceSupport(gpu, family, surface, out)
}

func (vulkanDriver) GetPhysicalDeviceSurfaceCapabilities(gpu vk.PhysicalDevice, surface vk.Surface, out *vk.SurfaceCapabilities) vk.Result {
	return vk.GetPhysicalDeviceSurfaceCapabilities(gpu, surface, out)
}

func (vulkanDriver) GetPhysicalDeviceSurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result {
	return vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, count, out)
}

func (vulkanDriver) GetPhysicalDeviceSurfacePresentModes(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.PresentMode) vk.Result {
	return vk.GetPhysicalDeviceSurfacePresentModes(gpu, surface, count, out)
}

func (vulkanDriver) CreateInstance(info *vk.InstanceCreateInfo, out *vk.Instance) vk.Result {
	return vk.CreateInstance(info, nil, out)
}

func (vulkanDriver) InitInstance(instance vk.Instance) error {
	return vk.InitInstance(instance)
}

func (vulkanDriver) DestroyInstance(instance vk.Instance) {
	vk.DestroyInstance(instance, nil)
}

func (vulkanDriver) CreateDebugReportCallback(instance vk.Instance, info *vk.DebugReportCallbackCreateInfo, out *vk.DebugReportCallback) vk.Result {
	return vk.CreateDebugReportCallback(instance, info, nil, out)
}

func (vulkanDriver) DestroyDebugReportCallback(instance vk.Instance, callback vk.DebugReportCallback) {
	vk.DestroyDebugReportCallback(instance, callback, nil)
}

func (vulkanDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	vk.DestroySurface(instance, surface, nil)
}

func (vulkanDriver) CreateDevice(gpu vk.PhysicalDevice, info *vk.DeviceCreateInfo, out *vk.Device) vk.Result {
	return vk.CreateDevice(gpu, info, nil, out)
}

func (vulkanDriver) DestroyDevice(device vk.Device) {
	vk.DestroyDevice(device, nil)
}

func (vulkanDriver) GetDeviceQueue(device vk.Device, family, index uint32, out *vk.Queue) {
	vk.GetDeviceQueue(device, family, index, out)
}

func (vulkanDriver) DeviceWaitIdle(device vk.Device) vk.Result {
	return vk.DeviceWaitIdle(device)
}

func (vulkanDriver) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, out *vk.CommandPool) vk.Result {
	return vk.CreateCommandPool(device, info, nil, out)
}

func (vulkanDriver) DestroyCommandPool(device vk.Device, pool vk.CommandPool) {
	vk.DestroyCommandPool(device, pool, nil)
}

func (vulkanDriver) CreateSwapchain(device vk.Device, info *vk.SwapchainCreateInfo, out *vk.Swapchain) vk.Result {
	return vk.CreateSwapchain(device, info, nil, out)
}

func (vulkanDriver) DestroySwapchain(device vk.Device, swapchain vk.Swapchain) {
	vk.DestroySwapchain(device, swapchain, nil)
}

func (vulkanDriver) GetSwapchainImages(device vk.Device, swapchain vk.Swapchain, count *uint32, out []vk.Image) vk.Result {
	return vk.GetSwapchainImages(device, swapchain, count, out)
}

func (vulkanDriver) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, out *vk.ImageView) vk.Result {
	return vk.CreateImageView(device, info, nil, out)
}

func (vulkanDriver) DestroyImageView(device vk.Device, view vk.ImageView) {
	vk.DestroyImageView(device, view, nil)
}

func (vulkanDriver) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, out *vk.ShaderModule) vk.Result {
	return vk.CreateShaderModule(device, info, nil, out)
}

func (vulkanDriver) DestroyShaderModule(device vk.Device, module vk.ShaderModule) {
	vk.DestroyShaderModule(device, module, nil)
}

func (vulkanDriver) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, out *vk.PipelineLayout) vk.Result {
	return vk.CreatePipelineLayout(device, info, nil, out)
}

func (vulkanDriver) DestroyPipelineLayout(device vk.Device, layout vk.PipelineLayout) {
	vk.DestroyPipelineLayout(device, layout, nil)
}

func (vulkanDriver) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, out *vk.RenderPass) vk.Result {
	return vk.CreateRenderPass(device, info, nil, out)
}

func (vulkanDriver) DestroyRenderPass(device vk.Device, pass vk.RenderPass) {
	vk.DestroyRenderPass(device, pass, nil)
}

func (vulkanDriver) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, infos []vk.GraphicsPipelineCreateInfo, out []vk.Pipeline) vk.Result {
	return vk.CreateGraphicsPipelines(device, cache, uint32(len(infos)), infos, nil, out)
}

func (vulkanDriver) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) {
	vk.DestroyPipeline(device, pipeline, nil)
}

func (vulkanDriver) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, out *vk.Framebuffer) vk.Result {
	return vk.CreateFramebuffer(device, info, nil, out)
}

func (vulkanDriver) DestroyFramebuffer(device vk.Device, framebuffer vk.Framebuffer) {
	vk.DestroyFramebuffer(device, framebuffer, nil)
}

func (vulkanDriver) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, out []vk.CommandBuffer) vk.Result {
	return vk.AllocateCommandBuffers(device, info, out)
}

func (vulkanDriver) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, buffers []vk.CommandBuffer) {
	vk.FreeCommandBuffers(device, pool, uint32(len(buffers)), buffers)
}

func (vulkanDriver) BeginCommandBuffer(cmd vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	return vk.BeginCommandBuffer(cmd, info)
}

func (vulkanDriver) EndCommandBuffer(cmd vk.CommandBuffer) vk.Result {
	return vk.EndCommandBuffer(cmd)
}

func (vulkanDriver) CmdBeginRenderPass(cmd vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) {
	vk.CmdBeginRenderPass(cmd, info, contents)
}

func (vulkanDriver) CmdBindPipeline(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) {
	vk.CmdBindPipeline(cmd, bindPoint, pipeline)
}

func (vulkanDriver) CmdSetViewport(cmd vk.CommandBuffer, first uint32, viewports []vk.Viewport) {
	vk.CmdSetViewport(cmd, first, uint32(len(viewports)), viewports)
}

func (vulkanDriver) CmdSetLineWidth(cmd vk.CommandBuffer, width float32) {
	vk.CmdSetLineWidth(cmd, width)
}

func (vulkanDriver) CmdDraw(cmd vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	vk.CmdDraw(cmd, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (vulkanDriver) CmdEndRenderPass(cmd vk.CommandBuffer) {
	vk.CmdEndRenderPass(cmd)
}

func (vulkanDriver) CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo, out *vk.Semaphore) vk.Result {
	return vk.CreateSemaphore(device, info, nil, out)
}

func (vulkanDriver) DestroySemaphore(device vk.Device, semaphore vk.Semaphore) {
	vk.DestroySemaphore(device, semaphore, nil)
}

func (vulkanDriver) AcquireNextImage(device vk.Device, swapchain vk.Swapchain, timeout uint64, semaphore vk.Semaphore, fence vk.Fence, index *uint32) vk.Result {
	return vk.AcquireNextImage(device, swapchain, timeout, semaphore, fence, index)
}

func (vulkanDriver) QueueSubmit(queue vk.Queue, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	return vk.QueueSubmit(queue, uint32(len(submits)), submits, fence)
}

func (vulkanDriver) QueuePresent(queue vk.Queue, info *vk.PresentInfo) vk.Result {
	return vk.QueuePresent(queue, info)
}
