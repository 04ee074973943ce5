package presentvk

import vk "github.com/vulkan-go/vulkan"

// PipelineArgs describes the fixed triangle pipeline.
type PipelineArgs struct {
	Vert        []byte
	Frag        []byte
	Viewport    vk.Viewport
	Scissor     vk.Rect2D
	ColorFormat vk.Format
}

// GraphicsPipeline owns the pipeline with its layout, render pass and the two
// shader modules it was built from.
type GraphicsPipeline struct {
	driver Driver
	device vk.Device

	Handle     vk.Pipeline
	Layout     vk.PipelineLayout
	RenderPass vk.RenderPass
	Vert       vk.ShaderModule
	Frag       vk.ShaderModule
	Viewport   vk.Viewport
	Scissor    vk.Rect2D
}

// NewGraphicsPipeline builds shader modules, layout, render pass and pipeline
// in that order. A failure at any step destroys everything built before it.
func NewGraphicsPipeline(d Driver, device vk.Device, args PipelineArgs) (GraphicsPipeline, error) {
	p := GraphicsPipeline{
		driver:   d,
		device:   device,
		Viewport: args.Viewport,
		Scissor:  args.Scissor,
	}

	var err error
	if p.Vert, err = newShaderModule(d, device, args.Vert); err != nil {
		return GraphicsPipeline{}, err
	}
	if p.Frag, err = newShaderModule(d, device, args.Frag); err != nil {
		p.Destroy()
		return GraphicsPipeline{}, err
	}

	ret := d.CreatePipelineLayout(device, &vk.PipelineLayoutCreateInfo{
		SType: vk.StructureTypePipelineLayoutCreateInfo,
	}, &p.Layout)
	if isError(ret) {
		p.Layout = vk.NullPipelineLayout
		p.Destroy()
		return GraphicsPipeline{}, newError(ErrPipelineLayoutCreationFailed, ret)
	}

	if p.RenderPass, err = newRenderPass(d, device, args.ColorFormat); err != nil {
		p.Destroy()
		return GraphicsPipeline{}, err
	}

	stages := []vk.PipelineShaderStageCreateInfo{{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageVertexBit,
		Module: p.Vert,
		PName:  safeString("main"),
	}, {
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageFragmentBit,
		Module: p.Frag,
		PName:  safeString("main"),
	}}

	// Geometry is generated in the vertex stage.
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
	}
	assembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports:    []vk.Viewport{args.Viewport},
		ScissorCount:  1,
		PScissors:     []vk.Rect2D{args.Scissor},
	}
	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}
	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
		MinSampleShading:     1.0,
	}
	blendAttachments := []vk.PipelineColorBlendAttachmentState{{
		BlendEnable: vk.False,
		ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit | vk.ColorComponentGBit |
			vk.ColorComponentBBit | vk.ColorComponentABit),
	}}
	blend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpCopy,
		AttachmentCount: uint32(len(blendAttachments)),
		PAttachments:    blendAttachments,
	}
	dynamicStates := []vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateLineWidth}
	dynamic := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    dynamicStates,
	}

	pipelines := make([]vk.Pipeline, 1)
	ret = d.CreateGraphicsPipelines(device, nil, []vk.GraphicsPipelineCreateInfo{{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &assembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizer,
		PMultisampleState:   &multisample,
		PColorBlendState:    &blend,
		PDynamicState:       &dynamic,
		Layout:              p.Layout,
		RenderPass:          p.RenderPass,
		Subpass:             0,
		BasePipelineIndex:   -1,
	}}, pipelines)
	if isError(ret) {
		p.Destroy()
		return GraphicsPipeline{}, newError(ErrGraphicsPipelineCreationFailed, ret)
	}
	p.Handle = pipelines[0]
	return p, nil
}

// Destroy releases the pipeline, its layout, both shader modules and the
// render pass, in that order.
func (p *GraphicsPipeline) Destroy() {
	if p.Handle != vk.NullPipeline {
		p.driver.DestroyPipeline(p.device, p.Handle)
		p.Handle = vk.NullPipeline
	}
	if p.Layout != vk.NullPipelineLayout {
		p.driver.DestroyPipelineLayout(p.device, p.Layout)
		p.Layout = vk.NullPipelineLayout
	}
	if p.Vert != vk.NullShaderModule {
		p.driver.DestroyShaderModule(p.device, p.Vert)
		p.Vert = vk.NullShaderModule
	}
	if p.Frag != vk.NullShaderModule {
		p.driver.DestroyShaderModule(p.device, p.Frag)
		p.Frag = vk.NullShaderModule
	}
	if p.RenderPass != vk.NullRenderPass {
		p.driver.DestroyRenderPass(p.device, p.RenderPass)
		p.RenderPass = vk.NullRenderPass
	}
}
