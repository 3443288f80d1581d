package vkdump

// zeroStructures returns a zero value of every structure with a registered
// printer.
func zeroStructures() []Structure {
	return []Structure{
		&ApplicationInfo{},
		&BindSparseInfo{},
		&BufferCreateInfo{},
		&BufferMemoryBarrier{},
		&CommandBufferAllocateInfo{},
		&CommandBufferBeginInfo{},
		&CommandBufferInheritanceInfo{},
		&CommandPoolCreateInfo{},
		&ComputePipelineCreateInfo{},
		&CopyDescriptorSet{},
		&DebugUtilsLabelEXT{},
		&DebugUtilsMessengerCallbackDataEXT{},
		&DebugUtilsMessengerCreateInfoEXT{},
		&DebugUtilsObjectNameInfoEXT{},
		&DescriptorPoolCreateInfo{},
		&DescriptorSetAllocateInfo{},
		&DescriptorSetLayoutBindingFlagsCreateInfo{},
		&DescriptorSetLayoutCreateInfo{},
		&DeviceCreateInfo{},
		&DeviceQueueCreateInfo{},
		&FenceCreateInfo{},
		&GraphicsPipelineCreateInfo{},
		&ImageCreateInfo{},
		&ImageFormatListCreateInfo{},
		&ImageMemoryBarrier{},
		&ImageSwapchainCreateInfoKHR{},
		&ImageViewCreateInfo{},
		&ImageViewUsageCreateInfo{},
		&InstanceCreateInfo{},
		&MemoryAllocateFlagsInfo{},
		&MemoryAllocateInfo{},
		&MemoryBarrier{},
		&MemoryDedicatedAllocateInfo{},
		&PhysicalDeviceFeatures2{},
		&PhysicalDeviceVulkan12Features{},
		&PhysicalDeviceVulkan13Features{},
		&PipelineCacheCreateInfo{},
		&PipelineColorBlendStateCreateInfo{},
		&PipelineDepthStencilStateCreateInfo{},
		&PipelineDynamicStateCreateInfo{},
		&PipelineInputAssemblyStateCreateInfo{},
		&PipelineLayoutCreateInfo{},
		&PipelineMultisampleStateCreateInfo{},
		&PipelineRasterizationStateCreateInfo{},
		&PipelineRenderingCreateInfo{},
		&PipelineShaderStageCreateInfo{},
		&PipelineShaderStageRequiredSubgroupSizeCreateInfo{},
		&PipelineTessellationStateCreateInfo{},
		&PipelineVertexInputStateCreateInfo{},
		&PipelineViewportStateCreateInfo{},
		&PresentInfoKHR{},
		&RenderPassBeginInfo{},
		&RenderingAttachmentInfo{},
		&RenderingInfo{},
		&SamplerCreateInfo{},
		&SemaphoreCreateInfo{},
		&SemaphoreSignalInfo{},
		&SemaphoreTypeCreateInfo{},
		&SemaphoreWaitInfo{},
		&ShaderModuleCreateInfo{},
		&SubmitInfo{},
		&SwapchainCreateInfoKHR{},
		&TimelineSemaphoreSubmitInfo{},
		&ValidationFeaturesEXT{},
		&WriteDescriptorSet{},
	}
}
