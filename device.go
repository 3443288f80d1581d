// device.go
package vkdump

type QueueFlags uint32

const (
	QUEUE_GRAPHICS_BIT         QueueFlags = 0x00000001
	QUEUE_COMPUTE_BIT          QueueFlags = 0x00000002
	QUEUE_TRANSFER_BIT         QueueFlags = 0x00000004
	QUEUE_SPARSE_BINDING_BIT   QueueFlags = 0x00000008
	QUEUE_PROTECTED_BIT        QueueFlags = 0x00000010
	QUEUE_VIDEO_DECODE_BIT_KHR QueueFlags = 0x00000020
	QUEUE_VIDEO_ENCODE_BIT_KHR QueueFlags = 0x00000040
)

var queueBits = NewFlagTable("VkQueueFlagBits",
	Symbol[QueueFlags]{QUEUE_GRAPHICS_BIT, "VK_QUEUE_GRAPHICS_BIT"},
	Symbol[QueueFlags]{QUEUE_COMPUTE_BIT, "VK_QUEUE_COMPUTE_BIT"},
	Symbol[QueueFlags]{QUEUE_TRANSFER_BIT, "VK_QUEUE_TRANSFER_BIT"},
	Symbol[QueueFlags]{QUEUE_SPARSE_BINDING_BIT, "VK_QUEUE_SPARSE_BINDING_BIT"},
	Symbol[QueueFlags]{QUEUE_PROTECTED_BIT, "VK_QUEUE_PROTECTED_BIT"},
	Symbol[QueueFlags]{QUEUE_VIDEO_DECODE_BIT_KHR, "VK_QUEUE_VIDEO_DECODE_BIT_KHR"},
	Symbol[QueueFlags]{QUEUE_VIDEO_ENCODE_BIT_KHR, "VK_QUEUE_VIDEO_ENCODE_BIT_KHR"},
	Symbol[QueueFlags]{0x00000100, "VK_QUEUE_OPTICAL_FLOW_BIT_NV"},
)

func (f QueueFlags) String() string { return queueBits.Render(f) }

type DeviceQueueCreateFlags uint32

const DEVICE_QUEUE_CREATE_PROTECTED_BIT DeviceQueueCreateFlags = 0x00000001

var deviceQueueCreateBits = NewFlagTable("VkDeviceQueueCreateFlagBits",
	Symbol[DeviceQueueCreateFlags]{DEVICE_QUEUE_CREATE_PROTECTED_BIT, "VK_DEVICE_QUEUE_CREATE_PROTECTED_BIT"},
)

func (f DeviceQueueCreateFlags) String() string { return deviceQueueCreateBits.Render(f) }

// DeviceCreateFlags is reserved; no bits are defined.
type DeviceCreateFlags uint32

var deviceCreateBits = NewFlagTable[DeviceCreateFlags]("VkDeviceCreateFlags")

func (f DeviceCreateFlags) String() string { return deviceCreateBits.Render(f) }

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type DeviceQueueCreateInfo struct {
	Next             Structure
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueueCount       uint32
	QueuePriorities  []float32
}

func (*DeviceQueueCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO }

// Feature structs for Vulkan 1.2 and 1.3 are chained through Next, the way
// device creation enables them.
type DeviceCreateInfo struct {
	Next                  Structure
	Flags                 DeviceCreateFlags
	QueueCreateInfoCount  uint32
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     []string
	EnabledExtensionCount uint32
	EnabledExtensionNames []string
	EnabledFeatures       *PhysicalDeviceFeatures
}

func (*DeviceCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_DEVICE_CREATE_INFO }

type PhysicalDeviceFeatures struct {
	RobustBufferAccess                      Bool32
	FullDrawIndexUint32                     Bool32
	ImageCubeArray                          Bool32
	IndependentBlend                        Bool32
	GeometryShader                          Bool32
	TessellationShader                      Bool32
	SampleRateShading                       Bool32
	DualSrcBlend                            Bool32
	LogicOp                                 Bool32
	MultiDrawIndirect                       Bool32
	DrawIndirectFirstInstance               Bool32
	DepthClamp                              Bool32
	DepthBiasClamp                          Bool32
	FillModeNonSolid                        Bool32
	DepthBounds                             Bool32
	WideLines                               Bool32
	LargePoints                             Bool32
	AlphaToOne                              Bool32
	MultiViewport                           Bool32
	SamplerAnisotropy                       Bool32
	TextureCompressionETC2                  Bool32
	TextureCompressionASTC_LDR              Bool32
	TextureCompressionBC                    Bool32
	OcclusionQueryPrecise                   Bool32
	PipelineStatisticsQuery                 Bool32
	VertexPipelineStoresAndAtomics          Bool32
	FragmentStoresAndAtomics                Bool32
	ShaderTessellationAndGeometryPointSize  Bool32
	ShaderImageGatherExtended               Bool32
	ShaderStorageImageExtendedFormats       Bool32
	ShaderStorageImageMultisample           Bool32
	ShaderStorageImageReadWithoutFormat     Bool32
	ShaderStorageImageWriteWithoutFormat    Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing  Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing  Bool32
	ShaderClipDistance                      Bool32
	ShaderCullDistance                      Bool32
	ShaderFloat64                           Bool32
	ShaderInt64                             Bool32
	ShaderInt16                             Bool32
	ShaderResourceResidency                 Bool32
	ShaderResourceMinLod                    Bool32
	SparseBinding                           Bool32
	SparseResidencyBuffer                   Bool32
	SparseResidencyImage2D                  Bool32
	SparseResidencyImage3D                  Bool32
	SparseResidency2Samples                 Bool32
	SparseResidency4Samples                 Bool32
	SparseResidency8Samples                 Bool32
	SparseResidency16Samples                Bool32
	SparseResidencyAliased                  Bool32
	VariableMultisampleRate                 Bool32
	InheritedQueries                        Bool32
}

type PhysicalDeviceFeatures2 struct {
	Next     Structure
	Features PhysicalDeviceFeatures
}

func (*PhysicalDeviceFeatures2) StructureType() StructureType {
	return STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2
}

type PhysicalDeviceVulkan12Features struct {
	Next                                               Structure
	SamplerMirrorClampToEdge                           Bool32
	DrawIndirectCount                                  Bool32
	StorageBuffer8BitAccess                            Bool32
	UniformAndStorageBuffer8BitAccess                  Bool32
	StoragePushConstant8                               Bool32
	ShaderBufferInt64Atomics                           Bool32
	ShaderSharedInt64Atomics                           Bool32
	ShaderFloat16                                      Bool32
	ShaderInt8                                         Bool32
	DescriptorIndexing                                 Bool32
	ShaderInputAttachmentArrayDynamicIndexing          Bool32
	ShaderUniformTexelBufferArrayDynamicIndexing       Bool32
	ShaderStorageTexelBufferArrayDynamicIndexing       Bool32
	ShaderUniformBufferArrayNonUniformIndexing         Bool32
	ShaderSampledImageArrayNonUniformIndexing          Bool32
	ShaderStorageBufferArrayNonUniformIndexing         Bool32
	ShaderStorageImageArrayNonUniformIndexing          Bool32
	ShaderInputAttachmentArrayNonUniformIndexing       Bool32
	ShaderUniformTexelBufferArrayNonUniformIndexing    Bool32
	ShaderStorageTexelBufferArrayNonUniformIndexing    Bool32
	DescriptorBindingUniformBufferUpdateAfterBind      Bool32
	DescriptorBindingSampledImageUpdateAfterBind       Bool32
	DescriptorBindingStorageImageUpdateAfterBind       Bool32
	DescriptorBindingStorageBufferUpdateAfterBind      Bool32
	DescriptorBindingUniformTexelBufferUpdateAfterBind Bool32
	DescriptorBindingStorageTexelBufferUpdateAfterBind Bool32
	DescriptorBindingUpdateUnusedWhilePending          Bool32
	DescriptorBindingPartiallyBound                    Bool32
	DescriptorBindingVariableDescriptorCount           Bool32
	RuntimeDescriptorArray                             Bool32
	SamplerFilterMinmax                                Bool32
	ScalarBlockLayout                                  Bool32
	ImagelessFramebuffer                               Bool32
	UniformBufferStandardLayout                        Bool32
	ShaderSubgroupExtendedTypes                        Bool32
	SeparateDepthStencilLayouts                        Bool32
	HostQueryReset                                     Bool32
	TimelineSemaphore                                  Bool32
	BufferDeviceAddress                                Bool32
	BufferDeviceAddressCaptureReplay                   Bool32
	BufferDeviceAddressMultiDevice                     Bool32
	VulkanMemoryModel                                  Bool32
	VulkanMemoryModelDeviceScope                       Bool32
	VulkanMemoryModelAvailabilityVisibilityChains      Bool32
	ShaderOutputViewportIndex                          Bool32
	ShaderOutputLayer                                  Bool32
	SubgroupBroadcastDynamicId                         Bool32
}

func (*PhysicalDeviceVulkan12Features) StructureType() StructureType {
	return STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES
}

type PhysicalDeviceVulkan13Features struct {
	Next                                               Structure
	RobustImageAccess                                  Bool32
	InlineUniformBlock                                 Bool32
	DescriptorBindingInlineUniformBlockUpdateAfterBind Bool32
	PipelineCreationCacheControl                       Bool32
	PrivateData                                        Bool32
	ShaderDemoteToHelperInvocation                     Bool32
	ShaderTerminateInvocation                          Bool32
	SubgroupSizeControl                                Bool32
	ComputeFullSubgroups                               Bool32
	Synchronization2                                   Bool32
	TextureCompressionASTC_HDR                         Bool32
	ShaderZeroInitializeWorkgroupMemory                Bool32
	DynamicRendering                                   Bool32
	ShaderIntegerDotProduct                            Bool32
	Maintenance4                                       Bool32
}

func (*PhysicalDeviceVulkan13Features) StructureType() StructureType {
	return STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES
}

func printQueueFamilyProperties(p *Printer, s *QueueFamilyProperties) {
	p.openObject()
	p.Flags("queueFlags", s.QueueFlags, false)
	p.Uint32("queueCount", s.QueueCount, false)
	p.Uint32("timestampValidBits", s.TimestampValidBits, false)
	printInline(p, "minImageTransferGranularity", &s.MinImageTransferGranularity, printExtent3D, true)
	p.closeObject()
}

func printDeviceQueueCreateInfo(p *Printer, s *DeviceQueueCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("queueFamilyIndex", s.QueueFamilyIndex, false)
	p.Uint32("queueCount", s.QueueCount, false)
	printArray(p, "pQueuePriorities", s.QueueCount, s.QueuePriorities, (*Printer).float32Value, true)
	p.closeObject()
}

func printDeviceCreateInfo(p *Printer, s *DeviceCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("queueCreateInfoCount", s.QueueCreateInfoCount, false)
	printArray(p, "pQueueCreateInfos", s.QueueCreateInfoCount, s.QueueCreateInfos, printDeviceQueueCreateInfo, false)
	p.Uint32("enabledLayerCount", s.EnabledLayerCount, false)
	printArray(p, "ppEnabledLayerNames", s.EnabledLayerCount, s.EnabledLayerNames, (*Printer).cstringValue, false)
	p.Uint32("enabledExtensionCount", s.EnabledExtensionCount, false)
	printArray(p, "ppEnabledExtensionNames", s.EnabledExtensionCount, s.EnabledExtensionNames, (*Printer).cstringValue, false)
	printPointer(p, "pEnabledFeatures", s.EnabledFeatures, printPhysicalDeviceFeatures, true)
	p.closeObject()
}

func printPhysicalDeviceFeatures(p *Printer, s *PhysicalDeviceFeatures) {
	p.openObject()
	p.Bool32("robustBufferAccess", s.RobustBufferAccess, false)
	p.Bool32("fullDrawIndexUint32", s.FullDrawIndexUint32, false)
	p.Bool32("imageCubeArray", s.ImageCubeArray, false)
	p.Bool32("independentBlend", s.IndependentBlend, false)
	p.Bool32("geometryShader", s.GeometryShader, false)
	p.Bool32("tessellationShader", s.TessellationShader, false)
	p.Bool32("sampleRateShading", s.SampleRateShading, false)
	p.Bool32("dualSrcBlend", s.DualSrcBlend, false)
	p.Bool32("logicOp", s.LogicOp, false)
	p.Bool32("multiDrawIndirect", s.MultiDrawIndirect, false)
	p.Bool32("drawIndirectFirstInstance", s.DrawIndirectFirstInstance, false)
	p.Bool32("depthClamp", s.DepthClamp, false)
	p.Bool32("depthBiasClamp", s.DepthBiasClamp, false)
	p.Bool32("fillModeNonSolid", s.FillModeNonSolid, false)
	p.Bool32("depthBounds", s.DepthBounds, false)
	p.Bool32("wideLines", s.WideLines, false)
	p.Bool32("largePoints", s.LargePoints, false)
	p.Bool32("alphaToOne", s.AlphaToOne, false)
	p.Bool32("multiViewport", s.MultiViewport, false)
	p.Bool32("samplerAnisotropy", s.SamplerAnisotropy, false)
	p.Bool32("textureCompressionETC2", s.TextureCompressionETC2, false)
	p.Bool32("textureCompressionASTC_LDR", s.TextureCompressionASTC_LDR, false)
	p.Bool32("textureCompressionBC", s.TextureCompressionBC, false)
	p.Bool32("occlusionQueryPrecise", s.OcclusionQueryPrecise, false)
	p.Bool32("pipelineStatisticsQuery", s.PipelineStatisticsQuery, false)
	p.Bool32("vertexPipelineStoresAndAtomics", s.VertexPipelineStoresAndAtomics, false)
	p.Bool32("fragmentStoresAndAtomics", s.FragmentStoresAndAtomics, false)
	p.Bool32("shaderTessellationAndGeometryPointSize", s.ShaderTessellationAndGeometryPointSize, false)
	p.Bool32("shaderImageGatherExtended", s.ShaderImageGatherExtended, false)
	p.Bool32("shaderStorageImageExtendedFormats", s.ShaderStorageImageExtendedFormats, false)
	p.Bool32("shaderStorageImageMultisample", s.ShaderStorageImageMultisample, false)
	p.Bool32("shaderStorageImageReadWithoutFormat", s.ShaderStorageImageReadWithoutFormat, false)
	p.Bool32("shaderStorageImageWriteWithoutFormat", s.ShaderStorageImageWriteWithoutFormat, false)
	p.Bool32("shaderUniformBufferArrayDynamicIndexing", s.ShaderUniformBufferArrayDynamicIndexing, false)
	p.Bool32("shaderSampledImageArrayDynamicIndexing", s.ShaderSampledImageArrayDynamicIndexing, false)
	p.Bool32("shaderStorageBufferArrayDynamicIndexing", s.ShaderStorageBufferArrayDynamicIndexing, false)
	p.Bool32("shaderStorageImageArrayDynamicIndexing", s.ShaderStorageImageArrayDynamicIndexing, false)
	p.Bool32("shaderClipDistance", s.ShaderClipDistance, false)
	p.Bool32("shaderCullDistance", s.ShaderCullDistance, false)
	p.Bool32("shaderFloat64", s.ShaderFloat64, false)
	p.Bool32("shaderInt64", s.ShaderInt64, false)
	p.Bool32("shaderInt16", s.ShaderInt16, false)
	p.Bool32("shaderResourceResidency", s.ShaderResourceResidency, false)
	p.Bool32("shaderResourceMinLod", s.ShaderResourceMinLod, false)
	p.Bool32("sparseBinding", s.SparseBinding, false)
	p.Bool32("sparseResidencyBuffer", s.SparseResidencyBuffer, false)
	p.Bool32("sparseResidencyImage2D", s.SparseResidencyImage2D, false)
	p.Bool32("sparseResidencyImage3D", s.SparseResidencyImage3D, false)
	p.Bool32("sparseResidency2Samples", s.SparseResidency2Samples, false)
	p.Bool32("sparseResidency4Samples", s.SparseResidency4Samples, false)
	p.Bool32("sparseResidency8Samples", s.SparseResidency8Samples, false)
	p.Bool32("sparseResidency16Samples", s.SparseResidency16Samples, false)
	p.Bool32("sparseResidencyAliased", s.SparseResidencyAliased, false)
	p.Bool32("variableMultisampleRate", s.VariableMultisampleRate, false)
	p.Bool32("inheritedQueries", s.InheritedQueries, true)
	p.closeObject()
}

func printPhysicalDeviceFeatures2(p *Printer, s *PhysicalDeviceFeatures2) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	printInline(p, "features", &s.Features, printPhysicalDeviceFeatures, true)
	p.closeObject()
}

func printPhysicalDeviceVulkan12Features(p *Printer, s *PhysicalDeviceVulkan12Features) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Bool32("samplerMirrorClampToEdge", s.SamplerMirrorClampToEdge, false)
	p.Bool32("drawIndirectCount", s.DrawIndirectCount, false)
	p.Bool32("storageBuffer8BitAccess", s.StorageBuffer8BitAccess, false)
	p.Bool32("uniformAndStorageBuffer8BitAccess", s.UniformAndStorageBuffer8BitAccess, false)
	p.Bool32("storagePushConstant8", s.StoragePushConstant8, false)
	p.Bool32("shaderBufferInt64Atomics", s.ShaderBufferInt64Atomics, false)
	p.Bool32("shaderSharedInt64Atomics", s.ShaderSharedInt64Atomics, false)
	p.Bool32("shaderFloat16", s.ShaderFloat16, false)
	p.Bool32("shaderInt8", s.ShaderInt8, false)
	p.Bool32("descriptorIndexing", s.DescriptorIndexing, false)
	p.Bool32("shaderInputAttachmentArrayDynamicIndexing", s.ShaderInputAttachmentArrayDynamicIndexing, false)
	p.Bool32("shaderUniformTexelBufferArrayDynamicIndexing", s.ShaderUniformTexelBufferArrayDynamicIndexing, false)
	p.Bool32("shaderStorageTexelBufferArrayDynamicIndexing", s.ShaderStorageTexelBufferArrayDynamicIndexing, false)
	p.Bool32("shaderUniformBufferArrayNonUniformIndexing", s.ShaderUniformBufferArrayNonUniformIndexing, false)
	p.Bool32("shaderSampledImageArrayNonUniformIndexing", s.ShaderSampledImageArrayNonUniformIndexing, false)
	p.Bool32("shaderStorageBufferArrayNonUniformIndexing", s.ShaderStorageBufferArrayNonUniformIndexing, false)
	p.Bool32("shaderStorageImageArrayNonUniformIndexing", s.ShaderStorageImageArrayNonUniformIndexing, false)
	p.Bool32("shaderInputAttachmentArrayNonUniformIndexing", s.ShaderInputAttachmentArrayNonUniformIndexing, false)
	p.Bool32("shaderUniformTexelBufferArrayNonUniformIndexing", s.ShaderUniformTexelBufferArrayNonUniformIndexing, false)
	p.Bool32("shaderStorageTexelBufferArrayNonUniformIndexing", s.ShaderStorageTexelBufferArrayNonUniformIndexing, false)
	p.Bool32("descriptorBindingUniformBufferUpdateAfterBind", s.DescriptorBindingUniformBufferUpdateAfterBind, false)
	p.Bool32("descriptorBindingSampledImageUpdateAfterBind", s.DescriptorBindingSampledImageUpdateAfterBind, false)
	p.Bool32("descriptorBindingStorageImageUpdateAfterBind", s.DescriptorBindingStorageImageUpdateAfterBind, false)
	p.Bool32("descriptorBindingStorageBufferUpdateAfterBind", s.DescriptorBindingStorageBufferUpdateAfterBind, false)
	p.Bool32("descriptorBindingUniformTexelBufferUpdateAfterBind", s.DescriptorBindingUniformTexelBufferUpdateAfterBind, false)
	p.Bool32("descriptorBindingStorageTexelBufferUpdateAfterBind", s.DescriptorBindingStorageTexelBufferUpdateAfterBind, false)
	p.Bool32("descriptorBindingUpdateUnusedWhilePending", s.DescriptorBindingUpdateUnusedWhilePending, false)
	p.Bool32("descriptorBindingPartiallyBound", s.DescriptorBindingPartiallyBound, false)
	p.Bool32("descriptorBindingVariableDescriptorCount", s.DescriptorBindingVariableDescriptorCount, false)
	p.Bool32("runtimeDescriptorArray", s.RuntimeDescriptorArray, false)
	p.Bool32("samplerFilterMinmax", s.SamplerFilterMinmax, false)
	p.Bool32("scalarBlockLayout", s.ScalarBlockLayout, false)
	p.Bool32("imagelessFramebuffer", s.ImagelessFramebuffer, false)
	p.Bool32("uniformBufferStandardLayout", s.UniformBufferStandardLayout, false)
	p.Bool32("shaderSubgroupExtendedTypes", s.ShaderSubgroupExtendedTypes, false)
	p.Bool32("separateDepthStencilLayouts", s.SeparateDepthStencilLayouts, false)
	p.Bool32("hostQueryReset", s.HostQueryReset, false)
	p.Bool32("timelineSemaphore", s.TimelineSemaphore, false)
	p.Bool32("bufferDeviceAddress", s.BufferDeviceAddress, false)
	p.Bool32("bufferDeviceAddressCaptureReplay", s.BufferDeviceAddressCaptureReplay, false)
	p.Bool32("bufferDeviceAddressMultiDevice", s.BufferDeviceAddressMultiDevice, false)
	p.Bool32("vulkanMemoryModel", s.VulkanMemoryModel, false)
	p.Bool32("vulkanMemoryModelDeviceScope", s.VulkanMemoryModelDeviceScope, false)
	p.Bool32("vulkanMemoryModelAvailabilityVisibilityChains", s.VulkanMemoryModelAvailabilityVisibilityChains, false)
	p.Bool32("shaderOutputViewportIndex", s.ShaderOutputViewportIndex, false)
	p.Bool32("shaderOutputLayer", s.ShaderOutputLayer, false)
	p.Bool32("subgroupBroadcastDynamicId", s.SubgroupBroadcastDynamicId, true)
	p.closeObject()
}

func printPhysicalDeviceVulkan13Features(p *Printer, s *PhysicalDeviceVulkan13Features) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Bool32("robustImageAccess", s.RobustImageAccess, false)
	p.Bool32("inlineUniformBlock", s.InlineUniformBlock, false)
	p.Bool32("descriptorBindingInlineUniformBlockUpdateAfterBind", s.DescriptorBindingInlineUniformBlockUpdateAfterBind, false)
	p.Bool32("pipelineCreationCacheControl", s.PipelineCreationCacheControl, false)
	p.Bool32("privateData", s.PrivateData, false)
	p.Bool32("shaderDemoteToHelperInvocation", s.ShaderDemoteToHelperInvocation, false)
	p.Bool32("shaderTerminateInvocation", s.ShaderTerminateInvocation, false)
	p.Bool32("subgroupSizeControl", s.SubgroupSizeControl, false)
	p.Bool32("computeFullSubgroups", s.ComputeFullSubgroups, false)
	p.Bool32("synchronization2", s.Synchronization2, false)
	p.Bool32("textureCompressionASTC_HDR", s.TextureCompressionASTC_HDR, false)
	p.Bool32("shaderZeroInitializeWorkgroupMemory", s.ShaderZeroInitializeWorkgroupMemory, false)
	p.Bool32("dynamicRendering", s.DynamicRendering, false)
	p.Bool32("shaderIntegerDotProduct", s.ShaderIntegerDotProduct, false)
	p.Bool32("maintenance4", s.Maintenance4, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO, printDeviceQueueCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_DEVICE_CREATE_INFO, printDeviceCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2, printPhysicalDeviceFeatures2)
	Register(defaultRegistry, STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES, printPhysicalDeviceVulkan12Features)
	Register(defaultRegistry, STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES, printPhysicalDeviceVulkan13Features)

	RegisterValue(defaultRegistry, printQueueFamilyProperties)
	RegisterValue(defaultRegistry, printPhysicalDeviceFeatures)
}
