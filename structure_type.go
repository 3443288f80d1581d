package vkdump

// StructureType is the sType tag every extensible Vulkan structure starts with.
type StructureType int32

const (
	STRUCTURE_TYPE_APPLICATION_INFO                                         StructureType = 0
	STRUCTURE_TYPE_INSTANCE_CREATE_INFO                                     StructureType = 1
	STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO                                 StructureType = 2
	STRUCTURE_TYPE_DEVICE_CREATE_INFO                                       StructureType = 3
	STRUCTURE_TYPE_SUBMIT_INFO                                              StructureType = 4
	STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO                                     StructureType = 5
	STRUCTURE_TYPE_MAPPED_MEMORY_RANGE                                      StructureType = 6
	STRUCTURE_TYPE_BIND_SPARSE_INFO                                         StructureType = 7
	STRUCTURE_TYPE_FENCE_CREATE_INFO                                        StructureType = 8
	STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO                                    StructureType = 9
	STRUCTURE_TYPE_EVENT_CREATE_INFO                                        StructureType = 10
	STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO                                   StructureType = 11
	STRUCTURE_TYPE_BUFFER_CREATE_INFO                                       StructureType = 12
	STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO                                  StructureType = 13
	STRUCTURE_TYPE_IMAGE_CREATE_INFO                                        StructureType = 14
	STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO                                   StructureType = 15
	STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO                                StructureType = 16
	STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO                               StructureType = 17
	STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO                        StructureType = 18
	STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO                  StructureType = 19
	STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO                StructureType = 20
	STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO                  StructureType = 21
	STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO                      StructureType = 22
	STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO                 StructureType = 23
	STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO                   StructureType = 24
	STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO                 StructureType = 25
	STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO                   StructureType = 26
	STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO                       StructureType = 27
	STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO                            StructureType = 28
	STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO                             StructureType = 29
	STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO                              StructureType = 30
	STRUCTURE_TYPE_SAMPLER_CREATE_INFO                                      StructureType = 31
	STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO                        StructureType = 32
	STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO                              StructureType = 33
	STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO                             StructureType = 34
	STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET                                     StructureType = 35
	STRUCTURE_TYPE_COPY_DESCRIPTOR_SET                                      StructureType = 36
	STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO                                  StructureType = 37
	STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO                                  StructureType = 38
	STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO                                 StructureType = 39
	STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO                             StructureType = 40
	STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO                          StructureType = 41
	STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO                                StructureType = 42
	STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO                                   StructureType = 43
	STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER                                    StructureType = 44
	STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER                                     StructureType = 45
	STRUCTURE_TYPE_MEMORY_BARRIER                                           StructureType = 46
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_FEATURES                      StructureType = 49
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_PROPERTIES                    StructureType = 50
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES                      StructureType = 51
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_PROPERTIES                    StructureType = 52
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES                      StructureType = 53
	STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_PROPERTIES                    StructureType = 54
	STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR                                StructureType = 1000001000
	STRUCTURE_TYPE_PRESENT_INFO_KHR                                         StructureType = 1000001001
	STRUCTURE_TYPE_RENDERING_INFO                                           StructureType = 1000044000
	STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO                                StructureType = 1000044001
	STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO                           StructureType = 1000044002
	STRUCTURE_TYPE_PHYSICAL_DEVICE_DYNAMIC_RENDERING_FEATURES               StructureType = 1000044003
	STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2                               StructureType = 1000059000
	STRUCTURE_TYPE_PHYSICAL_DEVICE_PROPERTIES_2                             StructureType = 1000059001
	STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO                               StructureType = 1000060000
	STRUCTURE_TYPE_IMAGE_SWAPCHAIN_CREATE_INFO_KHR                          StructureType = 1000060008
	STRUCTURE_TYPE_IMAGE_VIEW_USAGE_CREATE_INFO                             StructureType = 1000117002
	STRUCTURE_TYPE_MEMORY_DEDICATED_REQUIREMENTS                            StructureType = 1000127000
	STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO                           StructureType = 1000127001
	STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT                         StructureType = 1000128000
	STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT                                    StructureType = 1000128002
	STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CALLBACK_DATA_EXT                  StructureType = 1000128003
	STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT                    StructureType = 1000128004
	STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO                            StructureType = 1000147000
	STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO          StructureType = 1000161000
	STRUCTURE_TYPE_PHYSICAL_DEVICE_DESCRIPTOR_INDEXING_FEATURES             StructureType = 1000161001
	STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO                               StructureType = 1000207002
	STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO                           StructureType = 1000207003
	STRUCTURE_TYPE_SEMAPHORE_WAIT_INFO                                      StructureType = 1000207004
	STRUCTURE_TYPE_SEMAPHORE_SIGNAL_INFO                                    StructureType = 1000207005
	STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO StructureType = 1000225001
	STRUCTURE_TYPE_VALIDATION_FEATURES_EXT                                  StructureType = 1000247000
	STRUCTURE_TYPE_MEMORY_BARRIER_2                                         StructureType = 1000314000
	STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER_2                                  StructureType = 1000314001
	STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER_2                                   StructureType = 1000314002
	STRUCTURE_TYPE_DEPENDENCY_INFO                                          StructureType = 1000314003
	STRUCTURE_TYPE_SUBMIT_INFO_2                                            StructureType = 1000314004
	STRUCTURE_TYPE_PHYSICAL_DEVICE_SYNCHRONIZATION_2_FEATURES               StructureType = 1000314007
)

var structureTypeNames = NewSymbolTable("VkStructureType",
	Symbol[StructureType]{STRUCTURE_TYPE_APPLICATION_INFO, "VK_STRUCTURE_TYPE_APPLICATION_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_INSTANCE_CREATE_INFO, "VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO, "VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEVICE_CREATE_INFO, "VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SUBMIT_INFO, "VK_STRUCTURE_TYPE_SUBMIT_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO, "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_MAPPED_MEMORY_RANGE, "VK_STRUCTURE_TYPE_MAPPED_MEMORY_RANGE"},
	Symbol[StructureType]{STRUCTURE_TYPE_BIND_SPARSE_INFO, "VK_STRUCTURE_TYPE_BIND_SPARSE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_FENCE_CREATE_INFO, "VK_STRUCTURE_TYPE_FENCE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO, "VK_STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_EVENT_CREATE_INFO, "VK_STRUCTURE_TYPE_EVENT_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO, "VK_STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_BUFFER_CREATE_INFO, "VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO, "VK_STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_CREATE_INFO, "VK_STRUCTURE_TYPE_IMAGE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO, "VK_STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO, "VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO, "VK_STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO, "VK_STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SAMPLER_CREATE_INFO, "VK_STRUCTURE_TYPE_SAMPLER_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO, "VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO, "VK_STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO, "VK_STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET, "VK_STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET"},
	Symbol[StructureType]{STRUCTURE_TYPE_COPY_DESCRIPTOR_SET, "VK_STRUCTURE_TYPE_COPY_DESCRIPTOR_SET"},
	Symbol[StructureType]{STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO, "VK_STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO, "VK_STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO, "VK_STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO, "VK_STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO, "VK_STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO, "VK_STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO, "VK_STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER, "VK_STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER, "VK_STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_BARRIER, "VK_STRUCTURE_TYPE_MEMORY_BARRIER"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_FEATURES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_PROPERTIES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_1_PROPERTIES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_FEATURES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_PROPERTIES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_2_PROPERTIES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_PROPERTIES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_PROPERTIES"},
	Symbol[StructureType]{STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR, "VK_STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_PRESENT_INFO_KHR, "VK_STRUCTURE_TYPE_PRESENT_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDERING_INFO, "VK_STRUCTURE_TYPE_RENDERING_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDERING_INFO, "VK_STRUCTURE_TYPE_RENDERING_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO, "VK_STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO, "VK_STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_DYNAMIC_RENDERING_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_DYNAMIC_RENDERING_FEATURES"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_PROPERTIES_2, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_PROPERTIES_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO, "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO, "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_SWAPCHAIN_CREATE_INFO_KHR, "VK_STRUCTURE_TYPE_IMAGE_SWAPCHAIN_CREATE_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_VIEW_USAGE_CREATE_INFO, "VK_STRUCTURE_TYPE_IMAGE_VIEW_USAGE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_DEDICATED_REQUIREMENTS, "VK_STRUCTURE_TYPE_MEMORY_DEDICATED_REQUIREMENTS"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO, "VK_STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT, "VK_STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT, "VK_STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CALLBACK_DATA_EXT, "VK_STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CALLBACK_DATA_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT, "VK_STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO, "VK_STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO, "VK_STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO, "VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO, "VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_DESCRIPTOR_INDEXING_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_DESCRIPTOR_INDEXING_FEATURES"},
	Symbol[StructureType]{STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO, "VK_STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO, "VK_STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO, "VK_STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO, "VK_STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO_KHR"},
	Symbol[StructureType]{STRUCTURE_TYPE_SEMAPHORE_WAIT_INFO, "VK_STRUCTURE_TYPE_SEMAPHORE_WAIT_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SEMAPHORE_SIGNAL_INFO, "VK_STRUCTURE_TYPE_SEMAPHORE_SIGNAL_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO, "VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_VALIDATION_FEATURES_EXT, "VK_STRUCTURE_TYPE_VALIDATION_FEATURES_EXT"},
	Symbol[StructureType]{STRUCTURE_TYPE_MEMORY_BARRIER_2, "VK_STRUCTURE_TYPE_MEMORY_BARRIER_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER_2, "VK_STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER_2, "VK_STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_DEPENDENCY_INFO, "VK_STRUCTURE_TYPE_DEPENDENCY_INFO"},
	Symbol[StructureType]{STRUCTURE_TYPE_SUBMIT_INFO_2, "VK_STRUCTURE_TYPE_SUBMIT_INFO_2"},
	Symbol[StructureType]{STRUCTURE_TYPE_PHYSICAL_DEVICE_SYNCHRONIZATION_2_FEATURES, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_SYNCHRONIZATION_2_FEATURES"},
)

func (t StructureType) String() string {
	return structureTypeNames.String(t)
}
