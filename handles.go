package vkdump

// ObjectType mirrors VkObjectType and identifies the kind of a Handle.
type ObjectType int32

const (
	OBJECT_TYPE_UNKNOWN                   ObjectType = 0
	OBJECT_TYPE_INSTANCE                  ObjectType = 1
	OBJECT_TYPE_PHYSICAL_DEVICE           ObjectType = 2
	OBJECT_TYPE_DEVICE                    ObjectType = 3
	OBJECT_TYPE_QUEUE                     ObjectType = 4
	OBJECT_TYPE_SEMAPHORE                 ObjectType = 5
	OBJECT_TYPE_COMMAND_BUFFER            ObjectType = 6
	OBJECT_TYPE_FENCE                     ObjectType = 7
	OBJECT_TYPE_DEVICE_MEMORY             ObjectType = 8
	OBJECT_TYPE_BUFFER                    ObjectType = 9
	OBJECT_TYPE_IMAGE                     ObjectType = 10
	OBJECT_TYPE_EVENT                     ObjectType = 11
	OBJECT_TYPE_QUERY_POOL                ObjectType = 12
	OBJECT_TYPE_BUFFER_VIEW               ObjectType = 13
	OBJECT_TYPE_IMAGE_VIEW                ObjectType = 14
	OBJECT_TYPE_SHADER_MODULE             ObjectType = 15
	OBJECT_TYPE_PIPELINE_CACHE            ObjectType = 16
	OBJECT_TYPE_PIPELINE_LAYOUT           ObjectType = 17
	OBJECT_TYPE_RENDER_PASS               ObjectType = 18
	OBJECT_TYPE_PIPELINE                  ObjectType = 19
	OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT     ObjectType = 20
	OBJECT_TYPE_SAMPLER                   ObjectType = 21
	OBJECT_TYPE_DESCRIPTOR_POOL           ObjectType = 22
	OBJECT_TYPE_DESCRIPTOR_SET            ObjectType = 23
	OBJECT_TYPE_FRAMEBUFFER               ObjectType = 24
	OBJECT_TYPE_COMMAND_POOL              ObjectType = 25
	OBJECT_TYPE_SURFACE_KHR               ObjectType = 1000000000
	OBJECT_TYPE_SWAPCHAIN_KHR             ObjectType = 1000001000
	OBJECT_TYPE_DEBUG_UTILS_MESSENGER_EXT ObjectType = 1000128000
)

var objectTypeNames = NewSymbolTable("VkObjectType",
	Symbol[ObjectType]{OBJECT_TYPE_UNKNOWN, "VK_OBJECT_TYPE_UNKNOWN"},
	Symbol[ObjectType]{OBJECT_TYPE_INSTANCE, "VK_OBJECT_TYPE_INSTANCE"},
	Symbol[ObjectType]{OBJECT_TYPE_PHYSICAL_DEVICE, "VK_OBJECT_TYPE_PHYSICAL_DEVICE"},
	Symbol[ObjectType]{OBJECT_TYPE_DEVICE, "VK_OBJECT_TYPE_DEVICE"},
	Symbol[ObjectType]{OBJECT_TYPE_QUEUE, "VK_OBJECT_TYPE_QUEUE"},
	Symbol[ObjectType]{OBJECT_TYPE_SEMAPHORE, "VK_OBJECT_TYPE_SEMAPHORE"},
	Symbol[ObjectType]{OBJECT_TYPE_COMMAND_BUFFER, "VK_OBJECT_TYPE_COMMAND_BUFFER"},
	Symbol[ObjectType]{OBJECT_TYPE_FENCE, "VK_OBJECT_TYPE_FENCE"},
	Symbol[ObjectType]{OBJECT_TYPE_DEVICE_MEMORY, "VK_OBJECT_TYPE_DEVICE_MEMORY"},
	Symbol[ObjectType]{OBJECT_TYPE_BUFFER, "VK_OBJECT_TYPE_BUFFER"},
	Symbol[ObjectType]{OBJECT_TYPE_IMAGE, "VK_OBJECT_TYPE_IMAGE"},
	Symbol[ObjectType]{OBJECT_TYPE_EVENT, "VK_OBJECT_TYPE_EVENT"},
	Symbol[ObjectType]{OBJECT_TYPE_QUERY_POOL, "VK_OBJECT_TYPE_QUERY_POOL"},
	Symbol[ObjectType]{OBJECT_TYPE_BUFFER_VIEW, "VK_OBJECT_TYPE_BUFFER_VIEW"},
	Symbol[ObjectType]{OBJECT_TYPE_IMAGE_VIEW, "VK_OBJECT_TYPE_IMAGE_VIEW"},
	Symbol[ObjectType]{OBJECT_TYPE_SHADER_MODULE, "VK_OBJECT_TYPE_SHADER_MODULE"},
	Symbol[ObjectType]{OBJECT_TYPE_PIPELINE_CACHE, "VK_OBJECT_TYPE_PIPELINE_CACHE"},
	Symbol[ObjectType]{OBJECT_TYPE_PIPELINE_LAYOUT, "VK_OBJECT_TYPE_PIPELINE_LAYOUT"},
	Symbol[ObjectType]{OBJECT_TYPE_RENDER_PASS, "VK_OBJECT_TYPE_RENDER_PASS"},
	Symbol[ObjectType]{OBJECT_TYPE_PIPELINE, "VK_OBJECT_TYPE_PIPELINE"},
	Symbol[ObjectType]{OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT, "VK_OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT"},
	Symbol[ObjectType]{OBJECT_TYPE_SAMPLER, "VK_OBJECT_TYPE_SAMPLER"},
	Symbol[ObjectType]{OBJECT_TYPE_DESCRIPTOR_POOL, "VK_OBJECT_TYPE_DESCRIPTOR_POOL"},
	Symbol[ObjectType]{OBJECT_TYPE_DESCRIPTOR_SET, "VK_OBJECT_TYPE_DESCRIPTOR_SET"},
	Symbol[ObjectType]{OBJECT_TYPE_FRAMEBUFFER, "VK_OBJECT_TYPE_FRAMEBUFFER"},
	Symbol[ObjectType]{OBJECT_TYPE_COMMAND_POOL, "VK_OBJECT_TYPE_COMMAND_POOL"},
	Symbol[ObjectType]{OBJECT_TYPE_SURFACE_KHR, "VK_OBJECT_TYPE_SURFACE_KHR"},
	Symbol[ObjectType]{OBJECT_TYPE_SWAPCHAIN_KHR, "VK_OBJECT_TYPE_SWAPCHAIN_KHR"},
	Symbol[ObjectType]{OBJECT_TYPE_DEBUG_UTILS_MESSENGER_EXT, "VK_OBJECT_TYPE_DEBUG_UTILS_MESSENGER_EXT"},
)

func (t ObjectType) String() string {
	return objectTypeNames.String(t)
}

// Handle is a Vulkan object reference captured from the calling process.
// Its value is only meaningful inside that process, so the printer never
// treats it as data.
type Handle interface {
	HandleValue() uint64
	ObjectType() ObjectType
}

// Dispatchable and non-dispatchable handles share one representation: the
// raw 64-bit value the driver handed out.
type (
	Instance            uint64
	PhysicalDevice      uint64
	Device              uint64
	Queue               uint64
	Semaphore           uint64
	CommandBuffer       uint64
	Fence               uint64
	DeviceMemory        uint64
	Buffer              uint64
	Image               uint64
	BufferView          uint64
	ImageView           uint64
	ShaderModule        uint64
	PipelineCache       uint64
	PipelineLayout      uint64
	RenderPass          uint64
	Pipeline            uint64
	DescriptorSetLayout uint64
	Sampler             uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Framebuffer         uint64
	CommandPool         uint64
	SurfaceKHR          uint64
	SwapchainKHR        uint64

	DebugUtilsMessengerEXT uint64
)

func (h Instance) HandleValue() uint64            { return uint64(h) }
func (h PhysicalDevice) HandleValue() uint64      { return uint64(h) }
func (h Device) HandleValue() uint64              { return uint64(h) }
func (h Queue) HandleValue() uint64               { return uint64(h) }
func (h Semaphore) HandleValue() uint64           { return uint64(h) }
func (h CommandBuffer) HandleValue() uint64       { return uint64(h) }
func (h Fence) HandleValue() uint64               { return uint64(h) }
func (h DeviceMemory) HandleValue() uint64        { return uint64(h) }
func (h Buffer) HandleValue() uint64              { return uint64(h) }
func (h Image) HandleValue() uint64               { return uint64(h) }
func (h BufferView) HandleValue() uint64          { return uint64(h) }
func (h ImageView) HandleValue() uint64           { return uint64(h) }
func (h ShaderModule) HandleValue() uint64        { return uint64(h) }
func (h PipelineCache) HandleValue() uint64       { return uint64(h) }
func (h PipelineLayout) HandleValue() uint64      { return uint64(h) }
func (h RenderPass) HandleValue() uint64          { return uint64(h) }
func (h Pipeline) HandleValue() uint64            { return uint64(h) }
func (h DescriptorSetLayout) HandleValue() uint64 { return uint64(h) }
func (h Sampler) HandleValue() uint64             { return uint64(h) }
func (h DescriptorPool) HandleValue() uint64      { return uint64(h) }
func (h DescriptorSet) HandleValue() uint64       { return uint64(h) }
func (h Framebuffer) HandleValue() uint64         { return uint64(h) }
func (h CommandPool) HandleValue() uint64         { return uint64(h) }
func (h SurfaceKHR) HandleValue() uint64          { return uint64(h) }
func (h SwapchainKHR) HandleValue() uint64        { return uint64(h) }

func (h DebugUtilsMessengerEXT) HandleValue() uint64 { return uint64(h) }

func (Instance) ObjectType() ObjectType            { return OBJECT_TYPE_INSTANCE }
func (PhysicalDevice) ObjectType() ObjectType      { return OBJECT_TYPE_PHYSICAL_DEVICE }
func (Device) ObjectType() ObjectType              { return OBJECT_TYPE_DEVICE }
func (Queue) ObjectType() ObjectType               { return OBJECT_TYPE_QUEUE }
func (Semaphore) ObjectType() ObjectType           { return OBJECT_TYPE_SEMAPHORE }
func (CommandBuffer) ObjectType() ObjectType       { return OBJECT_TYPE_COMMAND_BUFFER }
func (Fence) ObjectType() ObjectType               { return OBJECT_TYPE_FENCE }
func (DeviceMemory) ObjectType() ObjectType        { return OBJECT_TYPE_DEVICE_MEMORY }
func (Buffer) ObjectType() ObjectType              { return OBJECT_TYPE_BUFFER }
func (Image) ObjectType() ObjectType               { return OBJECT_TYPE_IMAGE }
func (BufferView) ObjectType() ObjectType          { return OBJECT_TYPE_BUFFER_VIEW }
func (ImageView) ObjectType() ObjectType           { return OBJECT_TYPE_IMAGE_VIEW }
func (ShaderModule) ObjectType() ObjectType        { return OBJECT_TYPE_SHADER_MODULE }
func (PipelineCache) ObjectType() ObjectType       { return OBJECT_TYPE_PIPELINE_CACHE }
func (PipelineLayout) ObjectType() ObjectType      { return OBJECT_TYPE_PIPELINE_LAYOUT }
func (RenderPass) ObjectType() ObjectType          { return OBJECT_TYPE_RENDER_PASS }
func (Pipeline) ObjectType() ObjectType            { return OBJECT_TYPE_PIPELINE }
func (DescriptorSetLayout) ObjectType() ObjectType { return OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT }
func (Sampler) ObjectType() ObjectType             { return OBJECT_TYPE_SAMPLER }
func (DescriptorPool) ObjectType() ObjectType      { return OBJECT_TYPE_DESCRIPTOR_POOL }
func (DescriptorSet) ObjectType() ObjectType       { return OBJECT_TYPE_DESCRIPTOR_SET }
func (Framebuffer) ObjectType() ObjectType         { return OBJECT_TYPE_FRAMEBUFFER }
func (CommandPool) ObjectType() ObjectType         { return OBJECT_TYPE_COMMAND_POOL }
func (SurfaceKHR) ObjectType() ObjectType          { return OBJECT_TYPE_SURFACE_KHR }
func (SwapchainKHR) ObjectType() ObjectType        { return OBJECT_TYPE_SWAPCHAIN_KHR }

func (DebugUtilsMessengerEXT) ObjectType() ObjectType { return OBJECT_TYPE_DEBUG_UTILS_MESSENGER_EXT }
