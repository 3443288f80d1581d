// buffer.go
package vkdump

type BufferCreateFlags uint32

const (
	BUFFER_CREATE_SPARSE_BINDING_BIT                BufferCreateFlags = 0x00000001
	BUFFER_CREATE_SPARSE_RESIDENCY_BIT              BufferCreateFlags = 0x00000002
	BUFFER_CREATE_SPARSE_ALIASED_BIT                BufferCreateFlags = 0x00000004
	BUFFER_CREATE_PROTECTED_BIT                     BufferCreateFlags = 0x00000008
	BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT BufferCreateFlags = 0x00000010
)

var bufferCreateBits = NewFlagTable("VkBufferCreateFlagBits",
	Symbol[BufferCreateFlags]{BUFFER_CREATE_SPARSE_BINDING_BIT, "VK_BUFFER_CREATE_SPARSE_BINDING_BIT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_SPARSE_RESIDENCY_BIT, "VK_BUFFER_CREATE_SPARSE_RESIDENCY_BIT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_SPARSE_ALIASED_BIT, "VK_BUFFER_CREATE_SPARSE_ALIASED_BIT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_PROTECTED_BIT, "VK_BUFFER_CREATE_PROTECTED_BIT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT, "VK_BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT, "VK_BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT_EXT"},
	Symbol[BufferCreateFlags]{BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT, "VK_BUFFER_CREATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT_KHR"},
)

func (f BufferCreateFlags) String() string { return bufferCreateBits.Render(f) }

type BufferUsageFlags uint32

const (
	BUFFER_USAGE_TRANSFER_SRC_BIT          BufferUsageFlags = 0x00000001
	BUFFER_USAGE_TRANSFER_DST_BIT          BufferUsageFlags = 0x00000002
	BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT  BufferUsageFlags = 0x00000004
	BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT  BufferUsageFlags = 0x00000008
	BUFFER_USAGE_UNIFORM_BUFFER_BIT        BufferUsageFlags = 0x00000010
	BUFFER_USAGE_STORAGE_BUFFER_BIT        BufferUsageFlags = 0x00000020
	BUFFER_USAGE_INDEX_BUFFER_BIT          BufferUsageFlags = 0x00000040
	BUFFER_USAGE_VERTEX_BUFFER_BIT         BufferUsageFlags = 0x00000080
	BUFFER_USAGE_INDIRECT_BUFFER_BIT       BufferUsageFlags = 0x00000100
	BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT BufferUsageFlags = 0x00020000
)

var bufferUsageBits = NewFlagTable("VkBufferUsageFlagBits",
	Symbol[BufferUsageFlags]{BUFFER_USAGE_TRANSFER_SRC_BIT, "VK_BUFFER_USAGE_TRANSFER_SRC_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_TRANSFER_DST_BIT, "VK_BUFFER_USAGE_TRANSFER_DST_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT, "VK_BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT, "VK_BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_UNIFORM_BUFFER_BIT, "VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_STORAGE_BUFFER_BIT, "VK_BUFFER_USAGE_STORAGE_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_INDEX_BUFFER_BIT, "VK_BUFFER_USAGE_INDEX_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_VERTEX_BUFFER_BIT, "VK_BUFFER_USAGE_VERTEX_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_INDIRECT_BUFFER_BIT, "VK_BUFFER_USAGE_INDIRECT_BUFFER_BIT"},
	Symbol[BufferUsageFlags]{0x00000200, "VK_BUFFER_USAGE_CONDITIONAL_RENDERING_BIT_EXT"},
	Symbol[BufferUsageFlags]{0x00000400, "VK_BUFFER_USAGE_SHADER_BINDING_TABLE_BIT_KHR"},
	Symbol[BufferUsageFlags]{0x00000800, "VK_BUFFER_USAGE_TRANSFORM_FEEDBACK_BUFFER_BIT_EXT"},
	Symbol[BufferUsageFlags]{0x00001000, "VK_BUFFER_USAGE_TRANSFORM_FEEDBACK_COUNTER_BUFFER_BIT_EXT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT, "VK_BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT, "VK_BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT_KHR"},
	Symbol[BufferUsageFlags]{BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT, "VK_BUFFER_USAGE_SHADER_DEVICE_ADDRESS_BIT_EXT"},
	Symbol[BufferUsageFlags]{0x00080000, "VK_BUFFER_USAGE_ACCELERATION_STRUCTURE_BUILD_INPUT_READ_ONLY_BIT_KHR"},
	Symbol[BufferUsageFlags]{0x00100000, "VK_BUFFER_USAGE_ACCELERATION_STRUCTURE_STORAGE_BIT_KHR"},
)

func (f BufferUsageFlags) String() string { return bufferUsageBits.Render(f) }

type MemoryPropertyFlags uint32

const (
	MEMORY_PROPERTY_DEVICE_LOCAL_BIT     MemoryPropertyFlags = 0x00000001
	MEMORY_PROPERTY_HOST_VISIBLE_BIT     MemoryPropertyFlags = 0x00000002
	MEMORY_PROPERTY_HOST_COHERENT_BIT    MemoryPropertyFlags = 0x00000004
	MEMORY_PROPERTY_HOST_CACHED_BIT      MemoryPropertyFlags = 0x00000008
	MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT MemoryPropertyFlags = 0x00000010
	MEMORY_PROPERTY_PROTECTED_BIT        MemoryPropertyFlags = 0x00000020
)

var memoryPropertyBits = NewFlagTable("VkMemoryPropertyFlagBits",
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_DEVICE_LOCAL_BIT, "VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT"},
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_HOST_VISIBLE_BIT, "VK_MEMORY_PROPERTY_HOST_VISIBLE_BIT"},
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_HOST_COHERENT_BIT, "VK_MEMORY_PROPERTY_HOST_COHERENT_BIT"},
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_HOST_CACHED_BIT, "VK_MEMORY_PROPERTY_HOST_CACHED_BIT"},
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT, "VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT"},
	Symbol[MemoryPropertyFlags]{MEMORY_PROPERTY_PROTECTED_BIT, "VK_MEMORY_PROPERTY_PROTECTED_BIT"},
	Symbol[MemoryPropertyFlags]{0x00000040, "VK_MEMORY_PROPERTY_DEVICE_COHERENT_BIT_AMD"},
	Symbol[MemoryPropertyFlags]{0x00000080, "VK_MEMORY_PROPERTY_DEVICE_UNCACHED_BIT_AMD"},
	Symbol[MemoryPropertyFlags]{0x00000100, "VK_MEMORY_PROPERTY_RDMA_CAPABLE_BIT_NV"},
)

func (f MemoryPropertyFlags) String() string { return memoryPropertyBits.Render(f) }

type MemoryHeapFlags uint32

const (
	MEMORY_HEAP_DEVICE_LOCAL_BIT   MemoryHeapFlags = 0x00000001
	MEMORY_HEAP_MULTI_INSTANCE_BIT MemoryHeapFlags = 0x00000002
)

var memoryHeapBits = NewFlagTable("VkMemoryHeapFlagBits",
	Symbol[MemoryHeapFlags]{MEMORY_HEAP_DEVICE_LOCAL_BIT, "VK_MEMORY_HEAP_DEVICE_LOCAL_BIT"},
	Symbol[MemoryHeapFlags]{MEMORY_HEAP_MULTI_INSTANCE_BIT, "VK_MEMORY_HEAP_MULTI_INSTANCE_BIT"},
	Symbol[MemoryHeapFlags]{MEMORY_HEAP_MULTI_INSTANCE_BIT, "VK_MEMORY_HEAP_MULTI_INSTANCE_BIT_KHR"},
)

func (f MemoryHeapFlags) String() string { return memoryHeapBits.Render(f) }

type MemoryAllocateFlags uint32

const (
	MEMORY_ALLOCATE_DEVICE_MASK_BIT                   MemoryAllocateFlags = 0x00000001
	MEMORY_ALLOCATE_DEVICE_ADDRESS_BIT                MemoryAllocateFlags = 0x00000002
	MEMORY_ALLOCATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT MemoryAllocateFlags = 0x00000004
)

var memoryAllocateBits = NewFlagTable("VkMemoryAllocateFlagBits",
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_MASK_BIT, "VK_MEMORY_ALLOCATE_DEVICE_MASK_BIT"},
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_MASK_BIT, "VK_MEMORY_ALLOCATE_DEVICE_MASK_BIT_KHR"},
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_ADDRESS_BIT, "VK_MEMORY_ALLOCATE_DEVICE_ADDRESS_BIT"},
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_ADDRESS_BIT, "VK_MEMORY_ALLOCATE_DEVICE_ADDRESS_BIT_KHR"},
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT, "VK_MEMORY_ALLOCATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT"},
	Symbol[MemoryAllocateFlags]{MEMORY_ALLOCATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT, "VK_MEMORY_ALLOCATE_DEVICE_ADDRESS_CAPTURE_REPLAY_BIT_KHR"},
)

func (f MemoryAllocateFlags) String() string { return memoryAllocateBits.Render(f) }

type BufferCreateInfo struct {
	Next                  Structure
	Flags                 BufferCreateFlags
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
}

func (*BufferCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_BUFFER_CREATE_INFO }

type MemoryAllocateInfo struct {
	Next            Structure
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

func (*MemoryAllocateInfo) StructureType() StructureType { return STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO }

type MemoryAllocateFlagsInfo struct {
	Next       Structure
	Flags      MemoryAllocateFlags
	DeviceMask uint32
}

func (*MemoryAllocateFlagsInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO
}

type MemoryDedicatedAllocateInfo struct {
	Next   Structure
	Image  Image
	Buffer Buffer
}

func (*MemoryDedicatedAllocateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

// PhysicalDeviceMemoryProperties is returned by vkGetPhysicalDeviceMemoryProperties.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

func printBufferCreateInfo(p *Printer, s *BufferCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.DeviceSize("size", s.Size, false)
	p.Flags("usage", s.Usage, false)
	p.Enum("sharingMode", s.SharingMode, false)
	p.Uint32("queueFamilyIndexCount", s.QueueFamilyIndexCount, false)
	printArray(p, "pQueueFamilyIndices", s.QueueFamilyIndexCount, s.QueueFamilyIndices, (*Printer).uint32Value, true)
	p.closeObject()
}

func printMemoryAllocateInfo(p *Printer, s *MemoryAllocateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.DeviceSize("allocationSize", s.AllocationSize, false)
	p.Uint32("memoryTypeIndex", s.MemoryTypeIndex, true)
	p.closeObject()
}

func printMemoryAllocateFlagsInfo(p *Printer, s *MemoryAllocateFlagsInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("deviceMask", s.DeviceMask, true)
	p.closeObject()
}

func printMemoryDedicatedAllocateInfo(p *Printer, s *MemoryDedicatedAllocateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("image", s.Image, false)
	p.Handle("buffer", s.Buffer, true)
	p.closeObject()
}

func printMemoryRequirements(p *Printer, s *MemoryRequirements) {
	p.openObject()
	p.DeviceSize("size", s.Size, false)
	p.DeviceSize("alignment", s.Alignment, false)
	p.Uint32("memoryTypeBits", s.MemoryTypeBits, true)
	p.closeObject()
}

func printMemoryType(p *Printer, s *MemoryType) {
	p.openObject()
	p.Flags("propertyFlags", s.PropertyFlags, false)
	p.Uint32("heapIndex", s.HeapIndex, true)
	p.closeObject()
}

func printMemoryHeap(p *Printer, s *MemoryHeap) {
	p.openObject()
	p.DeviceSize("size", s.Size, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

// Only the first memoryTypeCount and memoryHeapCount entries are valid.
func printPhysicalDeviceMemoryProperties(p *Printer, s *PhysicalDeviceMemoryProperties) {
	p.openObject()
	p.Uint32("memoryTypeCount", s.MemoryTypeCount, false)
	printArray(p, "memoryTypes", s.MemoryTypeCount, s.MemoryTypes[:], printMemoryType, false)
	p.Uint32("memoryHeapCount", s.MemoryHeapCount, false)
	printArray(p, "memoryHeaps", s.MemoryHeapCount, s.MemoryHeaps[:], printMemoryHeap, true)
	p.closeObject()
}

func printBufferCopy(p *Printer, s *BufferCopy) {
	p.openObject()
	p.DeviceSize("srcOffset", s.SrcOffset, false)
	p.DeviceSize("dstOffset", s.DstOffset, false)
	p.DeviceSize("size", s.Size, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_BUFFER_CREATE_INFO, printBufferCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO, printMemoryAllocateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO, printMemoryAllocateFlagsInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO, printMemoryDedicatedAllocateInfo)

	RegisterValue(defaultRegistry, printMemoryRequirements)
	RegisterValue(defaultRegistry, printMemoryType)
	RegisterValue(defaultRegistry, printMemoryHeap)
	RegisterValue(defaultRegistry, printPhysicalDeviceMemoryProperties)
	RegisterValue(defaultRegistry, printBufferCopy)
}
