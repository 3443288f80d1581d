// descriptor.go
package vkdump

type DescriptorType int32

const (
	DESCRIPTOR_TYPE_SAMPLER                    DescriptorType = 0
	DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER     DescriptorType = 1
	DESCRIPTOR_TYPE_SAMPLED_IMAGE              DescriptorType = 2
	DESCRIPTOR_TYPE_STORAGE_IMAGE              DescriptorType = 3
	DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER       DescriptorType = 4
	DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER       DescriptorType = 5
	DESCRIPTOR_TYPE_UNIFORM_BUFFER             DescriptorType = 6
	DESCRIPTOR_TYPE_STORAGE_BUFFER             DescriptorType = 7
	DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC     DescriptorType = 8
	DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC     DescriptorType = 9
	DESCRIPTOR_TYPE_INPUT_ATTACHMENT           DescriptorType = 10
	DESCRIPTOR_TYPE_INLINE_UNIFORM_BLOCK       DescriptorType = 1000138000
	DESCRIPTOR_TYPE_ACCELERATION_STRUCTURE_KHR DescriptorType = 1000150000
	DESCRIPTOR_TYPE_MUTABLE_EXT                DescriptorType = 1000351000
)

var descriptorTypeNames = NewSymbolTable("VkDescriptorType",
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_SAMPLER, "VK_DESCRIPTOR_TYPE_SAMPLER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER, "VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_SAMPLED_IMAGE, "VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_STORAGE_IMAGE, "VK_DESCRIPTOR_TYPE_STORAGE_IMAGE"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER, "VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER, "VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_UNIFORM_BUFFER, "VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_STORAGE_BUFFER, "VK_DESCRIPTOR_TYPE_STORAGE_BUFFER"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC, "VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC, "VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_INPUT_ATTACHMENT, "VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_INLINE_UNIFORM_BLOCK, "VK_DESCRIPTOR_TYPE_INLINE_UNIFORM_BLOCK"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_INLINE_UNIFORM_BLOCK, "VK_DESCRIPTOR_TYPE_INLINE_UNIFORM_BLOCK_EXT"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_ACCELERATION_STRUCTURE_KHR, "VK_DESCRIPTOR_TYPE_ACCELERATION_STRUCTURE_KHR"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_MUTABLE_EXT, "VK_DESCRIPTOR_TYPE_MUTABLE_EXT"},
	Symbol[DescriptorType]{DESCRIPTOR_TYPE_MUTABLE_EXT, "VK_DESCRIPTOR_TYPE_MUTABLE_VALVE"},
)

func (d DescriptorType) String() string { return descriptorTypeNames.String(d) }

type DescriptorSetLayoutCreateFlags uint32

const (
	DESCRIPTOR_SET_LAYOUT_CREATE_PUSH_DESCRIPTOR_BIT_KHR    DescriptorSetLayoutCreateFlags = 0x00000001
	DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT DescriptorSetLayoutCreateFlags = 0x00000002
	DESCRIPTOR_SET_LAYOUT_CREATE_HOST_ONLY_POOL_BIT_EXT     DescriptorSetLayoutCreateFlags = 0x00000004
	DESCRIPTOR_SET_LAYOUT_CREATE_DESCRIPTOR_BUFFER_BIT_EXT  DescriptorSetLayoutCreateFlags = 0x00000010
)

var descriptorSetLayoutCreateBits = NewFlagTable("VkDescriptorSetLayoutCreateFlagBits",
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_PUSH_DESCRIPTOR_BIT_KHR, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_PUSH_DESCRIPTOR_BIT_KHR"},
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT"},
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT_EXT"},
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_HOST_ONLY_POOL_BIT_EXT, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_HOST_ONLY_POOL_BIT_EXT"},
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_HOST_ONLY_POOL_BIT_EXT, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_HOST_ONLY_POOL_BIT_VALVE"},
	Symbol[DescriptorSetLayoutCreateFlags]{DESCRIPTOR_SET_LAYOUT_CREATE_DESCRIPTOR_BUFFER_BIT_EXT, "VK_DESCRIPTOR_SET_LAYOUT_CREATE_DESCRIPTOR_BUFFER_BIT_EXT"},
)

func (f DescriptorSetLayoutCreateFlags) String() string { return descriptorSetLayoutCreateBits.Render(f) }

type DescriptorPoolCreateFlags uint32

const (
	DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT DescriptorPoolCreateFlags = 0x00000001
	DESCRIPTOR_POOL_CREATE_UPDATE_AFTER_BIND_BIT   DescriptorPoolCreateFlags = 0x00000002
	DESCRIPTOR_POOL_CREATE_HOST_ONLY_BIT_EXT       DescriptorPoolCreateFlags = 0x00000004
)

var descriptorPoolCreateBits = NewFlagTable("VkDescriptorPoolCreateFlagBits",
	Symbol[DescriptorPoolCreateFlags]{DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT, "VK_DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT"},
	Symbol[DescriptorPoolCreateFlags]{DESCRIPTOR_POOL_CREATE_UPDATE_AFTER_BIND_BIT, "VK_DESCRIPTOR_POOL_CREATE_UPDATE_AFTER_BIND_BIT"},
	Symbol[DescriptorPoolCreateFlags]{DESCRIPTOR_POOL_CREATE_UPDATE_AFTER_BIND_BIT, "VK_DESCRIPTOR_POOL_CREATE_UPDATE_AFTER_BIND_BIT_EXT"},
	Symbol[DescriptorPoolCreateFlags]{DESCRIPTOR_POOL_CREATE_HOST_ONLY_BIT_EXT, "VK_DESCRIPTOR_POOL_CREATE_HOST_ONLY_BIT_EXT"},
	Symbol[DescriptorPoolCreateFlags]{DESCRIPTOR_POOL_CREATE_HOST_ONLY_BIT_EXT, "VK_DESCRIPTOR_POOL_CREATE_HOST_ONLY_BIT_VALVE"},
)

func (f DescriptorPoolCreateFlags) String() string { return descriptorPoolCreateBits.Render(f) }

type DescriptorBindingFlags uint32

const (
	DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT           DescriptorBindingFlags = 0x00000001
	DESCRIPTOR_BINDING_UPDATE_UNUSED_WHILE_PENDING_BIT DescriptorBindingFlags = 0x00000002
	DESCRIPTOR_BINDING_PARTIALLY_BOUND_BIT             DescriptorBindingFlags = 0x00000004
	DESCRIPTOR_BINDING_VARIABLE_DESCRIPTOR_COUNT_BIT   DescriptorBindingFlags = 0x00000008
)

var descriptorBindingBits = NewFlagTable("VkDescriptorBindingFlagBits",
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT, "VK_DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT, "VK_DESCRIPTOR_BINDING_UPDATE_AFTER_BIND_BIT_EXT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_UPDATE_UNUSED_WHILE_PENDING_BIT, "VK_DESCRIPTOR_BINDING_UPDATE_UNUSED_WHILE_PENDING_BIT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_UPDATE_UNUSED_WHILE_PENDING_BIT, "VK_DESCRIPTOR_BINDING_UPDATE_UNUSED_WHILE_PENDING_BIT_EXT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_PARTIALLY_BOUND_BIT, "VK_DESCRIPTOR_BINDING_PARTIALLY_BOUND_BIT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_PARTIALLY_BOUND_BIT, "VK_DESCRIPTOR_BINDING_PARTIALLY_BOUND_BIT_EXT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_VARIABLE_DESCRIPTOR_COUNT_BIT, "VK_DESCRIPTOR_BINDING_VARIABLE_DESCRIPTOR_COUNT_BIT"},
	Symbol[DescriptorBindingFlags]{DESCRIPTOR_BINDING_VARIABLE_DESCRIPTOR_COUNT_BIT, "VK_DESCRIPTOR_BINDING_VARIABLE_DESCRIPTOR_COUNT_BIT_EXT"},
)

func (f DescriptorBindingFlags) String() string { return descriptorBindingBits.Render(f) }

type DescriptorSetLayoutBinding struct {
	Binding           uint32
	DescriptorType    DescriptorType
	DescriptorCount   uint32
	StageFlags        ShaderStageFlags
	ImmutableSamplers []Sampler
}

type DescriptorSetLayoutCreateInfo struct {
	Next         Structure
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	Bindings     []DescriptorSetLayoutBinding
}

func (*DescriptorSetLayoutCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO
}

type DescriptorSetLayoutBindingFlagsCreateInfo struct {
	Next         Structure
	BindingCount uint32
	BindingFlags []DescriptorBindingFlags
}

func (*DescriptorSetLayoutBindingFlagsCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	Next          Structure
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PoolSizes     []DescriptorPoolSize
}

func (*DescriptorPoolCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO
}

type DescriptorSetAllocateInfo struct {
	Next               Structure
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	SetLayouts         []DescriptorSetLayout
}

func (*DescriptorSetAllocateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

// WriteDescriptorSet carries three parallel array pointers of which the
// descriptor type selects one. All three are printed; unused ones are
// normally nil and print as NULL.
type WriteDescriptorSet struct {
	Next            Structure
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  DescriptorType
	ImageInfo       []DescriptorImageInfo
	BufferInfo      []DescriptorBufferInfo
	TexelBufferView []BufferView
}

func (*WriteDescriptorSet) StructureType() StructureType { return STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET }

type CopyDescriptorSet struct {
	Next            Structure
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

func (*CopyDescriptorSet) StructureType() StructureType { return STRUCTURE_TYPE_COPY_DESCRIPTOR_SET }

func printDescriptorSetLayoutBinding(p *Printer, s *DescriptorSetLayoutBinding) {
	p.openObject()
	p.Uint32("binding", s.Binding, false)
	p.Enum("descriptorType", s.DescriptorType, false)
	p.Uint32("descriptorCount", s.DescriptorCount, false)
	p.Flags("stageFlags", s.StageFlags, false)
	printArray(p, "pImmutableSamplers", s.DescriptorCount, s.ImmutableSamplers, handleElem[Sampler], true)
	p.closeObject()
}

func printDescriptorSetLayoutCreateInfo(p *Printer, s *DescriptorSetLayoutCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("bindingCount", s.BindingCount, false)
	printArray(p, "pBindings", s.BindingCount, s.Bindings, printDescriptorSetLayoutBinding, true)
	p.closeObject()
}

func printDescriptorSetLayoutBindingFlagsCreateInfo(p *Printer, s *DescriptorSetLayoutBindingFlagsCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("bindingCount", s.BindingCount, false)
	printArray(p, "pBindingFlags", s.BindingCount, s.BindingFlags, stringerValue[DescriptorBindingFlags], true)
	p.closeObject()
}

func printDescriptorPoolSize(p *Printer, s *DescriptorPoolSize) {
	p.openObject()
	p.Enum("type", s.Type, false)
	p.Uint32("descriptorCount", s.DescriptorCount, true)
	p.closeObject()
}

func printDescriptorPoolCreateInfo(p *Printer, s *DescriptorPoolCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("maxSets", s.MaxSets, false)
	p.Uint32("poolSizeCount", s.PoolSizeCount, false)
	printArray(p, "pPoolSizes", s.PoolSizeCount, s.PoolSizes, printDescriptorPoolSize, true)
	p.closeObject()
}

func printDescriptorSetAllocateInfo(p *Printer, s *DescriptorSetAllocateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("descriptorPool", s.DescriptorPool, false)
	p.Uint32("descriptorSetCount", s.DescriptorSetCount, false)
	printArray(p, "pSetLayouts", s.DescriptorSetCount, s.SetLayouts, handleElem[DescriptorSetLayout], true)
	p.closeObject()
}

func printDescriptorImageInfo(p *Printer, s *DescriptorImageInfo) {
	p.openObject()
	p.Handle("sampler", s.Sampler, false)
	p.Handle("imageView", s.ImageView, false)
	p.Enum("imageLayout", s.ImageLayout, true)
	p.closeObject()
}

func printDescriptorBufferInfo(p *Printer, s *DescriptorBufferInfo) {
	p.openObject()
	p.Handle("buffer", s.Buffer, false)
	p.DeviceSize("offset", s.Offset, false)
	p.DeviceSize("range", s.Range, true)
	p.closeObject()
}

func printWriteDescriptorSet(p *Printer, s *WriteDescriptorSet) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("dstSet", s.DstSet, false)
	p.Uint32("dstBinding", s.DstBinding, false)
	p.Uint32("dstArrayElement", s.DstArrayElement, false)
	p.Uint32("descriptorCount", s.DescriptorCount, false)
	p.Enum("descriptorType", s.DescriptorType, false)
	printArray(p, "pImageInfo", s.DescriptorCount, s.ImageInfo, printDescriptorImageInfo, false)
	printArray(p, "pBufferInfo", s.DescriptorCount, s.BufferInfo, printDescriptorBufferInfo, false)
	printArray(p, "pTexelBufferView", s.DescriptorCount, s.TexelBufferView, handleElem[BufferView], true)
	p.closeObject()
}

func printCopyDescriptorSet(p *Printer, s *CopyDescriptorSet) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("srcSet", s.SrcSet, false)
	p.Uint32("srcBinding", s.SrcBinding, false)
	p.Uint32("srcArrayElement", s.SrcArrayElement, false)
	p.Handle("dstSet", s.DstSet, false)
	p.Uint32("dstBinding", s.DstBinding, false)
	p.Uint32("dstArrayElement", s.DstArrayElement, false)
	p.Uint32("descriptorCount", s.DescriptorCount, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO, printDescriptorSetLayoutCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_BINDING_FLAGS_CREATE_INFO, printDescriptorSetLayoutBindingFlagsCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO, printDescriptorPoolCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO, printDescriptorSetAllocateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET, printWriteDescriptorSet)
	Register(defaultRegistry, STRUCTURE_TYPE_COPY_DESCRIPTOR_SET, printCopyDescriptorSet)

	RegisterValue(defaultRegistry, printDescriptorSetLayoutBinding)
	RegisterValue(defaultRegistry, printDescriptorPoolSize)
	RegisterValue(defaultRegistry, printDescriptorImageInfo)
	RegisterValue(defaultRegistry, printDescriptorBufferInfo)
}
