// shader.go
package vkdump

// ShaderStageFlags. VK_SHADER_STAGE_ALL_GRAPHICS and VK_SHADER_STAGE_ALL are
// composite masks, not bits, and render as their component stages.
type ShaderStageFlags uint32

const (
	SHADER_STAGE_VERTEX_BIT                  ShaderStageFlags = 0x00000001
	SHADER_STAGE_TESSELLATION_CONTROL_BIT    ShaderStageFlags = 0x00000002
	SHADER_STAGE_TESSELLATION_EVALUATION_BIT ShaderStageFlags = 0x00000004
	SHADER_STAGE_GEOMETRY_BIT                ShaderStageFlags = 0x00000008
	SHADER_STAGE_FRAGMENT_BIT                ShaderStageFlags = 0x00000010
	SHADER_STAGE_COMPUTE_BIT                 ShaderStageFlags = 0x00000020
	SHADER_STAGE_TASK_BIT_EXT                ShaderStageFlags = 0x00000040
	SHADER_STAGE_MESH_BIT_EXT                ShaderStageFlags = 0x00000080
	SHADER_STAGE_RAYGEN_BIT_KHR              ShaderStageFlags = 0x00000100
	SHADER_STAGE_ANY_HIT_BIT_KHR             ShaderStageFlags = 0x00000200
	SHADER_STAGE_CLOSEST_HIT_BIT_KHR         ShaderStageFlags = 0x00000400
	SHADER_STAGE_MISS_BIT_KHR                ShaderStageFlags = 0x00000800
	SHADER_STAGE_INTERSECTION_BIT_KHR        ShaderStageFlags = 0x00001000
	SHADER_STAGE_CALLABLE_BIT_KHR            ShaderStageFlags = 0x00002000
)

var shaderStageBits = NewFlagTable("VkShaderStageFlagBits",
	Symbol[ShaderStageFlags]{SHADER_STAGE_VERTEX_BIT, "VK_SHADER_STAGE_VERTEX_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_TESSELLATION_CONTROL_BIT, "VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_TESSELLATION_EVALUATION_BIT, "VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_GEOMETRY_BIT, "VK_SHADER_STAGE_GEOMETRY_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_FRAGMENT_BIT, "VK_SHADER_STAGE_FRAGMENT_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_COMPUTE_BIT, "VK_SHADER_STAGE_COMPUTE_BIT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_TASK_BIT_EXT, "VK_SHADER_STAGE_TASK_BIT_EXT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_TASK_BIT_EXT, "VK_SHADER_STAGE_TASK_BIT_NV"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_MESH_BIT_EXT, "VK_SHADER_STAGE_MESH_BIT_EXT"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_MESH_BIT_EXT, "VK_SHADER_STAGE_MESH_BIT_NV"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_RAYGEN_BIT_KHR, "VK_SHADER_STAGE_RAYGEN_BIT_KHR"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_ANY_HIT_BIT_KHR, "VK_SHADER_STAGE_ANY_HIT_BIT_KHR"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_CLOSEST_HIT_BIT_KHR, "VK_SHADER_STAGE_CLOSEST_HIT_BIT_KHR"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_MISS_BIT_KHR, "VK_SHADER_STAGE_MISS_BIT_KHR"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_INTERSECTION_BIT_KHR, "VK_SHADER_STAGE_INTERSECTION_BIT_KHR"},
	Symbol[ShaderStageFlags]{SHADER_STAGE_CALLABLE_BIT_KHR, "VK_SHADER_STAGE_CALLABLE_BIT_KHR"},
)

func (f ShaderStageFlags) String() string { return shaderStageBits.Render(f) }

// ShaderModuleCreateFlags is reserved.
type ShaderModuleCreateFlags uint32

var shaderModuleCreateBits = NewFlagTable[ShaderModuleCreateFlags]("VkShaderModuleCreateFlags")

func (f ShaderModuleCreateFlags) String() string { return shaderModuleCreateBits.Render(f) }

type PipelineCacheCreateFlags uint32

const PIPELINE_CACHE_CREATE_EXTERNALLY_SYNCHRONIZED_BIT PipelineCacheCreateFlags = 0x00000001

var pipelineCacheCreateBits = NewFlagTable("VkPipelineCacheCreateFlagBits",
	Symbol[PipelineCacheCreateFlags]{PIPELINE_CACHE_CREATE_EXTERNALLY_SYNCHRONIZED_BIT, "VK_PIPELINE_CACHE_CREATE_EXTERNALLY_SYNCHRONIZED_BIT"},
	Symbol[PipelineCacheCreateFlags]{PIPELINE_CACHE_CREATE_EXTERNALLY_SYNCHRONIZED_BIT, "VK_PIPELINE_CACHE_CREATE_EXTERNALLY_SYNCHRONIZED_BIT_EXT"},
)

func (f PipelineCacheCreateFlags) String() string { return pipelineCacheCreateBits.Render(f) }

type PipelineShaderStageCreateFlags uint32

const (
	PIPELINE_SHADER_STAGE_CREATE_ALLOW_VARYING_SUBGROUP_SIZE_BIT PipelineShaderStageCreateFlags = 0x00000001
	PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT      PipelineShaderStageCreateFlags = 0x00000002
)

var pipelineShaderStageCreateBits = NewFlagTable("VkPipelineShaderStageCreateFlagBits",
	Symbol[PipelineShaderStageCreateFlags]{PIPELINE_SHADER_STAGE_CREATE_ALLOW_VARYING_SUBGROUP_SIZE_BIT, "VK_PIPELINE_SHADER_STAGE_CREATE_ALLOW_VARYING_SUBGROUP_SIZE_BIT"},
	Symbol[PipelineShaderStageCreateFlags]{PIPELINE_SHADER_STAGE_CREATE_ALLOW_VARYING_SUBGROUP_SIZE_BIT, "VK_PIPELINE_SHADER_STAGE_CREATE_ALLOW_VARYING_SUBGROUP_SIZE_BIT_EXT"},
	Symbol[PipelineShaderStageCreateFlags]{PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT, "VK_PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT"},
	Symbol[PipelineShaderStageCreateFlags]{PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT, "VK_PIPELINE_SHADER_STAGE_CREATE_REQUIRE_FULL_SUBGROUPS_BIT_EXT"},
)

func (f PipelineShaderStageCreateFlags) String() string { return pipelineShaderStageCreateBits.Render(f) }

// ShaderModuleCreateInfo holds SPIR-V as raw bytes. CodeSize is in bytes, as
// in the C struct, and bounds how much of Code is printed.
type ShaderModuleCreateInfo struct {
	Next     Structure
	Flags    ShaderModuleCreateFlags
	CodeSize uint64
	Code     []byte
}

func (*ShaderModuleCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO
}

type PipelineCacheCreateInfo struct {
	Next            Structure
	Flags           PipelineCacheCreateFlags
	InitialDataSize uint64
	InitialData     []byte
}

func (*PipelineCacheCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO
}

type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint64
}

type SpecializationInfo struct {
	MapEntryCount uint32
	MapEntries    []SpecializationMapEntry
	DataSize      uint64
	Data          []byte
}

type PipelineShaderStageCreateInfo struct {
	Next               Structure
	Flags              PipelineShaderStageCreateFlags
	Stage              ShaderStageFlags
	Module             ShaderModule
	Name               string
	SpecializationInfo *SpecializationInfo
}

func (*PipelineShaderStageCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO
}

type PipelineShaderStageRequiredSubgroupSizeCreateInfo struct {
	Next                 Structure
	RequiredSubgroupSize uint32
}

func (*PipelineShaderStageRequiredSubgroupSizeCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO
}

func printShaderModuleCreateInfo(p *Printer, s *ShaderModuleCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint64("codeSize", s.CodeSize, false)
	p.SizedBlob("pCode", s.Code, s.CodeSize, true)
	p.closeObject()
}

func printPipelineCacheCreateInfo(p *Printer, s *PipelineCacheCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint64("initialDataSize", s.InitialDataSize, false)
	p.SizedBlob("pInitialData", s.InitialData, s.InitialDataSize, true)
	p.closeObject()
}

func printSpecializationMapEntry(p *Printer, s *SpecializationMapEntry) {
	p.openObject()
	p.Uint32("constantID", s.ConstantID, false)
	p.Uint32("offset", s.Offset, false)
	p.Uint64("size", s.Size, true)
	p.closeObject()
}

func printSpecializationInfo(p *Printer, s *SpecializationInfo) {
	p.openObject()
	p.Uint32("mapEntryCount", s.MapEntryCount, false)
	printArray(p, "pMapEntries", s.MapEntryCount, s.MapEntries, printSpecializationMapEntry, false)
	p.Uint64("dataSize", s.DataSize, false)
	p.SizedBlob("pData", s.Data, s.DataSize, true)
	p.closeObject()
}

func printPipelineShaderStageCreateInfo(p *Printer, s *PipelineShaderStageCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Flags("stage", s.Stage, false)
	p.Handle("module", s.Module, false)
	p.CString("pName", s.Name, false)
	printPointer(p, "pSpecializationInfo", s.SpecializationInfo, printSpecializationInfo, true)
	p.closeObject()
}

func printPipelineShaderStageRequiredSubgroupSizeCreateInfo(p *Printer, s *PipelineShaderStageRequiredSubgroupSizeCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("requiredSubgroupSize", s.RequiredSubgroupSize, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO, printShaderModuleCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO, printPipelineCacheCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO, printPipelineShaderStageCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_REQUIRED_SUBGROUP_SIZE_CREATE_INFO, printPipelineShaderStageRequiredSubgroupSizeCreateInfo)

	RegisterValue(defaultRegistry, printSpecializationMapEntry)
	RegisterValue(defaultRegistry, printSpecializationInfo)
}
