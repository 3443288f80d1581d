// pipeline.go
package vkdump

type PipelineCreateFlags uint32

const (
	PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT              PipelineCreateFlags = 0x00000001
	PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT                 PipelineCreateFlags = 0x00000002
	PIPELINE_CREATE_DERIVATIVE_BIT                        PipelineCreateFlags = 0x00000004
	PIPELINE_CREATE_VIEW_INDEX_FROM_DEVICE_INDEX_BIT      PipelineCreateFlags = 0x00000008
	PIPELINE_CREATE_DISPATCH_BASE_BIT                     PipelineCreateFlags = 0x00000010
	PIPELINE_CREATE_FAIL_ON_PIPELINE_COMPILE_REQUIRED_BIT PipelineCreateFlags = 0x00000100
	PIPELINE_CREATE_EARLY_RETURN_ON_FAILURE_BIT           PipelineCreateFlags = 0x00000200
)

var pipelineCreateBits = NewFlagTable("VkPipelineCreateFlagBits",
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT, "VK_PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT, "VK_PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_DERIVATIVE_BIT, "VK_PIPELINE_CREATE_DERIVATIVE_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_VIEW_INDEX_FROM_DEVICE_INDEX_BIT, "VK_PIPELINE_CREATE_VIEW_INDEX_FROM_DEVICE_INDEX_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_DISPATCH_BASE_BIT, "VK_PIPELINE_CREATE_DISPATCH_BASE_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_FAIL_ON_PIPELINE_COMPILE_REQUIRED_BIT, "VK_PIPELINE_CREATE_FAIL_ON_PIPELINE_COMPILE_REQUIRED_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_FAIL_ON_PIPELINE_COMPILE_REQUIRED_BIT, "VK_PIPELINE_CREATE_FAIL_ON_PIPELINE_COMPILE_REQUIRED_BIT_EXT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_EARLY_RETURN_ON_FAILURE_BIT, "VK_PIPELINE_CREATE_EARLY_RETURN_ON_FAILURE_BIT"},
	Symbol[PipelineCreateFlags]{PIPELINE_CREATE_EARLY_RETURN_ON_FAILURE_BIT, "VK_PIPELINE_CREATE_EARLY_RETURN_ON_FAILURE_BIT_EXT"},
)

func (f PipelineCreateFlags) String() string { return pipelineCreateBits.Render(f) }

// PipelineStateCreateFlags stands in for the reserved flags members of the
// pipeline state structures and VkPipelineLayoutCreateInfo.
type PipelineStateCreateFlags uint32

var pipelineStateCreateBits = NewFlagTable[PipelineStateCreateFlags]("VkFlags")

func (f PipelineStateCreateFlags) String() string { return pipelineStateCreateBits.Render(f) }

type PrimitiveTopology int32

const (
	PRIMITIVE_TOPOLOGY_POINT_LIST                    PrimitiveTopology = 0
	PRIMITIVE_TOPOLOGY_LINE_LIST                     PrimitiveTopology = 1
	PRIMITIVE_TOPOLOGY_LINE_STRIP                    PrimitiveTopology = 2
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST                 PrimitiveTopology = 3
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP                PrimitiveTopology = 4
	PRIMITIVE_TOPOLOGY_TRIANGLE_FAN                  PrimitiveTopology = 5
	PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY      PrimitiveTopology = 6
	PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY     PrimitiveTopology = 7
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY  PrimitiveTopology = 8
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY PrimitiveTopology = 9
	PRIMITIVE_TOPOLOGY_PATCH_LIST                    PrimitiveTopology = 10
)

var primitiveTopologyNames = NewSymbolTable("VkPrimitiveTopology",
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_POINT_LIST, "VK_PRIMITIVE_TOPOLOGY_POINT_LIST"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_LINE_LIST, "VK_PRIMITIVE_TOPOLOGY_LINE_LIST"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_LINE_STRIP, "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_TRIANGLE_LIST, "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP, "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_TRIANGLE_FAN, "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY, "VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY, "VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY, "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY, "VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY"},
	Symbol[PrimitiveTopology]{PRIMITIVE_TOPOLOGY_PATCH_LIST, "VK_PRIMITIVE_TOPOLOGY_PATCH_LIST"},
)

func (t PrimitiveTopology) String() string { return primitiveTopologyNames.String(t) }

type PolygonMode int32

const (
	POLYGON_MODE_FILL  PolygonMode = 0
	POLYGON_MODE_LINE  PolygonMode = 1
	POLYGON_MODE_POINT PolygonMode = 2
)

var polygonModeNames = NewSymbolTable("VkPolygonMode",
	Symbol[PolygonMode]{POLYGON_MODE_FILL, "VK_POLYGON_MODE_FILL"},
	Symbol[PolygonMode]{POLYGON_MODE_LINE, "VK_POLYGON_MODE_LINE"},
	Symbol[PolygonMode]{POLYGON_MODE_POINT, "VK_POLYGON_MODE_POINT"},
)

func (m PolygonMode) String() string { return polygonModeNames.String(m) }

// CullModeFlags. VK_CULL_MODE_FRONT_AND_BACK renders as both bits.
type CullModeFlags uint32

const (
	CULL_MODE_FRONT_BIT CullModeFlags = 0x00000001
	CULL_MODE_BACK_BIT  CullModeFlags = 0x00000002
)

var cullModeBits = NewFlagTable("VkCullModeFlagBits",
	Symbol[CullModeFlags]{CULL_MODE_FRONT_BIT, "VK_CULL_MODE_FRONT_BIT"},
	Symbol[CullModeFlags]{CULL_MODE_BACK_BIT, "VK_CULL_MODE_BACK_BIT"},
)

func (f CullModeFlags) String() string { return cullModeBits.Render(f) }

type FrontFace int32

const (
	FRONT_FACE_COUNTER_CLOCKWISE FrontFace = 0
	FRONT_FACE_CLOCKWISE         FrontFace = 1
)

var frontFaceNames = NewSymbolTable("VkFrontFace",
	Symbol[FrontFace]{FRONT_FACE_COUNTER_CLOCKWISE, "VK_FRONT_FACE_COUNTER_CLOCKWISE"},
	Symbol[FrontFace]{FRONT_FACE_CLOCKWISE, "VK_FRONT_FACE_CLOCKWISE"},
)

func (f FrontFace) String() string { return frontFaceNames.String(f) }

type VertexInputRate int32

const (
	VERTEX_INPUT_RATE_VERTEX   VertexInputRate = 0
	VERTEX_INPUT_RATE_INSTANCE VertexInputRate = 1
)

var vertexInputRateNames = NewSymbolTable("VkVertexInputRate",
	Symbol[VertexInputRate]{VERTEX_INPUT_RATE_VERTEX, "VK_VERTEX_INPUT_RATE_VERTEX"},
	Symbol[VertexInputRate]{VERTEX_INPUT_RATE_INSTANCE, "VK_VERTEX_INPUT_RATE_INSTANCE"},
)

func (v VertexInputRate) String() string { return vertexInputRateNames.String(v) }

type BlendFactor int32

const (
	BLEND_FACTOR_ZERO                     BlendFactor = 0
	BLEND_FACTOR_ONE                      BlendFactor = 1
	BLEND_FACTOR_SRC_COLOR                BlendFactor = 2
	BLEND_FACTOR_ONE_MINUS_SRC_COLOR      BlendFactor = 3
	BLEND_FACTOR_DST_COLOR                BlendFactor = 4
	BLEND_FACTOR_ONE_MINUS_DST_COLOR      BlendFactor = 5
	BLEND_FACTOR_SRC_ALPHA                BlendFactor = 6
	BLEND_FACTOR_ONE_MINUS_SRC_ALPHA      BlendFactor = 7
	BLEND_FACTOR_DST_ALPHA                BlendFactor = 8
	BLEND_FACTOR_ONE_MINUS_DST_ALPHA      BlendFactor = 9
	BLEND_FACTOR_CONSTANT_COLOR           BlendFactor = 10
	BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR BlendFactor = 11
	BLEND_FACTOR_CONSTANT_ALPHA           BlendFactor = 12
	BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA BlendFactor = 13
	BLEND_FACTOR_SRC_ALPHA_SATURATE       BlendFactor = 14
	BLEND_FACTOR_SRC1_COLOR               BlendFactor = 15
	BLEND_FACTOR_ONE_MINUS_SRC1_COLOR     BlendFactor = 16
	BLEND_FACTOR_SRC1_ALPHA               BlendFactor = 17
	BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA     BlendFactor = 18
)

var blendFactorNames = NewSymbolTable("VkBlendFactor",
	Symbol[BlendFactor]{BLEND_FACTOR_ZERO, "VK_BLEND_FACTOR_ZERO"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE, "VK_BLEND_FACTOR_ONE"},
	Symbol[BlendFactor]{BLEND_FACTOR_SRC_COLOR, "VK_BLEND_FACTOR_SRC_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_SRC_COLOR, "VK_BLEND_FACTOR_ONE_MINUS_SRC_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_DST_COLOR, "VK_BLEND_FACTOR_DST_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_DST_COLOR, "VK_BLEND_FACTOR_ONE_MINUS_DST_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_SRC_ALPHA, "VK_BLEND_FACTOR_SRC_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_SRC_ALPHA, "VK_BLEND_FACTOR_ONE_MINUS_SRC_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_DST_ALPHA, "VK_BLEND_FACTOR_DST_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_DST_ALPHA, "VK_BLEND_FACTOR_ONE_MINUS_DST_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_CONSTANT_COLOR, "VK_BLEND_FACTOR_CONSTANT_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR, "VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_CONSTANT_ALPHA, "VK_BLEND_FACTOR_CONSTANT_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA, "VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_SRC_ALPHA_SATURATE, "VK_BLEND_FACTOR_SRC_ALPHA_SATURATE"},
	Symbol[BlendFactor]{BLEND_FACTOR_SRC1_COLOR, "VK_BLEND_FACTOR_SRC1_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_SRC1_COLOR, "VK_BLEND_FACTOR_ONE_MINUS_SRC1_COLOR"},
	Symbol[BlendFactor]{BLEND_FACTOR_SRC1_ALPHA, "VK_BLEND_FACTOR_SRC1_ALPHA"},
	Symbol[BlendFactor]{BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA, "VK_BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA"},
)

func (b BlendFactor) String() string { return blendFactorNames.String(b) }

type BlendOp int32

const (
	BLEND_OP_ADD              BlendOp = 0
	BLEND_OP_SUBTRACT         BlendOp = 1
	BLEND_OP_REVERSE_SUBTRACT BlendOp = 2
	BLEND_OP_MIN              BlendOp = 3
	BLEND_OP_MAX              BlendOp = 4
)

var blendOpNames = NewSymbolTable("VkBlendOp",
	Symbol[BlendOp]{BLEND_OP_ADD, "VK_BLEND_OP_ADD"},
	Symbol[BlendOp]{BLEND_OP_SUBTRACT, "VK_BLEND_OP_SUBTRACT"},
	Symbol[BlendOp]{BLEND_OP_REVERSE_SUBTRACT, "VK_BLEND_OP_REVERSE_SUBTRACT"},
	Symbol[BlendOp]{BLEND_OP_MIN, "VK_BLEND_OP_MIN"},
	Symbol[BlendOp]{BLEND_OP_MAX, "VK_BLEND_OP_MAX"},
)

func (op BlendOp) String() string { return blendOpNames.String(op) }

type ColorComponentFlags uint32

const (
	COLOR_COMPONENT_R_BIT ColorComponentFlags = 0x00000001
	COLOR_COMPONENT_G_BIT ColorComponentFlags = 0x00000002
	COLOR_COMPONENT_B_BIT ColorComponentFlags = 0x00000004
	COLOR_COMPONENT_A_BIT ColorComponentFlags = 0x00000008
)

var colorComponentBits = NewFlagTable("VkColorComponentFlagBits",
	Symbol[ColorComponentFlags]{COLOR_COMPONENT_R_BIT, "VK_COLOR_COMPONENT_R_BIT"},
	Symbol[ColorComponentFlags]{COLOR_COMPONENT_G_BIT, "VK_COLOR_COMPONENT_G_BIT"},
	Symbol[ColorComponentFlags]{COLOR_COMPONENT_B_BIT, "VK_COLOR_COMPONENT_B_BIT"},
	Symbol[ColorComponentFlags]{COLOR_COMPONENT_A_BIT, "VK_COLOR_COMPONENT_A_BIT"},
)

func (f ColorComponentFlags) String() string { return colorComponentBits.Render(f) }

type LogicOp int32

const (
	LOGIC_OP_CLEAR         LogicOp = 0
	LOGIC_OP_AND           LogicOp = 1
	LOGIC_OP_AND_REVERSE   LogicOp = 2
	LOGIC_OP_COPY          LogicOp = 3
	LOGIC_OP_AND_INVERTED  LogicOp = 4
	LOGIC_OP_NO_OP         LogicOp = 5
	LOGIC_OP_XOR           LogicOp = 6
	LOGIC_OP_OR            LogicOp = 7
	LOGIC_OP_NOR           LogicOp = 8
	LOGIC_OP_EQUIVALENT    LogicOp = 9
	LOGIC_OP_INVERT        LogicOp = 10
	LOGIC_OP_OR_REVERSE    LogicOp = 11
	LOGIC_OP_COPY_INVERTED LogicOp = 12
	LOGIC_OP_OR_INVERTED   LogicOp = 13
	LOGIC_OP_NAND          LogicOp = 14
	LOGIC_OP_SET           LogicOp = 15
)

var logicOpNames = NewSymbolTable("VkLogicOp",
	Symbol[LogicOp]{LOGIC_OP_CLEAR, "VK_LOGIC_OP_CLEAR"},
	Symbol[LogicOp]{LOGIC_OP_AND, "VK_LOGIC_OP_AND"},
	Symbol[LogicOp]{LOGIC_OP_AND_REVERSE, "VK_LOGIC_OP_AND_REVERSE"},
	Symbol[LogicOp]{LOGIC_OP_COPY, "VK_LOGIC_OP_COPY"},
	Symbol[LogicOp]{LOGIC_OP_AND_INVERTED, "VK_LOGIC_OP_AND_INVERTED"},
	Symbol[LogicOp]{LOGIC_OP_NO_OP, "VK_LOGIC_OP_NO_OP"},
	Symbol[LogicOp]{LOGIC_OP_XOR, "VK_LOGIC_OP_XOR"},
	Symbol[LogicOp]{LOGIC_OP_OR, "VK_LOGIC_OP_OR"},
	Symbol[LogicOp]{LOGIC_OP_NOR, "VK_LOGIC_OP_NOR"},
	Symbol[LogicOp]{LOGIC_OP_EQUIVALENT, "VK_LOGIC_OP_EQUIVALENT"},
	Symbol[LogicOp]{LOGIC_OP_INVERT, "VK_LOGIC_OP_INVERT"},
	Symbol[LogicOp]{LOGIC_OP_OR_REVERSE, "VK_LOGIC_OP_OR_REVERSE"},
	Symbol[LogicOp]{LOGIC_OP_COPY_INVERTED, "VK_LOGIC_OP_COPY_INVERTED"},
	Symbol[LogicOp]{LOGIC_OP_OR_INVERTED, "VK_LOGIC_OP_OR_INVERTED"},
	Symbol[LogicOp]{LOGIC_OP_NAND, "VK_LOGIC_OP_NAND"},
	Symbol[LogicOp]{LOGIC_OP_SET, "VK_LOGIC_OP_SET"},
)

func (op LogicOp) String() string { return logicOpNames.String(op) }

type StencilOp int32

const (
	STENCIL_OP_KEEP                StencilOp = 0
	STENCIL_OP_ZERO                StencilOp = 1
	STENCIL_OP_REPLACE             StencilOp = 2
	STENCIL_OP_INCREMENT_AND_CLAMP StencilOp = 3
	STENCIL_OP_DECREMENT_AND_CLAMP StencilOp = 4
	STENCIL_OP_INVERT              StencilOp = 5
	STENCIL_OP_INCREMENT_AND_WRAP  StencilOp = 6
	STENCIL_OP_DECREMENT_AND_WRAP  StencilOp = 7
)

var stencilOpNames = NewSymbolTable("VkStencilOp",
	Symbol[StencilOp]{STENCIL_OP_KEEP, "VK_STENCIL_OP_KEEP"},
	Symbol[StencilOp]{STENCIL_OP_ZERO, "VK_STENCIL_OP_ZERO"},
	Symbol[StencilOp]{STENCIL_OP_REPLACE, "VK_STENCIL_OP_REPLACE"},
	Symbol[StencilOp]{STENCIL_OP_INCREMENT_AND_CLAMP, "VK_STENCIL_OP_INCREMENT_AND_CLAMP"},
	Symbol[StencilOp]{STENCIL_OP_DECREMENT_AND_CLAMP, "VK_STENCIL_OP_DECREMENT_AND_CLAMP"},
	Symbol[StencilOp]{STENCIL_OP_INVERT, "VK_STENCIL_OP_INVERT"},
	Symbol[StencilOp]{STENCIL_OP_INCREMENT_AND_WRAP, "VK_STENCIL_OP_INCREMENT_AND_WRAP"},
	Symbol[StencilOp]{STENCIL_OP_DECREMENT_AND_WRAP, "VK_STENCIL_OP_DECREMENT_AND_WRAP"},
)

func (op StencilOp) String() string { return stencilOpNames.String(op) }

type DynamicState int32

const (
	DYNAMIC_STATE_VIEWPORT             DynamicState = 0
	DYNAMIC_STATE_SCISSOR              DynamicState = 1
	DYNAMIC_STATE_LINE_WIDTH           DynamicState = 2
	DYNAMIC_STATE_DEPTH_BIAS           DynamicState = 3
	DYNAMIC_STATE_BLEND_CONSTANTS      DynamicState = 4
	DYNAMIC_STATE_DEPTH_BOUNDS         DynamicState = 5
	DYNAMIC_STATE_STENCIL_COMPARE_MASK DynamicState = 6
	DYNAMIC_STATE_STENCIL_WRITE_MASK   DynamicState = 7
	DYNAMIC_STATE_STENCIL_REFERENCE    DynamicState = 8
	DYNAMIC_STATE_CULL_MODE            DynamicState = 1000267000
	DYNAMIC_STATE_FRONT_FACE           DynamicState = 1000267001
	DYNAMIC_STATE_PRIMITIVE_TOPOLOGY   DynamicState = 1000267002
	DYNAMIC_STATE_VIEWPORT_WITH_COUNT  DynamicState = 1000267003
	DYNAMIC_STATE_SCISSOR_WITH_COUNT   DynamicState = 1000267004
	DYNAMIC_STATE_DEPTH_TEST_ENABLE    DynamicState = 1000267006
	DYNAMIC_STATE_DEPTH_WRITE_ENABLE   DynamicState = 1000267007
)

var dynamicStateNames = NewSymbolTable("VkDynamicState",
	Symbol[DynamicState]{DYNAMIC_STATE_VIEWPORT, "VK_DYNAMIC_STATE_VIEWPORT"},
	Symbol[DynamicState]{DYNAMIC_STATE_SCISSOR, "VK_DYNAMIC_STATE_SCISSOR"},
	Symbol[DynamicState]{DYNAMIC_STATE_LINE_WIDTH, "VK_DYNAMIC_STATE_LINE_WIDTH"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_BIAS, "VK_DYNAMIC_STATE_DEPTH_BIAS"},
	Symbol[DynamicState]{DYNAMIC_STATE_BLEND_CONSTANTS, "VK_DYNAMIC_STATE_BLEND_CONSTANTS"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_BOUNDS, "VK_DYNAMIC_STATE_DEPTH_BOUNDS"},
	Symbol[DynamicState]{DYNAMIC_STATE_STENCIL_COMPARE_MASK, "VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK"},
	Symbol[DynamicState]{DYNAMIC_STATE_STENCIL_WRITE_MASK, "VK_DYNAMIC_STATE_STENCIL_WRITE_MASK"},
	Symbol[DynamicState]{DYNAMIC_STATE_STENCIL_REFERENCE, "VK_DYNAMIC_STATE_STENCIL_REFERENCE"},
	Symbol[DynamicState]{DYNAMIC_STATE_CULL_MODE, "VK_DYNAMIC_STATE_CULL_MODE"},
	Symbol[DynamicState]{DYNAMIC_STATE_CULL_MODE, "VK_DYNAMIC_STATE_CULL_MODE_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_FRONT_FACE, "VK_DYNAMIC_STATE_FRONT_FACE"},
	Symbol[DynamicState]{DYNAMIC_STATE_FRONT_FACE, "VK_DYNAMIC_STATE_FRONT_FACE_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_PRIMITIVE_TOPOLOGY, "VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY"},
	Symbol[DynamicState]{DYNAMIC_STATE_PRIMITIVE_TOPOLOGY, "VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_VIEWPORT_WITH_COUNT, "VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT"},
	Symbol[DynamicState]{DYNAMIC_STATE_VIEWPORT_WITH_COUNT, "VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_SCISSOR_WITH_COUNT, "VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT"},
	Symbol[DynamicState]{DYNAMIC_STATE_SCISSOR_WITH_COUNT, "VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_TEST_ENABLE, "VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_TEST_ENABLE, "VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE_EXT"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_WRITE_ENABLE, "VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE"},
	Symbol[DynamicState]{DYNAMIC_STATE_DEPTH_WRITE_ENABLE, "VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE_EXT"},
)

func (d DynamicState) String() string { return dynamicStateNames.String(d) }

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	Next                   Structure
	Flags                  PipelineStateCreateFlags
	SetLayoutCount         uint32
	SetLayouts             []DescriptorSetLayout
	PushConstantRangeCount uint32
	PushConstantRanges     []PushConstantRange
}

func (*PipelineLayoutCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO
}

type ComputePipelineCreateInfo struct {
	Next               Structure
	Flags              PipelineCreateFlags
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

func (*ComputePipelineCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO
}

// PipelineRenderingCreateInfo chains onto VkGraphicsPipelineCreateInfo when
// the pipeline targets dynamic rendering instead of a render pass.
type PipelineRenderingCreateInfo struct {
	Next                    Structure
	ViewMask                uint32
	ColorAttachmentCount    uint32
	ColorAttachmentFormats  []Format
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
}

func (*PipelineRenderingCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO
}

// Graphics pipeline state.

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	Next                            Structure
	Flags                           PipelineStateCreateFlags
	VertexBindingDescriptionCount   uint32
	VertexBindingDescriptions       []VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	VertexAttributeDescriptions     []VertexInputAttributeDescription
}

func (*PipelineVertexInputStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO
}

type PipelineInputAssemblyStateCreateInfo struct {
	Next                   Structure
	Flags                  PipelineStateCreateFlags
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

func (*PipelineInputAssemblyStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO
}

type PipelineTessellationStateCreateInfo struct {
	Next               Structure
	Flags              PipelineStateCreateFlags
	PatchControlPoints uint32
}

func (*PipelineTessellationStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type PipelineViewportStateCreateInfo struct {
	Next          Structure
	Flags         PipelineStateCreateFlags
	ViewportCount uint32
	Viewports     []Viewport
	ScissorCount  uint32
	Scissors      []Rect2D
}

func (*PipelineViewportStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO
}

type PipelineRasterizationStateCreateInfo struct {
	Next                    Structure
	Flags                   PipelineStateCreateFlags
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

func (*PipelineRasterizationStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO
}

// PipelineMultisampleStateCreateInfo.SampleMask holds one word per 32
// rasterization samples.
type PipelineMultisampleStateCreateInfo struct {
	Next                  Structure
	Flags                 PipelineStateCreateFlags
	RasterizationSamples  SampleCountFlags
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	SampleMask            []uint32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

func (*PipelineMultisampleStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	Next                  Structure
	Flags                 PipelineStateCreateFlags
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

func (*PipelineDepthStencilStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	Next            Structure
	Flags           PipelineStateCreateFlags
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	Attachments     []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

func (*PipelineColorBlendStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO
}

type PipelineDynamicStateCreateInfo struct {
	Next              Structure
	Flags             PipelineStateCreateFlags
	DynamicStateCount uint32
	DynamicStates     []DynamicState
}

func (*PipelineDynamicStateCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO
}

type GraphicsPipelineCreateInfo struct {
	Next               Structure
	Flags              PipelineCreateFlags
	StageCount         uint32
	Stages             []PipelineShaderStageCreateInfo
	VertexInputState   *PipelineVertexInputStateCreateInfo
	InputAssemblyState *PipelineInputAssemblyStateCreateInfo
	TessellationState  *PipelineTessellationStateCreateInfo
	ViewportState      *PipelineViewportStateCreateInfo
	RasterizationState *PipelineRasterizationStateCreateInfo
	MultisampleState   *PipelineMultisampleStateCreateInfo
	DepthStencilState  *PipelineDepthStencilStateCreateInfo
	ColorBlendState    *PipelineColorBlendStateCreateInfo
	DynamicState       *PipelineDynamicStateCreateInfo
	Layout             PipelineLayout
	RenderPass         RenderPass
	Subpass            uint32
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

func (*GraphicsPipelineCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO
}

func printPushConstantRange(p *Printer, s *PushConstantRange) {
	p.openObject()
	p.Flags("stageFlags", s.StageFlags, false)
	p.Uint32("offset", s.Offset, false)
	p.Uint32("size", s.Size, true)
	p.closeObject()
}

func printPipelineLayoutCreateInfo(p *Printer, s *PipelineLayoutCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("setLayoutCount", s.SetLayoutCount, false)
	printArray(p, "pSetLayouts", s.SetLayoutCount, s.SetLayouts, handleElem[DescriptorSetLayout], false)
	p.Uint32("pushConstantRangeCount", s.PushConstantRangeCount, false)
	printArray(p, "pPushConstantRanges", s.PushConstantRangeCount, s.PushConstantRanges, printPushConstantRange, true)
	p.closeObject()
}

func printComputePipelineCreateInfo(p *Printer, s *ComputePipelineCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	printInline(p, "stage", &s.Stage, printPipelineShaderStageCreateInfo, false)
	p.Handle("layout", s.Layout, false)
	p.Handle("basePipelineHandle", s.BasePipelineHandle, false)
	p.Int32("basePipelineIndex", s.BasePipelineIndex, true)
	p.closeObject()
}

func printPipelineRenderingCreateInfo(p *Printer, s *PipelineRenderingCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("viewMask", s.ViewMask, false)
	p.Uint32("colorAttachmentCount", s.ColorAttachmentCount, false)
	printArray(p, "pColorAttachmentFormats", s.ColorAttachmentCount, s.ColorAttachmentFormats, stringerValue[Format], false)
	p.Enum("depthAttachmentFormat", s.DepthAttachmentFormat, false)
	p.Enum("stencilAttachmentFormat", s.StencilAttachmentFormat, true)
	p.closeObject()
}

func printVertexInputBindingDescription(p *Printer, s *VertexInputBindingDescription) {
	p.openObject()
	p.Uint32("binding", s.Binding, false)
	p.Uint32("stride", s.Stride, false)
	p.Enum("inputRate", s.InputRate, true)
	p.closeObject()
}

func printVertexInputAttributeDescription(p *Printer, s *VertexInputAttributeDescription) {
	p.openObject()
	p.Uint32("location", s.Location, false)
	p.Uint32("binding", s.Binding, false)
	p.Enum("format", s.Format, false)
	p.Uint32("offset", s.Offset, true)
	p.closeObject()
}

func printPipelineVertexInputStateCreateInfo(p *Printer, s *PipelineVertexInputStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("vertexBindingDescriptionCount", s.VertexBindingDescriptionCount, false)
	printArray(p, "pVertexBindingDescriptions", s.VertexBindingDescriptionCount, s.VertexBindingDescriptions, printVertexInputBindingDescription, false)
	p.Uint32("vertexAttributeDescriptionCount", s.VertexAttributeDescriptionCount, false)
	printArray(p, "pVertexAttributeDescriptions", s.VertexAttributeDescriptionCount, s.VertexAttributeDescriptions, printVertexInputAttributeDescription, true)
	p.closeObject()
}

func printPipelineInputAssemblyStateCreateInfo(p *Printer, s *PipelineInputAssemblyStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Enum("topology", s.Topology, false)
	p.Bool32("primitiveRestartEnable", s.PrimitiveRestartEnable, true)
	p.closeObject()
}

func printPipelineTessellationStateCreateInfo(p *Printer, s *PipelineTessellationStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("patchControlPoints", s.PatchControlPoints, true)
	p.closeObject()
}

func printViewport(p *Printer, s *Viewport) {
	p.openObject()
	p.Float32("x", s.X, false)
	p.Float32("y", s.Y, false)
	p.Float32("width", s.Width, false)
	p.Float32("height", s.Height, false)
	p.Float32("minDepth", s.MinDepth, false)
	p.Float32("maxDepth", s.MaxDepth, true)
	p.closeObject()
}

func printPipelineViewportStateCreateInfo(p *Printer, s *PipelineViewportStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("viewportCount", s.ViewportCount, false)
	printArray(p, "pViewports", s.ViewportCount, s.Viewports, printViewport, false)
	p.Uint32("scissorCount", s.ScissorCount, false)
	printArray(p, "pScissors", s.ScissorCount, s.Scissors, printRect2D, true)
	p.closeObject()
}

func printPipelineRasterizationStateCreateInfo(p *Printer, s *PipelineRasterizationStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Bool32("depthClampEnable", s.DepthClampEnable, false)
	p.Bool32("rasterizerDiscardEnable", s.RasterizerDiscardEnable, false)
	p.Enum("polygonMode", s.PolygonMode, false)
	p.Flags("cullMode", s.CullMode, false)
	p.Enum("frontFace", s.FrontFace, false)
	p.Bool32("depthBiasEnable", s.DepthBiasEnable, false)
	p.Float32("depthBiasConstantFactor", s.DepthBiasConstantFactor, false)
	p.Float32("depthBiasClamp", s.DepthBiasClamp, false)
	p.Float32("depthBiasSlopeFactor", s.DepthBiasSlopeFactor, false)
	p.Float32("lineWidth", s.LineWidth, true)
	p.closeObject()
}

// sampleMaskWords is the length of pSampleMask implied by the sample count.
func sampleMaskWords(samples SampleCountFlags) uint32 {
	return (uint32(samples) + 31) / 32
}

func printPipelineMultisampleStateCreateInfo(p *Printer, s *PipelineMultisampleStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Flags("rasterizationSamples", s.RasterizationSamples, false)
	p.Bool32("sampleShadingEnable", s.SampleShadingEnable, false)
	p.Float32("minSampleShading", s.MinSampleShading, false)
	printArray(p, "pSampleMask", sampleMaskWords(s.RasterizationSamples), s.SampleMask, (*Printer).uint32Value, false)
	p.Bool32("alphaToCoverageEnable", s.AlphaToCoverageEnable, false)
	p.Bool32("alphaToOneEnable", s.AlphaToOneEnable, true)
	p.closeObject()
}

func printStencilOpState(p *Printer, s *StencilOpState) {
	p.openObject()
	p.Enum("failOp", s.FailOp, false)
	p.Enum("passOp", s.PassOp, false)
	p.Enum("depthFailOp", s.DepthFailOp, false)
	p.Enum("compareOp", s.CompareOp, false)
	p.Uint32("compareMask", s.CompareMask, false)
	p.Uint32("writeMask", s.WriteMask, false)
	p.Uint32("reference", s.Reference, true)
	p.closeObject()
}

func printPipelineDepthStencilStateCreateInfo(p *Printer, s *PipelineDepthStencilStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Bool32("depthTestEnable", s.DepthTestEnable, false)
	p.Bool32("depthWriteEnable", s.DepthWriteEnable, false)
	p.Enum("depthCompareOp", s.DepthCompareOp, false)
	p.Bool32("depthBoundsTestEnable", s.DepthBoundsTestEnable, false)
	p.Bool32("stencilTestEnable", s.StencilTestEnable, false)
	printInline(p, "front", &s.Front, printStencilOpState, false)
	printInline(p, "back", &s.Back, printStencilOpState, false)
	p.Float32("minDepthBounds", s.MinDepthBounds, false)
	p.Float32("maxDepthBounds", s.MaxDepthBounds, true)
	p.closeObject()
}

func printPipelineColorBlendAttachmentState(p *Printer, s *PipelineColorBlendAttachmentState) {
	p.openObject()
	p.Bool32("blendEnable", s.BlendEnable, false)
	p.Enum("srcColorBlendFactor", s.SrcColorBlendFactor, false)
	p.Enum("dstColorBlendFactor", s.DstColorBlendFactor, false)
	p.Enum("colorBlendOp", s.ColorBlendOp, false)
	p.Enum("srcAlphaBlendFactor", s.SrcAlphaBlendFactor, false)
	p.Enum("dstAlphaBlendFactor", s.DstAlphaBlendFactor, false)
	p.Enum("alphaBlendOp", s.AlphaBlendOp, false)
	p.Flags("colorWriteMask", s.ColorWriteMask, true)
	p.closeObject()
}

func printPipelineColorBlendStateCreateInfo(p *Printer, s *PipelineColorBlendStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Bool32("logicOpEnable", s.LogicOpEnable, false)
	p.Enum("logicOp", s.LogicOp, false)
	p.Uint32("attachmentCount", s.AttachmentCount, false)
	printArray(p, "pAttachments", s.AttachmentCount, s.Attachments, printPipelineColorBlendAttachmentState, false)
	printArray(p, "blendConstants", 4, s.BlendConstants[:], (*Printer).float32Value, true)
	p.closeObject()
}

func printPipelineDynamicStateCreateInfo(p *Printer, s *PipelineDynamicStateCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("dynamicStateCount", s.DynamicStateCount, false)
	printArray(p, "pDynamicStates", s.DynamicStateCount, s.DynamicStates, stringerValue[DynamicState], true)
	p.closeObject()
}

func printGraphicsPipelineCreateInfo(p *Printer, s *GraphicsPipelineCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("stageCount", s.StageCount, false)
	printArray(p, "pStages", s.StageCount, s.Stages, printPipelineShaderStageCreateInfo, false)
	printPointer(p, "pVertexInputState", s.VertexInputState, printPipelineVertexInputStateCreateInfo, false)
	printPointer(p, "pInputAssemblyState", s.InputAssemblyState, printPipelineInputAssemblyStateCreateInfo, false)
	printPointer(p, "pTessellationState", s.TessellationState, printPipelineTessellationStateCreateInfo, false)
	printPointer(p, "pViewportState", s.ViewportState, printPipelineViewportStateCreateInfo, false)
	printPointer(p, "pRasterizationState", s.RasterizationState, printPipelineRasterizationStateCreateInfo, false)
	printPointer(p, "pMultisampleState", s.MultisampleState, printPipelineMultisampleStateCreateInfo, false)
	printPointer(p, "pDepthStencilState", s.DepthStencilState, printPipelineDepthStencilStateCreateInfo, false)
	printPointer(p, "pColorBlendState", s.ColorBlendState, printPipelineColorBlendStateCreateInfo, false)
	printPointer(p, "pDynamicState", s.DynamicState, printPipelineDynamicStateCreateInfo, false)
	p.Handle("layout", s.Layout, false)
	p.Handle("renderPass", s.RenderPass, false)
	p.Uint32("subpass", s.Subpass, false)
	p.Handle("basePipelineHandle", s.BasePipelineHandle, false)
	p.Int32("basePipelineIndex", s.BasePipelineIndex, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO, printPipelineLayoutCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO, printComputePipelineCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_RENDERING_CREATE_INFO, printPipelineRenderingCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO, printPipelineVertexInputStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO, printPipelineInputAssemblyStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO, printPipelineTessellationStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO, printPipelineViewportStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO, printPipelineRasterizationStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO, printPipelineMultisampleStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO, printPipelineDepthStencilStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO, printPipelineColorBlendStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO, printPipelineDynamicStateCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO, printGraphicsPipelineCreateInfo)

	RegisterValue(defaultRegistry, printPushConstantRange)
	RegisterValue(defaultRegistry, printVertexInputBindingDescription)
	RegisterValue(defaultRegistry, printVertexInputAttributeDescription)
	RegisterValue(defaultRegistry, printViewport)
	RegisterValue(defaultRegistry, printStencilOpState)
	RegisterValue(defaultRegistry, printPipelineColorBlendAttachmentState)
}
