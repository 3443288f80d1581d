// command.go
package vkdump

import "math"

type CommandPoolCreateFlags uint32

const (
	COMMAND_POOL_CREATE_TRANSIENT_BIT            CommandPoolCreateFlags = 0x00000001
	COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT CommandPoolCreateFlags = 0x00000002
	COMMAND_POOL_CREATE_PROTECTED_BIT            CommandPoolCreateFlags = 0x00000004
)

var commandPoolCreateBits = NewFlagTable("VkCommandPoolCreateFlagBits",
	Symbol[CommandPoolCreateFlags]{COMMAND_POOL_CREATE_TRANSIENT_BIT, "VK_COMMAND_POOL_CREATE_TRANSIENT_BIT"},
	Symbol[CommandPoolCreateFlags]{COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT, "VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT"},
	Symbol[CommandPoolCreateFlags]{COMMAND_POOL_CREATE_PROTECTED_BIT, "VK_COMMAND_POOL_CREATE_PROTECTED_BIT"},
)

func (f CommandPoolCreateFlags) String() string { return commandPoolCreateBits.Render(f) }

type CommandBufferLevel int32

const (
	COMMAND_BUFFER_LEVEL_PRIMARY   CommandBufferLevel = 0
	COMMAND_BUFFER_LEVEL_SECONDARY CommandBufferLevel = 1
)

var commandBufferLevelNames = NewSymbolTable("VkCommandBufferLevel",
	Symbol[CommandBufferLevel]{COMMAND_BUFFER_LEVEL_PRIMARY, "VK_COMMAND_BUFFER_LEVEL_PRIMARY"},
	Symbol[CommandBufferLevel]{COMMAND_BUFFER_LEVEL_SECONDARY, "VK_COMMAND_BUFFER_LEVEL_SECONDARY"},
)

func (l CommandBufferLevel) String() string { return commandBufferLevelNames.String(l) }

type CommandBufferUsageFlags uint32

const (
	COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT      CommandBufferUsageFlags = 0x00000001
	COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT CommandBufferUsageFlags = 0x00000002
	COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT     CommandBufferUsageFlags = 0x00000004
)

var commandBufferUsageBits = NewFlagTable("VkCommandBufferUsageFlagBits",
	Symbol[CommandBufferUsageFlags]{COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT, "VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT"},
	Symbol[CommandBufferUsageFlags]{COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT, "VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT"},
	Symbol[CommandBufferUsageFlags]{COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT, "VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT"},
)

func (f CommandBufferUsageFlags) String() string { return commandBufferUsageBits.Render(f) }

type QueryControlFlags uint32

const QUERY_CONTROL_PRECISE_BIT QueryControlFlags = 0x00000001

var queryControlBits = NewFlagTable("VkQueryControlFlagBits",
	Symbol[QueryControlFlags]{QUERY_CONTROL_PRECISE_BIT, "VK_QUERY_CONTROL_PRECISE_BIT"},
)

func (f QueryControlFlags) String() string { return queryControlBits.Render(f) }

type QueryPipelineStatisticFlags uint32

const (
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT                    QueryPipelineStatisticFlags = 0x00000001
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT                  QueryPipelineStatisticFlags = 0x00000002
	QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT                  QueryPipelineStatisticFlags = 0x00000004
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlags = 0x00000008
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT                 QueryPipelineStatisticFlags = 0x00000010
	QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT                       QueryPipelineStatisticFlags = 0x00000020
	QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT                        QueryPipelineStatisticFlags = 0x00000040
	QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlags = 0x00000080
	QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT        QueryPipelineStatisticFlags = 0x00000100
	QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT QueryPipelineStatisticFlags = 0x00000200
	QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT                 QueryPipelineStatisticFlags = 0x00000400
)

var queryPipelineStatisticBits = NewFlagTable("VkQueryPipelineStatisticFlagBits",
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT, "VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT, "VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT, "VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT, "VK_QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT, "VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT"},
	Symbol[QueryPipelineStatisticFlags]{QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT, "VK_QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT"},
)

func (f QueryPipelineStatisticFlags) String() string { return queryPipelineStatisticBits.Render(f) }

type AttachmentLoadOp int32

const (
	ATTACHMENT_LOAD_OP_LOAD      AttachmentLoadOp = 0
	ATTACHMENT_LOAD_OP_CLEAR     AttachmentLoadOp = 1
	ATTACHMENT_LOAD_OP_DONT_CARE AttachmentLoadOp = 2
	ATTACHMENT_LOAD_OP_NONE_KHR  AttachmentLoadOp = 1000400000
)

var attachmentLoadOpNames = NewSymbolTable("VkAttachmentLoadOp",
	Symbol[AttachmentLoadOp]{ATTACHMENT_LOAD_OP_LOAD, "VK_ATTACHMENT_LOAD_OP_LOAD"},
	Symbol[AttachmentLoadOp]{ATTACHMENT_LOAD_OP_CLEAR, "VK_ATTACHMENT_LOAD_OP_CLEAR"},
	Symbol[AttachmentLoadOp]{ATTACHMENT_LOAD_OP_DONT_CARE, "VK_ATTACHMENT_LOAD_OP_DONT_CARE"},
	Symbol[AttachmentLoadOp]{ATTACHMENT_LOAD_OP_NONE_KHR, "VK_ATTACHMENT_LOAD_OP_NONE_KHR"},
	Symbol[AttachmentLoadOp]{ATTACHMENT_LOAD_OP_NONE_KHR, "VK_ATTACHMENT_LOAD_OP_NONE_EXT"},
)

func (op AttachmentLoadOp) String() string { return attachmentLoadOpNames.String(op) }

type AttachmentStoreOp int32

const (
	ATTACHMENT_STORE_OP_STORE     AttachmentStoreOp = 0
	ATTACHMENT_STORE_OP_DONT_CARE AttachmentStoreOp = 1
	ATTACHMENT_STORE_OP_NONE      AttachmentStoreOp = 1000301000
)

var attachmentStoreOpNames = NewSymbolTable("VkAttachmentStoreOp",
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_STORE, "VK_ATTACHMENT_STORE_OP_STORE"},
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_DONT_CARE, "VK_ATTACHMENT_STORE_OP_DONT_CARE"},
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_NONE, "VK_ATTACHMENT_STORE_OP_NONE"},
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_NONE, "VK_ATTACHMENT_STORE_OP_NONE_KHR"},
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_NONE, "VK_ATTACHMENT_STORE_OP_NONE_EXT"},
	Symbol[AttachmentStoreOp]{ATTACHMENT_STORE_OP_NONE, "VK_ATTACHMENT_STORE_OP_NONE_QCOM"},
)

func (op AttachmentStoreOp) String() string { return attachmentStoreOpNames.String(op) }

type PipelineBindPoint int32

const (
	PIPELINE_BIND_POINT_GRAPHICS        PipelineBindPoint = 0
	PIPELINE_BIND_POINT_COMPUTE         PipelineBindPoint = 1
	PIPELINE_BIND_POINT_RAY_TRACING_KHR PipelineBindPoint = 1000165000
)

var pipelineBindPointNames = NewSymbolTable("VkPipelineBindPoint",
	Symbol[PipelineBindPoint]{PIPELINE_BIND_POINT_GRAPHICS, "VK_PIPELINE_BIND_POINT_GRAPHICS"},
	Symbol[PipelineBindPoint]{PIPELINE_BIND_POINT_COMPUTE, "VK_PIPELINE_BIND_POINT_COMPUTE"},
	Symbol[PipelineBindPoint]{PIPELINE_BIND_POINT_RAY_TRACING_KHR, "VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR"},
	Symbol[PipelineBindPoint]{PIPELINE_BIND_POINT_RAY_TRACING_KHR, "VK_PIPELINE_BIND_POINT_RAY_TRACING_NV"},
)

func (b PipelineBindPoint) String() string { return pipelineBindPointNames.String(b) }

type IndexType int32

const (
	INDEX_TYPE_UINT16    IndexType = 0
	INDEX_TYPE_UINT32    IndexType = 1
	INDEX_TYPE_NONE_KHR  IndexType = 1000165000
	INDEX_TYPE_UINT8_EXT IndexType = 1000265000
)

var indexTypeNames = NewSymbolTable("VkIndexType",
	Symbol[IndexType]{INDEX_TYPE_UINT16, "VK_INDEX_TYPE_UINT16"},
	Symbol[IndexType]{INDEX_TYPE_UINT32, "VK_INDEX_TYPE_UINT32"},
	Symbol[IndexType]{INDEX_TYPE_NONE_KHR, "VK_INDEX_TYPE_NONE_KHR"},
	Symbol[IndexType]{INDEX_TYPE_NONE_KHR, "VK_INDEX_TYPE_NONE_NV"},
	Symbol[IndexType]{INDEX_TYPE_UINT8_EXT, "VK_INDEX_TYPE_UINT8_EXT"},
)

func (t IndexType) String() string { return indexTypeNames.String(t) }

type AccessFlags uint32

const (
	ACCESS_INDIRECT_COMMAND_READ_BIT          AccessFlags = 0x00000001
	ACCESS_INDEX_READ_BIT                     AccessFlags = 0x00000002
	ACCESS_VERTEX_ATTRIBUTE_READ_BIT          AccessFlags = 0x00000004
	ACCESS_UNIFORM_READ_BIT                   AccessFlags = 0x00000008
	ACCESS_INPUT_ATTACHMENT_READ_BIT          AccessFlags = 0x00000010
	ACCESS_SHADER_READ_BIT                    AccessFlags = 0x00000020
	ACCESS_SHADER_WRITE_BIT                   AccessFlags = 0x00000040
	ACCESS_COLOR_ATTACHMENT_READ_BIT          AccessFlags = 0x00000080
	ACCESS_COLOR_ATTACHMENT_WRITE_BIT         AccessFlags = 0x00000100
	ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT  AccessFlags = 0x00000200
	ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT AccessFlags = 0x00000400
	ACCESS_TRANSFER_READ_BIT                  AccessFlags = 0x00000800
	ACCESS_TRANSFER_WRITE_BIT                 AccessFlags = 0x00001000
	ACCESS_HOST_READ_BIT                      AccessFlags = 0x00002000
	ACCESS_HOST_WRITE_BIT                     AccessFlags = 0x00004000
	ACCESS_MEMORY_READ_BIT                    AccessFlags = 0x00008000
	ACCESS_MEMORY_WRITE_BIT                   AccessFlags = 0x00010000
)

var accessBits = NewFlagTable("VkAccessFlagBits",
	Symbol[AccessFlags]{ACCESS_INDIRECT_COMMAND_READ_BIT, "VK_ACCESS_INDIRECT_COMMAND_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_INDEX_READ_BIT, "VK_ACCESS_INDEX_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_VERTEX_ATTRIBUTE_READ_BIT, "VK_ACCESS_VERTEX_ATTRIBUTE_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_UNIFORM_READ_BIT, "VK_ACCESS_UNIFORM_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_INPUT_ATTACHMENT_READ_BIT, "VK_ACCESS_INPUT_ATTACHMENT_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_SHADER_READ_BIT, "VK_ACCESS_SHADER_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_SHADER_WRITE_BIT, "VK_ACCESS_SHADER_WRITE_BIT"},
	Symbol[AccessFlags]{ACCESS_COLOR_ATTACHMENT_READ_BIT, "VK_ACCESS_COLOR_ATTACHMENT_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_COLOR_ATTACHMENT_WRITE_BIT, "VK_ACCESS_COLOR_ATTACHMENT_WRITE_BIT"},
	Symbol[AccessFlags]{ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT, "VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT, "VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT"},
	Symbol[AccessFlags]{ACCESS_TRANSFER_READ_BIT, "VK_ACCESS_TRANSFER_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_TRANSFER_WRITE_BIT, "VK_ACCESS_TRANSFER_WRITE_BIT"},
	Symbol[AccessFlags]{ACCESS_HOST_READ_BIT, "VK_ACCESS_HOST_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_HOST_WRITE_BIT, "VK_ACCESS_HOST_WRITE_BIT"},
	Symbol[AccessFlags]{ACCESS_MEMORY_READ_BIT, "VK_ACCESS_MEMORY_READ_BIT"},
	Symbol[AccessFlags]{ACCESS_MEMORY_WRITE_BIT, "VK_ACCESS_MEMORY_WRITE_BIT"},
)

func (f AccessFlags) String() string { return accessBits.Render(f) }

type PipelineStageFlags uint32

const (
	PIPELINE_STAGE_TOP_OF_PIPE_BIT                    PipelineStageFlags = 0x00000001
	PIPELINE_STAGE_DRAW_INDIRECT_BIT                  PipelineStageFlags = 0x00000002
	PIPELINE_STAGE_VERTEX_INPUT_BIT                   PipelineStageFlags = 0x00000004
	PIPELINE_STAGE_VERTEX_SHADER_BIT                  PipelineStageFlags = 0x00000008
	PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT    PipelineStageFlags = 0x00000010
	PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT PipelineStageFlags = 0x00000020
	PIPELINE_STAGE_GEOMETRY_SHADER_BIT                PipelineStageFlags = 0x00000040
	PIPELINE_STAGE_FRAGMENT_SHADER_BIT                PipelineStageFlags = 0x00000080
	PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT           PipelineStageFlags = 0x00000100
	PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT            PipelineStageFlags = 0x00000200
	PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT        PipelineStageFlags = 0x00000400
	PIPELINE_STAGE_COMPUTE_SHADER_BIT                 PipelineStageFlags = 0x00000800
	PIPELINE_STAGE_TRANSFER_BIT                       PipelineStageFlags = 0x00001000
	PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT                 PipelineStageFlags = 0x00002000
	PIPELINE_STAGE_HOST_BIT                           PipelineStageFlags = 0x00004000
	PIPELINE_STAGE_ALL_GRAPHICS_BIT                   PipelineStageFlags = 0x00008000
	PIPELINE_STAGE_ALL_COMMANDS_BIT                   PipelineStageFlags = 0x00010000
)

var pipelineStageBits = NewFlagTable("VkPipelineStageFlagBits",
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_TOP_OF_PIPE_BIT, "VK_PIPELINE_STAGE_TOP_OF_PIPE_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_DRAW_INDIRECT_BIT, "VK_PIPELINE_STAGE_DRAW_INDIRECT_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_VERTEX_INPUT_BIT, "VK_PIPELINE_STAGE_VERTEX_INPUT_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_VERTEX_SHADER_BIT, "VK_PIPELINE_STAGE_VERTEX_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT, "VK_PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT, "VK_PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_GEOMETRY_SHADER_BIT, "VK_PIPELINE_STAGE_GEOMETRY_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_FRAGMENT_SHADER_BIT, "VK_PIPELINE_STAGE_FRAGMENT_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT, "VK_PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT, "VK_PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT, "VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_COMPUTE_SHADER_BIT, "VK_PIPELINE_STAGE_COMPUTE_SHADER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_TRANSFER_BIT, "VK_PIPELINE_STAGE_TRANSFER_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT, "VK_PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_HOST_BIT, "VK_PIPELINE_STAGE_HOST_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_ALL_GRAPHICS_BIT, "VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT"},
	Symbol[PipelineStageFlags]{PIPELINE_STAGE_ALL_COMMANDS_BIT, "VK_PIPELINE_STAGE_ALL_COMMANDS_BIT"},
)

func (f PipelineStageFlags) String() string { return pipelineStageBits.Render(f) }

type DependencyFlags uint32

const (
	DEPENDENCY_BY_REGION_BIT    DependencyFlags = 0x00000001
	DEPENDENCY_VIEW_LOCAL_BIT   DependencyFlags = 0x00000002
	DEPENDENCY_DEVICE_GROUP_BIT DependencyFlags = 0x00000004
)

var dependencyBits = NewFlagTable("VkDependencyFlagBits",
	Symbol[DependencyFlags]{DEPENDENCY_BY_REGION_BIT, "VK_DEPENDENCY_BY_REGION_BIT"},
	Symbol[DependencyFlags]{DEPENDENCY_VIEW_LOCAL_BIT, "VK_DEPENDENCY_VIEW_LOCAL_BIT"},
	Symbol[DependencyFlags]{DEPENDENCY_VIEW_LOCAL_BIT, "VK_DEPENDENCY_VIEW_LOCAL_BIT_KHR"},
	Symbol[DependencyFlags]{DEPENDENCY_DEVICE_GROUP_BIT, "VK_DEPENDENCY_DEVICE_GROUP_BIT"},
	Symbol[DependencyFlags]{DEPENDENCY_DEVICE_GROUP_BIT, "VK_DEPENDENCY_DEVICE_GROUP_BIT_KHR"},
)

func (f DependencyFlags) String() string { return dependencyBits.Render(f) }

type RenderingFlags uint32

const (
	RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT RenderingFlags = 0x00000001
	RENDERING_SUSPENDING_BIT                         RenderingFlags = 0x00000002
	RENDERING_RESUMING_BIT                           RenderingFlags = 0x00000004
)

var renderingBits = NewFlagTable("VkRenderingFlagBits",
	Symbol[RenderingFlags]{RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT, "VK_RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT"},
	Symbol[RenderingFlags]{RENDERING_SUSPENDING_BIT, "VK_RENDERING_SUSPENDING_BIT"},
	Symbol[RenderingFlags]{RENDERING_RESUMING_BIT, "VK_RENDERING_RESUMING_BIT"},
)

func (f RenderingFlags) String() string { return renderingBits.Render(f) }

// ResolveModeFlags carries a single VkResolveModeFlagBits value in attachment
// info; VK_RESOLVE_MODE_NONE is zero and renders as "0".
type ResolveModeFlags uint32

const (
	RESOLVE_MODE_SAMPLE_ZERO_BIT ResolveModeFlags = 0x00000001
	RESOLVE_MODE_AVERAGE_BIT     ResolveModeFlags = 0x00000002
	RESOLVE_MODE_MIN_BIT         ResolveModeFlags = 0x00000004
	RESOLVE_MODE_MAX_BIT         ResolveModeFlags = 0x00000008
)

var resolveModeBits = NewFlagTable("VkResolveModeFlagBits",
	Symbol[ResolveModeFlags]{RESOLVE_MODE_SAMPLE_ZERO_BIT, "VK_RESOLVE_MODE_SAMPLE_ZERO_BIT"},
	Symbol[ResolveModeFlags]{RESOLVE_MODE_SAMPLE_ZERO_BIT, "VK_RESOLVE_MODE_SAMPLE_ZERO_BIT_KHR"},
	Symbol[ResolveModeFlags]{RESOLVE_MODE_AVERAGE_BIT, "VK_RESOLVE_MODE_AVERAGE_BIT"},
	Symbol[ResolveModeFlags]{RESOLVE_MODE_MIN_BIT, "VK_RESOLVE_MODE_MIN_BIT"},
	Symbol[ResolveModeFlags]{RESOLVE_MODE_MAX_BIT, "VK_RESOLVE_MODE_MAX_BIT"},
)

func (f ResolveModeFlags) String() string { return resolveModeBits.Render(f) }

type CommandPoolCreateInfo struct {
	Next             Structure
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

func (*CommandPoolCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO
}

type CommandBufferAllocateInfo struct {
	Next               Structure
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

func (*CommandBufferAllocateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO
}

type CommandBufferInheritanceInfo struct {
	Next                 Structure
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           QueryControlFlags
	PipelineStatistics   QueryPipelineStatisticFlags
}

func (*CommandBufferInheritanceInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO
}

type CommandBufferBeginInfo struct {
	Next            Structure
	Flags           CommandBufferUsageFlags
	InheritanceInfo *CommandBufferInheritanceInfo
}

func (*CommandBufferBeginInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO
}

// ClearColorValue is the VkClearColorValue union. The four words are stored
// as raw bits; which view is meaningful depends on the attachment format, so
// all three are printed.
type ClearColorValue [4]uint32

func ClearColorFloat32(r, g, b, a float32) ClearColorValue {
	return ClearColorValue{math.Float32bits(r), math.Float32bits(g), math.Float32bits(b), math.Float32bits(a)}
}

func ClearColorInt32(r, g, b, a int32) ClearColorValue {
	return ClearColorValue{uint32(r), uint32(g), uint32(b), uint32(a)}
}

func ClearColorUint32(r, g, b, a uint32) ClearColorValue {
	return ClearColorValue{r, g, b, a}
}

func (c ClearColorValue) Float32() [4]float32 {
	var out [4]float32
	for i, w := range c {
		out[i] = math.Float32frombits(w)
	}
	return out
}

func (c ClearColorValue) Int32() [4]int32 {
	var out [4]int32
	for i, w := range c {
		out[i] = int32(w)
	}
	return out
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is the VkClearValue union of a color and a depth/stencil pair.
// Both views of the first two words are printed.
type ClearValue [4]uint32

func ClearColor(c ClearColorValue) ClearValue {
	return ClearValue(c)
}

func ClearDepthStencil(depth float32, stencil uint32) ClearValue {
	return ClearValue{math.Float32bits(depth), stencil}
}

func (v ClearValue) Color() ClearColorValue {
	return ClearColorValue(v)
}

func (v ClearValue) DepthStencil() ClearDepthStencilValue {
	return ClearDepthStencilValue{Depth: math.Float32frombits(v[0]), Stencil: v[1]}
}

type RenderingAttachmentInfo struct {
	Next               Structure
	ImageView          ImageView
	ImageLayout        ImageLayout
	ResolveMode        ResolveModeFlags
	ResolveImageView   ImageView
	ResolveImageLayout ImageLayout
	LoadOp             AttachmentLoadOp
	StoreOp            AttachmentStoreOp
	ClearValue         ClearValue
}

func (*RenderingAttachmentInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO
}

type RenderingInfo struct {
	Next                 Structure
	Flags                RenderingFlags
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	ColorAttachments     []RenderingAttachmentInfo
	DepthAttachment      *RenderingAttachmentInfo
	StencilAttachment    *RenderingAttachmentInfo
}

func (*RenderingInfo) StructureType() StructureType { return STRUCTURE_TYPE_RENDERING_INFO }

type RenderPassBeginInfo struct {
	Next            Structure
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	ClearValues     []ClearValue
}

func (*RenderPassBeginInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO
}

type MemoryBarrier struct {
	Next          Structure
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

func (*MemoryBarrier) StructureType() StructureType { return STRUCTURE_TYPE_MEMORY_BARRIER }

type BufferMemoryBarrier struct {
	Next                Structure
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

func (*BufferMemoryBarrier) StructureType() StructureType {
	return STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER
}

type ImageMemoryBarrier struct {
	Next                Structure
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

func (*ImageMemoryBarrier) StructureType() StructureType {
	return STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

func printCommandPoolCreateInfo(p *Printer, s *CommandPoolCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("queueFamilyIndex", s.QueueFamilyIndex, true)
	p.closeObject()
}

func printCommandBufferAllocateInfo(p *Printer, s *CommandBufferAllocateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("commandPool", s.CommandPool, false)
	p.Enum("level", s.Level, false)
	p.Uint32("commandBufferCount", s.CommandBufferCount, true)
	p.closeObject()
}

func printCommandBufferInheritanceInfo(p *Printer, s *CommandBufferInheritanceInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("renderPass", s.RenderPass, false)
	p.Uint32("subpass", s.Subpass, false)
	p.Handle("framebuffer", s.Framebuffer, false)
	p.Bool32("occlusionQueryEnable", s.OcclusionQueryEnable, false)
	p.Flags("queryFlags", s.QueryFlags, false)
	p.Flags("pipelineStatistics", s.PipelineStatistics, true)
	p.closeObject()
}

func printCommandBufferBeginInfo(p *Printer, s *CommandBufferBeginInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	printPointer(p, "pInheritanceInfo", s.InheritanceInfo, printCommandBufferInheritanceInfo, true)
	p.closeObject()
}

func printClearColorValue(p *Printer, s *ClearColorValue) {
	f, i, u := s.Float32(), s.Int32(), [4]uint32(*s)
	p.openObject()
	printArray(p, "float32", 4, f[:], (*Printer).float32Value, false)
	printArray(p, "int32", 4, i[:], (*Printer).int32Value, false)
	printArray(p, "uint32", 4, u[:], (*Printer).uint32Value, true)
	p.closeObject()
}

func printClearDepthStencilValue(p *Printer, s *ClearDepthStencilValue) {
	p.openObject()
	p.Float32("depth", s.Depth, false)
	p.Uint32("stencil", s.Stencil, true)
	p.closeObject()
}

func printClearValue(p *Printer, s *ClearValue) {
	color, ds := s.Color(), s.DepthStencil()
	p.openObject()
	printInline(p, "color", &color, printClearColorValue, false)
	printInline(p, "depthStencil", &ds, printClearDepthStencilValue, true)
	p.closeObject()
}

func printRenderingAttachmentInfo(p *Printer, s *RenderingAttachmentInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("imageView", s.ImageView, false)
	p.Enum("imageLayout", s.ImageLayout, false)
	p.Flags("resolveMode", s.ResolveMode, false)
	p.Handle("resolveImageView", s.ResolveImageView, false)
	p.Enum("resolveImageLayout", s.ResolveImageLayout, false)
	p.Enum("loadOp", s.LoadOp, false)
	p.Enum("storeOp", s.StoreOp, false)
	printInline(p, "clearValue", &s.ClearValue, printClearValue, true)
	p.closeObject()
}

func printRenderingInfo(p *Printer, s *RenderingInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	printInline(p, "renderArea", &s.RenderArea, printRect2D, false)
	p.Uint32("layerCount", s.LayerCount, false)
	p.Uint32("viewMask", s.ViewMask, false)
	p.Uint32("colorAttachmentCount", s.ColorAttachmentCount, false)
	printArray(p, "pColorAttachments", s.ColorAttachmentCount, s.ColorAttachments, printRenderingAttachmentInfo, false)
	printPointer(p, "pDepthAttachment", s.DepthAttachment, printRenderingAttachmentInfo, false)
	printPointer(p, "pStencilAttachment", s.StencilAttachment, printRenderingAttachmentInfo, true)
	p.closeObject()
}

func printRenderPassBeginInfo(p *Printer, s *RenderPassBeginInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("renderPass", s.RenderPass, false)
	p.Handle("framebuffer", s.Framebuffer, false)
	printInline(p, "renderArea", &s.RenderArea, printRect2D, false)
	p.Uint32("clearValueCount", s.ClearValueCount, false)
	printArray(p, "pClearValues", s.ClearValueCount, s.ClearValues, printClearValue, true)
	p.closeObject()
}

func printMemoryBarrier(p *Printer, s *MemoryBarrier) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("srcAccessMask", s.SrcAccessMask, false)
	p.Flags("dstAccessMask", s.DstAccessMask, true)
	p.closeObject()
}

func printBufferMemoryBarrier(p *Printer, s *BufferMemoryBarrier) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("srcAccessMask", s.SrcAccessMask, false)
	p.Flags("dstAccessMask", s.DstAccessMask, false)
	p.Uint32("srcQueueFamilyIndex", s.SrcQueueFamilyIndex, false)
	p.Uint32("dstQueueFamilyIndex", s.DstQueueFamilyIndex, false)
	p.Handle("buffer", s.Buffer, false)
	p.DeviceSize("offset", s.Offset, false)
	p.DeviceSize("size", s.Size, true)
	p.closeObject()
}

func printImageMemoryBarrier(p *Printer, s *ImageMemoryBarrier) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("srcAccessMask", s.SrcAccessMask, false)
	p.Flags("dstAccessMask", s.DstAccessMask, false)
	p.Enum("oldLayout", s.OldLayout, false)
	p.Enum("newLayout", s.NewLayout, false)
	p.Uint32("srcQueueFamilyIndex", s.SrcQueueFamilyIndex, false)
	p.Uint32("dstQueueFamilyIndex", s.DstQueueFamilyIndex, false)
	p.Handle("image", s.Image, false)
	printInline(p, "subresourceRange", &s.SubresourceRange, printImageSubresourceRange, true)
	p.closeObject()
}

func printBufferImageCopy(p *Printer, s *BufferImageCopy) {
	p.openObject()
	p.DeviceSize("bufferOffset", s.BufferOffset, false)
	p.Uint32("bufferRowLength", s.BufferRowLength, false)
	p.Uint32("bufferImageHeight", s.BufferImageHeight, false)
	printInline(p, "imageSubresource", &s.ImageSubresource, printImageSubresourceLayers, false)
	printInline(p, "imageOffset", &s.ImageOffset, printOffset3D, false)
	printInline(p, "imageExtent", &s.ImageExtent, printExtent3D, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO, printCommandPoolCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO, printCommandBufferAllocateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO, printCommandBufferInheritanceInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO, printCommandBufferBeginInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO, printRenderingAttachmentInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_RENDERING_INFO, printRenderingInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO, printRenderPassBeginInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_MEMORY_BARRIER, printMemoryBarrier)
	Register(defaultRegistry, STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER, printBufferMemoryBarrier)
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER, printImageMemoryBarrier)

	RegisterValue(defaultRegistry, printClearColorValue)
	RegisterValue(defaultRegistry, printClearDepthStencilValue)
	RegisterValue(defaultRegistry, printClearValue)
	RegisterValue(defaultRegistry, printBufferImageCopy)
}
