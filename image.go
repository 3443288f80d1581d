// image.go
package vkdump

type Format int32

const (
	FORMAT_UNDEFINED                 Format = 0
	FORMAT_R4G4_UNORM_PACK8          Format = 1
	FORMAT_R4G4B4A4_UNORM_PACK16     Format = 2
	FORMAT_R5G6B5_UNORM_PACK16       Format = 4
	FORMAT_R8_UNORM                  Format = 9
	FORMAT_R8_SNORM                  Format = 10
	FORMAT_R8_UINT                   Format = 13
	FORMAT_R8_SINT                   Format = 14
	FORMAT_R8_SRGB                   Format = 15
	FORMAT_R8G8_UNORM                Format = 16
	FORMAT_R8G8_UINT                 Format = 20
	FORMAT_R8G8B8_UNORM              Format = 23
	FORMAT_R8G8B8_SRGB               Format = 29
	FORMAT_B8G8R8_UNORM              Format = 30
	FORMAT_R8G8B8A8_UNORM            Format = 37
	FORMAT_R8G8B8A8_SNORM            Format = 38
	FORMAT_R8G8B8A8_UINT             Format = 41
	FORMAT_R8G8B8A8_SINT             Format = 42
	FORMAT_R8G8B8A8_SRGB             Format = 43
	FORMAT_B8G8R8A8_UNORM            Format = 44
	FORMAT_B8G8R8A8_SRGB             Format = 50
	FORMAT_A2B10G10R10_UNORM_PACK32  Format = 64
	FORMAT_R16_UNORM                 Format = 70
	FORMAT_R16_UINT                  Format = 74
	FORMAT_R16_SINT                  Format = 75
	FORMAT_R16_SFLOAT                Format = 76
	FORMAT_R16G16_UNORM              Format = 77
	FORMAT_R16G16_SFLOAT             Format = 83
	FORMAT_R16G16B16A16_UNORM        Format = 91
	FORMAT_R16G16B16A16_SFLOAT       Format = 97
	FORMAT_R32_UINT                  Format = 98
	FORMAT_R32_SINT                  Format = 99
	FORMAT_R32_SFLOAT                Format = 100
	FORMAT_R32G32_UINT               Format = 101
	FORMAT_R32G32_SFLOAT             Format = 103
	FORMAT_R32G32B32_UINT            Format = 104
	FORMAT_R32G32B32_SFLOAT          Format = 106
	FORMAT_R32G32B32A32_UINT         Format = 107
	FORMAT_R32G32B32A32_SFLOAT       Format = 109
	FORMAT_B10G11R11_UFLOAT_PACK32   Format = 122
	FORMAT_E5B9G9R9_UFLOAT_PACK32    Format = 123
	FORMAT_D16_UNORM                 Format = 124
	FORMAT_X8_D24_UNORM_PACK32       Format = 125
	FORMAT_D32_SFLOAT                Format = 126
	FORMAT_S8_UINT                   Format = 127
	FORMAT_D16_UNORM_S8_UINT         Format = 128
	FORMAT_D24_UNORM_S8_UINT         Format = 129
	FORMAT_D32_SFLOAT_S8_UINT        Format = 130
	FORMAT_BC1_RGB_UNORM_BLOCK       Format = 131
	FORMAT_BC1_RGBA_UNORM_BLOCK      Format = 133
	FORMAT_BC3_UNORM_BLOCK           Format = 137
	FORMAT_BC5_UNORM_BLOCK           Format = 141
	FORMAT_BC7_UNORM_BLOCK           Format = 145
	FORMAT_BC7_SRGB_BLOCK            Format = 146
	FORMAT_G8_B8_R8_3PLANE_420_UNORM Format = 1000156002
	FORMAT_G8_B8R8_2PLANE_420_UNORM  Format = 1000156003
)

var formatNames = NewSymbolTable("VkFormat",
	Symbol[Format]{FORMAT_UNDEFINED, "VK_FORMAT_UNDEFINED"},
	Symbol[Format]{FORMAT_R4G4_UNORM_PACK8, "VK_FORMAT_R4G4_UNORM_PACK8"},
	Symbol[Format]{FORMAT_R4G4B4A4_UNORM_PACK16, "VK_FORMAT_R4G4B4A4_UNORM_PACK16"},
	Symbol[Format]{FORMAT_R5G6B5_UNORM_PACK16, "VK_FORMAT_R5G6B5_UNORM_PACK16"},
	Symbol[Format]{FORMAT_R8_UNORM, "VK_FORMAT_R8_UNORM"},
	Symbol[Format]{FORMAT_R8_SNORM, "VK_FORMAT_R8_SNORM"},
	Symbol[Format]{FORMAT_R8_UINT, "VK_FORMAT_R8_UINT"},
	Symbol[Format]{FORMAT_R8_SINT, "VK_FORMAT_R8_SINT"},
	Symbol[Format]{FORMAT_R8_SRGB, "VK_FORMAT_R8_SRGB"},
	Symbol[Format]{FORMAT_R8G8_UNORM, "VK_FORMAT_R8G8_UNORM"},
	Symbol[Format]{FORMAT_R8G8_UINT, "VK_FORMAT_R8G8_UINT"},
	Symbol[Format]{FORMAT_R8G8B8_UNORM, "VK_FORMAT_R8G8B8_UNORM"},
	Symbol[Format]{FORMAT_R8G8B8_SRGB, "VK_FORMAT_R8G8B8_SRGB"},
	Symbol[Format]{FORMAT_B8G8R8_UNORM, "VK_FORMAT_B8G8R8_UNORM"},
	Symbol[Format]{FORMAT_R8G8B8A8_UNORM, "VK_FORMAT_R8G8B8A8_UNORM"},
	Symbol[Format]{FORMAT_R8G8B8A8_SNORM, "VK_FORMAT_R8G8B8A8_SNORM"},
	Symbol[Format]{FORMAT_R8G8B8A8_UINT, "VK_FORMAT_R8G8B8A8_UINT"},
	Symbol[Format]{FORMAT_R8G8B8A8_SINT, "VK_FORMAT_R8G8B8A8_SINT"},
	Symbol[Format]{FORMAT_R8G8B8A8_SRGB, "VK_FORMAT_R8G8B8A8_SRGB"},
	Symbol[Format]{FORMAT_B8G8R8A8_UNORM, "VK_FORMAT_B8G8R8A8_UNORM"},
	Symbol[Format]{FORMAT_B8G8R8A8_SRGB, "VK_FORMAT_B8G8R8A8_SRGB"},
	Symbol[Format]{FORMAT_A2B10G10R10_UNORM_PACK32, "VK_FORMAT_A2B10G10R10_UNORM_PACK32"},
	Symbol[Format]{FORMAT_R16_UNORM, "VK_FORMAT_R16_UNORM"},
	Symbol[Format]{FORMAT_R16_UINT, "VK_FORMAT_R16_UINT"},
	Symbol[Format]{FORMAT_R16_SINT, "VK_FORMAT_R16_SINT"},
	Symbol[Format]{FORMAT_R16_SFLOAT, "VK_FORMAT_R16_SFLOAT"},
	Symbol[Format]{FORMAT_R16G16_UNORM, "VK_FORMAT_R16G16_UNORM"},
	Symbol[Format]{FORMAT_R16G16_SFLOAT, "VK_FORMAT_R16G16_SFLOAT"},
	Symbol[Format]{FORMAT_R16G16B16A16_UNORM, "VK_FORMAT_R16G16B16A16_UNORM"},
	Symbol[Format]{FORMAT_R16G16B16A16_SFLOAT, "VK_FORMAT_R16G16B16A16_SFLOAT"},
	Symbol[Format]{FORMAT_R32_UINT, "VK_FORMAT_R32_UINT"},
	Symbol[Format]{FORMAT_R32_SINT, "VK_FORMAT_R32_SINT"},
	Symbol[Format]{FORMAT_R32_SFLOAT, "VK_FORMAT_R32_SFLOAT"},
	Symbol[Format]{FORMAT_R32G32_UINT, "VK_FORMAT_R32G32_UINT"},
	Symbol[Format]{FORMAT_R32G32_SFLOAT, "VK_FORMAT_R32G32_SFLOAT"},
	Symbol[Format]{FORMAT_R32G32B32_UINT, "VK_FORMAT_R32G32B32_UINT"},
	Symbol[Format]{FORMAT_R32G32B32_SFLOAT, "VK_FORMAT_R32G32B32_SFLOAT"},
	Symbol[Format]{FORMAT_R32G32B32A32_UINT, "VK_FORMAT_R32G32B32A32_UINT"},
	Symbol[Format]{FORMAT_R32G32B32A32_SFLOAT, "VK_FORMAT_R32G32B32A32_SFLOAT"},
	Symbol[Format]{FORMAT_B10G11R11_UFLOAT_PACK32, "VK_FORMAT_B10G11R11_UFLOAT_PACK32"},
	Symbol[Format]{FORMAT_E5B9G9R9_UFLOAT_PACK32, "VK_FORMAT_E5B9G9R9_UFLOAT_PACK32"},
	Symbol[Format]{FORMAT_D16_UNORM, "VK_FORMAT_D16_UNORM"},
	Symbol[Format]{FORMAT_X8_D24_UNORM_PACK32, "VK_FORMAT_X8_D24_UNORM_PACK32"},
	Symbol[Format]{FORMAT_D32_SFLOAT, "VK_FORMAT_D32_SFLOAT"},
	Symbol[Format]{FORMAT_S8_UINT, "VK_FORMAT_S8_UINT"},
	Symbol[Format]{FORMAT_D16_UNORM_S8_UINT, "VK_FORMAT_D16_UNORM_S8_UINT"},
	Symbol[Format]{FORMAT_D24_UNORM_S8_UINT, "VK_FORMAT_D24_UNORM_S8_UINT"},
	Symbol[Format]{FORMAT_D32_SFLOAT_S8_UINT, "VK_FORMAT_D32_SFLOAT_S8_UINT"},
	Symbol[Format]{FORMAT_BC1_RGB_UNORM_BLOCK, "VK_FORMAT_BC1_RGB_UNORM_BLOCK"},
	Symbol[Format]{FORMAT_BC1_RGBA_UNORM_BLOCK, "VK_FORMAT_BC1_RGBA_UNORM_BLOCK"},
	Symbol[Format]{FORMAT_BC3_UNORM_BLOCK, "VK_FORMAT_BC3_UNORM_BLOCK"},
	Symbol[Format]{FORMAT_BC5_UNORM_BLOCK, "VK_FORMAT_BC5_UNORM_BLOCK"},
	Symbol[Format]{FORMAT_BC7_UNORM_BLOCK, "VK_FORMAT_BC7_UNORM_BLOCK"},
	Symbol[Format]{FORMAT_BC7_SRGB_BLOCK, "VK_FORMAT_BC7_SRGB_BLOCK"},
	Symbol[Format]{FORMAT_G8_B8_R8_3PLANE_420_UNORM, "VK_FORMAT_G8_B8_R8_3PLANE_420_UNORM"},
	Symbol[Format]{FORMAT_G8_B8_R8_3PLANE_420_UNORM, "VK_FORMAT_G8_B8_R8_3PLANE_420_UNORM_KHR"},
	Symbol[Format]{FORMAT_G8_B8R8_2PLANE_420_UNORM, "VK_FORMAT_G8_B8R8_2PLANE_420_UNORM"},
	Symbol[Format]{FORMAT_G8_B8R8_2PLANE_420_UNORM, "VK_FORMAT_G8_B8R8_2PLANE_420_UNORM_KHR"},
)

func (f Format) String() string { return formatNames.String(f) }

type ImageType int32

const (
	IMAGE_TYPE_1D ImageType = 0
	IMAGE_TYPE_2D ImageType = 1
	IMAGE_TYPE_3D ImageType = 2
)

var imageTypeNames = NewSymbolTable("VkImageType",
	Symbol[ImageType]{IMAGE_TYPE_1D, "VK_IMAGE_TYPE_1D"},
	Symbol[ImageType]{IMAGE_TYPE_2D, "VK_IMAGE_TYPE_2D"},
	Symbol[ImageType]{IMAGE_TYPE_3D, "VK_IMAGE_TYPE_3D"},
)

func (t ImageType) String() string { return imageTypeNames.String(t) }

type ImageTiling int32

const (
	IMAGE_TILING_OPTIMAL                 ImageTiling = 0
	IMAGE_TILING_LINEAR                  ImageTiling = 1
	IMAGE_TILING_DRM_FORMAT_MODIFIER_EXT ImageTiling = 1000158000
)

var imageTilingNames = NewSymbolTable("VkImageTiling",
	Symbol[ImageTiling]{IMAGE_TILING_OPTIMAL, "VK_IMAGE_TILING_OPTIMAL"},
	Symbol[ImageTiling]{IMAGE_TILING_LINEAR, "VK_IMAGE_TILING_LINEAR"},
	Symbol[ImageTiling]{IMAGE_TILING_DRM_FORMAT_MODIFIER_EXT, "VK_IMAGE_TILING_DRM_FORMAT_MODIFIER_EXT"},
)

func (t ImageTiling) String() string { return imageTilingNames.String(t) }

type ImageLayout int32

const (
	IMAGE_LAYOUT_UNDEFINED                        ImageLayout = 0
	IMAGE_LAYOUT_GENERAL                          ImageLayout = 1
	IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         ImageLayout = 2
	IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL ImageLayout = 3
	IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL  ImageLayout = 4
	IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         ImageLayout = 5
	IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL             ImageLayout = 6
	IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL             ImageLayout = 7
	IMAGE_LAYOUT_PREINITIALIZED                   ImageLayout = 8
	IMAGE_LAYOUT_PRESENT_SRC_KHR                  ImageLayout = 1000001002
	IMAGE_LAYOUT_VIDEO_DECODE_DST_KHR             ImageLayout = 1000024000
	IMAGE_LAYOUT_VIDEO_DECODE_SRC_KHR             ImageLayout = 1000024001
	IMAGE_LAYOUT_VIDEO_DECODE_DPB_KHR             ImageLayout = 1000024002
	IMAGE_LAYOUT_SHARED_PRESENT_KHR               ImageLayout = 1000111000
	IMAGE_LAYOUT_DEPTH_ATTACHMENT_OPTIMAL         ImageLayout = 1000241000
	IMAGE_LAYOUT_DEPTH_READ_ONLY_OPTIMAL          ImageLayout = 1000241001
	IMAGE_LAYOUT_STENCIL_ATTACHMENT_OPTIMAL       ImageLayout = 1000241002
	IMAGE_LAYOUT_STENCIL_READ_ONLY_OPTIMAL        ImageLayout = 1000241003
	IMAGE_LAYOUT_VIDEO_ENCODE_DST_KHR             ImageLayout = 1000299000
	IMAGE_LAYOUT_VIDEO_ENCODE_SRC_KHR             ImageLayout = 1000299001
	IMAGE_LAYOUT_VIDEO_ENCODE_DPB_KHR             ImageLayout = 1000299002
	IMAGE_LAYOUT_READ_ONLY_OPTIMAL                ImageLayout = 1000314000
	IMAGE_LAYOUT_ATTACHMENT_OPTIMAL               ImageLayout = 1000314001
)

var imageLayoutNames = NewSymbolTable("VkImageLayout",
	Symbol[ImageLayout]{IMAGE_LAYOUT_UNDEFINED, "VK_IMAGE_LAYOUT_UNDEFINED"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_GENERAL, "VK_IMAGE_LAYOUT_GENERAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL, "VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, "VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_PREINITIALIZED, "VK_IMAGE_LAYOUT_PREINITIALIZED"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_PRESENT_SRC_KHR, "VK_IMAGE_LAYOUT_PRESENT_SRC_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_DECODE_DST_KHR, "VK_IMAGE_LAYOUT_VIDEO_DECODE_DST_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_DECODE_SRC_KHR, "VK_IMAGE_LAYOUT_VIDEO_DECODE_SRC_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_DECODE_DPB_KHR, "VK_IMAGE_LAYOUT_VIDEO_DECODE_DPB_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_SHARED_PRESENT_KHR, "VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_ATTACHMENT_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_ATTACHMENT_OPTIMAL_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_READ_ONLY_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_DEPTH_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_DEPTH_READ_ONLY_OPTIMAL_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_STENCIL_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_STENCIL_ATTACHMENT_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_STENCIL_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_STENCIL_ATTACHMENT_OPTIMAL_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_STENCIL_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_STENCIL_READ_ONLY_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_STENCIL_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_STENCIL_READ_ONLY_OPTIMAL_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_ENCODE_DST_KHR, "VK_IMAGE_LAYOUT_VIDEO_ENCODE_DST_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_ENCODE_SRC_KHR, "VK_IMAGE_LAYOUT_VIDEO_ENCODE_SRC_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_VIDEO_ENCODE_DPB_KHR, "VK_IMAGE_LAYOUT_VIDEO_ENCODE_DPB_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_READ_ONLY_OPTIMAL, "VK_IMAGE_LAYOUT_READ_ONLY_OPTIMAL_KHR"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_ATTACHMENT_OPTIMAL"},
	Symbol[ImageLayout]{IMAGE_LAYOUT_ATTACHMENT_OPTIMAL, "VK_IMAGE_LAYOUT_ATTACHMENT_OPTIMAL_KHR"},
)

func (l ImageLayout) String() string { return imageLayoutNames.String(l) }

type ImageCreateFlags uint32

const (
	IMAGE_CREATE_SPARSE_BINDING_BIT              ImageCreateFlags = 0x00000001
	IMAGE_CREATE_SPARSE_RESIDENCY_BIT            ImageCreateFlags = 0x00000002
	IMAGE_CREATE_SPARSE_ALIASED_BIT              ImageCreateFlags = 0x00000004
	IMAGE_CREATE_MUTABLE_FORMAT_BIT              ImageCreateFlags = 0x00000008
	IMAGE_CREATE_CUBE_COMPATIBLE_BIT             ImageCreateFlags = 0x00000010
	IMAGE_CREATE_2D_ARRAY_COMPATIBLE_BIT         ImageCreateFlags = 0x00000020
	IMAGE_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT ImageCreateFlags = 0x00000040
	IMAGE_CREATE_BLOCK_TEXEL_VIEW_COMPATIBLE_BIT ImageCreateFlags = 0x00000080
	IMAGE_CREATE_EXTENDED_USAGE_BIT              ImageCreateFlags = 0x00000100
	IMAGE_CREATE_DISJOINT_BIT                    ImageCreateFlags = 0x00000200
	IMAGE_CREATE_ALIAS_BIT                       ImageCreateFlags = 0x00000400
	IMAGE_CREATE_PROTECTED_BIT                   ImageCreateFlags = 0x00000800
)

var imageCreateBits = NewFlagTable("VkImageCreateFlagBits",
	Symbol[ImageCreateFlags]{IMAGE_CREATE_SPARSE_BINDING_BIT, "VK_IMAGE_CREATE_SPARSE_BINDING_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_SPARSE_RESIDENCY_BIT, "VK_IMAGE_CREATE_SPARSE_RESIDENCY_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_SPARSE_ALIASED_BIT, "VK_IMAGE_CREATE_SPARSE_ALIASED_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_MUTABLE_FORMAT_BIT, "VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_CUBE_COMPATIBLE_BIT, "VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_2D_ARRAY_COMPATIBLE_BIT, "VK_IMAGE_CREATE_2D_ARRAY_COMPATIBLE_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT, "VK_IMAGE_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_BLOCK_TEXEL_VIEW_COMPATIBLE_BIT, "VK_IMAGE_CREATE_BLOCK_TEXEL_VIEW_COMPATIBLE_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_EXTENDED_USAGE_BIT, "VK_IMAGE_CREATE_EXTENDED_USAGE_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_DISJOINT_BIT, "VK_IMAGE_CREATE_DISJOINT_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_ALIAS_BIT, "VK_IMAGE_CREATE_ALIAS_BIT"},
	Symbol[ImageCreateFlags]{IMAGE_CREATE_PROTECTED_BIT, "VK_IMAGE_CREATE_PROTECTED_BIT"},
)

func (f ImageCreateFlags) String() string { return imageCreateBits.Render(f) }

type ImageUsageFlags uint32

const (
	IMAGE_USAGE_TRANSFER_SRC_BIT             ImageUsageFlags = 0x00000001
	IMAGE_USAGE_TRANSFER_DST_BIT             ImageUsageFlags = 0x00000002
	IMAGE_USAGE_SAMPLED_BIT                  ImageUsageFlags = 0x00000004
	IMAGE_USAGE_STORAGE_BIT                  ImageUsageFlags = 0x00000008
	IMAGE_USAGE_COLOR_ATTACHMENT_BIT         ImageUsageFlags = 0x00000010
	IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT ImageUsageFlags = 0x00000020
	IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     ImageUsageFlags = 0x00000040
	IMAGE_USAGE_INPUT_ATTACHMENT_BIT         ImageUsageFlags = 0x00000080
	IMAGE_USAGE_VIDEO_DECODE_DST_BIT_KHR     ImageUsageFlags = 0x00000400
	IMAGE_USAGE_VIDEO_DECODE_SRC_BIT_KHR     ImageUsageFlags = 0x00000800
	IMAGE_USAGE_VIDEO_DECODE_DPB_BIT_KHR     ImageUsageFlags = 0x00001000
	IMAGE_USAGE_VIDEO_ENCODE_DST_BIT_KHR     ImageUsageFlags = 0x00002000
	IMAGE_USAGE_VIDEO_ENCODE_SRC_BIT_KHR     ImageUsageFlags = 0x00004000
	IMAGE_USAGE_VIDEO_ENCODE_DPB_BIT_KHR     ImageUsageFlags = 0x00008000
)

var imageUsageBits = NewFlagTable("VkImageUsageFlagBits",
	Symbol[ImageUsageFlags]{IMAGE_USAGE_TRANSFER_SRC_BIT, "VK_IMAGE_USAGE_TRANSFER_SRC_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_TRANSFER_DST_BIT, "VK_IMAGE_USAGE_TRANSFER_DST_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_SAMPLED_BIT, "VK_IMAGE_USAGE_SAMPLED_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_STORAGE_BIT, "VK_IMAGE_USAGE_STORAGE_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_COLOR_ATTACHMENT_BIT, "VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT, "VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT, "VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_INPUT_ATTACHMENT_BIT, "VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT"},
	Symbol[ImageUsageFlags]{0x00000100, "VK_IMAGE_USAGE_FRAGMENT_SHADING_RATE_ATTACHMENT_BIT_KHR"},
	Symbol[ImageUsageFlags]{0x00000200, "VK_IMAGE_USAGE_FRAGMENT_DENSITY_MAP_BIT_EXT"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_DECODE_DST_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_DECODE_DST_BIT_KHR"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_DECODE_SRC_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_DECODE_SRC_BIT_KHR"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_DECODE_DPB_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_DECODE_DPB_BIT_KHR"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_ENCODE_DST_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_ENCODE_DST_BIT_KHR"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_ENCODE_SRC_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_ENCODE_SRC_BIT_KHR"},
	Symbol[ImageUsageFlags]{IMAGE_USAGE_VIDEO_ENCODE_DPB_BIT_KHR, "VK_IMAGE_USAGE_VIDEO_ENCODE_DPB_BIT_KHR"},
)

func (f ImageUsageFlags) String() string { return imageUsageBits.Render(f) }

type ImageAspectFlags uint32

const (
	IMAGE_ASPECT_COLOR_BIT    ImageAspectFlags = 0x00000001
	IMAGE_ASPECT_DEPTH_BIT    ImageAspectFlags = 0x00000002
	IMAGE_ASPECT_STENCIL_BIT  ImageAspectFlags = 0x00000004
	IMAGE_ASPECT_METADATA_BIT ImageAspectFlags = 0x00000008
	IMAGE_ASPECT_PLANE_0_BIT  ImageAspectFlags = 0x00000010
	IMAGE_ASPECT_PLANE_1_BIT  ImageAspectFlags = 0x00000020
	IMAGE_ASPECT_PLANE_2_BIT  ImageAspectFlags = 0x00000040
)

var imageAspectBits = NewFlagTable("VkImageAspectFlagBits",
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_COLOR_BIT, "VK_IMAGE_ASPECT_COLOR_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_DEPTH_BIT, "VK_IMAGE_ASPECT_DEPTH_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_STENCIL_BIT, "VK_IMAGE_ASPECT_STENCIL_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_METADATA_BIT, "VK_IMAGE_ASPECT_METADATA_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_0_BIT, "VK_IMAGE_ASPECT_PLANE_0_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_0_BIT, "VK_IMAGE_ASPECT_PLANE_0_BIT_KHR"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_1_BIT, "VK_IMAGE_ASPECT_PLANE_1_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_1_BIT, "VK_IMAGE_ASPECT_PLANE_1_BIT_KHR"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_2_BIT, "VK_IMAGE_ASPECT_PLANE_2_BIT"},
	Symbol[ImageAspectFlags]{IMAGE_ASPECT_PLANE_2_BIT, "VK_IMAGE_ASPECT_PLANE_2_BIT_KHR"},
)

func (f ImageAspectFlags) String() string { return imageAspectBits.Render(f) }

type SampleCountFlags uint32

const (
	SAMPLE_COUNT_1_BIT  SampleCountFlags = 0x00000001
	SAMPLE_COUNT_2_BIT  SampleCountFlags = 0x00000002
	SAMPLE_COUNT_4_BIT  SampleCountFlags = 0x00000004
	SAMPLE_COUNT_8_BIT  SampleCountFlags = 0x00000008
	SAMPLE_COUNT_16_BIT SampleCountFlags = 0x00000010
	SAMPLE_COUNT_32_BIT SampleCountFlags = 0x00000020
	SAMPLE_COUNT_64_BIT SampleCountFlags = 0x00000040
)

var sampleCountBits = NewFlagTable("VkSampleCountFlagBits",
	Symbol[SampleCountFlags]{SAMPLE_COUNT_1_BIT, "VK_SAMPLE_COUNT_1_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_2_BIT, "VK_SAMPLE_COUNT_2_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_4_BIT, "VK_SAMPLE_COUNT_4_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_8_BIT, "VK_SAMPLE_COUNT_8_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_16_BIT, "VK_SAMPLE_COUNT_16_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_32_BIT, "VK_SAMPLE_COUNT_32_BIT"},
	Symbol[SampleCountFlags]{SAMPLE_COUNT_64_BIT, "VK_SAMPLE_COUNT_64_BIT"},
)

func (f SampleCountFlags) String() string { return sampleCountBits.Render(f) }

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type Offset2D struct {
	X int32
	Y int32
}

type Offset3D struct {
	X int32
	Y int32
	Z int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresource struct {
	AspectMask ImageAspectFlags
	MipLevel   uint32
	ArrayLayer uint32
}

type ImageCreateInfo struct {
	Next                  Structure
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlags
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
	InitialLayout         ImageLayout
}

func (*ImageCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_IMAGE_CREATE_INFO }

type ImageFormatListCreateInfo struct {
	Next            Structure
	ViewFormatCount uint32
	ViewFormats     []Format
}

func (*ImageFormatListCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO
}

func printExtent2D(p *Printer, s *Extent2D) {
	p.openObject()
	p.Uint32("width", s.Width, false)
	p.Uint32("height", s.Height, true)
	p.closeObject()
}

func printExtent3D(p *Printer, s *Extent3D) {
	p.openObject()
	p.Uint32("width", s.Width, false)
	p.Uint32("height", s.Height, false)
	p.Uint32("depth", s.Depth, true)
	p.closeObject()
}

func printOffset2D(p *Printer, s *Offset2D) {
	p.openObject()
	p.Int32("x", s.X, false)
	p.Int32("y", s.Y, true)
	p.closeObject()
}

func printOffset3D(p *Printer, s *Offset3D) {
	p.openObject()
	p.Int32("x", s.X, false)
	p.Int32("y", s.Y, false)
	p.Int32("z", s.Z, true)
	p.closeObject()
}

func printRect2D(p *Printer, s *Rect2D) {
	p.openObject()
	printInline(p, "offset", &s.Offset, printOffset2D, false)
	printInline(p, "extent", &s.Extent, printExtent2D, true)
	p.closeObject()
}

func printImageSubresourceRange(p *Printer, s *ImageSubresourceRange) {
	p.openObject()
	p.Flags("aspectMask", s.AspectMask, false)
	p.Uint32("baseMipLevel", s.BaseMipLevel, false)
	p.Uint32("levelCount", s.LevelCount, false)
	p.Uint32("baseArrayLayer", s.BaseArrayLayer, false)
	p.Uint32("layerCount", s.LayerCount, true)
	p.closeObject()
}

func printImageSubresourceLayers(p *Printer, s *ImageSubresourceLayers) {
	p.openObject()
	p.Flags("aspectMask", s.AspectMask, false)
	p.Uint32("mipLevel", s.MipLevel, false)
	p.Uint32("baseArrayLayer", s.BaseArrayLayer, false)
	p.Uint32("layerCount", s.LayerCount, true)
	p.closeObject()
}

func printImageSubresource(p *Printer, s *ImageSubresource) {
	p.openObject()
	p.Flags("aspectMask", s.AspectMask, false)
	p.Uint32("mipLevel", s.MipLevel, false)
	p.Uint32("arrayLayer", s.ArrayLayer, true)
	p.closeObject()
}

func printImageCreateInfo(p *Printer, s *ImageCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Enum("imageType", s.ImageType, false)
	p.Enum("format", s.Format, false)
	printInline(p, "extent", &s.Extent, printExtent3D, false)
	p.Uint32("mipLevels", s.MipLevels, false)
	p.Uint32("arrayLayers", s.ArrayLayers, false)
	p.Flags("samples", s.Samples, false)
	p.Enum("tiling", s.Tiling, false)
	p.Flags("usage", s.Usage, false)
	p.Enum("sharingMode", s.SharingMode, false)
	p.Uint32("queueFamilyIndexCount", s.QueueFamilyIndexCount, false)
	printArray(p, "pQueueFamilyIndices", s.QueueFamilyIndexCount, s.QueueFamilyIndices, (*Printer).uint32Value, false)
	p.Enum("initialLayout", s.InitialLayout, true)
	p.closeObject()
}

func printImageFormatListCreateInfo(p *Printer, s *ImageFormatListCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("viewFormatCount", s.ViewFormatCount, false)
	printArray(p, "pViewFormats", s.ViewFormatCount, s.ViewFormats, stringerValue[Format], true)
	p.closeObject()
}

type Filter int32
type SamplerMipmapMode int32
type SamplerAddressMode int32
type BorderColor int32
type CompareOp int32

const (
	FILTER_NEAREST   Filter = 0
	FILTER_LINEAR    Filter = 1
	FILTER_CUBIC_EXT Filter = 1000015000

	SAMPLER_MIPMAP_MODE_NEAREST SamplerMipmapMode = 0
	SAMPLER_MIPMAP_MODE_LINEAR  SamplerMipmapMode = 1

	SAMPLER_ADDRESS_MODE_REPEAT               SamplerAddressMode = 0
	SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT      SamplerAddressMode = 1
	SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE        SamplerAddressMode = 2
	SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER      SamplerAddressMode = 3
	SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE SamplerAddressMode = 4

	BORDER_COLOR_FLOAT_TRANSPARENT_BLACK BorderColor = 0
	BORDER_COLOR_INT_TRANSPARENT_BLACK   BorderColor = 1
	BORDER_COLOR_FLOAT_OPAQUE_BLACK      BorderColor = 2
	BORDER_COLOR_INT_OPAQUE_BLACK        BorderColor = 3
	BORDER_COLOR_FLOAT_OPAQUE_WHITE      BorderColor = 4
	BORDER_COLOR_INT_OPAQUE_WHITE        BorderColor = 5

	COMPARE_OP_NEVER            CompareOp = 0
	COMPARE_OP_LESS             CompareOp = 1
	COMPARE_OP_EQUAL            CompareOp = 2
	COMPARE_OP_LESS_OR_EQUAL    CompareOp = 3
	COMPARE_OP_GREATER          CompareOp = 4
	COMPARE_OP_NOT_EQUAL        CompareOp = 5
	COMPARE_OP_GREATER_OR_EQUAL CompareOp = 6
	COMPARE_OP_ALWAYS           CompareOp = 7
)

var filterNames = NewSymbolTable("VkFilter",
	Symbol[Filter]{FILTER_NEAREST, "VK_FILTER_NEAREST"},
	Symbol[Filter]{FILTER_LINEAR, "VK_FILTER_LINEAR"},
	Symbol[Filter]{FILTER_CUBIC_EXT, "VK_FILTER_CUBIC_EXT"},
	Symbol[Filter]{FILTER_CUBIC_EXT, "VK_FILTER_CUBIC_IMG"},
)

var samplerMipmapModeNames = NewSymbolTable("VkSamplerMipmapMode",
	Symbol[SamplerMipmapMode]{SAMPLER_MIPMAP_MODE_NEAREST, "VK_SAMPLER_MIPMAP_MODE_NEAREST"},
	Symbol[SamplerMipmapMode]{SAMPLER_MIPMAP_MODE_LINEAR, "VK_SAMPLER_MIPMAP_MODE_LINEAR"},
)

var samplerAddressModeNames = NewSymbolTable("VkSamplerAddressMode",
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_REPEAT, "VK_SAMPLER_ADDRESS_MODE_REPEAT"},
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT, "VK_SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT"},
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE, "VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE"},
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER, "VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER"},
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE, "VK_SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE"},
	Symbol[SamplerAddressMode]{SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE, "VK_SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE_KHR"},
)

var borderColorNames = NewSymbolTable("VkBorderColor",
	Symbol[BorderColor]{BORDER_COLOR_FLOAT_TRANSPARENT_BLACK, "VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK"},
	Symbol[BorderColor]{BORDER_COLOR_INT_TRANSPARENT_BLACK, "VK_BORDER_COLOR_INT_TRANSPARENT_BLACK"},
	Symbol[BorderColor]{BORDER_COLOR_FLOAT_OPAQUE_BLACK, "VK_BORDER_COLOR_FLOAT_OPAQUE_BLACK"},
	Symbol[BorderColor]{BORDER_COLOR_INT_OPAQUE_BLACK, "VK_BORDER_COLOR_INT_OPAQUE_BLACK"},
	Symbol[BorderColor]{BORDER_COLOR_FLOAT_OPAQUE_WHITE, "VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE"},
	Symbol[BorderColor]{BORDER_COLOR_INT_OPAQUE_WHITE, "VK_BORDER_COLOR_INT_OPAQUE_WHITE"},
)

var compareOpNames = NewSymbolTable("VkCompareOp",
	Symbol[CompareOp]{COMPARE_OP_NEVER, "VK_COMPARE_OP_NEVER"},
	Symbol[CompareOp]{COMPARE_OP_LESS, "VK_COMPARE_OP_LESS"},
	Symbol[CompareOp]{COMPARE_OP_EQUAL, "VK_COMPARE_OP_EQUAL"},
	Symbol[CompareOp]{COMPARE_OP_LESS_OR_EQUAL, "VK_COMPARE_OP_LESS_OR_EQUAL"},
	Symbol[CompareOp]{COMPARE_OP_GREATER, "VK_COMPARE_OP_GREATER"},
	Symbol[CompareOp]{COMPARE_OP_NOT_EQUAL, "VK_COMPARE_OP_NOT_EQUAL"},
	Symbol[CompareOp]{COMPARE_OP_GREATER_OR_EQUAL, "VK_COMPARE_OP_GREATER_OR_EQUAL"},
	Symbol[CompareOp]{COMPARE_OP_ALWAYS, "VK_COMPARE_OP_ALWAYS"},
)

func (f Filter) String() string             { return filterNames.String(f) }
func (m SamplerMipmapMode) String() string  { return samplerMipmapModeNames.String(m) }
func (m SamplerAddressMode) String() string { return samplerAddressModeNames.String(m) }
func (c BorderColor) String() string        { return borderColorNames.String(c) }
func (o CompareOp) String() string          { return compareOpNames.String(o) }

type SamplerCreateFlags uint32

var samplerCreateBits = NewFlagTable("VkSamplerCreateFlagBits",
	Symbol[SamplerCreateFlags]{0x00000001, "VK_SAMPLER_CREATE_SUBSAMPLED_BIT_EXT"},
	Symbol[SamplerCreateFlags]{0x00000002, "VK_SAMPLER_CREATE_SUBSAMPLED_COARSE_RECONSTRUCTION_BIT_EXT"},
)

func (f SamplerCreateFlags) String() string { return samplerCreateBits.Render(f) }

type SamplerCreateInfo struct {
	Next                    Structure
	Flags                   SamplerCreateFlags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

func (*SamplerCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_SAMPLER_CREATE_INFO }

func printSamplerCreateInfo(p *Printer, s *SamplerCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Enum("magFilter", s.MagFilter, false)
	p.Enum("minFilter", s.MinFilter, false)
	p.Enum("mipmapMode", s.MipmapMode, false)
	p.Enum("addressModeU", s.AddressModeU, false)
	p.Enum("addressModeV", s.AddressModeV, false)
	p.Enum("addressModeW", s.AddressModeW, false)
	p.Float32("mipLodBias", s.MipLodBias, false)
	p.Bool32("anisotropyEnable", s.AnisotropyEnable, false)
	p.Float32("maxAnisotropy", s.MaxAnisotropy, false)
	p.Bool32("compareEnable", s.CompareEnable, false)
	p.Enum("compareOp", s.CompareOp, false)
	p.Float32("minLod", s.MinLod, false)
	p.Float32("maxLod", s.MaxLod, false)
	p.Enum("borderColor", s.BorderColor, false)
	p.Bool32("unnormalizedCoordinates", s.UnnormalizedCoordinates, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_CREATE_INFO, printImageCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO, printImageFormatListCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_SAMPLER_CREATE_INFO, printSamplerCreateInfo)

	RegisterValue(defaultRegistry, printExtent2D)
	RegisterValue(defaultRegistry, printExtent3D)
	RegisterValue(defaultRegistry, printOffset2D)
	RegisterValue(defaultRegistry, printOffset3D)
	RegisterValue(defaultRegistry, printRect2D)
	RegisterValue(defaultRegistry, printImageSubresourceRange)
	RegisterValue(defaultRegistry, printImageSubresourceLayers)
	RegisterValue(defaultRegistry, printImageSubresource)
}
