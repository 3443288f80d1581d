// surface.go
package vkdump

type PresentModeKHR int32

const (
	PRESENT_MODE_IMMEDIATE_KHR    PresentModeKHR = 0
	PRESENT_MODE_MAILBOX_KHR      PresentModeKHR = 1
	PRESENT_MODE_FIFO_KHR         PresentModeKHR = 2
	PRESENT_MODE_FIFO_RELAXED_KHR PresentModeKHR = 3
)

var presentModeNames = NewSymbolTable("VkPresentModeKHR",
	Symbol[PresentModeKHR]{PRESENT_MODE_IMMEDIATE_KHR, "VK_PRESENT_MODE_IMMEDIATE_KHR"},
	Symbol[PresentModeKHR]{PRESENT_MODE_MAILBOX_KHR, "VK_PRESENT_MODE_MAILBOX_KHR"},
	Symbol[PresentModeKHR]{PRESENT_MODE_FIFO_KHR, "VK_PRESENT_MODE_FIFO_KHR"},
	Symbol[PresentModeKHR]{PRESENT_MODE_FIFO_RELAXED_KHR, "VK_PRESENT_MODE_FIFO_RELAXED_KHR"},
	Symbol[PresentModeKHR]{1000111000, "VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR"},
	Symbol[PresentModeKHR]{1000111001, "VK_PRESENT_MODE_SHARED_CONTINUOUS_REFRESH_KHR"},
)

func (m PresentModeKHR) String() string { return presentModeNames.String(m) }

type ColorSpaceKHR int32

const (
	COLOR_SPACE_SRGB_NONLINEAR_KHR          ColorSpaceKHR = 0
	COLOR_SPACE_DISPLAY_P3_NONLINEAR_EXT    ColorSpaceKHR = 1000104001
	COLOR_SPACE_EXTENDED_SRGB_LINEAR_EXT    ColorSpaceKHR = 1000104002
	COLOR_SPACE_HDR10_ST2084_EXT            ColorSpaceKHR = 1000104008
	COLOR_SPACE_EXTENDED_SRGB_NONLINEAR_EXT ColorSpaceKHR = 1000104014
)

var colorSpaceNames = NewSymbolTable("VkColorSpaceKHR",
	Symbol[ColorSpaceKHR]{COLOR_SPACE_SRGB_NONLINEAR_KHR, "VK_COLOR_SPACE_SRGB_NONLINEAR_KHR"},
	Symbol[ColorSpaceKHR]{COLOR_SPACE_SRGB_NONLINEAR_KHR, "VK_COLORSPACE_SRGB_NONLINEAR_KHR"},
	Symbol[ColorSpaceKHR]{COLOR_SPACE_DISPLAY_P3_NONLINEAR_EXT, "VK_COLOR_SPACE_DISPLAY_P3_NONLINEAR_EXT"},
	Symbol[ColorSpaceKHR]{COLOR_SPACE_EXTENDED_SRGB_LINEAR_EXT, "VK_COLOR_SPACE_EXTENDED_SRGB_LINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104003, "VK_COLOR_SPACE_DISPLAY_P3_LINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104004, "VK_COLOR_SPACE_DCI_P3_NONLINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104005, "VK_COLOR_SPACE_BT709_LINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104006, "VK_COLOR_SPACE_BT709_NONLINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104007, "VK_COLOR_SPACE_BT2020_LINEAR_EXT"},
	Symbol[ColorSpaceKHR]{COLOR_SPACE_HDR10_ST2084_EXT, "VK_COLOR_SPACE_HDR10_ST2084_EXT"},
	Symbol[ColorSpaceKHR]{1000104010, "VK_COLOR_SPACE_HDR10_HLG_EXT"},
	Symbol[ColorSpaceKHR]{1000104011, "VK_COLOR_SPACE_ADOBERGB_LINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104012, "VK_COLOR_SPACE_ADOBERGB_NONLINEAR_EXT"},
	Symbol[ColorSpaceKHR]{1000104013, "VK_COLOR_SPACE_PASS_THROUGH_EXT"},
	Symbol[ColorSpaceKHR]{COLOR_SPACE_EXTENDED_SRGB_NONLINEAR_EXT, "VK_COLOR_SPACE_EXTENDED_SRGB_NONLINEAR_EXT"},
)

func (c ColorSpaceKHR) String() string { return colorSpaceNames.String(c) }

type SurfaceTransformFlagsKHR uint32

const (
	SURFACE_TRANSFORM_IDENTITY_BIT_KHR                     SurfaceTransformFlagsKHR = 0x00000001
	SURFACE_TRANSFORM_ROTATE_90_BIT_KHR                    SurfaceTransformFlagsKHR = 0x00000002
	SURFACE_TRANSFORM_ROTATE_180_BIT_KHR                   SurfaceTransformFlagsKHR = 0x00000004
	SURFACE_TRANSFORM_ROTATE_270_BIT_KHR                   SurfaceTransformFlagsKHR = 0x00000008
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR            SurfaceTransformFlagsKHR = 0x00000010
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR  SurfaceTransformFlagsKHR = 0x00000020
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR SurfaceTransformFlagsKHR = 0x00000040
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR SurfaceTransformFlagsKHR = 0x00000080
	SURFACE_TRANSFORM_INHERIT_BIT_KHR                      SurfaceTransformFlagsKHR = 0x00000100
)

var surfaceTransformBits = NewFlagTable("VkSurfaceTransformFlagBitsKHR",
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_IDENTITY_BIT_KHR, "VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_ROTATE_90_BIT_KHR, "VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_ROTATE_180_BIT_KHR, "VK_SURFACE_TRANSFORM_ROTATE_180_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_ROTATE_270_BIT_KHR, "VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR, "VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR, "VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR, "VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR, "VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR"},
	Symbol[SurfaceTransformFlagsKHR]{SURFACE_TRANSFORM_INHERIT_BIT_KHR, "VK_SURFACE_TRANSFORM_INHERIT_BIT_KHR"},
)

func (f SurfaceTransformFlagsKHR) String() string { return surfaceTransformBits.Render(f) }

type CompositeAlphaFlagsKHR uint32

const (
	COMPOSITE_ALPHA_OPAQUE_BIT_KHR          CompositeAlphaFlagsKHR = 0x00000001
	COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR  CompositeAlphaFlagsKHR = 0x00000002
	COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR CompositeAlphaFlagsKHR = 0x00000004
	COMPOSITE_ALPHA_INHERIT_BIT_KHR         CompositeAlphaFlagsKHR = 0x00000008
)

var compositeAlphaBits = NewFlagTable("VkCompositeAlphaFlagBitsKHR",
	Symbol[CompositeAlphaFlagsKHR]{COMPOSITE_ALPHA_OPAQUE_BIT_KHR, "VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR"},
	Symbol[CompositeAlphaFlagsKHR]{COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR, "VK_COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR"},
	Symbol[CompositeAlphaFlagsKHR]{COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR, "VK_COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR"},
	Symbol[CompositeAlphaFlagsKHR]{COMPOSITE_ALPHA_INHERIT_BIT_KHR, "VK_COMPOSITE_ALPHA_INHERIT_BIT_KHR"},
)

func (f CompositeAlphaFlagsKHR) String() string { return compositeAlphaBits.Render(f) }

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

func printSurfaceFormatKHR(p *Printer, s *SurfaceFormatKHR) {
	p.openObject()
	p.Enum("format", s.Format, false)
	p.Enum("colorSpace", s.ColorSpace, true)
	p.closeObject()
}

func printSurfaceCapabilitiesKHR(p *Printer, s *SurfaceCapabilitiesKHR) {
	p.openObject()
	p.Uint32("minImageCount", s.MinImageCount, false)
	p.Uint32("maxImageCount", s.MaxImageCount, false)
	printInline(p, "currentExtent", &s.CurrentExtent, printExtent2D, false)
	printInline(p, "minImageExtent", &s.MinImageExtent, printExtent2D, false)
	printInline(p, "maxImageExtent", &s.MaxImageExtent, printExtent2D, false)
	p.Uint32("maxImageArrayLayers", s.MaxImageArrayLayers, false)
	p.Flags("supportedTransforms", s.SupportedTransforms, false)
	p.Flags("currentTransform", s.CurrentTransform, false)
	p.Flags("supportedCompositeAlpha", s.SupportedCompositeAlpha, false)
	p.Flags("supportedUsageFlags", s.SupportedUsageFlags, true)
	p.closeObject()
}

func init() {
	RegisterValue(defaultRegistry, printSurfaceFormatKHR)
	RegisterValue(defaultRegistry, printSurfaceCapabilitiesKHR)
}
