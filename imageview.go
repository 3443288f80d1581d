// imageview.go
package vkdump

type ImageViewType int32

const (
	IMAGE_VIEW_TYPE_1D         ImageViewType = 0
	IMAGE_VIEW_TYPE_2D         ImageViewType = 1
	IMAGE_VIEW_TYPE_3D         ImageViewType = 2
	IMAGE_VIEW_TYPE_CUBE       ImageViewType = 3
	IMAGE_VIEW_TYPE_1D_ARRAY   ImageViewType = 4
	IMAGE_VIEW_TYPE_2D_ARRAY   ImageViewType = 5
	IMAGE_VIEW_TYPE_CUBE_ARRAY ImageViewType = 6
)

var imageViewTypeNames = NewSymbolTable("VkImageViewType",
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_1D, "VK_IMAGE_VIEW_TYPE_1D"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_2D, "VK_IMAGE_VIEW_TYPE_2D"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_3D, "VK_IMAGE_VIEW_TYPE_3D"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_CUBE, "VK_IMAGE_VIEW_TYPE_CUBE"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_1D_ARRAY, "VK_IMAGE_VIEW_TYPE_1D_ARRAY"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_2D_ARRAY, "VK_IMAGE_VIEW_TYPE_2D_ARRAY"},
	Symbol[ImageViewType]{IMAGE_VIEW_TYPE_CUBE_ARRAY, "VK_IMAGE_VIEW_TYPE_CUBE_ARRAY"},
)

func (t ImageViewType) String() string { return imageViewTypeNames.String(t) }

type ComponentSwizzle int32

const (
	COMPONENT_SWIZZLE_IDENTITY ComponentSwizzle = 0
	COMPONENT_SWIZZLE_ZERO     ComponentSwizzle = 1
	COMPONENT_SWIZZLE_ONE      ComponentSwizzle = 2
	COMPONENT_SWIZZLE_R        ComponentSwizzle = 3
	COMPONENT_SWIZZLE_G        ComponentSwizzle = 4
	COMPONENT_SWIZZLE_B        ComponentSwizzle = 5
	COMPONENT_SWIZZLE_A        ComponentSwizzle = 6
)

var componentSwizzleNames = NewSymbolTable("VkComponentSwizzle",
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_IDENTITY, "VK_COMPONENT_SWIZZLE_IDENTITY"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_ZERO, "VK_COMPONENT_SWIZZLE_ZERO"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_ONE, "VK_COMPONENT_SWIZZLE_ONE"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_R, "VK_COMPONENT_SWIZZLE_R"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_G, "VK_COMPONENT_SWIZZLE_G"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_B, "VK_COMPONENT_SWIZZLE_B"},
	Symbol[ComponentSwizzle]{COMPONENT_SWIZZLE_A, "VK_COMPONENT_SWIZZLE_A"},
)

func (c ComponentSwizzle) String() string { return componentSwizzleNames.String(c) }

type ImageViewCreateFlags uint32

var imageViewCreateBits = NewFlagTable("VkImageViewCreateFlagBits",
	Symbol[ImageViewCreateFlags]{0x00000001, "VK_IMAGE_VIEW_CREATE_FRAGMENT_DENSITY_MAP_DYNAMIC_BIT_EXT"},
	Symbol[ImageViewCreateFlags]{0x00000002, "VK_IMAGE_VIEW_CREATE_FRAGMENT_DENSITY_MAP_DEFERRED_BIT_EXT"},
	Symbol[ImageViewCreateFlags]{0x00000004, "VK_IMAGE_VIEW_CREATE_DESCRIPTOR_BUFFER_CAPTURE_REPLAY_BIT_EXT"},
)

func (f ImageViewCreateFlags) String() string { return imageViewCreateBits.Render(f) }

type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

type ImageViewCreateInfo struct {
	Next             Structure
	Flags            ImageViewCreateFlags
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

func (*ImageViewCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO }

// ImageViewUsageCreateInfo restricts a view to a subset of its image's usage.
type ImageViewUsageCreateInfo struct {
	Next  Structure
	Usage ImageUsageFlags
}

func (*ImageViewUsageCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_IMAGE_VIEW_USAGE_CREATE_INFO
}

func printComponentMapping(p *Printer, s *ComponentMapping) {
	p.openObject()
	p.Enum("r", s.R, false)
	p.Enum("g", s.G, false)
	p.Enum("b", s.B, false)
	p.Enum("a", s.A, true)
	p.closeObject()
}

func printImageViewCreateInfo(p *Printer, s *ImageViewCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Handle("image", s.Image, false)
	p.Enum("viewType", s.ViewType, false)
	p.Enum("format", s.Format, false)
	printInline(p, "components", &s.Components, printComponentMapping, false)
	printInline(p, "subresourceRange", &s.SubresourceRange, printImageSubresourceRange, true)
	p.closeObject()
}

func printImageViewUsageCreateInfo(p *Printer, s *ImageViewUsageCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("usage", s.Usage, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO, printImageViewCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_VIEW_USAGE_CREATE_INFO, printImageViewUsageCreateInfo)
	RegisterValue(defaultRegistry, printComponentMapping)
}
