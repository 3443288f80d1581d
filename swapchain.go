// swapchain.go
package vkdump

type SharingMode int32

const (
	SHARING_MODE_EXCLUSIVE  SharingMode = 0
	SHARING_MODE_CONCURRENT SharingMode = 1
)

var sharingModeNames = NewSymbolTable("VkSharingMode",
	Symbol[SharingMode]{SHARING_MODE_EXCLUSIVE, "VK_SHARING_MODE_EXCLUSIVE"},
	Symbol[SharingMode]{SHARING_MODE_CONCURRENT, "VK_SHARING_MODE_CONCURRENT"},
)

func (m SharingMode) String() string { return sharingModeNames.String(m) }

type SwapchainCreateFlagsKHR uint32

const (
	SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR SwapchainCreateFlagsKHR = 0x00000001
	SWAPCHAIN_CREATE_PROTECTED_BIT_KHR                   SwapchainCreateFlagsKHR = 0x00000002
	SWAPCHAIN_CREATE_MUTABLE_FORMAT_BIT_KHR              SwapchainCreateFlagsKHR = 0x00000004
)

var swapchainCreateBits = NewFlagTable("VkSwapchainCreateFlagBitsKHR",
	Symbol[SwapchainCreateFlagsKHR]{SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR, "VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR"},
	Symbol[SwapchainCreateFlagsKHR]{SWAPCHAIN_CREATE_PROTECTED_BIT_KHR, "VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR"},
	Symbol[SwapchainCreateFlagsKHR]{SWAPCHAIN_CREATE_MUTABLE_FORMAT_BIT_KHR, "VK_SWAPCHAIN_CREATE_MUTABLE_FORMAT_BIT_KHR"},
)

func (f SwapchainCreateFlagsKHR) String() string { return swapchainCreateBits.Render(f) }

type SwapchainCreateInfoKHR struct {
	Next                  Structure
	Flags                 SwapchainCreateFlagsKHR
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

func (*SwapchainCreateInfoKHR) StructureType() StructureType {
	return STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR
}

// ImageSwapchainCreateInfoKHR chains onto VkImageCreateInfo to alias a
// swapchain image.
type ImageSwapchainCreateInfoKHR struct {
	Next      Structure
	Swapchain SwapchainKHR
}

func (*ImageSwapchainCreateInfoKHR) StructureType() StructureType {
	return STRUCTURE_TYPE_IMAGE_SWAPCHAIN_CREATE_INFO_KHR
}

func printSwapchainCreateInfoKHR(p *Printer, s *SwapchainCreateInfoKHR) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Handle("surface", s.Surface, false)
	p.Uint32("minImageCount", s.MinImageCount, false)
	p.Enum("imageFormat", s.ImageFormat, false)
	p.Enum("imageColorSpace", s.ImageColorSpace, false)
	printInline(p, "imageExtent", &s.ImageExtent, printExtent2D, false)
	p.Uint32("imageArrayLayers", s.ImageArrayLayers, false)
	p.Flags("imageUsage", s.ImageUsage, false)
	p.Enum("imageSharingMode", s.ImageSharingMode, false)
	p.Uint32("queueFamilyIndexCount", s.QueueFamilyIndexCount, false)
	printArray(p, "pQueueFamilyIndices", s.QueueFamilyIndexCount, s.QueueFamilyIndices, (*Printer).uint32Value, false)
	p.Flags("preTransform", s.PreTransform, false)
	p.Flags("compositeAlpha", s.CompositeAlpha, false)
	p.Enum("presentMode", s.PresentMode, false)
	p.Bool32("clipped", s.Clipped, false)
	p.Handle("oldSwapchain", s.OldSwapchain, true)
	p.closeObject()
}

func printImageSwapchainCreateInfoKHR(p *Printer, s *ImageSwapchainCreateInfoKHR) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("swapchain", s.Swapchain, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR, printSwapchainCreateInfoKHR)
	Register(defaultRegistry, STRUCTURE_TYPE_IMAGE_SWAPCHAIN_CREATE_INFO_KHR, printImageSwapchainCreateInfoKHR)
}
