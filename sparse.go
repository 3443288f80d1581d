// sparse.go
package vkdump

type SparseImageFormatFlags uint32

const (
	SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT         SparseImageFormatFlags = 0x00000001
	SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT       SparseImageFormatFlags = 0x00000002
	SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT SparseImageFormatFlags = 0x00000004
)

var sparseImageFormatBits = NewFlagTable("VkSparseImageFormatFlagBits",
	Symbol[SparseImageFormatFlags]{SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT, "VK_SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT"},
	Symbol[SparseImageFormatFlags]{SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT, "VK_SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT"},
	Symbol[SparseImageFormatFlags]{SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT, "VK_SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT"},
)

func (f SparseImageFormatFlags) String() string { return sparseImageFormatBits.Render(f) }

type SparseMemoryBindFlags uint32

const SPARSE_MEMORY_BIND_METADATA_BIT SparseMemoryBindFlags = 0x00000001

var sparseMemoryBindBits = NewFlagTable("VkSparseMemoryBindFlagBits",
	Symbol[SparseMemoryBindFlags]{SPARSE_MEMORY_BIND_METADATA_BIT, "VK_SPARSE_MEMORY_BIND_METADATA_BIT"},
)

func (f SparseMemoryBindFlags) String() string { return sparseMemoryBindBits.Render(f) }

type SparseImageFormatProperties struct {
	AspectMask       ImageAspectFlags
	ImageGranularity Extent3D
	Flags            SparseImageFormatFlags
}

type SparseImageMemoryRequirements struct {
	FormatProperties     SparseImageFormatProperties
	ImageMipTailFirstLod uint32
	ImageMipTailSize     DeviceSize
	ImageMipTailOffset   DeviceSize
	ImageMipTailStride   DeviceSize
}

type SparseMemoryBind struct {
	ResourceOffset DeviceSize
	Size           DeviceSize
	Memory         DeviceMemory
	MemoryOffset   DeviceSize
	Flags          SparseMemoryBindFlags
}

type SparseBufferMemoryBindInfo struct {
	Buffer    Buffer
	BindCount uint32
	Binds     []SparseMemoryBind
}

type SparseImageOpaqueMemoryBindInfo struct {
	Image     Image
	BindCount uint32
	Binds     []SparseMemoryBind
}

type SparseImageMemoryBind struct {
	Subresource  ImageSubresource
	Offset       Offset3D
	Extent       Extent3D
	Memory       DeviceMemory
	MemoryOffset DeviceSize
	Flags        SparseMemoryBindFlags
}

type SparseImageMemoryBindInfo struct {
	Image     Image
	BindCount uint32
	Binds     []SparseImageMemoryBind
}

type BindSparseInfo struct {
	Next                 Structure
	WaitSemaphoreCount   uint32
	WaitSemaphores       []Semaphore
	BufferBindCount      uint32
	BufferBinds          []SparseBufferMemoryBindInfo
	ImageOpaqueBindCount uint32
	ImageOpaqueBinds     []SparseImageOpaqueMemoryBindInfo
	ImageBindCount       uint32
	ImageBinds           []SparseImageMemoryBindInfo
	SignalSemaphoreCount uint32
	SignalSemaphores     []Semaphore
}

func (*BindSparseInfo) StructureType() StructureType { return STRUCTURE_TYPE_BIND_SPARSE_INFO }

func printSparseImageFormatProperties(p *Printer, s *SparseImageFormatProperties) {
	p.openObject()
	p.Flags("aspectMask", s.AspectMask, false)
	printInline(p, "imageGranularity", &s.ImageGranularity, printExtent3D, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

func printSparseImageMemoryRequirements(p *Printer, s *SparseImageMemoryRequirements) {
	p.openObject()
	printInline(p, "formatProperties", &s.FormatProperties, printSparseImageFormatProperties, false)
	p.Uint32("imageMipTailFirstLod", s.ImageMipTailFirstLod, false)
	p.DeviceSize("imageMipTailSize", s.ImageMipTailSize, false)
	p.DeviceSize("imageMipTailOffset", s.ImageMipTailOffset, false)
	p.DeviceSize("imageMipTailStride", s.ImageMipTailStride, true)
	p.closeObject()
}

func printSparseMemoryBind(p *Printer, s *SparseMemoryBind) {
	p.openObject()
	p.DeviceSize("resourceOffset", s.ResourceOffset, false)
	p.DeviceSize("size", s.Size, false)
	p.Handle("memory", s.Memory, false)
	p.DeviceSize("memoryOffset", s.MemoryOffset, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

func printSparseBufferMemoryBindInfo(p *Printer, s *SparseBufferMemoryBindInfo) {
	p.openObject()
	p.Handle("buffer", s.Buffer, false)
	p.Uint32("bindCount", s.BindCount, false)
	printArray(p, "pBinds", s.BindCount, s.Binds, printSparseMemoryBind, true)
	p.closeObject()
}

func printSparseImageOpaqueMemoryBindInfo(p *Printer, s *SparseImageOpaqueMemoryBindInfo) {
	p.openObject()
	p.Handle("image", s.Image, false)
	p.Uint32("bindCount", s.BindCount, false)
	printArray(p, "pBinds", s.BindCount, s.Binds, printSparseMemoryBind, true)
	p.closeObject()
}

func printSparseImageMemoryBind(p *Printer, s *SparseImageMemoryBind) {
	p.openObject()
	printInline(p, "subresource", &s.Subresource, printImageSubresource, false)
	printInline(p, "offset", &s.Offset, printOffset3D, false)
	printInline(p, "extent", &s.Extent, printExtent3D, false)
	p.Handle("memory", s.Memory, false)
	p.DeviceSize("memoryOffset", s.MemoryOffset, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

func printSparseImageMemoryBindInfo(p *Printer, s *SparseImageMemoryBindInfo) {
	p.openObject()
	p.Handle("image", s.Image, false)
	p.Uint32("bindCount", s.BindCount, false)
	printArray(p, "pBinds", s.BindCount, s.Binds, printSparseImageMemoryBind, true)
	p.closeObject()
}

func printBindSparseInfo(p *Printer, s *BindSparseInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("waitSemaphoreCount", s.WaitSemaphoreCount, false)
	printArray(p, "pWaitSemaphores", s.WaitSemaphoreCount, s.WaitSemaphores, handleElem[Semaphore], false)
	p.Uint32("bufferBindCount", s.BufferBindCount, false)
	printArray(p, "pBufferBinds", s.BufferBindCount, s.BufferBinds, printSparseBufferMemoryBindInfo, false)
	p.Uint32("imageOpaqueBindCount", s.ImageOpaqueBindCount, false)
	printArray(p, "pImageOpaqueBinds", s.ImageOpaqueBindCount, s.ImageOpaqueBinds, printSparseImageOpaqueMemoryBindInfo, false)
	p.Uint32("imageBindCount", s.ImageBindCount, false)
	printArray(p, "pImageBinds", s.ImageBindCount, s.ImageBinds, printSparseImageMemoryBindInfo, false)
	p.Uint32("signalSemaphoreCount", s.SignalSemaphoreCount, false)
	printArray(p, "pSignalSemaphores", s.SignalSemaphoreCount, s.SignalSemaphores, handleElem[Semaphore], true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_BIND_SPARSE_INFO, printBindSparseInfo)

	RegisterValue(defaultRegistry, printSparseImageFormatProperties)
	RegisterValue(defaultRegistry, printSparseImageMemoryRequirements)
	RegisterValue(defaultRegistry, printSparseMemoryBind)
	RegisterValue(defaultRegistry, printSparseBufferMemoryBindInfo)
	RegisterValue(defaultRegistry, printSparseImageOpaqueMemoryBindInfo)
	RegisterValue(defaultRegistry, printSparseImageMemoryBind)
	RegisterValue(defaultRegistry, printSparseImageMemoryBindInfo)
}
