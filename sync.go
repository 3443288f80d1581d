// sync.go
package vkdump

type FenceCreateFlags uint32

const FENCE_CREATE_SIGNALED_BIT FenceCreateFlags = 0x00000001

var fenceCreateBits = NewFlagTable("VkFenceCreateFlagBits",
	Symbol[FenceCreateFlags]{FENCE_CREATE_SIGNALED_BIT, "VK_FENCE_CREATE_SIGNALED_BIT"},
)

func (f FenceCreateFlags) String() string { return fenceCreateBits.Render(f) }

// SemaphoreCreateFlags is reserved.
type SemaphoreCreateFlags uint32

var semaphoreCreateBits = NewFlagTable[SemaphoreCreateFlags]("VkSemaphoreCreateFlags")

func (f SemaphoreCreateFlags) String() string { return semaphoreCreateBits.Render(f) }

type SemaphoreWaitFlags uint32

const SEMAPHORE_WAIT_ANY_BIT SemaphoreWaitFlags = 0x00000001

var semaphoreWaitBits = NewFlagTable("VkSemaphoreWaitFlagBits",
	Symbol[SemaphoreWaitFlags]{SEMAPHORE_WAIT_ANY_BIT, "VK_SEMAPHORE_WAIT_ANY_BIT"},
	Symbol[SemaphoreWaitFlags]{SEMAPHORE_WAIT_ANY_BIT, "VK_SEMAPHORE_WAIT_ANY_BIT_KHR"},
)

func (f SemaphoreWaitFlags) String() string { return semaphoreWaitBits.Render(f) }

type SemaphoreType int32

const (
	SEMAPHORE_TYPE_BINARY   SemaphoreType = 0
	SEMAPHORE_TYPE_TIMELINE SemaphoreType = 1
)

var semaphoreTypeNames = NewSymbolTable("VkSemaphoreType",
	Symbol[SemaphoreType]{SEMAPHORE_TYPE_BINARY, "VK_SEMAPHORE_TYPE_BINARY"},
	Symbol[SemaphoreType]{SEMAPHORE_TYPE_TIMELINE, "VK_SEMAPHORE_TYPE_TIMELINE"},
	Symbol[SemaphoreType]{SEMAPHORE_TYPE_BINARY, "VK_SEMAPHORE_TYPE_BINARY_KHR"},
	Symbol[SemaphoreType]{SEMAPHORE_TYPE_TIMELINE, "VK_SEMAPHORE_TYPE_TIMELINE_KHR"},
)

func (t SemaphoreType) String() string { return semaphoreTypeNames.String(t) }

type SemaphoreCreateInfo struct {
	Next  Structure
	Flags SemaphoreCreateFlags
}

func (*SemaphoreCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO }

type SemaphoreTypeCreateInfo struct {
	Next          Structure
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

func (*SemaphoreTypeCreateInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO
}

type FenceCreateInfo struct {
	Next  Structure
	Flags FenceCreateFlags
}

func (*FenceCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_FENCE_CREATE_INFO }

type SubmitInfo struct {
	Next                 Structure
	WaitSemaphoreCount   uint32
	WaitSemaphores       []Semaphore
	WaitDstStageMask     []PipelineStageFlags
	CommandBufferCount   uint32
	CommandBuffers       []CommandBuffer
	SignalSemaphoreCount uint32
	SignalSemaphores     []Semaphore
}

func (*SubmitInfo) StructureType() StructureType { return STRUCTURE_TYPE_SUBMIT_INFO }

type TimelineSemaphoreSubmitInfo struct {
	Next                      Structure
	WaitSemaphoreValueCount   uint32
	WaitSemaphoreValues       []uint64
	SignalSemaphoreValueCount uint32
	SignalSemaphoreValues     []uint64
}

func (*TimelineSemaphoreSubmitInfo) StructureType() StructureType {
	return STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO
}

type SemaphoreWaitInfo struct {
	Next           Structure
	Flags          SemaphoreWaitFlags
	SemaphoreCount uint32
	Semaphores     []Semaphore
	Values         []uint64
}

func (*SemaphoreWaitInfo) StructureType() StructureType { return STRUCTURE_TYPE_SEMAPHORE_WAIT_INFO }

type SemaphoreSignalInfo struct {
	Next      Structure
	Semaphore Semaphore
	Value     uint64
}

func (*SemaphoreSignalInfo) StructureType() StructureType { return STRUCTURE_TYPE_SEMAPHORE_SIGNAL_INFO }

// PresentInfoKHR.Results is an output array; it is nil until the present
// call has filled it in.
type PresentInfoKHR struct {
	Next               Structure
	WaitSemaphoreCount uint32
	WaitSemaphores     []Semaphore
	SwapchainCount     uint32
	Swapchains         []SwapchainKHR
	ImageIndices       []uint32
	Results            []Result
}

func (*PresentInfoKHR) StructureType() StructureType { return STRUCTURE_TYPE_PRESENT_INFO_KHR }

func printSemaphoreCreateInfo(p *Printer, s *SemaphoreCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

func printSemaphoreTypeCreateInfo(p *Printer, s *SemaphoreTypeCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Enum("semaphoreType", s.SemaphoreType, false)
	p.Uint64("initialValue", s.InitialValue, true)
	p.closeObject()
}

func printFenceCreateInfo(p *Printer, s *FenceCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, true)
	p.closeObject()
}

func printSubmitInfo(p *Printer, s *SubmitInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("waitSemaphoreCount", s.WaitSemaphoreCount, false)
	printArray(p, "pWaitSemaphores", s.WaitSemaphoreCount, s.WaitSemaphores, handleElem[Semaphore], false)
	printArray(p, "pWaitDstStageMask", s.WaitSemaphoreCount, s.WaitDstStageMask, stringerValue[PipelineStageFlags], false)
	p.Uint32("commandBufferCount", s.CommandBufferCount, false)
	printArray(p, "pCommandBuffers", s.CommandBufferCount, s.CommandBuffers, handleElem[CommandBuffer], false)
	p.Uint32("signalSemaphoreCount", s.SignalSemaphoreCount, false)
	printArray(p, "pSignalSemaphores", s.SignalSemaphoreCount, s.SignalSemaphores, handleElem[Semaphore], true)
	p.closeObject()
}

func printTimelineSemaphoreSubmitInfo(p *Printer, s *TimelineSemaphoreSubmitInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("waitSemaphoreValueCount", s.WaitSemaphoreValueCount, false)
	printArray(p, "pWaitSemaphoreValues", s.WaitSemaphoreValueCount, s.WaitSemaphoreValues, (*Printer).uint64Value, false)
	p.Uint32("signalSemaphoreValueCount", s.SignalSemaphoreValueCount, false)
	printArray(p, "pSignalSemaphoreValues", s.SignalSemaphoreValueCount, s.SignalSemaphoreValues, (*Printer).uint64Value, true)
	p.closeObject()
}

func printSemaphoreWaitInfo(p *Printer, s *SemaphoreWaitInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Uint32("semaphoreCount", s.SemaphoreCount, false)
	printArray(p, "pSemaphores", s.SemaphoreCount, s.Semaphores, handleElem[Semaphore], false)
	printArray(p, "pValues", s.SemaphoreCount, s.Values, (*Printer).uint64Value, true)
	p.closeObject()
}

func printSemaphoreSignalInfo(p *Printer, s *SemaphoreSignalInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Handle("semaphore", s.Semaphore, false)
	p.Uint64("value", s.Value, true)
	p.closeObject()
}

func printPresentInfoKHR(p *Printer, s *PresentInfoKHR) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("waitSemaphoreCount", s.WaitSemaphoreCount, false)
	printArray(p, "pWaitSemaphores", s.WaitSemaphoreCount, s.WaitSemaphores, handleElem[Semaphore], false)
	p.Uint32("swapchainCount", s.SwapchainCount, false)
	printArray(p, "pSwapchains", s.SwapchainCount, s.Swapchains, handleElem[SwapchainKHR], false)
	printArray(p, "pImageIndices", s.SwapchainCount, s.ImageIndices, (*Printer).uint32Value, false)
	printArray(p, "pResults", s.SwapchainCount, s.Results, stringerValue[Result], true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO, printSemaphoreCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_SEMAPHORE_TYPE_CREATE_INFO, printSemaphoreTypeCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_FENCE_CREATE_INFO, printFenceCreateInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_SUBMIT_INFO, printSubmitInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_TIMELINE_SEMAPHORE_SUBMIT_INFO, printTimelineSemaphoreSubmitInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_SEMAPHORE_WAIT_INFO, printSemaphoreWaitInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_SEMAPHORE_SIGNAL_INFO, printSemaphoreSignalInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_PRESENT_INFO_KHR, printPresentInfoKHR)
}
