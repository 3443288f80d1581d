// debug.go
package vkdump

type DebugUtilsMessageSeverityFlagsEXT uint32

const (
	DEBUG_UTILS_MESSAGE_SEVERITY_VERBOSE_BIT_EXT DebugUtilsMessageSeverityFlagsEXT = 0x00000001
	DEBUG_UTILS_MESSAGE_SEVERITY_INFO_BIT_EXT    DebugUtilsMessageSeverityFlagsEXT = 0x00000010
	DEBUG_UTILS_MESSAGE_SEVERITY_WARNING_BIT_EXT DebugUtilsMessageSeverityFlagsEXT = 0x00000100
	DEBUG_UTILS_MESSAGE_SEVERITY_ERROR_BIT_EXT   DebugUtilsMessageSeverityFlagsEXT = 0x00001000
)

var debugUtilsMessageSeverityBits = NewFlagTable("VkDebugUtilsMessageSeverityFlagBitsEXT",
	Symbol[DebugUtilsMessageSeverityFlagsEXT]{DEBUG_UTILS_MESSAGE_SEVERITY_VERBOSE_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_SEVERITY_VERBOSE_BIT_EXT"},
	Symbol[DebugUtilsMessageSeverityFlagsEXT]{DEBUG_UTILS_MESSAGE_SEVERITY_INFO_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_SEVERITY_INFO_BIT_EXT"},
	Symbol[DebugUtilsMessageSeverityFlagsEXT]{DEBUG_UTILS_MESSAGE_SEVERITY_WARNING_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_SEVERITY_WARNING_BIT_EXT"},
	Symbol[DebugUtilsMessageSeverityFlagsEXT]{DEBUG_UTILS_MESSAGE_SEVERITY_ERROR_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_SEVERITY_ERROR_BIT_EXT"},
)

func (f DebugUtilsMessageSeverityFlagsEXT) String() string {
	return debugUtilsMessageSeverityBits.Render(f)
}

type DebugUtilsMessageTypeFlagsEXT uint32

const (
	DEBUG_UTILS_MESSAGE_TYPE_GENERAL_BIT_EXT                DebugUtilsMessageTypeFlagsEXT = 0x00000001
	DEBUG_UTILS_MESSAGE_TYPE_VALIDATION_BIT_EXT             DebugUtilsMessageTypeFlagsEXT = 0x00000002
	DEBUG_UTILS_MESSAGE_TYPE_PERFORMANCE_BIT_EXT            DebugUtilsMessageTypeFlagsEXT = 0x00000004
	DEBUG_UTILS_MESSAGE_TYPE_DEVICE_ADDRESS_BINDING_BIT_EXT DebugUtilsMessageTypeFlagsEXT = 0x00000008
)

var debugUtilsMessageTypeBits = NewFlagTable("VkDebugUtilsMessageTypeFlagBitsEXT",
	Symbol[DebugUtilsMessageTypeFlagsEXT]{DEBUG_UTILS_MESSAGE_TYPE_GENERAL_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_TYPE_GENERAL_BIT_EXT"},
	Symbol[DebugUtilsMessageTypeFlagsEXT]{DEBUG_UTILS_MESSAGE_TYPE_VALIDATION_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_TYPE_VALIDATION_BIT_EXT"},
	Symbol[DebugUtilsMessageTypeFlagsEXT]{DEBUG_UTILS_MESSAGE_TYPE_PERFORMANCE_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_TYPE_PERFORMANCE_BIT_EXT"},
	Symbol[DebugUtilsMessageTypeFlagsEXT]{DEBUG_UTILS_MESSAGE_TYPE_DEVICE_ADDRESS_BINDING_BIT_EXT, "VK_DEBUG_UTILS_MESSAGE_TYPE_DEVICE_ADDRESS_BINDING_BIT_EXT"},
)

func (f DebugUtilsMessageTypeFlagsEXT) String() string {
	return debugUtilsMessageTypeBits.Render(f)
}

// Reserved flag types with no defined bits still render through a table so
// stray bits show up as hex.
type DebugUtilsMessengerCreateFlagsEXT uint32
type DebugUtilsMessengerCallbackDataFlagsEXT uint32

var (
	debugUtilsMessengerCreateBits       = NewFlagTable[DebugUtilsMessengerCreateFlagsEXT]("VkDebugUtilsMessengerCreateFlagsEXT")
	debugUtilsMessengerCallbackDataBits = NewFlagTable[DebugUtilsMessengerCallbackDataFlagsEXT]("VkDebugUtilsMessengerCallbackDataFlagsEXT")
)

func (f DebugUtilsMessengerCreateFlagsEXT) String() string {
	return debugUtilsMessengerCreateBits.Render(f)
}

func (f DebugUtilsMessengerCallbackDataFlagsEXT) String() string {
	return debugUtilsMessengerCallbackDataBits.Render(f)
}

type ValidationFeatureEnableEXT int32

const (
	VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_EXT                      ValidationFeatureEnableEXT = 0
	VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_RESERVE_BINDING_SLOT_EXT ValidationFeatureEnableEXT = 1
	VALIDATION_FEATURE_ENABLE_BEST_PRACTICES_EXT                    ValidationFeatureEnableEXT = 2
	VALIDATION_FEATURE_ENABLE_DEBUG_PRINTF_EXT                      ValidationFeatureEnableEXT = 3
	VALIDATION_FEATURE_ENABLE_SYNCHRONIZATION_VALIDATION_EXT        ValidationFeatureEnableEXT = 4
)

var validationFeatureEnableNames = NewSymbolTable("VkValidationFeatureEnableEXT",
	Symbol[ValidationFeatureEnableEXT]{VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_EXT, "VK_VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_EXT"},
	Symbol[ValidationFeatureEnableEXT]{VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_RESERVE_BINDING_SLOT_EXT, "VK_VALIDATION_FEATURE_ENABLE_GPU_ASSISTED_RESERVE_BINDING_SLOT_EXT"},
	Symbol[ValidationFeatureEnableEXT]{VALIDATION_FEATURE_ENABLE_BEST_PRACTICES_EXT, "VK_VALIDATION_FEATURE_ENABLE_BEST_PRACTICES_EXT"},
	Symbol[ValidationFeatureEnableEXT]{VALIDATION_FEATURE_ENABLE_DEBUG_PRINTF_EXT, "VK_VALIDATION_FEATURE_ENABLE_DEBUG_PRINTF_EXT"},
	Symbol[ValidationFeatureEnableEXT]{VALIDATION_FEATURE_ENABLE_SYNCHRONIZATION_VALIDATION_EXT, "VK_VALIDATION_FEATURE_ENABLE_SYNCHRONIZATION_VALIDATION_EXT"},
)

func (v ValidationFeatureEnableEXT) String() string { return validationFeatureEnableNames.String(v) }

type ValidationFeatureDisableEXT int32

const (
	VALIDATION_FEATURE_DISABLE_ALL_EXT                     ValidationFeatureDisableEXT = 0
	VALIDATION_FEATURE_DISABLE_SHADERS_EXT                 ValidationFeatureDisableEXT = 1
	VALIDATION_FEATURE_DISABLE_THREAD_SAFETY_EXT           ValidationFeatureDisableEXT = 2
	VALIDATION_FEATURE_DISABLE_API_PARAMETERS_EXT          ValidationFeatureDisableEXT = 3
	VALIDATION_FEATURE_DISABLE_OBJECT_LIFETIMES_EXT        ValidationFeatureDisableEXT = 4
	VALIDATION_FEATURE_DISABLE_CORE_CHECKS_EXT             ValidationFeatureDisableEXT = 5
	VALIDATION_FEATURE_DISABLE_UNIQUE_HANDLES_EXT          ValidationFeatureDisableEXT = 6
	VALIDATION_FEATURE_DISABLE_SHADER_VALIDATION_CACHE_EXT ValidationFeatureDisableEXT = 7
)

var validationFeatureDisableNames = NewSymbolTable("VkValidationFeatureDisableEXT",
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_ALL_EXT, "VK_VALIDATION_FEATURE_DISABLE_ALL_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_SHADERS_EXT, "VK_VALIDATION_FEATURE_DISABLE_SHADERS_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_THREAD_SAFETY_EXT, "VK_VALIDATION_FEATURE_DISABLE_THREAD_SAFETY_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_API_PARAMETERS_EXT, "VK_VALIDATION_FEATURE_DISABLE_API_PARAMETERS_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_OBJECT_LIFETIMES_EXT, "VK_VALIDATION_FEATURE_DISABLE_OBJECT_LIFETIMES_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_CORE_CHECKS_EXT, "VK_VALIDATION_FEATURE_DISABLE_CORE_CHECKS_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_UNIQUE_HANDLES_EXT, "VK_VALIDATION_FEATURE_DISABLE_UNIQUE_HANDLES_EXT"},
	Symbol[ValidationFeatureDisableEXT]{VALIDATION_FEATURE_DISABLE_SHADER_VALIDATION_CACHE_EXT, "VK_VALIDATION_FEATURE_DISABLE_SHADER_VALIDATION_CACHE_EXT"},
)

func (v ValidationFeatureDisableEXT) String() string { return validationFeatureDisableNames.String(v) }

// DebugUtilsMessengerCreateInfoEXT is usually chained from InstanceCreateInfo
// so instance creation itself gets reported.
type DebugUtilsMessengerCreateInfoEXT struct {
	Next            Structure
	Flags           DebugUtilsMessengerCreateFlagsEXT
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	UserData        uintptr
}

func (*DebugUtilsMessengerCreateInfoEXT) StructureType() StructureType {
	return STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT
}

type DebugUtilsLabelEXT struct {
	Next      Structure
	LabelName string
	Color     [4]float32
}

func (*DebugUtilsLabelEXT) StructureType() StructureType { return STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT }

type DebugUtilsObjectNameInfoEXT struct {
	Next         Structure
	ObjectType   ObjectType
	ObjectHandle uint64
	ObjectName   string
}

func (*DebugUtilsObjectNameInfoEXT) StructureType() StructureType {
	return STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT
}

type DebugUtilsMessengerCallbackDataEXT struct {
	Next             Structure
	Flags            DebugUtilsMessengerCallbackDataFlagsEXT
	MessageIdName    string
	MessageIdNumber  int32
	Message          string
	QueueLabelCount  uint32
	QueueLabels      []DebugUtilsLabelEXT
	CmdBufLabelCount uint32
	CmdBufLabels     []DebugUtilsLabelEXT
	ObjectCount      uint32
	Objects          []DebugUtilsObjectNameInfoEXT
}

func (*DebugUtilsMessengerCallbackDataEXT) StructureType() StructureType {
	return STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CALLBACK_DATA_EXT
}

type ValidationFeaturesEXT struct {
	Next                           Structure
	EnabledValidationFeatureCount  uint32
	EnabledValidationFeatures      []ValidationFeatureEnableEXT
	DisabledValidationFeatureCount uint32
	DisabledValidationFeatures     []ValidationFeatureDisableEXT
}

func (*ValidationFeaturesEXT) StructureType() StructureType { return STRUCTURE_TYPE_VALIDATION_FEATURES_EXT }

func printDebugUtilsMessengerCreateInfoEXT(p *Printer, s *DebugUtilsMessengerCreateInfoEXT) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.Flags("messageSeverity", s.MessageSeverity, false)
	p.Flags("messageType", s.MessageType, false)
	p.Opaque("pfnUserCallback", s.PfnUserCallback, false)
	p.Opaque("pUserData", s.UserData, true)
	p.closeObject()
}

func printDebugUtilsLabelEXT(p *Printer, s *DebugUtilsLabelEXT) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.CString("pLabelName", s.LabelName, false)
	printArray(p, "color", 4, s.Color[:], (*Printer).float32Value, true)
	p.closeObject()
}

func printDebugUtilsObjectNameInfoEXT(p *Printer, s *DebugUtilsObjectNameInfoEXT) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Enum("objectType", s.ObjectType, false)
	p.RawHandle("objectHandle", s.ObjectHandle, false)
	p.CString("pObjectName", s.ObjectName, true)
	p.closeObject()
}

func printDebugUtilsMessengerCallbackDataEXT(p *Printer, s *DebugUtilsMessengerCallbackDataEXT) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	p.CString("pMessageIdName", s.MessageIdName, false)
	p.Int32("messageIdNumber", s.MessageIdNumber, false)
	p.CString("pMessage", s.Message, false)
	p.Uint32("queueLabelCount", s.QueueLabelCount, false)
	printArray(p, "pQueueLabels", s.QueueLabelCount, s.QueueLabels, printDebugUtilsLabelEXT, false)
	p.Uint32("cmdBufLabelCount", s.CmdBufLabelCount, false)
	printArray(p, "pCmdBufLabels", s.CmdBufLabelCount, s.CmdBufLabels, printDebugUtilsLabelEXT, false)
	p.Uint32("objectCount", s.ObjectCount, false)
	printArray(p, "pObjects", s.ObjectCount, s.Objects, printDebugUtilsObjectNameInfoEXT, true)
	p.closeObject()
}

func printValidationFeaturesEXT(p *Printer, s *ValidationFeaturesEXT) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Uint32("enabledValidationFeatureCount", s.EnabledValidationFeatureCount, false)
	printArray(p, "pEnabledValidationFeatures", s.EnabledValidationFeatureCount, s.EnabledValidationFeatures, stringerValue[ValidationFeatureEnableEXT], false)
	p.Uint32("disabledValidationFeatureCount", s.DisabledValidationFeatureCount, false)
	printArray(p, "pDisabledValidationFeatures", s.DisabledValidationFeatureCount, s.DisabledValidationFeatures, stringerValue[ValidationFeatureDisableEXT], true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CREATE_INFO_EXT, printDebugUtilsMessengerCreateInfoEXT)
	Register(defaultRegistry, STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT, printDebugUtilsLabelEXT)
	Register(defaultRegistry, STRUCTURE_TYPE_DEBUG_UTILS_OBJECT_NAME_INFO_EXT, printDebugUtilsObjectNameInfoEXT)
	Register(defaultRegistry, STRUCTURE_TYPE_DEBUG_UTILS_MESSENGER_CALLBACK_DATA_EXT, printDebugUtilsMessengerCallbackDataEXT)
	Register(defaultRegistry, STRUCTURE_TYPE_VALIDATION_FEATURES_EXT, printValidationFeaturesEXT)
}
