package vkdump

type Result int32

const (
	SUCCESS                                  Result = 0
	NOT_READY                                Result = 1
	TIMEOUT                                  Result = 2
	EVENT_SET                                Result = 3
	EVENT_RESET                              Result = 4
	INCOMPLETE                               Result = 5
	OUT_OF_HOST_MEMORY                       Result = -1
	OUT_OF_DEVICE_MEMORY                     Result = -2
	INITIALIZATION_FAILED                    Result = -3
	DEVICE_LOST                              Result = -4
	MEMORY_MAP_FAILED                        Result = -5
	LAYER_NOT_PRESENT                        Result = -6
	EXTENSION_NOT_PRESENT                    Result = -7
	FEATURE_NOT_PRESENT                      Result = -8
	INCOMPATIBLE_DRIVER                      Result = -9
	TOO_MANY_OBJECTS                         Result = -10
	FORMAT_NOT_SUPPORTED                     Result = -11
	FRAGMENTED_POOL                          Result = -12
	UNKNOWN                                  Result = -13
	OUT_OF_POOL_MEMORY                       Result = -1000069000
	INVALID_EXTERNAL_HANDLE                  Result = -1000072003
	FRAGMENTATION                            Result = -1000161000
	INVALID_OPAQUE_CAPTURE_ADDRESS           Result = -1000257000
	PIPELINE_COMPILE_REQUIRED                Result = 1000297000
	NOT_PERMITTED                            Result = -1000174001
	SURFACE_LOST                             Result = -1000000000
	NATIVE_WINDOW_IN_USE                     Result = -1000000001
	SUBOPTIMAL                               Result = 1000001003
	OUT_OF_DATE                              Result = -1000001004
	INCOMPATIBLE_DISPLAY                     Result = -1000003001
	VALIDATION_FAILED                        Result = -1000011001
	INVALID_SHADER                           Result = -1000012000
	IMAGE_USAGE_NOT_SUPPORTED                Result = -1000023000
	INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT Result = -1000158000
	FULL_SCREEN_EXCLUSIVE_MODE_LOST          Result = -1000255000
	THREAD_IDLE                              Result = 1000268000
	THREAD_DONE                              Result = 1000268001
	OPERATION_DEFERRED                       Result = 1000268002
	OPERATION_NOT_DEFERRED                   Result = 1000268003
	COMPRESSION_EXHAUSTED                    Result = -1000338000
)

var resultNames = NewSymbolTable("VkResult",
	Symbol[Result]{SUCCESS, "VK_SUCCESS"},
	Symbol[Result]{NOT_READY, "VK_NOT_READY"},
	Symbol[Result]{TIMEOUT, "VK_TIMEOUT"},
	Symbol[Result]{EVENT_SET, "VK_EVENT_SET"},
	Symbol[Result]{EVENT_RESET, "VK_EVENT_RESET"},
	Symbol[Result]{INCOMPLETE, "VK_INCOMPLETE"},
	Symbol[Result]{OUT_OF_HOST_MEMORY, "VK_ERROR_OUT_OF_HOST_MEMORY"},
	Symbol[Result]{OUT_OF_DEVICE_MEMORY, "VK_ERROR_OUT_OF_DEVICE_MEMORY"},
	Symbol[Result]{INITIALIZATION_FAILED, "VK_ERROR_INITIALIZATION_FAILED"},
	Symbol[Result]{DEVICE_LOST, "VK_ERROR_DEVICE_LOST"},
	Symbol[Result]{MEMORY_MAP_FAILED, "VK_ERROR_MEMORY_MAP_FAILED"},
	Symbol[Result]{LAYER_NOT_PRESENT, "VK_ERROR_LAYER_NOT_PRESENT"},
	Symbol[Result]{EXTENSION_NOT_PRESENT, "VK_ERROR_EXTENSION_NOT_PRESENT"},
	Symbol[Result]{FEATURE_NOT_PRESENT, "VK_ERROR_FEATURE_NOT_PRESENT"},
	Symbol[Result]{INCOMPATIBLE_DRIVER, "VK_ERROR_INCOMPATIBLE_DRIVER"},
	Symbol[Result]{TOO_MANY_OBJECTS, "VK_ERROR_TOO_MANY_OBJECTS"},
	Symbol[Result]{FORMAT_NOT_SUPPORTED, "VK_ERROR_FORMAT_NOT_SUPPORTED"},
	Symbol[Result]{FRAGMENTED_POOL, "VK_ERROR_FRAGMENTED_POOL"},
	Symbol[Result]{UNKNOWN, "VK_ERROR_UNKNOWN"},
	Symbol[Result]{OUT_OF_POOL_MEMORY, "VK_ERROR_OUT_OF_POOL_MEMORY"},
	Symbol[Result]{OUT_OF_POOL_MEMORY, "VK_ERROR_OUT_OF_POOL_MEMORY_KHR"},
	Symbol[Result]{INVALID_EXTERNAL_HANDLE, "VK_ERROR_INVALID_EXTERNAL_HANDLE"},
	Symbol[Result]{INVALID_EXTERNAL_HANDLE, "VK_ERROR_INVALID_EXTERNAL_HANDLE_KHR"},
	Symbol[Result]{FRAGMENTATION, "VK_ERROR_FRAGMENTATION"},
	Symbol[Result]{FRAGMENTATION, "VK_ERROR_FRAGMENTATION_EXT"},
	Symbol[Result]{INVALID_OPAQUE_CAPTURE_ADDRESS, "VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS"},
	Symbol[Result]{INVALID_OPAQUE_CAPTURE_ADDRESS, "VK_ERROR_INVALID_DEVICE_ADDRESS_EXT"},
	Symbol[Result]{PIPELINE_COMPILE_REQUIRED, "VK_PIPELINE_COMPILE_REQUIRED"},
	Symbol[Result]{PIPELINE_COMPILE_REQUIRED, "VK_PIPELINE_COMPILE_REQUIRED_EXT"},
	Symbol[Result]{NOT_PERMITTED, "VK_ERROR_NOT_PERMITTED"},
	Symbol[Result]{NOT_PERMITTED, "VK_ERROR_NOT_PERMITTED_KHR"},
	Symbol[Result]{SURFACE_LOST, "VK_ERROR_SURFACE_LOST_KHR"},
	Symbol[Result]{NATIVE_WINDOW_IN_USE, "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"},
	Symbol[Result]{SUBOPTIMAL, "VK_SUBOPTIMAL_KHR"},
	Symbol[Result]{OUT_OF_DATE, "VK_ERROR_OUT_OF_DATE_KHR"},
	Symbol[Result]{INCOMPATIBLE_DISPLAY, "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR"},
	Symbol[Result]{VALIDATION_FAILED, "VK_ERROR_VALIDATION_FAILED_EXT"},
	Symbol[Result]{INVALID_SHADER, "VK_ERROR_INVALID_SHADER_NV"},
	Symbol[Result]{IMAGE_USAGE_NOT_SUPPORTED, "VK_ERROR_IMAGE_USAGE_NOT_SUPPORTED_KHR"},
	Symbol[Result]{INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT, "VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT"},
	Symbol[Result]{FULL_SCREEN_EXCLUSIVE_MODE_LOST, "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT"},
	Symbol[Result]{THREAD_IDLE, "VK_THREAD_IDLE_KHR"},
	Symbol[Result]{THREAD_DONE, "VK_THREAD_DONE_KHR"},
	Symbol[Result]{OPERATION_DEFERRED, "VK_OPERATION_DEFERRED_KHR"},
	Symbol[Result]{OPERATION_NOT_DEFERRED, "VK_OPERATION_NOT_DEFERRED_KHR"},
	Symbol[Result]{COMPRESSION_EXHAUSTED, "VK_ERROR_COMPRESSION_EXHAUSTED_EXT"},
)

func (r Result) String() string {
	return resultNames.String(r)
}

// Error lets a failing Result travel as a Go error.
func (r Result) Error() string {
	return r.String()
}

// DeviceSize mirrors VkDeviceSize.
type DeviceSize uint64

// DeviceAddress mirrors VkDeviceAddress.
type DeviceAddress uint64

// Bool32 mirrors VkBool32. Any nonzero value is true.
type Bool32 uint32

const (
	FALSE Bool32 = 0
	TRUE  Bool32 = 1
)

func BoolToBool32(b bool) Bool32 {
	if b {
		return TRUE
	}
	return FALSE
}

// Well-known special values used by several structures.
const (
	QUEUE_FAMILY_IGNORED   uint32     = ^uint32(0)
	REMAINING_MIP_LEVELS   uint32     = ^uint32(0)
	REMAINING_ARRAY_LAYERS uint32     = ^uint32(0)
	WHOLE_SIZE             DeviceSize = ^DeviceSize(0)
)
