// instance.go
package vkdump

func MakeApiVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

func ApiVersionVariant(version uint32) uint32 { return version >> 29 }
func ApiVersionMajor(version uint32) uint32   { return (version >> 22) & 0x7F }
func ApiVersionMinor(version uint32) uint32   { return (version >> 12) & 0x3FF }
func ApiVersionPatch(version uint32) uint32   { return version & 0xFFF }

var (
	ApiVersion_1_0 = MakeApiVersion(0, 1, 0, 0)
	ApiVersion_1_1 = MakeApiVersion(0, 1, 1, 0)
	ApiVersion_1_2 = MakeApiVersion(0, 1, 2, 0)
	ApiVersion_1_3 = MakeApiVersion(0, 1, 3, 0)
	ApiVersion_1_4 = MakeApiVersion(0, 1, 4, 0)
)

type InstanceCreateFlags uint32

const INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR InstanceCreateFlags = 0x00000001

var instanceCreateBits = NewFlagTable("VkInstanceCreateFlagBits",
	Symbol[InstanceCreateFlags]{INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR, "VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR"},
)

func (f InstanceCreateFlags) String() string { return instanceCreateBits.Render(f) }

// ApplicationInfo strings follow the char* convention: "" is NULL.
type ApplicationInfo struct {
	Next               Structure
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	ApiVersion         uint32
}

func (*ApplicationInfo) StructureType() StructureType { return STRUCTURE_TYPE_APPLICATION_INFO }

type InstanceCreateInfo struct {
	Next                  Structure
	Flags                 InstanceCreateFlags
	ApplicationInfo       *ApplicationInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     []string
	EnabledExtensionCount uint32
	EnabledExtensionNames []string
}

func (*InstanceCreateInfo) StructureType() StructureType { return STRUCTURE_TYPE_INSTANCE_CREATE_INFO }

func printApplicationInfo(p *Printer, s *ApplicationInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.CString("pApplicationName", s.ApplicationName, false)
	p.Uint32("applicationVersion", s.ApplicationVersion, false)
	p.CString("pEngineName", s.EngineName, false)
	p.Uint32("engineVersion", s.EngineVersion, false)
	p.Uint32("apiVersion", s.ApiVersion, true)
	p.closeObject()
}

func printInstanceCreateInfo(p *Printer, s *InstanceCreateInfo) {
	p.openObject()
	p.SType(s.StructureType(), false)
	p.Next(s.Next, false)
	p.Flags("flags", s.Flags, false)
	printPointer(p, "pApplicationInfo", s.ApplicationInfo, printApplicationInfo, false)
	p.Uint32("enabledLayerCount", s.EnabledLayerCount, false)
	printArray(p, "ppEnabledLayerNames", s.EnabledLayerCount, s.EnabledLayerNames, (*Printer).cstringValue, false)
	p.Uint32("enabledExtensionCount", s.EnabledExtensionCount, false)
	printArray(p, "ppEnabledExtensionNames", s.EnabledExtensionCount, s.EnabledExtensionNames, (*Printer).cstringValue, true)
	p.closeObject()
}

func init() {
	Register(defaultRegistry, STRUCTURE_TYPE_APPLICATION_INFO, printApplicationInfo)
	Register(defaultRegistry, STRUCTURE_TYPE_INSTANCE_CREATE_INFO, printInstanceCreateInfo)
}
