package vkdump

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestMarshalFlatStructure(t *testing.T) {
	got := mustMarshal(t, &MemoryAllocateInfo{AllocationSize: 1024, MemoryTypeIndex: 2})
	want := `{
    "sType": "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO",
    "pNext": "NULL",
    "allocationSize": 1024,
    "memoryTypeIndex": 2
}
`
	checkOutput(t, got, want)
}

func TestMarshalArrayShorterThanCount(t *testing.T) {
	info := &BufferCreateInfo{
		Size:                  256,
		Usage:                 BUFFER_USAGE_TRANSFER_SRC_BIT,
		SharingMode:           SHARING_MODE_CONCURRENT,
		QueueFamilyIndexCount: 3,
		QueueFamilyIndices:    []uint32{0, 2},
	}
	want := `{
  "sType": "VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO",
  "pNext": "NULL",
  "flags": "0",
  "size": 256,
  "usage": "VK_BUFFER_USAGE_TRANSFER_SRC_BIT",
  "sharingMode": "VK_SHARING_MODE_CONCURRENT",
  "queueFamilyIndexCount": 3,
  "pQueueFamilyIndices": [
    0,
    2,
    "<1 elements missing>"
  ]
}
`
	checkOutput(t, mustMarshal(t, info, WithIndent(2)), want)
}

func TestMarshalArrayLimit(t *testing.T) {
	info := &BufferCreateInfo{
		QueueFamilyIndexCount: 3,
		QueueFamilyIndices:    []uint32{5, 6},
	}
	got := mustMarshal(t, info, WithIndent(2), WithMaxArrayElements(1))
	want := `  "pQueueFamilyIndices": [
    5,
    "<1 elements truncated>",
    "<1 elements missing>"
  ]
`
	if !bytes.Contains(got, []byte(want)) {
		t.Errorf("missing truncated array in:\n%s", got)
	}
	checkJSON(t, got)
}

func TestMarshalEmptyAndNullArrays(t *testing.T) {
	tests := []struct {
		name    string
		count   uint32
		indices []uint32
		want    string
	}{
		{"nil slice", 0, nil, `"pQueueFamilyIndices": "NULL"`},
		{"nil slice with count", 2, nil, `"pQueueFamilyIndices": "NULL"`},
		{"empty slice", 0, []uint32{}, `"pQueueFamilyIndices": []`},
		// count wins over what the slice holds
		{"zero count", 0, []uint32{1, 2}, `"pQueueFamilyIndices": []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustMarshal(t, &BufferCreateInfo{QueueFamilyIndexCount: tt.count, QueueFamilyIndices: tt.indices})
			if !bytes.Contains(got, []byte(tt.want)) {
				t.Errorf("want %s in:\n%s", tt.want, got)
			}
		})
	}
}

func TestMarshalFloats(t *testing.T) {
	label := &DebugUtilsLabelEXT{
		LabelName: "frame",
		Color:     [4]float32{1, 0.5, float32(math.NaN()), -0.25},
	}
	want := `{
  "sType": "VK_STRUCTURE_TYPE_DEBUG_UTILS_LABEL_EXT",
  "pNext": "NULL",
  "pLabelName": "frame",
  "color": [
    1,
    0.5,
    "NaN",
    -0.25
  ]
}
`
	checkOutput(t, mustMarshal(t, label, WithIndent(2)), want)
}

func TestMarshalBlob(t *testing.T) {
	info := &ShaderModuleCreateInfo{
		CodeSize: 4,
		Code:     []byte{0x03, 0x02, 0x23, 0x07, 0xff},
	}
	want := `{
  "sType": "VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO",
  "pNext": "NULL",
  "flags": "0",
  "codeSize": 4,
  "pCode": "AwIjBw=="
}
`
	checkOutput(t, mustMarshal(t, info, WithIndent(2)), want)

	got := mustMarshal(t, &ShaderModuleCreateInfo{}, WithIndent(2))
	if !bytes.Contains(got, []byte(`"pCode": "NULL"`)) {
		t.Errorf("nil code not NULL:\n%s", got)
	}
}

func TestMarshalHandlePolicies(t *testing.T) {
	info := &MemoryDedicatedAllocateInfo{Image: Image(0xabc)}

	redacted := mustMarshal(t, info)
	for _, want := range []string{`"image": ""`, `"buffer": ""`} {
		if !bytes.Contains(redacted, []byte(want)) {
			t.Errorf("redacted output lacks %s:\n%s", want, redacted)
		}
	}

	addr := mustMarshal(t, info, WithHandlePolicy(HandleAddress))
	for _, want := range []string{`"image": "0x0000000000000abc"`, `"buffer": "0x0000000000000000"`} {
		if !bytes.Contains(addr, []byte(want)) {
			t.Errorf("address output lacks %s:\n%s", want, addr)
		}
	}
}

func TestFieldPrinters(t *testing.T) {
	p := NewPrinter(WithIndent(0), WithHandlePolicy(HandleAddress))
	p.Bool32("t", TRUE, false)
	p.Bool32("f", FALSE, false)
	p.Bool32("odd", Bool32(7), false)
	p.Int32("neg", -5, false)
	p.Uint64("max", math.MaxUint64, false)
	p.Int64("min", math.MinInt64, false)
	p.DeviceSize("whole", WHOLE_SIZE, false)
	p.Float32("big", math.MaxFloat32, false)
	p.Float64("inf", math.Inf(-1), false)
	p.String("quoted", "a\"b\n", false)
	p.String("empty", "", false)
	p.CString("null", "", false)
	p.Opaque("nilptr", 0, false)
	p.Opaque("ptr", 0x10, false)
	p.RawHandle("raw", 0xdead, false)
	p.Enum("layout", IMAGE_LAYOUT_GENERAL, true)

	want := `"t": true,
"f": false,
"odd": 7,
"neg": -5,
"max": 18446744073709551615,
"min": -9223372036854775808,
"whole": 18446744073709551615,
"big": 3.4028235e+38,
"inf": "-Inf",
"quoted": "a\"b\n",
"empty": "",
"null": "NULL",
"nilptr": "NULL",
"ptr": "0x0000000000000010",
"raw": "0x000000000000dead",
"layout": "VK_IMAGE_LAYOUT_GENERAL"
`
	checkOutput(t, p.Bytes(), want)
	if p.Err() != nil {
		t.Errorf("Err = %v", p.Err())
	}
}

func TestPrinterReset(t *testing.T) {
	p := NewPrinter()
	if err := p.Structure(&RawStructure{Type: StructureType(1000999999)}); err == nil {
		t.Fatal("expected error for unregistered root")
	}
	// errors are sticky until Reset
	if err := p.Structure(&MemoryAllocateInfo{}); err == nil {
		t.Fatal("error was not sticky")
	}
	p.Reset()
	if err := p.Structure(&MemoryAllocateInfo{AllocationSize: 1}); err != nil {
		t.Fatalf("after Reset: %v", err)
	}
	if !strings.HasPrefix(string(p.Bytes()), "{\n") {
		t.Errorf("stale output after Reset:\n%s", p.Bytes())
	}
}

func TestPrinterSequentialDocuments(t *testing.T) {
	p := NewPrinter(WithIndent(1))
	for i := 0; i < 2; i++ {
		if err := p.Structure(&MemoryAllocateInfo{MemoryTypeIndex: uint32(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if n := bytes.Count(p.Bytes(), []byte("\n}\n")); n != 2 {
		t.Errorf("got %d documents, want 2:\n%s", n, p.Bytes())
	}
}

func TestDumpWritesOnlyOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	bad := &MemoryAllocateInfo{Next: &RawStructure{Type: StructureType(1000999999)}}
	if err := Dump(&buf, bad); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written:\n%s", buf.String())
	}

	if err := Dump(&buf, &MemoryAllocateInfo{}); err != nil {
		t.Fatal(err)
	}
	checkJSON(t, buf.Bytes())
}

func TestStringEscapingStaysValid(t *testing.T) {
	app := &ApplicationInfo{
		ApplicationName: "tab\there \"quoted\" \\ back",
		EngineName:      "ünïcødé",
	}
	out := mustMarshal(t, app)
	v := checkJSON(t, out).(map[string]any)
	if got := v["pApplicationName"]; got != app.ApplicationName {
		t.Errorf("pApplicationName round-tripped as %q", got)
	}
	if got := v["pEngineName"]; got != app.EngineName {
		t.Errorf("pEngineName round-tripped as %q", got)
	}
}

func TestMarshalBlobShorterThanSize(t *testing.T) {
	info := &PipelineCacheCreateInfo{
		InitialDataSize: 7,
		InitialData:     []byte{0x03, 0x02, 0x23, 0x07},
	}
	want := `{
  "sType": "VK_STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO",
  "pNext": "NULL",
  "flags": "0",
  "initialDataSize": 7,
  "pInitialData": "AwIjBw==",
  "<pInitialData>": "<3 bytes missing>"
}
`
	checkOutput(t, mustMarshal(t, info, WithIndent(2)), want)

	exact := mustMarshal(t, &PipelineCacheCreateInfo{InitialDataSize: 4, InitialData: info.InitialData})
	if bytes.Contains(exact, []byte("missing")) {
		t.Errorf("marker printed for a complete blob:\n%s", exact)
	}
}
