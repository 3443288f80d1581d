package vkdump

import (
	"bytes"
	"errors"
	"testing"
)

func TestCallWithResult(t *testing.T) {
	handle := Buffer(0x20)
	call := NewCall("vkCreateBuffer",
		Arg{Name: "device", Value: Device(0x10)},
		Arg{Name: "pCreateInfo", Value: &BufferCreateInfo{Size: 64, Usage: BUFFER_USAGE_TRANSFER_SRC_BIT}},
		Arg{Name: "pAllocator", Value: nil},
		Arg{Name: "pBuffer", Value: &handle},
	).Returning(SUCCESS)

	want := `{
  "function": "vkCreateBuffer",
  "args": {
    "device": "",
    "pCreateInfo": {
      "sType": "VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO",
      "pNext": "NULL",
      "flags": "0",
      "size": 64,
      "usage": "VK_BUFFER_USAGE_TRANSFER_SRC_BIT",
      "sharingMode": "VK_SHARING_MODE_EXCLUSIVE",
      "queueFamilyIndexCount": 0,
      "pQueueFamilyIndices": "NULL"
    },
    "pAllocator": "NULL",
    "pBuffer": ""
  },
  "result": "VK_SUCCESS"
}
`
	got, err := MarshalCall(call, WithIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	checkOutput(t, got, want)
}

func TestCallValueArrays(t *testing.T) {
	call := NewCall("vkCmdSetViewport",
		Arg{Name: "commandBuffer", Value: CommandBuffer(1)},
		Arg{Name: "firstViewport", Value: uint32(0)},
		Arg{Name: "viewportCount", Value: uint32(1)},
		Arg{Name: "pViewports", Value: []Viewport{{Width: 640, Height: 480, MaxDepth: 1}}},
	)
	want := `{
  "function": "vkCmdSetViewport",
  "args": {
    "commandBuffer": "",
    "firstViewport": 0,
    "viewportCount": 1,
    "pViewports": [
      {
        "x": 0,
        "y": 0,
        "width": 640,
        "height": 480,
        "minDepth": 0,
        "maxDepth": 1
      }
    ]
  }
}
`
	got, err := MarshalCall(call, WithIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	checkOutput(t, got, want)
}

func TestCallScalarArgs(t *testing.T) {
	extent := Extent2D{Width: 8, Height: 4}
	var nilSemaphore *Semaphore
	call := NewCall("vkExample",
		Arg{Name: "count", Value: 3},
		Arg{Name: "offset", Value: int64(-2)},
		Arg{Name: "size", Value: WHOLE_SIZE},
		Arg{Name: "scale", Value: float32(0.5)},
		Arg{Name: "enable", Value: true},
		Arg{Name: "label", Value: "main"},
		Arg{Name: "data", Value: []byte("hi")},
		Arg{Name: "layout", Value: IMAGE_LAYOUT_GENERAL},
		Arg{Name: "usage", Value: BUFFER_USAGE_TRANSFER_SRC_BIT | BUFFER_USAGE_TRANSFER_DST_BIT},
		Arg{Name: "pExtent", Value: &extent},
		Arg{Name: "pSemaphore", Value: nilSemaphore},
		Arg{Name: "indices", Value: []uint32{}},
	)
	want := `{
"function": "vkExample",
"args": {
"count": 3,
"offset": -2,
"size": 18446744073709551615,
"scale": 0.5,
"enable": true,
"label": "main",
"data": "aGk=",
"layout": "VK_IMAGE_LAYOUT_GENERAL",
"usage": "VK_BUFFER_USAGE_TRANSFER_SRC_BIT | VK_BUFFER_USAGE_TRANSFER_DST_BIT",
"pExtent": {
"width": 8,
"height": 4
},
"pSemaphore": "NULL",
"indices": []
}
}
`
	got, err := MarshalCall(call, WithIndent(0))
	if err != nil {
		t.Fatal(err)
	}
	checkOutput(t, got, want)
}

func TestCallStructureByValue(t *testing.T) {
	byValue := NewCall("vkExample", Arg{Name: "info", Value: MemoryAllocateInfo{MemoryTypeIndex: 4}})
	byPointer := NewCall("vkExample", Arg{Name: "info", Value: &MemoryAllocateInfo{MemoryTypeIndex: 4}})
	a, err := MarshalCall(byValue)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalCall(byPointer)
	if err != nil {
		t.Fatal(err)
	}
	checkOutput(t, a, string(b))
}

func TestCallSharedArgument(t *testing.T) {
	// The same structure reached twice is not a cycle.
	info := &MemoryAllocateInfo{AllocationSize: 16}
	call := NewCall("vkExample",
		Arg{Name: "first", Value: info},
		Arg{Name: "second", Value: info},
	)
	got, err := MarshalCall(call)
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(got, []byte(`"allocationSize": 16`)); n != 2 {
		t.Errorf("structure printed %d times, want 2", n)
	}
	checkJSON(t, got)
}

func TestCallNoArgs(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpCall(&buf, NewCall("vkDeviceWaitIdle").Returning(DEVICE_LOST), WithIndent(1)); err != nil {
		t.Fatal(err)
	}
	want := "{\n \"function\": \"vkDeviceWaitIdle\",\n \"args\": {},\n \"result\": \"VK_ERROR_DEVICE_LOST\"\n}\n"
	checkOutput(t, buf.Bytes(), want)
}

func TestCallUnsupportedArgument(t *testing.T) {
	var buf bytes.Buffer
	call := NewCall("vkExample", Arg{Name: "weird", Value: map[string]int{"a": 1}})
	err := DumpCall(&buf, call)
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("err = %v, want ErrUnsupportedValue", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written on failure:\n%s", buf.String())
	}
}

func TestCallPropagatesChainErrors(t *testing.T) {
	call := NewCall("vkAllocateMemory",
		Arg{Name: "pAllocateInfo", Value: &MemoryAllocateInfo{Next: &RawStructure{Type: unknownTag}}},
	)
	_, err := MarshalCall(call)
	var tagErr *UnrecognizedExtensionTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("err = %v", err)
	}
	if tagErr.Path != "$.pAllocateInfo.pNext" {
		t.Errorf("path = %q", tagErr.Path)
	}
}

func TestCallUnions(t *testing.T) {
	cv := ClearColor(ClearColorFloat32(1, 0, 0, 1))
	call := NewCall("vkCmdClearColorImage", Arg{Name: "pColor", Value: &cv})
	got, err := MarshalCall(call)
	if err != nil {
		t.Fatal(err)
	}
	v := checkJSON(t, got).(map[string]any)
	color := v["args"].(map[string]any)["pColor"].(map[string]any)["color"].(map[string]any)
	f := color["float32"].([]any)
	if len(f) != 4 || f[0] != float64(1) || f[3] != float64(1) {
		t.Errorf("float32 view = %v", f)
	}
	if u := color["uint32"].([]any); u[0] != float64(0x3f800000) {
		t.Errorf("uint32 view = %v", u)
	}
}

func TestCallEscapesArgumentNames(t *testing.T) {
	call := NewCall("vkExample",
		Arg{Name: `a"b`, Value: uint32(1)},
		Arg{Name: `c\d`, Value: "x"},
		Arg{Name: "tab\there", Value: true},
	)
	got, err := MarshalCall(call, WithIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	args := checkJSON(t, got).(map[string]any)["args"].(map[string]any)
	if args[`a"b`] != float64(1) {
		t.Errorf(`args["a\"b"] = %v`, args[`a"b`])
	}
	if args[`c\d`] != "x" {
		t.Errorf(`args["c\\d"] = %v`, args[`c\d`])
	}
	if args["tab\there"] != true {
		t.Errorf(`args["tab\there"] = %v`, args["tab\there"])
	}
	if !bytes.Contains(got, []byte(`    "a\"b": 1,`)) {
		t.Errorf("quote not escaped:\n%s", got)
	}
}

func TestCallNil(t *testing.T) {
	if _, err := MarshalCall(nil); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("MarshalCall(nil): err = %v, want ErrUnsupportedValue", err)
	}

	var buf bytes.Buffer
	if err := DumpCall(&buf, nil); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("DumpCall(nil): err = %v, want ErrUnsupportedValue", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written for nil call:\n%s", buf.String())
	}

	p := NewPrinter()
	if err := p.Call(nil); err == nil {
		t.Fatal("Printer.Call(nil) succeeded")
	}
	if p.Err() == nil {
		t.Error("error not kept by the printer")
	}
}
