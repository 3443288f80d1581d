package vkdump

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

const unknownTag = StructureType(1000999999)

func TestUnknownExtensionFails(t *testing.T) {
	info := &MemoryAllocateInfo{Next: &RawStructure{Type: unknownTag}}
	_, err := Marshal(info)
	if !errors.Is(err, ErrUnrecognizedExtensionTag) {
		t.Fatalf("err = %v, want ErrUnrecognizedExtensionTag", err)
	}
	var tagErr *UnrecognizedExtensionTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("err %T is not *UnrecognizedExtensionTagError", err)
	}
	if tagErr.Tag != unknownTag || tagErr.Path != "$.pNext" {
		t.Errorf("got tag %d at %q", tagErr.Tag, tagErr.Path)
	}
}

func TestUnknownExtensionPlaceholder(t *testing.T) {
	info := &MemoryAllocateInfo{
		Next: &RawStructure{
			Type: unknownTag,
			Next: &MemoryAllocateFlagsInfo{DeviceMask: 1},
		},
	}
	want := `{
  "sType": "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO",
  "pNext": {
    "<unknown extension tag 1000999999>": true,
    "pNext": {
      "sType": "VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO",
      "pNext": "NULL",
      "flags": "0",
      "deviceMask": 1
    }
  },
  "allocationSize": 0,
  "memoryTypeIndex": 0
}
`
	got := mustMarshal(t, info, WithIndent(2), WithUnknownExtensionPolicy(UnknownExtensionPlaceholder))
	checkOutput(t, got, want)
	checkJSON(t, got)
}

func TestUnregisteredKnownStructure(t *testing.T) {
	r := DefaultRegistry().Clone()
	r.Unregister(STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO)

	info := &MemoryAllocateInfo{Next: &MemoryAllocateFlagsInfo{DeviceMask: 3}}
	got := mustMarshal(t, info, WithIndent(2), WithRegistry(r),
		WithUnknownExtensionPolicy(UnknownExtensionPlaceholder))
	want := `  "pNext": {
    "<unknown extension tag 1000060000>": true
  },
`
	if !bytes.Contains(got, []byte(want)) {
		t.Errorf("placeholder missing:\n%s", got)
	}

	if _, err := Marshal(info, WithRegistry(r)); !errors.Is(err, ErrUnrecognizedExtensionTag) {
		t.Errorf("fail policy: err = %v", err)
	}
	if !DefaultRegistry().Has(STRUCTURE_TYPE_MEMORY_ALLOCATE_FLAGS_INFO) {
		t.Error("Unregister on a clone touched the default registry")
	}
}

func TestChainCycle(t *testing.T) {
	a := &MemoryAllocateInfo{}
	b := &MemoryAllocateFlagsInfo{Next: a}
	a.Next = b

	_, err := Marshal(a)
	if !errors.Is(err, ErrExtensionCycle) {
		t.Fatalf("err = %v, want ErrExtensionCycle", err)
	}
	if !strings.Contains(err.Error(), "$.pNext.pNext") {
		t.Errorf("error does not name the path: %v", err)
	}

	self := &MemoryAllocateFlagsInfo{}
	self.Next = self
	if _, err := Marshal(self); !errors.Is(err, ErrExtensionCycle) {
		t.Errorf("self link: err = %v", err)
	}
}

func TestMaxDepth(t *testing.T) {
	info := &MemoryAllocateInfo{
		Next: &MemoryAllocateFlagsInfo{
			Next: &MemoryDedicatedAllocateInfo{},
		},
	}
	if _, err := Marshal(info, WithMaxDepth(2)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("depth 2: err = %v, want ErrDepthExceeded", err)
	}
	if _, err := Marshal(info, WithMaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
}

func TestMaxDepthBoundsChainLength(t *testing.T) {
	const links = 70
	root := &MemoryAllocateInfo{}
	var tail Structure
	for i := 0; i < links; i++ {
		tail = &MemoryDedicatedAllocateInfo{Next: tail, Buffer: Buffer(i + 1)}
	}
	root.Next = tail

	if _, err := Marshal(root); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("default depth: err = %v, want ErrDepthExceeded", err)
	}
	if _, err := Marshal(root, WithMaxDepth(links)); !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("depth %d: err = %v, want ErrDepthExceeded", links, err)
	}
	out, err := Marshal(root, WithMaxDepth(links+1))
	if err != nil {
		t.Fatalf("depth %d: %v", links+1, err)
	}
	if n := bytes.Count(out, []byte("VK_STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO")); n != links {
		t.Errorf("printed %d chain links, want %d", n, links)
	}
	checkJSON(t, out)
}

func TestTypedNilNext(t *testing.T) {
	withNil := mustMarshal(t, &MemoryAllocateInfo{Next: (*MemoryAllocateFlagsInfo)(nil)})
	plain := mustMarshal(t, &MemoryAllocateInfo{})
	checkOutput(t, withNil, string(plain))

	if _, err := Marshal((*MemoryAllocateInfo)(nil)); err != nil {
		t.Errorf("nil root: %v", err)
	}
}

func TestStructureMismatch(t *testing.T) {
	r := NewRegistry()
	Register(r, STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO, printMemoryAllocateFlagsInfo)

	_, err := Marshal(&MemoryAllocateInfo{}, WithRegistry(r))
	if !errors.Is(err, ErrStructureMismatch) {
		t.Fatalf("err = %v, want ErrStructureMismatch", err)
	}
	goType, ok := r.GoType(STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO)
	if !ok || goType != "*vkdump.MemoryAllocateFlagsInfo" {
		t.Errorf("GoType = %q, %v", goType, ok)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	Register(r, STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO, printMemoryAllocateInfo)
	Register(r, STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO, func(p *Printer, s *MemoryAllocateInfo) {
		p.openObject()
		p.Uint32("memoryTypeIndex", s.MemoryTypeIndex, true)
		p.closeObject()
	})
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	got := mustMarshal(t, &MemoryAllocateInfo{MemoryTypeIndex: 9}, WithRegistry(r), WithIndent(1))
	checkOutput(t, got, "{\n \"memoryTypeIndex\": 9\n}\n")
}

func TestRegistryTags(t *testing.T) {
	tags := DefaultRegistry().Tags()
	if len(tags) != DefaultRegistry().Len() {
		t.Fatalf("Tags has %d entries, Len is %d", len(tags), DefaultRegistry().Len())
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Fatalf("tags not ascending at %d: %d then %d", i, tags[i-1], tags[i])
		}
	}
	// Every printable structure must also have a name for its sType line.
	for _, tag := range tags {
		if _, ok := structureTypeNames.Name(tag); !ok {
			t.Errorf("registered tag %d has no VkStructureType name", tag)
		}
	}
}

func TestRegisteredStructuresPrint(t *testing.T) {
	// Zero values exercise every registered printer's NULL and empty paths.
	for _, s := range zeroStructures() {
		out, err := Marshal(s)
		if err != nil {
			t.Errorf("%T: %v", s, err)
			continue
		}
		v, ok := checkJSON(t, out).(map[string]any)
		if !ok {
			t.Errorf("%T: output is not an object", s)
			continue
		}
		if got, want := v["sType"], s.StructureType().String(); got != want {
			t.Errorf("%T: sType = %v, want %s", s, got, want)
		}
	}
}

func TestConcurrentPrinters(t *testing.T) {
	info := &ImageCreateInfo{
		Next:      &ImageFormatListCreateInfo{ViewFormatCount: 2, ViewFormats: []Format{FORMAT_R8G8B8A8_UNORM, FORMAT_R8G8B8A8_SRGB}},
		ImageType: IMAGE_TYPE_2D,
		Format:    FORMAT_R8G8B8A8_UNORM,
		Extent:    Extent3D{Width: 64, Height: 64, Depth: 1},
	}
	want := mustMarshal(t, info)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Marshal(info)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, want) {
				errs <- errors.New("output differs between goroutines")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
