package capture

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sugawarayuuta/sonnet"

	"github.com/NOT-REAL-GAMES/vkdump"
)

func TestStreamSinkConcurrentWriters(t *testing.T) {
	var out bytes.Buffer
	sink := NewStreamSink(&out)
	calls := testCalls(32)

	var wg sync.WaitGroup
	for _, c := range calls {
		c := c
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sink.WriteCall(c); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	docs := strings.SplitAfter(out.String(), "\n}\n")
	if last := docs[len(docs)-1]; last != "" {
		t.Fatalf("trailing partial document: %q", last)
	}
	docs = docs[:len(docs)-1]
	if len(docs) != len(calls) {
		t.Fatalf("got %d documents, want %d", len(docs), len(calls))
	}
	seen := make(map[string]bool)
	for _, doc := range docs {
		var v struct {
			Function string `json:"function"`
		}
		if err := sonnet.Unmarshal([]byte(doc), &v); err != nil {
			t.Fatalf("interleaved output: %v\n%s", err, doc)
		}
		seen[v.Function] = true
	}
	if len(seen) != len(calls) {
		t.Errorf("saw %d distinct calls, want %d", len(seen), len(calls))
	}
}

func TestStreamSinkWriteStructure(t *testing.T) {
	var out bytes.Buffer
	sink := NewStreamSink(&out, vkdump.WithIndent(1))

	if err := sink.WriteStructure(&vkdump.MemoryAllocateInfo{MemoryTypeIndex: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\n \"memoryTypeIndex\": 1\n") {
		t.Errorf("output:\n%s", out.String())
	}

	out.Reset()
	bad := &vkdump.MemoryAllocateInfo{Next: &vkdump.RawStructure{Type: vkdump.StructureType(1000999999)}}
	if err := sink.WriteStructure(bad); err == nil {
		t.Fatal("expected error")
	}
	if out.Len() != 0 {
		t.Errorf("failed structure wrote %q", out.String())
	}
}

func TestStreamSinkNilCall(t *testing.T) {
	var out bytes.Buffer
	sink := NewStreamSink(&out)
	if err := sink.WriteCall(nil); !errors.Is(err, vkdump.ErrUnsupportedValue) {
		t.Fatalf("err = %v, want ErrUnsupportedValue", err)
	}
	if out.Len() != 0 {
		t.Errorf("nil call wrote %q", out.String())
	}
}
