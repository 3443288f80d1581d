package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/NOT-REAL-GAMES/vkdump"
)

func testCalls(n int) []*vkdump.Call {
	calls := make([]*vkdump.Call, n)
	for i := range calls {
		calls[i] = vkdump.NewCall(fmt.Sprintf("vkCall%d", i),
			vkdump.Arg{Name: "pAllocateInfo", Value: &vkdump.MemoryAllocateInfo{
				AllocationSize:  vkdump.DeviceSize(1024 * (i + 1)),
				MemoryTypeIndex: uint32(i),
			}},
		).Returning(vkdump.SUCCESS)
	}
	return calls
}

func quietLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := NewLogger(true)
	log.SetOutput(&buf, &buf)
	return log, &buf
}

func TestRecordBatchKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	log, _ := quietLogger()
	rec := NewRecorder(store, log, 3, vkdump.WithIndent(2))

	calls := testCalls(8)
	seqs, err := rec.RecordBatch(ctx, calls)
	if err != nil {
		t.Fatalf("RecordBatch: %v", err)
	}
	if len(seqs) != len(calls) {
		t.Fatalf("got %d seqs", len(seqs))
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range entries {
		want, err := vkdump.MarshalCall(calls[i], vkdump.WithIndent(2))
		if err != nil {
			t.Fatal(err)
		}
		if e.Seq != seqs[i] || e.Name != calls[i].Name {
			t.Errorf("entry %d: seq %d name %s", i, e.Seq, e.Name)
		}
		if !bytes.Equal(e.Body, want) {
			t.Errorf("entry %d body differs:\n%s", i, e.Body)
		}
	}
}

func TestRecordBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	log, logs := quietLogger()
	rec := NewRecorder(store, log, 2)

	calls := testCalls(4)
	calls[2] = vkdump.NewCall("vkAllocateMemory",
		vkdump.Arg{Name: "pAllocateInfo", Value: &vkdump.MemoryAllocateInfo{
			Next: &vkdump.RawStructure{Type: vkdump.StructureType(1000999999)},
		}},
	)
	_, err := rec.RecordBatch(ctx, calls)
	if !errors.Is(err, vkdump.ErrUnrecognizedExtensionTag) {
		t.Fatalf("err = %v, want ErrUnrecognizedExtensionTag", err)
	}

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Calls != 0 {
		t.Errorf("%d calls stored from a failed batch", st.Calls)
	}
	if !strings.Contains(logs.String(), "[vkdump ERROR] batch of 4 calls discarded") {
		t.Errorf("log output:\n%s", logs.String())
	}
}

func TestRecordNilCall(t *testing.T) {
	rec := NewRecorder(openTestStore(t), nil, 1)
	if _, err := rec.RecordBatch(context.Background(), []*vkdump.Call{nil}); err == nil {
		t.Fatal("expected error for nil call")
	}
}

func TestRecordCancelled(t *testing.T) {
	store := openTestStore(t)
	log, _ := quietLogger()
	rec := NewRecorder(store, log, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := rec.RecordBatch(ctx, testCalls(3)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	st, err := store.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Calls != 0 {
		t.Errorf("%d calls stored after cancel", st.Calls)
	}
}

func TestRecordTee(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	rec := NewRecorder(openTestStore(t), nil, 4)
	rec.Tee(NewStreamSink(&out))

	calls := testCalls(3)
	if _, err := rec.RecordBatch(ctx, calls); err != nil {
		t.Fatal(err)
	}
	var want bytes.Buffer
	for _, c := range calls {
		if err := vkdump.DumpCall(&want, c); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != want.String() {
		t.Errorf("tee output:\n%s\nwant:\n%s", out.String(), want.String())
	}
}

func TestRecordSingle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	rec := NewRecorder(store, nil, 0)

	seq, err := rec.Record(ctx, testCalls(1)[0])
	if err != nil {
		t.Fatal(err)
	}
	e, err := store.Entry(ctx, seq)
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "vkCall0" {
		t.Errorf("name = %s", e.Name)
	}
}
