package capture

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/sha3"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "capture.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAppendAndRead(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	at := time.Date(2024, 3, 1, 12, 0, 0, 500, time.UTC)

	seq, err := s.Append(ctx, Record{Name: "vkCreateBuffer", Body: []byte("{}\n"), RecordedAt: at})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	e, err := s.Entry(ctx, seq)
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if e.Seq != seq || e.Name != "vkCreateBuffer" || string(e.Body) != "{}\n" {
		t.Errorf("entry = %+v", e)
	}
	if !e.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v, want %v", e.RecordedAt, at)
	}
	if want := Digest(sha3.Sum256([]byte("{}\n"))); e.Digest != want {
		t.Errorf("Digest = %s, want %s", e.Digest, want)
	}
	if len(e.Digest.String()) != 64 {
		t.Errorf("Digest.String() = %q", e.Digest.String())
	}
}

func TestStoreDeduplicatesBodies(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	records := []Record{
		{Name: "vkQueueSubmit", Body: []byte(`{"a": 1}`)},
		{Name: "vkQueueSubmit", Body: []byte(`{"a": 1}`)},
		{Name: "vkQueuePresentKHR", Body: []byte(`{"b": 2}`)},
	}
	seqs, err := s.AppendBatch(ctx, records)
	if err != nil {
		t.Fatalf("AppendBatch: %v", err)
	}
	if len(seqs) != 3 || !(seqs[0] < seqs[1] && seqs[1] < seqs[2]) {
		t.Fatalf("seqs = %v", seqs)
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Calls != 3 || st.Dumps != 2 {
		t.Errorf("calls = %d, dumps = %d; want 3, 2", st.Calls, st.Dumps)
	}
	if st.BodyBytes != int64(len(`{"a": 1}`)+len(`{"b": 2}`)) {
		t.Errorf("BodyBytes = %d", st.BodyBytes)
	}
	if st.ByName["vkQueueSubmit"] != 2 || st.ByName["vkQueuePresentKHR"] != 1 {
		t.Errorf("ByName = %v", st.ByName)
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	for i, e := range entries {
		if e.Seq != seqs[i] || e.Name != records[i].Name || string(e.Body) != string(records[i].Body) {
			t.Errorf("entry %d = %+v", i, e)
		}
		if e.RecordedAt.IsZero() {
			t.Errorf("entry %d has no timestamp", i)
		}
	}
	if entries[0].Digest != entries[1].Digest {
		t.Error("identical bodies got different digests")
	}
}

func TestStoreEntryNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Entry(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	seqs, err := s.AppendBatch(ctx, nil)
	if err != nil || seqs != nil {
		t.Errorf("AppendBatch(nil) = %v, %v", seqs, err)
	}
	entries, err := s.Entries(ctx)
	if err != nil || len(entries) != 0 {
		t.Errorf("Entries = %v, %v", entries, err)
	}
	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Calls != 0 || st.Dumps != 0 || st.BodyBytes != 0 || len(st.ByName) != 0 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "capture.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append(ctx, Record{Name: "vkDeviceWaitIdle", Body: []byte("x")}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	entries, err := s.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "vkDeviceWaitIdle" {
		t.Errorf("entries after reopen = %+v", entries)
	}
}
