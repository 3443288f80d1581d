package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/NOT-REAL-GAMES/vkdump"
	"github.com/NOT-REAL-GAMES/vkdump/capture"
	"github.com/NOT-REAL-GAMES/vkdump/config"
)

func TestSampleCallsSerialize(t *testing.T) {
	for _, c := range sampleCalls() {
		if _, err := vkdump.MarshalCall(c); err != nil {
			t.Errorf("%s: %v", c.Name, err)
		}
	}
}

func TestRunSampleThenStats(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.Database = filepath.Join(t.TempDir(), "sample.db")
	log := capture.NewLogger(false)
	ctx := context.Background()

	if err := run(ctx, cfg, log, "sample", nil); err != nil {
		t.Fatalf("sample: %v", err)
	}

	store, err := capture.OpenStore(cfg.Capture.Database)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Calls != int64(len(sampleCalls())) {
		t.Errorf("stored %d calls, want %d", st.Calls, len(sampleCalls()))
	}
	if st.ByName["vkCreateImage"] != 1 {
		t.Errorf("ByName = %v", st.ByName)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.Database = filepath.Join(t.TempDir(), "x.db")
	if err := run(context.Background(), cfg, capture.NewLogger(false), "frobnicate", nil); err == nil {
		t.Fatal("expected error")
	}
}
