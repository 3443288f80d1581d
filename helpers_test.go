package vkdump

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sugawarayuuta/sonnet"
)

// checkOutput fails with a unified diff when got differs from want.
func checkOutput(t *testing.T, got []byte, want string) {
	t.Helper()
	if string(got) == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(string(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	t.Errorf("output mismatch:\n%s", diff)
}

// checkJSON fails unless data parses as a single JSON value.
func checkJSON(t *testing.T, data []byte) any {
	t.Helper()
	var v any
	if err := sonnet.Unmarshal(data, &v); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	return v
}

func mustMarshal(t *testing.T, s Structure, opts ...Option) []byte {
	t.Helper()
	out, err := Marshal(s, opts...)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return out
}
