package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NOT-REAL-GAMES/vkdump"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"vkdump.toml", "vkdump.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Indent != 2 {
				t.Errorf("indent = %d, want 2", cfg.Indent)
			}
			if cfg.Handles != "address" {
				t.Errorf("handles = %q, want address", cfg.Handles)
			}
			if cfg.UnknownExtensions != "placeholder" {
				t.Errorf("unknown_extensions = %q, want placeholder", cfg.UnknownExtensions)
			}
			if cfg.MaxArrayElements != 128 {
				t.Errorf("max_array_elements = %d, want 128", cfg.MaxArrayElements)
			}
			// Not in the file, so the default survives.
			if cfg.MaxDepth != vkdump.DefaultMaxDepth {
				t.Errorf("max_depth = %d, want %d", cfg.MaxDepth, vkdump.DefaultMaxDepth)
			}
			want := Capture{Database: "frames.db", Workers: 8, Log: true}
			if cfg.Capture != want {
				t.Errorf("capture = %+v, want %+v", cfg.Capture, want)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"handles", "max_depth"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %s", msg, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := Parse([]byte("indent = 2"), "ini")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse([]byte("indent = ="), "toml"); err == nil {
		t.Error("toml: expected error")
	}
	if _, err := Parse([]byte("indent: [1"), "yaml"); err == nil {
		t.Error("yaml: expected error")
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Indent = 1
	cfg.Handles = "Address"
	cfg.UnknownExtensions = "placeholder"
	cfg.MaxArrayElements = 3
	cfg.MaxDepth = 5
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	got := vkdump.NewPrinter(opts...).Options()
	if got.Indent != 1 || got.Handles != vkdump.HandleAddress ||
		got.UnknownExtensions != vkdump.UnknownExtensionPlaceholder ||
		got.MaxArrayElements != 3 || got.MaxDepth != 5 {
		t.Errorf("options = %+v", got)
	}
}

func TestOptionsRejectsBadPolicy(t *testing.T) {
	cfg := Default()
	cfg.UnknownExtensions = "ignore"
	if _, err := cfg.Options(); err == nil {
		t.Fatal("expected error")
	}
}
