// Package config loads vkdump settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/NOT-REAL-GAMES/vkdump"
)

var ErrUnknownFormat = errors.New("config: unknown file format")

type Config struct {
	Indent            int     `toml:"indent" yaml:"indent"`
	Handles           string  `toml:"handles" yaml:"handles"`
	UnknownExtensions string  `toml:"unknown_extensions" yaml:"unknown_extensions"`
	MaxArrayElements  int     `toml:"max_array_elements" yaml:"max_array_elements"`
	MaxDepth          int     `toml:"max_depth" yaml:"max_depth"`
	Capture           Capture `toml:"capture" yaml:"capture"`
}

type Capture struct {
	Database string `toml:"database" yaml:"database"`
	Workers  int    `toml:"workers" yaml:"workers"`
	Log      bool   `toml:"log" yaml:"log"`
}

func Default() Config {
	return Config{
		Indent:            vkdump.DefaultIndent,
		Handles:           "redacted",
		UnknownExtensions: "fail",
		MaxArrayElements:  vkdump.DefaultMaxArrayElements,
		MaxDepth:          vkdump.DefaultMaxDepth,
		Capture: Capture{
			Database: "vkdump.db",
			Workers:  4,
		},
	}
}

// Load reads path, choosing the decoder from its extension: .toml, .yaml
// or .yml. Settings missing from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Indent < 0 || c.Indent > 16 {
		errs = append(errs, fmt.Errorf("indent %d out of range 0..16", c.Indent))
	}
	if _, err := handlePolicy(c.Handles); err != nil {
		errs = append(errs, err)
	}
	if _, err := unknownPolicy(c.UnknownExtensions); err != nil {
		errs = append(errs, err)
	}
	if c.MaxArrayElements < 1 {
		errs = append(errs, fmt.Errorf("max_array_elements must be positive, got %d", c.MaxArrayElements))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth))
	}
	if c.Capture.Workers < 1 {
		errs = append(errs, fmt.Errorf("capture.workers must be positive, got %d", c.Capture.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Options converts the printer settings into vkdump options.
func (c Config) Options() ([]vkdump.Option, error) {
	handles, err := handlePolicy(c.Handles)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	unknown, err := unknownPolicy(c.UnknownExtensions)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []vkdump.Option{
		vkdump.WithIndent(c.Indent),
		vkdump.WithHandlePolicy(handles),
		vkdump.WithUnknownExtensionPolicy(unknown),
		vkdump.WithMaxArrayElements(c.MaxArrayElements),
		vkdump.WithMaxDepth(c.MaxDepth),
	}, nil
}

func handlePolicy(s string) (vkdump.HandlePolicy, error) {
	switch strings.ToLower(s) {
	case "", "redacted":
		return vkdump.HandleRedacted, nil
	case "address":
		return vkdump.HandleAddress, nil
	}
	return 0, fmt.Errorf("handles must be redacted or address, got %q", s)
}

func unknownPolicy(s string) (vkdump.UnknownExtensionPolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return vkdump.UnknownExtensionFail, nil
	case "placeholder":
		return vkdump.UnknownExtensionPlaceholder, nil
	}
	return 0, fmt.Errorf("unknown_extensions must be fail or placeholder, got %q", s)
}
