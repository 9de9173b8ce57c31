package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/bottom/codec"

	"github.com/goccy/go-yaml"
)

// EnvVar names the config file used when none is given on the command line.
const EnvVar = "BOTTOM_CONFIG"

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var ErrInvalid = errors.New("invalid config")

// Config holds defaults shared by the bottom command and language server.
type Config struct {
	Framing string    `yaml:"framing"`
	Color   ColorMode `yaml:"color"`
	Wrap    int       `yaml:"wrap"`
	LSP     LSPConfig `yaml:"lsp"`
}

type LSPConfig struct {
	// Source is the diagnostic source shown by editors.
	Source string `yaml:"source"`
	// HoverMax limits the number of decoded runes shown on hover.
	HoverMax int `yaml:"hoverMax"`
}

// Load reads a YAML config file. Fields missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads the file named by $BOTTOM_CONFIG, or returns the defaults if
// it is not set.
func LoadEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Framing: codec.CurrentFraming.String(),
		Color:   ColorAuto,
		LSP: LSPConfig{
			Source:   "bottom",
			HoverMax: 200,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := codec.ParseFraming(c.Framing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	if c.Wrap < 0 {
		return fmt.Errorf("%w: wrap %d is negative", ErrInvalid, c.Wrap)
	}
	if c.LSP.HoverMax <= 0 {
		return fmt.Errorf("%w: lsp.hoverMax must be positive", ErrInvalid)
	}
	return nil
}

// FramingValue returns the configured framing. It assumes c is valid.
func (c *Config) FramingValue() codec.Framing {
	f, _ := codec.ParseFraming(c.Framing)
	return f
}
