// Package config loads editor settings from a TOML file and supports
// live reload through a file watcher.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid marks a settings file that parsed but failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the editor settings.
type Config struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`
	// IndentWidth is the number of spaces inserted for Tab and
	// auto-indent.
	IndentWidth int `toml:"indent_width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TabWidth:    4,
		IndentWidth: 4,
	}
}

// Load reads a TOML settings file, overlaying the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("%w: tab_width must be at least 1, got %d", ErrInvalid, c.TabWidth)
	}
	if c.IndentWidth < 1 {
		return fmt.Errorf("%w: indent_width must be at least 1, got %d", ErrInvalid, c.IndentWidth)
	}
	return nil
}
