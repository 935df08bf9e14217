// Package config loads, validates and watches the dumbvim configuration.
package config

import (
	"github.com/bnema/dumbvim/internal/domain/entity"
	"github.com/bnema/dumbvim/internal/domain/fontspec"
)

// Config is the full on-disk configuration.
type Config struct {
	Font    FontConfig    `mapstructure:"font" toml:"font" json:"font"`
	Engine  EngineConfig  `mapstructure:"engine" toml:"engine" json:"engine"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// FontConfig holds the grid font and the accepted size range.
type FontConfig struct {
	Family  string  `mapstructure:"family" toml:"family" json:"family" jsonschema:"description=Font family used when the engine has not set guifont"`
	Size    float64 `mapstructure:"size" toml:"size" json:"size" jsonschema:"description=Default point size,minimum=1"`
	MinSize float64 `mapstructure:"min_size" toml:"min_size" json:"min_size" jsonschema:"description=Smallest accepted guifont size,minimum=1"`
	MaxSize float64 `mapstructure:"max_size" toml:"max_size" json:"max_size" jsonschema:"description=Largest accepted guifont size"`
}

// EngineConfig describes how to reach the editor engine.
type EngineConfig struct {
	Command string   `mapstructure:"command" toml:"command" json:"command" jsonschema:"description=Engine executable"`
	Args    []string `mapstructure:"args" toml:"args" json:"args" jsonschema:"description=Engine arguments; must include --embed"`
	Address string   `mapstructure:"address" toml:"address" json:"address" jsonschema:"description=Dial a running engine instead of spawning one"`
	Width   int      `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height  int      `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DefaultFont returns the configured font.
func (c FontConfig) DefaultFont() entity.Font {
	return entity.Font{Family: c.Family, Size: c.Size}
}

// Bounds returns the guifont size bounds with the configured size as fallback.
func (c FontConfig) Bounds() fontspec.Bounds {
	return fontspec.Bounds{Min: c.MinSize, Max: c.MaxSize, Default: c.Size}
}
