// Package config loads fakegen settings from TOML files and FAKEGEN_* environment variables.
package config

// Config represents the fakegen configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Rewrite  RewriteConfig  `mapstructure:"rewrite" toml:"rewrite" json:"rewrite" yaml:"rewrite"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// GenerateConfig configures random value generation
type GenerateConfig struct {
	// Seed 0 means unseeded
	Seed int64 `mapstructure:"seed" toml:"seed" json:"seed" yaml:"seed"`
	// Strict aborts on unsupported types instead of dropping them
	Strict bool         `mapstructure:"strict" toml:"strict" json:"strict" yaml:"strict"`
	String StringConfig `mapstructure:"string" toml:"string" json:"string" yaml:"string"`
	Number NumberConfig `mapstructure:"number" toml:"number" json:"number" yaml:"number"`
	// Array bounds arrays nested in objects or other arrays
	Array LengthConfig `mapstructure:"array" toml:"array" json:"array" yaml:"array"`
	// TopLevelArray bounds a declared type that is itself an array
	TopLevelArray LengthConfig `mapstructure:"top_level_array" toml:"top_level_array" json:"top_level_array" yaml:"top_level_array"`
}

// StringConfig bounds generated string lengths.
// MaxLen 0 draws a fresh maximum in [MinLen, 15] for every string.
type StringConfig struct {
	MinLen int `mapstructure:"min_len" toml:"min_len" json:"min_len" yaml:"min_len"`
	MaxLen int `mapstructure:"max_len" toml:"max_len" json:"max_len" yaml:"max_len"`
}

// NumberConfig bounds generated numbers
type NumberConfig struct {
	Min  float64 `mapstructure:"min" toml:"min" json:"min" yaml:"min"`
	Max  float64 `mapstructure:"max" toml:"max" json:"max" yaml:"max"`
	Mode string  `mapstructure:"mode" toml:"mode" json:"mode" yaml:"mode"` // "int" or "float"
}

// LengthConfig bounds generated array lengths
type LengthConfig struct {
	MinLen int `mapstructure:"min_len" toml:"min_len" json:"min_len" yaml:"min_len"`
	MaxLen int `mapstructure:"max_len" toml:"max_len" json:"max_len" yaml:"max_len"`
}

// RewriteConfig configures stub detection
type RewriteConfig struct {
	StubPrefix string `mapstructure:"stub_prefix" toml:"stub_prefix" json:"stub_prefix" yaml:"stub_prefix"`
}

// OutputConfig configures the printed result
type OutputConfig struct {
	OriginalLabel    string `mapstructure:"original_label" toml:"original_label" json:"original_label" yaml:"original_label"`
	TransformedLabel string `mapstructure:"transformed_label" toml:"transformed_label" json:"transformed_label" yaml:"transformed_label"`
	Color            string `mapstructure:"color" toml:"color" json:"color" yaml:"color"` // auto, always, never
}

// LogConfig configures console logging
type LogConfig struct {
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"` // everforest, gruvbox
}

// Number modes
const (
	NumberModeInt   = "int"
	NumberModeFloat = "float"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// FileName is the config file searched for in the working directory and its parents
const FileName = "fakegen.toml"

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
