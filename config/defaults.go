package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generation defaults
	v.SetDefault("generate.seed", 0)
	v.SetDefault("generate.strict", false)
	v.SetDefault("generate.string.min_len", 1)
	v.SetDefault("generate.string.max_len", 0) // 0 = random maximum in [min_len, 15]
	v.SetDefault("generate.number.min", -100)
	v.SetDefault("generate.number.max", 100)
	v.SetDefault("generate.number.mode", NumberModeInt)
	v.SetDefault("generate.array.min_len", 1)
	v.SetDefault("generate.array.max_len", 7)
	v.SetDefault("generate.top_level_array.min_len", 1)
	v.SetDefault("generate.top_level_array.max_len", 1)

	// Rewrite defaults
	v.SetDefault("rewrite.stub_prefix", "fake")

	// Output defaults
	v.SetDefault("output.original_label", "original -> ")
	v.SetDefault("output.transformed_label", "transformed -> ")
	v.SetDefault("output.color", ColorAuto)

	v.SetDefault("log.theme", "everforest")
}

// Default returns a Config populated only from SetDefaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always unmarshal
		panic(err)
	}
	return cfg
}
