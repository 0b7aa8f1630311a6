package config

import "github.com/teranos/fakegen/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	g := c.Generate

	if g.String.MinLen < 0 {
		return errors.NewInvalidConfigf("generate.string.min_len must be >= 0, got %d", g.String.MinLen)
	}
	// max_len 0 means "random maximum", otherwise it bounds min_len
	if g.String.MaxLen < 0 {
		return errors.NewInvalidConfigf("generate.string.max_len must be >= 0, got %d", g.String.MaxLen)
	}
	if g.String.MaxLen != 0 && g.String.MaxLen < g.String.MinLen {
		return errors.NewInvalidConfigf("generate.string.max_len (%d) must be >= min_len (%d)", g.String.MaxLen, g.String.MinLen)
	}

	if g.Number.Max < g.Number.Min {
		return errors.NewInvalidConfigf("generate.number.max (%g) must be >= min (%g)", g.Number.Max, g.Number.Min)
	}
	if g.Number.Mode != NumberModeInt && g.Number.Mode != NumberModeFloat {
		return errors.WithHint(
			errors.NewInvalidConfigf("generate.number.mode must be %q or %q, got %q", NumberModeInt, NumberModeFloat, g.Number.Mode),
			"omit generate.number.mode for integer output")
	}

	if err := validateLength("generate.array", g.Array); err != nil {
		return err
	}
	if err := validateLength("generate.top_level_array", g.TopLevelArray); err != nil {
		return err
	}

	if c.Rewrite.StubPrefix == "" {
		return errors.NewInvalidConfigf("rewrite.stub_prefix cannot be empty")
	}

	switch c.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.NewInvalidConfigf("output.color must be auto, always or never, got %q", c.Output.Color)
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox":
	default:
		return errors.NewInvalidConfigf("log.theme must be everforest or gruvbox, got %q", c.Log.Theme)
	}

	return nil
}

func validateLength(key string, l LengthConfig) error {
	if l.MinLen < 0 {
		return errors.NewInvalidConfigf("%s.min_len must be >= 0, got %d", key, l.MinLen)
	}
	if l.MaxLen < l.MinLen {
		return errors.NewInvalidConfigf("%s.max_len (%d) must be >= min_len (%d)", key, l.MaxLen, l.MinLen)
	}
	return nil
}
