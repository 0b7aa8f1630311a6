package generate

import (
	"math"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/random"
)

// Number modes
const (
	ModeInt   = config.NumberModeInt
	ModeFloat = config.NumberModeFloat
)

// Length is an inclusive length range
type Length struct {
	Min int
	Max int
}

// StringBounds sizes generated strings. Max 0 draws the maximum per string
// from [Min, random.MaxStringLen].
type StringBounds struct {
	Min int
	Max int
}

// NumberBounds ranges generated numbers
type NumberBounds struct {
	Min  float64
	Max  float64
	Mode string
}

// Bounds sizes every generated value
type Bounds struct {
	String StringBounds
	Number NumberBounds
	// Array applies to arrays nested in objects or other arrays
	Array Length
	// TopLevelArray applies when the declared type is itself an array
	TopLevelArray Length
}

// DefaultBounds returns the sizes used when nothing is configured
func DefaultBounds() Bounds {
	return Bounds{
		String:        StringBounds{Min: 1, Max: 0},
		Number:        NumberBounds{Min: -100, Max: 100, Mode: ModeInt},
		Array:         Length{Min: 1, Max: 7},
		TopLevelArray: Length{Min: 1, Max: 1},
	}
}

// BoundsFromConfig maps the generate section of the configuration
func BoundsFromConfig(c config.GenerateConfig) Bounds {
	return Bounds{
		String: StringBounds{Min: c.String.MinLen, Max: c.String.MaxLen},
		Number: NumberBounds{Min: c.Number.Min, Max: c.Number.Max, Mode: c.Number.Mode},
		Array:  Length{Min: c.Array.MinLen, Max: c.Array.MaxLen},
		TopLevelArray: Length{
			Min: c.TopLevelArray.MinLen,
			Max: c.TopLevelArray.MaxLen,
		},
	}
}

// Validate rejects ranges the generator cannot draw from
func (b Bounds) Validate() error {
	if b.String.Min < 0 || b.String.Max < 0 || (b.String.Max != 0 && b.String.Max < b.String.Min) {
		return errors.NewInvalidConfigf("string length range [%d, %d] is invalid", b.String.Min, b.String.Max)
	}
	if b.String.Max == 0 && b.String.Min > random.MaxStringLen {
		return errors.WithHint(
			errors.NewInvalidConfigf("string min length %d exceeds the random maximum %d", b.String.Min, random.MaxStringLen),
			"set an explicit string max length")
	}
	if b.Number.Max < b.Number.Min {
		return errors.NewInvalidConfigf("number range [%v, %v] is invalid", b.Number.Min, b.Number.Max)
	}
	if b.Number.Mode != ModeInt && b.Number.Mode != ModeFloat {
		return errors.NewInvalidConfigf("number mode %q is not %q or %q", b.Number.Mode, ModeInt, ModeFloat)
	}
	if b.Number.Mode == ModeInt && math.Ceil(b.Number.Min) > math.Floor(b.Number.Max) {
		return errors.NewInvalidConfigf("number range [%v, %v] contains no integer", b.Number.Min, b.Number.Max)
	}
	if err := b.Array.validate("array"); err != nil {
		return err
	}
	return b.TopLevelArray.validate("top-level array")
}

func (l Length) validate(name string) error {
	if l.Min < 0 || l.Max < l.Min {
		return errors.NewInvalidConfigf("%s length range [%d, %d] is invalid", name, l.Min, l.Max)
	}
	return nil
}
