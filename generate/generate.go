// Package generate walks a schema and draws a conforming value.
//
// Every array element and every object field picks one of its variants
// independently; there is no up-front pooling or shuffling of candidates.
package generate

import (
	"math"

	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/random"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/value"
)

// Generator draws values from a random source
type Generator struct {
	src *random.Source
}

// New creates a generator over src
func New(src *random.Source) *Generator {
	return &Generator{src: src}
}

// Source returns the generator's random source
func (g *Generator) Source() *random.Source {
	return g.src
}

// Generate draws a value for a declared type. When the type is itself an
// array its length comes from b.TopLevelArray; nested arrays use b.Array.
func (g *Generator) Generate(s schema.Schema, b Bounds) (value.Value, error) {
	if arr, ok := s.(*schema.Array); ok {
		return g.array(arr, b, b.TopLevelArray)
	}
	return g.generate(s, b)
}

func (g *Generator) generate(s schema.Schema, b Bounds) (value.Value, error) {
	switch n := s.(type) {
	case *schema.Primitive:
		return g.primitive(n.Kind, b)
	case *schema.Array:
		return g.array(n, b, b.Array)
	case *schema.Object:
		return g.object(n, b)
	default:
		return nil, errors.AssertionFailedf("unknown schema %T", s)
	}
}

func (g *Generator) primitive(kind schema.PrimitiveKind, b Bounds) (value.Value, error) {
	switch kind {
	case schema.String:
		return value.String(g.src.String(b.String.Min, b.String.Max)), nil
	case schema.Number:
		if b.Number.Mode == ModeFloat {
			return value.Float(g.src.FloatRange(b.Number.Min, b.Number.Max)), nil
		}
		lo, hi := int(math.Ceil(b.Number.Min)), int(math.Floor(b.Number.Max))
		return value.Int(g.src.Int(lo, hi)), nil
	case schema.Boolean:
		return value.Bool(g.src.Bool()), nil
	default:
		return nil, errors.AssertionFailedf("unknown primitive kind %d", kind)
	}
}

func (g *Generator) array(s *schema.Array, b Bounds, length Length) (value.Value, error) {
	n := g.src.Int(length.Min, length.Max)
	out := make(value.Array, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.variant(s.Elements, b)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *Generator) object(s *schema.Object, b Bounds) (value.Value, error) {
	out := value.NewObject()
	for _, p := range s.Properties {
		v, err := g.variant(p.Variants, b)
		if err != nil {
			return nil, errors.Wrapf(err, "property %s", p.Name)
		}
		out.Set(p.Name, v)
	}
	return out, nil
}

// variant picks one schema uniformly and generates it
func (g *Generator) variant(variants []schema.Schema, b Bounds) (value.Value, error) {
	i, err := g.src.Pick(len(variants))
	if err != nil {
		return nil, err
	}
	return g.generate(variants[i], b)
}
