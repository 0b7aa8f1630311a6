package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/random"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/tsdecl/parser"
	"github.com/teranos/fakegen/value"
)

func mustSchema(t *testing.T, src string) schema.Schema {
	t.Helper()
	typ, err := parser.ParseType(src)
	require.NoError(t, err)
	s, err := schema.NewExtractor(nil, schema.Options{}).Extract(typ)
	require.NoError(t, err)
	return s
}

func generateN(t *testing.T, src string, n int, b Bounds) []value.Value {
	t.Helper()
	s := mustSchema(t, src)
	g := New(random.New(1))
	out := make([]value.Value, n)
	for i := range out {
		v, err := g.Generate(s, b)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestGenerate_StringPropertyIsNonEmpty(t *testing.T) {
	for _, v := range generateN(t, "{ a: string }", 100, DefaultBounds()) {
		obj := v.(*value.Object)
		require.Equal(t, []string{"a"}, obj.Keys())
		a, _ := obj.Get("a")
		s, ok := a.(value.String)
		require.True(t, ok)
		assert.GreaterOrEqual(t, len(s), 1)
	}
}

func TestGenerate_NumberArrayLengthsAndRange(t *testing.T) {
	lengths := map[int]bool{}
	for _, v := range generateN(t, "{ e: number[] }", 300, DefaultBounds()) {
		e, _ := v.(*value.Object).Get("e")
		arr, ok := e.(value.Array)
		require.True(t, ok)
		require.GreaterOrEqual(t, len(arr), 1)
		require.LessOrEqual(t, len(arr), 7)
		lengths[len(arr)] = true
		for _, el := range arr {
			n, ok := el.(value.Number)
			require.True(t, ok)
			assert.True(t, n.Integer)
			assert.GreaterOrEqual(t, n.Float, -100.0)
			assert.LessOrEqual(t, n.Float, 100.0)
		}
	}
	assert.Len(t, lengths, 7, "every length in [1,7] should appear")
}

func TestGenerate_UnionPropertyCoversEveryVariant(t *testing.T) {
	kinds := map[string]int{}
	for _, v := range generateN(t, "{ c: string | number }", 200, DefaultBounds()) {
		c, _ := v.(*value.Object).Get("c")
		kinds[c.Kind()]++
	}
	assert.Len(t, kinds, 2)
	assert.Positive(t, kinds["string"])
	assert.Positive(t, kinds["number"])
}

func TestGenerate_UnionElementsSampledIndependently(t *testing.T) {
	b := DefaultBounds()
	b.Array = Length{Min: 60, Max: 60}
	v := generateN(t, "{ f: (string | number | boolean)[] }", 1, b)[0]
	f, _ := v.(*value.Object).Get("f")

	arr := f.(value.Array)
	require.Len(t, arr, 60)
	kinds := map[string]bool{}
	for _, el := range arr {
		kinds[el.Kind()] = true
	}
	assert.Len(t, kinds, 3)
}

func TestGenerate_TopLevelArrayLength(t *testing.T) {
	for _, v := range generateN(t, "{ x: boolean }[]", 20, DefaultBounds()) {
		arr, ok := v.(value.Array)
		require.True(t, ok)
		assert.Len(t, arr, 1)
	}

	b := DefaultBounds()
	b.TopLevelArray = Length{Min: 3, Max: 3}
	for _, v := range generateN(t, "number[]", 5, b) {
		assert.Len(t, v.(value.Array), 3)
	}
}

func TestGenerate_FloatMode(t *testing.T) {
	b := DefaultBounds()
	b.Number = NumberBounds{Min: 0, Max: 1, Mode: ModeFloat}
	for _, v := range generateN(t, "{ n: number }", 50, b) {
		n, _ := v.(*value.Object).Get("n")
		num := n.(value.Number)
		assert.False(t, num.Integer)
		assert.GreaterOrEqual(t, num.Float, 0.0)
		assert.Less(t, num.Float, 1.0)
	}
}

func TestGenerate_StringBounds(t *testing.T) {
	b := DefaultBounds()
	b.String = StringBounds{Min: 4, Max: 6}
	for _, v := range generateN(t, "{ s: string }", 50, b) {
		s, _ := v.(*value.Object).Get("s")
		assert.GreaterOrEqual(t, len(s.(value.String)), 4)
		assert.LessOrEqual(t, len(s.(value.String)), 6)
	}
}

func TestGenerate_KeysFollowDeclarationOrder(t *testing.T) {
	v := generateN(t, "{ z: string; a: number; m: { y: boolean; b: string } }", 1, DefaultBounds())[0]
	obj := v.(*value.Object)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	m, _ := obj.Get("m")
	assert.Equal(t, []string{"y", "b"}, m.(*value.Object).Keys())
}

func TestGenerate_Deterministic(t *testing.T) {
	s := mustSchema(t, "{ a: string; b: (number | boolean)[]; c: { d: string }[] }")
	a, err := New(random.New(99)).Generate(s, DefaultBounds())
	require.NoError(t, err)
	b, err := New(random.New(99)).Generate(s, DefaultBounds())
	require.NoError(t, err)
	assert.Equal(t, value.Format(a), value.Format(b))
}

func TestGenerate_EmptyVariantsIsAssertion(t *testing.T) {
	s := &schema.Object{Properties: []schema.Property{{Name: "x"}}}
	_, err := New(random.New(1)).Generate(s, DefaultBounds())
	require.Error(t, err)
	assert.True(t, errors.IsAssertionFailure(err))
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, DefaultBounds().Validate())

	tests := map[string]func(*Bounds){
		"string max below min": func(b *Bounds) { b.String = StringBounds{Min: 5, Max: 2} },
		"negative string min":  func(b *Bounds) { b.String.Min = -1 },
		"min above random max": func(b *Bounds) { b.String = StringBounds{Min: 20, Max: 0} },
		"number max below min": func(b *Bounds) { b.Number.Min, b.Number.Max = 10, 1 },
		"unknown mode":         func(b *Bounds) { b.Number.Mode = "decimal" },
		"no integer in range":  func(b *Bounds) { b.Number.Min, b.Number.Max = 0.2, 0.8 },
		"array max below min":  func(b *Bounds) { b.Array = Length{Min: 3, Max: 1} },
		"negative top level":   func(b *Bounds) { b.TopLevelArray.Min = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			b := DefaultBounds()
			mutate(&b)
			err := b.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestBounds_LongMinNeedsExplicitMax(t *testing.T) {
	b := DefaultBounds()
	b.String = StringBounds{Min: 20, Max: 0}
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "set an explicit string max length")

	b.String.Max = 20
	require.NoError(t, b.Validate())
	v, err := New(random.New(3)).Generate(schema.NewPrimitive(schema.String), b)
	require.NoError(t, err)
	assert.Len(t, string(v.(value.String)), 20)
}

func TestBoundsFromConfig_MatchesDefaults(t *testing.T) {
	assert.Equal(t, DefaultBounds(), BoundsFromConfig(config.Default().Generate))
}
