package fixture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/rewrite"
	"github.com/teranos/fakegen/tsdecl/parser"
	"github.com/teranos/fakegen/tsdecl/printer"
)

func exampleInput(t *testing.T) Input {
	t.Helper()
	in, err := ReadInput(filepath.Join("testdata", "example.ts"))
	require.NoError(t, err)
	return in
}

func seeded(seed int64) Options {
	opts := DefaultOptions()
	opts.Seed = seed
	return opts
}

func TestRun_Example(t *testing.T) {
	res, err := Run(context.Background(), exampleInput(t), seeded(42))
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, int64(42), res.Seed)
	require.Len(t, res.Stubs, 1)
	assert.Equal(t, rewrite.StatusFilled, res.Stubs[0].Status)
	assert.Equal(t, 1, res.Filled())
	assert.Empty(t, res.Dropped)

	text := res.Text()
	assert.True(t, strings.HasPrefix(text, "original -> \ntype Fake = {\n"))
	assert.Contains(t, text, "\ntransformed -> \ntype Fake = {\n")
	assert.Contains(t, text, "    public abstract fakeMethod(): Fake;\n}\ntransformed -> ")
	assert.Contains(t, res.Transformed, "export class FakeAbstractClass {\n    public fakeMethod(): Fake {\n        return {")
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	a, err := Run(context.Background(), exampleInput(t), seeded(7))
	require.NoError(t, err)
	b, err := Run(context.Background(), exampleInput(t), seeded(7))
	require.NoError(t, err)

	assert.Equal(t, a.Text(), b.Text())
	assert.NotEqual(t, a.RunID, b.RunID)

	c, err := Run(context.Background(), exampleInput(t), seeded(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Transformed, c.Transformed)
}

func TestRun_OriginalMatchesPlainPrint(t *testing.T) {
	in := exampleInput(t)
	prog, err := parser.Parse(in.Source)
	require.NoError(t, err)

	res, err := Run(context.Background(), in, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, printer.Print(prog), res.Original)
}

func TestRun_TransformedParses(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		res, err := Run(context.Background(), exampleInput(t), seeded(seed))
		require.NoError(t, err)
		_, err = parser.Parse(res.Transformed)
		require.NoError(t, err, "seed %d produced unparsable output:\n%s", seed, res.Transformed)
	}
}

func TestRun_UnseededReportsSeed(t *testing.T) {
	in := exampleInput(t)
	res, err := Run(context.Background(), in, DefaultOptions())
	require.NoError(t, err)
	require.NotZero(t, res.Seed)

	replay, err := Run(context.Background(), in, seeded(res.Seed))
	require.NoError(t, err)
	assert.Equal(t, res.Transformed, replay.Transformed)
}

func TestRun_CustomLabels(t *testing.T) {
	opts := seeded(1)
	opts.OriginalLabel = "before:"
	opts.TransformedLabel = "after:"
	res, err := Run(context.Background(), Input{Name: "x.ts", Source: "type A = { a: string };"}, opts)
	require.NoError(t, err)
	assert.Equal(t, "before:\ntype A = {\n    a: string;\n};\nafter:\ntype A = {\n    a: string;\n};", res.Text())
}

func TestRun_SyntaxError(t *testing.T) {
	_, err := Run(context.Background(), Input{Name: "bad.ts", Source: "type = ;"}, seeded(1))
	require.Error(t, err)
	assert.True(t, errors.IsSyntaxError(err))

	perr, ok := parser.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, "bad.ts", perr.File)
}

func TestRun_InvalidBounds(t *testing.T) {
	opts := seeded(1)
	opts.Bounds.Array.Max = 0
	_, err := Run(context.Background(), exampleInput(t), opts)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestRun_StrictMode(t *testing.T) {
	src := `type T = { a: string; when: Date };
abstract class F {
    abstract fakeT(): T;
}`
	res, err := Run(context.Background(), Input{Name: "t.ts", Source: src}, seeded(3))
	require.NoError(t, err)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, "T.when", res.Dropped[0].Path)

	opts := seeded(3)
	opts.Strict = true
	_, err = Run(context.Background(), Input{Name: "t.ts", Source: src}, opts)
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Generate.Seed = 9
	cfg.Rewrite.StubPrefix = "mock"
	opts := OptionsFromConfig(cfg)

	assert.Equal(t, int64(9), opts.Seed)
	assert.Equal(t, "mock", opts.StubPrefix)
	assert.Equal(t, DefaultOriginalLabel, opts.OriginalLabel)
	assert.Equal(t, DefaultOptions().Bounds, opts.Bounds)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.ts"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("type A = { a: string };"), 0644))
	in, err := ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, path, in.Name)
	assert.Equal(t, "type A = { a: string };", in.Source)
}
