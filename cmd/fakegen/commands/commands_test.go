package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/fixture"
)

const exampleDoc = `type Fake = {
    a: string;
    b: number;
};

abstract class F {
    abstract fakeValue(): Fake;
}
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs a single command under a throwaway root
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)
	pterm.DisableColor()

	root := &cobra.Command{Use: "fakegen", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(cmd)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{cmd.Name()}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunFlags_Options(t *testing.T) {
	var f runFlags
	cmd := &cobra.Command{Use: "x"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "5", "--prefix", "mock"}))

	cfg := config.Default()
	cfg.Generate.Strict = true
	opts := f.options(cmd, cfg)
	assert.Equal(t, int64(5), opts.Seed)
	assert.Equal(t, "mock", opts.StubPrefix)
	assert.True(t, opts.Strict, "unset flags keep configured values")
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, fixture.DefaultInputPath, inputPath(nil))
	assert.Equal(t, "a.ts", inputPath([]string{"a.ts"}))
}

func TestWriteText(t *testing.T) {
	pterm.DisableColor()
	res, err := fixture.Run(context.Background(), fixture.Input{Name: "a.ts", Source: "type A = { a: string };"}, seededOptions(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, res, false))
	assert.Equal(t, res.Text()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, writeText(&buf, res, true))
	assert.Equal(t, res.Transformed+"\n", buf.String())
}

func seededOptions(seed int64) fixture.Options {
	opts := fixture.DefaultOptions()
	opts.Seed = seed
	return opts
}

func TestGenerateAndCheck(t *testing.T) {
	doc := writeDoc(t, exampleDoc)
	out := filepath.Join(t.TempDir(), "fixtures", "example.fixture.ts")

	_, err := execute(t, GenerateCmd, doc, "--seed", "42", "--output", out)
	require.NoError(t, err)
	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(saved), "// fakegen: seed=42 "))
	assert.Contains(t, string(saved), "public fakeValue(): Fake {")

	// Seed comes from the header
	stdout, err := execute(t, CheckCmd, doc, "--against", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")

	_, err = execute(t, CheckCmd, doc, "--against", out, "--seed", "43")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))
}

func TestBuildSchemaReport(t *testing.T) {
	doc := writeDoc(t, `type A = { a: string; when: Date };
type B = string | number;
interface C { xs: number[][] }`)

	report, err := buildSchemaReport(doc, false)
	require.NoError(t, err)
	require.Len(t, report.Types, 3)

	assert.Equal(t, "A", report.Types[0].Name)
	assert.Equal(t, "{ a: string }", report.Types[0].Compact)
	assert.NotEmpty(t, report.Types[1].Unsupported)
	assert.Nil(t, report.Types[1].Schema)
	assert.Equal(t, "{ xs: number[] }", report.Types[2].Compact)

	require.Len(t, report.Dropped, 1)
	assert.Equal(t, "A.when", report.Dropped[0].Path)

	_, err = buildSchemaReport(doc, true)
	assert.True(t, errors.IsUnsupportedType(err))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fakegen.toml")
	_, err := execute(t, ConfigCmd, "init", "--path", path)
	require.NoError(t, err)

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, ConfigCmd, "init", "--path", path)
	assert.Error(t, err, "refuses to overwrite without --force")
}
