package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/schema"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Count int      `json:"count" yaml:"count"`
	Tags  []string `json:"tags" yaml:"tags"`
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, sample{Name: "a", Count: 2, Tags: []string{"x"}}))
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"count\": 2,\n  \"tags\": [\n    \"x\"\n  ]\n}\n", buf.String())
}

func TestOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputYAML(&buf, sample{Name: "a", Count: 2, Tags: []string{"x"}}))
	assert.Equal(t, "name: a\ncount: 2\ntags:\n  - x\n", buf.String())
}

func TestOutput_SchemaDescription(t *testing.T) {
	s := &schema.Object{Properties: []schema.Property{
		{Name: "c", Variants: []schema.Schema{schema.NewPrimitive(schema.String), schema.NewPrimitive(schema.Number)}},
		{Name: "e", Variants: []schema.Schema{schema.NewArray(schema.NewPrimitive(schema.Number))}},
	}}
	var buf bytes.Buffer
	require.NoError(t, Output(&buf, FormatYAML, schema.Describe(s)))
	assert.Equal(t, `kind: object
properties:
  - name: c
    variants:
      - kind: string
      - kind: number
  - name: e
    variants:
      - kind: array
        elements:
          - kind: number
`, buf.String())
}

func TestOutput_UnknownFormat(t *testing.T) {
	err := Output(&bytes.Buffer{}, "xml", 1)
	assert.Error(t, err)
}

func TestShouldOutputJSON(t *testing.T) {
	assert.False(t, ShouldOutputJSON(nil))

	root := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	child.Flags().Bool("json", false, "")
	root.AddCommand(child)

	assert.False(t, ShouldOutputJSON(child))
	require.NoError(t, child.Flags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))
	assert.False(t, ColorEnabled(config.ColorAuto, &buf), "buffers are not terminals")
}
