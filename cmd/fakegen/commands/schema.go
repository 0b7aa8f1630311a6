package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/display"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/fixture"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/rewrite"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/tsdecl/parser"
)

var (
	schemaFormat string
	schemaStrict bool
)

// SchemaCmd shows extracted schemas
var SchemaCmd = &cobra.Command{
	Use:   "schema [file]",
	Short: "Show the schema extracted for each declared type",
	Long: `Show the schema extracted for every type alias and interface in a
declaration document, in source order.

Types whose shape cannot be represented are listed as unsupported, and
members dropped during extraction are listed with their path.

Examples:
  fakegen schema types.ts                 # Compact text form
  fakegen schema types.ts --format json   # Full description as JSON
  fakegen schema types.ts --strict        # Fail on the first unsupported member`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func init() {
	SchemaCmd.Flags().StringVar(&schemaFormat, "format", display.FormatText, "Output format: text, json, yaml")
	SchemaCmd.Flags().BoolVar(&schemaStrict, "strict", false, "Fail on unsupported types instead of dropping them")
}

// schemaEntry is one declared type in the schema report
type schemaEntry struct {
	Name        string              `json:"name" yaml:"name"`
	Schema      *schema.Description `json:"schema,omitempty" yaml:"schema,omitempty"`
	Compact     string              `json:"compact,omitempty" yaml:"compact,omitempty"`
	Unsupported string              `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
}

// schemaReport is the output of fakegen schema
type schemaReport struct {
	File    string        `json:"file" yaml:"file"`
	Types   []schemaEntry `json:"types" yaml:"types"`
	Dropped []schema.Drop `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	strict := cfg.Generate.Strict
	if cmd.Flags().Changed("strict") {
		strict = schemaStrict
	}

	report, err := buildSchemaReport(inputPath(args), strict)
	if err != nil {
		return err
	}

	if schemaFormat == display.FormatText {
		display.ConfigureColor(display.ColorEnabled(cfg.Output.Color, cmd.OutOrStdout()))
		return writeSchemaText(cmd.OutOrStdout(), report)
	}
	return display.Output(cmd.OutOrStdout(), schemaFormat, report)
}

func buildSchemaReport(path string, strict bool) (*schemaReport, error) {
	in, err := fixture.ReadInput(path)
	if err != nil {
		return nil, err
	}
	prog, err := parser.ParseFile(in.Name, in.Source)
	if err != nil {
		return nil, err
	}

	registry := rewrite.NewRegistry(prog, schema.Options{Strict: strict}).
		WithLogger(logger.Named("schema"))
	report := &schemaReport{File: in.Name, Types: []schemaEntry{}}
	for _, name := range registry.Names() {
		entry := schemaEntry{Name: name}
		s, err := registry.Schema(name)
		switch {
		case err == nil:
			d := schema.Describe(s)
			entry.Schema = &d
			entry.Compact = s.String()
		case !strict && errors.IsUnsupportedType(err):
			entry.Unsupported = errors.UnwrapAll(err).Error()
		default:
			return nil, err
		}
		report.Types = append(report.Types, entry)
	}
	report.Dropped = registry.Drops()
	return report, nil
}

func writeSchemaText(w io.Writer, report *schemaReport) error {
	for _, t := range report.Types {
		if t.Unsupported != "" {
			fmt.Fprintf(w, "%s: %s\n", t.Name, display.Warning("unsupported ("+t.Unsupported+")"))
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", t.Name, t.Compact)
	}
	for _, d := range report.Dropped {
		fmt.Fprintln(w, display.Muted(fmt.Sprintf("dropped %s: %s", d.Path, d.Reason)))
	}
	return nil
}
