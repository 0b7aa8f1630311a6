package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/display"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/fixture"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/rewrite"
	"github.com/teranos/fakegen/watcher"
)

var (
	generateFlags  runFlags
	generateJSON   bool
	generateOutput string
	generateWatch  bool
)

// GenerateCmd fills stubs in a declaration document
var GenerateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Fill fake stubs with generated data",
	Long: `Fill abstract stub methods with literal return values.

Every abstract class is scanned for parameterless abstract methods whose
name starts with the stub prefix ("fake" by default) and whose return type
names a declared type. Each stub gets a body returning a freshly generated
value matching that type. The original and transformed documents are
printed, each preceded by its label.

Examples:
  fakegen generate                           # Reads ./example.ts
  fakegen generate types.ts --seed 42        # Reproducible output
  fakegen generate types.ts --json           # Run report as JSON
  fakegen generate types.ts --seed 42 --output fixtures.ts
  fakegen generate types.ts --watch          # Regenerate on save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateFlags.register(GenerateCmd)
	GenerateCmd.Flags().BoolVarP(&generateJSON, "json", "j", false, "Output the run report as JSON")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the fixture to a file instead of stdout")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate when the document or configuration changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := inputPath(args)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := generateOnce(cmd, path, cfg); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}
	return watchAndGenerate(cmd, path)
}

// generateOnce runs the pipeline for path and writes the result
func generateOnce(cmd *cobra.Command, path string, cfg *config.Config) error {
	in, err := fixture.ReadInput(path)
	if err != nil {
		return err
	}
	res, err := fixture.Run(cmd.Context(), in, generateFlags.options(cmd, cfg))
	if err != nil {
		return err
	}

	switch {
	case generateJSON || display.ShouldOutputJSON(cmd):
		return display.OutputJSON(cmd.OutOrStdout(), res)
	case generateOutput != "":
		return writeFixture(cmd, res)
	default:
		display.ConfigureColor(display.ColorEnabled(cfg.Output.Color, cmd.OutOrStdout()))
		if err := writeText(cmd.OutOrStdout(), res, generateFlags.transformedOnly); err != nil {
			return err
		}
		printSummary(cmd.ErrOrStderr(), res)
		return nil
	}
}

// writeText prints the labelled documents
func writeText(w io.Writer, res *fixture.Result, transformedOnly bool) error {
	if transformedOnly {
		_, err := fmt.Fprintln(w, res.Transformed)
		return err
	}
	original, transformed := res.Labels()
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n",
		display.Label(original), res.Original,
		display.Label(transformed), res.Transformed,
	)
	return err
}

// writeFixture saves the fixture with a metadata header for check
func writeFixture(cmd *cobra.Command, res *fixture.Result) error {
	content := fixture.Header(res) + "\n" + generateFlags.fixtureBody(res) + "\n"
	if dir := filepath.Dir(generateOutput); dir != "." {
		if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(generateOutput, []byte(content), config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", generateOutput)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), display.Success(
		fmt.Sprintf("Generated %s (%d of %d stubs filled, seed %d)", generateOutput, res.Filled(), len(res.Stubs), res.Seed),
	))
	return nil
}

// printSummary reports the seed and any stubs left untouched
func printSummary(w io.Writer, res *fixture.Result) {
	for _, s := range res.Stubs {
		if s.Status == rewrite.StatusFilled || s.Status == rewrite.StatusSkipped {
			continue
		}
		fmt.Fprintln(w, display.Warning(fmt.Sprintf("%s.%s left unchanged: %s", s.Class, s.Member, s.Reason)))
	}
	for _, d := range res.Dropped {
		fmt.Fprintln(w, display.Warning(fmt.Sprintf("dropped %s: %s", d.Path, d.Reason)))
	}
	fmt.Fprintln(w, display.Muted(fmt.Sprintf("seed %d, %d of %d stubs filled", res.Seed, res.Filled(), len(res.Stubs))))
}

// watchAndGenerate reruns generation on every change to the document or config files
func watchAndGenerate(cmd *cobra.Command, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources := config.Sources()
	fw, err := watcher.New(append([]string{path}, sources...)...)
	if err != nil {
		return err
	}
	log := logger.Named("generate")
	fw.OnChange(func(changed string) error {
		if filepath.Base(changed) == config.FileName {
			config.Reset()
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log.Infow("regenerating", logger.FieldFile, changed)
		return generateOnce(cmd, path, cfg)
	})

	fmt.Fprintln(cmd.ErrOrStderr(), display.Muted(fmt.Sprintf("watching %s (Ctrl+C to stop)", path)))
	return fw.Run(ctx)
}
