package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/cmd/fakegen/commands"
	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/tsdecl/parser"
)

var rootCmd = &cobra.Command{
	Use:   "fakegen",
	Short: "fakegen - fill abstract fixture stubs with generated data",
	Long: `fakegen - fixture generation from TypeScript type declarations.

fakegen reads a declaration document, builds a schema for every declared
type, and implements abstract "fake" accessors so they return a literal
value matching their declared return type.

Available commands:
  generate - Fill stubs and print the original and transformed document
  schema   - Show the schema extracted for each declared type
  check    - Verify a committed fixture against a regeneration
  config   - Manage fakegen configuration
  version  - Show version information

Examples:
  fakegen generate                       # Reads ./example.ts
  fakegen generate types.ts --seed 42    # Reproducible output
  fakegen schema types.ts --format yaml  # Inspect extracted schemas
  fakegen check types.ts --against fixtures.ts --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")

		// Theme comes from config, but a broken config must not stop `config validate` from reporting it
		if cfg, err := config.Load(); err == nil && cfg.Log.Theme != "" {
			logger.SetTheme(cfg.Log.Theme)
		}
		if err := logger.Initialize(logJSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.SchemaCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError renders parse errors with their source excerpt and appends hints
func printError(err error) {
	if perr, ok := parser.AsParseError(err); ok {
		fmt.Fprintln(os.Stderr, perr.FormatTerminal())
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(os.Stderr, "Hint:", hint)
	}
}
