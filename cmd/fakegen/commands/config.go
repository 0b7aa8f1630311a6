package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/display"
	"github.com/teranos/fakegen/errors"
)

// ConfigCmd manages configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fakegen configuration",
	Long: `Display and manage fakegen configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (FAKEGEN_* prefix, e.g. FAKEGEN_GENERATE_SEED)
3. Project config (./fakegen.toml, searched upward from the working directory)
4. User config (~/.fakegen/fakegen.toml)
5. Default values

Examples:
  fakegen config show                    # Show current configuration
  fakegen config show --format json      # Show configuration in JSON format
  fakegen config get generate.seed       # Get specific config value
  fakegen config validate                # Validate current configuration
  fakegen config init                    # Write defaults to ./fakegen.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current fakegen configuration merged from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., generate.seed, rewrite.stub_prefix)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current fakegen configuration is valid",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show which configuration files are loaded",
	RunE:  runConfigWhere,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to a file",
	RunE:  runConfigInit,
}

var (
	configFormat    string
	configInitPath  string
	configInitForce bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", display.FormatTOML, "Output format: toml, json, yaml")
	configInitCmd.Flags().StringVar(&configInitPath, "path", config.FileName, "File to write")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file (a .back1 copy is kept)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	out := cmd.OutOrStdout()
	switch configFormat {
	case display.FormatTOML:
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# fakegen configuration\n%s", data)
		return nil
	case display.FormatJSON, display.FormatYAML:
		return display.Output(out, configFormat, cfg)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !config.IsSet(key) {
		return errors.NewNotFoundError("configuration key %q not found", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), display.Success("Configuration is valid"))
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintln(out, "  2. [USER]     "+config.UserConfigPath())
	fmt.Fprintln(out, "  3. [PROJECT]  ./"+config.FileName+" (searches up directories)")
	fmt.Fprintln(out, "  4. [ENV]      FAKEGEN_* environment variables")
	fmt.Fprintln(out)

	sources := config.Sources()
	if len(sources) == 0 {
		fmt.Fprintln(out, display.Muted("No configuration files found; using defaults"))
		return nil
	}
	for _, s := range sources {
		fmt.Fprintln(out, display.Success(s))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configInitPath); err == nil && !configInitForce {
		return errors.WithHint(
			errors.Newf("%s already exists", configInitPath),
			"pass --force to overwrite it",
		)
	}
	if err := config.Save(config.Default(), configInitPath); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), display.Success("Wrote "+configInitPath))
	return nil
}
