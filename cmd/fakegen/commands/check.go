package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/display"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/fixture"
)

var (
	checkFlags   runFlags
	checkAgainst string
	checkJSON    bool
)

// CheckCmd verifies a committed fixture
var CheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Verify a committed fixture against a regeneration",
	Long: `Regenerate a fixture with a fixed seed and compare it with a committed file.

The seed is taken from --seed, or from the "// fakegen: seed=N" header
written by fakegen generate --output. Header lines and trailing whitespace
are ignored. Exits non-zero when the committed fixture is out of date.

Examples:
  fakegen check types.ts --against fixtures.ts
  fakegen check types.ts --against fixtures.ts --seed 42 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkFlags.register(CheckCmd)
	CheckCmd.Flags().StringVar(&checkAgainst, "against", "", "Committed fixture to compare with")
	CheckCmd.Flags().BoolVarP(&checkJSON, "json", "j", false, "Output the comparison as JSON")
	_ = CheckCmd.MarkFlagRequired("against")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := checkFlags.options(cmd, cfg)

	if !cmd.Flags().Changed("seed") {
		committed, err := os.ReadFile(checkAgainst)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read %s", checkAgainst)
		}
		if seed, ok := fixture.SeedFromHeader(committed); ok {
			opts.Seed = seed
		}
	}
	if opts.Seed == 0 {
		return errors.WithHint(
			errors.NewInvalidConfigf("check needs a fixed seed"),
			"pass --seed or regenerate the fixture with fakegen generate --seed N --output",
		)
	}

	in, err := fixture.ReadInput(inputPath(args))
	if err != nil {
		return err
	}
	res, err := fixture.Run(cmd.Context(), in, opts)
	if err != nil {
		return err
	}

	result, checkErr := fixture.CheckFile(checkAgainst, []byte(checkFlags.fixtureBody(res)))
	if result == nil {
		return checkErr
	}
	if checkJSON || display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		return checkErr
	}

	out := cmd.OutOrStdout()
	display.ConfigureColor(display.ColorEnabled(cfg.Output.Color, out))
	if result.UpToDate {
		fmt.Fprintln(out, display.Success(fmt.Sprintf("%s is up to date (seed %d)", checkAgainst, res.Seed)))
		return nil
	}
	for _, d := range result.Differences {
		fmt.Fprintf(out, "line %d:\n  - %s\n  + %s\n", d.Line, d.Expected, d.Actual)
	}
	return checkErr
}
