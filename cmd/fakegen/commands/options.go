package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/fixture"
)

// runFlags are the generation flags shared by generate and check
type runFlags struct {
	seed            int64
	strict          bool
	prefix          string
	transformedOnly bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (0 draws a fresh seed and reports it)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on unsupported types instead of dropping them")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "Stub method name prefix (default from rewrite.stub_prefix)")
	cmd.Flags().BoolVar(&f.transformedOnly, "transformed-only", false, "Emit only the transformed document")
}

// options layers explicitly set flags over configuration
func (f *runFlags) options(cmd *cobra.Command, cfg *config.Config) fixture.Options {
	opts := fixture.OptionsFromConfig(cfg)
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = f.strict
	}
	if cmd.Flags().Changed("prefix") && f.prefix != "" {
		opts.StubPrefix = f.prefix
	}
	return opts
}

// fixtureBody is the text saved by --output and compared by check
func (f *runFlags) fixtureBody(res *fixture.Result) string {
	if f.transformedOnly {
		return res.Transformed
	}
	return res.Text()
}

// loadConfig loads and validates configuration from all sources
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inputPath is the document named on the command line, or ./example.ts
func inputPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return fixture.DefaultInputPath
}
