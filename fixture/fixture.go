// Package fixture runs the whole pipeline on one declaration document:
// parse, rewrite stubs with generated data, and print the original and
// transformed text under their labels.
package fixture

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teranos/fakegen/config"
	"github.com/teranos/fakegen/errors"
	"github.com/teranos/fakegen/generate"
	"github.com/teranos/fakegen/logger"
	"github.com/teranos/fakegen/random"
	"github.com/teranos/fakegen/rewrite"
	"github.com/teranos/fakegen/schema"
	"github.com/teranos/fakegen/tsdecl/parser"
	"github.com/teranos/fakegen/tsdecl/printer"
)

// DefaultInputPath is read when no document is named
const DefaultInputPath = "./example.ts"

// Default output labels
const (
	DefaultOriginalLabel    = "original -> "
	DefaultTransformedLabel = "transformed -> "
)

// Input is one declaration document
type Input struct {
	Name   string // file name used in diagnostics
	Source string
}

// ReadInput loads a document from disk
func ReadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Input{}, errors.WithHint(
				errors.NewNotFoundError("input %s does not exist", path),
				"pass the declaration file as an argument, e.g. fakegen generate types.ts",
			)
		}
		return Input{}, errors.Wrapf(err, "failed to read %s", path)
	}
	return Input{Name: path, Source: string(data)}, nil
}

// Options controls one run
type Options struct {
	// Seed 0 draws a fresh seed; the seed used is reported in the Result
	Seed             int64
	Strict           bool
	StubPrefix       string
	Bounds           generate.Bounds
	OriginalLabel    string
	TransformedLabel string
}

// DefaultOptions matches the built-in configuration
func DefaultOptions() Options {
	return Options{
		StubPrefix:       rewrite.DefaultStubPrefix,
		Bounds:           generate.DefaultBounds(),
		OriginalLabel:    DefaultOriginalLabel,
		TransformedLabel: DefaultTransformedLabel,
	}
}

// OptionsFromConfig maps loaded configuration onto run options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Seed:             cfg.Generate.Seed,
		Strict:           cfg.Generate.Strict,
		StubPrefix:       cfg.Rewrite.StubPrefix,
		Bounds:           generate.BoundsFromConfig(cfg.Generate),
		OriginalLabel:    cfg.Output.OriginalLabel,
		TransformedLabel: cfg.Output.TransformedLabel,
	}
}

// Result is everything one run produced
type Result struct {
	RunID       string               `json:"run_id" yaml:"run_id"`
	File        string               `json:"file" yaml:"file"`
	Seed        int64                `json:"seed" yaml:"seed"`
	Original    string               `json:"original" yaml:"original"`
	Transformed string               `json:"transformed" yaml:"transformed"`
	Stubs       []rewrite.StubReport `json:"stubs" yaml:"stubs"`
	Dropped     []schema.Drop        `json:"dropped,omitempty" yaml:"dropped,omitempty"`
	DurationMS  int64                `json:"duration_ms" yaml:"duration_ms"`

	originalLabel    string
	transformedLabel string
}

// Text is the console output: each print preceded by its label on its own line
func (r *Result) Text() string {
	var sb strings.Builder
	sb.WriteString(r.originalLabel)
	sb.WriteByte('\n')
	sb.WriteString(r.Original)
	sb.WriteByte('\n')
	sb.WriteString(r.transformedLabel)
	sb.WriteByte('\n')
	sb.WriteString(r.Transformed)
	return sb.String()
}

// Labels returns the labels the result was produced with
func (r *Result) Labels() (original, transformed string) {
	return r.originalLabel, r.transformedLabel
}

// Filled counts stubs that received generated bodies
func (r *Result) Filled() int {
	n := 0
	for _, s := range r.Stubs {
		if s.Status == rewrite.StatusFilled {
			n++
		}
	}
	return n
}

// Run parses in, fills its stubs and prints both versions
func Run(ctx context.Context, in Input, opts Options) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.LoggerFromContext(ctx).Named("fixture")

	if opts.StubPrefix == "" {
		opts.StubPrefix = rewrite.DefaultStubPrefix
	}
	if err := opts.Bounds.Validate(); err != nil {
		return nil, err
	}

	prog, err := parser.ParseFile(in.Name, in.Source)
	if err != nil {
		return nil, err
	}

	var src *random.Source
	if opts.Seed == 0 {
		src = random.NewUnseeded()
	} else {
		src = random.New(opts.Seed)
	}
	log.Debugw("starting run",
		logger.FieldFile, in.Name,
		logger.FieldSeed, src.Seed(),
	)

	registry := rewrite.NewRegistry(prog, schema.Options{Strict: opts.Strict}).
		WithLogger(log.Named("schema"))
	rw := rewrite.New(registry, generate.New(src), rewrite.Options{
		StubPrefix: opts.StubPrefix,
		Bounds:     opts.Bounds,
		Strict:     opts.Strict,
	})
	transformed, stubs, err := rw.Rewrite(ctx, prog)
	if err != nil {
		return nil, errors.Wrapf(err, "rewrite %s", in.Name)
	}

	res := &Result{
		RunID:            runID,
		File:             in.Name,
		Seed:             src.Seed(),
		Original:         printer.Print(prog),
		Transformed:      printer.Print(transformed),
		Stubs:            stubs,
		Dropped:          registry.Drops(),
		DurationMS:       time.Since(start).Milliseconds(),
		originalLabel:    opts.OriginalLabel,
		transformedLabel: opts.TransformedLabel,
	}
	log.Infow("run complete",
		logger.FieldFile, in.Name,
		logger.FieldCount, res.Filled(),
		logger.FieldDurationMS, res.DurationMS,
	)
	return res, nil
}
