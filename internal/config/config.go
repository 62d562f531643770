// Package config holds the settings of the maxsub command.
//
// Settings are read from an optional YAML file on top of Default, and can
// then be overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/dataset"
	"github.com/exascience/maxsub/internal/logging"
)

// Config is the complete configuration of the maxsub command.
type Config struct {
	// Data contains settings for generating and storing input sequences.
	Data DataConfig `yaml:"data"`

	// Solver contains settings for solving and timing.
	Solver SolverConfig `yaml:"solver"`

	// Report contains settings for the result report.
	Report ReportConfig `yaml:"report"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

// DataConfig describes the input sequence: where it is stored, and how
// generate produces it.
type DataConfig struct {
	File string `yaml:"file"`
	Size int    `yaml:"size"`
	Low  int64  `yaml:"low"`
	High int64  `yaml:"high"`
	// Seed of the generator. 0 selects a time-based seed.
	Seed int64 `yaml:"seed"`
}

// SolverConfig controls the solve command.
type SolverConfig struct {
	// Chunks for the parallel strategy. 0 selects maxsub.DefaultChunks.
	Chunks int `yaml:"chunks"`
	Runs   int `yaml:"runs"`
}

// ReportConfig controls the report file written by solve in compare mode.
type ReportConfig struct {
	// File receives the report. Empty disables the report file.
	File string `yaml:"file"`
}

// LogConfig selects the level (debug, info, warn, error) and the format
// (text, json) of log output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			File: "input_data.txt",
			Size: 10_000_000,
			Low:  dataset.DefaultLow,
			High: dataset.DefaultHigh,
		},
		Solver: SolverConfig{Runs: 1},
		Report: ReportConfig{File: "result.txt"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path on top of Default. Fields missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %v: %w", path, err)
	}
	return cfg, nil
}

// EffectiveChunks returns the configured chunk count, or
// maxsub.DefaultChunks if none is configured.
func (c Config) EffectiveChunks() int {
	if c.Solver.Chunks > 0 {
		return c.Solver.Chunks
	}
	return maxsub.DefaultChunks()
}

// Validate checks the configuration for consistency.
//
// Validate does not check the generator bounds for overflow, since they do
// not apply to sequences that are only loaded. See ValidateGenerate.
func (c Config) Validate() error {
	var errs []error
	if c.Data.Size < 0 {
		errs = append(errs, fmt.Errorf("data.size must not be negative: %v", c.Data.Size))
	}
	if c.Data.High < c.Data.Low {
		errs = append(errs, fmt.Errorf("data.low %v exceeds data.high %v", c.Data.Low, c.Data.High))
	}
	if c.Solver.Chunks < 0 {
		errs = append(errs, fmt.Errorf("solver.chunks must not be negative: %v", c.Solver.Chunks))
	}
	if c.Solver.Runs < 1 {
		errs = append(errs, fmt.Errorf("solver.runs must be at least 1: %v", c.Solver.Runs))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if f := c.Log.Format; f != "" && f != logging.FormatText && f != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format: %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// ValidateGenerate checks the configuration like Validate, and additionally
// verifies that sums over a sequence generated with Data.Size elements in
// [Data.Low, Data.High] cannot overflow int64. Such a risk is reported as
// an *maxsub.OverflowError.
func (c Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return maxsub.CheckBounds(c.Data.Size, c.Data.Low, c.Data.High)
}
