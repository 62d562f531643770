package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/exascience/maxsub/internal/config"
	"github.com/exascience/maxsub/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.Default(), out: out}
	var (
		configFile string
		logLevel   string
		logFormat  string
	)
	root := &cobra.Command{
		Use:   "maxsub",
		Short: "Compute maximum subarray sums sequentially and in parallel",
		Long: `maxsub finds the largest sum of any non-empty contiguous run of integers
in a sequence, either with a single sequential fold or by summarizing
balanced chunks of the sequence in parallel.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			if configFile != "" {
				if a.cfg, err = config.Load(configFile); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				a.cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				a.cfg.Log.Format = logFormat
			}
			a.logger, err = logging.New(errOut, a.cfg.Log.Level, a.cfg.Log.Format)
			return err
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatText, "log format (text, json)")
	root.AddCommand(a.newGenerateCommand(), a.newSolveCommand(), a.newVersionCommand())
	return root
}

// validate checks the configuration after flags have been applied, and
// logs the problems found.
func (a *app) validate() error {
	return a.logInvalid(a.cfg.Validate())
}

// validateGenerate is validate with the generator overflow check.
func (a *app) validateGenerate() error {
	return a.logInvalid(a.cfg.ValidateGenerate())
}

func (a *app) logInvalid(err error) error {
	if err != nil {
		a.logger.Error("invalid configuration", "error", err)
	}
	return err
}

var errUnknownMode = errors.New("unknown mode")
