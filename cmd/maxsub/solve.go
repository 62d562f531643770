package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exascience/maxsub"
	"github.com/exascience/maxsub/bench"
	"github.com/exascience/maxsub/dataset"
	"github.com/exascience/maxsub/parallel"
	"github.com/exascience/maxsub/sequential"
)

// Solver modes.
const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
	modeCompare    = "compare"
)

func (a *app) newSolveCommand() *cobra.Command {
	var (
		file   string
		report string
		mode   string
		chunks int
		runs   int
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the maximum subarray sum of a stored sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("file") {
				a.cfg.Data.File = file
			}
			if flags.Changed("report") {
				a.cfg.Report.File = report
			}
			if flags.Changed("chunks") {
				a.cfg.Solver.Chunks = chunks
			}
			if flags.Changed("runs") {
				a.cfg.Solver.Runs = runs
			}
			if err := a.validate(); err != nil {
				return err
			}
			seq, err := a.load()
			if err != nil {
				return err
			}
			switch mode {
			case modeSequential:
				return a.solveOne(seq, modeSequential, func() (int64, error) {
					return sequential.Solve(seq), nil
				})
			case modeParallel:
				k := a.cfg.EffectiveChunks()
				return a.solveOne(seq, fmt.Sprintf("%v (%v chunks)", modeParallel, maxsub.EffectiveChunks(len(seq), k)), func() (int64, error) {
					return parallel.Solve(seq, k)
				})
			case modeCompare:
				return a.compare(seq)
			default:
				return fmt.Errorf("%w: %q", errUnknownMode, mode)
			}
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&file, "file", a.cfg.Data.File, "input file")
	flags.StringVar(&report, "report", a.cfg.Report.File, "report file for compare mode (empty to disable)")
	flags.StringVar(&mode, "mode", modeCompare, "sequential, parallel, or compare")
	flags.IntVar(&chunks, "chunks", 0, "number of parallel chunks (0 for GOMAXPROCS)")
	flags.IntVar(&runs, "runs", a.cfg.Solver.Runs, "number of timed runs per strategy")
	return cmd
}

// load reads the input sequence and rejects sequences without a defined
// maximum subarray sum, or whose sums may overflow.
func (a *app) load() ([]int64, error) {
	file := a.cfg.Data.File
	a.logger.Info("reading sequence", "file", file)
	seq, err := dataset.Load(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		a.logger.Error("input file not found, run generate first", "file", file)
		return nil, err
	case err != nil:
		a.logger.Error("reading sequence failed", "file", file, "error", err)
		return nil, err
	}
	if len(seq) == 0 {
		a.logger.Error("input sequence is empty", "file", file)
		return nil, maxsub.ErrEmptyInput
	}
	if err := maxsub.CheckSequence(seq); err != nil {
		a.logger.Error("input sequence rejected", "file", file, "error", err)
		return nil, err
	}
	a.logger.Debug("sequence read", "elements", len(seq))
	return seq, nil
}

func (a *app) solveOne(seq []int64, name string, f func() (int64, error)) error {
	result, err := bench.Measure(name, a.cfg.Solver.Runs, f)
	if err != nil {
		a.logger.Error("solving failed", "strategy", name, "error", err)
		return err
	}
	a.logger.Info("solved", "strategy", name, "elements", len(seq), "result", result.Value, "mean", result.Mean())
	fmt.Fprintf(a.out, "Strategy: %v\n", name)
	color.New(color.FgGreen, color.Bold).Fprintf(a.out, "Max Sum: %v\n", result.Value)
	fmt.Fprintf(a.out, "Time: %v\n", result.Mean())
	return nil
}

func (a *app) compare(seq []int64) error {
	k := a.cfg.EffectiveChunks()
	c, err := bench.Compare(seq, k, a.cfg.Solver.Runs)
	if errors.Is(err, bench.ErrMismatch) {
		color.New(color.FgRed, color.Bold).Fprintln(a.out, "Results do not match!")
	}
	if err != nil {
		a.logger.Error("comparison failed", "chunks", k, "error", err)
		return err
	}
	a.logger.Info("compared", "run", c.Run, "elements", c.Elements, "chunks", c.Chunks,
		"result", c.Sequential.Value, "sequential", c.Sequential.Mean(), "parallel", c.Parallel.Mean())

	fmt.Fprintf(a.out, "Elements: %v, chunks: %v\n", c.Elements, c.Chunks)
	color.New(color.FgGreen, color.Bold).Fprintf(a.out, "Max Sum: %v\n", c.Sequential.Value)
	fmt.Fprintf(a.out, "Sequential: %v\n", c.Sequential.Mean())
	fmt.Fprintf(a.out, "Parallel: %v\n", c.Parallel.Mean())
	speedup := color.New(color.FgGreen)
	if c.Speedup() < 1 {
		speedup = color.New(color.FgYellow)
	}
	speedup.Fprintf(a.out, "Speedup: %.2fx\n", c.Speedup())

	if a.cfg.Report.File == "" {
		return nil
	}
	return a.writeReport(c, seq)
}

func (a *app) writeReport(c bench.Comparison, seq []int64) (err error) {
	f, err := os.Create(a.cfg.Report.File)
	if err != nil {
		a.logger.Error("creating report failed", "file", a.cfg.Report.File, "error", err)
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = c.WriteReport(f, seq); err != nil {
		a.logger.Error("writing report failed", "file", a.cfg.Report.File, "error", err)
		return err
	}
	a.logger.Info("report written", "file", a.cfg.Report.File, "run", c.Run)
	fmt.Fprintf(a.out, "Report: %v\n", a.cfg.Report.File)
	return nil
}
