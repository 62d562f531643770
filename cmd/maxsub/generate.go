package main

import (
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/exascience/maxsub/dataset"
)

func (a *app) newGenerateCommand() *cobra.Command {
	var (
		file      string
		size      int
		low, high int64
		seed      int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random integer sequence and store it in a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if flags.Changed("file") {
				a.cfg.Data.File = file
			}
			if flags.Changed("size") {
				a.cfg.Data.Size = size
			}
			if flags.Changed("low") {
				a.cfg.Data.Low = low
			}
			if flags.Changed("high") {
				a.cfg.Data.High = high
			}
			if flags.Changed("seed") {
				a.cfg.Data.Seed = seed
			}
			if err := a.validateGenerate(); err != nil {
				return err
			}
			data := a.cfg.Data
			if data.Seed == 0 {
				data.Seed = time.Now().UnixNano()
			}
			a.logger.Info("generating sequence", "size", data.Size, "low", data.Low, "high", data.High, "seed", data.Seed)
			start := time.Now()
			seq := dataset.Generate(data.Size, data.Low, data.High, rand.New(rand.NewSource(data.Seed)))
			if err := dataset.Save(data.File, seq); err != nil {
				a.logger.Error("storing sequence failed", "file", data.File, "error", err)
				return err
			}
			elapsed := time.Since(start)
			a.logger.Debug("sequence stored", "file", data.File, "elapsed", elapsed)
			color.New(color.FgGreen).Fprintf(a.out, "Generated %v elements into %v in %v\n", len(seq), data.File, elapsed.Round(time.Millisecond))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&file, "file", a.cfg.Data.File, "output file")
	flags.IntVar(&size, "size", a.cfg.Data.Size, "number of elements")
	flags.Int64Var(&low, "low", a.cfg.Data.Low, "smallest element value")
	flags.Int64Var(&high, "high", a.cfg.Data.High, "largest element value")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 for a time-based seed)")
	return cmd
}
