package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qecsim/experiment"
)

func newSweepCmd(a *app) *cobra.Command {
	cfg := experiment.DefaultConfig()
	distances := []int{3, 5, 7}
	rates := []float64{0.0001, 0.0005, 0.001, 0.003, 0.005, 0.007, 0.01}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Benchmark logical error rates over distances and error rates",
		Long: `Runs one experiment per (distance, error rate) pair. Each point uses the
error rate for gate and measurement noise and as many rounds as its distance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := experiment.Sweep(cmd.Context(), cfg, distances, rates, a.logger)
			if err != nil {
				return err
			}
			results := make([]*experiment.Result, 0, len(points))
			for _, p := range points {
				results = append(results, p.Result)
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&distances, "distances", distances, "code distances")
	fs.Float64SliceVar(&rates, "rates", rates, "physical error rates")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "trials per point")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "experiment seed")
	fs.IntVar(&cfg.Neighbours, "neighbours", cfg.Neighbours, "nearest defects considered per defect")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers")

	return cmd
}
