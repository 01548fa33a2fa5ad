// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qecsim/rng"
	"github.com/katalvlaran/qecsim/surfacecode"
)

// Result aggregates the trials of one run.
type Result struct {
	Config        Config
	Trials        int
	LogicalErrors int
	Inconsistent  int
	Elapsed       time.Duration
}

// LogicalErrorRate is LogicalErrors / Trials.
func (r *Result) LogicalErrorRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.LogicalErrors) / float64(r.Trials)
}

type tally struct {
	trials, logical, inconsistent int
}

// Run executes cfg.Trials trials on min(cfg.Workers, cfg.Trials) workers. The
// first failing trial cancels the others; cancelling ctx stops every worker
// between trials. A nil logger disables logging.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := cfg.Workers
	if workers > cfg.Trials {
		workers = cfg.Trials
	}
	start := time.Now()
	tallies := make([]tally, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		share := cfg.Trials / workers
		if w < cfg.Trials%workers {
			share++
		}
		eg.Go(func() error {
			return runWorker(egCtx, cfg, w, share, &tallies[w], logger)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Config: cfg, Elapsed: time.Since(start)}
	for _, t := range tallies {
		res.Trials += t.trials
		res.LogicalErrors += t.logical
		res.Inconsistent += t.inconsistent
	}
	logger.Info("run complete",
		zap.Int("distance", cfg.Distance),
		zap.Float64("error_rate", cfg.ErrorRate),
		zap.Int("trials", res.Trials),
		zap.Int("logical_errors", res.LogicalErrors),
		zap.Int("inconsistent", res.Inconsistent),
		zap.Float64("logical_error_rate", res.LogicalErrorRate()),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

func runWorker(ctx context.Context, cfg Config, w, n int, out *tally, logger *zap.Logger) error {
	opts := cfg.Options()
	opts.Seed = rng.Derive(cfg.Seed, rng.StreamWorkerFirst+uint64(w))
	code, err := surfacecode.New(opts)
	if err != nil {
		return fmt.Errorf("experiment: worker %d: %w", w, err)
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		o, err := code.Trial(cfg.Neighbours)
		if err != nil {
			return fmt.Errorf("experiment: worker %d trial %d: %w", w, i, err)
		}
		out.trials++
		if o.Value != 0 {
			out.logical++
		}
		if !o.Consistent {
			out.inconsistent++
		}
	}
	logger.Debug("worker done",
		zap.Int("worker", w),
		zap.Int("trials", out.trials),
		zap.Int("logical_errors", out.logical))

	return nil
}

// Point is one cell of a sweep.
type Point struct {
	Distance  int
	ErrorRate float64
	Result    *Result
}

// Sweep runs base once per (distance, rate) pair, distances outermost. Each point
// uses rate for both gate and measurement noise and as many rounds as its
// distance.
func Sweep(ctx context.Context, base Config, distances []int, rates []float64, logger *zap.Logger) ([]Point, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	points := make([]Point, 0, len(distances)*len(rates))
	for _, d := range distances {
		for _, p := range rates {
			cfg := base
			cfg.Distance, cfg.Rounds = d, d
			cfg.ErrorRate, cfg.MeasurementErrorRate = p, p
			logger.Debug("sweep point", zap.Int("distance", d), zap.Float64("error_rate", p))
			res, err := Run(ctx, cfg, logger)
			if err != nil {
				return points, fmt.Errorf("experiment: sweep d=%d p=%g: %w", d, p, err)
			}
			points = append(points, Point{Distance: d, ErrorRate: p, Result: res})
		}
	}

	return points, nil
}
