package experiment_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/qecsim/experiment"
	"github.com/katalvlaran/qecsim/surfacecode"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quiet(trials, workers int) experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.ErrorRate, cfg.MeasurementErrorRate = 0, 0
	cfg.Trials, cfg.Workers = trials, workers
	return cfg
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := experiment.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.Options().Distance)
	require.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "distance: 5\nerror_rate: 0.002\ntrials: 20\nworkers: 2\n")
	cfg, err := experiment.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Distance)
	require.Equal(t, 0.002, cfg.ErrorRate)
	require.Equal(t, 20, cfg.Trials)
	require.Equal(t, 2, cfg.Workers)
	// Untouched keys keep their defaults.
	require.Equal(t, experiment.DefaultConfig().Neighbours, cfg.Neighbours)
	require.Equal(t, experiment.DefaultConfig().Rounds, cfg.Rounds)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := experiment.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = experiment.LoadConfig(writeFile(t, "distanse: 5\n"))
	require.Error(t, err)

	_, err = experiment.LoadConfig(writeFile(t, "distance: 4\n"))
	require.ErrorIs(t, err, experiment.ErrBadConfig)
	require.ErrorIs(t, err, surfacecode.ErrEvenDistance)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*experiment.Config)
	}{
		{"trials", func(c *experiment.Config) { c.Trials = 0 }},
		{"neighbours", func(c *experiment.Config) { c.Neighbours = 0 }},
		{"workers", func(c *experiment.Config) { c.Workers = 0 }},
		{"rate", func(c *experiment.Config) { c.ErrorRate = 2 }},
		{"rounds", func(c *experiment.Config) { c.Rounds = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := experiment.DefaultConfig()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), experiment.ErrBadConfig)
			_, err := experiment.Run(context.Background(), cfg, nil)
			require.ErrorIs(t, err, experiment.ErrBadConfig)
		})
	}
}

func TestRun_Noiseless(t *testing.T) {
	res, err := experiment.Run(context.Background(), quiet(30, 4), zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 30, res.Trials)
	require.Zero(t, res.LogicalErrors)
	require.Zero(t, res.Inconsistent)
	require.Zero(t, res.LogicalErrorRate())
}

func TestRun_MoreWorkersThanTrials(t *testing.T) {
	res, err := experiment.Run(context.Background(), quiet(3, 16), nil)
	require.NoError(t, err)
	require.Equal(t, 3, res.Trials)
}

func TestRun_Deterministic(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.ErrorRate, cfg.MeasurementErrorRate = 0.02, 0.02
	cfg.Trials, cfg.Workers, cfg.Seed = 24, 3, 99

	a, err := experiment.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := experiment.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Equal(t, a.LogicalErrors, b.LogicalErrors)
	require.Equal(t, a.Inconsistent, b.Inconsistent)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := experiment.Run(ctx, quiet(10, 2), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweep(t *testing.T) {
	points, err := experiment.Sweep(context.Background(), quiet(4, 2), []int{3, 5}, []float64{0, 0.001}, nil)
	require.NoError(t, err)
	require.Len(t, points, 4)
	require.Equal(t, 3, points[0].Distance)
	require.Equal(t, 0.001, points[1].ErrorRate)
	require.Equal(t, 5, points[2].Distance)
	for _, p := range points {
		require.Equal(t, 4, p.Result.Trials)
		require.Equal(t, p.Distance, p.Result.Config.Rounds)
	}
	require.Zero(t, points[0].Result.LogicalErrors)
	require.Zero(t, points[2].Result.LogicalErrors)

	_, err = experiment.Sweep(context.Background(), quiet(4, 2), []int{4}, []float64{0}, nil)
	require.ErrorIs(t, err, experiment.ErrBadConfig)
}

func TestResult_LogicalErrorRate(t *testing.T) {
	require.Zero(t, (&experiment.Result{}).LogicalErrorRate())
	require.Equal(t, 0.25, (&experiment.Result{Trials: 8, LogicalErrors: 2}).LogicalErrorRate())
}
