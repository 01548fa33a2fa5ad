package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qecsim/surfacecode"
)

// ErrBadConfig wraps every configuration validation failure.
var ErrBadConfig = errors.New("experiment: invalid config")

// Config describes one Monte Carlo memory experiment.
type Config struct {
	Distance             int     `yaml:"distance"`
	Rounds               int     `yaml:"rounds"`
	ErrorRate            float64 `yaml:"error_rate"`
	MeasurementErrorRate float64 `yaml:"measurement_error_rate"`
	Trials               int     `yaml:"trials"`
	Seed                 uint64  `yaml:"seed"`
	Neighbours           int     `yaml:"neighbours"`
	Workers              int     `yaml:"workers"`
	FlipLimit            int     `yaml:"flip_limit"`
}

// DefaultConfig returns a distance-3, five-round experiment at 1% noise with one
// worker per CPU.
func DefaultConfig() Config {
	opts := surfacecode.DefaultOptions()
	return Config{
		Distance:             opts.Distance,
		Rounds:               opts.Rounds,
		ErrorRate:            opts.ErrorRate,
		MeasurementErrorRate: opts.MeasurementErrorRate,
		Trials:               1000,
		Seed:                 1,
		Neighbours:           10,
		Workers:              runtime.NumCPU(),
		FlipLimit:            opts.FlipLimit,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("experiment: read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("experiment: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Options converts the code-level fields into surfacecode.Options.
func (c Config) Options() surfacecode.Options {
	return surfacecode.Options{
		Distance:             c.Distance,
		Rounds:               c.Rounds,
		ErrorRate:            c.ErrorRate,
		MeasurementErrorRate: c.MeasurementErrorRate,
		Seed:                 c.Seed,
		FlipLimit:            c.FlipLimit,
	}
}

// Validate checks every field; failures match both ErrBadConfig and, for code
// fields, the surfacecode sentinel.
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials %d must be >= 1", ErrBadConfig, c.Trials)
	case c.Neighbours < 1:
		return fmt.Errorf("%w: neighbours %d must be >= 1", ErrBadConfig, c.Neighbours)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be >= 1", ErrBadConfig, c.Workers)
	}

	return nil
}
