// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isingcut/exact"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatText = "text"
)

var errConfig = errors.New("isingcut: invalid configuration")

// Config is the on-disk configuration (--config). Command-line flags
// override any value set here.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Output   string       `yaml:"output"`
	Solver   SolverConfig `yaml:"solver"`
	Random   RandomConfig `yaml:"random"`
}

// SolverConfig mirrors the exact solver options.
type SolverConfig struct {
	MaxVariables  int           `yaml:"max_variables"`
	Workers       int           `yaml:"workers"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxIterations uint64        `yaml:"max_iterations"`
}

// RandomConfig holds the defaults for generated instances.
type RandomConfig struct {
	N     int     `yaml:"n"`
	P     float64 `yaml:"p"`
	Range int     `yaml:"range"`
	Seed  int64   `yaml:"seed"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Output:   formatYAML,
		Solver: SolverConfig{
			MaxVariables: exact.DefaultMaxVariables,
			Workers:      exact.DefaultWorkers,
		},
		Random: RandomConfig{P: 0.5, Range: 10, Seed: 1},
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values the solver options would panic on.
func (c Config) validate() error {
	switch c.Output {
	case formatYAML, formatJSON, formatText:
	default:
		return fmt.Errorf("output %q: %w", c.Output, errConfig)
	}
	if c.Solver.MaxVariables < 1 || c.Solver.MaxVariables > exact.MaxVariablesCap {
		return fmt.Errorf("max_variables %d outside [1,%d]: %w",
			c.Solver.MaxVariables, exact.MaxVariablesCap, errConfig)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Solver.Workers, errConfig)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("timeout %s: %w", c.Solver.Timeout, errConfig)
	}

	return nil
}

// solverOptions translates the validated config into exact options.
func (c Config) solverOptions() []exact.Option {
	return []exact.Option{
		exact.WithMaxVariables(c.Solver.MaxVariables),
		exact.WithWorkers(c.Solver.Workers),
		exact.WithTimeLimit(c.Solver.Timeout),
		exact.WithMaxIterations(c.Solver.MaxIterations),
	}
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("timeout %q: %v: %w", s, err, errConfig)
	}

	return d, nil
}
