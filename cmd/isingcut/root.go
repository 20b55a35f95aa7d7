// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingcut/graph"
)

// app carries the state shared by all subcommands once flags and config
// have been resolved.
type app struct {
	configPath string
	cfg        Config
	logger     *slog.Logger

	// flag targets, applied over cfg only when set on the command line
	logLevel      string
	output        string
	maxVars       int
	workers       int
	timeout       string
	maxIterations uint64

	graphPath string
	random    int
	p         float64
	weights   int
	seed      int64
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "isingcut",
		Short:         "Max-cut to Ising reduction, exact solving and candidate scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVarP(&a.output, "output", "o", formatYAML, "Output format: yaml, json, text")
	pf.IntVar(&a.maxVars, "max-vars", 0, "Largest instance the exact solver accepts")
	pf.IntVar(&a.workers, "workers", 0, "Goroutines used by the exact solver")
	pf.StringVar(&a.timeout, "timeout", "", "Wall-clock budget for the exact solver (e.g. 30s)")
	pf.Uint64Var(&a.maxIterations, "max-iterations", 0, "Cap on evaluated assignments (0 = none)")
	pf.StringVarP(&a.graphPath, "graph", "g", "", "Edge-list graph file")
	pf.IntVar(&a.random, "random", 0, "Generate a random graph with this many vertices")
	pf.Float64Var(&a.p, "p", 0, "Edge probability for --random")
	pf.IntVar(&a.weights, "range", 0, "Integer weights are drawn from [-range, range]")
	pf.Int64Var(&a.seed, "seed", 0, "Seed for --random")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newDecodeCmd(a))

	return root
}

// setup loads the config file, overlays explicitly set flags and builds the
// logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("max-vars") {
		cfg.Solver.MaxVariables = a.maxVars
	}
	if flags.Changed("workers") {
		cfg.Solver.Workers = a.workers
	}
	if flags.Changed("timeout") {
		d, err := parseDuration(a.timeout)
		if err != nil {
			return err
		}
		cfg.Solver.Timeout = d
	}
	if flags.Changed("max-iterations") {
		cfg.Solver.MaxIterations = a.maxIterations
	}
	if flags.Changed("random") {
		cfg.Random.N = a.random
	}
	if flags.Changed("p") {
		cfg.Random.P = a.p
	}
	if flags.Changed("range") {
		cfg.Random.Range = a.weights
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = a.seed
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// newLogger builds a text handler at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, errConfig)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadGraph resolves the graph source: --graph wins, otherwise a random
// instance is generated when --random (or random.n) is positive.
func (a *app) loadGraph() (*graph.WeightedGraph, error) {
	if a.graphPath != "" {
		g, err := graph.LoadFile(a.graphPath)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("graph loaded", "path", a.graphPath, "n", g.N(), "edges", len(g.Edges()))
		return g, nil
	}
	if a.cfg.Random.N > 0 {
		return a.randomGraph()
	}

	return nil, fmt.Errorf("no graph: pass --graph or --random: %w", errConfig)
}

func (a *app) randomGraph() (*graph.WeightedGraph, error) {
	r := a.cfg.Random
	g, err := graph.Random(r.N, r.P, r.Range, graph.WithSeed(r.Seed))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph generated",
		"n", r.N, "p", r.P, "range", r.Range, "seed", r.Seed, "edges", len(g.Edges()))

	return g, nil
}
