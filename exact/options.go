// SPDX-License-Identifier: MIT
// Package: isingcut/exact
//
// options.go — functional options for Solve.
//
// Contract:
//   • Option constructors panic on meaningless inputs (programmer error);
//     Solve itself only returns sentinel errors.
//   • Zero values disable a limit (time, iterations); defaults are documented
//     on the constants below.

package exact

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/isingcut/ising"
)

// Defaults.
const (
	// DefaultMaxVariables bounds exhaustive search at 2^24 ≈ 16.7M assignments.
	DefaultMaxVariables = 24

	// DefaultWorkers keeps enumeration single-threaded unless asked otherwise.
	DefaultWorkers = 1

	// MaxVariablesCap is the hard ceiling for WithMaxVariables: indices must
	// fit in a uint64 with room for the 2^n loop bound.
	MaxVariablesCap = ising.MaxIndexBits - 1
)

// Option customizes a Solve call.
type Option func(*config)

// config aggregates all solver knobs.
type config struct {
	maxVars       int
	workers       int
	timeLimit     time.Duration // 0 ⇒ unlimited
	maxIterations uint64        // 0 ⇒ unlimited
	logger        *slog.Logger  // nil ⇒ silent
}

// newConfig applies options over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		maxVars: DefaultMaxVariables,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxVariables sets the enumeration limit n ≤ k.
// Panics unless 1 ≤ k ≤ MaxVariablesCap.
func WithMaxVariables(k int) Option {
	if k < 1 || k > MaxVariablesCap {
		panic(fmt.Sprintf("exact: WithMaxVariables(%d) outside [1,%d]", k, MaxVariablesCap))
	}
	return func(c *config) { c.maxVars = k }
}

// WithWorkers sets the number of goroutines enumerating disjoint index
// ranges. The answer does not depend on the worker count.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("exact: WithWorkers(%d)", w))
	}
	return func(c *config) { c.workers = w }
}

// WithTimeLimit sets a wall-clock budget; 0 disables it.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("exact: WithTimeLimit(%s)", d))
	}
	return func(c *config) { c.timeLimit = d }
}

// WithMaxIterations caps the number of evaluated assignments; 0 disables it.
// Since an exact answer needs all 2^n evaluations, a cap below 2^n fails
// with ErrTimeout before any work is done.
func WithMaxIterations(count uint64) Option {
	return func(c *config) { c.maxIterations = count }
}

// WithLogger attaches a structured logger for debug-level progress.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("exact: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
