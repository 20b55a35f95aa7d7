// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// options.go — functional options for the Random generator.
//
// Contract:
//   • Options are functional (type Option func(*randomConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG); the
//     generator itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//     There is no process-global RNG anywhere in this package.

package graph

import "math/rand"

// Option customizes Random before sampling begins.
type Option func(*randomConfig)

// randomConfig aggregates the knobs used by Random.
type randomConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// newRandomConfig applies options in order (last wins).
func newRandomConfig(opts ...Option) randomConfig {
	cfg := randomConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (used verbatim).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The caller owns it; Random consumes
// draws from it, so do not share it across goroutines.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graph: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}
