// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// random.go — seeded weighted random graph generator.
//
// Canonical model:
//   • Erdős–Rényi-like: each unordered pair {i,j}, i<j, becomes an edge
//     independently with probability p.
//   • An edge's weight is an integer drawn uniformly from [-R, R] inclusive.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1, not NaN (else ErrInvalidProbability).
//   • 0 ≤ R ≤ MaxWeightRange (else ErrInvalidWeightRange).
//   • An RNG is required whenever a draw is random, i.e. 0<p<1, or p>0 with
//     R>0 (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: i asc, then j asc (j>i).
//   • For each pair one Bernoulli draw; for each accepted pair one weight draw.
//   • Same seed ⇒ identical graph.
//
// Complexity: O(n²) time and memory.

package graph

import (
	"fmt"
	"math"
)

// MaxWeightRange bounds R so that the 2R+1 weight choices fit in an int on
// every platform and each weight is exactly representable.
const MaxWeightRange = 1 << 29

// Random samples a weighted graph on n vertices.
func Random(n int, p float64, weightRange int, opts ...Option) (*WeightedGraph, error) {
	// 1) Validate parameters early (fail fast, no side-effects on invalid input).
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandom, p, ErrInvalidProbability)
	}
	if weightRange < 0 || weightRange > MaxWeightRange {
		return nil, fmt.Errorf("%s: range=%d: %w", methodRandom, weightRange, ErrInvalidWeightRange)
	}

	cfg := newRandomConfig(opts...)
	stochastic := (p > 0 && p < 1) || (p > 0 && weightRange > 0)
	if stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}

	// 2) Sample edges in the documented order.
	var (
		i, j int
		w    float64
		span = 2*weightRange + 1
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !bernoulli(cfg, p) {
				continue
			}
			w = 0
			if weightRange > 0 {
				w = float64(cfg.rng.Intn(span) - weightRange)
			}
			if err = g.setEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("%s: edge (%d,%d): %w", methodRandom, i, j, err)
			}
		}
	}

	return g, nil
}

// bernoulli returns true with probability p. For p∈{0,1} no draw is consumed.
func bernoulli(cfg randomConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}
