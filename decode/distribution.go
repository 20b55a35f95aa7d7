// SPDX-License-Identifier: MIT
// Package: isingcut/decode
//
// distribution.go — reading a single answer out of a probability vector.
//
// Policy:
//   • Strict validation: length 2^n, finite non-negative weights, total mass
//     within Tolerance of 1. Violations are ErrDecode; nothing is rescaled
//     implicitly.
//   • Argmax ties resolve to the smallest index, so decoding is
//     deterministic for any input.

package decode

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/isingcut/ising"
)

const (
	// Tolerance bounds |Σp - 1| for a valid distribution.
	Tolerance = 1e-6

	// MaxDistributionBits caps n for dense distributions: 2^30 float64
	// weights already occupy 8 GiB.
	MaxDistributionBits = 30
)

// MostLikely returns the assignment whose index carries the largest weight,
// vertex 0 being the most significant bit of the index.
// Errors: ErrDecode.
// Complexity: O(2^n).
func MostLikely(p []float64, n int) (ising.Assignment, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}

	var (
		k, best uint64
		top     = p[0]
	)
	for k = 1; k < uint64(len(p)); k++ {
		if p[k] > top { // strict: earlier index wins ties
			top, best = p[k], k
		}
	}

	return ising.FromIndex(best, n)
}

// validate applies the strict distribution policy.
func validate(p []float64, n int) error {
	if n < 0 || n > MaxDistributionBits {
		return fmt.Errorf("MostLikely: n=%d outside [0,%d]: %w", n, MaxDistributionBits, ErrDecode)
	}
	if want := uint64(1) << uint(n); uint64(len(p)) != want {
		return fmt.Errorf("MostLikely: len=%d, want 2^%d=%d: %w", len(p), n, want, ErrDecode)
	}

	var sum float64
	for k, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("MostLikely: p[%d]=%g: %w", k, v, ErrDecode)
		}
		sum += v
	}
	if math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("MostLikely: total mass %g: %w", sum, ErrDecode)
	}

	return nil
}

// Normalize rescales non-negative weights to sum to 1. It is the explicit
// opt-in for optimizers that report unnormalized scores. The input is not
// modified. Errors: ErrDecode for negative/non-finite weights or zero mass.
func Normalize(p []float64) ([]float64, error) {
	var sum float64
	for k, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("Normalize: p[%d]=%g: %w", k, v, ErrDecode)
		}
		sum += v
	}
	if sum == 0 {
		return nil, fmt.Errorf("Normalize: zero mass: %w", ErrDecode)
	}
	out := make([]float64, len(p))
	for k, v := range p {
		out[k] = v / sum
	}

	return out, nil
}

// FromCounts turns sampled measurement counts keyed by bitstring ("0110",
// vertex 0 first) into a normalized Distribution over n variables.
// Errors: ErrDecode for malformed keys, negative counts or zero shots.
func FromCounts(counts map[string]int, n int) (Distribution, error) {
	if n < 0 || n > MaxDistributionBits {
		return Distribution{}, fmt.Errorf("FromCounts: n=%d outside [0,%d]: %w", n, MaxDistributionBits, ErrDecode)
	}
	p := make([]float64, uint64(1)<<uint(n))

	var shots int
	for key, c := range counts {
		b, err := ParseBitstring(strings.TrimSpace(key))
		if err != nil {
			return Distribution{}, fmt.Errorf("FromCounts: %w", err)
		}
		if len(b) != n {
			return Distribution{}, fmt.Errorf("FromCounts: key %q has %d bits, want %d: %w", key, len(b), n, ErrDecode)
		}
		if c < 0 {
			return Distribution{}, fmt.Errorf("FromCounts: key %q count %d: %w", key, c, ErrDecode)
		}
		k, err := ising.Assignment(b).Index()
		if err != nil {
			return Distribution{}, fmt.Errorf("FromCounts: %w: %w", ErrDecode, err)
		}
		p[k] += float64(c)
		shots += c
	}
	if shots == 0 {
		return Distribution{}, fmt.Errorf("FromCounts: no shots: %w", ErrDecode)
	}
	for k := range p {
		p[k] /= float64(shots)
	}

	return Distribution{N: n, P: p}, nil
}
