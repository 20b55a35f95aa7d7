// SPDX-License-Identifier: MIT
// Package: isingcut/exact
//
// engine.go — Gray-code enumeration of one index range.
//
// Rationale (succinct):
//  1. The pair coefficients a_ij = 2·J_ij are prefetched into a dense
//     row-major buffer to remove interface overhead in the hot loop.
//  2. A range is identified by a prefix c of p high bits (variables 0..p-1,
//     vertex 0 = MSB); the remaining r = n-p variables are visited in
//     reflected Gray-code order, so consecutive assignments differ in one
//     spin and the energy updates in O(n) via local fields
//     f_k = Σ_{j≠k} a_kj·z_j:  flipping z_k changes E by -2·z_k·f_k.
//  3. Ties (|ΔE| ≤ tol) resolve to the smaller bitstring index; the caller
//     recomputes the winning energy exactly, so accumulated drift never
//     reaches the reported value.
//  4. Soft time limit: rare deadline checks (every 4096 steps) keep
//     overhead negligible.
//
// Complexity: O(2^r · n) time, O(n) extra memory per range.

package exact

import (
	"context"
	"math"
	"math/bits"
	"time"
)

// checkMask sets the deadline/cancellation polling period (4096 steps).
const checkMask = 1<<12 - 1

// relTol scales the tie tolerance with the coefficient magnitude Σ|a_ij|.
// The tolerance is purely relative: uniformly rescaled weights keep the same
// ordering, and an all-zero model compares energies exactly.
const relTol = 1e-9

// engine holds read-only search data shared by all ranges.
type engine struct {
	n   int
	a   []float64 // a[i*n+j] = 2·J_ij, zero diagonal
	tol float64

	useDeadline bool
	deadline    time.Time
}

// candidate is the best (energy, index) pair found in one range.
type candidate struct {
	energy float64
	index  uint64
}

// better reports whether c beats best under the (energy, index) order.
func (e *engine) better(c, best candidate) bool {
	if c.energy < best.energy-e.tol {
		return true
	}

	return c.energy <= best.energy+e.tol && c.index < best.index
}

// newEngine prefetches the couplings of an n-variable model.
func newEngine(couplings [][]float64) *engine {
	n := len(couplings)
	e := &engine{n: n, a: make([]float64, n*n)}

	var (
		i, j int
		mag  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			e.a[i*n+j] = 2 * couplings[i][j]
			if j > i {
				mag += math.Abs(e.a[i*n+j])
			}
		}
	}
	e.tol = relTol * mag

	return e
}

// check polls cancellation and the wall-clock budget.
func (e *engine) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeout
	}

	return nil
}

// run enumerates every assignment whose p high bits equal prefix.
func (e *engine) run(ctx context.Context, prefix uint64, p int) (candidate, error) {
	if err := e.check(ctx); err != nil {
		return candidate{}, err
	}

	n := e.n
	r := n - p
	z := make([]int8, n)
	f := make([]float64, n)

	var (
		i, j int
		bit  uint64
	)
	// Fixed prefix spins, then all low spins at +1 (x=0, Gray code 0).
	for i = 0; i < p; i++ {
		bit = prefix >> uint(p-1-i) & 1
		z[i] = 1 - 2*int8(bit)
	}
	for i = p; i < n; i++ {
		z[i] = 1
	}

	// Local fields and the starting energy E = ½·Σ_i z_i·f_i.
	var en float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			f[i] += e.a[i*n+j] * float64(z[j])
		}
		en += 0.5 * float64(z[i]) * f[i]
	}

	idx := prefix << uint(r)
	best := candidate{energy: en, index: idx}

	var (
		t, total uint64
		k, pos   int
		zk       float64
		row      []float64
	)
	total = uint64(1) << uint(r)
	for t = 1; t < total; t++ {
		if t&checkMask == 0 {
			if err := e.check(ctx); err != nil {
				return candidate{}, err
			}
		}

		// Gray step t flips bit position tz(t), counted from the LSB.
		pos = bits.TrailingZeros64(t)
		k = n - 1 - pos
		zk = float64(z[k])

		en -= 2 * zk * f[k]
		row = e.a[k*n : (k+1)*n]
		for j = 0; j < n; j++ {
			f[j] -= 2 * row[j] * zk // row[k]==0 keeps f[k] intact
		}
		z[k] = -z[k]
		idx ^= uint64(1) << uint(pos)

		if c := (candidate{energy: en, index: idx}); e.better(c, best) {
			if c.energy > best.energy {
				c.energy = best.energy // tie: keep the lower reference energy
			}
			best = c
		}
	}

	return best, nil
}
