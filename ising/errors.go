// SPDX-License-Identifier: MIT
// Package: isingcut/ising
//
// errors.go — sentinel errors for the ising package.
// Callers match with errors.Is; implementations wrap with %w and context.

package ising

import "errors"

var (
	// ErrNilGraph indicates Reduce received a nil graph.
	ErrNilGraph = errors.New("ising: graph is nil")

	// ErrLengthMismatch indicates an assignment whose length differs from the
	// model's variable count.
	ErrLengthMismatch = errors.New("ising: assignment length mismatch")

	// ErrNotBinary indicates an Assignment entry outside {0,1}.
	ErrNotBinary = errors.New("ising: assignment value not in {0,1}")

	// ErrNotSpin indicates a Spins entry outside {-1,+1}.
	ErrNotSpin = errors.New("ising: spin value not in {-1,+1}")

	// ErrIndexRange indicates a bitstring index outside [0, 2^n) or an n that
	// cannot be represented in a 64-bit index.
	ErrIndexRange = errors.New("ising: bitstring index out of range")

	// ErrInvalidCouplings indicates a coupling matrix that is not square,
	// symmetric, zero-diagonal and finite. The matrix sentinel is joined.
	ErrInvalidCouplings = errors.New("ising: invalid coupling matrix")
)
