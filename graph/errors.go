// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// errors.go — sentinel errors for the graph package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method/line context using %w.
//   • Option constructors (WithX) panic on programmer errors; everything else
//     returns errors.

package graph

import (
	"errors"
	"fmt"
)

// ErrFormat indicates malformed or inconsistent edge-list input: a missing or
// bad header, unparsable numbers, an edge count that does not match the
// declared m, an index outside [1,n], a self-loop or a duplicate edge.
// Usage: if errors.Is(err, ErrFormat) { /* report the offending line */ }.
var ErrFormat = errors.New("graph: malformed edge list")

// ErrTooFewVertices indicates that a vertex count is smaller than 1.
var ErrTooFewVertices = errors.New("graph: vertex count must be ≥ 1")

// ErrTooManyVertices indicates a vertex count above MaxVertices.
var ErrTooManyVertices = errors.New("graph: vertex count exceeds MaxVertices")

// ErrInvalidProbability indicates an edge probability outside [0,1] or NaN.
var ErrInvalidProbability = errors.New("graph: probability out of range")

// ErrInvalidWeightRange indicates a weight range for Random outside
// [0, MaxWeightRange].
var ErrInvalidWeightRange = errors.New("graph: weight range out of bounds")

// ErrNeedRandSource indicates that Random needs to draw random numbers but no
// RNG was supplied (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("graph: rng is required")

// ErrInvalidMatrix indicates that a literal weight matrix is not square,
// symmetric, zero-diagonal and finite. The underlying matrix sentinel is
// wrapped alongside, so errors.Is works for both.
var ErrInvalidMatrix = errors.New("graph: invalid weight matrix")

// ErrVertexOutOfRange indicates a vertex index outside [0,n).
var ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

// formatErrorf builds an ErrFormat-wrapped error tagged with the input line.
// line==0 means "end of input".
func formatErrorf(line int, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	if line == 0 {
		return fmt.Errorf("%s: end of input: %s: %w", methodLoad, inner, ErrFormat)
	}

	return fmt.Errorf("%s: line %d: %s: %w", methodLoad, line, inner, ErrFormat)
}
