// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every exported function returns one of these (wrapped with call-site
// context via %w); callers match with errors.Is. Nothing panics on bad input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned for non-positive row or column counts.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At/Set for an index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare rejects a weight or coupling matrix with r != c.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry rejects m[i][j] != m[j][i]; undirected weights and
	// Ising couplings are both symmetric.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal rejects self-loops and self-couplings.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaNInf rejects NaN or ±Inf entries.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix is returned when a nil Matrix is validated.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
