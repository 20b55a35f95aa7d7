// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    weight and coupling matrices (square, symmetric, zero diagonal).
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks m[i][j] == m[j][i] exactly for all i<j.
// Assumes m is non-nil and square. Exact equality is intended: weights are
// written pairwise via SetSymmetric, so any drift is an ingestion bug.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix) error {
	n := m.Rows()

	var (
		i, j int
		a, b float64
		errA error
		errB error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, errA = m.At(i, j)
			b, errB = m.At(j, i)
			if errA != nil || errB != nil {
				return validatorErrorf("ValidateSymmetric", ErrOutOfRange)
			}
			if a != b {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, a, j, i, b, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks m[i][i] == 0 for all i.
// Assumes m is non-nil and square.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix) error {
	var (
		i   int
		v   float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if v != 0 {
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateCouplings is the composite guard for weight and coupling matrices:
// NotNil → Square → ZeroDiagonal → Symmetric.
// Complexity: O(n²).
func ValidateCouplings(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m); err != nil {
		return err
	}

	return ValidateSymmetric(m)
}
