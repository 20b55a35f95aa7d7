// SPDX-License-Identifier: MIT
// Package: isingcut/ising
//
// qubo.go — the same cost expressed over 0/1 variables.
//
// Substituting z_i = 1 - 2·x_i into Σ_{i<j} a_ij·z_i·z_j (a_ij = 2·J_ij):
//
//	z_i·z_j = 1 - 2x_i - 2x_j + 4·x_i·x_j
//
// gives Constant = Σ a_ij, a linear term -2·Σ_{j≠i} a_ij on the diagonal and
// a pair term 4·a_ij above it. External optimizers that speak 0/1 consume
// this form; QUBO.Evaluate(x) == Model.EnergyOf(x) for every x.

package ising

import "fmt"

// QUBO is an upper-triangular quadratic form over x ∈ {0,1}^n.
// Q[i][i] holds linear coefficients; Q[i][j], i<j, holds pair coefficients.
type QUBO struct {
	Q        [][]float64 `json:"q" yaml:"q"`
	Constant float64     `json:"constant" yaml:"constant"`
}

// QUBO converts the model to its 0/1 form.
// Complexity: O(n²).
func (m *Model) QUBO() QUBO {
	rows := m.j.ToRows()
	q := make([][]float64, m.n)
	for i := range q {
		q[i] = make([]float64, m.n)
	}

	var (
		i, j     int
		a, konst float64
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			a = 2 * rows[i][j]
			if a == 0 {
				continue
			}
			konst += a
			q[i][i] -= 2 * a
			q[j][j] -= 2 * a
			q[i][j] = 4 * a
		}
	}

	return QUBO{Q: q, Constant: konst}
}

// Evaluate computes Constant + Σ_i Q_ii·x_i + Σ_{i<j} Q_ij·x_i·x_j.
// Errors: ErrLengthMismatch, ErrNotBinary.
func (q QUBO) Evaluate(x Assignment) (float64, error) {
	if len(x) != len(q.Q) {
		return 0, fmt.Errorf("QUBO.Evaluate: len=%d, n=%d: %w", len(x), len(q.Q), ErrLengthMismatch)
	}
	if err := x.Validate(); err != nil {
		return 0, err
	}

	sum := q.Constant
	for i := range x {
		if x[i] == 0 {
			continue
		}
		sum += q.Q[i][i]
		for j := i + 1; j < len(x); j++ {
			if x[j] == 1 {
				sum += q.Q[i][j]
			}
		}
	}

	return sum, nil
}
