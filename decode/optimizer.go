// SPDX-License-Identifier: MIT
// Package: isingcut/decode

package decode

import (
	"context"

	"github.com/katalvlaran/isingcut/ising"
)

// Optimizer is the black-box boundary for any solver of an Ising model:
// exhaustive, heuristic, variational or commercial. Its output is decoded
// and scored identically regardless of origin.
type Optimizer interface {
	Solve(ctx context.Context, m *ising.Model) (Candidate, error)
}

// OptimizerFunc adapts a plain function to Optimizer.
type OptimizerFunc func(ctx context.Context, m *ising.Model) (Candidate, error)

// Solve implements Optimizer.
func (f OptimizerFunc) Solve(ctx context.Context, m *ising.Model) (Candidate, error) {
	return f(ctx, m)
}
