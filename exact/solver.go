// SPDX-License-Identifier: MIT
// Package: isingcut/exact

package exact

import (
	"context"

	"github.com/katalvlaran/isingcut/decode"
	"github.com/katalvlaran/isingcut/ising"
)

// Solver adapts Solve to the decode.Optimizer boundary so the exact oracle
// and external optimizers are interchangeable in a pipeline.
type Solver struct {
	opts []Option
}

var _ decode.Optimizer = (*Solver)(nil)

// NewSolver captures options applied to every Solve call.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// Solve returns the optimal assignment as a decode.Bitstring.
func (s *Solver) Solve(ctx context.Context, m *ising.Model) (decode.Candidate, error) {
	res, err := Solve(ctx, m, s.opts...)
	if err != nil {
		return nil, err
	}

	return decode.Bitstring(res.Assignment), nil
}
