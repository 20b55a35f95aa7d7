// SPDX-License-Identifier: MIT
// Package: isingcut/cut
//
// report.go — the structured reporting surface.

package cut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingcut/decode"
	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
)

// Report is everything a caller needs to print or serialize one solution.
type Report struct {
	Source     string           `json:"source" yaml:"source"`
	Energy     float64          `json:"energy" yaml:"energy"`
	Offset     float64          `json:"offset" yaml:"offset"`
	Cut        float64          `json:"cut" yaml:"cut"`
	Reconciled float64          `json:"reconciled" yaml:"reconciled"`
	Assignment ising.Assignment `json:"assignment" yaml:"assignment,flow"`
	Left       []int            `json:"left" yaml:"left,flow"`
	Right      []int            `json:"right" yaml:"right,flow"`
	Frustrated int              `json:"frustrated" yaml:"frustrated"`
}

// Evaluate decodes c against model m and scores it on g. Energy is the
// model energy of the decoded assignment, so Reconciled == Cut up to
// floating-point error whenever m was derived from g.
//
// Errors: ErrNilGraph, ErrLengthMismatch (model/graph size), decode.ErrDecode.
func Evaluate(g *graph.WeightedGraph, m *ising.Model, c decode.Candidate) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("Evaluate: %w", ErrNilGraph)
	}
	if m == nil || m.N() != g.N() {
		return Report{}, fmt.Errorf("Evaluate: model does not match graph: %w", ErrLengthMismatch)
	}
	x, err := decode.Decode(c, g.N())
	if err != nil {
		return Report{}, fmt.Errorf("Evaluate: %w", err)
	}

	return Score(g, m, x, c.Kind().String())
}

// Score builds a Report for an already decoded assignment.
// Errors: as for Value.
func Score(g *graph.WeightedGraph, m *ising.Model, x ising.Assignment, source string) (Report, error) {
	value, err := Value(x, g)
	if err != nil {
		return Report{}, fmt.Errorf("Score: %w", err)
	}
	if m == nil || m.N() != g.N() {
		return Report{}, fmt.Errorf("Score: model does not match graph: %w", ErrLengthMismatch)
	}
	energy, err := m.EnergyOf(x)
	if err != nil {
		return Report{}, fmt.Errorf("Score: %w", err)
	}
	frustrated, err := Frustrated(x, g)
	if err != nil {
		return Report{}, fmt.Errorf("Score: %w", err)
	}
	left, right := Partition(x)

	return Report{
		Source:     source,
		Energy:     energy,
		Offset:     m.Offset(),
		Cut:        value,
		Reconciled: Reconcile(energy, m.Offset()),
		Assignment: x,
		Left:       sortedInts(left),
		Right:      sortedInts(right),
		Frustrated: len(frustrated),
	}, nil
}

// CheckConsistent cross-checks a reported energy against the direct cut
// value. Errors: ErrInconsistent when |Reconcile(energy, offset) - cut| > tol.
func CheckConsistent(energy, offset, cutValue, tol float64) error {
	if d := math.Abs(Reconcile(energy, offset) - cutValue); d > tol {
		return fmt.Errorf("CheckConsistent: -(%g%+g)=%g vs cut %g: %w",
			energy, offset, Reconcile(energy, offset), cutValue, ErrInconsistent)
	}

	return nil
}
