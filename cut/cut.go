// SPDX-License-Identifier: MIT
// Package: isingcut/cut
//
// cut.go — the ground-truth objective.
//
// Value is computed straight from the 0/1 assignment and the original
// weights, independent of the Ising sign convention; every solver is judged
// against it. Reconcile converts an energy back into cut units:
//
//	Reconcile(energy, offset) = -(energy + offset)

package cut

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
)

// DefaultTolerance is the absolute tolerance used by CheckConsistent callers
// that have no better estimate.
const DefaultTolerance = 1e-6

// check validates the (assignment, graph) pair shared by all evaluators.
func check(method string, a ising.Assignment, g *graph.WeightedGraph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if len(a) != g.N() {
		return fmt.Errorf("%s: len=%d, n=%d: %w", method, len(a), g.N(), ErrLengthMismatch)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// Value returns Σ_{i<j, x_i≠x_j} w_ij.
// Errors: ErrNilGraph, ErrLengthMismatch, ising.ErrNotBinary.
// Complexity: O(n²).
func Value(a ising.Assignment, g *graph.WeightedGraph) (float64, error) {
	if err := check("Value", a, g); err != nil {
		return 0, err
	}

	var sum float64
	for _, e := range g.Edges() {
		if a[e.U] != a[e.V] {
			sum += e.W
		}
	}

	return sum, nil
}

// Reconcile maps a solver energy onto the cut value: -(energy + offset).
func Reconcile(energy, offset float64) float64 {
	return -(energy + offset)
}

// Partition splits the vertices by label: left holds x_i = 0, right x_i = 1.
// Entries are assumed binary (see Assignment.Validate).
func Partition(a ising.Assignment) (left, right mapset.Set) {
	left, right = mapset.NewSet(), mapset.NewSet()
	for i, v := range a {
		if v == 0 {
			left.Add(i)
		} else {
			right.Add(i)
		}
	}

	return left, right
}

// sortedInts flattens a set of ints into ascending order.
func sortedInts(s mapset.Set) []int {
	out := make([]int, 0, s.Cardinality())
	for _, v := range s.ToSlice() {
		out = append(out, v.(int))
	}
	sort.Ints(out)

	return out
}

// Frustrated lists the edges that work against the cut under a: positive
// edges left uncut and negative edges that are cut. An assignment with no
// frustrated edges attains the trivial upper bound Σ max(w_ij, 0).
// Errors: as for Value.
func Frustrated(a ising.Assignment, g *graph.WeightedGraph) ([]graph.Edge, error) {
	if err := check("Frustrated", a, g); err != nil {
		return nil, err
	}
	out := make([]graph.Edge, 0)
	for _, e := range g.Edges() {
		cut := a[e.U] != a[e.V]
		if (e.W > 0 && !cut) || (e.W < 0 && cut) {
			out = append(out, e)
		}
	}

	return out, nil
}
