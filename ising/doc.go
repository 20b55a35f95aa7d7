// Package ising reduces a weighted max-cut instance to a quadratic cost
// model over ±1 spins and provides the assignment encodings shared by the
// solver, decoder and evaluator packages.
//
// Sign convention: minimizing Model.Energy maximizes the cut, and
// Energy(z) + Offset() equals the negated cut value. This inversion is a
// property of the reduction; report positive cut weights by negating.
//
// Example:
//
//	g, _ := graph.FromMatrix(w)
//	m, _ := ising.Reduce(g)
//	e, _ := m.EnergyOf(ising.Assignment{1, 0, 1, 1})
//	cut := -(e + m.Offset())
package ising
