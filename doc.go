// Package isingcut reduces weighted maximum-cut problems to Ising models,
// solves small instances exactly and scores candidate solutions produced by
// external optimizers.
//
// Pipeline:
//
//	graph.Load / graph.Random      → *graph.WeightedGraph
//	ising.Reduce                   → *ising.Model (J, Offset)
//	exact.Solve                    → exact.Result (ground state, smallest index on ties)
//	decode.Decode / MostLikely     → ising.Assignment from a bitstring or distribution
//	cut.Value / cut.Evaluate       → cut value and cut.Report
//
// Subpackages:
//
//	matrix/    dense float64 storage with symmetry and diagonal validators
//	graph/     undirected weighted graph, edge-list I/O, seeded generator
//	ising/     reduction, energies, spin/bit conversions, QUBO view
//	exact/     exhaustive Gray-code search, limits, workers, metrics
//	decode/    Candidate variants and the external Optimizer boundary
//	cut/       ground-truth cut value, reconciliation, reports
//
// Sign convention: for every spin vector z,
//
//	Energy(z) + Offset == -cut(z)
//
// so the minimum energy corresponds to the maximum cut, and
// cut.Reconcile(energy, offset) recovers the cut value.
//
// Quick example (4 vertices):
//
//	g, _ := graph.FromMatrix([][]float64{
//		{0, 8, -9, 0},
//		{8, 0, 7, 9},
//		{-9, 7, 0, -8},
//		{0, 9, -8, 0},
//	})
//	m, _ := ising.Reduce(g)
//	res, _ := exact.Solve(context.Background(), m)
//	// res.Energy == -20.5, res.Offset == -3.5, res.Assignment == [0 1 0 0]
//	v, _ := cut.Value(res.Assignment, g) // 24
//
// The cmd/isingcut binary wraps the same pipeline behind a CLI.
package isingcut
