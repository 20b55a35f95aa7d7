// Package cut scores vertex assignments against the original graph.
//
// Value is the ground-truth objective Σ w_ij over edges whose endpoints are
// labeled differently. Reconcile turns an Ising energy back into cut units,
// CheckConsistent cross-checks the two, and Evaluate/Score assemble a
// Report (energy, offset, cut, partition) ready for printing or
// serialization.
package cut
