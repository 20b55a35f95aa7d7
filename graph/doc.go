// Package graph models the input of the max-cut pipeline: an undirected,
// weighted graph stored as a dense symmetric matrix with zero diagonal.
//
// Construction paths:
//
//   - New(n):            an edgeless graph.
//   - FromMatrix(w):     a literal matrix, validated (square, symmetric,
//     zero diagonal, finite).
//   - Load(r)/LoadFile:  the strict "n m" + "i j w" edge-list format.
//   - Random(n,p,R,...): Erdős–Rényi-like sampling with integer weights in
//     [-R,R], seeded explicitly via WithSeed/WithRand.
//
// A WeightedGraph is immutable once returned; Matrix() and Edges() hand out
// copies. Write emits the same edge-list format Load accepts.
//
//	    1 ──8── 2
//	    │ ╲     │
//	   -9  7    9
//	    │     ╲ │
//	    3 ──-8─ 4
package graph
