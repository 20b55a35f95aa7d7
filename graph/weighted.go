// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// weighted.go — the immutable WeightedGraph and its read-only queries.
//
// Invariants (enforced by every constructor):
//   • n ≥ 1.
//   • w is n×n, symmetric, zero on the diagonal, and finite.
//   • Absent edges have weight 0; there is no separate edge set.
//   • Once returned to a caller a WeightedGraph is never mutated.

package graph

import (
	"fmt"

	"github.com/katalvlaran/isingcut/matrix"
)

// Method tags used in error context.
const (
	methodNew        = "New"
	methodFromMatrix = "FromMatrix"
	methodLoad       = "Load"
	methodRandom     = "Random"
	methodWeight     = "Weight"
)

// MaxVertices bounds n for every constructor: the dense n×n weight matrix
// of the largest graph takes 512 MiB.
const MaxVertices = 1 << 13

// Edge is one undirected, non-zero weighted edge with U < V.
type Edge struct {
	U int     `json:"u" yaml:"u"`
	V int     `json:"v" yaml:"v"`
	W float64 `json:"w" yaml:"w"`
}

// WeightedGraph is an undirected graph on vertices 0..n-1 stored as a dense
// symmetric weight matrix.
type WeightedGraph struct {
	n int
	w *matrix.Dense
}

// New returns an edgeless graph on n vertices.
// Errors: ErrTooFewVertices if n < 1, ErrTooManyVertices if n > MaxVertices.
// Complexity: O(n²).
func New(n int) (*WeightedGraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", methodNew, n, MaxVertices, ErrTooManyVertices)
	}
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return &WeightedGraph{n: n, w: w}, nil
}

// FromMatrix builds a graph from a literal weight matrix. The input is copied.
//
// Errors: ErrTooFewVertices for an empty matrix, otherwise ErrInvalidMatrix
// joined with the matrix sentinel (ErrNonSquare, ErrAsymmetry,
// ErrNonZeroDiagonal, ErrNaNInf, ErrOutOfRange for ragged rows).
//
// Complexity: O(n²).
func FromMatrix(w [][]float64) (*WeightedGraph, error) {
	if len(w) == 0 {
		return nil, fmt.Errorf("%s: empty matrix: %w", methodFromMatrix, ErrTooFewVertices)
	}
	d, err := matrix.FromRows(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodFromMatrix, ErrInvalidMatrix, err)
	}
	if err = matrix.ValidateCouplings(d); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodFromMatrix, ErrInvalidMatrix, err)
	}

	return &WeightedGraph{n: d.Rows(), w: d}, nil
}

// setEdge writes w into both (i,j) and (j,i). Used only while a graph is
// still private to its constructor.
func (g *WeightedGraph) setEdge(i, j int, w float64) error {
	return g.w.SetSymmetric(i, j, w)
}

// N returns the vertex count.
func (g *WeightedGraph) N() int { return g.n }

// Weight returns w[i][j].
// Errors: ErrVertexOutOfRange.
func (g *WeightedGraph) Weight(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, fmt.Errorf("%s(%d,%d): n=%d: %w", methodWeight, i, j, g.n, ErrVertexOutOfRange)
	}

	return g.w.At(i, j)
}

// Matrix returns an independent copy of the weight matrix.
// Complexity: O(n²).
func (g *WeightedGraph) Matrix() [][]float64 {
	return g.w.ToRows()
}

// Edges lists every non-zero edge (i<j) in row-major order.
// Complexity: O(n²).
func (g *WeightedGraph) Edges() []Edge {
	rows := g.w.ToRows()
	out := make([]Edge, 0, g.n)

	var i, j int
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if rows[i][j] != 0 {
				out = append(out, Edge{U: i, V: j, W: rows[i][j]})
			}
		}
	}

	return out
}

// TotalWeight returns Σ_{i<j} w_ij (negative weights included).
// Complexity: O(n²).
func (g *WeightedGraph) TotalWeight() float64 {
	rows := g.w.ToRows()

	var (
		i, j int
		sum  float64
	)
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			sum += rows[i][j]
		}
	}

	return sum
}

// Neighbors returns the vertices adjacent to v (non-zero weight), ascending.
// Errors: ErrVertexOutOfRange.
func (g *WeightedGraph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", v, g.n, ErrVertexOutOfRange)
	}
	out := make([]int, 0)

	var (
		u   int
		w   float64
		err error
	)
	for u = 0; u < g.n; u++ {
		if w, err = g.w.At(v, u); err != nil {
			return nil, err
		}
		if w != 0 {
			out = append(out, u)
		}
	}

	return out, nil
}
