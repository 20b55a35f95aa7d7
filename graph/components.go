// SPDX-License-Identifier: MIT
// Package: isingcut/graph
//
// components.go — connected components over non-zero edges.
//
// Determinism:
//   • Seeds are taken in ascending vertex order.
//   • Each component is returned sorted ascending; components are ordered by
//     their smallest vertex.

package graph

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// Components partitions the vertices into connected components, where two
// vertices are adjacent iff their weight is non-zero. Isolated vertices form
// singleton components.
//
// Complexity: O(n²) (one Neighbors scan per visited vertex).
func (g *WeightedGraph) Components() [][]int {
	visited := mapset.NewThreadUnsafeSet()
	out := make([][]int, 0, 1)

	var (
		seed, v int
		queue   []int
		comp    []int
		nb      []int
	)
	for seed = 0; seed < g.n; seed++ {
		if visited.Contains(seed) {
			continue
		}
		visited.Add(seed)
		queue = append(queue[:0], seed)
		comp = []int{}

		// BFS; v is always in [0,n), so Neighbors cannot fail.
		for len(queue) > 0 {
			v, queue = queue[0], queue[1:]
			comp = append(comp, v)
			nb, _ = g.Neighbors(v)
			for _, u := range nb {
				if visited.Contains(u) {
					continue
				}
				visited.Add(u)
				queue = append(queue, u)
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
