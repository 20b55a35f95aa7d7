package ising_test

import (
	"fmt"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
)

// ExampleReduce shows the reduction of a single weighted edge: both cut
// assignments reach energy -1, which with offset -1 reconciles to cut 2.
func ExampleReduce() {
	g, _ := graph.FromMatrix([][]float64{{0, 2}, {2, 0}})
	m, _ := ising.Reduce(g)

	j, _ := m.Coupling(0, 1)
	fmt.Println("J01:", j, "offset:", m.Offset())
	for k := uint64(0); k < 4; k++ {
		x, _ := ising.FromIndex(k, 2)
		e, _ := m.EnergyOf(x)
		q, _ := m.QUBO().Evaluate(x)
		fmt.Println(x, e, q)
	}
	// Output:
	// J01: 0.5 offset: -1
	// 00 1 1
	// 01 -1 -1
	// 10 -1 -1
	// 11 1 1
}
