package cut_test

import (
	"fmt"

	"github.com/katalvlaran/isingcut/cut"
	"github.com/katalvlaran/isingcut/decode"
	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
)

// ExampleEvaluate scores an optimizer's bitstring against the graph it was
// derived from.
func ExampleEvaluate() {
	g, _ := graph.FromMatrix([][]float64{
		{0, 8, -9, 0},
		{8, 0, 7, 9},
		{-9, 7, 0, -8},
		{0, 9, -8, 0},
	})
	m, _ := ising.Reduce(g)

	r, err := cut.Evaluate(g, m, decode.Bitstring{1, 0, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cut:", r.Cut, "energy:", r.Energy, "reconciled:", r.Reconciled)
	fmt.Println("sides:", r.Left, r.Right, "frustrated:", r.Frustrated)
	// Output:
	// cut: 24 energy: -20.5 reconciled: 24
	// sides: [1] [0 2 3] frustrated: 0
}
