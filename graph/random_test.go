package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/stretchr/testify/require"
)

func TestRandomDeterministic(t *testing.T) {
	a, err := graph.Random(9, 0.5, 10, graph.WithSeed(7))
	require.NoError(t, err)
	b, err := graph.Random(9, 0.5, 10, graph.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a.Matrix(), b.Matrix())

	// An explicit generator with the same seed produces the same graph.
	c, err := graph.Random(9, 0.5, 10, graph.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.Equal(t, a.Matrix(), c.Matrix())
}

func TestRandomWeightsInRange(t *testing.T) {
	const R = 3
	g, err := graph.Random(12, 1, R, graph.WithSeed(11))
	require.NoError(t, err)

	w := g.Matrix()
	for i := range w {
		require.Zero(t, w[i][i])
		for j := range w[i] {
			require.Equal(t, w[i][j], w[j][i])
			require.GreaterOrEqual(t, w[i][j], float64(-R))
			require.LessOrEqual(t, w[i][j], float64(R))
			require.Equal(t, float64(int(w[i][j])), w[i][j]) // integer-valued
		}
	}
}

func TestRandomDegenerateProbabilities(t *testing.T) {
	// p=0 needs no RNG and yields an edgeless graph.
	g, err := graph.Random(5, 0, 10)
	require.NoError(t, err)
	require.Empty(t, g.Edges())
	require.Len(t, g.Components(), 5)

	// p=1 with R=0 is fully deterministic (all weights zero).
	g, err = graph.Random(5, 1, 0)
	require.NoError(t, err)
	require.Zero(t, g.TotalWeight())
}

func TestRandomErrors(t *testing.T) {
	_, err := graph.Random(0, 0.5, 1, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrTooFewVertices)

	_, err = graph.Random(3, 1.5, 1, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrInvalidProbability)

	_, err = graph.Random(3, -0.1, 1, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrInvalidProbability)

	_, err = graph.Random(3, math.NaN(), 1, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrInvalidProbability)

	_, err = graph.Random(3, 0.5, -1, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrInvalidWeightRange)

	_, err = graph.Random(3, 1, math.MaxInt, graph.WithSeed(1))
	require.ErrorIs(t, err, graph.ErrInvalidWeightRange)

	_, err = graph.Random(graph.MaxVertices+1, 0, 0)
	require.ErrorIs(t, err, graph.ErrTooManyVertices)

	_, err = graph.Random(3, 0.5, 1)
	require.ErrorIs(t, err, graph.ErrNeedRandSource)

	_, err = graph.Random(3, 1, 4)
	require.ErrorIs(t, err, graph.ErrNeedRandSource)

	require.Panics(t, func() { graph.WithRand(nil) })
}

func TestRandomMaxWeightRange(t *testing.T) {
	g, err := graph.Random(6, 1, graph.MaxWeightRange, graph.WithSeed(2))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.LessOrEqual(t, math.Abs(e.W), float64(graph.MaxWeightRange))
		require.Equal(t, math.Trunc(e.W), e.W)
	}
}
