package ising_test

import (
	"testing"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
	"github.com/katalvlaran/isingcut/matrix"
	"github.com/stretchr/testify/require"
)

func mustReduce(t *testing.T, w [][]float64) (*graph.WeightedGraph, *ising.Model) {
	t.Helper()
	g, err := graph.FromMatrix(w)
	require.NoError(t, err)
	m, err := ising.Reduce(g)
	require.NoError(t, err)
	return g, m
}

var fourVertex = [][]float64{
	{0, 8, -9, 0},
	{8, 0, 7, 9},
	{-9, 7, 0, -8},
	{0, 9, -8, 0},
}

func TestReduceFourVertex(t *testing.T) {
	_, m := mustReduce(t, fourVertex)
	require.Equal(t, 4, m.N())
	require.InDelta(t, -3.5, m.Offset(), 1e-12)

	j, err := m.Coupling(1, 3)
	require.NoError(t, err)
	require.Equal(t, 9.0/4, j)
	j, err = m.Coupling(3, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0/4, j)
	j, err = m.Coupling(2, 2)
	require.NoError(t, err)
	require.Zero(t, j)

	// Optimal labeling and its complement share the reference energy.
	for _, x := range []ising.Assignment{{1, 0, 1, 1}, {0, 1, 0, 0}} {
		e, err := m.EnergyOf(x)
		require.NoError(t, err)
		require.InDelta(t, -20.5, e, 1e-12)
		require.InDelta(t, -24.0, e+m.Offset(), 1e-12) // energy + offset = -cut
	}
}

func TestOffsetIsHalfTotalWeight(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := graph.Random(7, 0.6, 9, graph.WithSeed(seed))
		require.NoError(t, err)
		m, err := ising.Reduce(g)
		require.NoError(t, err)
		require.InDelta(t, g.TotalWeight(), -2*m.Offset(), 1e-9)
	}
}

func TestZeroGraphHasZeroEnergy(t *testing.T) {
	g, err := graph.New(5)
	require.NoError(t, err)
	m, err := ising.Reduce(g)
	require.NoError(t, err)
	require.Zero(t, m.Offset())

	for k := uint64(0); k < 32; k++ {
		x, err := ising.FromIndex(k, 5)
		require.NoError(t, err)
		e, err := m.EnergyOf(x)
		require.NoError(t, err)
		require.Zero(t, e)
	}
}

func TestEnergyErrors(t *testing.T) {
	_, m := mustReduce(t, fourVertex)

	_, err := m.Energy(ising.Spins{1, -1})
	require.ErrorIs(t, err, ising.ErrLengthMismatch)
	_, err = m.Energy(ising.Spins{1, -1, 0, 1})
	require.ErrorIs(t, err, ising.ErrNotSpin)
	_, err = m.EnergyOf(ising.Assignment{1, 0, 2, 1})
	require.ErrorIs(t, err, ising.ErrNotBinary)

	_, err = ising.Reduce(nil)
	require.ErrorIs(t, err, ising.ErrNilGraph)
}

func TestNewModel(t *testing.T) {
	_, ref := mustReduce(t, fourVertex)

	m, err := ising.NewModel(ref.Couplings(), ref.Offset())
	require.NoError(t, err)
	e, err := m.EnergyOf(ising.Assignment{1, 0, 1, 1})
	require.NoError(t, err)
	require.InDelta(t, -20.5, e, 1e-12)

	_, err = ising.NewModel([][]float64{{0, 1}, {2, 0}}, 0)
	require.ErrorIs(t, err, ising.ErrInvalidCouplings)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestQUBOMatchesEnergy(t *testing.T) {
	g, err := graph.Random(6, 0.7, 5, graph.WithSeed(3))
	require.NoError(t, err)
	m, err := ising.Reduce(g)
	require.NoError(t, err)
	q := m.QUBO()

	for k := uint64(0); k < 1<<6; k++ {
		x, err := ising.FromIndex(k, 6)
		require.NoError(t, err)
		want, err := m.EnergyOf(x)
		require.NoError(t, err)
		got, err := q.Evaluate(x)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-9, "index %d", k)
	}

	_, err = q.Evaluate(ising.Assignment{1})
	require.ErrorIs(t, err, ising.ErrLengthMismatch)
}
