package graph_test

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/matrix"
	"github.com/stretchr/testify/require"
)

// fourVertex is the worked example used across the module's tests.
var fourVertex = [][]float64{
	{0, 8, -9, 0},
	{8, 0, 7, 9},
	{-9, 7, 0, -8},
	{0, 9, -8, 0},
}

func TestFromMatrix(t *testing.T) {
	g, err := graph.FromMatrix(fourVertex)
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.Equal(t, fourVertex, g.Matrix())
	require.InDelta(t, 7.0, g.TotalWeight(), 1e-12)

	w, err := g.Weight(3, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, w)

	_, err = g.Weight(4, 0)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	require.Equal(t, []graph.Edge{
		{U: 0, V: 1, W: 8}, {U: 0, V: 2, W: -9},
		{U: 1, V: 2, W: 7}, {U: 1, V: 3, W: 9},
		{U: 2, V: 3, W: -8},
	}, g.Edges())
}

func TestFromMatrixIsCopied(t *testing.T) {
	src := [][]float64{{0, 1}, {1, 0}}
	g, err := graph.FromMatrix(src)
	require.NoError(t, err)
	src[0][1] = 5

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	out := g.Matrix()
	out[1][0] = 42
	w, err = g.Weight(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
}

func TestFromMatrixErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		w     [][]float64
		inner error
	}{
		{"non-square", [][]float64{{0, 1}}, matrix.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, matrix.ErrAsymmetry},
		{"diagonal", [][]float64{{3, 0}, {0, 0}}, matrix.ErrNonZeroDiagonal},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graph.FromMatrix(tc.w)
			require.ErrorIs(t, err, graph.ErrInvalidMatrix)
			require.ErrorIs(t, err, tc.inner)
		})
	}

	_, err := graph.FromMatrix(nil)
	require.ErrorIs(t, err, graph.ErrTooFewVertices)
	_, err = graph.New(0)
	require.ErrorIs(t, err, graph.ErrTooFewVertices)
	_, err = graph.New(graph.MaxVertices + 1)
	require.ErrorIs(t, err, graph.ErrTooManyVertices)
}

func TestNeighborsAndComponents(t *testing.T) {
	g, err := graph.FromMatrix([][]float64{
		{0, 0, 2, 0, 0},
		{0, 0, 0, 0, 0},
		{2, 0, 0, 0, -1},
		{0, 0, 0, 0, 0},
		{0, 0, -1, 0, 0},
	})
	require.NoError(t, err)

	nb, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4}, nb)

	_, err = g.Neighbors(-1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	require.Equal(t, [][]int{{0, 2, 4}, {1}, {3}}, g.Components())
}

func TestLoad(t *testing.T) {
	in := `# four-vertex example
4 5
1 2 8
1 3 -9   # negative weight
2 3 7

2 4 9
3 4 -8
`
	g, err := graph.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, fourVertex, g.Matrix())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"comments only", "# nothing\n% here\n"},
		{"bad header arity", "4\n"},
		{"bad vertex count", "x 1\n"},
		{"zero vertices", "0 0\n"},
		{"negative edges", "3 -1\n"},
		{"fewer edges than declared", "3 2\n1 2 1.0\n"},
		{"more edges than declared", "3 1\n1 2 1.0\n2 3 1.0\n"},
		{"index too large", "3 1\n1 4 1.0\n"},
		{"index zero", "3 1\n0 2 1.0\n"},
		{"self-loop", "3 1\n2 2 1.0\n"},
		{"duplicate edge", "3 2\n1 2 1.0\n2 1 3.0\n"},
		{"bad weight", "3 1\n1 2 heavy\n"},
		{"inf weight", "3 1\n1 2 +Inf\n"},
		{"edge arity", "3 1\n1 2\n"},
		{"huge vertex count", "4000000000 0\n"},
		{"vertex count above cap", strconv.Itoa(graph.MaxVertices+1) + " 0\n"},
		{"more edges than pairs", "3 4\n1 2 1\n1 3 1\n2 3 1\n1 2 1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graph.Load(strings.NewReader(tc.in))
			require.ErrorIs(t, err, graph.ErrFormat)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := graph.LoadFile("/nonexistent/graph.txt")
	require.Error(t, err)
	require.False(t, errors.Is(err, graph.ErrFormat))
}

func TestWriteRoundTrip(t *testing.T) {
	g, err := graph.FromMatrix(fourVertex)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graph.Write(&buf, g))
	require.Equal(t, "4 5\n1 2 8\n1 3 -9\n2 3 7\n2 4 9\n3 4 -8\n", buf.String())

	back, err := graph.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Matrix(), back.Matrix())
}
