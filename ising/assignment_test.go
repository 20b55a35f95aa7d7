package ising_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/isingcut/ising"
	"github.com/stretchr/testify/require"
)

func TestSpinConversions(t *testing.T) {
	x := ising.Assignment{0, 1, 1, 0}
	z, err := x.Spins()
	require.NoError(t, err)
	require.Equal(t, ising.Spins{1, -1, -1, 1}, z)

	back, err := z.Assignment()
	require.NoError(t, err)
	require.Equal(t, x, back)

	_, err = ising.Spins{1, 2}.Assignment()
	require.ErrorIs(t, err, ising.ErrNotSpin)
	_, err = ising.Assignment{3}.Spins()
	require.ErrorIs(t, err, ising.ErrNotBinary)
}

func TestIndexRoundTrip(t *testing.T) {
	x, err := ising.FromIndex(11, 4)
	require.NoError(t, err)
	require.Equal(t, ising.Assignment{1, 0, 1, 1}, x) // vertex 0 is the MSB
	require.Equal(t, "1011", x.String())

	k, err := x.Index()
	require.NoError(t, err)
	require.Equal(t, uint64(11), k)

	for k := uint64(0); k < 1<<5; k++ {
		a, err := ising.FromIndex(k, 5)
		require.NoError(t, err)
		got, err := a.Index()
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

func TestIndexErrors(t *testing.T) {
	_, err := ising.FromIndex(16, 4)
	require.ErrorIs(t, err, ising.ErrIndexRange)
	_, err = ising.FromIndex(0, ising.MaxIndexBits+1)
	require.ErrorIs(t, err, ising.ErrIndexRange)
	_, err = make(ising.Assignment, ising.MaxIndexBits+1).Index()
	require.ErrorIs(t, err, ising.ErrIndexRange)

	empty, err := ising.FromIndex(0, 0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestComplement(t *testing.T) {
	require.Equal(t, ising.Assignment{0, 1, 0, 0}, ising.Assignment{1, 0, 1, 1}.Complement())
}

func TestAssignmentJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		X ising.Assignment `json:"x"`
	}{X: ising.Assignment{1, 0, 1}})
	require.NoError(t, err)
	require.JSONEq(t, `{"x":[1,0,1]}`, string(b))
}
