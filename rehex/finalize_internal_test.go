package rehex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Self-adjacency outranks incompleteness, wherever it sits.
func TestFinalize_SelfAdjacentFirst(t *testing.T) {
	accs := make([]Accumulator, 4)
	require.NoError(t, accs[0].Insert(1, 2))
	for _, f := range [][2]uint32{{1, 2}, {2, 3}, {3, 1}} {
		require.NoError(t, accs[3].Insert(f[0], f[1]))
	}

	_, err := finalize(accs, minDegreeFloor)
	require.ErrorIs(t, err, ErrSelfAdjacent)
	var ve *VertexError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, uint32(3), ve.Vertex)
	assert.Equal(t, Complete, ve.State)
	assert.Equal(t, -1, ve.Triangle)
	assert.Contains(t, err.Error(), "vertex 3")
}

func TestFinalize_Padding(t *testing.T) {
	accs := make([]Accumulator, 1)
	for _, f := range [][2]uint32{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}} {
		require.NoError(t, accs[0].Insert(f[0], f[1]))
	}
	tiles, err := finalize(accs, DefaultMinDegree)
	require.NoError(t, err)
	assert.Equal(t, Tile{1, 2, 3, 4, 5, Absent}, tiles[0])
	assert.Equal(t, 1, countPentagons(tiles))

	_, err = finalize(accs, MaxNeighbors)
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestScan_EarliestFailureWins(t *testing.T) {
	// Vertex 1 fails at triangle 1, ahead of vertex 2 (same triangle) and vertex 0.
	tris := []uint32{
		0, 1, 2,
		1, 2, 3,
		0, 1, 3,
	}
	for _, workers := range []int{1, 2, 3} {
		accs := make([]Accumulator, 4)
		err := scan(DefaultOptions().Ctx, tris, accs, workers, false)
		var ve *VertexError
		require.Truef(t, errors.As(err, &ve), "workers=%d: %v", workers, err)
		assert.Equal(t, uint32(1), ve.Vertex, "workers=%d", workers)
		assert.Equal(t, 1, ve.Triangle, "workers=%d", workers)
		assert.ErrorIs(t, err, ErrInconsistent)
	}
}

func TestVertexError_Message(t *testing.T) {
	var acc Accumulator
	require.NoError(t, acc.Insert(1, 2))
	e := vertexError(7, &acc, 12, ErrOverfull)
	assert.Equal(t,
		"rehex: vertex has more than six neighbours: vertex 7 (state Clear, arcs [1 2]) at triangle 12",
		e.Error())
	assert.ErrorIs(t, e, ErrOverfull)
}
