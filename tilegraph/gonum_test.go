package tilegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rehexed/rehex"
	"github.com/katalvlaran/rehexed/tilegraph"
)

// twoTetrahedra returns two disjoint tetrahedra: tiles 0..3 and 4..7.
func twoTetrahedra(t *testing.T) *tilegraph.TileGraph {
	t.Helper()
	a := tetraTiles(t)
	tiles := append([]rehex.Tile(nil), a...)
	for _, tl := range a {
		for i := 0; i < tl.Len(); i++ {
			tl[i] += 4
		}
		tiles = append(tiles, tl)
	}
	tg, err := tilegraph.New(tiles)
	require.NoError(t, err)
	return tg
}

func TestToGonum(t *testing.T) {
	t.Parallel()
	tg, err := tilegraph.New(icosphereTiles(t, 2))
	require.NoError(t, err)

	g := tg.ToGonum()
	assert.Equal(t, tg.Len(), g.Nodes().Len())
	assert.Equal(t, tg.EdgeCount(), g.Edges().Len())
	assert.True(t, g.HasEdgeBetween(0, int64(mustNeighbors(t, tg, 0)[0])))
	assert.Same(t, g, tg.ToGonum(), "graph is built once")
}

func TestComponents(t *testing.T) {
	t.Parallel()

	tg, err := tilegraph.New(icosphereTiles(t, 1))
	require.NoError(t, err)
	comps := tg.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], tg.Len())
	assert.Equal(t, uint32(0), comps[0][0])

	assert.Equal(t, [][]uint32{{0, 1, 2, 3}, {4, 5, 6, 7}}, twoTetrahedra(t).Components())
}

func TestShortestPath(t *testing.T) {
	t.Parallel()
	tg, err := tilegraph.New(icosphereTiles(t, 0))
	require.NoError(t, err)

	p, err := tg.ShortestPath(0, 11)
	require.NoError(t, err)
	require.Len(t, p, 4, "pole to pole is three steps")
	assert.Equal(t, uint32(0), p[0])
	assert.Equal(t, uint32(11), p[3])
	for i := 1; i < len(p); i++ {
		assert.Contains(t, mustNeighbors(t, tg, p[i-1]), p[i])
	}

	p, err = tg.ShortestPath(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, p)

	_, err = tg.ShortestPath(0, 12)
	require.ErrorIs(t, err, tilegraph.ErrVertexOutOfRange)

	_, err = twoTetrahedra(t).ShortestPath(0, 5)
	require.ErrorIs(t, err, tilegraph.ErrNoPath)
}

// BFS and Dijkstra agree on hop counts.
func TestShortestPath_MatchesBFS(t *testing.T) {
	t.Parallel()
	tg, err := tilegraph.New(icosphereTiles(t, 2))
	require.NoError(t, err)

	res, err := tg.BFS(7)
	require.NoError(t, err)
	for _, to := range []uint32{0, 11, 40, 91} {
		p, err := tg.ShortestPath(7, to)
		require.NoError(t, err)
		assert.Equal(t, res.Depth[to]+1, len(p), "to %d", to)
	}
}

func mustNeighbors(t *testing.T, tg *tilegraph.TileGraph, v uint32) []uint32 {
	t.Helper()
	n, err := tg.Neighbors(v)
	require.NoError(t, err)
	return n
}
