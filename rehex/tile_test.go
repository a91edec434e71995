package rehex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rehexed/rehex"
)

func TestTile(t *testing.T) {
	t.Parallel()

	hex := rehex.Tile{4, 9, 2, 7, 3, 8}
	pent := rehex.Tile{5, 1, 4, 3, 2, rehex.Absent}

	assert.Equal(t, 6, hex.Len())
	assert.Equal(t, 5, pent.Len())
	assert.False(t, hex.IsPentagon())
	assert.True(t, pent.IsPentagon())
	assert.Equal(t, []uint32{5, 1, 4, 3, 2}, pent.Neighbors())

	assert.Equal(t, 2, hex.IndexOf(2))
	assert.Equal(t, -1, pent.IndexOf(rehex.Absent))
	assert.False(t, pent.Contains(rehex.Absent))

	next, ok := pent.Next(2)
	assert.True(t, ok)
	assert.Equal(t, uint32(5), next, "next wraps past the last real slot")
	prev, ok := pent.Prev(5)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), prev)
	_, ok = hex.Next(42)
	assert.False(t, ok)

	assert.Equal(t, rehex.Tile{2, 7, 3, 8, 4, 9}, hex.Canonical())
	assert.Equal(t, rehex.Tile{1, 4, 3, 2, 5, rehex.Absent}, pent.Canonical())

	var empty rehex.Tile
	for i := range empty {
		empty[i] = rehex.Absent
	}
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, empty, empty.Canonical())
}
