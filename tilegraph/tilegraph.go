package tilegraph

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/rehexed/rehex"
)

// TileGraph is a read-only view of per-vertex neighbour rings. It is safe
// for concurrent use once built.
type TileGraph struct {
	tiles []rehex.Tile

	gonumOnce sync.Once
	gonum     *simple.UndirectedGraph
}

// New builds a TileGraph from tiles, copying the input.
// Returns ErrEmpty, ErrVertexOutOfRange, ErrMalformedTile, ErrAsymmetric or
// ErrWinding when the rings do not describe one consistently wound surface.
// Complexity: O(V) time and memory.
func New(tiles []rehex.Tile) (*TileGraph, error) {
	if len(tiles) == 0 {
		return nil, ErrEmpty
	}
	tg := &TileGraph{tiles: append([]rehex.Tile(nil), tiles...)}

	for _, check := range []func(uint32) error{tg.checkTile, tg.checkSymmetric, tg.checkWinding} {
		for v := range tg.tiles {
			if err := check(uint32(v)); err != nil {
				return nil, err
			}
		}
	}
	return tg, nil
}

// checkTile validates one tile in isolation.
func (tg *TileGraph) checkTile(v uint32) error {
	t := tg.tiles[v]
	n := t.Len()
	for i := n; i < rehex.MaxNeighbors; i++ {
		if t[i] != rehex.Absent {
			return fmt.Errorf("%w: tile %d has %d after a gap", ErrMalformedTile, v, t[i])
		}
	}
	for i := 0; i < n; i++ {
		switch {
		case int64(t[i]) >= int64(len(tg.tiles)):
			return fmt.Errorf("%w: tile %d lists %d, tile count is %d",
				ErrVertexOutOfRange, v, t[i], len(tg.tiles))
		case t[i] == v:
			return fmt.Errorf("%w: tile %d lists itself", ErrMalformedTile, v)
		case t.IndexOf(t[i]) != i:
			return fmt.Errorf("%w: tile %d lists %d twice", ErrMalformedTile, v, t[i])
		}
	}
	return nil
}

// checkSymmetric requires every neighbour of v to list v back.
func (tg *TileGraph) checkSymmetric(v uint32) error {
	t := tg.tiles[v]
	for i, n := 0, t.Len(); i < n; i++ {
		if !tg.tiles[t[i]].Contains(v) {
			return fmt.Errorf("%w: %d lists %d but not the reverse", ErrAsymmetric, v, t[i])
		}
	}
	return nil
}

// checkWinding requires each pair b→c around v to appear as c→v around b.
// Rings shorter than three carry no orientation.
func (tg *TileGraph) checkWinding(v uint32) error {
	t := tg.tiles[v]
	n := t.Len()
	if n < 3 {
		return nil
	}
	for i := 0; i < n; i++ {
		b, c := t[i], t[(i+1)%n]
		if next, _ := tg.tiles[b].Next(c); next != v {
			return fmt.Errorf("%w: %d→%d around %d, but %d→%d around %d",
				ErrWinding, b, c, v, c, next, b)
		}
	}
	return nil
}

// Len returns the number of tiles.
func (tg *TileGraph) Len() int { return len(tg.tiles) }

// Tile returns the ring of v.
func (tg *TileGraph) Tile(v uint32) (rehex.Tile, error) {
	if err := tg.check(v); err != nil {
		return rehex.Tile{}, err
	}
	return tg.tiles[v], nil
}

// Neighbors returns the neighbours of v in winding order.
func (tg *TileGraph) Neighbors(v uint32) ([]uint32, error) {
	if err := tg.check(v); err != nil {
		return nil, err
	}
	return tg.tiles[v].Neighbors(), nil
}

// Degree returns the number of neighbours of v.
func (tg *TileGraph) Degree(v uint32) (int, error) {
	if err := tg.check(v); err != nil {
		return 0, err
	}
	return tg.tiles[v].Len(), nil
}

// Pentagons returns the five-neighbour tiles in ascending order.
func (tg *TileGraph) Pentagons() []uint32 {
	var out []uint32
	for v, t := range tg.tiles {
		if t.IsPentagon() {
			out = append(out, uint32(v))
		}
	}
	return out
}

// EdgeCount returns the number of undirected edges: ΣDegree/2.
func (tg *TileGraph) EdgeCount() int { return tg.degreeSum() / 2 }

// FaceCount returns the number of triangles of the source mesh: every
// triangle appears once in the ring of each of its corners, so ΣDegree/3.
func (tg *TileGraph) FaceCount() int { return tg.degreeSum() / 3 }

// EulerCharacteristic returns V − E + F; 2 for a closed sphere.
func (tg *TileGraph) EulerCharacteristic() int {
	return tg.Len() - tg.EdgeCount() + tg.FaceCount()
}

func (tg *TileGraph) degreeSum() int {
	sum := 0
	for _, t := range tg.tiles {
		sum += t.Len()
	}
	return sum
}

func (tg *TileGraph) check(v uint32) error {
	if int64(v) >= int64(len(tg.tiles)) {
		return fmt.Errorf("%w: %d, tile count is %d", ErrVertexOutOfRange, v, len(tg.tiles))
	}
	return nil
}
