package rehex

// finalize converts every accumulator into a Tile. Self-adjacency is looked
// for across all vertices before completeness, so a degenerate triangle is
// reported as such even when it also left other rings open.
func finalize(accs []Accumulator, minDegree int) ([]Tile, error) {
	for v := range accs {
		if accs[v].Contains(uint32(v)) {
			return nil, vertexError(uint32(v), &accs[v], -1, ErrSelfAdjacent)
		}
	}

	tiles := make([]Tile, len(accs))
	for v := range accs {
		t, err := accs[v].tile(minDegree)
		if err != nil {
			return nil, vertexError(uint32(v), &accs[v], -1, err)
		}
		tiles[v] = t
	}
	return tiles, nil
}

func countPentagons(tiles []Tile) int {
	n := 0
	for _, t := range tiles {
		if t.IsPentagon() {
			n++
		}
	}
	return n
}
