package rehex

// Tile is the neighbour ring of one vertex: up to six vertex indices in the
// winding order of the source mesh, left-packed, unused slots set to Absent.
// The starting rotation is deterministic but not normalised; see Canonical.
type Tile [MaxNeighbors]uint32

// Len returns the number of neighbours (5 for a pentagon, 6 for a hexagon).
func (t Tile) Len() int {
	n := 0
	for n < MaxNeighbors && t[n] != Absent {
		n++
	}
	return n
}

// Neighbors returns the neighbours as a fresh slice, without padding.
func (t Tile) Neighbors() []uint32 {
	return append([]uint32(nil), t[:t.Len()]...)
}

// IsPentagon reports whether the tile has exactly five neighbours.
func (t Tile) IsPentagon() bool { return t.Len() == 5 }

// IndexOf returns the slot holding v, or -1.
func (t Tile) IndexOf(v uint32) int {
	for i, n := 0, t.Len(); i < n; i++ {
		if t[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is a neighbour.
func (t Tile) Contains(v uint32) bool { return t.IndexOf(v) >= 0 }

// Next returns the neighbour following v in winding order.
func (t Tile) Next(v uint32) (uint32, bool) {
	i := t.IndexOf(v)
	if i < 0 {
		return Absent, false
	}
	return t[(i+1)%t.Len()], true
}

// Prev returns the neighbour preceding v in winding order.
func (t Tile) Prev(v uint32) (uint32, bool) {
	i := t.IndexOf(v)
	if i < 0 {
		return Absent, false
	}
	n := t.Len()
	return t[(i+n-1)%n], true
}

// Canonical returns t rotated so that its smallest neighbour comes first.
// Two tiles describe the same ring iff their canonical forms are equal.
func (t Tile) Canonical() Tile {
	n := t.Len()
	if n == 0 {
		return t
	}
	lo := 0
	for i := 1; i < n; i++ {
		if t[i] < t[lo] {
			lo = i
		}
	}
	out := t
	for i := 0; i < n; i++ {
		out[i] = t[(lo+i)%n]
	}
	return out
}
