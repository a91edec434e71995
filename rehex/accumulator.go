package rehex

import "fmt"

// Accumulator assembles the neighbour ring of one vertex from facts that
// arrive in any order.
//
// The arcs are stored concatenated in one inline list, longest first (ties
// in arrival order); the state tells where one arc ends and the next
// begins:
//
//	Clear, Complete  [a a a a a]
//	TwoTwo           [a a | b b]
//	ThreeTwo         [a a a | b b]
//	TwoTwoTwo        [a a | b b | c c]
//
// The zero value is an Empty accumulator ready to use.
type Accumulator struct {
	state State
	list  arc
}

// State returns the current fragmentation state.
func (acc *Accumulator) State() State { return acc.state }

// Len returns the number of neighbours known so far.
func (acc *Accumulator) Len() int { return acc.list.n }

// Neighbors returns a copy of the arc list. Once Complete it is the ring in
// winding order.
func (acc *Accumulator) Neighbors() []uint32 {
	return append([]uint32(nil), acc.list.items()...)
}

// Contains reports whether v is among the known neighbours.
func (acc *Accumulator) Contains(v uint32) bool { return acc.list.indexOf(v) >= 0 }

// Follows reports whether c immediately follows b in the closed ring.
// It is false for a ring that is not Complete.
func (acc *Accumulator) Follows(b, c uint32) bool {
	if acc.state != Complete {
		return false
	}
	i := acc.list.indexOf(b)
	return i >= 0 && acc.list.buf[(i+1)%acc.list.n] == c
}

// Insert records that c immediately follows b around this vertex.
//
// Facts are merged into the arc list as they arrive. Once the ring is
// Complete further facts are ignored. On error the accumulator is left
// exactly as it was, so the caller may skip the fact and go on.
func (acc *Accumulator) Insert(b, c uint32) error {
	switch {
	case acc.state == Complete:
		return nil
	case b == c:
		return fmt.Errorf("%w: %d cannot follow itself", ErrInconsistent, b)
	case acc.state == Empty:
		acc.list.push(b)
		acc.list.push(c)
		acc.state = Clear
		return nil
	}

	set := acc.split()

	// b already has a successor, or c a predecessor: either this exact fact
	// was seen before or it contradicts one that was.
	bi, bp := set.find(b)
	if bi >= 0 && bp < set.arcs[bi].n-1 {
		if next := set.arcs[bi].buf[bp+1]; next != c {
			return fmt.Errorf("%w: %d is followed by %d, not %d", ErrInconsistent, b, next, c)
		}
		return nil
	}
	ci, cp := set.find(c)
	if ci >= 0 && cp > 0 {
		return fmt.Errorf("%w: %d is preceded by %d, not %d",
			ErrInconsistent, c, set.arcs[ci].buf[cp-1], b)
	}

	switch {
	case bi >= 0 && bi == ci:
		// b ends and c starts the same arc: the ring closes on itself.
		if set.n > 1 {
			return fmt.Errorf("%w: %d→%d closes an arc while %d arcs are open",
				ErrInconsistent, b, c, set.n)
		}
		acc.state = Complete
		return nil
	case bi >= 0 && ci >= 0:
		set.join(bi, ci)
	case bi >= 0:
		if set.total() == MaxNeighbors {
			return fmt.Errorf("%w: %d after %d", ErrOverfull, c, b)
		}
		set.arcs[bi].push(c)
	case ci >= 0:
		if set.total() == MaxNeighbors {
			return fmt.Errorf("%w: %d before %d", ErrOverfull, b, c)
		}
		set.arcs[ci].prepend(b)
	default:
		if set.total()+2 > MaxNeighbors {
			return fmt.Errorf("%w: new arc %d→%d", ErrOverfull, b, c)
		}
		set.add([]uint32{b, c})
	}

	acc.pack(&set)
	return nil
}

// check validates a fact against a Complete ring.
func (acc *Accumulator) check(b, c uint32) error {
	if acc.Follows(b, c) {
		return nil
	}
	if !acc.Contains(b) || !acc.Contains(c) {
		return fmt.Errorf("%w: %d→%d outside the closed ring", ErrOverfull, b, c)
	}
	return fmt.Errorf("%w: %d→%d disagrees with the closed ring", ErrInconsistent, b, c)
}

// split unpacks the arc list into its arcs according to the state.
func (acc *Accumulator) split() arcSet {
	var s arcSet
	l := acc.list.items()
	switch acc.state {
	case Clear:
		s.add(l)
	case TwoTwo:
		s.add(l[:2])
		s.add(l[2:4])
	case ThreeTwo:
		s.add(l[:3])
		s.add(l[3:5])
	case TwoTwoTwo:
		s.add(l[:2])
		s.add(l[2:4])
		s.add(l[4:6])
	}
	return s
}

// pack writes s back as the arc list and derives the state from the arc
// lengths. Two arcs that hold six neighbours between them can only be
// joined one way round, so they complete the ring directly.
func (acc *Accumulator) pack(s *arcSet) {
	s.sortByLength()
	acc.list.n = 0
	for i := 0; i < s.n; i++ {
		acc.list.extend(s.arcs[i].items())
	}

	switch total := acc.list.n; {
	case s.n == 1 && total == MaxNeighbors:
		acc.state = Complete
	case s.n == 1:
		acc.state = Clear
	case s.n == 2 && total == MaxNeighbors:
		acc.state = Complete
	case s.n == 2 && s.arcs[0].n == 3:
		acc.state = ThreeTwo
	case s.n == 2:
		acc.state = TwoTwo
	default:
		acc.state = TwoTwoTwo
	}
}

// tile converts a Complete ring into a Tile.
func (acc *Accumulator) tile(minDegree int) (Tile, error) {
	var t Tile
	if acc.state != Complete {
		return t, fmt.Errorf("%w: stuck in %s", ErrIncomplete, acc.state)
	}
	if acc.list.n < minDegree {
		return t, fmt.Errorf("%w: ring of %d is below %d", ErrIncomplete, acc.list.n, minDegree)
	}
	n := copy(t[:], acc.list.items())
	for i := n; i < MaxNeighbors; i++ {
		t[i] = Absent
	}
	return t, nil
}
