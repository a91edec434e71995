package rehex

// arc is an inline run of at most MaxNeighbors vertex indices. It holds a
// single arc while merging and the concatenated arcs inside an Accumulator.
type arc struct {
	buf [MaxNeighbors]uint32
	n   int
}

func (a *arc) items() []uint32 { return a.buf[:a.n] }
func (a *arc) first() uint32   { return a.buf[0] }
func (a *arc) last() uint32    { return a.buf[a.n-1] }

// push appends v. It reports false, leaving a untouched, when a is full.
func (a *arc) push(v uint32) bool {
	if a.n == MaxNeighbors {
		return false
	}
	a.buf[a.n] = v
	a.n++
	return true
}

// prepend inserts v at the front. It reports false, leaving a untouched,
// when a is full.
func (a *arc) prepend(v uint32) bool {
	if a.n == MaxNeighbors {
		return false
	}
	copy(a.buf[1:a.n+1], a.buf[:a.n])
	a.buf[0] = v
	a.n++
	return true
}

// extend appends every entry of o. It reports false, leaving a untouched,
// when the result would not fit.
func (a *arc) extend(o []uint32) bool {
	if a.n+len(o) > MaxNeighbors {
		return false
	}
	a.n += copy(a.buf[a.n:], o)
	return true
}

func (a *arc) indexOf(v uint32) int {
	for i := 0; i < a.n; i++ {
		if a.buf[i] == v {
			return i
		}
	}
	return -1
}

// arcSet is an accumulator's arc list split into its individual arcs.
type arcSet struct {
	arcs [3]arc
	n    int
}

func (s *arcSet) add(run []uint32) {
	a := &s.arcs[s.n]
	a.n = copy(a.buf[:], run)
	s.n++
}

// total is the number of vertices held across all arcs.
func (s *arcSet) total() int {
	t := 0
	for i := 0; i < s.n; i++ {
		t += s.arcs[i].n
	}
	return t
}

// find locates v, returning its arc and position, or (-1, -1).
func (s *arcSet) find(v uint32) (arcIdx, pos int) {
	for i := 0; i < s.n; i++ {
		if p := s.arcs[i].indexOf(v); p >= 0 {
			return i, p
		}
	}
	return -1, -1
}

// join appends arc j to arc i and drops arc j, keeping the others in order.
func (s *arcSet) join(i, j int) {
	s.arcs[i].extend(s.arcs[j].items())
	copy(s.arcs[j:s.n], s.arcs[j+1:s.n])
	s.n--
}

// sortByLength orders arcs longest first; ties keep their order.
func (s *arcSet) sortByLength() {
	for i := 1; i < s.n; i++ {
		for j := i; j > 0 && s.arcs[j].n > s.arcs[j-1].n; j-- {
			s.arcs[j], s.arcs[j-1] = s.arcs[j-1], s.arcs[j]
		}
	}
}
