package rehex

import (
	"errors"
	"fmt"
)

// Sentinel errors for adjacency construction.
var (
	// ErrSelfAdjacent indicates a vertex ended up in its own neighbour ring,
	// which only a degenerate or non-manifold triangle can cause.
	ErrSelfAdjacent = errors.New("rehex: vertex is adjacent to itself")

	// ErrIncomplete indicates a vertex whose neighbour ring never closed.
	ErrIncomplete = errors.New("rehex: vertex neighbour ring is incomplete")

	// ErrOverfull indicates a vertex would need more than MaxNeighbors neighbours.
	ErrOverfull = errors.New("rehex: vertex has more than six neighbours")

	// ErrInconsistent indicates facts around one vertex that cannot belong
	// to the same cycle.
	ErrInconsistent = errors.New("rehex: inconsistent neighbour order")

	// ErrVertexOutOfRange indicates a triangle index >= vertexCount.
	ErrVertexOutOfRange = errors.New("rehex: vertex index out of range")

	// ErrPartialTriangle indicates an index list whose length is not a multiple of 3.
	ErrPartialTriangle = errors.New("rehex: trailing partial triangle")

	// ErrInvalidVertexCount indicates a negative vertex count, or one that
	// collides with the Absent sentinel.
	ErrInvalidVertexCount = errors.New("rehex: invalid vertex count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rehex: invalid option supplied")
)

// VertexError reports a failure tied to one vertex. It unwraps to one of
// the sentinels above.
type VertexError struct {
	// Vertex is the centre vertex whose ring failed.
	Vertex uint32

	// State is the accumulator state at the time of failure.
	State State

	// Arcs is a copy of the accumulator's arc list at the time of failure.
	Arcs []uint32

	// Triangle is the index of the triangle being applied, or -1 when the
	// failure was found while finalizing.
	Triangle int

	// Err is the underlying sentinel, possibly wrapped with detail.
	Err error
}

func (e *VertexError) Error() string {
	if e.Triangle >= 0 {
		return fmt.Sprintf("%v: vertex %d (state %s, arcs %v) at triangle %d",
			e.Err, e.Vertex, e.State, e.Arcs, e.Triangle)
	}
	return fmt.Sprintf("%v: vertex %d (state %s, arcs %v)", e.Err, e.Vertex, e.State, e.Arcs)
}

func (e *VertexError) Unwrap() error { return e.Err }

// vertexError snapshots acc into a *VertexError.
func vertexError(v uint32, acc *Accumulator, triangle int, err error) *VertexError {
	return &VertexError{
		Vertex:   v,
		State:    acc.state,
		Arcs:     acc.Neighbors(),
		Triangle: triangle,
		Err:      err,
	}
}
