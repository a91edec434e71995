// Package tilegraph defines core types, options, and sentinel errors
// for the tilegraph subpackage.
package tilegraph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for tilegraph operations.
var (
	// ErrEmpty indicates an empty tile list.
	ErrEmpty = errors.New("tilegraph: no tiles")
	// ErrVertexOutOfRange indicates a vertex index >= the number of tiles.
	ErrVertexOutOfRange = errors.New("tilegraph: vertex out of range")
	// ErrMalformedTile indicates a tile that lists itself, repeats a
	// neighbour or has a gap before its last neighbour.
	ErrMalformedTile = errors.New("tilegraph: malformed tile")
	// ErrAsymmetric indicates b lists a as neighbour but a does not list b.
	ErrAsymmetric = errors.New("tilegraph: adjacency is not symmetric")
	// ErrWinding indicates two rings that disagree on a shared triangle.
	ErrWinding = errors.New("tilegraph: rings are not consistently wound")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tilegraph: invalid option supplied")
	// ErrNoPath indicates the destination was not reached.
	ErrNoPath = errors.New("tilegraph: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a tile. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v uint32, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a step by returning false.
	FilterNeighbor func(curr, neighbor uint32) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(uint32, int) error { return nil },
		FilterNeighbor: func(_, _ uint32) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v uint32, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor uint32) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: tiles visited, in visit sequence.
//   - Depth: tile to its distance (in steps) from the start.
//   - Parent: tile to its predecessor in the BFS tree.
type Result struct {
	Start  uint32
	Order  []uint32
	Depth  map[uint32]int
	Parent map[uint32]uint32
}

// PathTo reconstructs the path from the start tile to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest uint32) ([]uint32, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d not reached from %d", ErrNoPath, dest, r.Start)
	}
	path := []uint32{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
