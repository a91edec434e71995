package tilegraph

import (
	"context"
	"fmt"
)

// queueItem pairs a tile with its BFS depth.
type queueItem struct {
	v     uint32
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	tg      *TileGraph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search from start, visiting neighbours in winding
// order. Returns ErrVertexOutOfRange for an unknown start,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error. The partial Result is returned alongside hook and
// context errors.
// Complexity: O(V) time and memory.
func (tg *TileGraph) BFS(start uint32, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := tg.check(start); err != nil {
		return nil, err
	}

	w := &walker{
		tg:      tg,
		opts:    o,
		ctx:     o.Ctx,
		visited: make([]bool, tg.Len()),
		res: &Result{
			Start:  start,
			Depth:  make(map[uint32]int),
			Parent: make(map[uint32]uint32),
		},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks v visited at depth d and adds it to the queue.
func (w *walker) enqueue(v uint32, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("tilegraph: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		t := w.tg.tiles[item.v]
		for i, n := 0, t.Len(); i < n; i++ {
			nbr := t[i]
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
				continue
			}
			w.res.Parent[nbr] = item.v
			w.enqueue(nbr, next)
		}
	}
	return nil
}

// Ring returns the tiles exactly radius steps from center, in BFS order.
// Ring(c, 0) is [c].
func (tg *TileGraph) Ring(center uint32, radius int) ([]uint32, error) {
	res, err := tg.within(center, radius)
	if err != nil {
		return nil, err
	}
	var out []uint32
	for _, v := range res.Order {
		if res.Depth[v] == radius {
			out = append(out, v)
		}
	}
	return out, nil
}

// Within returns the tiles at most radius steps from center, in BFS order.
func (tg *TileGraph) Within(center uint32, radius int) ([]uint32, error) {
	res, err := tg.within(center, radius)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}

func (tg *TileGraph) within(center uint32, radius int) (*Result, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius cannot be negative (%d)", ErrOptionViolation, radius)
	}
	if radius == 0 {
		if err := tg.check(center); err != nil {
			return nil, err
		}
		return &Result{
			Start:  center,
			Order:  []uint32{center},
			Depth:  map[uint32]int{center: 0},
			Parent: map[uint32]uint32{},
		}, nil
	}
	return tg.BFS(center, WithMaxDepth(radius))
}
