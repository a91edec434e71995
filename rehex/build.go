package rehex

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is the number of triangles scanned between context checks.
const ctxCheckInterval = 1024

// BuildAdjacency returns the neighbour ring of every vertex of the mesh
// described by triangles, a flat list of consistently wound index triples.
//
// The result has vertexCount entries. Every triangle (a, b, c) places c right
// after b around a, a right after c around b and b right after a around c,
// so the rings keep the winding of the mesh.
//
// Triangles are validated before any fact is applied: an index list whose
// length is not a multiple of 3 fails with ErrPartialTriangle, an index
// >= vertexCount with ErrVertexOutOfRange and a triangle with a repeated
// corner with ErrSelfAdjacent. Ring failures are *VertexError values. No
// partial result is returned.
//
// Complexity: O(T + V) time, O(V) memory.
func BuildAdjacency(triangles []uint32, vertexCount int, opts ...Option) ([]Tile, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := checkVertexCount(vertexCount); err != nil {
		return nil, err
	}
	if r := len(triangles) % 3; r != 0 {
		return nil, fmt.Errorf("%w: %d indices leave %d over", ErrPartialTriangle, len(triangles), r)
	}

	accs := make([]Accumulator, vertexCount)
	for t := 0; 3*t < len(triangles); t++ {
		if err := checkTriangle(accs, triangleAt(triangles, t), t); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	workers := min(o.Workers, max(vertexCount, 1))
	if err := scan(o.Ctx, triangles, accs, workers, o.Strict); err != nil {
		return nil, err
	}
	o.Logger.Debug("scanned triangles",
		"triangles", len(triangles)/3, "vertices", vertexCount,
		"workers", workers, "elapsed", time.Since(start))

	tiles, err := finalize(accs, o.MinDegree)
	if err != nil {
		return nil, err
	}
	pentagons := countPentagons(tiles)
	o.Logger.Debug("finalized tiles",
		"pentagons", pentagons, "hexagons", len(tiles)-pentagons,
		"elapsed", time.Since(start))
	return tiles, nil
}

// Builder is the incremental form of BuildAdjacency: triangles are added one
// at a time and the tiles are produced on Finalize. A Builder is not safe for
// concurrent use.
type Builder struct {
	accs      []Accumulator
	opts      Options
	triangles int
}

// NewBuilder returns a Builder for a mesh of vertexCount vertices.
// WithWorkers has no effect on a Builder.
func NewBuilder(vertexCount int, opts ...Option) (*Builder, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := checkVertexCount(vertexCount); err != nil {
		return nil, err
	}
	return &Builder{accs: make([]Accumulator, vertexCount), opts: o}, nil
}

// AddTriangle applies the three facts of triangle (a, b, c). The triangle is
// applied whole or not at all: on error no accumulator changes, and the
// caller may skip the triangle and continue.
func (bld *Builder) AddTriangle(a, b, c uint32) error {
	tri := [3]uint32{a, b, c}
	t := bld.triangles
	if err := checkTriangle(bld.accs, tri, t); err != nil {
		return err
	}

	facts := rotations(tri)
	var staged [3]Accumulator
	for i, f := range facts {
		staged[i] = bld.accs[f[0]]
		if err := apply(&staged[i], f[1], f[2], bld.opts.Strict); err != nil {
			return vertexError(f[0], &bld.accs[f[0]], t, err)
		}
	}
	for i, f := range facts {
		bld.accs[f[0]] = staged[i]
	}
	bld.triangles++
	return nil
}

// Triangles returns the number of triangles applied so far.
func (bld *Builder) Triangles() int { return bld.triangles }

// Vertex returns a copy of the accumulator of v.
func (bld *Builder) Vertex(v uint32) (Accumulator, bool) {
	if int64(v) >= int64(len(bld.accs)) {
		return Accumulator{}, false
	}
	return bld.accs[v], true
}

// Finalize validates every ring and returns the tiles. The Builder may keep
// receiving triangles afterwards.
func (bld *Builder) Finalize() ([]Tile, error) {
	tiles, err := finalize(bld.accs, bld.opts.MinDegree)
	if err != nil {
		return nil, err
	}
	bld.opts.Logger.Debug("finalized tiles",
		"triangles", bld.triangles, "vertices", len(tiles), "pentagons", countPentagons(tiles))
	return tiles, nil
}

// scanFailure is a ring failure together with the position of the fact that
// caused it, counted in input order.
type scanFailure struct {
	fact int
	err  error
}

// scan applies every fact to accs. With more than one worker the
// accumulators are sharded by vertex % workers and each worker walks the
// whole triangle list for its shard; of several failures the one earliest in
// input order wins, which is the one a single pass would have hit.
func scan(ctx context.Context, triangles []uint32, accs []Accumulator, workers int, strict bool) error {
	if workers <= 1 {
		f, err := scanShard(ctx, triangles, accs, 0, 1, strict)
		if err != nil {
			return err
		}
		if f != nil {
			return f.err
		}
		return nil
	}

	fails := make([]*scanFailure, workers)
	g, gctx := errgroup.WithContext(ctx)
	for shard := range workers {
		g.Go(func() error {
			f, err := scanShard(gctx, triangles, accs, shard, workers, strict)
			fails[shard] = f
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var first *scanFailure
	for _, f := range fails {
		if f != nil && (first == nil || f.fact < first.fact) {
			first = f
		}
	}
	if first != nil {
		return first.err
	}
	return nil
}

// scanShard applies the facts centred on vertices of one shard. It returns
// a non-nil error only for cancellation.
func scanShard(ctx context.Context, triangles []uint32, accs []Accumulator, shard, shards int, strict bool) (*scanFailure, error) {
	for t := 0; 3*t < len(triangles); t++ {
		if t%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for r, f := range rotations(triangleAt(triangles, t)) {
			if int(f[0]%uint32(shards)) != shard {
				continue
			}
			acc := &accs[f[0]]
			if err := apply(acc, f[1], f[2], strict); err != nil {
				return &scanFailure{fact: 3*t + r, err: vertexError(f[0], acc, t, err)}, nil
			}
		}
	}
	return nil, nil
}

// apply feeds one fact to acc. In strict mode a Complete ring checks the
// fact instead of ignoring it.
func apply(acc *Accumulator, b, c uint32, strict bool) error {
	if strict && acc.state == Complete {
		return acc.check(b, c)
	}
	return acc.Insert(b, c)
}

// rotations returns the three facts of triangle (a, b, c) as
// (centre, before, after), one centred on each corner.
func rotations(tri [3]uint32) [3][3]uint32 {
	a, b, c := tri[0], tri[1], tri[2]
	return [3][3]uint32{{a, b, c}, {c, a, b}, {b, c, a}}
}

func triangleAt(triangles []uint32, t int) [3]uint32 {
	return [3]uint32{triangles[3*t], triangles[3*t+1], triangles[3*t+2]}
}

func checkVertexCount(n int) error {
	if n < 0 || uint64(n) > uint64(Absent) {
		return fmt.Errorf("%w: %d", ErrInvalidVertexCount, n)
	}
	return nil
}

// checkTriangle rejects out-of-range indices and repeated corners. A
// repeated corner would make that vertex its own neighbour.
func checkTriangle(accs []Accumulator, tri [3]uint32, t int) error {
	for _, v := range tri {
		if int64(v) >= int64(len(accs)) {
			return fmt.Errorf("%w: triangle %d names %d, vertex count is %d",
				ErrVertexOutOfRange, t, v, len(accs))
		}
	}
	a, b, c := tri[0], tri[1], tri[2]
	var dup uint32
	switch {
	case a == b || a == c:
		dup = a
	case b == c:
		dup = b
	default:
		return nil
	}
	return vertexError(dup, &accs[dup], t,
		fmt.Errorf("%w: triangle (%d, %d, %d) repeats a corner", ErrSelfAdjacent, a, b, c))
}
