// Package rehex turns the triangle index list of a subdivided icosahedron
// into an ordered adjacency list, one hexagonal (or pentagonal) tile per
// vertex.
//
// What:
//
//   - BuildAdjacency scans a flat []uint32 of triangles (three indices per
//     triangle, consistently wound) and returns one Tile per vertex.
//   - A Tile lists the vertex's neighbours in cyclic order, with the same
//     winding as the source mesh. Vertices with five neighbours (the twelve
//     icosahedron corners) have Absent in the last slot.
//   - Builder exposes the same computation incrementally: AddTriangle,
//     Vertex and Finalize.
//
// How:
//
//	Every triangle (a, b, c) yields three facts, one per corner:
//
//	    around a: b is followed by c
//	    around c: a is followed by b
//	    around b: c is followed by a
//
//	Each vertex owns an Accumulator that assembles these facts into arcs
//	(known runs of the final cycle) and merges the arcs as junction facts
//	arrive. At most three arcs are ever open at once, because the cycle has
//	at most six entries and every arc holds at least two.
//
//	    Empty ─▶ Clear ─▶ TwoTwo ─▶ TwoTwoTwo
//	               │        │           │
//	               │        ▼           │
//	               ├──▶ ThreeTwo        │
//	               ▼        ▼           ▼
//	            Complete ◀──────────────┘
//
// Why:
//
//   - Hex-tile geometry needs the ring of neighbours in winding order.
//   - Board-style queries (rings, distances, paths) need adjacency without
//     re-deriving it from triangles every time.
//
// Complexity:
//
//   - BuildAdjacency: O(T) time for T triangles, O(V) memory for V vertices.
//     Each fact costs O(1): the arc list is an inline array of six entries.
//
// Options:
//
//   - WithWorkers(n): shard accumulators by vertex across n goroutines.
//   - WithStrict(): check facts that arrive after a vertex completed.
//   - WithMinDegree(k): smallest cycle accepted as complete (default 5).
//   - WithContext(ctx), WithLogger(l).
//
// Errors:
//
//   - ErrSelfAdjacent: a vertex appears in its own ring (degenerate triangle).
//   - ErrIncomplete: a vertex never closed its ring.
//   - ErrOverfull: a vertex would need more than six neighbours.
//   - ErrInconsistent: facts around one vertex contradict each other.
//   - ErrVertexOutOfRange, ErrPartialTriangle, ErrInvalidVertexCount,
//     ErrOptionViolation: malformed input or options.
//
// Vertex-scoped failures are *VertexError values; use errors.Is for the
// class and errors.As for the vertex, its state and the triangle involved.
package rehex
