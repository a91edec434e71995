// Package builder produces index-only triangle meshes for feeding and testing
// rehex: Platonic solids with triangular faces, their edge subdivisions
// (icospheres), single-vertex fans and deterministic reorderings.
//
// The package offers the following key components:
//
//   - Mesh:          a flat triangle index list plus its vertex count.
//   - Platonic:      Tetrahedron, Octahedron, Icosahedron with consistent winding.
//   - Subdivide:     split every edge into k segments; shared edge points are
//     created once, winding is preserved.
//   - Icosphere:     Subdivide(Icosahedron, subdivisions+1), so the first
//     twelve vertices are the pentagon corners.
//   - Fan:           the triangles around one centre vertex.
//   - Shuffle, Reverse: reorder triangles (and rotate corners) without
//     changing the triangle set, for order-independence checks.
//   - BuilderOption: WithSeed / WithRand for the stochastic helpers.
//
// Guarantees:
//
//   - Determinism: same inputs and seed ⇒ identical index lists.
//   - No coordinates are ever computed; only topology is produced.
//   - Constructors return sentinel errors (ErrTooFewSegments,
//     ErrTooFewVertices, ErrTooManyVertices, ErrUnsupportedSolid,
//     ErrNeedRandSource); option constructors panic on nil inputs.
//
// Complexity:
//
//   - Subdivide: O(F·k²) time and memory for F faces and k segments.
//   - Icosphere(n): 20·(n+1)² triangles, 10·(n+1)²+2 vertices.
package builder
