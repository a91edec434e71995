// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// impl_platonic.go — implementation of Platonic(name) and Icosphere(n).
//
// Contract:
//   • name ∈ {Tetrahedron, Octahedron, Icosahedron}; Cube and Dodecahedron
//     have no triangle faces → ErrUnsupportedSolid.
//   • Vertices are numbered 0..V-1 as in variants_platonic.go.
//   • Faces are emitted in the stable order of the dataset.
//
// Complexity:
//   • Platonic: O(F) with F ≤ 20.
//   • Icosphere(n): O(20·(n+1)²).

package builder

// File-local constants (stable method tags).
const (
	methodPlatonic  = "Platonic"
	methodIcosphere = "Icosphere"
)

// Platonic returns the triangle mesh of the named solid.
func Platonic(name PlatonicName) (Mesh, error) {
	n, ok := platonicVertexCounts[name]
	if !ok {
		return Mesh{}, builderErrorf(methodPlatonic, ErrUnsupportedSolid, "%s", name)
	}
	faces := platonicFaces[name]

	tris := make([]uint32, 0, 3*len(faces))
	for _, f := range faces {
		tris = append(tris, f[0], f[1], f[2])
	}
	return Mesh{Triangles: tris, VertexCount: n}, nil
}

// Icosphere returns the icosahedron with every edge split into
// subdivisions+1 segments. subdivisions == 0 is the plain icosahedron.
// Vertices 0..11 are the original corners and the only five-neighbour
// vertices; every other vertex has six neighbours.
func Icosphere(subdivisions int) (Mesh, error) {
	if subdivisions < 0 {
		return Mesh{}, builderErrorf(methodIcosphere, ErrTooFewSegments, "subdivisions=%d", subdivisions)
	}
	ico, err := Platonic(Icosahedron)
	if err != nil {
		return Mesh{}, err
	}
	return Subdivide(ico, subdivisions+1)
}
