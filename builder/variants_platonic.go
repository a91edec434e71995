// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// variants_platonic.go — canonical face data for the triangulated Platonic solids.
//
// Design:
//   • Single source of truth for the solids' faces as index triples.
//   • Every face list is consistently wound: each edge u-v appears once as
//     u→v and once as v→u across the faces sharing it.
//   • Datasets are built deterministically at init() and kept immutable.
//
// Labelling (icosahedron, two pentagon rings + poles):
//   • Top pole:    0
//   • Top ring:    1-2-3-4-5-1
//   • Bottom ring: 6-7-8-9-10-6
//   • Bottom pole: 11
//   • Top ring vertex k touches bottom ring vertices k+5 and k+6 (wrapping).

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4, degree 3
	Cube                             // square faces, no triangle mesh
	Octahedron                       // V=6,  F=8, degree 4
	Dodecahedron                     // pentagon faces, no triangle mesh
	Icosahedron                      // V=12, F=20, degree 5
)

// ParsePlatonicName maps a case-sensitive name back to its PlatonicName.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// platonicVertexCounts maps each triangulated solid to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron: 4,
	Octahedron:  6,
	Icosahedron: 12,
}

// platonicFaces maps each triangulated solid to its wound face list.
var platonicFaces = map[PlatonicName][][3]uint32{
	// Tetrahedron: every triple of {0,1,2,3}.
	Tetrahedron: {
		{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2},
	},

	// Octahedron: poles 0 and 1 around the equator 2-4-3-5-2.
	Octahedron: octahedronFaces(),

	// Icosahedron: caps, then the middle band.
	Icosahedron: icosahedronFaces(),
}

// octahedronFaces fans both poles over the equator, the lower pole
// reversed so the shared equator edges run in opposite directions.
func octahedronFaces() [][3]uint32 {
	equator := [4]uint32{2, 4, 3, 5}
	faces := make([][3]uint32, 0, 8)
	for k := range equator {
		cur, next := equator[k], equator[(k+1)%4]
		faces = append(faces, [3]uint32{0, cur, next})
		faces = append(faces, [3]uint32{1, next, cur})
	}
	return faces
}

// icosahedronFaces builds the 20 faces from the ring labelling:
//
//	top cap      (0, T[k], T[k+1])
//	band up      (T[k], B[k], B[k+1])
//	band down    (T[k], B[k+1], T[k+1])
//	bottom cap   (11, B[k+1], B[k])
func icosahedronFaces() [][3]uint32 {
	top := func(k int) uint32 { return uint32(1 + k%5) }
	bottom := func(k int) uint32 { return uint32(6 + k%5) }

	faces := make([][3]uint32, 0, 20)
	for k := 0; k < 5; k++ {
		faces = append(faces, [3]uint32{0, top(k), top(k + 1)})
	}
	for k := 0; k < 5; k++ {
		faces = append(faces,
			[3]uint32{top(k), bottom(k), bottom(k + 1)},
			[3]uint32{top(k), bottom(k + 1), top(k + 1)},
		)
	}
	for k := 0; k < 5; k++ {
		faces = append(faces, [3]uint32{11, bottom(k + 1), bottom(k)})
	}
	return faces
}
