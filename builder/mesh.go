// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// mesh.go — the Mesh value shared by every constructor.

package builder

// Mesh is a triangle mesh reduced to topology: Triangles holds three vertex
// indices per triangle in winding order, every index < VertexCount.
type Mesh struct {
	Triangles   []uint32
	VertexCount int
}

// TriangleCount returns len(Triangles)/3.
func (m Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// Triangle returns the corners of triangle i.
func (m Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Triangles[3*i], m.Triangles[3*i+1], m.Triangles[3*i+2]
}

// Clone returns a deep copy of m.
func (m Mesh) Clone() Mesh {
	return Mesh{
		Triangles:   append([]uint32(nil), m.Triangles...),
		VertexCount: m.VertexCount,
	}
}

// Validate checks that the index list holds whole triangles naming vertices
// below VertexCount.
func (m Mesh) Validate() error {
	const method = "Validate"
	if m.VertexCount < 0 || uint64(m.VertexCount) > maxVertexCount {
		return builderErrorf(method, ErrMalformedMesh, "vertex count %d", m.VertexCount)
	}
	if r := len(m.Triangles) % 3; r != 0 {
		return builderErrorf(method, ErrMalformedMesh, "%d trailing indices", r)
	}
	for i, v := range m.Triangles {
		if int64(v) >= int64(m.VertexCount) {
			return builderErrorf(method, ErrMalformedMesh,
				"index %d at position %d exceeds vertex count %d", v, i, m.VertexCount)
		}
	}
	return nil
}
