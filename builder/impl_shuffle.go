// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// impl_shuffle.go — implementation of Shuffle(m, opts...) and Reverse(m).
//
// Contract:
//   • Shuffle permutes the triangle order with cfg.rng and, unless
//     WithoutRotation is given, rotates each triangle's corners by 0, 1 or 2
//     places. Rotation keeps the winding, so the triangle set is unchanged.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Reverse emits the triangles last to first, corners untouched.
//   • Inputs are never mutated.
//
// Complexity:
//   • Time: O(F), Space: O(F).

package builder

const methodShuffle = "Shuffle"

// Shuffle returns m with its triangles in random order.
func Shuffle(m Mesh, opts ...BuilderOption) (Mesh, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return Mesh{}, builderErrorf(methodShuffle, ErrNeedRandSource, "rng is required")
	}
	if err := m.Validate(); err != nil {
		return Mesh{}, err
	}

	faces := m.TriangleCount()
	perm := cfg.rng.Perm(faces)
	tris := make([]uint32, 0, len(m.Triangles))
	for _, f := range perm {
		a, b, c := m.Triangle(f)
		if cfg.rotate {
			switch cfg.rng.Intn(3) {
			case 1:
				a, b, c = b, c, a
			case 2:
				a, b, c = c, a, b
			}
		}
		tris = append(tris, a, b, c)
	}
	return Mesh{Triangles: tris, VertexCount: m.VertexCount}, nil
}

// Reverse returns m with its triangles in reverse order.
func Reverse(m Mesh) Mesh {
	faces := m.TriangleCount()
	tris := make([]uint32, 0, 3*faces)
	for f := faces - 1; f >= 0; f-- {
		a, b, c := m.Triangle(f)
		tris = append(tris, a, b, c)
	}
	return Mesh{Triangles: tris, VertexCount: m.VertexCount}
}
