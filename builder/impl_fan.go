// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// impl_fan.go — implementation of Fan(center, ring).
//
// Canonical definition:
//   • Triangles (center, ring[k], ring[k+1]) for k = 0..n-1, wrapping, so
//     the ring is walked in the order given around the centre.
//   • VertexCount = 1 + the largest index used.
//
// Contract:
//   • len(ring) ≥ 3 (else ErrTooFewVertices).
//   • ring holds distinct vertices, none equal to center (else ErrMalformedMesh).
//   • No index may equal math.MaxUint32 (else ErrTooManyVertices).
//
// Complexity:
//   • Time: O(n), Space: O(n).

package builder

// File-local constants for method tag and minima.
const (
	methodFan   = "Fan"
	minFanNodes = 3
)

// Fan returns the closed fan of triangles around center. Only center ends up
// with a full neighbour cycle; rim vertices see two neighbours each.
func Fan(center uint32, ring []uint32) (Mesh, error) {
	if len(ring) < minFanNodes {
		return Mesh{}, builderErrorf(methodFan, ErrTooFewVertices, "ring=%d < min=%d", len(ring), minFanNodes)
	}

	seen := make(map[uint32]struct{}, len(ring)+1)
	seen[center] = struct{}{}
	top := center
	for _, v := range ring {
		if _, dup := seen[v]; dup {
			return Mesh{}, builderErrorf(methodFan, ErrMalformedMesh, "vertex %d repeated", v)
		}
		seen[v] = struct{}{}
		top = max(top, v)
	}
	if uint64(top) >= maxVertexCount {
		return Mesh{}, builderErrorf(methodFan, ErrTooManyVertices, "index %d", top)
	}

	n := len(ring)
	tris := make([]uint32, 0, 3*n)
	for k := range n {
		tris = append(tris, center, ring[k], ring[(k+1)%n])
	}
	return Mesh{Triangles: tris, VertexCount: int(top) + 1}, nil
}
