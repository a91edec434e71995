// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// impl_subdivide.go — implementation of Subdivide(m, segments).
//
// Canonical model:
//   • Every face (a, b, c) becomes a triangular grid P(i, j), i+j ≤ k, with
//     P(0,0)=a, P(k,0)=b, P(0,k)=c, cut into k² faces.
//   • Points on an edge are shared by both faces of that edge and created
//     once; interior points belong to a single face.
//   • Numbering: original vertices keep 0..V-1, then edge points in the
//     order their edges are first met, then interior points face by face.
//
// Winding:
//   • Sub-faces (P(i,j), P(i+1,j), P(i,j+1)) and
//     (P(i+1,j), P(i+1,j+1), P(i,j+1)) have the orientation of (a, b, c).
//
// Complexity:
//   • Time and memory O(F·k²).

package builder

// File-local constants.
const (
	methodSubdivide = "Subdivide"
	// maxSegments bounds k so the vertex estimate below cannot overflow.
	maxSegments = 1 << 16
)

// edgeKey is an undirected edge with U < V.
type edgeKey struct{ U, V uint32 }

// Subdivide splits every edge of m into segments parts. segments == 1
// returns a copy of m.
func Subdivide(m Mesh, segments int) (Mesh, error) {
	if segments < 1 {
		return Mesh{}, builderErrorf(methodSubdivide, ErrTooFewSegments, "segments=%d", segments)
	}
	if err := m.Validate(); err != nil {
		return Mesh{}, err
	}
	if segments == 1 {
		return m.Clone(), nil
	}
	if segments > maxSegments {
		return Mesh{}, builderErrorf(methodSubdivide, ErrTooManyVertices, "segments=%d", segments)
	}

	k := segments
	faces := m.TriangleCount()

	// 1) Create the points of every distinct edge, ordered from U to V.
	edges := make(map[edgeKey][]uint32)
	var order []edgeKey
	for f := 0; f < faces; f++ {
		a, b, c := m.Triangle(f)
		for _, e := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
			key := undirected(e[0], e[1])
			if _, ok := edges[key]; !ok {
				edges[key] = nil
				order = append(order, key)
			}
		}
	}

	// 2) Refuse meshes whose indices would not fit below the sentinel.
	k64 := uint64(k)
	total := uint64(m.VertexCount) +
		uint64(len(order))*(k64-1) +
		uint64(faces)*(k64-1)*(k64-2)/2
	if total > maxVertexCount {
		return Mesh{}, builderErrorf(methodSubdivide, ErrTooManyVertices,
			"%d vertices for segments=%d", total, k)
	}

	next := uint32(m.VertexCount)
	for _, key := range order {
		pts := make([]uint32, k-1)
		for i := range pts {
			pts[i] = next
			next++
		}
		edges[key] = pts
	}

	// edgePoint returns the s-th point (1..k-1) walking from u towards v.
	edgePoint := func(u, v uint32, s int) uint32 {
		pts := edges[undirected(u, v)]
		if u < v {
			return pts[s-1]
		}
		return pts[k-s-1]
	}

	// 3) Fill each face grid and emit its k² sub-faces.
	tris := make([]uint32, 0, 3*faces*k*k)
	grid := make([]uint32, (k+1)*(k+1))
	at := func(i, j int) uint32 { return grid[i*(k+1)+j] }
	for f := 0; f < faces; f++ {
		a, b, c := m.Triangle(f)
		for i := 0; i <= k; i++ {
			for j := 0; i+j <= k; j++ {
				var p uint32
				switch {
				case i == 0 && j == 0:
					p = a
				case i == k:
					p = b
				case j == k:
					p = c
				case j == 0:
					p = edgePoint(a, b, i)
				case i == 0:
					p = edgePoint(a, c, j)
				case i+j == k:
					p = edgePoint(b, c, j)
				default:
					p = next
					next++
				}
				grid[i*(k+1)+j] = p
			}
		}

		for i := 0; i < k; i++ {
			for j := 0; i+j < k; j++ {
				tris = append(tris, at(i, j), at(i+1, j), at(i, j+1))
				if i+j < k-1 {
					tris = append(tris, at(i+1, j), at(i+1, j+1), at(i, j+1))
				}
			}
		}
	}

	return Mesh{Triangles: tris, VertexCount: int(next)}, nil
}

func undirected(u, v uint32) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{U: u, V: v}
}
