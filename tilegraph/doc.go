// Package tilegraph treats the rings produced by rehex as a graph of tiles,
// one tile per mesh vertex, and answers the neighbourhood questions a map
// generator asks of a hex/pentagon sphere.
//
// What:
//
//   - TileGraph wraps a []rehex.Tile after checking that it is symmetric
//     (b is a neighbour of a iff a is a neighbour of b) and consistently
//     wound (if c follows b around a, then a follows c around b).
//   - Counting: Degree, Pentagons, EdgeCount, FaceCount, EulerCharacteristic.
//   - Breadth-first walks with hooks, depth limit and neighbour filter, and
//     the Ring / Within helpers built on them.
//   - Conversion to a gonum *simple.UndirectedGraph for Components and
//     ShortestPath.
//
// Why:
//
//   - Map generation: place features a fixed number of tiles apart, flood
//     regions, route between tiles.
//   - Mesh checking: a closed icosphere has exactly 12 pentagons and Euler
//     characteristic 2.
//
// Complexity:
//
//   - New:        O(V) time, O(V) memory (at most six neighbours per tile).
//   - BFS, Ring:  O(V) time and memory.
//   - ToGonum:    O(V) time and memory.
//   - Components: O(V).
//   - ShortestPath: O(V log V).
//
// Options:
//
//   - WithContext, WithMaxDepth, WithOnVisit, WithFilterNeighbor for BFS.
//
// Errors:
//
//   - ErrEmpty: no tiles.
//   - ErrVertexOutOfRange: a neighbour or query vertex >= the tile count.
//   - ErrMalformedTile: a tile lists its own vertex, repeats a neighbour or
//     has a real neighbour after an Absent slot.
//   - ErrAsymmetric, ErrWinding: the rings do not describe one surface.
//   - ErrOptionViolation: invalid BFS option or negative radius.
//   - ErrNoPath: the target cannot be reached.
package tilegraph
