// Package rehexed orders the neighbours of every vertex of a triangle mesh,
// turning an icosphere's triangle list into the hexagon-and-pentagon tiling
// of its dual.
//
// What is in the module?
//
//	rehex        BuildAdjacency and the incremental Builder: per-vertex
//	             neighbour rings in winding order, as fixed six-slot Tiles
//	builder      index-only test meshes: Platonic solids, Subdivide,
//	             Icosphere, Fan, Shuffle
//	tilegraph    queries over the rings: degrees, Euler characteristic,
//	             BFS rings, connected components and shortest paths (gonum)
//	cmd/rehexed  command-line front end (build, neighbors, ring, path)
//
// Quick ASCII example: the ring of vertex 0 inside a hexagon fan
//
//	    6───1
//	   / \ / \
//	  5───0───2      triangles (0,1,2) (0,2,3) … (0,6,1)
//	   \ / \ /       ring of 0: [1 2 3 4 5 6]
//	    4───3
//
// Every triangle (a, b, c) says that c follows b around a; rehex gathers
// those facts per vertex in any order and closes each ring once all of its
// neighbours are known.
//
//	go get github.com/katalvlaran/rehexed/rehex
package rehexed
