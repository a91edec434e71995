package rehex_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rehexed/builder"
	"github.com/katalvlaran/rehexed/rehex"
)

// ExampleBuildAdjacency builds the rings of an icosahedron: twelve pentagons.
func ExampleBuildAdjacency() {
	ico, _ := builder.Platonic(builder.Icosahedron)
	tiles, err := rehex.BuildAdjacency(ico.Triangles, ico.VertexCount)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(tiles), tiles[0].IsPentagon())
	fmt.Println(tiles[0].Canonical().Neighbors())
	fmt.Println(tiles[0][5] == rehex.Absent)
	// Output:
	// 12 true
	// [1 2 3 4 5]
	// true
}

// ExampleBuilder feeds the triangles of a hexagon fan one by one.
func ExampleBuilder() {
	bld, _ := rehex.NewBuilder(7)
	fan := [][3]uint32{{0, 1, 2}, {0, 5, 6}, {0, 3, 4}, {0, 2, 3}}
	for _, tri := range fan {
		_ = bld.AddTriangle(tri[0], tri[1], tri[2])
		acc, _ := bld.Vertex(0)
		fmt.Println(acc.State(), acc.Neighbors())
	}
	// Output:
	// Clear [1 2]
	// TwoTwo [1 2 5 6]
	// TwoTwoTwo [1 2 5 6 3 4]
	// Complete [1 2 3 4 5 6]
}

// ExampleVertexError shows the context attached to a ring failure.
func ExampleVertexError() {
	_, err := rehex.BuildAdjacency([]uint32{0, 1, 2}, 3)
	var ve *rehex.VertexError
	if errors.As(err, &ve) {
		fmt.Println(ve.Vertex, ve.State, errors.Is(err, rehex.ErrIncomplete))
	}
	// Output:
	// 0 Clear true
}
