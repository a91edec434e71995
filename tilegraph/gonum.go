package tilegraph

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGonum converts the TileGraph into an unweighted, undirected gonum graph.
// Tile v becomes node ID v and every neighbour pair one edge. The graph is
// built once and shared; callers must not modify it.
// Complexity: O(V) time and memory.
func (tg *TileGraph) ToGonum() *simple.UndirectedGraph {
	tg.gonumOnce.Do(func() {
		g := simple.NewUndirectedGraph()
		for v := range tg.tiles {
			g.AddNode(simple.Node(v))
		}
		for v, t := range tg.tiles {
			for i, n := 0, t.Len(); i < n; i++ {
				if uint32(v) < t[i] {
					g.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(t[i])})
				}
			}
		}
		tg.gonum = g
	})
	return tg.gonum
}

// Components returns the connected components, each sorted ascending, in
// order of their smallest tile. A closed sphere has exactly one.
func (tg *TileGraph) Components() [][]uint32 {
	cc := topo.ConnectedComponents(tg.ToGonum())
	out := make([][]uint32, 0, len(cc))
	for _, nodes := range cc {
		out = append(out, nodeIDs(nodes))
	}
	for _, c := range out {
		slices.Sort(c)
	}
	slices.SortFunc(out, func(a, b []uint32) int { return cmp.Compare(a[0], b[0]) })
	return out
}

// ShortestPath returns a path with the fewest steps from one tile to
// another, both ends included. Among several shortest paths any may be
// returned. Returns ErrNoPath when to is in another component.
// Complexity: O(V log V).
func (tg *TileGraph) ShortestPath(from, to uint32) ([]uint32, error) {
	if err := tg.check(from); err != nil {
		return nil, err
	}
	if err := tg.check(to); err != nil {
		return nil, err
	}
	g := tg.ToGonum()
	shortest := path.DijkstraFrom(g.Node(int64(from)), g)
	nodes, _ := shortest.To(int64(to))
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoPath, from, to)
	}
	return nodeIDs(nodes), nil
}

func nodeIDs(nodes []graph.Node) []uint32 {
	out := make([]uint32, len(nodes))
	for i, n := range nodes {
		out[i] = uint32(n.ID())
	}
	return out
}
