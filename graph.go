package forcelayout

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

// GraphKey is the node key used for a gonum node ID.
func GraphKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FromGraph builds stepper input from a gonum graph. Nodes are ordered by
// ID and placed with place. Undirected graphs yield one edge per connected
// pair; directed graphs one edge per arc.
func FromGraph(g graph.Graph, place func(graph.Node) r2.Vec) ([]*Node, []Edge) {
	gnodes := graph.NodesOf(g.Nodes())
	sort.Slice(gnodes, func(i, j int) bool { return gnodes[i].ID() < gnodes[j].ID() })

	_, undirected := g.(graph.Undirected)

	nodes := make([]*Node, 0, len(gnodes))
	var edges []Edge
	for _, u := range gnodes {
		p := place(u)
		nodes = append(nodes, &Node{Key: GraphKey(u.ID()), X: p.X, Y: p.Y})

		to := graph.NodesOf(g.From(u.ID()))
		sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })
		for _, v := range to {
			if undirected && v.ID() < u.ID() {
				continue
			}
			edges = append(edges, Edge{Source: GraphKey(u.ID()), Target: GraphKey(v.ID())})
		}
	}
	return nodes, edges
}

// Coords reads node positions back keyed by gonum node ID. Nodes whose keys
// are not decimal IDs are skipped.
func Coords(nodes []*Node) map[int64]r2.Vec {
	out := make(map[int64]r2.Vec, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		id, err := strconv.ParseInt(n.Key, 10, 64)
		if err != nil {
			continue
		}
		out[id] = n.Vec()
	}
	return out
}
