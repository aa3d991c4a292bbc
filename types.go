package forcelayout

import "gonum.org/v1/gonum/spatial/r2"

// Node is a positioned vertex owned by the caller. The stepper only ever
// writes X and Y.
type Node struct {
	Key string
	X   float64
	Y   float64
}

// Vec returns the node position as a planar vector.
func (n *Node) Vec() r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// Edge connects two nodes by key. Attraction along an edge is symmetric, so
// Source and Target only matter for error reporting.
type Edge struct {
	Source string
	Target string
}

// nodeIndex maps a node key to its dense slot in the stepper's node table.
// Duplicate keys resolve to the last node registered.
type nodeIndex map[string]int

func buildIndex(nodes []*Node) nodeIndex {
	idx := make(nodeIndex, len(nodes))
	for i, n := range nodes {
		idx[n.Key] = i
	}
	return idx
}
