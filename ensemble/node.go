// Package ensemble holds the in-memory representation of decision trees and
// random forests: nodes, trees, the majority-vote classifier, and the
// structural invariants a forest must satisfy before the born-again engine
// will run on it.
package ensemble

// Node is a single tree node. It is a tagged variant with exactly two
// shapes, LeafNode and InternalNode, rather than one record with sentinel
// fields: the two cases share only an id and a depth, and nothing else
// about them overlaps.
type Node interface {
	ID() int
	Depth() int
	node()
}

// LeafNode classifies every point that reaches it.
type LeafNode struct {
	IDValue    int
	DepthValue int
	Class      int
}

func (n *LeafNode) ID() int    { return n.IDValue }
func (n *LeafNode) Depth() int { return n.DepthValue }
func (n *LeafNode) node()      {}

// InternalNode routes a point left when x[Feature] <= Threshold, right
// otherwise. Left and Right are indices into the owning Tree's node slice.
type InternalNode struct {
	IDValue    int
	DepthValue int
	Feature    int
	Threshold  float64
	Left       int
	Right      int
}

func (n *InternalNode) ID() int    { return n.IDValue }
func (n *InternalNode) Depth() int { return n.DepthValue }
func (n *InternalNode) node()      {}

// Tree is an ordered list of nodes; the root is always Nodes[0]. Child
// references inside InternalNode are indices into Nodes.
type Tree struct {
	Nodes []Node
}

// Depth returns the maximum depth across every node in the tree.
func (t Tree) Depth() int {
	d := 0
	for _, n := range t.Nodes {
		if n.Depth() > d {
			d = n.Depth()
		}
	}
	return d
}

// Classify walks the tree from the root, branching on x[Feature] <=
// Threshold, and returns the class label at the leaf reached.
func (t Tree) Classify(x []float64) int {
	n := t.Nodes[0]
	for {
		switch v := n.(type) {
		case *LeafNode:
			return v.Class
		case *InternalNode:
			if x[v.Feature] <= v.Threshold {
				n = t.Nodes[v.Left]
			} else {
				n = t.Nodes[v.Right]
			}
		default:
			panic("ensemble: unknown node type")
		}
	}
}
