package tree

// Size returns the total number of nodes in the subtree rooted at this node,
// including the node itself. A leaf has size 1.
func (n *Node) Size() int {
	count := 0
	for range n.All() {
		count++
	}
	return count
}

// Height returns the number of edges on the longest downward path from this
// node to a leaf. A leaf has height 0.
func (n *Node) Height() int {
	max := -1
	for _, c := range n.children {
		if h := c.Height(); h > max {
			max = h
		}
	}
	return max + 1
}

// Depth returns the number of edges between this node and its root.
// A root has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// Breadth returns the number of children of the node's parent, counting the
// node itself. A root has breadth 1.
func (n *Node) Breadth() int {
	if n.parent == nil {
		return 1
	}
	return len(n.parent.children)
}

// InDegree returns the number of incoming edges: 1 for any attached node,
// 0 for a root.
func (n *Node) InDegree() int {
	if n.parent == nil {
		return 0
	}
	return 1
}

// OutDegree returns the number of outgoing edges, which is the number of
// children.
func (n *Node) OutDegree() int {
	return len(n.children)
}
