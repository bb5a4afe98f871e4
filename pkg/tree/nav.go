package tree

import "slices"

// Children returns a copy of the node's ordered child list. Mutating the
// returned slice does not affect the tree; the nodes themselves are shared.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Child returns the child at position i, or nil if the index is out of range.
// A negative index counts from the end, so -1 is the last child.
func (n *Node) Child(i int) *Node {
	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// ChildByName returns the child with the given name, or nil if no child has
// that name. Lookup is O(1) through the name index.
func (n *Node) ChildByName(name string) *Node {
	return n.byName[name]
}

// Index returns the node's position within its parent's child list, or -1
// for a root. The previous position is used as a search hint, so repeated
// calls are fast even on very wide parents.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	idx := indexOf(n.parent.children, n, n.index)
	n.index = idx
	return idx
}

// Ancestors returns the chain of ancestors starting with the immediate
// parent and ending with the root. A root has no ancestors and gets nil.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// FirstChild returns the first child in insertion order, or nil if the node
// is a leaf.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child in insertion order, or nil if the node
// is a leaf.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// FirstSibling returns the first node in the parent's child list. A root is
// trivially its own first sibling and returns itself.
func (n *Node) FirstSibling() *Node {
	if n.parent == nil {
		return n
	}
	return n.parent.FirstChild()
}

// LastSibling returns the last node in the parent's child list. A root is
// trivially its own last sibling and returns itself.
func (n *Node) LastSibling() *Node {
	if n.parent == nil {
		return n
	}
	return n.parent.LastChild()
}

// NextSibling returns the sibling immediately after this node in the
// parent's child list, or nil if the node is last or a root.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	return n.parent.Child(n.Index() + 1)
}

// PrevSibling returns the sibling immediately before this node in the
// parent's child list, or nil if the node is first or a root.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.Index()
	if idx <= 0 {
		return nil
	}
	return n.parent.Child(idx - 1)
}

// IsOnlyChild reports whether the node has no siblings. A root counts as an
// only child.
func (n *Node) IsOnlyChild() bool {
	return n.parent == nil || len(n.parent.children) == 1
}

// Siblings returns the other children of the node's parent, in order,
// excluding the node itself. A root has no siblings.
func (n *Node) Siblings() []*Node {
	if n.parent == nil {
		return nil
	}
	sibs := make([]*Node, 0, len(n.parent.children)-1)
	for _, c := range n.parent.children {
		if c != n {
			sibs = append(sibs, c)
		}
	}
	return sibs
}
