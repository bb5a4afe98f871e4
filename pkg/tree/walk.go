package tree

import (
	"iter"
	"slices"
)

// Return values for the walk callbacks, in the spirit of filepath.WalkDir:
// returning Break stops the walk, returning Continue keeps going.
const (
	Continue = true
	Break    = false
)

// All returns a pre-order depth-first sequence over the subtree rooted at
// this node: the node itself first, then each child expanded fully before
// its next sibling. The sequence is lazy and restartable; ranging over it
// again re-traverses the tree from scratch.
//
// Mutating the tree while a traversal is running is undefined behavior.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		pending := []*Node{n}
		for len(pending) > 0 {
			cur := pending[0]
			pending = pending[1:]
			if !yield(cur) {
				return
			}
			// expand in place: children go ahead of the remaining work
			pending = append(slices.Clone(cur.children), pending...)
		}
	}
}

// postItem is a work-list entry for [Node.PostOrder]. A node is pushed once
// unexpanded; when it surfaces again with expanded set, all of its children
// have already been yielded.
type postItem struct {
	node     *Node
	expanded bool
}

// PostOrder returns a post-order depth-first sequence over the subtree
// rooted at this node: every node appears strictly after all of its
// descendants, so the rooting node comes last. The traversal is iterative
// and does not recurse. Like [Node.All], the sequence is lazy and
// restartable.
func (n *Node) PostOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		pending := []postItem{{node: n}}
		for len(pending) > 0 {
			cur := pending[0]
			if !cur.expanded && len(cur.node.children) > 0 {
				pending[0].expanded = true
				items := make([]postItem, len(cur.node.children), len(cur.node.children)+len(pending))
				for i, c := range cur.node.children {
					items[i] = postItem{node: c}
				}
				pending = append(items, pending...)
				continue
			}
			pending = pending[1:]
			if !yield(cur.node) {
				return
			}
		}
	}
}

// BreadthFirst returns a breadth-first sequence over the subtree rooted at
// this node: all nodes at one depth appear before any node of the next
// depth, left to right within a depth. Like [Node.All], the sequence is
// lazy and restartable.
func (n *Node) BreadthFirst() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			queue = append(queue, cur.children...)
		}
	}
}

// Levels returns a sequence of tree levels starting at this node's own
// level, which is always the single-element slice [n]. Each subsequent
// level is the order-preserving concatenation of the previous level's
// children, and the sequence ends before the first empty level. The yielded
// slices are owned by the caller.
func (n *Node) Levels() iter.Seq[[]*Node] {
	return func(yield func([]*Node) bool) {
		level := []*Node{n}
		for len(level) > 0 {
			if !yield(slices.Clone(level)) {
				return
			}
			var next []*Node
			for _, p := range level {
				next = append(next, p.children...)
			}
			level = next
		}
	}
}

// Leaves returns the leaves of the subtree rooted at this node, in
// pre-order. A leaf node yields itself.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := range n.All() {
			if cur.IsLeaf() && !yield(cur) {
				return
			}
		}
	}
}

// Walk calls fn on this node and all of its descendants in pre-order.
// It stops early if fn returns [Break] and reports whether the walk ran to
// completion.
func (n *Node) Walk(fn func(*Node) bool) bool {
	return visit(n.All(), fn)
}

// WalkPost calls fn on this node and all of its descendants in post-order,
// so descendants are visited before their ancestors. It stops early if fn
// returns [Break] and reports whether the walk ran to completion.
func (n *Node) WalkPost(fn func(*Node) bool) bool {
	return visit(n.PostOrder(), fn)
}

// WalkBreadth calls fn on this node and all of its descendants in
// breadth-first order. It stops early if fn returns [Break] and reports
// whether the walk ran to completion.
func (n *Node) WalkBreadth(fn func(*Node) bool) bool {
	return visit(n.BreadthFirst(), fn)
}

// WalkUp calls fn on this node and each of its ancestors in turn, ending at
// the root. It stops early if fn returns [Break] and reports whether the
// walk ran to completion.
func (n *Node) WalkUp(fn func(*Node) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fn(cur) {
			return false
		}
	}
	return true
}

func visit(seq iter.Seq[*Node], fn func(*Node) bool) bool {
	for cur := range seq {
		if !fn(cur) {
			return false
		}
	}
	return true
}
