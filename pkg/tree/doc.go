// Package tree provides a general-purpose, in-memory N-ary tree container.
//
// # Overview
//
// A tree is represented by its root [Node]. Every node carries a name that is
// unique among its siblings, an optional content payload, and an ordered list
// of children. There is no separate tree type: any node is the root of the
// subtree below it, and a freshly created node is a complete one-node tree.
//
// Child order is meaningful. All traversal and sibling navigation follows the
// left-to-right order in which children were inserted, and a secondary
// name index provides O(1) lookup of a child by name.
//
// # Basic Usage
//
// Create nodes with [New] or [NewWithContent] and connect them with
// [Node.Add] or [Node.AddAt]:
//
//	root, _ := tree.New("R")
//	a, _ := tree.New("A")
//	b, _ := tree.New("B")
//	root.Add(a)
//	root.Add(b)
//
// Traverse with the iterator methods, which produce lazy, restartable
// sequences compatible with range-over-func:
//
//	for n := range root.All() { // pre-order
//		fmt.Println(n.Name())
//	}
//
// [Node.All] visits in pre-order, [Node.PostOrder] visits children before
// parents, [Node.BreadthFirst] visits level by level, and [Node.Levels]
// yields each depth as an ordered slice. [Node.Walk] and friends provide
// callback-style visits with early termination via [Break].
//
// # Structure Invariants
//
// The container is strictly a tree: a node has at most one parent, appears in
// at most one child list, and can never be attached below itself. [Node.Add]
// rejects self-attachment and ancestor-attachment, and detaches the child
// from any previous parent first (move semantics). All mutations either fully
// succeed or leave the tree unchanged.
//
// Removing a node detaches only that node: its own subtree stays intact below
// it and the node becomes the root of an independent tree.
//
// # Comparison
//
// [Node.Compare] orders two nodes of the same tree under a selectable
// [Policy] without walking from the root on every call: each node's sibling
// rank path is computed once and the policies interpret rank paths
// differently (plain name order, breadth-first order, pre-order, or the
// stricter ancestry-only and ancestry-or-sibling relations). Nodes from
// different trees, and unrelated nodes under the strict policies, are
// reported as incomparable rather than as errors.
//
// # Serialization
//
// Whole subtrees marshal to nested JSON via the standard [encoding/json]
// interfaces. [Node.Flatten] and [Build] additionally convert between a tree
// and a linear sequence of per-node records ordered so that parents precede
// their children, which suits row-oriented storage backends.
//
// # Freezing
//
// [Node.Freeze] makes a subtree permanently immutable. Freezing is recursive
// and irreversible; every mutating method on a frozen node fails with
// [ErrFrozen], including through references obtained before the freeze.
//
// # Concurrency
//
// Nodes are not safe for concurrent use. Callers must synchronize if multiple
// goroutines read and mutate the same tree, and iterators are invalidated by
// structural mutation during traversal.
package tree
