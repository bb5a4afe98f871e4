package tree

import (
	"fmt"
	"slices"
)

// Add attaches child at the end of the node's child list.
// See [Node.AddAt] for the full attachment rules.
func (n *Node) Add(child *Node) error {
	return n.AddAt(child, len(n.children))
}

// AddAt attaches child at position at in the node's child list.
//
// A negative index counts from the end: for n current children, at must lie
// in the inclusive range [-(n+1), n], so -1 inserts before the last child and
// both n and -(n+1) append. Any other index fails with ErrIndexOutOfRange.
//
// If child already has a parent it is detached from that parent first; a node
// belongs to at most one parent at a time. Attaching the receiver itself or
// one of its ancestors fails with ErrCycle, and a child whose name collides
// with an existing sibling fails with ErrDuplicateName. A failed AddAt leaves
// both trees unchanged.
func (n *Node) AddAt(child *Node, at int) error {
	if err := n.checkAttach(child); err != nil {
		return err
	}
	pos, ok := insertPos(at, len(n.children))
	if !ok {
		return fmt.Errorf("%w: %d with %d children", ErrIndexOutOfRange, at, len(n.children))
	}
	if child.parent != nil {
		child.parent.detachChild(child)
		if pos > len(n.children) { // child was our own child before position pos
			pos = len(n.children)
		}
	}
	n.children = slices.Insert(n.children, pos, child)
	n.byName[child.name] = child
	child.parent = n
	child.index = pos
	return nil
}

// checkAttach validates an attachment without mutating anything, so a failed
// Add or AddAt is a true no-op.
func (n *Node) checkAttach(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if n.frozen || child.frozen {
		return ErrFrozen
	}
	if child.parent != nil && child.parent.frozen {
		return ErrFrozen
	}
	if child == n || n.hasAncestor(child) {
		return ErrCycle
	}
	if existing, ok := n.byName[child.name]; ok && existing != child {
		return fmt.Errorf("%w: %q", ErrDuplicateName, child.name)
	}
	return nil
}

// insertPos normalizes an insertion index against count children, reporting
// whether it lies in the inclusive range [-(count+1), count].
func insertPos(at, count int) (int, bool) {
	if at < 0 {
		at += count + 1
	}
	if at < 0 || at > count {
		return 0, false
	}
	return at, true
}

// hasAncestor reports whether candidate is a strict ancestor of n.
func (n *Node) hasAncestor(candidate *Node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// Remove detaches the given child (matched by identity) from the node and
// returns it. The removed node becomes the root of its own subtree; its
// children stay attached below it, so Remove amounts to pruning a branch.
//
// Removing nil, or a node that is not currently a child of the receiver,
// is a no-op returning (nil, nil).
func (n *Node) Remove(child *Node) (*Node, error) {
	if child == nil || child.parent != n {
		return nil, nil
	}
	if n.frozen || child.frozen {
		return nil, ErrFrozen
	}
	n.detachChild(child)
	return child, nil
}

// detachChild unlinks child from the node's child list and name index and
// clears the child's parent reference. The caller has already validated the
// relationship and the frozen state.
func (n *Node) detachChild(child *Node) {
	idx := indexOf(n.children, child, child.index)
	if idx < 0 {
		return
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	if n.byName[child.name] == child {
		delete(n.byName, child.name)
	}
	child.parent = nil
}

// Detach removes the node from its parent, making it a root.
// Detaching a root is a no-op.
func (n *Node) Detach() error {
	if n.parent == nil {
		return nil
	}
	_, err := n.parent.Remove(n)
	return err
}

// RemoveAll recursively detaches every descendant of the node, so each
// formerly attached node becomes an independent root (it only survives if the
// caller still references it). The receiver keeps its own parent linkage.
// Fails with ErrFrozen, changing nothing, if any node in the subtree is frozen.
func (n *Node) RemoveAll() error {
	if n.frozen {
		return ErrFrozen
	}
	for _, c := range n.children {
		if c.subtreeFrozen() {
			return ErrFrozen
		}
	}
	n.removeAll()
	return nil
}

func (n *Node) subtreeFrozen() bool {
	if n.frozen {
		return true
	}
	for _, c := range n.children {
		if c.subtreeFrozen() {
			return true
		}
	}
	return false
}

func (n *Node) removeAll() {
	kids := n.children
	n.children = nil
	clear(n.byName)
	for _, c := range kids {
		c.parent = nil
		c.removeAll()
	}
}

// Replace removes old from its position in the node's child list and inserts
// repl at the same index, returning the removed node. repl is detached from
// any previous parent first, following the same rules as [Node.AddAt].
//
// Fails with ErrNotChild if old is not currently a child of the receiver.
// A repl name colliding with a sibling other than old fails with
// ErrDuplicateName, so replacing a node with a same-named one is allowed.
func (n *Node) Replace(old, repl *Node) (*Node, error) {
	if old == nil || repl == nil {
		return nil, ErrNilNode
	}
	if n.frozen || old.frozen || repl.frozen {
		return nil, ErrFrozen
	}
	if repl.parent != nil && repl.parent.frozen {
		return nil, ErrFrozen
	}
	if indexOf(n.children, old, old.index) < 0 {
		return nil, ErrNotChild
	}
	if repl == n || n.hasAncestor(repl) {
		return nil, ErrCycle
	}
	if existing, ok := n.byName[repl.name]; ok && existing != old && existing != repl {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, repl.name)
	}

	if repl.parent != nil {
		repl.parent.detachChild(repl)
	}
	idx := indexOf(n.children, old, old.index)
	n.detachChild(old)
	n.children = slices.Insert(n.children, idx, repl)
	n.byName[repl.name] = repl
	repl.parent = n
	repl.index = idx
	return old, nil
}

// ReplaceWith substitutes repl for the node in its parent's child list,
// returning the node itself. Fails with ErrNoParent on a root.
func (n *Node) ReplaceWith(repl *Node) (*Node, error) {
	if n.parent == nil {
		return nil, ErrNoParent
	}
	return n.parent.Replace(n, repl)
}

// Rename changes the node's name and returns the previous name. On a
// non-root node the parent's name index is re-keyed in the same step.
// Renaming to a name already used by a sibling fails with ErrDuplicateName,
// mirroring the [Node.Add] collision rule.
func (n *Node) Rename(newName string) (string, error) {
	if newName == "" {
		return "", ErrEmptyName
	}
	if n.frozen {
		return "", ErrFrozen
	}
	old := n.name
	if newName == old {
		return old, nil
	}
	if p := n.parent; p != nil {
		if p.frozen {
			return "", ErrFrozen
		}
		if _, ok := p.byName[newName]; ok {
			return "", fmt.Errorf("%w: %q", ErrDuplicateName, newName)
		}
		delete(p.byName, old)
		p.byName[newName] = n
	}
	n.name = newName
	return old, nil
}

// indexOf returns the position of child in children by identity, scanning
// outward from the hint position. Starting near the previous known index
// makes repeated sibling lookups fast on wide nodes. Returns -1 if child is
// not present.
func indexOf(children []*Node, child *Node, hint int) int {
	count := len(children)
	if count == 0 {
		return -1
	}
	if hint < 0 || hint >= count {
		hint = count / 2
	}
	for lo, hi := hint, hint+1; lo >= 0 || hi < count; lo, hi = lo-1, hi+1 {
		if lo >= 0 && children[lo] == child {
			return lo
		}
		if hi < count && children[hi] == child {
			return hi
		}
	}
	return -1
}
