package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned by [New] and [Node.Rename] when the node name
	// is empty. All nodes must have non-empty names.
	ErrEmptyName = errors.New("node name must not be empty")

	// ErrNilNode is returned by mutation methods when a nil node is passed
	// where a node is required.
	ErrNilNode = errors.New("node must not be nil")

	// ErrCycle is returned by [Node.Add] and [Node.AddAt] when attaching the
	// child would break the tree shape: the child is the receiver itself or
	// one of its ancestors.
	ErrCycle = errors.New("node cannot be attached inside its own subtree")

	// ErrDuplicateName is returned by [Node.Add], [Node.AddAt], [Node.Replace],
	// and [Node.Rename] when the name collides with an existing sibling's name.
	// Child names must be unique within one parent.
	ErrDuplicateName = errors.New("duplicate child name")

	// ErrIndexOutOfRange is returned by [Node.AddAt] when the insertion index
	// is outside the inclusive range [-(n+1), n] for n current children.
	ErrIndexOutOfRange = errors.New("insertion index out of range")

	// ErrNotChild is returned by [Node.Replace] when the node to replace is
	// not currently a child of the receiver.
	ErrNotChild = errors.New("node is not a child of this parent")

	// ErrNoParent is returned by [Node.ReplaceWith] when the receiver is a
	// root and therefore has no parent to perform the replacement.
	ErrNoParent = errors.New("node has no parent")

	// ErrFrozen is returned by all mutation methods once a node has been
	// frozen with [Node.Freeze]. Freezing is irreversible.
	ErrFrozen = errors.New("node is frozen")

	// ErrUnknownPolicy is returned by [Node.Compare] and [ParsePolicy] for an
	// unrecognized comparison policy.
	ErrUnknownPolicy = errors.New("unknown comparison policy")
)

// Node is a named element of an N-ary tree. A node owns its ordered children
// and holds a non-owning reference to its parent; a node without a parent is
// the root of its tree.
//
// The zero value is not usable - use [New] or [NewWithContent] so that the
// name invariant and the child name index are established correctly.
// Node is not safe for concurrent use without external synchronization.
type Node struct {
	name       string
	content    any
	hasContent bool

	parent   *Node
	children []*Node
	byName   map[string]*Node

	// index is the last known position in the parent's child list, used as a
	// search hint. It is not guaranteed to be accurate; use [Node.Index].
	index int

	frozen bool
}

// New creates a standalone node with the given name and no content.
// The node is the root of a one-node tree until attached elsewhere.
// Returns ErrEmptyName if name is empty.
func New(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Node{
		name:   name,
		byName: make(map[string]*Node),
	}, nil
}

// NewWithContent creates a standalone node carrying the given content.
// Unlike a node whose content was never set, the content is considered
// present even when it is nil. Returns ErrEmptyName if name is empty.
func NewWithContent(name string, content any) (*Node, error) {
	n, err := New(name)
	if err != nil {
		return nil, err
	}
	n.content = content
	n.hasContent = true
	return n, nil
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Content returns the node's content and whether any content is present.
// Absent content is distinct from content that was explicitly set to nil.
func (n *Node) Content() (any, bool) { return n.content, n.hasContent }

// SetContent sets the node's content. Content carries no uniqueness
// constraint and may be changed freely. Returns ErrFrozen on a frozen node.
func (n *Node) SetContent(content any) error {
	if n.frozen {
		return ErrFrozen
	}
	n.content = content
	n.hasContent = true
	return nil
}

// ClearContent removes the node's content, returning it to the absent state.
// Returns ErrFrozen on a frozen node.
func (n *Node) ClearContent() error {
	if n.frozen {
		return ErrFrozen
	}
	n.content = nil
	n.hasContent = false
	return nil
}

// Parent returns the node's parent, or nil if the node is a root.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the root of the tree the node belongs to, which is the node
// itself when it has no parent.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// NumChildren returns the number of children of this node.
func (n *Node) NumChildren() int { return len(n.children) }

// IsFrozen reports whether the node has been made immutable with [Node.Freeze].
func (n *Node) IsFrozen() bool { return n.frozen }

// Freeze makes the subtree rooted at this node permanently immutable.
// Every node in the subtree is frozen, including nodes still reachable
// through references obtained before the call. There is no unfreeze.
func (n *Node) Freeze() {
	n.frozen = true
	for _, c := range n.children {
		c.Freeze()
	}
}

// String implements [fmt.Stringer] by returning the node's path from its root.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Path()
}

// GoString implements [fmt.GoStringer] with a short debugging form.
func (n *Node) GoString() string {
	if n == nil {
		return "(*tree.Node)(nil)"
	}
	return fmt.Sprintf("tree.Node{name: %q, children: %d}", n.name, len(n.children))
}
