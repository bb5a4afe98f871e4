package tree

import (
	"strconv"
	"strings"
)

// Path strings address nodes by their names joined with / separators, with
// any / inside a name escaped to \\ so paths stay parseable.

// EscapePathName returns name with every / replaced by \\.
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns name with every \\ replaced by /.
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the node's path from its root, starting with a leading /
// and the root's name. For the tree R -> A -> C, C.Path() is "/R/A/C".
func (n *Node) Path() string {
	if n.parent == nil {
		return "/" + EscapePathName(n.name)
	}
	return n.parent.Path() + "/" + EscapePathName(n.name)
}

// PathFrom returns the node's path relative to the given ancestor, excluding
// the ancestor's own name and without a leading slash; in the tree
// a/b/c/d/e, d.PathFrom(b) is "c/d". It returns "" when ancestor is the node
// itself, and the path from the node's root when ancestor is not actually an
// ancestor.
func (n *Node) PathFrom(ancestor *Node) string {
	if n == ancestor {
		return ""
	}
	if n.parent == nil || n.parent == ancestor {
		return EscapePathName(n.name)
	}
	return n.parent.PathFrom(ancestor) + "/" + EscapePathName(n.name)
}

// FindPath resolves a path relative to this node and returns the addressed
// descendant, or nil if any element of the path does not resolve. The path
// format is the one produced by [Node.PathFrom]: element names address
// children, so the receiver's own name is not part of the path. Empty elements are skipped, so
// leading slashes and doubled slashes are harmless. A path element of the
// form [i] selects a child by position instead of name, with negative
// indexes counting from the end.
func (n *Node) FindPath(path string) *Node {
	cur := n
	for _, elem := range strings.Split(strings.TrimSpace(path), "/") {
		if elem == "" {
			continue
		}
		next := cur.findPathChild(UnescapePathName(elem))
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

func (n *Node) findPathChild(elem string) *Node {
	if len(elem) > 2 && elem[0] == '[' && elem[len(elem)-1] == ']' {
		idx, err := strconv.Atoi(elem[1 : len(elem)-1])
		if err != nil {
			return nil
		}
		return n.Child(idx)
	}
	return n.byName[elem]
}
