package tree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Policy selects how [Node.Compare] orders two nodes of the same tree.
type Policy int

const (
	// PolicyName orders nodes purely by name, ignoring tree structure.
	PolicyName Policy = iota

	// PolicyPreOrder orders nodes by pre-order visitation: the first
	// position where the nodes' sibling rank paths differ decides, and an
	// ancestor precedes all of its descendants.
	PolicyPreOrder

	// PolicyBreadth orders nodes by breadth-first visitation: shallower
	// nodes precede deeper ones, and nodes at equal depth compare
	// lexicographically by sibling rank path.
	PolicyBreadth

	// PolicyDirectOnly only compares nodes on the same root-to-leaf line:
	// an ancestor precedes its descendant, and any other pair is
	// incomparable.
	PolicyDirectOnly

	// PolicyDirectOrSibling is [PolicyDirectOnly] extended to siblings,
	// which compare by their position under the shared parent. Any pair
	// that is neither in an ancestor/descendant relation nor siblings is
	// incomparable.
	PolicyDirectOrSibling
)

var policyNames = map[Policy]string{
	PolicyName:            "name",
	PolicyPreOrder:        "preorder",
	PolicyBreadth:         "breadth",
	PolicyDirectOnly:      "direct",
	PolicyDirectOrSibling: "direct-or-sibling",
}

// String returns the policy's textual form, as accepted by [ParsePolicy].
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts a policy name to a [Policy].
// Returns ErrUnknownPolicy for unrecognized names.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if s == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// rankPath describes a node's location as the name of its root plus the
// sibling ranks along the way down, read root-to-node. It is built by
// climbing once from the node, so comparisons never walk from the root.
type rankPath struct {
	root  string
	ranks []int
}

func (n *Node) rankPath() rankPath {
	var ranks []int
	cur := n
	for cur.parent != nil {
		ranks = append(ranks, cur.Index())
		cur = cur.parent
	}
	slices.Reverse(ranks)
	return rankPath{root: cur.name, ranks: ranks}
}

// Compare orders the node against other under the given policy. The first
// result is negative, zero, or positive in the usual way; the second result
// reports whether the pair is comparable at all under the policy. Nodes that
// belong to trees with differently named roots are never comparable (except
// under [PolicyName], which ignores structure), and the strict policies
// additionally report unrelated nodes as incomparable. Incomparability is a
// valid outcome, not an error; the error result is reserved for a nil other
// and an unrecognized policy.
func (n *Node) Compare(other *Node, policy Policy) (int, bool, error) {
	if other == nil {
		return 0, false, ErrNilNode
	}
	if policy == PolicyName {
		return strings.Compare(n.name, other.name), true, nil
	}

	a, b := n.rankPath(), other.rankPath()
	if a.root != b.root {
		return 0, false, nil
	}

	switch policy {
	case PolicyBreadth:
		if c := cmp.Compare(len(a.ranks), len(b.ranks)); c != 0 {
			return c, true, nil
		}
		return slices.Compare(a.ranks, b.ranks), true, nil

	case PolicyPreOrder, PolicyDirectOnly, PolicyDirectOrSibling:
		return comparePaths(a.ranks, b.ranks, policy)

	default:
		return 0, false, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(policy))
	}
}

// comparePaths implements the pre-order family of policies over two sibling
// rank paths with a shared root.
func comparePaths(a, b []int, policy Policy) (int, bool, error) {
	limit := min(len(a), len(b))
	for i := 0; i < limit; i++ {
		if a[i] == b[i] {
			continue
		}
		// First divergence decides pre-order; the strict policies only
		// accept it when both paths end here, meaning the nodes share a
		// parent and are siblings.
		switch policy {
		case PolicyPreOrder:
			return cmp.Compare(a[i], b[i]), true, nil
		case PolicyDirectOrSibling:
			if i == len(a)-1 && i == len(b)-1 {
				return cmp.Compare(a[i], b[i]), true, nil
			}
			return 0, false, nil
		default: // PolicyDirectOnly
			return 0, false, nil
		}
	}
	// One path is a prefix of the other: the nodes are the same node or in
	// an ancestor/descendant relation, which every policy in this family
	// accepts, with the descendant sorting after its ancestor.
	return cmp.Compare(len(a), len(b)), true, nil
}

// CompareName is the natural ordering of nodes, comparing by name only.
// It reports 0 for a nil other, which has no defined ordering. CompareName
// is shaped for use with [slices.SortFunc]:
//
//	slices.SortFunc(nodes, (*Node).CompareName)
func (n *Node) CompareName(other *Node) int {
	if other == nil {
		return 0
	}
	return strings.Compare(n.name, other.name)
}
