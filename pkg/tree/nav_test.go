package tree

import (
	"slices"
	"testing"
)

func TestChildAccess(t *testing.T) {
	r, a, b, _ := fixtureTree(t)

	tests := []struct {
		name string
		idx  int
		want *Node
	}{
		{"First", 0, a},
		{"Second", 1, b},
		{"NegativeLast", -1, b},
		{"NegativeFirst", -2, a},
		{"PastEnd", 2, nil},
		{"PastStart", -3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Child(tt.idx); got != tt.want {
				t.Errorf("Child(%d) = %v, want %v", tt.idx, got, tt.want)
			}
		})
	}

	if got := r.ChildByName("B"); got != b {
		t.Errorf("ChildByName(B) = %v", got)
	}
	if got := r.ChildByName("missing"); got != nil {
		t.Errorf("ChildByName(missing) = %v, want nil", got)
	}
}

func TestSiblingNavigation(t *testing.T) {
	r, a, b, c := fixtureTree(t)

	if a.NextSibling() != b || b.PrevSibling() != a {
		t.Error("adjacent sibling navigation wrong")
	}
	if a.PrevSibling() != nil || b.NextSibling() != nil {
		t.Error("edge siblings should have no neighbor")
	}
	if r.NextSibling() != nil || r.PrevSibling() != nil {
		t.Error("root has no siblings")
	}

	if a.FirstSibling() != a || a.LastSibling() != b {
		t.Error("first/last sibling wrong for non-root")
	}
	if r.FirstSibling() != r || r.LastSibling() != r {
		t.Error("a root is its own first and last sibling")
	}

	if !c.IsOnlyChild() {
		t.Error("C is an only child")
	}
	if a.IsOnlyChild() {
		t.Error("A has a sibling")
	}
	if !r.IsOnlyChild() {
		t.Error("a root counts as an only child")
	}

	if got := names(a.Siblings()); !slices.Equal(got, []string{"B"}) {
		t.Errorf("Siblings = %v, want [B]", got)
	}
	if r.Siblings() != nil {
		t.Error("root should have no siblings")
	}
}

func TestFirstLastChild(t *testing.T) {
	r, a, b, _ := fixtureTree(t)
	if r.FirstChild() != a || r.LastChild() != b {
		t.Error("first/last child wrong")
	}
	if b.FirstChild() != nil || b.LastChild() != nil {
		t.Error("leaf should have no first/last child")
	}
}

func TestIndex(t *testing.T) {
	r, a, b, _ := fixtureTree(t)
	if a.Index() != 0 || b.Index() != 1 {
		t.Errorf("indexes = %d, %d", a.Index(), b.Index())
	}
	if r.Index() != -1 {
		t.Errorf("root index = %d, want -1", r.Index())
	}

	// index hints survive reordering
	x := node(t, "X")
	if err := r.AddAt(x, 0); err != nil {
		t.Fatalf("AddAt: %v", err)
	}
	if a.Index() != 1 || b.Index() != 2 || x.Index() != 0 {
		t.Errorf("indexes after insert = %d, %d, %d", a.Index(), b.Index(), x.Index())
	}
}

func TestRoot(t *testing.T) {
	r, _, _, c := fixtureTree(t)
	if c.Root() != r {
		t.Errorf("Root = %v, want R", c.Root())
	}
	if r.Root() != r {
		t.Error("root of a root is itself")
	}
}

func TestChildrenIsACopy(t *testing.T) {
	r, _, _, _ := fixtureTree(t)
	kids := r.Children()
	kids[0] = nil
	if r.Child(0) == nil {
		t.Error("mutating the returned slice must not affect the tree")
	}
}
