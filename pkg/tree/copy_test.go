package tree

import (
	"slices"
	"testing"
)

type payload struct {
	Tags []string
}

func TestDetachedCopy(t *testing.T) {
	orig, err := NewWithContent("n", &payload{Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("NewWithContent: %v", err)
	}
	attach(t, orig, node(t, "child"))

	c := orig.DetachedCopy()
	if c.Name() != "n" {
		t.Errorf("copy name = %q", c.Name())
	}
	if !c.IsRoot() || c.HasChildren() {
		t.Error("detached copy must have no parent and no children")
	}

	// content is deep-copied: mutating the copy's payload must not leak back
	v, ok := c.Content()
	if !ok {
		t.Fatal("copy lost content")
	}
	cp, ok := v.(*payload)
	if !ok {
		t.Fatalf("copy content has type %T", v)
	}
	cp.Tags[0] = "changed"
	if ov, _ := orig.Content(); ov.(*payload).Tags[0] != "x" {
		t.Error("mutating copied content affected the original")
	}
}

func TestDetachedCopyFallback(t *testing.T) {
	fn := func() {}
	orig, err := NewWithContent("n", fn)
	if err != nil {
		t.Fatalf("NewWithContent: %v", err)
	}
	c := orig.DetachedCopy()
	if _, ok := c.Content(); !ok {
		t.Error("uncopyable content should fall back to a shared reference, not vanish")
	}
}

func TestDetachedSubtreeCopy(t *testing.T) {
	r, _, _, _ := fixtureTree(t)
	if err := r.ChildByName("A").SetContent(map[string]any{"k": "v"}); err != nil {
		t.Fatalf("SetContent: %v", err)
	}

	c := r.DetachedSubtreeCopy()

	// structurally identical
	var want, got []string
	for n := range r.All() {
		want = append(want, n.Name())
	}
	for n := range c.All() {
		got = append(got, n.Name())
	}
	if !slices.Equal(got, want) {
		t.Fatalf("copy shape = %v, want %v", got, want)
	}

	// node-for-node name equality under the name policy
	origNodes := r.Children()
	copyNodes := c.Children()
	for i := range origNodes {
		if cmp, ok, err := origNodes[i].Compare(copyNodes[i], PolicyName); err != nil || !ok || cmp != 0 {
			t.Errorf("node %d name mismatch: (%d, %v, %v)", i, cmp, ok, err)
		}
	}

	// fully reference-independent: mutating the copy leaves the original alone
	if err := c.Add(node(t, "extra")); err != nil {
		t.Fatalf("Add to copy: %v", err)
	}
	if _, err := c.ChildByName("A").Rename("AA"); err != nil {
		t.Fatalf("Rename in copy: %v", err)
	}
	if r.NumChildren() != 2 {
		t.Error("mutating the copy changed the original's children")
	}
	if r.ChildByName("A") == nil {
		t.Error("renaming in the copy affected the original")
	}

	// frozen originals produce mutable copies
	r.Freeze()
	c2 := r.DetachedSubtreeCopy()
	if err := c2.Add(node(t, "ok")); err != nil {
		t.Errorf("copy of frozen tree should be mutable: %v", err)
	}
}
