package tree

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// DetachedCopy returns a new standalone node with the same name and a
// best-effort deep copy of the content. The copy has no parent and no
// children, and it is never frozen, regardless of the original's state.
//
// Content held behind pointers, maps, slices, and structs is deep-copied;
// if the content cannot be copied independently (unexported-only structs,
// channels, functions), the copy shares the original content value.
func (n *Node) DetachedCopy() *Node {
	c := &Node{
		name:       n.name,
		hasContent: n.hasContent,
		byName:     make(map[string]*Node),
	}
	if n.hasContent {
		c.content = cloneContent(n.content)
	}
	return c
}

// DetachedSubtreeCopy deep-copies the whole subtree rooted at this node into
// a new, fully independent tree. Mutating the copy never affects the
// original. The copy is not frozen even when the original is.
func (n *Node) DetachedSubtreeCopy() *Node {
	c := n.DetachedCopy()
	for _, child := range n.children {
		// children of a fresh copy cannot collide or cycle
		_ = c.Add(child.DetachedSubtreeCopy())
	}
	return c
}

// cloneContent attempts an independent deep copy of v and falls back to
// returning v itself when no meaningful copy can be made.
func cloneContent(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Type().Elem())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Interface()
	case reflect.Struct, reflect.Map, reflect.Slice:
		dst := reflect.New(rv.Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return v
		}
		return dst.Elem().Interface()
	default:
		// plain values are copied by assignment
		return v
	}
}
