package tree

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyRecords is returned by [Build] for an empty record sequence.
	ErrEmptyRecords = errors.New("no records to build from")

	// ErrBadRecordOrder is returned by [Build] when a record references a
	// parent that has not been constructed yet, or when a record other than
	// the first has no parent. Records must list parents before children.
	ErrBadRecordOrder = errors.New("record out of order")
)

// Record is one node of a tree in the linear interchange format: the node's
// name, the name of its parent (empty for the root), and the content as an
// opaque JSON blob. A tree serializes to a sequence of records ordered so
// that a node's record always appears after its parent's record, which
// pre-order guarantees.
//
// The format relies on parent lookup by name, so it is only unambiguous for
// trees whose names are unique across the whole tree, not just per sibling
// group. [Node.Flatten] rejects trees that violate this.
type Record struct {
	Name    string          `json:"name"`
	Parent  string          `json:"parent,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// Flatten serializes the subtree rooted at this node to the linear record
// format, in pre-order. It fails if two nodes in the subtree share a name,
// or if some node's content cannot be marshalled to JSON.
func (n *Node) Flatten() ([]Record, error) {
	records := make([]Record, 0, n.Size())
	seen := make(map[string]bool)
	for cur := range n.All() {
		if seen[cur.name] {
			return nil, fmt.Errorf("%w: %q occurs twice in subtree", ErrDuplicateName, cur.name)
		}
		seen[cur.name] = true

		rec := Record{Name: cur.name}
		if cur != n && cur.parent != nil {
			rec.Parent = cur.parent.name
		}
		if cur.hasContent {
			blob, err := json.Marshal(cur.content)
			if err != nil {
				return nil, fmt.Errorf("marshal content of %q: %w", cur.name, err)
			}
			rec.Content = blob
		}
		records = append(records, rec)
	}
	return records, nil
}

// Build reconstructs a tree from a record sequence produced by
// [Node.Flatten]. The first record becomes the root; every subsequent record
// is attached to its already constructed parent, so parents must precede
// their children. Content blobs are unmarshalled to generic JSON values
// (map[string]any, []any, float64, string, bool, nil).
func Build(records []Record) (*Node, error) {
	if len(records) == 0 {
		return nil, ErrEmptyRecords
	}
	if records[0].Parent != "" {
		return nil, fmt.Errorf("%w: first record %q has parent %q", ErrBadRecordOrder, records[0].Name, records[0].Parent)
	}

	nodes := make(map[string]*Node, len(records))
	root, err := nodeFromRecord(records[0])
	if err != nil {
		return nil, err
	}
	nodes[root.name] = root

	for _, rec := range records[1:] {
		parent, ok := nodes[rec.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q references unknown parent %q", ErrBadRecordOrder, rec.Name, rec.Parent)
		}
		child, err := nodeFromRecord(rec)
		if err != nil {
			return nil, err
		}
		if err := parent.Add(child); err != nil {
			return nil, fmt.Errorf("attach %q to %q: %w", rec.Name, rec.Parent, err)
		}
		if _, exists := nodes[child.name]; exists {
			return nil, fmt.Errorf("%w: %q occurs twice in records", ErrDuplicateName, child.name)
		}
		nodes[child.name] = child
	}
	return root, nil
}

func nodeFromRecord(rec Record) (*Node, error) {
	n, err := New(rec.Name)
	if err != nil {
		return nil, err
	}
	if len(rec.Content) > 0 {
		var content any
		if err := json.Unmarshal(rec.Content, &content); err != nil {
			return nil, fmt.Errorf("unmarshal content of %q: %w", rec.Name, err)
		}
		n.content = content
		n.hasContent = true
	}
	return n, nil
}

// jsonNode is the nested JSON shape of a subtree.
type jsonNode struct {
	Name     string          `json:"name"`
	Content  json.RawMessage `json:"content,omitempty"`
	Children []*Node         `json:"children,omitempty"`
}

// MarshalJSON encodes the subtree rooted at this node as a nested JSON
// object with name, optional content, and a children array.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{Name: n.name, Children: n.children}
	if n.hasContent {
		blob, err := json.Marshal(n.content)
		if err != nil {
			return nil, fmt.Errorf("marshal content of %q: %w", n.name, err)
		}
		out.Content = blob
	}
	return json.Marshal(out)
}

// jsonNodeIn mirrors jsonNode for decoding, with children decoded
// recursively through Node.UnmarshalJSON.
type jsonNodeIn struct {
	Name     string            `json:"name"`
	Content  json.RawMessage   `json:"content"`
	Children []json.RawMessage `json:"children"`
}

// UnmarshalJSON decodes a nested JSON object produced by [Node.MarshalJSON]
// into this node, replacing name, content, and children. As with [Build],
// content decodes to generic JSON values. Attachment goes through [Node.Add]
// so sibling name collisions in the input are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in jsonNodeIn
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	built, err := New(in.Name)
	if err != nil {
		return err
	}
	if len(in.Content) > 0 && string(in.Content) != "null" {
		var content any
		if err := json.Unmarshal(in.Content, &content); err != nil {
			return fmt.Errorf("unmarshal content of %q: %w", in.Name, err)
		}
		built.content = content
		built.hasContent = true
	}
	for _, raw := range in.Children {
		child := &Node{byName: make(map[string]*Node)}
		if err := child.UnmarshalJSON(raw); err != nil {
			return err
		}
		if err := built.Add(child); err != nil {
			return fmt.Errorf("attach child of %q: %w", in.Name, err)
		}
	}
	*n = *built
	// reparent children to the final node location
	for _, c := range n.children {
		c.parent = n
	}
	return nil
}
