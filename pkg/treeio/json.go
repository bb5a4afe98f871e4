package treeio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/arbor/pkg/tree"
)

// WriteJSON encodes the subtree rooted at root as nested, indented JSON and
// writes it to w. The output can be re-imported with [ReadJSON] for
// round-trip processing.
func WriteJSON(root *tree.Node, w io.Writer) error {
	if root == nil {
		return tree.ErrNilNode
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a nested JSON tree from r.
//
// The input must be a JSON object with a "name" field and optional
// "content" and "children" fields:
//
//	{
//	  "name": "R",
//	  "children": [{"name": "A"}, {"name": "B", "content": 7}]
//	}
//
// ReadJSON returns an error if the JSON is malformed, if a node is missing
// a name, or if two siblings share a name. Content decodes to generic JSON
// values. The returned tree is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Node, error) {
	var root tree.Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &root, nil
}

// WriteFlat encodes the subtree rooted at root as a JSON array of flat
// records in pre-order and writes it to w. Flattening fails when names
// repeat anywhere in the subtree; see [tree.Node.Flatten].
func WriteFlat(root *tree.Node, w io.Writer) error {
	if root == nil {
		return tree.ErrNilNode
	}
	records, err := root.Flatten()
	if err != nil {
		return fmt.Errorf("flatten: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadFlat decodes a JSON array of flat records from r and rebuilds the
// tree. Records must list parents before children, with the first record
// becoming the root; see [tree.Build] for the validation rules.
func ReadFlat(r io.Reader) (*tree.Node, error) {
	var records []tree.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	root, err := tree.Build(records)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return root, nil
}
