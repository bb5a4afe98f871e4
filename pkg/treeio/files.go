package treeio

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Format identifies an on-disk tree layout.
type Format string

const (
	// FormatNested is one JSON object per node with a children array.
	FormatNested Format = "nested"
	// FormatFlat is a JSON array of {name, parent, content} records.
	FormatFlat Format = "flat"
)

// DetectFormat picks the layout for a file path from its extension:
// .flat.json selects [FormatFlat], any other .json selects [FormatNested].
func DetectFormat(path string) Format {
	if strings.HasSuffix(path, ".flat.json") {
		return FormatFlat
	}
	return FormatNested
}

// ParseFormat converts a format name to a [Format].
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNested, FormatFlat:
		return Format(s), nil
	case "":
		return FormatNested, nil
	default:
		return "", fmt.Errorf("unknown format %q (want nested or flat)", s)
	}
}

// ImportFile reads the tree stored at path, picking the layout from the
// file extension. The error wraps the underlying cause with the file path
// for context.
func ImportFile(path string) (*tree.Node, error) {
	return ImportFileFormat(path, DetectFormat(path))
}

// ImportFileFormat reads the tree stored at path in the given layout.
func ImportFileFormat(path string, format Format) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var root *tree.Node
	switch format {
	case FormatFlat:
		root, err = ReadFlat(f)
	default:
		root, err = ReadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return root, nil
}

// ExportFile writes the subtree rooted at root to path, picking the layout
// from the file extension.
func ExportFile(root *tree.Node, path string) error {
	return ExportFileFormat(root, path, DetectFormat(path))
}

// ExportFileFormat writes the subtree rooted at root to path in the given
// layout.
func ExportFileFormat(root *tree.Node, path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch format {
	case FormatFlat:
		err = WriteFlat(root, f)
	default:
		err = WriteJSON(root, f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
