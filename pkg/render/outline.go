package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/arbor/pkg/tree"
)

// Outline renders the tree as a text outline with box-drawing connectors,
// like the Unix tree command. With Detailed set, content values are shown
// next to the node names.
func Outline(root *tree.Node, opts Options) string {
	var sb strings.Builder
	sb.WriteString(outlineLabel(root, opts.Detailed))
	sb.WriteByte('\n')
	writeOutline(&sb, root, "", opts.Detailed)
	return sb.String()
}

func writeOutline(sb *strings.Builder, n *tree.Node, prefix string, detailed bool) {
	count := n.NumChildren()
	for i, child := range n.Children() {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == count-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(outlineLabel(child, detailed))
		sb.WriteByte('\n')
		writeOutline(sb, child, childPrefix, detailed)
	}
}

func outlineLabel(n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Name()
	}
	if content, ok := n.Content(); ok {
		return fmt.Sprintf("%s (%v)", n.Name(), content)
	}
	return n.Name()
}
