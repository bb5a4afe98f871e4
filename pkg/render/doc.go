// Package render produces visual output for trees.
//
// # Overview
//
// This package turns a tree into either a text outline or a Graphviz
// diagram. It provides:
//
//   - Text outlines with box-drawing connectors ([Outline])
//   - Graphviz DOT source generation ([ToDOT])
//   - In-process SVG and PNG rendering ([RenderSVG], [RenderPNG])
//
// # Text Outlines
//
// The [Outline] function renders the familiar tree-command view:
//
//	root
//	├── a
//	│   └── c
//	└── b
//
// # Diagrams
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes, so parents sit above their children.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// and PNG rendering; no external Graphviz installation is needed.
package render
