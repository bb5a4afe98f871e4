// Package pkg provides the core libraries for Arbor tree manipulation.
//
// # Overview
//
// Arbor is a general-purpose container for trees of named nodes: ordered
// children, name lookup, traversals, structural comparison, serialization,
// and persistence. The pkg directory is organized into six areas:
//
//  1. [tree] - The tree data structure and its operations
//  2. [treeio] - Import/export between trees and files
//  3. [store] - Persistence backends (file, memory, Redis, MongoDB)
//  4. [render] - Text outlines and Graphviz diagrams
//  5. [errors] - Structured error codes shared by CLI and API
//  6. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Build a tree and walk it:
//
//	root, _ := tree.New("root")
//	child, _ := tree.NewWithContent("child", 42)
//	_ = root.Add(child)
//
//	for n := range root.All() {
//	    fmt.Println(n.Path())
//	}
//
// Persist it under a name:
//
//	s, _ := store.NewFileStore(dir)
//	entry, _ := s.Save(ctx, "demo", root)
//
// Render it:
//
//	fmt.Print(render.Outline(root, render.Options{}))
//	svg, _ := render.RenderSVG(render.ToDOT(root, render.Options{}))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/tree/...     # Specific package
//	go test -run Example       # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/tree
// [treeio]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/treeio
// [store]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/arbor/pkg/buildinfo
package pkg
