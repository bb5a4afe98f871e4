// Package treeio reads and writes trees in the supported interchange
// formats.
//
// Two JSON layouts are supported:
//
//   - nested: one JSON object per node with a "children" array, mirroring
//     the tree shape directly. This is the natural format for humans and
//     for web consumers.
//   - flat: a JSON array of per-node records {name, parent, content},
//     ordered so a parent always precedes its children. This is the
//     format for row-oriented storage backends and streaming.
//
// [ReadJSON] and [WriteJSON] handle the nested layout, [ReadFlat] and
// [WriteFlat] the flat one. [ImportFile] and [ExportFile] pick the layout
// from the file extension (.json for nested, .flat.json for flat).
package treeio
