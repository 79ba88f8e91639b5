// Package nodelink renders fixture trees as node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT, then optionally render it to SVG with Graphviz:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{ShowType: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// Nodes are identified by their path ("1", "1.2", ...) and labeled with their
// title. All top-level nodes hang off a single point node named "root" so the
// diagram keeps the shape of the fixture. Edges run parent to child in
// sibling order, and the layout is top-down.
//
// The DOT text is plain Graphviz source and can also be rendered with the
// dot command-line tool.
package nodelink
