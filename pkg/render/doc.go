// Package render groups the visual outputs of a generated tree.
//
// The [nodelink] subpackage draws the tree as a top-down node-link diagram,
// either as Graphviz DOT source or as SVG rendered in-process.
//
//	dot := nodelink.ToDOT(t, nodelink.Options{ShowType: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/render/nodelink
package render
