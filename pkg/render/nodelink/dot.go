package nodelink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/tree"
)

// rootID names the point node standing in for the tree's root sentinel.
const rootID = "root"

// Options configures node-link diagram generation.
type Options struct {
	// ShowType adds the node type below the title.
	ShowType bool
}

// ToDOT converts a tree to Graphviz DOT source.
func ToDOT(t *tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q [shape=point];\n", rootID)

	_ = t.Walk(func(n *tree.Node, _ int) error {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.Path, fmtLabel(n, opts))
		return nil
	})

	buf.WriteString("\n")
	for _, c := range t.Children {
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootID, c.Path)
	}
	_ = t.Walk(func(n *tree.Node, _ int) error {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.Path, c.Path)
		}
		return nil
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, opts Options) string {
	if opts.ShowType && n.Type != "" {
		return n.Title + "\n" + n.Type
	}
	return n.Title
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
