package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/tree"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	source   sourceOpts
	maxDepth int // levels to print, 0 for all
}

// treeCommand creates the tree command, which prints the generated tree.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the generated tree",
		Long: `Print the tree a fixture would contain, one node per line.

Examples:
  treefixture tree --max-depth 1
  treefixture tree -l "2:folder:Node {i}" -l "2:article:Node {prefix}"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.source.load(cmd, c.Logger)
			if err != nil {
				return err
			}
			t, stats, err := c.newRunner().Build(cmd.Context(), cfg.Levels)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTree(t, opts.maxDepth))
			printStats(out, stats.Nodes, stats.LevelSizes)
			return nil
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().IntVarP(&opts.maxDepth, "max-depth", "d", 0, "levels to print (0 for all)")

	return cmd
}

var (
	treeEnumStyle = lipgloss.NewStyle().Foreground(colorDim).MarginRight(1)
	treeRootStyle = StyleTitle
)

// renderTree draws t with box-drawing connectors. Nodes below maxDepth are
// collapsed into a child count; maxDepth <= 0 draws everything.
func renderTree(t *tree.Tree, maxDepth int) string {
	root := ltree.Root(treeRootStyle.Render(".")).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle)
	for _, n := range t.Children {
		root.Child(renderNode(n, 1, maxDepth))
	}
	return root.String()
}

func renderNode(n *tree.Node, depth, maxDepth int) any {
	label := nodeLabel(n)
	if n.IsLeaf() {
		return label
	}
	if maxDepth > 0 && depth >= maxDepth {
		return label + " " + StyleNumber.Render(fmt.Sprintf("(+%d)", len(n.Children)))
	}

	sub := ltree.Root(label).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle)
	for _, c := range n.Children {
		sub.Child(renderNode(c, depth+1, maxDepth))
	}
	return sub
}

func nodeLabel(n *tree.Node) string {
	if n.Type == "" {
		return StyleValue.Render(n.Title)
	}
	return StyleValue.Render(n.Title) + " " + styleNodeType.Render(n.Type)
}
