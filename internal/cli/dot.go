package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/observability"
	"github.com/matzehuels/treefixture/pkg/render/nodelink"
)

// Output formats of the dot command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	source   sourceOpts
	output   string // output file, stdout if empty or "-"
	svg      bool   // render SVG instead of DOT text
	showType bool   // include node types in labels
}

// dotCommand creates the dot command for node-link diagrams of the tree.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the tree as a Graphviz diagram",
		Long: `Export the generated tree as Graphviz DOT source, or render it to SVG.

Examples:
  treefixture dot -l "3:folder:{i}" -l "2:article:{prefix}" | dot -Tpng > tree.png
  treefixture dot --svg --types -o tree.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd, &opts)
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG with Graphviz")
	cmd.Flags().BoolVar(&opts.showType, "types", false, "show node types in labels")

	return cmd
}

func (c *CLI) runDot(cmd *cobra.Command, opts *dotOpts) error {
	ctx := cmd.Context()
	cfg, err := opts.source.load(cmd, c.Logger)
	if err != nil {
		return err
	}
	t, _, err := c.newRunner().Build(ctx, cfg.Levels)
	if err != nil {
		return err
	}

	format := formatDOT
	data := []byte(nodelink.ToDOT(t, nodelink.Options{ShowType: opts.showType}))
	if opts.svg {
		format = formatSVG
		if data, err = nodelink.RenderSVG(ctx, string(data)); err != nil {
			return err
		}
	}

	dest := opts.output
	if dest == "" {
		dest = stdoutPath
	}
	start := time.Now()
	err = writeOutput(cmd.OutOrStdout(), dest, data)
	observability.Output().OnWrite(ctx, format, dest, time.Since(start), err)
	if err != nil {
		return err
	}
	if dest != stdoutPath {
		printSuccess(cmd.OutOrStdout(), "Wrote %s", dest)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
