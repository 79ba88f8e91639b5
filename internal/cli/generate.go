package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	source sourceOpts
	output string // output file, "-" for stdout
	indent bool   // pretty-print JSON
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tree-grid fixture",
		Long: `Generate a synthetic tree and write it as a JSON fixture with columns and types.

Without flags the stock fixture is written: 10 folders with 10 articles each,
55 columns, saved to fixture.json.

Examples:
  treefixture generate
  treefixture generate -c fixture.toml
  treefixture generate -l "3:folder:Group {i}" -l "5:article:Item {prefix}" -o -
  treefixture generate --keys --indent -o testdata/tree.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	addSourceFlags(cmd, &opts.source)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, "-" for stdout (default from config)`)
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "pretty-print JSON")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	cfg, err := opts.source.load(cmd, c.Logger)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = opts.indent
	}

	prog := newProgress(c.Logger)
	runner := c.newRunner()
	res, err := runner.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Output == stdoutPath {
		return runner.Write(ctx, res, cmd.OutOrStdout(), "stdout", cfg.Indent)
	}
	if err := runner.Export(ctx, res, cfg.Output, cfg.Indent); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", cfg.Output))

	out := cmd.OutOrStdout()
	printSuccess(out, "Generated fixture")
	printFile(out, cfg.Output)
	printStats(out, res.Stats.Nodes, res.Stats.LevelSizes)
	if res.Stats.Nodes == 0 {
		printWarning(out, "tree is empty")
	}
	switch {
	case len(opts.source.levels) > 0:
	case opts.source.configPath != "":
		printNextStep(out, "Browse it", appName+" browse -c "+opts.source.configPath)
	default:
		printNextStep(out, "Browse it", appName+" browse")
	}
	return nil
}
