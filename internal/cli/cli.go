// Package cli implements the treefixture command-line interface.
//
// # Commands
//
//   - generate: build a tree and write the fixture JSON
//   - tree: print the generated tree
//   - dot: export the tree as Graphviz DOT or SVG
//   - browse: explore the tree interactively
//   - init: write the default TOML configuration
//   - completion: shell completion scripts
//
// Every tree-producing command accepts the same source flags: --config for a
// TOML or HCL file, repeated --level flags that replace the configured
// levels, and --state-columns / --keys overrides.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log on stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/buildinfo"
	"github.com/matzehuels/treefixture/pkg/observability"
	"github.com/matzehuels/treefixture/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "treefixture"

	// stdoutPath selects standard output as the destination of a command.
	stdoutPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treefixture generates synthetic tree-grid fixtures",
		Long:         `Treefixture builds deterministic, multi-level trees of labeled nodes and writes them as JSON fixtures for tree-grid UI components.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := &logHooks{logger: c.Logger}
			observability.SetPipelineHooks(hooks)
			observability.SetOutputHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
