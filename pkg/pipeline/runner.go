package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treefixture/pkg/config"
	"github.com/matzehuels/treefixture/pkg/fixture"
	"github.com/matzehuels/treefixture/pkg/generate"
	"github.com/matzehuels/treefixture/pkg/observability"
	"github.com/matzehuels/treefixture/pkg/tree"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner can
// serve any number of runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run builds the tree described by cfg and assembles the fixture document.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, stats, err := r.Build(ctx, cfg.Levels)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var mapper tree.Mapper
	if cfg.Keys {
		mapper = tree.KeyMapper(tree.KeyNamespace)
	}
	doc := fixture.New(t, cfg.ColumnList(), cfg.Types, mapper)

	r.Logger.Debug("assembled fixture",
		"columns", len(doc.Columns),
		"types", len(doc.Types),
		"keys", cfg.Keys)

	return &Result{Tree: t, Document: doc, Stats: stats}, nil
}

// Build generates the tree for levels and reports its shape.
func (r *Runner) Build(ctx context.Context, levels []generate.LevelSpec) (*tree.Tree, Stats, error) {
	expected := generate.Count(levels)
	observability.Pipeline().OnBuildStart(ctx, len(levels), expected)

	start := time.Now()
	t, err := generate.Build(levels)
	elapsed := time.Since(start)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, 0, elapsed, err)
		return nil, Stats{}, err
	}

	stats := Stats{
		Nodes:      t.Len(),
		Depth:      t.Depth(),
		LevelSizes: t.LevelSizes(),
		BuildTime:  elapsed,
	}
	observability.Pipeline().OnBuildComplete(ctx, stats.Nodes, elapsed, nil)
	return t, stats, nil
}

// Write encodes the result's document to w. dest names w for hooks.
func (r *Runner) Write(ctx context.Context, res *Result, w io.Writer, dest string, indent bool) error {
	start := time.Now()
	err := fixture.WriteJSON(res.Document, w, indent)
	observability.Output().OnWrite(ctx, FormatJSON, dest, time.Since(start), err)
	return err
}

// Export writes the result's document to a file at path.
func (r *Runner) Export(ctx context.Context, res *Result, path string, indent bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := fixture.ExportJSON(res.Document, path, indent)
	observability.Output().OnWrite(ctx, FormatJSON, path, time.Since(start), err)
	return err
}
