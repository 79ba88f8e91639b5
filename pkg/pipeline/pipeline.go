// Package pipeline runs fixture generation end to end.
//
// The pipeline has two stages:
//
//  1. Build: expand the configured levels into a tree and assemble the
//     fixture document around it
//  2. Write: encode the document as JSON to a file or writer
//
// The CLI runs both; tests and other tools can stop after Build and inspect
// the [Result].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(ctx, config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Export(ctx, result, "fixture.json", false)
package pipeline

import (
	"time"

	"github.com/matzehuels/treefixture/pkg/fixture"
	"github.com/matzehuels/treefixture/pkg/tree"
)

// FormatJSON is the format name reported to output hooks for fixtures.
const FormatJSON = "json"

// Result holds the output of [Runner.Run].
type Result struct {
	Tree     *tree.Tree
	Document *fixture.Document
	Stats    Stats
}

// Stats describes a generated tree.
type Stats struct {
	Nodes      int
	Depth      int
	LevelSizes []int
	BuildTime  time.Duration
}
