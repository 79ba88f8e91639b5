// Package pkg provides the libraries behind treefixture, a generator for
// deterministic tree-grid test fixtures.
//
// # Overview
//
// A fixture is a JSON document with three keys: the grid columns, the node
// type table, and a nested tree of synthetic nodes. The pkg directory is
// organized around that document:
//
//  1. [generate] - Level specs and the recursive tree builder
//  2. [tree] - The generated tree, walks, and serialization mappers
//  3. [fixture] - Columns, types, and the JSON document
//  4. [config] - TOML configuration with defaults
//  5. [pipeline] - Orchestration (build → assemble → write)
//
// Supporting packages: [render/nodelink] exports the tree as DOT or SVG,
// [observability] exposes build and output hooks, and [errors] defines the
// coded errors returned across the module.
//
// # Data Flow
//
//	[]generate.LevelSpec
//	         ↓
//	    [generate] Build (depth-first, one level per depth)
//	         ↓
//	    [tree] Serialize with a Mapper
//	         ↓
//	    [fixture] Document {columns, types, children}
//	         ↓
//	    fixture.json
//
// # Quick Start
//
//	specs := []generate.LevelSpec{
//	    {Count: 10, Title: "Node {i}", Type: "folder"},
//	    {Count: 10, Title: "Node {prefix}", Type: "article"},
//	}
//	t, err := generate.Build(specs)
//	if err != nil {
//	    return err
//	}
//	doc := fixture.New(t, fixture.DefaultColumns(fixture.DefaultStateColumns), fixture.DefaultTypes(), nil)
//	return fixture.ExportJSON(doc, "fixture.json", false)
//
// The same run from the command line:
//
//	treefixture generate -o fixture.json
//
// [generate]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/generate
// [tree]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/tree
// [fixture]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/fixture
// [config]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/pipeline
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/render/nodelink
// [observability]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/treefixture/pkg/errors
package pkg
