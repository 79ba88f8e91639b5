// Package generate builds synthetic fixture trees from level specifications.
//
// Each [LevelSpec] describes one depth of the tree: how many children every
// parent gets, how their titles are rendered, and which type tag they carry.
// [Build] expands the list depth-first and left-to-right:
//
//	t, err := generate.Build([]generate.LevelSpec{
//	    {Count: 2, Title: "Node {i}", Type: "folder"},
//	    {Count: 2, Title: "Node {prefix}", Type: "article"},
//	})
//	// Node 1 (folder)
//	//   Node 1.1, Node 1.2 (article)
//	// Node 2 (folder)
//	//   Node 2.1, Node 2.2 (article)
//
// # Titles
//
// Titles use brace placeholders, see [Format]. Two fields are available:
// {i} is the 1-based index among siblings and {prefix} is the dot-joined path
// of indices from the root. Templates are not checked up front; a bad
// placeholder fails the build when the first title of its level is rendered.
//
// # Determinism
//
// Build has no randomness and no external state. The same spec list always
// yields the same shape, titles, types and order.
package generate
