package generate

import (
	"strconv"

	"github.com/matzehuels/treefixture/pkg/errors"
	"github.com/matzehuels/treefixture/pkg/tree"
)

// LevelSpec configures one depth of a generated tree.
type LevelSpec struct {
	// Count is the number of children created under each parent.
	// Zero or negative counts create no nodes and end the branch.
	Count int `toml:"count" json:"count"`
	// Title is a template with {i} and {prefix} placeholders.
	Title string `toml:"title" json:"title"`
	// Type is copied onto every node of the level.
	Type string `toml:"type" json:"type"`
}

// Build generates a tree with one level per spec. An empty spec list yields
// an empty tree. The first title that fails to render aborts the build with
// an [errors.ErrCodeInvalidTemplate] error.
func Build(specs []LevelSpec) (*tree.Tree, error) {
	t := tree.New()
	if err := build(t.Add, specs, 0, ""); err != nil {
		return nil, err
	}
	return t, nil
}

// build fills one level under a parent. The spec slice is shared read-only
// by every branch; depth selects the level.
func build(add func(*tree.Node) *tree.Node, specs []LevelSpec, depth int, prefix string) error {
	if depth >= len(specs) {
		return nil
	}
	spec := specs[depth]

	for i := 1; i <= spec.Count; i++ {
		idx := strconv.Itoa(i)
		p := idx
		if prefix != "" {
			p = prefix + "." + idx
		}

		title, err := Format(spec.Title, map[string]string{"i": idx, "prefix": p})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTemplate, err, "level %d title %q at node %s", depth, spec.Title, p)
		}

		n := add(&tree.Node{Title: title, Type: spec.Type, Path: p})
		if err := build(n.Add, specs, depth+1, p); err != nil {
			return err
		}
	}
	return nil
}

// Count predicts the number of nodes [Build] creates for specs.
func Count(specs []LevelSpec) int {
	total, width := 0, 1
	for _, s := range specs {
		if s.Count <= 0 {
			break
		}
		width *= s.Count
		total += width
	}
	return total
}
