package tree

import "errors"

// Node is a labeled vertex of a fixture tree.
type Node struct {
	Title string // Rendered label
	Type  string // Free-form tag shared by all nodes of a level
	Path  string // Dot-joined 1-based indices from the root, e.g. "2.3.1"

	Children []*Node
}

// Add appends child to n and returns it.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is the root sentinel of a fixture tree. The zero value is an empty
// tree ready for use.
type Tree struct {
	Children []*Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Add appends a top-level node and returns it.
func (t *Tree) Add(child *Node) *Node {
	t.Children = append(t.Children, child)
	return child
}

// Walk visits every node in pre-order, left to right. Depth is 0 for
// top-level nodes. Walk stops at and returns the first non-nil error.
func (t *Tree) Walk(fn func(n *Node, depth int) error) error {
	for _, c := range t.Children {
		if err := walk(c, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(n *Node, depth int, fn func(*Node, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of nodes, excluding the root sentinel.
func (t *Tree) Len() int {
	total := 0
	for _, size := range t.LevelSizes() {
		total += size
	}
	return total
}

// Depth returns the number of levels below the root sentinel.
func (t *Tree) Depth() int {
	return len(t.LevelSizes())
}

// LevelSizes returns the node count at each depth, starting with the
// top-level nodes.
func (t *Tree) LevelSizes() []int {
	var sizes []int
	_ = t.Walk(func(_ *Node, depth int) error {
		if depth == len(sizes) {
			sizes = append(sizes, 0)
		}
		sizes[depth]++
		return nil
	})
	return sizes
}

// Find returns the node with the given path, or nil.
func (t *Tree) Find(path string) *Node {
	var found *Node
	_ = t.Walk(func(n *Node, _ int) error {
		if n.Path == path {
			found = n
			return errStop
		}
		return nil
	})
	return found
}

var errStop = errors.New("stop walk")
