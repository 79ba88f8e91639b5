package tree

import "github.com/google/uuid"

// Mapper projects a node onto the fields it contributes to serialized output.
// The returned map must not contain a "children" key; the walk owns it.
type Mapper func(n *Node) map[string]any

// DefaultMapper emits exactly the node title and type.
func DefaultMapper(n *Node) map[string]any {
	return map[string]any{
		"title": n.Title,
		"type":  n.Type,
	}
}

// KeyNamespace is the default namespace for [KeyMapper] keys.
var KeyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/treefixture"))

// KeyMapper returns a mapper that adds a "key" to [DefaultMapper] output.
// Keys are name-based UUIDs (version 5) of the node path within namespace,
// so a given spec list always produces the same keys.
func KeyMapper(namespace uuid.UUID) Mapper {
	return func(n *Node) map[string]any {
		m := DefaultMapper(n)
		m["key"] = uuid.NewSHA1(namespace, []byte(n.Path)).String()
		return m
	}
}

// Serialize projects the tree into nested maps in pre-order. A nil mapper
// means [DefaultMapper]. Children are listed under "children" only for nodes
// that have any. An empty tree yields an empty, non-nil slice.
func (t *Tree) Serialize(m Mapper) []map[string]any {
	if m == nil {
		m = DefaultMapper
	}
	return serializeAll(t.Children, m)
}

func serializeAll(nodes []*Node, m Mapper) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		entry := m(n)
		if !n.IsLeaf() {
			entry["children"] = serializeAll(n.Children, m)
		}
		out = append(out, entry)
	}
	return out
}
