// Package tree provides the ordered, parent-owned tree that fixtures are
// generated into, and the projection used to serialize it.
//
// # Overview
//
// A [Tree] is a root sentinel holding the top-level nodes. Every [Node] owns
// its children in insertion order; no node has more than one parent and the
// structure never contains cycles. The sentinel itself has no title or type
// and never appears in serialized output.
//
//	t := tree.New()
//	n := t.Add(&tree.Node{Title: "Node 1", Type: "folder", Path: "1"})
//	n.Add(&tree.Node{Title: "Node 1.1", Type: "article", Path: "1.1"})
//
// # Serialization
//
// [Tree.Serialize] walks the tree in pre-order and applies a [Mapper] to every
// node. The mapper decides which fields a node contributes; the walk nests the
// projected children under a "children" key, and only when a node has any:
//
//	[{"title": "Node 1", "type": "folder", "children": [
//	    {"title": "Node 1.1", "type": "article"}]}]
//
// [DefaultMapper] emits exactly title and type. [KeyMapper] adds a stable
// "key" derived from the node path, so repeated runs produce identical keys.
//
// # Concurrency
//
// Trees are not safe for concurrent modification. Once built they are only
// read, and concurrent readers need no synchronization.
package tree
