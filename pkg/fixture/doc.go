// Package fixture assembles and writes tree-grid fixture documents.
//
// # JSON Format
//
// A fixture has exactly three top-level keys:
//
//	{
//	  "columns": [
//	    {"title": "Title", "id": "*", "width": "200px"},
//	    {"title": "Fav", "id": "favorite", "width": "30px",
//	     "classes": "wb-helper-center", "html": "<input type=checkbox tabindex='-1'>"}
//	  ],
//	  "types": {
//	    "folder": {"icon": "bi bi-folder", "classes": "classo"},
//	    "article": {"icon": "bi bi-book"}
//	  },
//	  "children": [
//	    {"title": "Node 1", "type": "folder", "children": [
//	      {"title": "Node 1.1", "type": "article"}
//	    ]}
//	  ]
//	}
//
// Columns are rendered in order by the grid. Types map a node type tag to its
// icon and CSS classes. Children is the serialized tree, see
// [tree.Tree.Serialize].
//
// # Writing
//
// Use [WriteJSON] to encode to any io.Writer, or [ExportJSON] to write a file.
// Both emit compact JSON unless indent is set.
//
// [tree.Tree.Serialize]: github.com/matzehuels/treefixture/pkg/tree.Tree.Serialize
package fixture
