package fixture

import (
	"fmt"

	"github.com/matzehuels/treefixture/pkg/tree"
)

// Column describes one grid column.
type Column struct {
	Title   string `toml:"title" json:"title"`
	ID      string `toml:"id" json:"id"`
	Width   string `toml:"width" json:"width"`
	Classes string `toml:"classes,omitempty" json:"classes,omitempty"`
	HTML    string `toml:"html,omitempty" json:"html,omitempty"`
}

// TypeInfo is the style descriptor for a node type tag.
type TypeInfo struct {
	Icon    string `toml:"icon" json:"icon"`
	Classes string `toml:"classes,omitempty" json:"classes,omitempty"`
}

// Document is a complete fixture.
type Document struct {
	Columns  []Column            `json:"columns"`
	Types    map[string]TypeInfo `json:"types"`
	Children []map[string]any    `json:"children"`
}

const (
	checkboxHTML = "<input type=checkbox tabindex='-1'>"
	centerClass  = "wb-helper-center"
)

// DefaultStateColumns is the number of checkbox columns in the default grid.
const DefaultStateColumns = 50

// DefaultColumns returns the title, favorite, details, mode and date columns
// followed by stateColumns checkbox columns "#1".."#N" with ids state_1..state_N.
func DefaultColumns(stateColumns int) []Column {
	cols := []Column{
		{Title: "Title", ID: "*", Width: "200px"},
		{Title: "Fav", ID: "favorite", Width: "30px", Classes: centerClass, HTML: checkboxHTML},
		{Title: "Details", ID: "details", Width: "300px", HTML: "<input type=text tabindex='-1'>"},
		{Title: "Mode", ID: "mode", Width: "100px"},
		{Title: "Date", ID: "date", Width: "100px", HTML: "<input type=date tabindex='-1'>"},
	}
	for i := 1; i <= stateColumns; i++ {
		cols = append(cols, Column{
			Title:   fmt.Sprintf("#%d", i),
			ID:      fmt.Sprintf("state_%d", i),
			Width:   "30px",
			Classes: centerClass,
			HTML:    checkboxHTML,
		})
	}
	return cols
}

// DefaultTypes returns the styles for the "folder" and "article" tags.
func DefaultTypes() map[string]TypeInfo {
	return map[string]TypeInfo{
		"folder":  {Icon: "bi bi-folder", Classes: "classo"},
		"article": {Icon: "bi bi-book"},
	}
}

// New assembles a document from a tree. A nil mapper means
// [tree.DefaultMapper]; nil columns or types are emitted as empty JSON
// collections rather than null.
func New(t *tree.Tree, columns []Column, types map[string]TypeInfo, m tree.Mapper) *Document {
	if columns == nil {
		columns = []Column{}
	}
	if types == nil {
		types = map[string]TypeInfo{}
	}
	return &Document{
		Columns:  columns,
		Types:    types,
		Children: t.Serialize(m),
	}
}
