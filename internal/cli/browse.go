package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/tree"
)

// browseCommand creates the browse command, an interactive tree viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var opts sourceOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore the generated tree interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, c.Logger)
			if err != nil {
				return err
			}
			t, _, err := c.newRunner().Build(cmd.Context(), cfg.Levels)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBrowseModel(t),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	addSourceFlags(cmd, &opts)
	return cmd
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// browseModel - Interactive tree browser
// =============================================================================

// browseRow is one visible line of the browser.
type browseRow struct {
	node  *tree.Node
	depth int
}

// browseModel is the bubbletea model for the tree browser. Rows holds the
// currently visible nodes in pre-order; a node's children are visible when
// its path is in expanded.
type browseModel struct {
	tree     *tree.Tree
	expanded map[string]bool
	rows     []browseRow
	cursor   int
	offset   int
	height   int
}

func newBrowseModel(t *tree.Tree) browseModel {
	m := browseModel{
		tree:     t,
		expanded: map[string]bool{},
		height:   20,
	}
	m.refresh()
	return m
}

// refresh rebuilds the visible rows from the expansion state.
func (m *browseModel) refresh() {
	m.rows = nil
	var add func(nodes []*tree.Node, depth int)
	add = func(nodes []*tree.Node, depth int) {
		for _, n := range nodes {
			m.rows = append(m.rows, browseRow{node: n, depth: depth})
			if m.expanded[n.Path] {
				add(n.Children, depth+1)
			}
		}
	}
	add(m.tree.Children, 0)

	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *browseModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// current returns the row under the cursor.
func (m *browseModel) current() (browseRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return browseRow{}, false
	}
	return m.rows[m.cursor], true
}

// parentRow returns the index of the closest row above i with a smaller depth.
func (m *browseModel) parentRow(i int) int {
	depth := m.rows[i].depth
	for j := i - 1; j >= 0; j-- {
		if m.rows[j].depth < depth {
			return j
		}
	}
	return i
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(len(m.rows)-1, 0)
		case "enter", " ":
			if row, ok := m.current(); ok && !row.node.IsLeaf() {
				m.expanded[row.node.Path] = !m.expanded[row.node.Path]
				m.refresh()
			}
		case "right", "l":
			if row, ok := m.current(); ok && !row.node.IsLeaf() {
				m.expanded[row.node.Path] = true
				m.refresh()
			}
		case "left", "h":
			if row, ok := m.current(); ok {
				if m.expanded[row.node.Path] {
					delete(m.expanded, row.node.Path)
				} else {
					m.cursor = m.parentRow(m.cursor)
				}
				m.refresh()
			}
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-5, 5)
		m.scroll()
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Fixture Tree"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ toggle  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty tree)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		marker := "  "
		switch {
		case row.node.IsLeaf():
		case m.expanded[row.node.Path]:
			marker = "▾ "
		default:
			marker = "▸ "
		}

		b.WriteString(cursor)
		b.WriteString(strings.Repeat("  ", row.depth))
		b.WriteString(listDimStyle.Render(marker))
		b.WriteString(style.Render(row.node.Title))
		if row.node.Type != "" {
			b.WriteString(" " + listDimStyle.Render(row.node.Type))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.cursor+1, len(m.rows), m.rows[m.cursor].node.Path)))

	return b.String()
}
