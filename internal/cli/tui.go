package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arbor/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// browseModel - Interactive tree browsing
// =============================================================================

// browseRow is one visible line of the browser: a node at its depth.
type browseRow struct {
	node  *tree.Node
	depth int
}

// browseModel is the bubbletea model for the interactive tree viewer.
// Collapsed nodes hide their subtree; rows holds the currently visible
// nodes in pre-order.
type browseModel struct {
	root      *tree.Node
	collapsed map[*tree.Node]bool
	rows      []browseRow
	cursor    int
	height    int
	offset    int
}

// newBrowseModel creates a browser showing the whole tree expanded.
func newBrowseModel(root *tree.Node) *browseModel {
	m := &browseModel{
		root:      root,
		collapsed: make(map[*tree.Node]bool),
		height:    15,
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows after an expand or collapse.
func (m *browseModel) rebuild() {
	m.rows = m.rows[:0]
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		m.rows = append(m.rows, browseRow{node: n, depth: depth})
		if m.collapsed[n] {
			return
		}
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	walk(m.root, 0)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "right", "l", "enter":
			n := m.rows[m.cursor].node
			if m.collapsed[n] {
				delete(m.collapsed, n)
				m.rebuild()
			}
		case "left", "h":
			n := m.rows[m.cursor].node
			if !m.collapsed[n] && n.HasChildren() {
				m.collapsed[n] = true
				m.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse: " + m.root.Name()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  →/← expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "  "
		if row.node.HasChildren() {
			marker = "▾ "
			if m.collapsed[row.node] {
				marker = "▸ "
			}
		}

		style := listNormalStyle
		if i == m.cursor {
			style = listSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(strings.Repeat("  ", row.depth))
		b.WriteString(listDimStyle.Render(marker))
		b.WriteString(style.Render(row.node.Name()))
		if content, ok := row.node.Content(); ok {
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  %v", content)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d nodes", m.cursor+1, len(m.rows))))
	return b.String()
}
