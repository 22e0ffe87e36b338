package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphlight/pkg/graph"
	"github.com/matzehuels/graphlight/pkg/style"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorFaint)
	headerStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
)

// =============================================================================
// NodePickerModel - Interactive highlight selection
// =============================================================================

// NodePickerModel is the bubbletea model for choosing highlighted nodes.
type NodePickerModel struct {
	Nodes   []string
	Degrees []int
	Chosen  map[string]bool
	Cursor  int
	Height  int
	Offset  int
	// Done is set when the user confirms; quitting leaves it false.
	Done bool
}

// NewNodePickerModel creates a picker over g's nodes with initial checked.
func NewNodePickerModel(g *graph.Graph, initial style.NodeSet) NodePickerModel {
	nodes := g.Nodes()
	degrees := make([]int, len(nodes))
	chosen := make(map[string]bool, len(initial))
	for i, id := range nodes {
		degrees[i] = g.Degree(id)
		if initial.Has(id) {
			chosen[id] = true
		}
	}
	return NodePickerModel{
		Nodes:   nodes,
		Degrees: degrees,
		Chosen:  chosen,
		Height:  15,
	}
}

func (m NodePickerModel) Init() tea.Cmd {
	return nil
}

func (m NodePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.Nodes) > 0 {
				id := m.Nodes[m.Cursor]
				if m.Chosen[id] {
					delete(m.Chosen, id)
				} else {
					m.Chosen[id] = true
				}
			}
		case "a":
			if len(m.Chosen) == len(m.Nodes) {
				m.Chosen = map[string]bool{}
			} else {
				for _, id := range m.Nodes {
					m.Chosen[id] = true
				}
			}
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m NodePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Highlight Nodes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Nodes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		id := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[id] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor, mark, id, strconv.Itoa(m.Degrees[i])})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "", "Node", "Degree").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Nodes) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Chosen[m.Nodes[idx]] {
				base = base.Foreground(colorAmber)
			} else if m.Degrees[idx] == 0 {
				base = base.Foreground(colorFaint)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d selected", m.Cursor+1, len(m.Nodes), len(m.Chosen))))

	return b.String()
}

// Selection returns the chosen nodes.
func (m NodePickerModel) Selection() style.NodeSet {
	out := make(style.NodeSet, len(m.Chosen))
	for id := range m.Chosen {
		out[id] = struct{}{}
	}
	return out
}

// pickNodes runs the picker. It reports false when the user quit without
// confirming.
func pickNodes(g *graph.Graph, initial style.NodeSet) (style.NodeSet, bool, error) {
	p := tea.NewProgram(NewNodePickerModel(g, initial))
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	fm, ok := finalModel.(NodePickerModel)
	if !ok || !fm.Done {
		return nil, false, nil
	}
	return fm.Selection(), true, nil
}
