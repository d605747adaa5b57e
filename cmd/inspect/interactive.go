package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	root     *node
	expanded map[*node]bool
	filter   textinput.Model
	filename string
	rows     []browserRow
	buf      []byte
	cursor   int
	state    modelState
}

type browserRow struct {
	node  *node
	depth int
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
)

func newBrowserModel(filename string, buf []byte) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "key or value"
	ti.Prompt = "filter: "
	ti.Width = 40

	return &browserModel{
		filename: filename,
		buf:      buf,
		expanded: make(map[*node]bool),
		filter:   ti,
		state:    stateBrowse,
	}
}

type parsedMsg struct {
	err  error
	root *node
}

func (m *browserModel) Init() tea.Cmd {
	return m.parse
}

func (m *browserModel) parse() tea.Msg {
	root, err := parseBuffer(m.buf, zap.NewNop())
	if err != nil {
		return parsedMsg{err: err}
	}
	return parsedMsg{root: root}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.filter.Blur()
				m.state = stateBrowse
				m.reflow()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.reflow()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "enter", " ":
			if m.cursor < len(m.rows) {
				n := m.rows[m.cursor].node
				if len(n.children) > 0 {
					m.expanded[n] = !m.expanded[n]
					m.reflow()
				}
			}

		case "/":
			m.state = stateFilter
			m.filter.Focus()
			return m, textinput.Blink
		}

	case parsedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.root
		m.expanded[m.root] = true
		m.reflow()
	}

	return m, nil
}

// reflow rebuilds the visible row list from the tree, honoring
// expansion state, or from a flat filtered walk when a filter is set.
func (m *browserModel) reflow() {
	m.rows = m.rows[:0]
	if m.root == nil {
		return
	}

	if query := strings.ToLower(m.filter.Value()); query != "" {
		m.collectMatches(m.root, query)
	} else {
		m.collectVisible(m.root, 0)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browserModel) collectVisible(n *node, depth int) {
	m.rows = append(m.rows, browserRow{node: n, depth: depth})
	if !m.expanded[n] {
		return
	}
	for _, child := range n.children {
		m.collectVisible(child, depth+1)
	}
}

func (m *browserModel) collectMatches(n *node, query string) {
	if strings.Contains(strings.ToLower(n.label), query) ||
		strings.Contains(strings.ToLower(n.value), query) {
		m.rows = append(m.rows, browserRow{node: n})
	}
	for _, child := range n.children {
		m.collectMatches(child, query)
	}
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.root == nil {
		return "Parsing buffer..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Buffer Inspector"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%s (%d bytes)", m.filename, len(m.buf)))
	b.WriteString("\n\n")

	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("no matches"))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		line := m.formatRow(row)
		if i == m.cursor && m.state == stateBrowse {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.state {
	case stateFilter:
		b.WriteString(helpStyle.Render("type to filter • enter apply • esc clear"))
	default:
		b.WriteString(helpStyle.Render("↑/↓ move • enter expand/collapse • / filter • q quit"))
	}

	return b.String()
}

func (m *browserModel) formatRow(row browserRow) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.depth))

	n := row.node
	if len(n.children) > 0 {
		if m.expanded[n] {
			b.WriteString("▾ ")
		} else {
			b.WriteString("▸ ")
		}
	} else {
		b.WriteString("  ")
	}

	if n.label != "" {
		b.WriteString(keyStyle.Render(n.label))
		b.WriteString(": ")
	}
	b.WriteString(tagStyle.Render(n.tag.String()))
	if n.value != "" {
		b.WriteString(" ")
		b.WriteString(n.value)
	}
	return b.String()
}

func runInteractive(filename string, buf []byte) error {
	p := tea.NewProgram(newBrowserModel(filename, buf), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
