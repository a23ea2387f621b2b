package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/busroute/planner"
	"github.com/katalvlaran/busroute/report"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "plan route")),
	Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "pick again")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// model lets the user pick a home stop and shows the route from there.
// The destination is never offered as a source.
type model struct {
	planner *planner.Planner
	sources []int
	cursor  int
	theme   report.Theme

	itinerary *planner.Itinerary
	err       error
	help      help.Model
}

// newModel places the cursor on initial when it is a valid source and on
// the first stop otherwise.
func newModel(p *planner.Planner, theme report.Theme, initial int) model {
	m := model{
		planner: p,
		sources: p.Network().Sources(),
		theme:   theme,
		help:    help.New(),
	}
	for i, v := range m.sources {
		if v == initial {
			m.cursor = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.itinerary = nil
			m.err = nil
		case m.itinerary != nil:
			// Only Back and Quit apply while a route is shown.
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.sources)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Choose):
			if len(m.sources) == 0 {
				break
			}
			m.itinerary, m.err = m.planner.Plan(m.sources[m.cursor])
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	net := m.planner.Network()

	b.WriteString(titleStyle.Render(net.Name))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.itinerary != nil:
		b.WriteString(report.Render(m.itinerary, m.theme))
	default:
		b.WriteString("Select your Home (starting point):\n")
		for i, v := range m.sources {
			label := net.Label(v)
			if i == m.cursor {
				b.WriteString(cursorStyle.Render(">") + " " + selectedStyle.Render(label))
			} else {
				b.WriteString("  " + label)
			}
			b.WriteString("\n")
		}
		if len(m.sources) == 0 {
			b.WriteString(fmt.Sprintf("  (no stop besides %s)\n", net.Label(net.Destination)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}
