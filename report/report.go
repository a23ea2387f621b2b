// Package report renders planner itineraries as text.
//
// The plain rendering reproduces the classic itinerary listing:
//
//	Edges in the Shortest Route (from Home to College):
//	Stop 1 -> Stop 4 : 16
//	Stop 4 -> Stop 5 : 11
//	Stop 5 -> College : 23
//	Total : 50
//
// A Theme adds terminal styling through lipgloss.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/busroute/network"
	"github.com/katalvlaran/busroute/planner"
)

// Theme holds the styles applied to each part of a report.
// The zero Theme renders plain text.
type Theme struct {
	Header lipgloss.Style
	Stop   lipgloss.Style
	Weight lipgloss.Style
	Total  lipgloss.Style
	Muted  lipgloss.Style

	styled bool
}

// Plain returns the unstyled theme.
func Plain() Theme { return Theme{} }

// DefaultTheme returns the colour theme used by the CLI and TUI.
func DefaultTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Stop:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Weight: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Total:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Muted:  lipgloss.NewStyle().Faint(true),
		styled: true,
	}
}

func (t Theme) paint(s lipgloss.Style, text string) string {
	if !t.styled {
		return text
	}
	return s.Render(text)
}

// Header returns the first line of a report for it, without newline.
func Header(it *planner.Itinerary) string {
	return fmt.Sprintf("Edges in the Shortest Route (from %s to %s):", network.HomeLabel, it.Target.Label)
}

// Write renders it to w with theme t.
func Write(w io.Writer, it *planner.Itinerary, t Theme) error {
	_, err := io.WriteString(w, Render(it, t))
	return err
}

// Render returns the report for it as a string ending in a newline.
func Render(it *planner.Itinerary, t Theme) string {
	var b strings.Builder

	b.WriteString(t.paint(t.Header, Header(it)))
	b.WriteByte('\n')

	if !it.Reachable {
		b.WriteString(t.paint(t.Muted, fmt.Sprintf("No route from %s to %s", it.Source.Label, it.Target.Label)))
		b.WriteByte('\n')
		return b.String()
	}

	for _, l := range it.Legs {
		b.WriteString(t.paint(t.Stop, l.From.Label))
		b.WriteString(" -> ")
		b.WriteString(t.paint(t.Stop, l.To.Label))
		b.WriteString(" : ")
		b.WriteString(t.paint(t.Weight, fmt.Sprint(l.Weight)))
		b.WriteByte('\n')
	}
	b.WriteString(t.paint(t.Total, fmt.Sprintf("Total : %d", it.Total)))
	b.WriteByte('\n')

	return b.String()
}

// Text is Render with the plain theme.
func Text(it *planner.Itinerary) string { return Render(it, Plain()) }
