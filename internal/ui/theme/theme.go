// Package theme holds the colors shared by the dashboard and CLI output.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/analitik/internal/goal"
)

var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Sapphire = lipgloss.Color("#74c7ec")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Teal     = lipgloss.Color("#94e2d5")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Error = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

var statusColors = map[goal.Status]lipgloss.Color{
	goal.StatusVeryLow:  Red,
	goal.StatusLow:      Peach,
	goal.StatusAverage:  Yellow,
	goal.StatusHigh:     Green,
	goal.StatusVeryHigh: Teal,
}

// Status returns the style used to print a goal status.
func Status(s goal.Status) lipgloss.Style {
	color, ok := statusColors[s]
	if !ok {
		color = Text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(s == goal.StatusVeryHigh)
}

// StatusTag renders "[high]" in the status color.
func StatusTag(s goal.Status) string {
	return Status(s).Render("[" + s.String() + "]")
}
