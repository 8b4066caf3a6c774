package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, the current value
	ColorHighlight = "205" // Magenta - for borders, the button
	ColorMuted     = "241" // Gray - for hints
)

// Styles contains shared style definitions used across the screen.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - screen title
	Box    lipgloss.Style // Rounded border around the screen
	Value  lipgloss.Style // The current-value label
	Button lipgloss.Style // The roll button
	Hint   lipgloss.Style // Help text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Value: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
