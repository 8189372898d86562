package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style

	// Bracket styles span boundary markers of types without a type style.
	Bracket lipgloss.Style

	Inspector      lipgloss.Style
	InspectorLabel lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Bracket:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Inspector: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		InspectorLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
