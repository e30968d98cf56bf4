package effect

import "github.com/charmbracelet/lipgloss"

// Style controls the component's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle().Bold(true),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
