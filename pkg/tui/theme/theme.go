package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Grid   GridTheme
	Footer FooterTheme
}

// GridTheme styles the date grid.
type GridTheme struct {
	Header   lipgloss.Style
	Week     lipgloss.Style
	Day      lipgloss.Style
	Today    lipgloss.Style
	Event    lipgloss.Style
	Resizing lipgloss.Style
	Handle   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	event := lipgloss.NewStyle().
		Background(lipgloss.Color("63")).
		Foreground(lipgloss.Color("15"))

	return Theme{
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Week:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Underline(true),
			Event:    event,
			Resizing: event.Background(lipgloss.Color("212")).Foreground(lipgloss.Color("0")),
			Handle:   lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
	}
}
