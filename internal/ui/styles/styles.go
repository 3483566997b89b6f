// Package styles holds the lipgloss styles shared by the demo UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Set is the style palette, built once from the configured accent colors.
type Set struct {
	AccentFrom lipgloss.Color
	AccentTo   lipgloss.Color

	Panel   lipgloss.Style
	Cursor  lipgloss.Style
	Done    lipgloss.Style
	Muted   lipgloss.Style
	Counter lipgloss.Style
	Help    lipgloss.Style
}

// New builds the palette from two hex accent colors.
func New(accentFrom, accentTo string) Set {
	from := lipgloss.Color(accentFrom)
	to := lipgloss.Color(accentTo)

	return Set{
		AccentFrom: from,
		AccentTo:   to,
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Cursor:  lipgloss.NewStyle().Foreground(from).Bold(true),
		Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Counter: lipgloss.NewStyle().Foreground(to).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Title renders text in bold with the accent gradient.
func (s Set) Title(text string) string {
	return applyGradient(text, s.AccentFrom, s.AccentTo)
}
