package style

import "github.com/charmbracelet/lipgloss"

// Lipgloss converts the style for the rendering collaborator. Conceal,
// frame, encircle, and overline have no terminal equivalent in lipgloss
// and are carried only in the descriptor string.
func (s Style) Lipgloss() lipgloss.Style {
	rendered := lipgloss.NewStyle().
		Bold(s.Bold).
		Faint(s.Dim).
		Italic(s.Italic).
		Underline(s.Underline || s.Underline2).
		Blink(s.Blink || s.Blink2).
		Reverse(s.Reverse).
		Strikethrough(s.Strike)

	if s.Foreground.IsSet() {
		rendered = rendered.Foreground(s.Foreground.Lipgloss())
	}
	if s.Background.IsSet() {
		rendered = rendered.Background(s.Background.Lipgloss())
	}
	return rendered
}
