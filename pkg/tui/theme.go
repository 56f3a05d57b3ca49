package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles used by the views.
type Theme struct {
	Title    lipgloss.Style
	NavItem  lipgloss.Style
	NavHere  lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	ErrText  lipgloss.Style
	PageBody lipgloss.Style
}

// NewTheme builds a theme by name. Unknown names fall back to the
// default theme. The dark flag selects readable contrast for light
// terminal backgrounds.
func NewTheme(name string, dark bool) Theme {
	accent := lipgloss.Color("#7C3AED")
	dim := lipgloss.Color("#6B7280")
	if !dark {
		dim = lipgloss.Color("#4B5563")
	}

	switch name {
	case "mono":
		accent = lipgloss.Color("15")
		dim = lipgloss.Color("8")
	}

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		NavItem:  lipgloss.NewStyle().Foreground(dim),
		NavHere:  lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		Label:    lipgloss.NewStyle().Foreground(dim),
		Hint:     lipgloss.NewStyle().Foreground(dim),
		ErrText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		PageBody: lipgloss.NewStyle().PaddingLeft(2).PaddingTop(1),
	}
}
