package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Selected lipgloss.Style
	Correct  lipgloss.Style
	Wrong    lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Box      lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			Title:    plain.Bold(true),
			Subtle:   plain,
			Selected: plain.Bold(true),
			Correct:  plain,
			Wrong:    plain,
			Error:    plain,
			Notice:   plain,
			Box:      plain.Padding(0, 1),
		}
	}
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Correct:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Wrong:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Notice:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
}
