package tui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles of the form program
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Row         lipgloss.Style
	Cursor      lipgloss.Style
	Detail      lipgloss.Style
	Placeholder lipgloss.Style
	Disabled    lipgloss.Style
	Invalid     lipgloss.Style
	Editing     lipgloss.Style
	Option      lipgloss.Style
	Chosen      lipgloss.Style
	Panel       lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns the standard styles
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),
		Footer:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		Row:         lipgloss.NewStyle(),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Disabled:    lipgloss.NewStyle().Faint(true),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Editing:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Chosen:      lipgloss.NewStyle().Bold(true).Underline(true),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
