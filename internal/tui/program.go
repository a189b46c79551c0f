package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the form in the terminal until the user quits and returns the
// captured values
func Run(cfg Config, opts ...tea.ProgramOption) (map[string]string, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defer m.former.Dispose()

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.Values(), nil
}
