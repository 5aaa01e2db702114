package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			if m.err != nil {
				return m, nil
			}
			m.accepted = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Mode):
			m.dark = !m.dark
		case key.Matches(msg, m.keys.Intensity):
			m.opts.Intensity = nextIntensity(m.opts.Intensity)
			m.refresh()
		case key.Matches(msg, m.keys.Brand):
			m.opts.PreserveBrandColors = !m.opts.PreserveBrandColors
			m.refresh()
		case key.Matches(msg, m.keys.Contrast):
			m.opts.EnsureContrast = !m.opts.EnsureContrast
			m.refresh()
		}
	}
	return m, nil
}
