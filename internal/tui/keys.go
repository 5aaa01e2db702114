package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Mode      key.Binding
	Intensity key.Binding
	Brand     key.Binding
	Contrast  key.Binding
	Help      key.Binding
	Accept    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode:      key.NewBinding(key.WithKeys("d", "tab"), key.WithHelp("d", "light/dark")),
		Intensity: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "intensity")),
		Brand:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "preserve brand")),
		Contrast:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "enforce contrast")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Intensity, k.Accept, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Intensity, k.Brand, k.Contrast},
		{k.Accept, k.Quit, k.Help},
	}
}
