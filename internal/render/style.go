package render

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, p Palette) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Palette) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, p Palette) lipgloss.Style {
	return fn(base, p)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, p Palette, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, p)
	}
	return base
}

// Foreground colours text with role.
func Foreground(role string) StyleFunc {
	return func(base lipgloss.Style, p Palette) lipgloss.Style {
		return base.Foreground(p.Color(role))
	}
}

// Background fills with role.
func Background(role string) StyleFunc {
	return func(base lipgloss.Style, p Palette) lipgloss.Style {
		return base.Background(p.Color(role))
	}
}

// Border draws a rounded border coloured with role.
func Border(role string) StyleFunc {
	return func(base lipgloss.Style, p Palette) lipgloss.Style {
		return base.Border(lipgloss.RoundedBorder()).BorderForeground(p.Color(role))
	}
}

// Padding sets vertical and horizontal padding.
func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Palette) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

// Bold sets bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Palette) lipgloss.Style {
		return base.Bold(true)
	}
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}
