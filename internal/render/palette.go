// Package render draws a theme's own colours in the terminal: swatches,
// contrast badges and sample components styled with lipgloss.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Palette maps colour roles to adaptive terminal colours. The light half is
// the resolved light set and the dark half is what a dark-mode reader sees.
type Palette map[string]lipgloss.AdaptiveColor

// PaletteFor resolves doc's colours into a Palette.
func PaletteFor(doc *theme.Document) (Palette, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil theme document", themeerrors.ErrInvalidArgument)
	}

	light, err := darkmode.ResolveColors(doc)
	if err != nil {
		return nil, err
	}
	dark, err := darkmode.ResolveDarkColors(doc)
	if err != nil {
		return nil, err
	}

	p := make(Palette, len(light))
	for role, hex := range light {
		p[role] = lipgloss.AdaptiveColor{Light: hex, Dark: dark[role]}
	}
	return p, nil
}

// Color returns the adaptive colour for role, or lipgloss.NoColor when the
// theme does not define it.
func (p Palette) Color(role string) lipgloss.TerminalColor {
	if c, ok := p[role]; ok {
		return c
	}
	return lipgloss.NoColor{}
}

// Hex returns the concrete value of role for one mode.
func (p Palette) Hex(role string, dark bool) (string, bool) {
	c, ok := p[role]
	if !ok {
		return "", false
	}
	if dark {
		return c.Dark, true
	}
	return c.Light, true
}
