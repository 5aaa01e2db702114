package render

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func newRenderer(t *testing.T, doc *theme.Document) *Renderer {
	t.Helper()
	r, err := New(&bytes.Buffer{}, doc)
	require.NoError(t, err)
	return r
}

func TestPaletteFor(t *testing.T) {
	light, err := PaletteFor(theme.Default())
	require.NoError(t, err)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#2563eb"}, light[theme.RolePrimary],
		"without an overlay both halves match")

	dark, err := darkmode.GenerateDarkMode(theme.Default(), darkmode.DefaultOptions())
	require.NoError(t, err)
	p, err := PaletteFor(dark)
	require.NoError(t, err)

	surface, ok := p.Hex(theme.RoleSurface, true)
	require.True(t, ok)
	assert.Equal(t, dark.DarkMode.Colors[theme.RoleSurface], surface)
	surface, _ = p.Hex(theme.RoleSurface, false)
	assert.Equal(t, "#ffffff", surface)

	_, ok = p.Hex("nothing", false)
	assert.False(t, ok)
	assert.Equal(t, lipgloss.NoColor{}, p.Color("nothing"))

	_, err = PaletteFor(nil)
	assert.ErrorIs(t, err, themeerrors.ErrInvalidArgument)

	broken := theme.Default()
	broken.Colors["link"] = "colors.missing"
	_, err = PaletteFor(broken)
	assert.ErrorIs(t, err, themeerrors.ErrUnresolvedToken)
}

func TestStyleAppliesInOrder(t *testing.T) {
	p, err := PaletteFor(theme.Default())
	require.NoError(t, err)

	s := Style(lipgloss.NewStyle(), p, Foreground(theme.RoleText), Foreground(theme.RolePrimary), Bold())
	assert.Equal(t, p[theme.RolePrimary], s.GetForeground())
	assert.True(t, s.GetBold())

	base := []StyleApplier{Bold()}
	extended := cloneAppliers(base, Padding(1, 2))
	assert.Len(t, base, 1)
	assert.Len(t, extended, 2)
	assert.Equal(t, 2, Style(lipgloss.NewStyle(), p, extended...).GetPaddingLeft())
}

func TestInkFor(t *testing.T) {
	cases := map[string]string{
		"#ffffff": "#000000",
		"#fde047": "#000000",
		"#111827": "#ffffff",
		"#2563eb": "#ffffff",
	}
	for hex, want := range cases {
		got, err := inkFor(hex)
		require.NoError(t, err)
		assert.Equal(t, want, got, hex)
	}
}

func TestSwatches(t *testing.T) {
	r := newRenderer(t, theme.Default())

	shades, err := color.GeneratePalette("#2563eb", 3)
	require.NoError(t, err)
	out, err := r.Swatches(shades)
	require.NoError(t, err)
	for _, shade := range shades {
		assert.Contains(t, out, shade.Hex)
	}

	_, err = r.Swatch("blue", "x")
	assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
}

func TestBadgeAndAlert(t *testing.T) {
	r := newRenderer(t, theme.Default())

	assert.Contains(t, r.Badge(contrast.LevelAAA), "AAA")
	assert.Contains(t, r.Badge(contrast.LevelFail), "fail")

	assert.Contains(t, r.Alert(AlertIssue, "too faint"), "✖ too faint")
	r.SetUnicode(false)
	assert.Contains(t, r.Alert(AlertWarning, "borderline"), "! borderline")
	assert.Contains(t, r.Alert(AlertKind(42), "odd"), "i odd")
}

func TestButton(t *testing.T) {
	doc := theme.Default()
	doc.Buttons["ghost"] = map[string]string{"background": "#F8FAFC", "color": "colors.text"}
	doc.Buttons["broken"] = map[string]string{"background": "colors.nope"}
	r := newRenderer(t, doc)

	out, err := r.Button("primary")
	require.NoError(t, err)
	assert.Contains(t, out, "Primary")

	out, err = r.Button("ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "Ghost")

	_, err = r.Button("broken")
	assert.ErrorIs(t, err, themeerrors.ErrUnresolvedToken)

	_, err = r.Button("missing")
	assert.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
}

func TestShowcase(t *testing.T) {
	r := newRenderer(t, theme.Default())
	r.SetDark(true)

	out, err := r.Showcase()
	require.NoError(t, err)
	assert.Contains(t, out, "Default v1.0.0")
	assert.Contains(t, out, "Primary")
	assert.Contains(t, out, "Secondary")
	assert.Contains(t, out, "Muted text")
	assert.NotContains(t, out, "Link text", "roles the theme lacks are skipped")

	card := r.Card("Heading", "Body copy")
	assert.Contains(t, card, "Heading")
	assert.Contains(t, card, "Body copy")
}

func TestContrastTable(t *testing.T) {
	r := newRenderer(t, theme.Default())

	preview, err := darkmode.PreviewDarkMode(theme.Default(), darkmode.DefaultOptions())
	require.NoError(t, err)

	out := r.ContrastTable(preview.ContrastReport)
	assert.Contains(t, out, "Pair")
	assert.Contains(t, out, "Improved")
	for _, entry := range preview.ContrastReport {
		assert.Contains(t, out, entry.Name)
	}
}
