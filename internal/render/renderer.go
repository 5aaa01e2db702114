package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Renderer styles output for one writer using one theme's palette. Colour
// escapes are dropped automatically when the writer is not a terminal.
type Renderer struct {
	lg      *lipgloss.Renderer
	doc     *theme.Document
	tree    map[string]any
	palette Palette
	unicode bool
}

// New builds a Renderer that draws with doc's colours on w.
func New(w io.Writer, doc *theme.Document) (*Renderer, error) {
	palette, err := PaletteFor(doc)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		lg:      lipgloss.NewRenderer(w),
		doc:     doc,
		tree:    doc.Tree(),
		palette: palette,
		unicode: true,
	}, nil
}

// SetDark forces which half of each adaptive colour is used instead of
// relying on background detection.
func (r *Renderer) SetDark(dark bool) {
	r.lg.SetHasDarkBackground(dark)
}

// SetUnicode switches alert icons to ASCII fallbacks when false.
func (r *Renderer) SetUnicode(enabled bool) {
	r.unicode = enabled
}

// Palette returns the resolved palette.
func (r *Renderer) Palette() Palette {
	return r.palette
}

func (r *Renderer) style(appliers ...StyleApplier) lipgloss.Style {
	return Style(r.lg.NewStyle(), r.palette, appliers...)
}

// Swatch fills a block with hex and writes label on it in black or white,
// whichever contrasts more.
func (r *Renderer) Swatch(hex, label string) (string, error) {
	hex, err := color.Normalize(hex)
	if err != nil {
		return "", err
	}
	ink, err := inkFor(hex)
	if err != nil {
		return "", err
	}
	return r.lg.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(ink)).
		Padding(0, 1).
		Render(label), nil
}

// Swatches lays out a palette left to right, each block labelled with its
// step and hex value.
func (r *Renderer) Swatches(shades []color.Shade) (string, error) {
	blocks := make([]string, 0, len(shades))
	for _, shade := range shades {
		block, err := r.Swatch(shade.Hex, fmt.Sprintf("%d\n%s", shade.Step, shade.Hex))
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...), nil
}

func inkFor(hex string) (string, error) {
	onWhite, err := contrast.Ratio(hex, "#ffffff")
	if err != nil {
		return "", err
	}
	onBlack, err := contrast.Ratio(hex, "#000000")
	if err != nil {
		return "", err
	}
	if onWhite >= onBlack {
		return "#ffffff", nil
	}
	return "#000000", nil
}

var levelRoles = map[contrast.Level]string{
	contrast.LevelAAA:     theme.RoleSuccess,
	contrast.LevelAA:      theme.RoleSuccess,
	contrast.LevelAALarge: theme.RoleWarning,
	contrast.LevelFail:    theme.RoleError,
}

// Badge renders a WCAG grade in the theme's status colours.
func (r *Renderer) Badge(level contrast.Level) string {
	return r.style(
		Background(levelRoles[level]),
		Foreground(theme.RoleBackground),
		Padding(0, 1),
		Bold(),
	).Render(string(level))
}

// AlertKind selects the status colour and icon of an alert.
type AlertKind int

const (
	AlertInfo AlertKind = iota
	AlertWarning
	AlertIssue
)

var alertKinds = map[AlertKind]struct {
	role, icon, fallback string
}{
	AlertInfo:    {theme.RoleInfo, "ℹ", "i"},
	AlertWarning: {theme.RoleWarning, "⚠", "!"},
	AlertIssue:   {theme.RoleError, "✖", "x"},
}

// Alert renders message prefixed with the kind's icon.
func (r *Renderer) Alert(kind AlertKind, message string) string {
	k, ok := alertKinds[kind]
	if !ok {
		k = alertKinds[AlertInfo]
	}
	icon := k.icon
	if !r.unicode {
		icon = k.fallback
	}
	return r.style(Foreground(k.role)).Render(icon) + " " + message
}

// Button renders one of the theme's button variants. Values naming a colour
// role follow the palette so the button adapts to the background.
func (r *Renderer) Button(variant string) (string, error) {
	button, ok := r.doc.Buttons[variant]
	if !ok {
		return "", fmt.Errorf("%w: theme has no %q button", themeerrors.ErrInvalidArgument, variant)
	}

	bg, err := r.colorFor(button["background"], theme.RolePrimary)
	if err != nil {
		return "", err
	}
	fg, err := r.colorFor(button["color"], theme.RoleBackground)
	if err != nil {
		return "", err
	}

	label := cases.Title(language.Und).String(variant)
	return r.lg.NewStyle().Background(bg).Foreground(fg).Bold(true).Padding(0, 2).Render(label), nil
}

func (r *Renderer) colorFor(value, fallbackRole string) (lipgloss.TerminalColor, error) {
	if value == "" {
		return r.palette.Color(fallbackRole), nil
	}
	if role, ok := strings.CutPrefix(value, theme.SectionColors+"."); ok {
		if c, ok := r.palette[role]; ok {
			return c, nil
		}
	}

	resolved, err := tokens.ResolveString(r.tree, value)
	if err != nil {
		return nil, err
	}
	hex, err := color.Normalize(resolved)
	if err != nil {
		return nil, err
	}
	return lipgloss.Color(hex), nil
}

// Card frames body under a title using the surface, border and primary roles.
func (r *Renderer) Card(title, body string) string {
	heading := r.style(Foreground(theme.RolePrimary), Bold()).Render(title)
	text := r.style(Foreground(theme.RoleText)).Render(body)
	return r.style(cardAppliers...).Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", text))
}

var cardAppliers = []StyleApplier{
	Background(theme.RoleSurface),
	Border(theme.RoleBorder),
	Padding(1, 2),
}

// Showcase draws a card in the theme's colours with every button variant and
// the text roles it defines.
func (r *Renderer) Showcase() (string, error) {
	variants := make([]string, 0, len(r.doc.Buttons))
	for name := range r.doc.Buttons {
		variants = append(variants, name)
	}
	sort.Strings(variants)

	buttons := make([]string, 0, len(variants)*2)
	for _, name := range variants {
		b, err := r.Button(name)
		if err != nil {
			return "", err
		}
		buttons = append(buttons, b, " ")
	}

	lines := []string{}
	if len(buttons) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, buttons...), "")
	}
	for _, sample := range textSamples {
		if _, ok := r.palette[sample.role]; ok {
			lines = append(lines, r.style(Foreground(sample.role)).Render(sample.label))
		}
	}

	title := r.doc.Meta.Name
	if r.doc.Meta.Version != "" {
		title += " v" + r.doc.Meta.Version
	}
	heading := r.style(Foreground(theme.RolePrimary), Bold()).Render(title)
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{heading, ""}, lines...)...)
	return r.style(cloneAppliers(cardAppliers, Background(theme.RoleBackground))...).Render(body), nil
}

var textSamples = []struct{ role, label string }{
	{theme.RoleText, "Primary text"},
	{theme.RoleTextSecondary, "Secondary text"},
	{theme.RoleTextMuted, "Muted text"},
	{"link", "Link text"},
}

// ContrastTable tabulates a synthesis report with graded badges.
func (r *Renderer) ContrastTable(entries []darkmode.ReportEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		improved := "no"
		if e.Improved {
			improved = "yes"
		}
		rows = append(rows, []string{
			e.Name,
			fmt.Sprintf("%.2f:1", e.Light),
			fmt.Sprintf("%.2f:1", e.Dark),
			r.Badge(contrast.Grade(e.Dark)),
			improved,
		})
	}

	header := r.style(Bold(), Foreground(theme.RolePrimary))
	cell := r.lg.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.style(Foreground(theme.RoleBorder))).
		Headers("Pair", "Light", "Dark", "Grade", "Improved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return cell
		}).
		String()
}
