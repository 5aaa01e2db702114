package darkmode

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// DarkNameSuffix is appended to the name of a generated dark document.
const DarkNameSuffix = " (Dark)"

var errNilDocument = fmt.Errorf("%w: nil theme document", themeerrors.ErrInvalidArgument)

// ReportEntry compares one colour pairing before and after synthesis.
type ReportEntry struct {
	Name     string  `json:"name" yaml:"name"`
	Light    float64 `json:"light" yaml:"light"`
	Dark     float64 `json:"dark" yaml:"dark"`
	Improved bool    `json:"improved" yaml:"improved"`
}

// Preview is a side-effect free look at what synthesis would produce.
type Preview struct {
	Light          theme.ColorSet `json:"light" yaml:"light"`
	Dark           theme.ColorSet `json:"dark" yaml:"dark"`
	ContrastReport []ReportEntry  `json:"contrastReport" yaml:"contrastReport"`
	Adjustments    []Adjustment   `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

type rolePair struct {
	name   string
	fg, bg string
}

var reportPairs = []rolePair{
	{"Text on Surface", theme.RoleText, theme.RoleSurface},
	{"Secondary Text on Surface", theme.RoleTextSecondary, theme.RoleSurface},
	{"Muted Text on Surface", theme.RoleTextMuted, theme.RoleSurface},
	{"Text on Background", theme.RoleText, theme.RoleBackground},
	{"Primary on Surface", theme.RolePrimary, theme.RoleSurface},
	{"Border on Surface", theme.RoleBorder, theme.RoleSurface},
}

// GenerateDarkMode returns a clone of doc carrying a synthesized dark overlay.
// Only the name and the dark block change.
func GenerateDarkMode(doc *theme.Document, opts Options) (*theme.Document, error) {
	out, _, err := GenerateDarkModeReport(doc, opts)
	return out, err
}

// GenerateDarkModeReport is GenerateDarkMode that also returns the synthesis
// result so contrast shortfalls can be surfaced.
func GenerateDarkModeReport(doc *theme.Document, opts Options) (*theme.Document, Result, error) {
	if doc == nil {
		return nil, Result{}, errNilDocument
	}

	light, err := ResolveColors(doc)
	if err != nil {
		return nil, Result{}, err
	}
	result, err := Synthesize(light, opts)
	if err != nil {
		return nil, Result{}, err
	}

	out := doc.Clone()
	if !strings.HasSuffix(out.Meta.Name, DarkNameSuffix) {
		out.Meta.Name += DarkNameSuffix
	}
	out.DarkMode = &theme.DarkMode{Enabled: true, Colors: result.Colors.Clone()}
	return out, result, nil
}

// PreviewDarkMode synthesizes without producing a document.
func PreviewDarkMode(doc *theme.Document, opts Options) (Preview, error) {
	if doc == nil {
		return Preview{}, errNilDocument
	}

	light, err := ResolveColors(doc)
	if err != nil {
		return Preview{}, err
	}
	result, err := Synthesize(light, opts)
	if err != nil {
		return Preview{}, err
	}

	report, err := compare(light, result.Colors)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Light:          light,
		Dark:           result.Colors,
		ContrastReport: report,
		Adjustments:    result.Adjustments,
	}, nil
}

// ResolveColors returns doc's colour set with references followed and every
// value normalized to #rrggbb.
func ResolveColors(doc *theme.Document) (theme.ColorSet, error) {
	return resolveSet(doc.Tree(), doc.Colors)
}

// ResolveDarkColors returns the colours a dark-mode reader sees: the resolved
// light set with the enabled overlay applied on top. Without an enabled overlay
// it equals ResolveColors.
func ResolveDarkColors(doc *theme.Document) (theme.ColorSet, error) {
	light, err := ResolveColors(doc)
	if err != nil || !doc.DarkEnabled() {
		return light, err
	}
	overlay, err := resolveSet(doc.Tree(), doc.DarkMode.Colors)
	if err != nil {
		return nil, err
	}
	for role, hex := range overlay {
		light[role] = hex
	}
	return light, nil
}

func resolveSet(tree map[string]any, colors theme.ColorSet) (theme.ColorSet, error) {
	out := make(theme.ColorSet, len(colors))
	for _, role := range colors.Roles() {
		value, err := tokens.ResolveString(tree, colors[role])
		if err != nil {
			return nil, err
		}
		hex, err := color.Normalize(value)
		if err != nil {
			return nil, err
		}
		out[role] = hex
	}
	return out, nil
}

func compare(light, dark theme.ColorSet) ([]ReportEntry, error) {
	report := make([]ReportEntry, 0, len(reportPairs))
	for _, p := range reportPairs {
		if !hasPair(light, p) || !hasPair(dark, p) {
			continue
		}
		l, err := contrast.Ratio(light[p.fg], light[p.bg])
		if err != nil {
			return nil, err
		}
		d, err := contrast.Ratio(dark[p.fg], dark[p.bg])
		if err != nil {
			return nil, err
		}
		report = append(report, ReportEntry{Name: p.name, Light: l, Dark: d, Improved: d > l})
	}
	return report, nil
}

func hasPair(colors theme.ColorSet, p rolePair) bool {
	return colors.Role(p.fg).IsPresent() && colors.Role(p.bg).IsPresent()
}
