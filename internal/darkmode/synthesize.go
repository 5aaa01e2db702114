package darkmode

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/optional"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Adjustment records one contrast enforcement pass.
type Adjustment struct {
	Pair       string  `json:"pair" yaml:"pair"`
	Foreground string  `json:"foreground" yaml:"foreground"`
	Background string  `json:"background" yaml:"background"`
	Required   float64 `json:"required" yaml:"required"`
	Before     float64 `json:"before" yaml:"before"`
	After      float64 `json:"after" yaml:"after"`
	Attempts   int     `json:"attempts" yaml:"attempts"`
	Met        bool    `json:"met" yaml:"met"`
}

// Result is the outcome of Synthesize.
type Result struct {
	Colors      theme.ColorSet `json:"colors" yaml:"colors"`
	Adjustments []Adjustment   `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

// Shortfalls returns the enforcement passes that ended below their target.
func (r Result) Shortfalls() []Adjustment {
	var out []Adjustment
	for _, a := range r.Adjustments {
		if !a.Met {
			out = append(out, a)
		}
	}
	return out
}

type roleTransform func(hex string) (string, error)

type rolePass struct {
	role string
	fn   roleTransform
}

// Synthesize derives a dark colour set from light. Every value in light must
// be a hex literal; resolve references first. Roles absent from light stay
// absent from the result, and unknown roles pass through unchanged.
func Synthesize(light theme.ColorSet, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults()
	b := bands[opts.Intensity]

	dark := make(theme.ColorSet, len(light))
	for _, role := range light.Roles() {
		normalized, err := color.Normalize(light[role])
		if err != nil {
			return Result{}, err
		}
		dark[role] = normalized
	}

	setL := func(l float64) roleTransform {
		return func(hex string) (string, error) { return color.SetLightness(hex, l) }
	}
	brand := func(hex string) (string, error) { return b.shiftBrand(hex, opts.SaturationAdjustment) }

	passes := []rolePass{
		{theme.RoleSurface, setL(b.surface)},
		{theme.RoleSurfaceSecondary, setL(b.surfaceSecondary)},
		{theme.RoleSurfaceHover, setL(b.surfaceHover)},
		{theme.RoleBackground, setL(b.background())},
		{theme.RoleText, setL(b.text)},
		{theme.RoleTextSecondary, setL(b.textSecondary)},
		{theme.RoleTextMuted, setL(b.textMuted)},
		{theme.RoleBorder, setL(b.border(borderMix))},
		{theme.RoleBorderStrong, setL(b.border(borderStrongMix))},
	}
	if !opts.PreserveBrandColors {
		passes = append(passes, rolePass{theme.RolePrimary, brand}, rolePass{theme.RoleSecondary, brand})
	}
	for _, role := range theme.SemanticRoles {
		passes = append(passes, rolePass{role, brand})
	}

	for _, p := range passes {
		out, err := optional.Map(dark.Role(p.role), p.fn)
		if err != nil {
			return Result{}, err
		}
		if v, ok := out.Get(); ok {
			dark[p.role] = v
		}
	}

	result := Result{Colors: dark}
	if !opts.EnsureContrast {
		return result, nil
	}

	enforced := []struct {
		pair     string
		fg, bg   string
		required float64
		fgFixed  bool
	}{
		{"Text on Surface", theme.RoleText, theme.RoleSurface, opts.MinTextContrast, false},
		{"Primary on Surface", theme.RolePrimary, theme.RoleSurface, opts.MinUIContrast, opts.PreserveBrandColors},
	}
	for _, e := range enforced {
		adj, ok, err := enforceContrast(dark, e.pair, e.fg, e.bg, e.required, e.fgFixed, result.Adjustments)
		if err != nil {
			return Result{}, err
		}
		if ok {
			result.Adjustments = append(result.Adjustments, adj)
		}
	}

	// Later passes may move a shared background, so every record reflects the
	// final colours.
	for i := range result.Adjustments {
		adj := &result.Adjustments[i]
		ratio, err := contrast.Ratio(dark[adj.Foreground], dark[adj.Background])
		if err != nil {
			return Result{}, err
		}
		adj.After = ratio
		adj.Met = ratio >= adj.Required
	}
	return result, nil
}

// shiftBrand lifts a brand colour by less than the surfaces move so the hue
// stays recognizable, then applies the saturation delta.
func (b band) shiftBrand(hex string, saturationDelta float64) (string, error) {
	dark, err := color.IsDark(hex)
	if err != nil {
		return "", err
	}

	lift := b.brandShift
	if !dark {
		lift /= 3
	}
	out, err := color.Lighten(hex, lift)
	if err != nil {
		return "", err
	}
	if saturationDelta == 0 {
		return out, nil
	}
	return color.AdjustSaturation(out, saturationDelta)
}

// enforceContrast widens the lightness gap between fg and bg in fixed steps
// until required is met or MaxContrastAttempts is exhausted. The pair is
// skipped when either role is absent. A step that would push one of the
// earlier pairs below its floor is undone and ends the pass.
func enforceContrast(colors theme.ColorSet, pair, fg, bg string, required float64, fgFixed bool, earlier []Adjustment) (Adjustment, bool, error) {
	if !colors.Role(fg).IsPresent() || !colors.Role(bg).IsPresent() {
		return Adjustment{}, false, nil
	}

	before, err := contrast.Ratio(colors[fg], colors[bg])
	if err != nil {
		return Adjustment{}, false, err
	}

	adj := Adjustment{Pair: pair, Foreground: fg, Background: bg, Required: required, Before: before, After: before}
	for attempt := 0; attempt < MaxContrastAttempts && adj.After < required; attempt++ {
		prevFg, prevBg := colors[fg], colors[bg]
		if err := widenGap(colors, fg, bg, fgFixed); err != nil {
			return Adjustment{}, false, err
		}
		broken, err := breaksEarlier(colors, earlier, prevFg, prevBg, fg, bg)
		if err != nil {
			return Adjustment{}, false, err
		}
		if broken {
			colors[fg], colors[bg] = prevFg, prevBg
			break
		}
		adj.Attempts++
		adj.After, err = contrast.Ratio(colors[fg], colors[bg])
		if err != nil {
			return Adjustment{}, false, err
		}
	}
	adj.Met = adj.After >= required
	return adj, true, nil
}

// widenGap moves the foreground away from the background by ContrastStep.
// Once the foreground is pinned at an end of the lightness range, or fixed,
// the background moves the other way instead.
func widenGap(colors theme.ColorSet, fg, bg string, fgFixed bool) error {
	fgHSL, err := color.HexToHSL(colors[fg])
	if err != nil {
		return err
	}
	bgHSL, err := color.HexToHSL(colors[bg])
	if err != nil {
		return err
	}

	step := ContrastStep
	if fgHSL.L < bgHSL.L {
		step = -step
	}
	pinned := (step > 0 && fgHSL.L >= 100) || (step < 0 && fgHSL.L <= 0)

	if fgFixed || pinned {
		colors[bg], err = color.AdjustLightness(colors[bg], -step)
		return err
	}
	colors[fg], err = color.AdjustLightness(colors[fg], step)
	return err
}

// breaksEarlier reports whether the last step lowered an earlier pair that
// shares a moved role to below its floor.
func breaksEarlier(colors theme.ColorSet, earlier []Adjustment, prevFg, prevBg, fg, bg string) (bool, error) {
	previous := map[string]string{}
	if colors[fg] != prevFg {
		previous[fg] = prevFg
	}
	if colors[bg] != prevBg {
		previous[bg] = prevBg
	}

	for _, e := range earlier {
		_, fgMoved := previous[e.Foreground]
		_, bgMoved := previous[e.Background]
		if !fgMoved && !bgMoved {
			continue
		}
		now, err := contrast.Ratio(colors[e.Foreground], colors[e.Background])
		if err != nil {
			return false, err
		}
		if now >= e.Required {
			continue
		}
		oldFg, oldBg := colors[e.Foreground], colors[e.Background]
		if fgMoved {
			oldFg = previous[e.Foreground]
		}
		if bgMoved {
			oldBg = previous[e.Background]
		}
		was, err := contrast.Ratio(oldFg, oldBg)
		if err != nil {
			return false, err
		}
		if now < was {
			return true, nil
		}
	}
	return false, nil
}
