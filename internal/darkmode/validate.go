package darkmode

import (
	"fmt"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Finding describes one contrast problem.
type Finding struct {
	Pair     string  `json:"pair" yaml:"pair"`
	Ratio    float64 `json:"ratio" yaml:"ratio"`
	Required float64 `json:"required" yaml:"required"`
	Message  string  `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	return f.Message
}

// Validation is the outcome of ValidateDarkMode. Valid is false when any issue exists.
type Validation struct {
	Valid    bool      `json:"valid" yaml:"valid"`
	Issues   []Finding `json:"issues" yaml:"issues"`
	Warnings []Finding `json:"warnings" yaml:"warnings"`
}

// Rule is a contrast floor for one role pairing. A zero IssueBelow means the
// pair only ever warns.
type Rule struct {
	Name       string
	Foreground string
	Background string
	IssueBelow float64
	WarnBelow  float64
}

// DarkRules is the policy ValidateDarkMode applies.
var DarkRules = []Rule{
	{"Text on Surface", theme.RoleText, theme.RoleSurface, contrast.AAText, contrast.AAAText},
	{"Text on Background", theme.RoleText, theme.RoleBackground, contrast.AAText, contrast.AAAText},
	{"Secondary Text on Surface", theme.RoleTextSecondary, theme.RoleSurface, contrast.AAText, contrast.AAAText},
	{"Muted Text on Surface", theme.RoleTextMuted, theme.RoleSurface, contrast.UIComponent, contrast.AAText},
	{"Primary on Surface", theme.RolePrimary, theme.RoleSurface, 0, contrast.UIComponent},
	{"Border on Surface", theme.RoleBorder, theme.RoleSurface, 0, contrast.UIComponent},
	{"Strong Border on Surface", theme.RoleBorderStrong, theme.RoleSurface, 0, contrast.UIComponent},
}

// ValidateDarkMode checks a finished dark colour set against the contrast
// floors. Pairs with a missing role are skipped. Malformed colours are issues.
func ValidateDarkMode(colors theme.ColorSet) Validation {
	return CheckContrast(colors, DarkRules)
}

// CheckContrast applies rules to colors.
func CheckContrast(colors theme.ColorSet, rules []Rule) Validation {
	v := Validation{Issues: []Finding{}, Warnings: []Finding{}}

	for _, role := range colors.Roles() {
		if !color.IsHex(colors[role]) {
			v.Issues = append(v.Issues, Finding{
				Pair:    role,
				Message: fmt.Sprintf("%s: %q is not a hex colour", role, colors[role]),
			})
		}
	}

	for _, rule := range rules {
		fg, bg := colors[rule.Foreground], colors[rule.Background]
		if !color.IsHex(fg) || !color.IsHex(bg) {
			continue
		}
		ratio, err := contrast.Ratio(fg, bg)
		if err != nil {
			continue
		}

		switch {
		case ratio < rule.IssueBelow:
			v.Issues = append(v.Issues, newFinding(rule.Name, ratio, rule.IssueBelow))
		case ratio < rule.WarnBelow:
			v.Warnings = append(v.Warnings, newFinding(rule.Name, ratio, rule.WarnBelow))
		}
	}

	v.Valid = len(v.Issues) == 0
	return v
}

func newFinding(pair string, ratio, required float64) Finding {
	return Finding{
		Pair:     pair,
		Ratio:    ratio,
		Required: required,
		Message:  fmt.Sprintf("%s contrast %.2f:1 is below %.1f:1 (%s)", pair, ratio, required, contrast.Grade(ratio)),
	}
}
