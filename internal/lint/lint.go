// Package lint applies the contrast policy to a whole theme document.
package lint

import (
	"fmt"

	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Mode names the colour set a finding applies to.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Severity separates failures from advice.
type Severity string

const (
	SeverityIssue   Severity = "issue"
	SeverityWarning Severity = "warning"
)

// Finding is one contrast result.
type Finding struct {
	Mode     Mode     `json:"mode" yaml:"mode"`
	Severity Severity `json:"severity" yaml:"severity"`
	darkmode.Finding `yaml:",inline"`
}

// Report is the outcome of Check.
type Report struct {
	Theme    string    `json:"theme" yaml:"theme"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Valid reports whether no finding is an issue.
func (r Report) Valid() bool {
	return r.Count(SeverityIssue) == 0
}

// Count returns the number of findings with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// LightRules extends the dark policy with the status colours, which only warn.
var LightRules = append(append([]darkmode.Rule(nil), darkmode.DarkRules...),
	darkmode.Rule{Name: "Success on Surface", Foreground: theme.RoleSuccess, Background: theme.RoleSurface, WarnBelow: contrast.UIComponent},
	darkmode.Rule{Name: "Warning on Surface", Foreground: theme.RoleWarning, Background: theme.RoleSurface, WarnBelow: contrast.UIComponent},
	darkmode.Rule{Name: "Error on Surface", Foreground: theme.RoleError, Background: theme.RoleSurface, WarnBelow: contrast.UIComponent},
	darkmode.Rule{Name: "Info on Surface", Foreground: theme.RoleInfo, Background: theme.RoleSurface, WarnBelow: contrast.UIComponent},
)

// Check resolves the document's colours and applies LightRules. When an
// enabled dark overlay exists, the effective dark set (light colours with the
// overlay applied) goes through darkmode.ValidateDarkMode as well.
func Check(doc *theme.Document) (Report, error) {
	if doc == nil {
		return Report{}, fmt.Errorf("%w: nil theme document", themeerrors.ErrInvalidArgument)
	}

	light, err := darkmode.ResolveColors(doc)
	if err != nil {
		return Report{}, err
	}

	report := Report{Theme: doc.Meta.Name, Findings: []Finding{}}
	report.add(ModeLight, darkmode.CheckContrast(light, LightRules))

	if doc.DarkEnabled() {
		dark, err := darkmode.ResolveDarkColors(doc)
		if err != nil {
			return Report{}, err
		}
		report.add(ModeDark, darkmode.ValidateDarkMode(dark))
	}
	return report, nil
}

func (r *Report) add(mode Mode, v darkmode.Validation) {
	for _, f := range v.Issues {
		r.Findings = append(r.Findings, Finding{Mode: mode, Severity: SeverityIssue, Finding: f})
	}
	for _, f := range v.Warnings {
		r.Findings = append(r.Findings, Finding{Mode: mode, Severity: SeverityWarning, Finding: f})
	}
}
