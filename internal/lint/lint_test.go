package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func pairs(findings []Finding, mode Mode, severity Severity) []string {
	var out []string
	for _, f := range findings {
		if f.Mode == mode && f.Severity == severity {
			out = append(out, f.Pair)
		}
	}
	return out
}

func TestCheckDefaultTheme(t *testing.T) {
	report, err := Check(theme.Default())
	require.NoError(t, err)

	assert.Equal(t, "Default", report.Theme)
	assert.True(t, report.Valid())
	assert.Equal(t, 0, report.Count(SeverityIssue))
	assert.ElementsMatch(t,
		[]string{"Border on Surface", "Strong Border on Surface", "Warning on Surface"},
		pairs(report.Findings, ModeLight, SeverityWarning))
	assert.Empty(t, pairs(report.Findings, ModeDark, SeverityWarning))
}

func TestCheckReportsIssues(t *testing.T) {
	doc := theme.Default()
	doc.Colors[theme.RoleText] = "#cccccc"

	report, err := Check(doc)
	require.NoError(t, err)
	assert.False(t, report.Valid())
	assert.ElementsMatch(t,
		[]string{"Text on Surface", "Text on Background"},
		pairs(report.Findings, ModeLight, SeverityIssue))
}

func TestCheckFollowsReferences(t *testing.T) {
	doc := theme.Default()
	doc.Colors[theme.RoleText] = "colors.primary"

	report, err := Check(doc)
	require.NoError(t, err)
	assert.True(t, report.Valid(), "primary on white passes AA: %v", report.Findings)
	assert.Contains(t, pairs(report.Findings, ModeLight, SeverityWarning), "Text on Surface")
}

func TestCheckDarkOverlay(t *testing.T) {
	t.Run("synthesized", func(t *testing.T) {
		doc, err := darkmode.GenerateDarkMode(theme.Default(), darkmode.DefaultOptions())
		require.NoError(t, err)

		report, err := Check(doc)
		require.NoError(t, err)
		assert.True(t, report.Valid(), "%v", report.Findings)
		assert.NotEmpty(t, pairs(report.Findings, ModeDark, SeverityWarning))
	})

	t.Run("partial overlay applies on top of light colours", func(t *testing.T) {
		doc := theme.Default()
		doc.DarkMode = &theme.DarkMode{Enabled: true, Colors: theme.ColorSet{theme.RoleSurface: "#111111"}}

		report, err := Check(doc)
		require.NoError(t, err)
		assert.False(t, report.Valid())
		assert.Contains(t, pairs(report.Findings, ModeDark, SeverityIssue), "Text on Surface")
	})

	t.Run("disabled overlay is ignored", func(t *testing.T) {
		doc := theme.Default()
		doc.DarkMode = &theme.DarkMode{Enabled: false, Colors: theme.ColorSet{theme.RoleSurface: "#111111"}}

		report, err := Check(doc)
		require.NoError(t, err)
		assert.True(t, report.Valid())
	})

	t.Run("unresolved reference", func(t *testing.T) {
		doc := theme.Default()
		doc.DarkMode = &theme.DarkMode{Enabled: true, Colors: theme.ColorSet{theme.RoleSurface: "colors.missing"}}

		_, err := Check(doc)
		assert.ErrorIs(t, err, themeerrors.ErrUnresolvedToken)
	})
}

func TestCheckNil(t *testing.T) {
	_, err := Check(nil)
	assert.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
}
