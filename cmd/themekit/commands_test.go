package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/darkmode"
	"github.com/alexisbeaulieu97/themekit/internal/sanitize"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const faintTheme = `{
  "meta": {"name": "Faint", "version": "0.1.0"},
  "colors": {"surface": "#ffffff", "text": "#dddddd", "primary": "#2563eb"},
  "typography": {},
  "spacing": {"md": "1rem"},
  "borders": {}
}`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestCSSCommand(t *testing.T) {
	out, _, err := execute(t, "css", "preset:default")
	require.NoError(t, err)
	require.Contains(t, out, ":root {")
	require.Contains(t, out, "--color-primary: #2563eb;")

	target := filepath.Join(t.TempDir(), "out", "theme.css")
	out, _, err = execute(t, "css", "preset:slate", "--selector", ".theme", "--no-media-query", "-o", target)
	require.NoError(t, err)
	require.Empty(t, out)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), ".theme {")
	require.Contains(t, string(data), "--color-primary: #0e7490;")

	_, _, err = execute(t, "css", "preset:default", "--selector", "a{")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestCSSCommandCheck(t *testing.T) {
	target := filepath.Join(t.TempDir(), "theme.css")
	_, _, err := execute(t, "css", "preset:default", "-o", target)
	require.NoError(t, err)

	out, _, err := execute(t, "css", "preset:default", "--check", target)
	require.NoError(t, err)
	require.Contains(t, out, "is up to date")

	out, _, err = execute(t, "css", "preset:slate", "--check", target)
	require.ErrorIs(t, err, errStale)
	require.Contains(t, out, "-  --color-primary: #2563eb;")
	require.Contains(t, out, "+  --color-primary: #0e7490;")

	_, _, err = execute(t, "css", "preset:default", "--check", filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to check stylesheet")

	_, _, err = execute(t, "css", "preset:default", "--check", target, "-o", target)
	require.Error(t, err, "--check and --output are exclusive")
}

func TestCSSCommandRejectsBadThemes(t *testing.T) {
	_, _, err := execute(t, "css", writeTemp(t, "theme.json", `{"meta": {}}`))
	require.ErrorIs(t, err, themeerrors.ErrMissingSection)
	require.Contains(t, err.Error(), "Failed to load theme")

	_, _, err = execute(t, "css", "preset:unknown")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)

	_, _, err = execute(t, "css")
	require.Error(t, err, "a theme argument is required")
}

func TestDarkCommand(t *testing.T) {
	out, stderr, err := execute(t, "dark", "preset:default", "--intensity", "intense")
	require.NoError(t, err)
	require.Contains(t, stderr, "dark mode generated")

	doc, err := sanitize.FromJSON([]byte(out), sanitize.DefaultOptions())
	require.NoError(t, err)
	require.True(t, doc.DarkEnabled())
	require.Equal(t, "Default"+darkmode.DarkNameSuffix, doc.Meta.Name)

	target := filepath.Join(t.TempDir(), "dark.yaml")
	_, _, err = execute(t, "dark", "preset:slate", "--suggest", "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "meta:"), "yaml chosen from the output extension")

	_, _, err = execute(t, "dark", "preset:default", "--intensity", "extreme")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)

	_, _, err = execute(t, "dark", "preset:default", "--min-text-contrast", "30")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)

	_, _, err = execute(t, "dark", "preset:default", "--format", "toml")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
}

func TestPreviewCommand(t *testing.T) {
	out, _, err := execute(t, "preview", "preset:default")
	require.NoError(t, err)
	require.Contains(t, out, "Pair")
	require.Contains(t, out, "Text on Surface")

	out, _, err = execute(t, "preview", "preset:default", "--json")
	require.NoError(t, err)
	var preview darkmode.Preview
	require.NoError(t, json.Unmarshal([]byte(out), &preview))
	require.NotEmpty(t, preview.ContrastReport)
	require.Equal(t, "#2563eb", preview.Light["primary"])

	out, _, err = execute(t, "preview", "preset:default", "--preserve-brand", "--min-ui-contrast", "21")
	require.NoError(t, err)
	require.Contains(t, out, "! Primary on Surface stays at")
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, "validate", "preset:default")
	require.NoError(t, err)
	require.Contains(t, out, "theme is valid")
	require.Contains(t, out, "! [light] ", "warnings are listed but do not fail")

	_, _, err = execute(t, "validate", "preset:default", "--strict")
	require.Error(t, err)

	out, _, err = execute(t, "validate", writeTemp(t, "faint.json", faintTheme))
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme has problems")
	require.Contains(t, out, "x [light] ")

	broken := strings.Replace(faintTheme, `"#dddddd"`, `"grey"`, 1)
	broken = strings.Replace(broken, `"name": "Faint", `, "", 1)
	out, _, err = execute(t, "validate", writeTemp(t, "broken.json", broken), "--json")
	require.Error(t, err)

	var payload validateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.False(t, payload.Valid)
	require.Len(t, payload.Errors, 2)
	require.Empty(t, payload.Findings)

	_, _, err = execute(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to validate theme")
}

func TestShowCommand(t *testing.T) {
	out, _, err := execute(t, "show", "preset:default", "--dark")
	require.NoError(t, err)
	require.Contains(t, out, "Default v1.0.0")
	require.Contains(t, out, "Primary")
	require.Contains(t, out, "Secondary text")

	_, _, err = execute(t, "show", "preset:default", "--dark", "--light")
	require.Error(t, err)
}

func TestContrastCommand(t *testing.T) {
	out, _, err := execute(t, "contrast", "#000000", "#ffffff")
	require.NoError(t, err)
	require.Contains(t, out, "21.00:1")
	require.Contains(t, out, "AAA")

	out, _, err = execute(t, "contrast", "#767676", "#ffffff")
	require.NoError(t, err)
	require.Contains(t, out, "4.54:1")
	require.Contains(t, out, "AA")

	_, _, err = execute(t, "contrast", "black", "#ffffff")
	require.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
}

func TestPaletteCommand(t *testing.T) {
	out, _, err := execute(t, "palette", "#2563eb", "--steps", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Fields(line)
		require.Len(t, fields, 2)
		require.True(t, strings.HasPrefix(fields[1], "#"))
	}

	_, _, err = execute(t, "palette", "#2563eb", "--steps", "0")
	require.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
}

func TestSuggestCommand(t *testing.T) {
	out, _, err := execute(t, "suggest", "#172554")
	require.NoError(t, err)
	require.Contains(t, out, "intensity: intense")

	_, _, err = execute(t, "suggest", "nope")
	require.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
}

func TestPresetsCommand(t *testing.T) {
	out, _, err := execute(t, "presets")
	require.NoError(t, err)
	require.Contains(t, out, "preset:default")
	require.Contains(t, out, "preset:slate")
	require.Contains(t, out, "Stock light theme")
}

func TestConfigFileAndLogFlags(t *testing.T) {
	cfg := writeTemp(t, "themekit.yaml", "css:\n  selector: .brand\nlog:\n  level: warn\n")

	out, stderr, err := execute(t, "css", "preset:default", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, ".brand {")
	require.NotContains(t, stderr, "css generated", "info is below the configured level")

	_, stderr, err = execute(t, "css", "preset:default", "--config", cfg, "--log-level", "debug", "--json-logs")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"css generated"`)

	_, _, err = execute(t, "css", "preset:default", "--config", writeTemp(t, "bad.yaml", "dark_mode:\n  intensity: extreme\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")

	_, _, err = execute(t, "css", "preset:default", "--log-level", "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to create logger")
}

func TestExploreCommand(t *testing.T) {
	original := runExplorer
	t.Cleanup(func() { runExplorer = original })

	var started tui.Explorer
	runExplorer = func(m tui.Explorer) (tui.Explorer, error) {
		started = m
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
		updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return updated.(tui.Explorer), nil
	}

	out, _, err := execute(t, "explore", "preset:default", "--intensity", "subtle")
	require.NoError(t, err)
	require.Equal(t, darkmode.IntensitySubtle, started.Options().Intensity)
	require.Contains(t, out, "intensity: moderate", "the accepted options are printed")

	target := filepath.Join(t.TempDir(), "dark.json")
	_, _, err = execute(t, "explore", "preset:default", "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	doc, err := sanitize.FromJSON(data, sanitize.DefaultOptions())
	require.NoError(t, err)
	require.True(t, doc.DarkEnabled())

	runExplorer = func(m tui.Explorer) (tui.Explorer, error) {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		return updated.(tui.Explorer), nil
	}
	out, _, err = execute(t, "explore", "preset:default")
	require.NoError(t, err)
	require.Empty(t, out, "quitting writes nothing")
}
