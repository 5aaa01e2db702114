package tokens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func sampleTree() map[string]any {
	return map[string]any{
		"colors": map[string]any{
			"primary": "#2563eb",
			"accent":  "colors.primary",
			"link":    "colors.accent",
			"text":    "#111827",
		},
		"spacing": map[string]any{
			"md":     "1rem",
			"gutter": "spacing.md",
		},
		"zIndex": map[string]any{
			"modal":   1050,
			"overlay": "zIndex.modal",
		},
		"meta": map[string]any{
			"name":    "Sample",
			"version": "1.0.0",
		},
	}
}

func TestResolve(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name     string
		path     string
		expected any
	}{
		{name: "literal", path: "colors.primary", expected: "#2563eb"},
		{name: "single hop", path: "colors.accent", expected: "#2563eb"},
		{name: "two hops", path: "colors.link", expected: "#2563eb"},
		{name: "number passes through", path: "zIndex.modal", expected: 1050},
		{name: "reference to number", path: "zIndex.overlay", expected: 1050},
		{name: "version string with dots is not a reference", path: "meta.version", expected: "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tree, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveReturnsGroups(t *testing.T) {
	got, err := Resolve(sampleTree(), "spacing")
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, got)
}

func TestResolveUnresolved(t *testing.T) {
	tree := sampleTree()
	tree["colors"].(map[string]any)["broken"] = "colors.missing"

	for _, path := range []string{"colors.nope", "nope.primary", "", "colors.primary.deeper", "colors.broken"} {
		t.Run(path, func(t *testing.T) {
			_, err := Resolve(tree, path)
			require.Error(t, err)
			assert.ErrorIs(t, err, themeerrors.ErrUnresolvedToken)
		})
	}

	_, err := Resolve(tree, "colors.broken")
	var tokenErr *themeerrors.TokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, "colors.missing", tokenErr.Path)
	assert.Equal(t, []string{"colors.broken", "colors.missing"}, tokenErr.Chain)
}

func TestResolveDetectsCycles(t *testing.T) {
	tree := map[string]any{
		"tokens": map[string]any{
			"a": "tokens.b",
			"b": "tokens.a",
		},
	}

	_, err := Resolve(tree, "tokens.a")
	require.Error(t, err)
	assert.ErrorIs(t, err, themeerrors.ErrCyclicReference)
	assert.Contains(t, err.Error(), "tokens.a -> tokens.b -> tokens.a")

	var tokenErr *themeerrors.TokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, []string{"tokens.a", "tokens.b", "tokens.a"}, tokenErr.Chain)
}

func TestResolveDetectsSelfReferenceAndLongerCycles(t *testing.T) {
	tree := map[string]any{
		"colors": map[string]any{
			"self":  "colors.self",
			"start": "colors.x",
			"x":     "colors.y",
			"y":     "colors.z",
			"z":     "colors.x",
		},
	}

	_, err := Resolve(tree, "colors.self")
	assert.ErrorIs(t, err, themeerrors.ErrCyclicReference)

	_, err = Resolve(tree, "colors.start")
	require.ErrorIs(t, err, themeerrors.ErrCyclicReference)
	var tokenErr *themeerrors.TokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, []string{"colors.x", "colors.y", "colors.z", "colors.x"}, tokenErr.Chain, "chain starts at the repeated path")
}

func TestResolveStateIsPerCall(t *testing.T) {
	tree := sampleTree()
	for i := 0; i < 3; i++ {
		got, err := Resolve(tree, "colors.link")
		require.NoError(t, err)
		assert.Equal(t, "#2563eb", got)
	}
}

func TestIsReference(t *testing.T) {
	tree := sampleTree()

	assert.True(t, IsReference(tree, "colors.primary"))
	assert.True(t, IsReference(tree, "spacing.md"))
	assert.False(t, IsReference(tree, "#2563eb"))
	assert.False(t, IsReference(tree, "colors"), "a reference needs at least two segments")
	assert.False(t, IsReference(tree, "1.5"))
	assert.False(t, IsReference(tree, "0.25rem"))
	assert.False(t, IsReference(tree, "font.family"), "first segment must be a top-level key")
	assert.False(t, IsReference(tree, "colors.primary "))
}

func TestResolveString(t *testing.T) {
	tree := sampleTree()

	got, err := ResolveString(tree, "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got)

	got, err = ResolveString(tree, "spacing.gutter")
	require.NoError(t, err)
	assert.Equal(t, "1rem", got)

	got, err = ResolveString(tree, "zIndex.overlay")
	require.NoError(t, err)
	assert.Equal(t, "1050", got)

	_, err = ResolveString(tree, "spacing.nothing")
	assert.ErrorIs(t, err, themeerrors.ErrUnresolvedToken)

	_, err = ResolveString(map[string]any{"a": map[string]any{"b": "a.c", "c": map[string]any{}}}, "a.b")
	assert.ErrorIs(t, err, themeerrors.ErrInvalidArgument)
}

func TestResolveAll(t *testing.T) {
	tree := theme.Default().Tree()

	resolved, err := ResolveAll(tree)
	require.NoError(t, err)

	buttons := resolved["buttons"].(map[string]any)
	assert.Equal(t, "#2563eb", buttons["primary"].(map[string]any)["background"])
	cards := resolved["cards"].(map[string]any)
	assert.Equal(t, "0.5rem", cards["default"].(map[string]any)["radius"])

	original := tree["buttons"].(map[string]any)["primary"].(map[string]any)
	assert.Equal(t, "colors.primary", original["background"], "input tree is not modified")
}

func TestResolveAllReportsCycles(t *testing.T) {
	tree := sampleTree()
	tree["colors"].(map[string]any)["loop"] = "colors.loop"

	_, err := ResolveAll(tree)
	assert.ErrorIs(t, err, themeerrors.ErrCyclicReference)
}
