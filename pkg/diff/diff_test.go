package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "want", "got"))
}

func TestUnifiedMarksChangedLines(t *testing.T) {
	want := ":root {\n  --color-primary: #2563eb;\n  --spacing-md: 1rem;\n}\n"
	got := ":root {\n  --color-primary: #0e7490;\n  --spacing-md: 1rem;\n}\n"

	out := Unified(want, got, "theme.css", "generated")

	assert.True(t, strings.HasPrefix(out, "--- theme.css\n+++ generated\n@@ -1,4 +1,4 @@\n"))
	assert.Contains(t, out, "\n-  --color-primary: #2563eb;\n")
	assert.Contains(t, out, "\n+  --color-primary: #0e7490;\n")
	assert.Contains(t, out, "\n   --spacing-md: 1rem;\n")

	added, removed := Changed(want, got)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestUnifiedHandlesEmptySides(t *testing.T) {
	out := Unified("", "one\ntwo\n", "old", "new")
	assert.Contains(t, out, "@@ -1,0 +1,2 @@")
	assert.Contains(t, out, "+one\n+two\n")

	added, removed := Changed("gone\n", "")
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, removed)
}

func TestUnifiedTruncatesLongDiffs(t *testing.T) {
	var got strings.Builder
	for i := 0; i < MaxLines+50; i++ {
		got.WriteString("line\n")
	}

	out := Unified("", got.String(), "old", "new")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, MaxLines+1)
	assert.Equal(t, TruncatedMarker, lines[len(lines)-1])
}
