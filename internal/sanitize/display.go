package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var displayEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeForDisplay HTML-escapes s for embedding in markup, including '/'.
func EscapeForDisplay(s string) string {
	return displayEscaper.Replace(s)
}

// dangerousChars matches C0 controls and DEL except tab and newline.
var dangerousChars = runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return r == 0x7f || (r < 0x20 && unicode.IsControl(r))
})

// RemoveDangerousChars strips control characters, keeping newlines and tabs.
func RemoveDangerousChars(s string) string {
	out, _, err := transform.String(runes.Remove(dangerousChars), s)
	if err != nil {
		return s
	}
	return out
}
