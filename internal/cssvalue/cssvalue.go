// Package cssvalue decides whether a string can be emitted as the value of a
// CSS custom property without escaping its declaration.
package cssvalue

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gorilla/css/scanner"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var namePattern = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)

// allowedFunctions lists the CSS functions a theme value may call.
var allowedFunctions = map[string]bool{
	"rgb":             true,
	"rgba":            true,
	"hsl":             true,
	"hsla":            true,
	"calc":            true,
	"var":             true,
	"min":             true,
	"max":             true,
	"clamp":           true,
	"linear-gradient": true,
	"radial-gradient": true,
	"cubic-bezier":    true,
}

// forbiddenChars may end the declaration, open or close a block, or start markup.
var forbiddenChars = map[string]bool{
	";": true,
	"{": true,
	"}": true,
	"<": true,
	">": true,
}

// Check returns an error wrapping ErrUnsafeValue when value is empty,
// contains control characters, or tokenizes to anything that could end the
// declaration or pull in external content.
func Check(value string) error {
	if strings.TrimSpace(value) == "" {
		return unsafe(value, "empty value")
	}
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return unsafe(value, "control character")
		}
	}
	if strings.Contains(value, `\`) {
		return unsafe(value, "escape sequences are not allowed")
	}

	depth := 0
	s := scanner.New(value)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return unsafe(value, "unbalanced parentheses")
			}
			return nil
		case scanner.TokenError:
			return unsafe(value, "malformed token")
		case scanner.TokenAtKeyword, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenComment, scanner.TokenURI, scanner.TokenBOM:
			return unsafe(value, fmt.Sprintf("disallowed token %q", tok.Value))
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
			if !allowedFunctions[name] {
				return unsafe(value, fmt.Sprintf("function %q is not allowed", name))
			}
			depth++
		case scanner.TokenChar:
			switch {
			case forbiddenChars[tok.Value]:
				return unsafe(value, fmt.Sprintf("character %q is not allowed", tok.Value))
			case tok.Value == "(":
				depth++
			case tok.Value == ")":
				depth--
				if depth < 0 {
					return unsafe(value, "unbalanced parentheses")
				}
			}
		}
	}
}

// IsSafe reports whether Check accepts value.
func IsSafe(value string) bool {
	return Check(value) == nil
}

// CheckName validates a custom property name such as --color-primary.
func CheckName(name string) error {
	if !namePattern.MatchString(name) {
		return unsafe(name, "invalid custom property name")
	}
	return nil
}

func unsafe(value, reason string) error {
	return fmt.Errorf("%w %q: %s", themeerrors.ErrUnsafeValue, value, reason)
}
