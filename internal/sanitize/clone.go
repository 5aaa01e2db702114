package sanitize

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// forbiddenKeys never survive a clone, at any depth.
var forbiddenKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// DeepCloneSanitize copies value into fresh maps and slices, dropping
// forbidden keys, coercing strings per opts and rejecting non-finite numbers.
// The input is never modified and nothing in the result aliases it.
func DeepCloneSanitize(value any, opts Options) (any, error) {
	return cloneValue(value, opts, "")
}

func cloneValue(v any, opts Options, path string) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return cloneObject(val, opts, path)
	case map[any]any:
		obj := make(map[string]any, len(val))
		for k, child := range val {
			obj[fmt.Sprint(k)] = child
		}
		return cloneObject(obj, opts, path)
	case map[string]string:
		obj := make(map[string]any, len(val))
		for k, child := range val {
			obj[k] = child
		}
		return cloneObject(obj, opts, path)
	case []any:
		out := make([]any, 0, len(val))
		for i, child := range val {
			c, err := cloneValue(child, opts, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if c == nil && opts.StripNulls {
				continue
			}
			out = append(out, c)
		}
		return out, nil
	case string:
		return cleanString(val, opts, path)
	case bool:
		return val, nil
	case float64:
		return finite(val, path)
	case float32:
		return finite(float64(val), path)
	case int:
		return val, nil
	case int64:
		return val, nil
	case uint64:
		return val, nil
	default:
		return nil, themeerrors.NewSanitizeError(fieldName(path), fmt.Sprintf("unsupported value of type %T", v), themeerrors.ErrInvalidInput)
	}
}

func cloneObject(obj map[string]any, opts Options, path string) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	for _, k := range sortedKeys(obj) {
		if _, bad := forbiddenKeys[k]; bad {
			continue
		}
		c, err := cloneValue(obj[k], opts, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		if c == nil && opts.StripNulls {
			continue
		}
		out[k] = c
	}
	return out, nil
}

// cleanString trims s and caps its length. Colour values and token
// references are rejected rather than cut, since a shortened value can name
// a different colour or token.
func cleanString(s string, opts Options, path string) (string, error) {
	if opts.TrimStrings {
		s = strings.TrimSpace(s)
	}
	max := opts.maxLength()
	if utf8.RuneCountInString(s) <= max {
		return s, nil
	}
	if isColorPath(path) || tokens.LooksLikeReference(s) {
		return "", themeerrors.NewSanitizeError(fieldName(path), fmt.Sprintf("value is longer than %d characters", max), themeerrors.ErrInvalidInput)
	}
	return string([]rune(s)[:max]), nil
}

func isColorPath(path string) bool {
	return strings.HasPrefix(path, theme.SectionColors+".") ||
		strings.HasPrefix(path, theme.SectionDarkMode+"."+theme.SectionColors+".")
}

func finite(f float64, path string) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, themeerrors.NewSanitizeError(fieldName(path), "number must be finite", themeerrors.ErrNonFiniteNumber)
	}
	return f, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func fieldName(path string) string {
	if path == "" {
		return "theme"
	}
	return path
}
