// Package sanitize turns untrusted theme data into a validated theme.Document.
//
// Input goes through a fixed pipeline: a top-level object check, a
// required-section check, a sanitizing deep clone, numeric coercion, typed
// decoding, struct validation and finally reference resolution. SanitizeTheme
// stops at the first problem; SanitizeAndValidate keeps going where it can and
// reports everything it found.
package sanitize

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Result is the non-failing form of SanitizeTheme.
type Result struct {
	Success bool
	Theme   *theme.Document
	Errors  []error
}

// Messages returns the error texts in order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		out = append(out, err.Error())
	}
	return out
}

// SanitizeTheme validates value and returns a fresh document, or the first
// problem found.
func SanitizeTheme(value any, opts Options) (*theme.Document, error) {
	doc, errs := run(value, opts, true)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return doc, nil
}

// SanitizeAndValidate never fails; problems are accumulated in the result.
func SanitizeAndValidate(value any, opts Options) Result {
	doc, errs := run(value, opts, false)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Success: true, Theme: doc}
}

// IsThemeLike reports whether value is an object carrying every required
// section as an object. It does no coercion.
func IsThemeLike(value any) bool {
	root, ok := asObject(value)
	if !ok {
		return false
	}
	for _, section := range theme.RequiredSections {
		if _, ok := asObject(root[section]); !ok {
			return false
		}
	}
	return true
}

// DecodeJSON parses untrusted JSON text into plain values.
func DecodeJSON(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %s", themeerrors.ErrInvalidJSON, err.Error())
	}
	return value, nil
}

// DecodeYAML parses untrusted YAML text into plain values.
func DecodeYAML(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %s", themeerrors.ErrInvalidYAML, err.Error())
	}
	return value, nil
}

// FromJSON parses data and sanitizes the result.
func FromJSON(data []byte, opts Options) (*theme.Document, error) {
	value, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return SanitizeTheme(value, opts)
}

// FromYAML parses data and sanitizes the result.
func FromYAML(data []byte, opts Options) (*theme.Document, error) {
	value, err := DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return SanitizeTheme(value, opts)
}

func run(value any, opts Options, failFast bool) (*theme.Document, []error) {
	root, ok := asObject(value)
	if !ok {
		return nil, []error{themeerrors.NewSanitizeError("", fmt.Sprintf("theme must be an object, got %s", describe(value)), themeerrors.ErrInvalidInput)}
	}

	var errs []error
	for _, section := range theme.RequiredSections {
		v, present := root[section]
		switch _, isObject := asObject(v); {
		case !present || v == nil:
			errs = append(errs, themeerrors.NewSanitizeError(section, "missing required section", themeerrors.ErrMissingSection))
		case !isObject:
			errs = append(errs, themeerrors.NewSanitizeError(section, fmt.Sprintf("must be an object, got %s", describe(v)), themeerrors.ErrMissingSection))
		default:
			continue
		}
		if failFast {
			return nil, errs
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	cloned, err := DeepCloneSanitize(root, opts)
	if err != nil {
		return nil, []error{err}
	}
	tree := cloned.(map[string]any)

	if err := coerceNumbers(tree, opts); err != nil {
		return nil, []error{err}
	}

	doc, err := decode(tree)
	if err != nil {
		return nil, []error{err}
	}
	if opts.StripMarkup {
		stripMarkup(&doc.Meta)
	}

	if errs := validateDocument(doc); len(errs) > 0 {
		if failFast {
			return nil, errs[:1]
		}
		return nil, errs
	}

	tree = doc.Tree()
	if _, err := tokens.ResolveAll(tree); err != nil {
		return nil, []error{err}
	}
	errs = checkColors(tree, theme.SectionColors, doc.Colors)
	if doc.DarkMode != nil {
		errs = append(errs, checkColors(tree, theme.SectionDarkMode+"."+theme.SectionColors, doc.DarkMode.Colors)...)
	}
	if len(errs) > 0 {
		if failFast {
			return nil, errs[:1]
		}
		return nil, errs
	}

	normalizeColors(doc.Colors)
	if doc.DarkMode != nil {
		normalizeColors(doc.DarkMode.Colors)
	}
	return doc, nil
}

// checkColors requires every role to be a hex literal or a reference that
// ends at one.
func checkColors(tree map[string]any, prefix string, colors theme.ColorSet) []error {
	var errs []error
	for _, role := range colors.Roles() {
		value := colors[role]
		if color.IsHex(value) {
			continue
		}
		field := prefix + "." + role
		if !tokens.IsReference(tree, value) {
			errs = append(errs, themeerrors.NewSanitizeError(field, fmt.Sprintf("%q does not name a token in this theme", value), themeerrors.ErrUnresolvedToken))
			continue
		}
		resolved, err := tokens.ResolveString(tree, value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !color.IsHex(resolved) {
			errs = append(errs, themeerrors.NewSanitizeError(field, fmt.Sprintf("%q resolves to %q, not a colour", value, resolved), themeerrors.ErrInvalidColorFormat))
		}
	}
	return errs
}

func normalizeColors(colors theme.ColorSet) {
	for role, value := range colors {
		if hex, err := color.Normalize(value); err == nil {
			colors[role] = hex
		}
	}
}

func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, val != nil
	case map[any]any:
		if val == nil {
			return nil, false
		}
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = child
		}
		return out, true
	default:
		return nil, false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, uint64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
