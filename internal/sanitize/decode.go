package sanitize

import (
	"fmt"
	"html"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type numericField struct {
	path     []string
	integral bool
}

// numericFields are the groups whose leaves decode into numbers.
var numericFields = []numericField{
	{path: []string{theme.SectionTypography, "fontWeight"}, integral: true},
	{path: []string{theme.SectionTypography, "lineHeight"}},
	{path: []string{theme.SectionZIndex}, integral: true},
}

var markupPolicy = bluemonday.StrictPolicy()

// coerceNumbers rewrites numeric-field leaves in place. tree must be a clone.
func coerceNumbers(tree map[string]any, opts Options) error {
	for _, field := range numericFields {
		group, ok := lookupGroup(tree, field.path)
		if !ok {
			continue
		}
		prefix := strings.Join(field.path, ".")
		for _, key := range sortedKeys(group) {
			n, err := toNumber(group[key], field.integral, opts, prefix+"."+key)
			if err != nil {
				return err
			}
			group[key] = n
		}
	}
	return nil
}

func lookupGroup(tree map[string]any, path []string) (map[string]any, bool) {
	var node any = tree
	for _, seg := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node = m[seg]
	}
	group, ok := node.(map[string]any)
	return group, ok
}

func toNumber(v any, integral bool, opts Options, field string) (any, error) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint64:
		f = float64(val)
	case string:
		if !opts.ParseNumbers {
			return nil, themeerrors.NewSanitizeError(field, "expected a number", themeerrors.ErrInvalidInput)
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil && !math.IsInf(parsed, 0) {
			return nil, themeerrors.NewSanitizeError(field, fmt.Sprintf("%q is not a number", val), themeerrors.ErrInvalidInput)
		}
		f = parsed
	default:
		return nil, themeerrors.NewSanitizeError(field, fmt.Sprintf("expected a number, got %T", v), themeerrors.ErrInvalidInput)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, themeerrors.NewSanitizeError(field, "number must be finite", themeerrors.ErrNonFiniteNumber)
	}
	if integral {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return nil, themeerrors.NewSanitizeError(field, "expected an integer", themeerrors.ErrInvalidInput)
		}
		return int(f), nil
	}
	return f, nil
}

// numberToString lets string fields carry bare numbers, e.g. spacing "none": 0.
func numberToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float64:
		return strconv.FormatFloat(data.(float64), 'f', -1, 64), nil
	case reflect.Int:
		return strconv.Itoa(data.(int)), nil
	case reflect.Int64:
		return strconv.FormatInt(data.(int64), 10), nil
	default:
		return data, nil
	}
}

func decode(tree map[string]any) (*theme.Document, error) {
	var doc theme.Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(numberToString),
		Result:     &doc,
		TagName:    "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(tree); err != nil {
		return nil, themeerrors.NewSanitizeError("theme", err.Error(), themeerrors.ErrInvalidInput)
	}
	return &doc, nil
}

func stripMarkup(meta *theme.Meta) {
	for _, field := range []*string{&meta.Name, &meta.Version, &meta.Description, &meta.Author} {
		if strings.ContainsRune(*field, '<') {
			*field = strings.TrimSpace(html.UnescapeString(markupPolicy.Sanitize(*field)))
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
