// Package cssgen serializes a theme document into CSS custom properties.
//
// Output is byte-for-byte deterministic for deep-equal input: sections are
// emitted in a fixed order, keys are sorted, and nothing time-dependent is
// written.
package cssgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/cssvalue"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	DefaultSelector      = ":root"
	DefaultDarkSelector  = `[data-theme="dark"]`
	DefaultLightSelector = `[data-theme="light"]`
	indent               = "  "
)

// Options controls selectors and optional blocks.
type Options struct {
	Selector      string `json:"selector" yaml:"selector"`
	DarkSelector  string `json:"darkSelector" yaml:"darkSelector"`
	LightSelector string `json:"lightSelector" yaml:"lightSelector"`
	// OmitMediaQuery drops the prefers-color-scheme fallback block.
	OmitMediaQuery bool `json:"omitMediaQuery" yaml:"omitMediaQuery"`
}

// DefaultOptions returns the stock selectors.
func DefaultOptions() Options {
	return Options{
		Selector:      DefaultSelector,
		DarkSelector:  DefaultDarkSelector,
		LightSelector: DefaultLightSelector,
	}
}

func (o Options) withDefaults() Options {
	if o.Selector == "" {
		o.Selector = DefaultSelector
	}
	if o.DarkSelector == "" {
		o.DarkSelector = DefaultDarkSelector
	}
	if o.LightSelector == "" {
		o.LightSelector = DefaultLightSelector
	}
	return o
}

// Validate rejects selectors that could open or close a rule.
func (o Options) Validate() error {
	o = o.withDefaults()
	for _, sel := range []string{o.Selector, o.DarkSelector, o.LightSelector} {
		if strings.ContainsAny(sel, "{};<>") || strings.Contains(sel, "/*") {
			return fmt.Errorf("%w: selector %q", themeerrors.ErrInvalidArgument, sel)
		}
	}
	return nil
}

type section struct {
	key    string
	title  string
	prefix string
}

var sections = []section{
	{theme.SectionColors, "Colors", "color"},
	{theme.SectionSpacing, "Spacing", "spacing"},
	{theme.SectionTypography, "Typography", ""},
	{theme.SectionBorders, "Borders", "border"},
	{theme.SectionRadii, "Radii", "radius"},
	{theme.SectionShadows, "Shadows", "shadow"},
	{theme.SectionZIndex, "Z-Index", "z-index"},
	{theme.SectionBreakpoints, "Breakpoints", "breakpoint"},
	{theme.SectionButtons, "Buttons", "button"},
	{theme.SectionCards, "Cards", "card"},
}

type declaration struct {
	name  string
	value string
}

type group struct {
	title        string
	declarations []declaration
}

// Generate renders doc as CSS. References are resolved first, so the output
// never contains a token path. When the document has an enabled dark block,
// the dark rule and media query carry only the declarations whose value
// changes under the dark colours.
func Generate(doc *theme.Document, opts Options) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: nil theme document", themeerrors.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	opts = opts.withDefaults()

	light, err := collect(doc.Tree())
	if err != nil {
		return "", err
	}

	var dark []declaration
	if doc.DarkEnabled() {
		dark, err = darkOverrides(doc, light)
		if err != nil {
			return "", err
		}
	}

	var b strings.Builder
	writeHeader(&b, doc.Meta)
	writeRoot(&b, opts.Selector, light)
	if len(dark) > 0 {
		b.WriteString("\n")
		writeRule(&b, opts.DarkSelector, dark, "")
		if !opts.OmitMediaQuery {
			b.WriteString("\n@media (prefers-color-scheme: dark) {\n")
			writeRule(&b, fmt.Sprintf("%s:not(%s)", opts.Selector, opts.LightSelector), dark, indent)
			b.WriteString("}\n")
		}
	}
	return b.String(), nil
}

// Variables returns the resolved light-mode declarations as name to value.
func Variables(doc *theme.Document) (map[string]string, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil theme document", themeerrors.ErrInvalidArgument)
	}
	groups, err := collect(doc.Tree())
	if err != nil {
		return nil, err
	}
	return flatten(groups), nil
}

func darkOverrides(doc *theme.Document, light []group) ([]declaration, error) {
	tree := doc.Tree()
	merged := doc.Clone()
	merged.DarkMode = nil
	if merged.Colors == nil {
		merged.Colors = theme.ColorSet{}
	}
	for _, role := range doc.DarkMode.Colors.Roles() {
		value, err := tokens.ResolveString(tree, doc.DarkMode.Colors[role])
		if err != nil {
			return nil, err
		}
		merged.Colors[role] = value
	}

	darkGroups, err := collect(merged.Tree())
	if err != nil {
		return nil, err
	}

	base := flatten(light)
	var out []declaration
	for _, g := range darkGroups {
		for _, d := range g.declarations {
			if prev, ok := base[d.name]; !ok || prev != d.value {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func collect(tree map[string]any) ([]group, error) {
	resolved, err := tokens.ResolveAll(tree)
	if err != nil {
		return nil, err
	}

	var groups []group
	for _, s := range sections {
		node, ok := resolved[s.key]
		if !ok {
			continue
		}
		var decls []declaration
		if err := walk(node, []string{s.prefix}, s.key == theme.SectionColors, &decls); err != nil {
			return nil, err
		}
		if len(decls) > 0 {
			groups = append(groups, group{title: s.title, declarations: decls})
		}
	}
	return groups, nil
}

func walk(node any, path []string, colors bool, out *[]declaration) error {
	if m, ok := node.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := walk(m[k], append(path[:len(path):len(path)], k), colors, out); err != nil {
				return err
			}
		}
		return nil
	}

	name := propertyName(path)
	if err := cssvalue.CheckName(name); err != nil {
		return err
	}
	value, err := formatValue(node)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if (colors || strings.HasPrefix(value, "#")) && color.IsHex(value) {
		if value, err = color.Normalize(value); err != nil {
			return err
		}
	}
	if err := cssvalue.Check(value); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*out = append(*out, declaration{name: name, value: value})
	return nil
}

func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", themeerrors.ErrInvalidArgument, v)
	}
}

func propertyName(path []string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if p == "" {
			continue
		}
		parts = append(parts, kebab(p))
	}
	return "--" + strings.Join(parts, "-")
}

// kebab converts camelCase to kebab-case: textMuted -> text-muted.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func flatten(groups []group) map[string]string {
	out := make(map[string]string)
	for _, g := range groups {
		for _, d := range g.declarations {
			out[d.name] = d.value
		}
	}
	return out
}

func writeHeader(b *strings.Builder, meta theme.Meta) {
	b.WriteString("/*\n")
	fmt.Fprintf(b, " * Theme: %s\n", commentSafe(meta.Name))
	if meta.Version != "" {
		fmt.Fprintf(b, " * Version: %s\n", commentSafe(meta.Version))
	}
	if meta.Author != "" {
		fmt.Fprintf(b, " * Author: %s\n", commentSafe(meta.Author))
	}
	b.WriteString(" * Generated by themekit. Do not edit by hand.\n")
	b.WriteString(" */\n")
}

func writeRoot(b *strings.Builder, selector string, groups []group) {
	fmt.Fprintf(b, "%s {\n", selector)
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s/* %s */\n", indent, g.title)
		for _, d := range g.declarations {
			fmt.Fprintf(b, "%s%s: %s;\n", indent, d.name, d.value)
		}
	}
	b.WriteString("}\n")
}

func writeRule(b *strings.Builder, selector string, decls []declaration, prefix string) {
	fmt.Fprintf(b, "%s%s {\n", prefix, selector)
	for _, d := range decls {
		fmt.Fprintf(b, "%s%s%s: %s;\n", prefix, indent, d.name, d.value)
	}
	fmt.Fprintf(b, "%s}\n", prefix)
}

func commentSafe(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	return strings.Join(strings.Fields(s), " ")
}
