// Package theme defines the theme document model shared by the resolver,
// the dark-mode synthesizer, the CSS generator and the sanitizer.
//
// Documents are treated as values. Every transform in this module works on a
// Clone and returns it; the input is never modified.
package theme

import (
	"sort"

	"github.com/alexisbeaulieu97/themekit/internal/optional"
)

// Well-known colour roles.
const (
	RolePrimary          = "primary"
	RoleSecondary        = "secondary"
	RoleBackground       = "background"
	RoleSurface          = "surface"
	RoleSurfaceSecondary = "surfaceSecondary"
	RoleSurfaceHover     = "surfaceHover"
	RoleText             = "text"
	RoleTextSecondary    = "textSecondary"
	RoleTextMuted        = "textMuted"
	RoleBorder           = "border"
	RoleBorderStrong     = "borderStrong"
	RoleSuccess          = "success"
	RoleWarning          = "warning"
	RoleError            = "error"
	RoleInfo             = "info"
)

// Section keys as they appear in the document tree.
const (
	SectionMeta        = "meta"
	SectionColors      = "colors"
	SectionTypography  = "typography"
	SectionSpacing     = "spacing"
	SectionBorders     = "borders"
	SectionRadii       = "radii"
	SectionShadows     = "shadows"
	SectionZIndex      = "zIndex"
	SectionButtons     = "buttons"
	SectionCards       = "cards"
	SectionBreakpoints = "breakpoints"
	SectionDarkMode    = "darkMode"
)

// RequiredSections lists the sections every document must carry.
var RequiredSections = []string{SectionMeta, SectionColors, SectionTypography, SectionSpacing, SectionBorders}

// SemanticRoles are optional status colours carried through transforms only when present.
var SemanticRoles = []string{RoleSuccess, RoleWarning, RoleError, RoleInfo}

// Document is a complete theme.
type Document struct {
	Meta        Meta                         `json:"meta" yaml:"meta" mapstructure:"meta"`
	Colors      ColorSet                     `json:"colors" yaml:"colors" mapstructure:"colors" validate:"required,dive,keys,role_name,endkeys,color_value"`
	Typography  Typography                   `json:"typography" yaml:"typography" mapstructure:"typography"`
	Spacing     map[string]string            `json:"spacing" yaml:"spacing" mapstructure:"spacing"`
	Borders     Borders                      `json:"borders" yaml:"borders" mapstructure:"borders"`
	Radii       map[string]string            `json:"radii,omitempty" yaml:"radii,omitempty" mapstructure:"radii"`
	Shadows     map[string]string            `json:"shadows,omitempty" yaml:"shadows,omitempty" mapstructure:"shadows"`
	ZIndex      map[string]int               `json:"zIndex,omitempty" yaml:"zIndex,omitempty" mapstructure:"zIndex"`
	Buttons     map[string]map[string]string `json:"buttons,omitempty" yaml:"buttons,omitempty" mapstructure:"buttons"`
	Cards       map[string]map[string]string `json:"cards,omitempty" yaml:"cards,omitempty" mapstructure:"cards"`
	Breakpoints map[string]string            `json:"breakpoints,omitempty" yaml:"breakpoints,omitempty" mapstructure:"breakpoints"`
	DarkMode    *DarkMode                    `json:"darkMode,omitempty" yaml:"darkMode,omitempty" mapstructure:"darkMode" validate:"omitempty"`
}

// Meta identifies a theme.
type Meta struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Version     string `json:"version" yaml:"version" mapstructure:"version" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
}

// Typography holds font tokens.
type Typography struct {
	FontFamily    map[string]string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" mapstructure:"fontFamily"`
	FontSize      map[string]string  `json:"fontSize,omitempty" yaml:"fontSize,omitempty" mapstructure:"fontSize"`
	FontWeight    map[string]int     `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty" mapstructure:"fontWeight"`
	LineHeight    map[string]float64 `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty" mapstructure:"lineHeight"`
	LetterSpacing map[string]string  `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty" mapstructure:"letterSpacing"`
}

// Borders holds border tokens.
type Borders struct {
	Width  map[string]string `json:"width,omitempty" yaml:"width,omitempty" mapstructure:"width"`
	Style  map[string]string `json:"style,omitempty" yaml:"style,omitempty" mapstructure:"style"`
	Radius map[string]string `json:"radius,omitempty" yaml:"radius,omitempty" mapstructure:"radius"`
}

// DarkMode is the dark colour overlay.
type DarkMode struct {
	Enabled bool     `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Colors  ColorSet `json:"colors,omitempty" yaml:"colors,omitempty" mapstructure:"colors" validate:"omitempty,dive,keys,role_name,endkeys,color_value"`
}

// ColorSet maps a role name to a hex literal or a token reference.
type ColorSet map[string]string

// Role returns the value for name, or None when the role is absent.
func (c ColorSet) Role(name string) optional.Value[string] {
	v, ok := c[name]
	if !ok {
		return optional.None[string]()
	}
	return optional.Some(v)
}

// Roles returns the role names in sorted order.
func (c ColorSet) Roles() []string {
	return sortedKeys(c)
}

// Clone returns an independent copy.
func (c ColorSet) Clone() ColorSet {
	if c == nil {
		return nil
	}
	out := make(ColorSet, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	out := &Document{
		Meta:   d.Meta,
		Colors: d.Colors.Clone(),
		Typography: Typography{
			FontFamily:    cloneMap(d.Typography.FontFamily),
			FontSize:      cloneMap(d.Typography.FontSize),
			FontWeight:    cloneMap(d.Typography.FontWeight),
			LineHeight:    cloneMap(d.Typography.LineHeight),
			LetterSpacing: cloneMap(d.Typography.LetterSpacing),
		},
		Spacing: cloneMap(d.Spacing),
		Borders: Borders{
			Width:  cloneMap(d.Borders.Width),
			Style:  cloneMap(d.Borders.Style),
			Radius: cloneMap(d.Borders.Radius),
		},
		Radii:       cloneMap(d.Radii),
		Shadows:     cloneMap(d.Shadows),
		ZIndex:      cloneMap(d.ZIndex),
		Buttons:     cloneVariants(d.Buttons),
		Cards:       cloneVariants(d.Cards),
		Breakpoints: cloneMap(d.Breakpoints),
	}
	if d.DarkMode != nil {
		out.DarkMode = &DarkMode{Enabled: d.DarkMode.Enabled, Colors: d.DarkMode.Colors.Clone()}
	}
	return out
}

// DarkEnabled reports whether the document carries an enabled dark overlay.
func (d *Document) DarkEnabled() bool {
	return d != nil && d.DarkMode != nil && d.DarkMode.Enabled
}

// Tree returns the document as nested plain maps keyed by the wire names.
// The resolver walks this form. Optional blocks are omitted when empty.
func (d *Document) Tree() map[string]any {
	if d == nil {
		return map[string]any{}
	}

	meta := map[string]any{
		"name":    d.Meta.Name,
		"version": d.Meta.Version,
	}
	if d.Meta.Description != "" {
		meta["description"] = d.Meta.Description
	}
	if d.Meta.Author != "" {
		meta["author"] = d.Meta.Author
	}

	typography := map[string]any{}
	putMap(typography, "fontFamily", d.Typography.FontFamily)
	putMap(typography, "fontSize", d.Typography.FontSize)
	putMap(typography, "fontWeight", d.Typography.FontWeight)
	putMap(typography, "lineHeight", d.Typography.LineHeight)
	putMap(typography, "letterSpacing", d.Typography.LetterSpacing)

	borders := map[string]any{}
	putMap(borders, "width", d.Borders.Width)
	putMap(borders, "style", d.Borders.Style)
	putMap(borders, "radius", d.Borders.Radius)

	tree := map[string]any{
		SectionMeta:       meta,
		SectionColors:     anyMap(d.Colors),
		SectionTypography: typography,
		SectionSpacing:    anyMap(d.Spacing),
		SectionBorders:    borders,
	}
	putMap(tree, SectionRadii, d.Radii)
	putMap(tree, SectionShadows, d.Shadows)
	putMap(tree, SectionZIndex, d.ZIndex)
	putMap(tree, SectionBreakpoints, d.Breakpoints)
	putVariants(tree, SectionButtons, d.Buttons)
	putVariants(tree, SectionCards, d.Cards)

	if d.DarkMode != nil {
		dark := map[string]any{"enabled": d.DarkMode.Enabled}
		putMap(dark, SectionColors, d.DarkMode.Colors)
		tree[SectionDarkMode] = dark
	}
	return tree
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneVariants(m map[string]map[string]string) map[string]map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]map[string]string, len(m))
	for k, v := range m {
		out[k] = cloneMap(v)
	}
	return out
}

func anyMap[V any](m map[string]V) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func putMap[V any](dst map[string]any, key string, m map[string]V) {
	if len(m) == 0 {
		return
	}
	dst[key] = anyMap(m)
}

func putVariants(dst map[string]any, key string, m map[string]map[string]string) {
	if len(m) == 0 {
		return
	}
	variants := make(map[string]any, len(m))
	for name, styles := range m {
		variants[name] = anyMap(styles)
	}
	dst[key] = variants
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
