package theme

import (
	"fmt"
	"sort"
)

// Preset builds a fresh document.
type Preset func() *Document

var presets = map[string]Preset{
	"default": Default,
	"slate":   Slate,
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns a new document for the named preset.
func LookupPreset(name string) (*Document, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return p(), nil
}

// Default returns the stock light theme.
func Default() *Document {
	return &Document{
		Meta: Meta{
			Name:        "Default",
			Version:     "1.0.0",
			Description: "Stock light theme",
		},
		Colors: ColorSet{
			RolePrimary:          "#2563eb",
			RoleSecondary:        "#7c3aed",
			RoleBackground:       "#ffffff",
			RoleSurface:          "#ffffff",
			RoleSurfaceSecondary: "#f9fafb",
			RoleSurfaceHover:     "#f1f5f9",
			RoleText:             "#111827",
			RoleTextSecondary:    "#475569",
			RoleTextMuted:        "#64748b",
			RoleBorder:           "#e2e8f0",
			RoleBorderStrong:     "#94a3b8",
			RoleSuccess:          "#16a34a",
			RoleWarning:          "#ca8a04",
			RoleError:            "#dc2626",
			RoleInfo:             "#0891b2",
		},
		Typography: Typography{
			FontFamily: map[string]string{
				"sans": "Inter, system-ui, sans-serif",
				"mono": "\"JetBrains Mono\", ui-monospace, monospace",
			},
			FontSize: map[string]string{
				"xs":   "0.75rem",
				"sm":   "0.875rem",
				"base": "1rem",
				"lg":   "1.125rem",
				"xl":   "1.25rem",
				"2xl":  "1.5rem",
				"3xl":  "1.875rem",
			},
			FontWeight: map[string]int{
				"light":    300,
				"normal":   400,
				"medium":   500,
				"semibold": 600,
				"bold":     700,
			},
			LineHeight: map[string]float64{
				"tight":   1.25,
				"normal":  1.5,
				"relaxed": 1.75,
			},
		},
		Spacing: map[string]string{
			"none": "0",
			"xs":   "0.25rem",
			"sm":   "0.5rem",
			"md":   "1rem",
			"lg":   "1.5rem",
			"xl":   "2rem",
			"2xl":  "3rem",
		},
		Borders: Borders{
			Width: map[string]string{
				"thin":  "1px",
				"thick": "2px",
			},
			Style: map[string]string{
				"default": "solid",
			},
			Radius: map[string]string{
				"sm":   "0.25rem",
				"md":   "0.5rem",
				"full": "9999px",
			},
		},
		Shadows: map[string]string{
			"sm": "0 1px 2px rgba(0, 0, 0, 0.05)",
			"md": "0 4px 6px rgba(0, 0, 0, 0.1)",
		},
		ZIndex: map[string]int{
			"dropdown": 1000,
			"modal":    1050,
			"tooltip":  1070,
		},
		Buttons: map[string]map[string]string{
			"primary": {
				"background": "colors.primary",
				"color":      "colors.background",
			},
			"secondary": {
				"background": "colors.secondary",
				"color":      "colors.background",
			},
		},
		Cards: map[string]map[string]string{
			"default": {
				"background": "colors.surface",
				"border":     "colors.border",
				"radius":     "borders.radius.md",
			},
		},
		Breakpoints: map[string]string{
			"sm": "640px",
			"md": "768px",
			"lg": "1024px",
			"xl": "1280px",
		},
	}
}

// Slate returns a cool grey variant of Default.
func Slate() *Document {
	doc := Default()
	doc.Meta.Name = "Slate"
	doc.Meta.Description = "Slate neutrals with cyan accents"
	doc.Colors[RolePrimary] = "#0e7490"
	doc.Colors[RoleSecondary] = "#475569"
	doc.Colors[RoleSurface] = "#f8fafc"
	doc.Colors[RoleSurfaceSecondary] = "#f1f5f9"
	doc.Colors[RoleSurfaceHover] = "#e2e8f0"
	doc.Colors[RoleText] = "#0f172a"
	doc.Colors[RoleTextSecondary] = "#334155"
	doc.Colors[RoleTextMuted] = "#475569"
	doc.Colors[RoleBorder] = "#cbd5e1"
	return doc
}
