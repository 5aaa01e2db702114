// Package darkmode derives a dark colour set from a light one and reports how
// well the result meets WCAG contrast floors.
//
// Synthesis is heuristic. Contrast enforcement runs a fixed number of
// lightness nudges and then stops; any remaining shortfall is returned in the
// Result rather than treated as an error.
package darkmode

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Intensity selects how dark the synthesized surfaces are.
type Intensity string

const (
	IntensitySubtle   Intensity = "subtle"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Contrast enforcement bounds.
const (
	MaxContrastAttempts = 10
	ContrastStep        = 5.0
)

// DefaultSaturationAdjustment is applied to brand and semantic colours.
const DefaultSaturationAdjustment = -10.0

// Options configures a synthesis call.
type Options struct {
	Intensity            Intensity `json:"intensity" yaml:"intensity"`
	PreserveBrandColors  bool      `json:"preserveBrandColors" yaml:"preserveBrandColors"`
	SaturationAdjustment float64   `json:"saturationAdjustment" yaml:"saturationAdjustment"`
	EnsureContrast       bool      `json:"ensureContrast" yaml:"ensureContrast"`
	MinTextContrast      float64   `json:"minTextContrast" yaml:"minTextContrast"`
	MinUIContrast        float64   `json:"minUIContrast" yaml:"minUIContrast"`
}

// DefaultOptions returns a new Options with the stock settings.
func DefaultOptions() Options {
	return Options{
		Intensity:            IntensityModerate,
		PreserveBrandColors:  false,
		SaturationAdjustment: DefaultSaturationAdjustment,
		EnsureContrast:       true,
		MinTextContrast:      contrast.AAText,
		MinUIContrast:        contrast.UIComponent,
	}
}

// ParseIntensity converts a user supplied name into an Intensity.
func ParseIntensity(name string) (Intensity, error) {
	switch Intensity(strings.ToLower(strings.TrimSpace(name))) {
	case IntensitySubtle:
		return IntensitySubtle, nil
	case IntensityModerate, "":
		return IntensityModerate, nil
	case IntensityIntense:
		return IntensityIntense, nil
	default:
		return "", fmt.Errorf("%w: unknown intensity %q (expected subtle, moderate or intense)", themeerrors.ErrInvalidArgument, name)
	}
}

// Validate checks that the options describe a usable synthesis.
func (o Options) Validate() error {
	if _, ok := bands[o.withDefaults().Intensity]; !ok {
		return fmt.Errorf("%w: unknown intensity %q", themeerrors.ErrInvalidArgument, o.Intensity)
	}
	floors := []struct {
		name  string
		value float64
	}{
		{"minTextContrast", o.MinTextContrast},
		{"minUIContrast", o.MinUIContrast},
	}
	for _, f := range floors {
		if f.value != 0 && !(f.value >= contrast.MinRatio && f.value <= contrast.MaxRatio) {
			return fmt.Errorf("%w: %s must be between %v and %v, got %v", themeerrors.ErrInvalidArgument, f.name, contrast.MinRatio, contrast.MaxRatio, f.value)
		}
	}
	return nil
}

// withDefaults fills zero fields so a zero Options behaves like a partial override.
func (o Options) withDefaults() Options {
	if o.Intensity == "" {
		o.Intensity = IntensityModerate
	}
	if o.MinTextContrast == 0 {
		o.MinTextContrast = contrast.AAText
	}
	if o.MinUIContrast == 0 {
		o.MinUIContrast = contrast.UIComponent
	}
	return o
}

// band holds the target lightness values for one intensity.
type band struct {
	surface          float64
	surfaceSecondary float64
	surfaceHover     float64
	text             float64
	textSecondary    float64
	textMuted        float64
	brandShift       float64
}

const (
	borderMix       = 0.18
	borderStrongMix = 0.3
	backgroundDrop  = 4.0
)

var bands = map[Intensity]band{
	IntensitySubtle: {
		surface: 20, surfaceSecondary: 24, surfaceHover: 28,
		text: 92, textSecondary: 80, textMuted: 66,
		brandShift: 10,
	},
	IntensityModerate: {
		surface: 12, surfaceSecondary: 16, surfaceHover: 20,
		text: 95, textSecondary: 82, textMuted: 68,
		brandShift: 15,
	},
	IntensityIntense: {
		surface: 6, surfaceSecondary: 10, surfaceHover: 14,
		text: 98, textSecondary: 85, textMuted: 70,
		brandShift: 20,
	},
}

func (b band) background() float64 {
	return max(0, b.surface-backgroundDrop)
}

func (b band) border(mix float64) float64 {
	return b.surface + mix*(b.text-b.surface)
}
