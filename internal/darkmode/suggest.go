package darkmode

import (
	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
)

// GetSuggestedOptions recommends options for a theme built around brandHex.
//
// Dark brand colours get the deepest surfaces so they keep a usable gap, and
// light ones can afford the softer tier. Highly saturated brands are pulled
// down further. Brand colours are preserved only when they already clear the
// UI floor against the suggested surface.
func GetSuggestedOptions(brandHex string) (Options, error) {
	hsl, err := color.HexToHSL(brandHex)
	if err != nil {
		return Options{}, err
	}

	opts := DefaultOptions()
	switch {
	case hsl.L < 30:
		opts.Intensity = IntensityIntense
	case hsl.L > 70:
		opts.Intensity = IntensitySubtle
	default:
		opts.Intensity = IntensityModerate
	}

	switch {
	case hsl.S > 80:
		opts.SaturationAdjustment = -20
	case hsl.S > 60:
		opts.SaturationAdjustment = -10
	default:
		opts.SaturationAdjustment = 0
	}

	surface, err := color.HSLToHex(0, 0, bands[opts.Intensity].surface)
	if err != nil {
		return Options{}, err
	}
	ratio, err := contrast.Ratio(brandHex, surface)
	if err != nil {
		return Options{}, err
	}
	opts.PreserveBrandColors = ratio >= contrast.UIComponent
	opts.EnsureContrast = true
	return opts, nil
}
