package color

import (
	"fmt"
	"math"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	// DefaultPaletteSteps matches the 50..900 shade scale.
	DefaultPaletteSteps = 10

	paletteLightest = 95.0
	paletteDarkest  = 10.0
)

var tenStepShades = [DefaultPaletteSteps]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Shade is one entry of a generated palette. HSL holds the requested values;
// Hex is their nearest 8-bit rendering, so decoding it can drift slightly in
// hue and saturation at very light or low-chroma shades.
type Shade struct {
	Step int    `json:"step" yaml:"step"`
	Hex  string `json:"hex" yaml:"hex"`
	HSL  HSL    `json:"hsl" yaml:"hsl"`
}

// GeneratePalette produces steps shades of base ordered lightest to darkest.
// Hue and saturation come from base; only lightness varies.
func GeneratePalette(base string, steps int) ([]Shade, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: palette needs at least one step, got %d", themeerrors.ErrInvalidArgument, steps)
	}

	hsl, err := HexToHSL(base)
	if err != nil {
		return nil, err
	}

	shades := make([]Shade, 0, steps)
	for i := 0; i < steps; i++ {
		lightness := hsl.L
		if steps > 1 {
			lightness = paletteLightest - float64(i)*(paletteLightest-paletteDarkest)/float64(steps-1)
		}

		hex, err := HSLToHex(hsl.H, hsl.S, lightness)
		if err != nil {
			return nil, err
		}

		shades = append(shades, Shade{
			Step: shadeNumber(i, steps),
			Hex:  hex,
			HSL:  HSL{H: hsl.H, S: hsl.S, L: lightness},
		})
	}

	return shades, nil
}

func shadeNumber(index, steps int) int {
	if steps == DefaultPaletteSteps {
		return tenStepShades[index]
	}
	return int(math.Round(float64(index+1) * 900 / float64(steps)))
}
