// Package color converts between hex, RGB and HSL representations and
// derives new colours from existing ones.
//
// Conversion functions fail fast on out-of-domain input. Clamping belongs to
// the manipulation helpers, never to the converters.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB is a colour with integer channels in [0,255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSL is a colour with hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Hex encodes the colour as lower-case #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}

// IsHex reports whether s is a 6-digit hex colour, with or without '#'.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexToRGB decodes a 6-digit hex colour. Shorthand forms are rejected.
func HexToRGB(hex string) (RGB, error) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, themeerrors.NewColorError(hex, "expected 6 hex digits with optional '#'")
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return RGB{}, themeerrors.NewColorError(hex, err.Error())
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// Normalize returns the canonical #rrggbb form of hex.
func Normalize(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// RGBToHex rounds each channel to the nearest integer and encodes it.
func RGBToHex(r, g, b float64) (string, error) {
	rgb, err := roundRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

func roundRGB(r, g, b float64) (RGB, error) {
	channels := [3]float64{r, g, b}
	var out [3]int
	for i, c := range channels {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return RGB{}, themeerrors.NewColorError(fmt.Sprintf("rgb(%v, %v, %v)", r, g, b), "channel is not a finite number")
		}
		rounded := int(math.Round(c))
		if rounded < 0 || rounded > 255 {
			return RGB{}, themeerrors.NewColorError(fmt.Sprintf("rgb(%v, %v, %v)", r, g, b), "channel outside [0,255]")
		}
		out[i] = rounded
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// RGBToHSL converts channels in [0,255] to HSL. Achromatic input yields hue 0 and saturation 0.
func RGBToHSL(r, g, b float64) (HSL, error) {
	for _, c := range [3]float64{r, g, b} {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 || c > 255 {
			return HSL{}, themeerrors.NewColorError(fmt.Sprintf("rgb(%v, %v, %v)", r, g, b), "channel outside [0,255]")
		}
	}

	h, s, l := colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Hsl()
	if s == 0 {
		h = 0
	}
	return HSL{H: h, S: s * 100, L: l * 100}, nil
}

// HSLToRGB converts HSL to RGB. Hue wraps modulo 360; saturation and
// lightness must lie in [0,100].
func HSLToRGB(h, s, l float64) (RGB, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return RGB{}, themeerrors.NewColorError(fmt.Sprintf("hsl(%v, %v%%, %v%%)", h, s, l), "hue is not a finite number")
	}
	if math.IsNaN(s) || s < 0 || s > 100 || math.IsNaN(l) || l < 0 || l > 100 {
		return RGB{}, themeerrors.NewColorError(fmt.Sprintf("hsl(%v, %v%%, %v%%)", h, s, l), "saturation and lightness must be within [0,100]")
	}

	return fromColorful(colorful.Hsl(wrapHue(h), s/100, l/100)), nil
}

// HexToHSL decodes hex and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// HSLToHex converts HSL to a #rrggbb string.
func HSLToHex(h, s, l float64) (string, error) {
	rgb, err := HSLToRGB(h, s, l)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
