package color

import (
	"fmt"
	"math"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// MixEven is the default weight for Mix.
const MixEven = 50.0

// AdjustLightness adds delta percent to the lightness, clamped to [0,100].
func AdjustLightness(hex string, delta float64) (string, error) {
	return withHSL(hex, func(c HSL) HSL {
		c.L = clamp(c.L+delta, 0, 100)
		return c
	})
}

// AdjustSaturation adds delta percent to the saturation, clamped to [0,100].
func AdjustSaturation(hex string, delta float64) (string, error) {
	return withHSL(hex, func(c HSL) HSL {
		c.S = clamp(c.S+delta, 0, 100)
		return c
	})
}

// AdjustHue rotates the hue by delta degrees, wrapping modulo 360.
func AdjustHue(hex string, delta float64) (string, error) {
	return withHSL(hex, func(c HSL) HSL {
		c.H = wrapHue(c.H + delta)
		return c
	})
}

// SetLightness replaces the lightness, clamped to [0,100].
func SetLightness(hex string, lightness float64) (string, error) {
	return withHSL(hex, func(c HSL) HSL {
		c.L = clamp(lightness, 0, 100)
		return c
	})
}

// Lighten raises lightness by amount percent.
func Lighten(hex string, amount float64) (string, error) {
	return AdjustLightness(hex, math.Abs(amount))
}

// Darken lowers lightness by amount percent.
func Darken(hex string, amount float64) (string, error) {
	return AdjustLightness(hex, -math.Abs(amount))
}

// Saturate raises saturation by amount percent.
func Saturate(hex string, amount float64) (string, error) {
	return AdjustSaturation(hex, math.Abs(amount))
}

// Desaturate lowers saturation by amount percent.
func Desaturate(hex string, amount float64) (string, error) {
	return AdjustSaturation(hex, -math.Abs(amount))
}

// Grayscale drops saturation to zero, keeping hue and lightness.
func Grayscale(hex string) (string, error) {
	return withHSL(hex, func(c HSL) HSL {
		c.S = 0
		return c
	})
}

// Invert replaces every channel with its 255 complement.
func Invert(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return RGB{R: 255 - rgb.R, G: 255 - rgb.G, B: 255 - rgb.B}.Hex(), nil
}

// IsLight reports whether lightness is strictly above 50%.
func IsLight(hex string) (bool, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return false, err
	}
	return hsl.L > 50, nil
}

// IsDark is the negation of IsLight; exactly 50% lightness is dark.
func IsDark(hex string) (bool, error) {
	light, err := IsLight(hex)
	if err != nil {
		return false, err
	}
	return !light, nil
}

// Mix interpolates RGB channels. weight is the percentage of a in the
// result: 100 returns a, 0 returns b.
func Mix(a, b string, weight float64) (string, error) {
	if math.IsNaN(weight) || weight < 0 || weight > 100 {
		return "", fmt.Errorf("%w: mix weight %v outside [0,100]", themeerrors.ErrInvalidArgument, weight)
	}

	ca, err := HexToRGB(a)
	if err != nil {
		return "", err
	}
	cb, err := HexToRGB(b)
	if err != nil {
		return "", err
	}

	blended := ca.colorful().BlendRgb(cb.colorful(), 1-weight/100)
	return fromColorful(blended).Hex(), nil
}

// Complementary rotates the hue by 180 degrees.
func Complementary(hex string) (string, error) {
	return AdjustHue(hex, 180)
}

func withHSL(hex string, fn func(HSL) HSL) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	next := fn(hsl)
	return HSLToHex(next.H, next.S, next.L)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
