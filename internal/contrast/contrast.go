// Package contrast computes WCAG 2.x relative luminance and contrast ratios.
//
// The package exposes the threshold constants but never decides pass/fail
// policy itself; callers apply the floors that fit their use.
package contrast

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themekit/internal/color"
)

// WCAG thresholds.
const (
	AAText      = 4.5
	AAAText     = 7.0
	AALargeText = 3.0
	UIComponent = 3.0

	MinRatio = 1.0
	MaxRatio = 21.0
)

// Level is a WCAG conformance grade for a contrast ratio.
type Level string

const (
	LevelFail    Level = "fail"
	LevelAALarge Level = "AA-large"
	LevelAA      Level = "AA"
	LevelAAA     Level = "AAA"
)

// RelativeLuminance returns the WCAG relative luminance of hex in [0,1].
func RelativeLuminance(hex string) (float64, error) {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return 0, err
	}

	c := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Ratio returns the contrast ratio between a and b in [1,21]. It is symmetric.
func Ratio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05), nil
}

// Grade classifies ratio for reporting.
func Grade(ratio float64) Level {
	switch {
	case ratio >= AAAText:
		return LevelAAA
	case ratio >= AAText:
		return LevelAA
	case ratio >= AALargeText:
		return LevelAALarge
	default:
		return LevelFail
	}
}
