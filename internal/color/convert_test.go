package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RGB
	}{
		{name: "with hash", input: "#3b82f6", expected: RGB{R: 59, G: 130, B: 246}},
		{name: "without hash", input: "3b82f6", expected: RGB{R: 59, G: 130, B: 246}},
		{name: "upper case", input: "#FFFFFF", expected: RGB{R: 255, G: 255, B: 255}},
		{name: "mixed case", input: "#aBcDeF", expected: RGB{R: 171, G: 205, B: 239}},
		{name: "black", input: "#000000", expected: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb, err := HexToRGB(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rgb)
		})
	}
}

func TestHexToRGBRejectsMalformed(t *testing.T) {
	inputs := []string{"", "#", "#abc", "abc", "#abcd", "#abcdeg", "#1234567", "##123456", " #123456", "#123456\n", "rgb(1,2,3)"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := HexToRGB(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
		})
	}
}

func TestRGBToHex(t *testing.T) {
	hex, err := RGBToHex(59, 130, 246)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", hex)

	hex, err = RGBToHex(0.4, 15.5, 254.6)
	require.NoError(t, err)
	assert.Equal(t, "#0010ff", hex, "channels round to nearest and pad to two digits")

	for _, bad := range [][3]float64{{-1, 0, 0}, {0, 256, 0}, {0, 0, math.NaN()}, {math.Inf(1), 0, 0}} {
		_, err := RGBToHex(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
	}
}

func TestRGBToHSL(t *testing.T) {
	hsl, err := RGBToHSL(255, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, hsl.H, 1e-9)
	assert.InDelta(t, 100, hsl.S, 1e-9)
	assert.InDelta(t, 50, hsl.L, 1e-9)

	hsl, err = RGBToHSL(0, 0, 255)
	require.NoError(t, err)
	assert.InDelta(t, 240, hsl.H, 1e-9)

	t.Run("achromatic input has zero hue and saturation", func(t *testing.T) {
		for _, v := range []float64{0, 17, 128, 255} {
			hsl, err := RGBToHSL(v, v, v)
			require.NoError(t, err)
			assert.Equal(t, 0.0, hsl.H)
			assert.Equal(t, 0.0, hsl.S)
			assert.InDelta(t, v/255*100, hsl.L, 1e-9)
		}
	})

	_, err = RGBToHSL(300, 0, 0)
	assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
}

func TestHSLToRGB(t *testing.T) {
	rgb, err := HSLToRGB(120, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0, G: 255, B: 0}, rgb)

	wrapped, err := HSLToRGB(480, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, rgb, wrapped, "hue wraps modulo 360")

	negative, err := HSLToRGB(-240, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, rgb, negative)

	for _, bad := range [][3]float64{{0, -1, 50}, {0, 101, 50}, {0, 50, 100.5}, {math.NaN(), 50, 50}} {
		_, err := HSLToRGB(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
	}
}

func TestRoundTrips(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				original := RGB{R: r, G: g, B: b}.Hex()

				rgb, err := HexToRGB(original)
				require.NoError(t, err)
				back, err := RGBToHex(float64(rgb.R), float64(rgb.G), float64(rgb.B))
				require.NoError(t, err)
				require.Equal(t, original, back, "hex -> rgb -> hex is lossless")

				hsl, err := HexToHSL(original)
				require.NoError(t, err)
				viaHSL, err := HSLToHex(hsl.H, hsl.S, hsl.L)
				require.NoError(t, err)
				assertWithinOne(t, original, viaHSL)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	hex, err := Normalize("3B82F6")
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", hex)

	assert.True(t, IsHex("#3B82F6"))
	assert.False(t, IsHex("#fff"))
	_, err = Normalize("colors.primary")
	assert.ErrorIs(t, err, themeerrors.ErrInvalidColorFormat)
}

func assertWithinOne(t *testing.T, expected, actual string) {
	t.Helper()
	a, err := HexToRGB(expected)
	require.NoError(t, err)
	b, err := HexToRGB(actual)
	require.NoError(t, err)
	assert.InDelta(t, a.R, b.R, 1, "red channel of %s vs %s", expected, actual)
	assert.InDelta(t, a.G, b.G, 1, "green channel of %s vs %s", expected, actual)
	assert.InDelta(t, a.B, b.B, 1, "blue channel of %s vs %s", expected, actual)
}
