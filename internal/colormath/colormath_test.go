package colormath

import (
	"testing"

	"chromacull/domain/color"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"#FF0000", "ff0000", true},
		{"ff0000", "ff0000", true},
		{"#f00", "ff0000", true},
		{"abc", "aabbcc", true},
		{"#ff0000cc", "ff0000", true}, // alpha discarded
		{"  #00FF00  ", "00ff00", true},
		{"xyzxyz", "", false},
		{"ff00", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeHex(tt.input)
		assert.Equal(t, tt.ok, ok, "ok mismatch for %q", tt.input)
		assert.Equal(t, tt.expected, got, "value mismatch for %q", tt.input)
	}
}

func TestHexToRGB(t *testing.T) {
	assert.Equal(t, color.RGB{R: 1, G: 0, B: 0}, HexToRGB("#ff0000"))
	assert.Equal(t, color.RGB{R: 0, G: 0, B: 0}, HexToRGB("not-a-color"))
	assert.Equal(t, color.RGB{R: 0.502, G: 0.502, B: 0.502}, HexToRGB("808080"))
}

func TestHexRGBNearRoundTrip(t *testing.T) {
	// Rounding RGB to 3 decimals keeps every channel within half a byte, so
	// re-deriving the hex must reproduce the original exactly.
	for _, hex := range []string{"ff0000", "00ff00", "0000ff", "808080", "1a2b3c", "fedcba", "073642", "daa520"} {
		rgb := HexToRGB(hex)
		assert.Equal(t, hex, RGBToHex(rgb), "round trip failed for %s", hex)
	}
}

func TestHexToHSL(t *testing.T) {
	hsl, hr := HexToHSL("ff0000")
	assert.Equal(t, color.HSL{H: 0, S: 100, L: 50}, hsl)
	assert.Equal(t, color.HueRange{0, 1}, hr)

	hsl, hr = HexToHSL("808080")
	assert.Equal(t, color.HSL{H: 0, S: 0, L: 50}, hsl)
	assert.Equal(t, color.FullCircle, hr)

	hsl, _ = HexToHSL("00ff00")
	assert.Equal(t, color.HSL{H: 120, S: 100, L: 50}, hsl)
}

func TestHueRangeFor(t *testing.T) {
	// Achromatic: full circle regardless of hue.
	for _, h := range []float64{0, 90, 250} {
		assert.Equal(t, color.FullCircle, HueRangeFor(h, 0))
		assert.Equal(t, color.FullCircle, HueRangeFor(h, 0.049))
	}

	// Fully saturated: narrowest band centered on the hue, clamped.
	assert.Equal(t, color.HueRange{179, 181}, HueRangeFor(180, 1))
	assert.Equal(t, color.HueRange{0, 1}, HueRangeFor(0, 1))
	assert.Equal(t, color.HueRange{359, 360}, HueRangeFor(360, 1))

	// Mid saturation: 20*(1-s) either side.
	assert.Equal(t, color.HueRange{90, 110}, HueRangeFor(100, 0.5))
}

func TestHueDistance(t *testing.T) {
	assert.Equal(t, 0.0, HueDistance(90, 90))
	assert.Equal(t, 20.0, HueDistance(350, 10))
	assert.Equal(t, 180.0, HueDistance(0, 180))
}

func TestFamilyOfAchromaticBands(t *testing.T) {
	assert.Equal(t, color.FamilyBlack, FamilyOf(200, 0.8, 0.1))
	assert.Equal(t, color.FamilyWhite, FamilyOf(0, 0.05, 0.95))
	assert.Equal(t, color.FamilyGray, FamilyOf(0, 0.05, 0.5))
}

func TestFamilyOfSpecialCases(t *testing.T) {
	assert.Equal(t, color.FamilyNeon, FamilyOf(0, 1.0, 0.5))      // #ff0000
	assert.Equal(t, color.FamilyPastel, FamilyOf(200, 0.5, 0.88)) // pale blue
	assert.Equal(t, color.FamilyJewel, FamilyOf(280, 0.8, 0.3))   // deep purple
	assert.Equal(t, color.FamilyMetallic, FamilyOf(40, 0.15, 0.7))
}

func TestFamilyOfHueSectors(t *testing.T) {
	// Mid saturation and lightness values chosen so no refinement fires.
	tests := []struct {
		h        float64
		expected color.FamilyTag
	}{
		{0, color.FamilyRed},
		{30, color.FamilyOrange},
		{60, color.FamilyYellow},
		{90, color.FamilyLime},
		{120, color.FamilyGreen},
		{150, color.FamilyTeal},
		{180, color.FamilyCyan},
		{210, color.FamilySky},
		{240, color.FamilyBlue},
		{270, color.FamilyPurple},
		{300, color.FamilyMagenta},
		{330, color.FamilyRose},
	}
	for _, tt := range tests {
		// Probe values sit outside every refinement window for the sector,
		// so the plain sector tag must come back.
		got := FamilyOf(tt.h, 0.5, 0.58)
		switch tt.expected {
		case color.FamilyOrange, color.FamilyYellow:
			// 0.5/0.58 hits the skin and earth windows.
			got = FamilyOf(tt.h, 0.65, 0.7)
		case color.FamilyLime, color.FamilyGreen:
			// 0.5/0.58 hits the nature window.
			got = FamilyOf(tt.h, 0.5, 0.65)
		}
		assert.Equal(t, tt.expected, got, "hue %v", tt.h)
	}
}

func TestFamilyOfRefinements(t *testing.T) {
	assert.Equal(t, color.FamilyMaroon, FamilyOf(0, 0.6, 0.2))
	assert.Equal(t, color.FamilyBrown, FamilyOf(30, 0.45, 0.3))
	assert.Equal(t, color.FamilyEarth, FamilyOf(40, 0.4, 0.45))
	assert.Equal(t, color.FamilySkin, FamilyOf(30, 0.45, 0.7))
	assert.Equal(t, color.FamilyNavy, FamilyOf(240, 0.6, 0.2))
	assert.Equal(t, color.FamilyPink, FamilyOf(330, 0.6, 0.7))
	assert.Equal(t, color.FamilyOlive, FamilyOf(60, 0.5, 0.3))
	assert.Equal(t, color.FamilyMint, FamilyOf(120, 0.5, 0.8))
}

func TestFamilyOfIsPure(t *testing.T) {
	for _, probe := range [][3]float64{
		{0, 1, 0.5}, {123.4, 0.567, 0.89}, {359.9, 0.05, 0.15}, {42, 0.42, 0.42},
	} {
		first := FamilyOf(probe[0], probe[1], probe[2])
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, FamilyOf(probe[0], probe[1], probe[2]))
		}
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("#FF0000", "Red")
	assert.Equal(t, "ff0000", rec.Hex)
	assert.Equal(t, "Red", rec.Name)
	assert.Equal(t, color.RGB{R: 1, G: 0, B: 0}, rec.RGB)
	assert.Equal(t, color.HSL{H: 0, S: 100, L: 50}, rec.HSL)
	assert.Equal(t, color.FamilyNeon, rec.Family)

	// Malformed hex degrades to the zero color instead of failing.
	rec = NewRecord("zzz", "Broken")
	assert.Equal(t, "000000", rec.Hex)
	assert.Equal(t, color.RGB{}, rec.RGB)
	assert.Equal(t, color.FamilyBlack, rec.Family)
}
