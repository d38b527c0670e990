// Package colormath provides the pure color-space conversions and the family
// decision tree used throughout the curation pipeline. Every function is
// total: malformed hex degrades to a zeroed/neutral result instead of
// returning an error, so downstream stages never crash on dirty input.
package colormath

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"chromacull/domain/color"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// NormalizeHex canonicalizes a hex color string: strips a leading '#',
// lower-cases, expands 3-digit shorthand by digit duplication, and accepts
// 8-digit hex by discarding the alpha pair. ok is false when the result does
// not match the fixed 6-digit pattern.
func NormalizeHex(hex string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(hex))
	h = strings.TrimPrefix(h, "#")

	switch len(h) {
	case 3:
		var b strings.Builder
		for _, c := range h {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		h = b.String()
	case 8:
		// Alpha is not retained in RGB.
		h = h[:6]
	}

	if !hexPattern.MatchString(h) {
		return "", false
	}
	return h, true
}

// HexToRGB converts a hex string to normalized channel fractions, each
// rounded to 3 decimals. Invalid hex returns the zero color (0,0,0), a
// defined fallback rather than an error.
func HexToRGB(hex string) color.RGB {
	h, ok := NormalizeHex(hex)
	if !ok {
		return color.RGB{}
	}

	r, _ := strconv.ParseUint(h[0:2], 16, 8)
	g, _ := strconv.ParseUint(h[2:4], 16, 8)
	b, _ := strconv.ParseUint(h[4:6], 16, 8)

	return color.RGB{
		R: round3(float64(r) / 255.0),
		G: round3(float64(g) / 255.0),
		B: round3(float64(b) / 255.0),
	}
}

// RGBToHex renders channel fractions back to a lower-case 6-digit hex
// string. Channels are clamped to [0,1] first.
func RGBToHex(rgb color.RGB) string {
	toByte := func(v float64) uint8 {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return uint8(math.Round(v * 255.0))
	}
	const digits = "0123456789abcdef"
	out := make([]byte, 6)
	for i, b := range []uint8{toByte(rgb.R), toByte(rgb.G), toByte(rgb.B)} {
		out[i*2] = digits[b>>4]
		out[i*2+1] = digits[b&0x0f]
	}
	return string(out)
}

// HexToHSL converts a hex string to HSL with hue rounded to the nearest
// degree and saturation/lightness to the nearest percent, plus the hue range
// attributable to the shade. Invalid hex yields the zeroed achromatic result.
func HexToHSL(hex string) (color.HSL, color.HueRange) {
	h, s, l := hexToHSLFractions(hex)
	hr := HueRangeFor(h, s)
	return color.HSL{
		H: math.Round(h),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}, hr
}

// HexToHSLNormalized is the finer float mode: hue in degrees, saturation and
// lightness as unrounded fractions in [0,1].
func HexToHSLNormalized(hex string) (h, s, l float64) {
	return hexToHSLFractions(hex)
}

// hexToHSLFractions implements the standard max/min channel conversion.
func hexToHSLFractions(hex string) (hue, sat, light float64) {
	rgb := HexToRGB(hex)
	r, g, b := rgb.R, rgb.G, rgb.B

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	light = (max + min) / 2

	if delta == 0 {
		return 0, 0, light
	}

	if light > 0.5 {
		sat = delta / (2 - max - min)
	} else {
		sat = delta / (max + min)
	}

	switch max {
	case r:
		hue = math.Mod((g-b)/delta, 6)
	case g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, sat, light
}

// HueRangeFor estimates the perceptual hue spread of a shade from its hue
// (degrees) and saturation (fraction). Achromatic colors cover the whole
// circle; saturated colors narrow to max(1, 20*(1-s)) degrees either side of
// the hue, clamped to [0,360]. A span wider than a half circle collapses to
// the full circle.
func HueRangeFor(h, s float64) color.HueRange {
	if s < 0.05 {
		return color.FullCircle
	}

	spread := math.Max(1, 20*(1-s))
	lo := h - spread
	hi := h + spread
	if lo < 0 {
		lo = 0
	}
	if hi > 360 {
		hi = 360
	}
	if hi-lo > 180 {
		return color.FullCircle
	}
	return color.HueRange{lo, hi}
}

// HueDistance returns the circular distance between two hues in degrees,
// always in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// hueSector maps a hue to its 30-degree base family; the red sector is
// centered on 0.
func hueSector(h float64) color.FamilyTag {
	h = math.Mod(h+15, 360)
	if h < 0 {
		h += 360
	}
	sectors := []color.FamilyTag{
		color.FamilyRed, color.FamilyOrange, color.FamilyYellow,
		color.FamilyLime, color.FamilyGreen, color.FamilyTeal,
		color.FamilyCyan, color.FamilySky, color.FamilyBlue,
		color.FamilyPurple, color.FamilyMagenta, color.FamilyRose,
	}
	idx := int(h / 30)
	if idx > 11 {
		idx = 11
	}
	return sectors[idx]
}

// FamilyOf classifies an HSL triple (hue in degrees, saturation and
// lightness as fractions) into its semantic family. The rule list is ordered
// and the first matching rule wins; reordering rules changes labels, so the
// order here is part of the contract. Identical inputs always produce the
// identical tag.
func FamilyOf(h, s, l float64) color.FamilyTag {
	// Achromatic bands first.
	if l < 0.15 {
		return color.FamilyBlack
	}
	if s < 0.10 && l > 0.90 {
		return color.FamilyWhite
	}
	if s < 0.10 {
		return color.FamilyGray
	}

	// Low-chroma sheen between gray and the chromatic families.
	if s < 0.20 && l >= 0.55 {
		return color.FamilyMetallic
	}

	// Pastel and neon special cases precede the hue sectors.
	if l >= 0.82 && s >= 0.20 && s <= 0.70 {
		return color.FamilyPastel
	}
	if s >= 0.95 && l >= 0.45 && l <= 0.65 {
		return color.FamilyNeon
	}
	if s >= 0.70 && l >= 0.22 && l <= 0.40 {
		return color.FamilyJewel
	}

	sector := hueSector(h)

	// Saturation/lightness-conditioned refinements, in precedence order.
	switch {
	case sector == color.FamilyRed && l < 0.25 && s >= 0.40:
		return color.FamilyMaroon
	case sector == color.FamilyOrange && l < 0.38 && s >= 0.25:
		return color.FamilyBrown
	case (sector == color.FamilyYellow || sector == color.FamilyLime) && l < 0.35:
		return color.FamilyOlive
	case (sector == color.FamilyOrange || sector == color.FamilyYellow) &&
		s <= 0.60 && l >= 0.25 && l <= 0.55:
		return color.FamilyEarth
	case sector == color.FamilyOrange && s >= 0.20 && s <= 0.60 && l > 0.55 && l <= 0.82:
		return color.FamilySkin
	case sector == color.FamilyOrange && l > 0.75:
		return color.FamilyPeach
	case sector == color.FamilyRed && s >= 0.50 && l >= 0.60 && l <= 0.80:
		return color.FamilyCoral
	case (sector == color.FamilyRed || sector == color.FamilyOrange) &&
		s >= 0.60 && l >= 0.45 && l <= 0.60:
		return color.FamilyFood
	case sector == color.FamilyYellow && s >= 0.70 && l >= 0.40 && l <= 0.60:
		return color.FamilyGold
	case (sector == color.FamilyYellow || sector == color.FamilyOrange) &&
		s < 0.35 && l > 0.70:
		return color.FamilyBeige
	case (sector == color.FamilyGreen || sector == color.FamilyTeal) && l > 0.75:
		return color.FamilyMint
	case (sector == color.FamilyGreen || sector == color.FamilyLime) &&
		s >= 0.30 && l >= 0.20 && l <= 0.60:
		return color.FamilyNature
	case sector == color.FamilyBlue && l < 0.25:
		return color.FamilyNavy
	case (sector == color.FamilyPurple || sector == color.FamilyMagenta) && l > 0.75:
		return color.FamilyLavender
	case (sector == color.FamilyRose || sector == color.FamilyMagenta) && l > 0.60:
		return color.FamilyPink
	}

	return sector
}

// NewRecord builds a fully derived canonical record from a hex string and
// optional name. The hex is normalized; when normalization fails the record
// degrades to the zero color rather than failing.
func NewRecord(hex, name string) color.Record {
	normalized, ok := NormalizeHex(hex)
	if !ok {
		normalized = "000000"
	}

	hsl, hueRange := HexToHSL(normalized)
	hF, sF, lF := HexToHSLNormalized(normalized)

	return color.Record{
		Hex:      normalized,
		Name:     name,
		Family:   FamilyOf(hF, sF, lF),
		RGB:      HexToRGB(normalized),
		HSL:      hsl,
		HueRange: hueRange,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
