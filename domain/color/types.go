// Package color holds the canonical color record types shared by every
// pipeline stage. All values here are plain data: stages hand ownership of
// record slices to each other and never mutate a slice they received.
package color

// FamilyTag is one of the fixed semantic color families derived from HSL.
type FamilyTag string

// The full family enumeration. Classification is a deterministic decision
// tree over HSL (see internal/colormath), so the same HSL always maps to the
// same tag.
const (
	FamilyBlack    FamilyTag = "black"
	FamilyWhite    FamilyTag = "white"
	FamilyGray     FamilyTag = "gray"
	FamilyMetallic FamilyTag = "metallic"
	FamilyPastel   FamilyTag = "pastel"
	FamilyNeon     FamilyTag = "neon"
	FamilyJewel    FamilyTag = "jewel"
	FamilyRed      FamilyTag = "red"
	FamilyOrange   FamilyTag = "orange"
	FamilyYellow   FamilyTag = "yellow"
	FamilyLime     FamilyTag = "lime"
	FamilyGreen    FamilyTag = "green"
	FamilyTeal     FamilyTag = "teal"
	FamilyCyan     FamilyTag = "cyan"
	FamilySky      FamilyTag = "sky"
	FamilyBlue     FamilyTag = "blue"
	FamilyPurple   FamilyTag = "purple"
	FamilyMagenta  FamilyTag = "magenta"
	FamilyRose     FamilyTag = "rose"
	FamilyMaroon   FamilyTag = "maroon"
	FamilyBrown    FamilyTag = "brown"
	FamilyEarth    FamilyTag = "earth"
	FamilySkin     FamilyTag = "skin"
	FamilyPeach    FamilyTag = "peach"
	FamilyCoral    FamilyTag = "coral"
	FamilyFood     FamilyTag = "food"
	FamilyGold     FamilyTag = "gold"
	FamilyOlive    FamilyTag = "olive"
	FamilyBeige    FamilyTag = "beige"
	FamilyMint     FamilyTag = "mint"
	FamilyNature   FamilyTag = "nature"
	FamilyNavy     FamilyTag = "navy"
	FamilyLavender FamilyTag = "lavender"
	FamilyPink     FamilyTag = "pink"
)

// AllFamilies lists every family tag in declaration order.
var AllFamilies = []FamilyTag{
	FamilyBlack, FamilyWhite, FamilyGray, FamilyMetallic, FamilyPastel,
	FamilyNeon, FamilyJewel, FamilyRed, FamilyOrange, FamilyYellow,
	FamilyLime, FamilyGreen, FamilyTeal, FamilyCyan, FamilySky,
	FamilyBlue, FamilyPurple, FamilyMagenta, FamilyRose, FamilyMaroon,
	FamilyBrown, FamilyEarth, FamilySkin, FamilyPeach, FamilyCoral,
	FamilyFood, FamilyGold, FamilyOlive, FamilyBeige, FamilyMint,
	FamilyNature, FamilyNavy, FamilyLavender, FamilyPink,
}

// RGB holds normalized channel fractions in [0,1], rounded to 3 decimals.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages
// [0,100]. Records carry the percent convention because the curation math
// (perceptual distance, lightness-edge penalties) is defined in percent
// units; colormath offers a normalized [0,1] mode for callers that want
// fractions.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HueRange is the [min,max] hue spread in degrees attributable to a shade.
// Low-saturation colors cover the whole circle; fully saturated colors get a
// narrow band around their hue.
type HueRange [2]float64

// FullCircle is the hue range of an achromatic color.
var FullCircle = HueRange{0, 360}

// Record is the canonical unit flowing through the pipeline. Hex is always
// stored as a lower-case 6-digit string; RGB, HSL, Family and HueRange are
// derived from it and stay mutually consistent within rounding tolerance.
type Record struct {
	Hex      string    `json:"hex"`
	Name     string    `json:"name"`
	Family   FamilyTag `json:"family"`
	RGB      RGB       `json:"rgb"`
	HSL      HSL       `json:"hsl"`
	HueRange HueRange  `json:"hue_range"`
}

// Unnamed reports whether the record carries no human label. Unnamed records
// are excluded from name-based duplicate grouping.
func (r Record) Unnamed() bool {
	return r.Name == ""
}
