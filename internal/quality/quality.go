// Package quality scores individual colors against their spectral and
// family context. Four component scores in [0,1] blend into an overall
// 0–100 integer used by pruning to rank candidates.
package quality

import (
	"math"

	"chromacull/domain/color"
	"chromacull/domain/curation"
	"chromacull/internal/colormath"
	"chromacull/internal/spectrum"

	"github.com/montanaflynn/stats"
)

// Scorer computes quality metrics. Stateless and safe for concurrent use.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// PerceptualDistance is a weighted Euclidean distance between two HSL
// points, each component scaled to a 0–100 range (hue distance spans 0–50
// after scaling). Hue is weighted 0.4, saturation and lightness 0.3 each.
func PerceptualDistance(a, b color.HSL) float64 {
	dh := colormath.HueDistance(a.H, b.H) / 360 * 100
	ds := math.Abs(a.S - b.S)
	dl := math.Abs(a.L - b.L)
	return math.Sqrt(0.4*dh*dh + 0.3*ds*ds + 0.3*dl*dl)
}

// Score rates one color. nearby is the caller's neighborhood (typically
// colors within ~30° of hue), familyColors the working-set members of the
// same family, and cov the coverage context holding the family's observed
// HSL extents. Empty inputs yield defined neutral values, never NaN.
func (s *Scorer) Score(rec color.Record, nearby, familyColors []color.Record, cov spectrum.Coverage) curation.QualityMetrics {
	extent, hasExtent := cov.Families[rec.Family]

	m := curation.QualityMetrics{
		Uniqueness:             s.uniqueness(rec, nearby),
		SaturationQuality:      s.saturationQuality(rec, extent, hasExtent),
		LightnessQuality:       s.lightnessQuality(rec, extent, hasExtent),
		FamilyRepresentativity: s.representativity(rec, familyColors),
	}
	m.OverallScore = int(math.Round(
		m.Uniqueness*35 + m.SaturationQuality*25 + m.LightnessQuality*25 + m.FamilyRepresentativity*15))
	return m
}

// uniqueness is 1.0 with no neighbors, otherwise the minimum perceptual
// distance to any neighbor scaled into [0,1].
func (s *Scorer) uniqueness(rec color.Record, nearby []color.Record) float64 {
	if len(nearby) == 0 {
		return 1.0
	}
	minDist := math.Inf(1)
	for _, n := range nearby {
		if d := PerceptualDistance(rec.HSL, n.HSL); d < minDist {
			minDist = d
		}
	}
	return math.Min(1, minDist/100)
}

// saturationQuality rewards distance from the midpoint of the family's
// saturation range: colors near the family's extremes score higher than
// colors near its average.
func (s *Scorer) saturationQuality(rec color.Record, extent spectrum.FamilyExtent, hasExtent bool) float64 {
	if !hasExtent {
		return 1.0
	}
	half := (extent.MaxS - extent.MinS) / 2
	if half <= 0 {
		return 1.0
	}
	mid := (extent.MinS + extent.MaxS) / 2
	return math.Min(1, math.Abs(rec.HSL.S-mid)/half)
}

// lightnessQuality penalizes colors crowding either lightness bound of the
// family: 0.3 within 10 units of a bound, 0.6 within 20, 1.0 otherwise.
func (s *Scorer) lightnessQuality(rec color.Record, extent spectrum.FamilyExtent, hasExtent bool) float64 {
	if !hasExtent {
		return 1.0
	}
	edge := math.Min(math.Abs(rec.HSL.L-extent.MinL), math.Abs(rec.HSL.L-extent.MaxL))
	switch {
	case edge < 10:
		return 0.3
	case edge < 20:
		return 0.6
	default:
		return 1.0
	}
}

// representativity maps distance from the family centroid to a score with a
// floor of 0.3. Components are normalized to [0,1] and weighted 0.3/0.3/0.4
// for h/s/l.
func (s *Scorer) representativity(rec color.Record, familyColors []color.Record) float64 {
	if len(familyColors) == 0 {
		return 1.0
	}

	hs := make([]float64, len(familyColors))
	ss := make([]float64, len(familyColors))
	ls := make([]float64, len(familyColors))
	for i, c := range familyColors {
		hs[i], ss[i], ls[i] = c.HSL.H, c.HSL.S, c.HSL.L
	}
	meanH, _ := stats.Mean(hs)
	meanS, _ := stats.Mean(ss)
	meanL, _ := stats.Mean(ls)

	dh := colormath.HueDistance(rec.HSL.H, meanH) / 360
	ds := math.Abs(rec.HSL.S-meanS) / 100
	dl := math.Abs(rec.HSL.L-meanL) / 100
	dist := math.Sqrt(0.3*dh*dh + 0.3*ds*ds + 0.4*dl*dl)

	return math.Max(0.3, 1-2*dist)
}
