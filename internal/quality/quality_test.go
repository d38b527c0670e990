package quality

import (
	"testing"

	"chromacull/domain/color"
	"chromacull/internal/spectrum"

	"github.com/stretchr/testify/assert"
)

func rec(h, s, l float64, fam color.FamilyTag) color.Record {
	return color.Record{HSL: color.HSL{H: h, S: s, L: l}, Family: fam}
}

func coverageOf(colors ...color.Record) spectrum.Coverage {
	return spectrum.NewAnalyzer().AnalyzeCoverage(colors)
}

func TestUniquenessNoNeighbors(t *testing.T) {
	s := NewScorer()
	m := s.Score(rec(10, 50, 50, color.FamilyRed), nil, nil, spectrum.Coverage{})
	assert.Equal(t, 1.0, m.Uniqueness)
}

func TestUniquenessIdenticalNeighborIsZero(t *testing.T) {
	s := NewScorer()
	c := rec(10, 50, 50, color.FamilyRed)
	m := s.Score(c, []color.Record{c}, nil, spectrum.Coverage{})
	assert.Equal(t, 0.0, m.Uniqueness)
}

func TestUniquenessGrowsWithDistance(t *testing.T) {
	s := NewScorer()
	c := rec(10, 50, 50, color.FamilyRed)

	near := s.Score(c, []color.Record{rec(12, 52, 51, color.FamilyRed)}, nil, spectrum.Coverage{})
	far := s.Score(c, []color.Record{rec(30, 90, 20, color.FamilyRed)}, nil, spectrum.Coverage{})
	assert.Greater(t, far.Uniqueness, near.Uniqueness)
}

func TestPerceptualDistanceSymmetry(t *testing.T) {
	a := color.HSL{H: 10, S: 50, L: 50}
	b := color.HSL{H: 200, S: 20, L: 80}
	assert.InDelta(t, PerceptualDistance(a, b), PerceptualDistance(b, a), 1e-12)
	assert.Equal(t, 0.0, PerceptualDistance(a, a))
}

func TestSaturationQualityRewardsExtremes(t *testing.T) {
	s := NewScorer()
	family := []color.Record{
		rec(10, 20, 50, color.FamilyRed),
		rec(12, 80, 50, color.FamilyRed),
	}
	cov := coverageOf(family...)

	// Midpoint of the 20..80 range scores 0.
	atMid := s.Score(rec(11, 50, 50, color.FamilyRed), nil, family, cov)
	assert.InDelta(t, 0.0, atMid.SaturationQuality, 1e-9)

	// A color at an extreme scores 1.
	atEdge := s.Score(rec(11, 80, 50, color.FamilyRed), nil, family, cov)
	assert.InDelta(t, 1.0, atEdge.SaturationQuality, 1e-9)
}

func TestSaturationQualityDegenerateRange(t *testing.T) {
	s := NewScorer()
	family := []color.Record{rec(10, 50, 50, color.FamilyRed)}
	cov := coverageOf(family...)

	m := s.Score(rec(10, 50, 50, color.FamilyRed), nil, family, cov)
	assert.Equal(t, 1.0, m.SaturationQuality)
}

func TestLightnessQualityEdgePenalties(t *testing.T) {
	s := NewScorer()
	family := []color.Record{
		rec(10, 50, 10, color.FamilyRed),
		rec(12, 50, 90, color.FamilyRed),
	}
	cov := coverageOf(family...)

	nearBound := s.Score(rec(11, 50, 15, color.FamilyRed), nil, family, cov)
	assert.Equal(t, 0.3, nearBound.LightnessQuality)

	moderate := s.Score(rec(11, 50, 25, color.FamilyRed), nil, family, cov)
	assert.Equal(t, 0.6, moderate.LightnessQuality)

	center := s.Score(rec(11, 50, 50, color.FamilyRed), nil, family, cov)
	assert.Equal(t, 1.0, center.LightnessQuality)
}

func TestRepresentativityCentroidAndFloor(t *testing.T) {
	s := NewScorer()
	family := []color.Record{
		rec(10, 40, 40, color.FamilyRed),
		rec(20, 60, 60, color.FamilyRed),
	}
	cov := coverageOf(family...)

	// At the centroid (15, 50, 50) the distance is zero.
	atCenter := s.Score(rec(15, 50, 50, color.FamilyRed), nil, family, cov)
	assert.InDelta(t, 1.0, atCenter.FamilyRepresentativity, 1e-9)

	// Far from the centroid the score bottoms out at the 0.3 floor.
	farAway := s.Score(rec(195, 100, 100, color.FamilyRed), nil, family, cov)
	assert.Equal(t, 0.3, farAway.FamilyRepresentativity)
}

func TestRepresentativityEmptyFamilyIsNeutral(t *testing.T) {
	s := NewScorer()
	m := s.Score(rec(10, 50, 50, color.FamilyRed), nil, nil, spectrum.Coverage{})
	assert.Equal(t, 1.0, m.FamilyRepresentativity)
}

func TestOverallScoreBlend(t *testing.T) {
	s := NewScorer()

	// No neighbors, no family context: every component is neutral 1.0.
	m := s.Score(rec(10, 50, 50, color.FamilyRed), nil, nil, spectrum.Coverage{})
	assert.Equal(t, 100, m.OverallScore)
	assert.True(t, m.OverallScore >= 0 && m.OverallScore <= 100)
}
