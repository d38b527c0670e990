// Package spectrum analyzes how a color set covers the hue circle. The
// circle is partitioned into fixed 15° buckets; coverage tracks per-bucket
// density and tone averages plus per-family HSL bounding boxes. Pruning and
// quality scoring both consume this context.
package spectrum

import (
	"math"
	"sort"

	"chromacull/domain/color"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// BucketWidth is the fixed width of one hue bucket in degrees. 360/15 = 24
// buckets cover the full circle.
const BucketWidth = 15.0

// Bucket is one 15° slice of the hue circle. Hue is the bucket's start
// angle; Density is the number of colors assigned to it.
type Bucket struct {
	Hue           float64 `json:"hue"`
	Density       int     `json:"density"`
	AvgSaturation float64 `json:"avg_saturation"`
	AvgLightness  float64 `json:"avg_lightness"`
}

// FamilyExtent is a family's observed bounding box in HSL space. Saturation
// and lightness are in percent units, matching the record representation.
type FamilyExtent struct {
	MinH, MaxH float64
	MinS, MaxS float64
	MinL, MaxL float64
	Count      int
}

// Coverage is the result of one analysis pass. Buckets holds only non-empty
// buckets, keyed by start angle; MinHue/MaxHue are the extremes among them.
type Coverage struct {
	Buckets  map[float64]Bucket
	Families map[color.FamilyTag]FamilyExtent
	MinHue   float64
	MaxHue   float64
	Total    int
}

// BucketFor maps a hue in degrees to its bucket start angle.
func BucketFor(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return math.Floor(h/BucketWidth) * BucketWidth
}

// Analyzer computes spectral coverage. It is stateless and safe for
// concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalyzeCoverage partitions the input by hue bucket and accumulates family
// extents in a single pass over the records.
func (a *Analyzer) AnalyzeCoverage(colors []color.Record) Coverage {
	cov := Coverage{
		Buckets:  make(map[float64]Bucket),
		Families: make(map[color.FamilyTag]FamilyExtent),
		Total:    len(colors),
	}
	if len(colors) == 0 {
		return cov
	}

	satByBucket := make(map[float64][]float64)
	lightByBucket := make(map[float64][]float64)
	familyH := make(map[color.FamilyTag][]float64)
	familyS := make(map[color.FamilyTag][]float64)
	familyL := make(map[color.FamilyTag][]float64)

	for _, c := range colors {
		b := BucketFor(c.HSL.H)
		satByBucket[b] = append(satByBucket[b], c.HSL.S)
		lightByBucket[b] = append(lightByBucket[b], c.HSL.L)

		familyH[c.Family] = append(familyH[c.Family], c.HSL.H)
		familyS[c.Family] = append(familyS[c.Family], c.HSL.S)
		familyL[c.Family] = append(familyL[c.Family], c.HSL.L)
	}

	minHue, maxHue := math.Inf(1), math.Inf(-1)
	for b, sats := range satByBucket {
		avgSat, _ := stats.Mean(sats)
		avgLight, _ := stats.Mean(lightByBucket[b])
		cov.Buckets[b] = Bucket{
			Hue:           b,
			Density:       len(sats),
			AvgSaturation: avgSat,
			AvgLightness:  avgLight,
		}
		minHue = math.Min(minHue, b)
		maxHue = math.Max(maxHue, b)
	}
	cov.MinHue = minHue
	cov.MaxHue = maxHue

	for fam, hs := range familyH {
		cov.Families[fam] = FamilyExtent{
			MinH:  floats.Min(hs),
			MaxH:  floats.Max(hs),
			MinS:  floats.Min(familyS[fam]),
			MaxS:  floats.Max(familyS[fam]),
			MinL:  floats.Min(familyL[fam]),
			MaxL:  floats.Max(familyL[fam]),
			Count: len(hs),
		}
	}

	return cov
}

// CriticalBuckets returns the buckets whose density falls below half the
// mean density of non-empty buckets, ordered worst-first (ascending density,
// then ascending hue). Empty buckets count with density zero, so spectral
// holes always surface. A perfectly even distribution yields no critical
// buckets.
func (a *Analyzer) CriticalBuckets(cov Coverage) []Bucket {
	if len(cov.Buckets) == 0 {
		return nil
	}

	total := 0
	for _, b := range cov.Buckets {
		total += b.Density
	}
	threshold := 0.5 * float64(total) / float64(len(cov.Buckets))

	var critical []Bucket
	for hue := 0.0; hue < 360; hue += BucketWidth {
		b, ok := cov.Buckets[hue]
		if !ok {
			b = Bucket{Hue: hue}
		}
		if float64(b.Density) < threshold {
			critical = append(critical, b)
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		if critical[i].Density != critical[j].Density {
			return critical[i].Density < critical[j].Density
		}
		return critical[i].Hue < critical[j].Hue
	})
	return critical
}
