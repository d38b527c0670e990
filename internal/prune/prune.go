// Package prune reduces a scored color dataset to a target size while
// protecting family diversity and hue-spectrum coverage. Selection runs in
// phases: per-family representation, global quality ranking, spectral gap
// backfill, and a family-floor check that reports shortfall instead of
// failing.
package prune

import (
	"math"
	"sort"

	"chromacull/domain/color"
	"chromacull/domain/curation"
	"chromacull/internal"
	"chromacull/internal/quality"
	"chromacull/internal/spectrum"

	"github.com/montanaflynn/stats"
)

// Options tunes a pruning run. PreserveExtremes records caller intent only;
// the selection phases do not enforce it.
type Options struct {
	MinFamilies      int
	MinCoverage      float64
	PreserveExtremes bool
}

// DefaultOptions derives the standard options from the number of distinct
// families in the input.
func DefaultOptions(distinctFamilies int) Options {
	minFamilies := int(math.Ceil(0.7 * float64(distinctFamilies)))
	if minFamilies < 20 {
		minFamilies = 20
	}
	return Options{
		MinFamilies:      minFamilies,
		MinCoverage:      0.85,
		PreserveExtremes: true,
	}
}

// Result is the pruned dataset plus aggregate stats.
type Result struct {
	Data  []color.Record
	Stats curation.PruneStats
}

// Pruner orchestrates the spectrum analyzer and quality scorer.
type Pruner struct {
	analyzer *spectrum.Analyzer
	scorer   *quality.Scorer
}

func NewPruner() *Pruner {
	return &Pruner{
		analyzer: spectrum.NewAnalyzer(),
		scorer:   quality.NewScorer(),
	}
}

type scoredColor struct {
	idx     int
	rec     color.Record
	metrics curation.QualityMetrics
}

// Prune selects target records from colors. The pass never fails: an
// impossible target or an unreachable family floor produces a best-effort
// result with a warning in the stats. Output is deterministic for identical
// input.
//
// Neighbor search for uniqueness scoring is bounded by hue bucketing (own
// bucket ±2, a 30° window either side at worst), so scoring is O(n·b) with
// b the occupancy of that window rather than O(n²) over the whole set.
func (p *Pruner) Prune(colors []color.Record, target int, opts Options, logger *internal.Logger) Result {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelError)
	}

	pruneStats := curation.PruneStats{InputCount: len(colors)}
	if len(colors) == 0 {
		return Result{Data: []color.Record{}, Stats: pruneStats}
	}
	if target >= len(colors) {
		if target > len(colors) {
			pruneStats.Warnings = append(pruneStats.Warnings, "target exceeds available colors, keeping all")
		}
		pruneStats.KeptCount = len(colors)
		pruneStats.FamiliesKept = countFamilies(colors)
		return Result{Data: append([]color.Record(nil), colors...), Stats: pruneStats}
	}
	if target <= 0 {
		pruneStats.Warnings = append(pruneStats.Warnings, "non-positive target, keeping all")
		pruneStats.KeptCount = len(colors)
		pruneStats.FamiliesKept = countFamilies(colors)
		return Result{Data: append([]color.Record(nil), colors...), Stats: pruneStats}
	}

	scored := p.scoreAll(colors)
	logger.Debug("scored %d colors for pruning", len(scored))

	kept := p.phaseFamilyRepresentation(scored, target)
	logger.Debug("family representation phase kept %d candidates", len(kept))

	sortByScore(kept)
	if len(kept) > target {
		kept = kept[:target]
	} else if len(kept) < target {
		// Skewed family sizes can leave the per-family superset short of
		// the target; top up from the best-scoring excluded colors so the
		// result always has exactly target records.
		kept = topUpToTarget(scored, kept, target)
	}

	kept, fills := p.phaseGapBackfill(scored, kept, target)
	pruneStats.GapFills = fills
	logger.Debug("gap backfill inserted %d colors", fills)

	keptData := make([]color.Record, len(kept))
	keptIdx := make(map[int]bool, len(kept))
	var keptScores []float64
	for i, s := range kept {
		keptData[i] = s.rec
		keptIdx[s.idx] = true
		keptScores = append(keptScores, float64(s.metrics.OverallScore))
	}

	var removedScores []float64
	for _, s := range scored {
		if !keptIdx[s.idx] {
			removedScores = append(removedScores, float64(s.metrics.OverallScore))
		}
	}

	pruneStats.KeptCount = len(keptData)
	pruneStats.RemovedCount = len(colors) - len(keptData)
	pruneStats.MeanKeptScore = meanOf(keptScores)
	pruneStats.MeanRemovedScore = meanOf(removedScores)
	pruneStats.FamiliesKept = countFamilies(keptData)

	if pruneStats.FamiliesKept < opts.MinFamilies {
		logger.Warn("pruning kept %d families, below floor %d", pruneStats.FamiliesKept, opts.MinFamilies)
		pruneStats.Warnings = append(pruneStats.Warnings, "family floor not met")
	}

	return Result{Data: keptData, Stats: pruneStats}
}

// scoreAll computes metrics for every color, using hue buckets to bound the
// neighbor scan.
func (p *Pruner) scoreAll(colors []color.Record) []scoredColor {
	cov := p.analyzer.AnalyzeCoverage(colors)

	byBucket := make(map[float64][]int)
	byFamily := make(map[color.FamilyTag][]color.Record)
	for i, c := range colors {
		b := spectrum.BucketFor(c.HSL.H)
		byBucket[b] = append(byBucket[b], i)
		byFamily[c.Family] = append(byFamily[c.Family], c)
	}

	scored := make([]scoredColor, len(colors))
	for i, c := range colors {
		var nearby []color.Record
		base := spectrum.BucketFor(c.HSL.H)
		for off := -2.0; off <= 2; off++ {
			b := math.Mod(base+off*spectrum.BucketWidth+360, 360)
			for _, j := range byBucket[b] {
				if j != i {
					nearby = append(nearby, colors[j])
				}
			}
		}

		scored[i] = scoredColor{
			idx:     i,
			rec:     c,
			metrics: p.scorer.Score(c, nearby, byFamily[c.Family], cov),
		}
	}
	return scored
}

// phaseFamilyRepresentation takes the top ceil(target/familyCount*1.2) of
// each family. The 1.2 overshoot leaves slack for the global ranking phase.
func (p *Pruner) phaseFamilyRepresentation(scored []scoredColor, target int) []scoredColor {
	byFamily := make(map[color.FamilyTag][]scoredColor)
	for _, s := range scored {
		byFamily[s.rec.Family] = append(byFamily[s.rec.Family], s)
	}

	families := make([]color.FamilyTag, 0, len(byFamily))
	for fam := range byFamily {
		families = append(families, fam)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	perFamily := int(math.Ceil(float64(target) / float64(len(families)) * 1.2))
	if perFamily < 1 {
		perFamily = 1
	}

	var kept []scoredColor
	for _, fam := range families {
		members := byFamily[fam]
		sortByScore(members)
		if len(members) > perFamily {
			members = members[:perFamily]
		}
		kept = append(kept, members...)
	}
	return kept
}

// phaseGapBackfill swaps the best-scoring excluded color into each
// under-dense hue bucket, worst gap first, re-truncating after every
// insertion so a later fill can evict an earlier one when scores are close.
func (p *Pruner) phaseGapBackfill(scored, kept []scoredColor, target int) ([]scoredColor, int) {
	maxFills := int(math.Ceil(float64(target) * 0.05))
	fills := 0

	cov := p.analyzer.AnalyzeCoverage(records(kept))
	critical := p.analyzer.CriticalBuckets(cov)

	for _, bucket := range critical {
		if fills >= maxFills {
			break
		}

		keptIdx := make(map[int]bool, len(kept))
		for _, s := range kept {
			keptIdx[s.idx] = true
		}

		best := -1
		for i, s := range scored {
			if keptIdx[s.idx] {
				continue
			}
			if spectrum.BucketFor(s.rec.HSL.H) != bucket.Hue {
				continue
			}
			if best < 0 || s.metrics.OverallScore > scored[best].metrics.OverallScore {
				best = i
			}
		}
		if best < 0 {
			continue
		}

		kept = append(kept, scored[best])
		sortByScore(kept)
		if len(kept) > target {
			kept = kept[:target]
		}
		fills++
	}

	return kept, fills
}

// topUpToTarget fills the kept set back up to target with the highest-
// scoring colors the family phase excluded.
func topUpToTarget(scored, kept []scoredColor, target int) []scoredColor {
	keptIdx := make(map[int]bool, len(kept))
	for _, s := range kept {
		keptIdx[s.idx] = true
	}

	var excluded []scoredColor
	for _, s := range scored {
		if !keptIdx[s.idx] {
			excluded = append(excluded, s)
		}
	}
	sortByScore(excluded)

	missing := target - len(kept)
	if missing > len(excluded) {
		missing = len(excluded)
	}
	kept = append(kept, excluded[:missing]...)
	sortByScore(kept)
	return kept
}

func sortByScore(s []scoredColor) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].metrics.OverallScore != s[j].metrics.OverallScore {
			return s[i].metrics.OverallScore > s[j].metrics.OverallScore
		}
		return s[i].idx < s[j].idx
	})
}

func records(s []scoredColor) []color.Record {
	out := make([]color.Record, len(s))
	for i, c := range s {
		out[i] = c.rec
	}
	return out
}

func countFamilies(colors []color.Record) int {
	seen := make(map[color.FamilyTag]bool)
	for _, c := range colors {
		seen[c.Family] = true
	}
	return len(seen)
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, _ := stats.Mean(values)
	return m
}
