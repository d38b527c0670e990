package dedupe

import (
	"strings"
	"testing"

	"chromacull/domain/color"
	"chromacull/internal/colormath"
	"chromacull/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSemantics returns canned scores by name and extracts the first
// lower-cased word as the kernel.
type stubSemantics struct {
	scores map[string]float64
}

func (s stubSemantics) ScoreSemanticMatch(rec color.Record) float64 {
	return s.scores[rec.Name]
}

func (s stubSemantics) ExtractSemantics(name string) ports.Semantics {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ports.Semantics{}
	}
	return ports.Semantics{Kernels: fields[:1]}
}

func newDedup(scores map[string]float64) *Deduplicator {
	return NewDeduplicator(stubSemantics{scores: scores})
}

func TestDeduplicateNoDuplicatesPassesThrough(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red"),
		colormath.NewRecord("00ff00", "Lime"),
		colormath.NewRecord("0000ff", "Blue"),
	}

	result := newDedup(nil).Deduplicate(colors, nil)
	assert.Equal(t, colors, result.Colors)
	assert.Empty(t, result.Groups)
	assert.Equal(t, 3, result.Stats.InputCount)
	assert.Equal(t, 3, result.Stats.OutputCount)
}

func TestDeduplicateExactDuplicateCollapses(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("#ff0000", "Red"),
		colormath.NewRecord("#ff0000", "Red"),
	}

	result := newDedup(nil).Deduplicate(colors, nil)
	require.Len(t, result.Colors, 1)
	require.Len(t, result.Groups, 1)

	g := result.Groups[0]
	assert.Equal(t, []string{"Red", "Red"}, g.Names)
	assert.Equal(t, "Red", g.Selected)
	assert.NotEmpty(t, g.ID)
}

func TestDeduplicateHexGroupWinnerSelection(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red"),
		colormath.NewRecord("ff0000", "Crimson"),
	}

	// With zero semantic scores the length heuristic dominates: Crimson
	// (len 7, term 0.7) beats Red (len 3, term 0.3) despite Red's higher
	// ordinal bonus (0.5 vs 0.25).
	result := newDedup(nil).Deduplicate(colors, nil)
	require.Len(t, result.Colors, 1)
	assert.Equal(t, "Crimson", result.Colors[0].Name)
	assert.Equal(t, "Crimson", result.Groups[0].Selected)
}

func TestDeduplicatePriorityBonusWins(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red"),
		colormath.NewRecord("ff0000", "Crimson"),
	}
	priority := []color.Record{colormath.NewRecord("FF0000", "red")}

	// The flat +60 bonus overrides every other term; matching is
	// case-insensitive on both hex and name.
	result := newDedup(nil).Deduplicate(colors, priority)
	require.Len(t, result.Colors, 1)
	assert.Equal(t, "Red", result.Colors[0].Name)
	assert.Contains(t, result.Groups[0].Reason, "priority-dataset")
}

func TestDeduplicateSemanticReasonTag(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red"),
		colormath.NewRecord("ff0000", "Crimson"),
	}

	result := newDedup(map[string]float64{"Crimson": 80}).Deduplicate(colors, nil)
	assert.Equal(t, "Crimson", result.Groups[0].Selected)
	assert.Contains(t, result.Groups[0].Reason, "semantic-score-above-50")
}

func TestDeduplicateLengthHeuristicCountsRunes(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("0000ff", "Ink"),
		colormath.NewRecord("0000ff", "Ультрамарин"),
	}

	// The multibyte name is 11 runes, right at the 10-character sweet spot
	// (term 0.9 plus ordinal 0.25 beats Ink's 0.3 plus 0.5). Counting bytes
	// instead would zero its length term and flip the winner.
	result := newDedup(nil).Deduplicate(colors, nil)
	require.Len(t, result.Colors, 1)
	assert.Equal(t, "Ультрамарин", result.Colors[0].Name)
}

func TestDeduplicateGrayGreyCoalescing(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("808080", "Gray"),
		colormath.NewRecord("808080", "Grey"),
	}

	result := newDedup(nil).Deduplicate(colors, nil)
	require.Len(t, result.Groups, 1)
	assert.Contains(t, result.Groups[0].Reason, "css-standard")
}

func TestDeduplicateNamePhase(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Scarlet"),
		colormath.NewRecord("ee0000", "Scarlet"),
	}

	result := newDedup(nil).Deduplicate(colors, nil)
	require.Len(t, result.Colors, 1)
	require.Len(t, result.Groups, 1)

	g := result.Groups[0]
	assert.Equal(t, "NAME", string(g.Kind))
	assert.ElementsMatch(t, []string{"ff0000", "ee0000"}, g.Hexes)
	assert.Equal(t, 0, result.Stats.HexGroups)
	assert.Equal(t, 1, result.Stats.NameGroups)
}

func TestDeduplicateUnnamedNeverCollapsedByName(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", ""),
		colormath.NewRecord("ee0000", ""),
	}

	result := newDedup(nil).Deduplicate(colors, nil)
	assert.Len(t, result.Colors, 2)
	assert.Empty(t, result.Groups)
}

func TestDeduplicateIsDeterministic(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red"),
		colormath.NewRecord("ff0000", "Rouge"),
		colormath.NewRecord("00ff00", "Lime"),
		colormath.NewRecord("00ff00", "Green"),
	}

	d := newDedup(nil)
	first := d.Deduplicate(colors, nil)
	for i := 0; i < 10; i++ {
		again := d.Deduplicate(colors, nil)
		assert.Equal(t, first.Colors, again.Colors)
		assert.Equal(t, first.Stats, again.Stats)
	}
}

func TestGenerateReport(t *testing.T) {
	colors := []color.Record{
		colormath.NewRecord("ff0000", "Red Delight"),
		colormath.NewRecord("ff0000", "Crimson Tide"),
		colormath.NewRecord("0000ff", "Blue Steel"),
		colormath.NewRecord("808080", ""),
	}

	report := newDedup(nil).GenerateReport(colors, nil)
	assert.Contains(t, report, "# Deduplication Report")
	assert.Contains(t, report, "## Duplicate Groups")
	assert.Contains(t, report, "## Temperature Breakdown")
	assert.Contains(t, report, "- warm: ")
	assert.Contains(t, report, "## Semantic Kernels")
	assert.Contains(t, report, "- unclassified: 1")
}
