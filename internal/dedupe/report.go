package dedupe

import (
	"fmt"
	"sort"
	"strings"

	"chromacull/domain/color"
)

// temperature buckets a color as warm, cool, or neutral. Achromatic colors
// are neutral regardless of hue.
func temperature(c color.Record) string {
	if c.HSL.S < 10 {
		return "neutral"
	}
	if c.HSL.H < 105 || c.HSL.H >= 315 {
		return "warm"
	}
	return "cool"
}

// GenerateReport re-runs deduplication and renders a markdown report with
// the group listing plus aggregate analysis: a temperature breakdown of the
// surviving set and the distribution of semantic kernels across names. Names
// with no extractable kernel count as unclassified.
func (d *Deduplicator) GenerateReport(colors, priority []color.Record) string {
	result := d.Deduplicate(colors, priority)

	var b strings.Builder
	b.WriteString("# Deduplication Report\n\n")
	fmt.Fprintf(&b, "- Input colors: %d\n", result.Stats.InputCount)
	fmt.Fprintf(&b, "- Output colors: %d\n", result.Stats.OutputCount)
	fmt.Fprintf(&b, "- Hex groups collapsed: %d\n", result.Stats.HexGroups)
	fmt.Fprintf(&b, "- Name groups collapsed: %d\n\n", result.Stats.NameGroups)

	b.WriteString("## Duplicate Groups\n\n")
	if len(result.Groups) == 0 {
		b.WriteString("No duplicates found.\n\n")
	}
	for _, g := range result.Groups {
		fmt.Fprintf(&b, "- **%s** [%s] %s -> selected %q (%s)\n",
			g.ID, g.Kind, strings.Join(g.Names, " / "), g.Selected, g.Reason)
	}
	if len(result.Groups) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Temperature Breakdown\n\n")
	temps := map[string]int{}
	for _, c := range result.Colors {
		temps[temperature(c)]++
	}
	for _, t := range []string{"warm", "cool", "neutral"} {
		fmt.Fprintf(&b, "- %s: %d\n", t, temps[t])
	}
	b.WriteString("\n")

	b.WriteString("## Semantic Kernels\n\n")
	kernels := map[string]int{}
	for _, c := range result.Colors {
		kernel := "unclassified"
		if sem := d.semantics.ExtractSemantics(c.Name); len(sem.Kernels) > 0 {
			kernel = sem.Kernels[0]
		}
		kernels[kernel]++
	}

	names := make([]string, 0, len(kernels))
	for k := range kernels {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if kernels[names[i]] != kernels[names[j]] {
			return kernels[names[i]] > kernels[names[j]]
		}
		return names[i] < names[j]
	})
	for _, k := range names {
		fmt.Fprintf(&b, "- %s: %d\n", k, kernels[k])
	}

	return b.String()
}
