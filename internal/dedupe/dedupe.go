// Package dedupe collapses semantic duplicates out of a color dataset in
// two phases: first by color value (hex), then by name. Multi-member groups
// pick a winner through a weighted multi-factor score; every collapse is
// recorded as a DuplicateGroup for reporting.
package dedupe

import (
	"fmt"
	"strings"

	"chromacull/domain/color"
	"chromacull/domain/curation"
	"chromacull/internal/textdist"
	"chromacull/ports"

	"github.com/google/uuid"
)

// Result carries the surviving records plus the audit trail of collapses.
type Result struct {
	Colors []color.Record
	Groups []curation.DuplicateGroup
	Stats  curation.DedupeStats
}

// Deduplicator removes duplicates using an external name-semantics oracle
// for scoring. Construct with NewDeduplicator.
type Deduplicator struct {
	semantics ports.NameSemanticsPort
}

func NewDeduplicator(semantics ports.NameSemanticsPort) *Deduplicator {
	return &Deduplicator{semantics: semantics}
}

// Deduplicate collapses duplicates in two phases. Phase 1 groups by
// lower-cased hex; phase 2 groups the survivors by lower-cased name, leaving
// unnamed records untouched. Input order is preserved for survivors, so the
// pass is deterministic. priority lists externally blessed (hex, name) pairs
// whose members receive a flat selection bonus.
//
// Cost is O(n·g) where g is duplicate-group size: the pairwise edit-distance
// term only runs inside multi-member groups.
func (d *Deduplicator) Deduplicate(colors, priority []color.Record) Result {
	prioritySet := buildPrioritySet(priority)

	phase1, hexGroups := d.collapse(colors, curation.GroupByHex, prioritySet,
		func(r color.Record) string { return strings.ToLower(r.Hex) })

	phase2, nameGroups := d.collapse(phase1, curation.GroupByName, prioritySet,
		func(r color.Record) string {
			if r.Unnamed() {
				return ""
			}
			return strings.ToLower(r.Name)
		})

	groups := append(hexGroups, nameGroups...)
	if groups == nil {
		groups = []curation.DuplicateGroup{}
	}

	return Result{
		Colors: phase2,
		Groups: groups,
		Stats: curation.DedupeStats{
			InputCount:  len(colors),
			OutputCount: len(phase2),
			HexGroups:   len(hexGroups),
			NameGroups:  len(nameGroups),
		},
	}
}

// collapse is one grouping pass. An empty key means "never group this
// record": it passes through untouched.
func (d *Deduplicator) collapse(colors []color.Record, kind curation.GroupKind, priority map[string]bool, keyOf func(color.Record) string) ([]color.Record, []curation.DuplicateGroup) {
	members := make(map[string][]color.Record)
	for _, c := range colors {
		if key := keyOf(c); key != "" {
			members[key] = append(members[key], c)
		}
	}

	var out []color.Record
	var groups []curation.DuplicateGroup
	emitted := make(map[string]bool)

	for _, c := range colors {
		key := keyOf(c)
		if key == "" {
			out = append(out, c)
			continue
		}
		if emitted[key] {
			continue
		}
		emitted[key] = true

		group := members[key]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}

		winnerIdx, bonus := d.selectBestName(group, priority)
		winner := group[winnerIdx]
		out = append(out, winner)
		groups = append(groups, d.newGroup(kind, group, winner, bonus))
	}

	return out, groups
}

// selectionBonus records which reason tags the winner earned during scoring.
type selectionBonus struct {
	priority bool
	semantic float64
}

// selectBestName scores every group member and returns the index of the
// strict first maximum. The weighted terms are evaluated in a fixed order so
// the result is reproducible for identical input.
func (d *Deduplicator) selectBestName(group []color.Record, priority map[string]bool) (int, selectionBonus) {
	bestIdx := 0
	bestScore := -1.0
	var bestBonus selectionBonus

	n := len(group)
	for i, c := range group {
		var bonus selectionBonus
		score := 0.0

		if priority[priorityKey(c.Hex, c.Name)] {
			score += 60
			bonus.priority = true
		}

		bonus.semantic = d.semantics.ScoreSemanticMatch(c)
		score += bonus.semantic * 0.3

		minDist := -1
		for j, other := range group {
			if j == i {
				continue
			}
			dist := textdist.Distance(c.Name, other.Name)
			if minDist < 0 || dist < minDist {
				minDist = dist
			}
		}
		if minDist >= 0 {
			u := float64(minDist * 10)
			if u > 100 {
				u = 100
			}
			score += u * 0.15
		}

		lengthTerm := 10 - abs(len([]rune(c.Name))-10)
		if lengthTerm > 0 {
			score += float64(lengthTerm) * 0.1
		}

		score += float64((n-i)*5) * 0.05

		if score > bestScore {
			bestScore = score
			bestIdx = i
			bestBonus = bonus
		}
	}

	return bestIdx, bestBonus
}

func (d *Deduplicator) newGroup(kind curation.GroupKind, group []color.Record, winner color.Record, bonus selectionBonus) curation.DuplicateGroup {
	hexSeen := make(map[string]bool)
	var hexes []string
	names := make([]string, 0, len(group))
	for _, c := range group {
		h := strings.ToLower(c.Hex)
		if !hexSeen[h] {
			hexSeen[h] = true
			hexes = append(hexes, h)
		}
		names = append(names, c.Name)
	}

	return curation.DuplicateGroup{
		ID:       uuid.NewString(),
		Kind:     kind,
		Hexes:    hexes,
		Names:    names,
		Selected: winner.Name,
		Reason:   buildReason(names, bonus),
	}
}

// buildReason concatenates the human-readable tags that applied to the
// winner. Purely informational: it never feeds back into selection.
func buildReason(names []string, bonus selectionBonus) string {
	var tags []string
	if bonus.priority {
		tags = append(tags, "priority-dataset")
	}
	if hasGrayGreyPair(names) {
		tags = append(tags, "css-standard")
	}
	if bonus.semantic > 50 {
		tags = append(tags, "semantic-score-above-50")
	}
	if len(tags) == 0 {
		return "highest weighted score"
	}
	return strings.Join(tags, ", ")
}

// hasGrayGreyPair reports whether the group mixes both spellings, the
// CSS-standard coalescing case.
func hasGrayGreyPair(names []string) bool {
	gray, grey := false, false
	for _, n := range names {
		low := strings.ToLower(n)
		if strings.Contains(low, "gray") {
			gray = true
		}
		if strings.Contains(low, "grey") {
			grey = true
		}
	}
	return gray && grey
}

func buildPrioritySet(priority []color.Record) map[string]bool {
	set := make(map[string]bool, len(priority))
	for _, p := range priority {
		set[priorityKey(p.Hex, p.Name)] = true
	}
	return set
}

func priorityKey(hex, name string) string {
	return fmt.Sprintf("%s|%s", strings.ToLower(hex), strings.ToLower(name))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
