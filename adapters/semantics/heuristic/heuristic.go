// Package heuristic implements the name-semantics port with a fixed kernel
// table: well-known color words mapped to their expected hue, plus an
// achromatic group. No external calls, fully deterministic, which keeps the
// curation pipeline reproducible and testable offline.
package heuristic

import (
	"strings"

	"chromacull/domain/color"
	"chromacull/internal/colormath"
	"chromacull/ports"
)

// kernelEntry pairs a semantic root with the hue it names. Achromatic
// kernels carry no hue and are judged on saturation instead.
type kernelEntry struct {
	kernel     string
	hue        float64
	achromatic bool
}

// kernelTable is ordered: substring fallback scans it top to bottom, so
// longer/more specific roots come before the generic ones they contain
// (e.g. turquoise before rose is irrelevant, but navy before blue keeps
// "navy blue" stable).
var kernelTable = []kernelEntry{
	{kernel: "crimson", hue: 350},
	{kernel: "scarlet", hue: 8},
	{kernel: "maroon", hue: 0},
	{kernel: "salmon", hue: 10},
	{kernel: "coral", hue: 16},
	{kernel: "red", hue: 0},
	{kernel: "rust", hue: 20},
	{kernel: "brown", hue: 25},
	{kernel: "chocolate", hue: 25},
	{kernel: "orange", hue: 30},
	{kernel: "peach", hue: 30},
	{kernel: "tan", hue: 35},
	{kernel: "beige", hue: 40},
	{kernel: "amber", hue: 45},
	{kernel: "gold", hue: 50},
	{kernel: "yellow", hue: 60},
	{kernel: "olive", hue: 80},
	{kernel: "lime", hue: 90},
	{kernel: "green", hue: 120},
	{kernel: "emerald", hue: 140},
	{kernel: "mint", hue: 150},
	{kernel: "turquoise", hue: 174},
	{kernel: "teal", hue: 180},
	{kernel: "cyan", hue: 190},
	{kernel: "aqua", hue: 190},
	{kernel: "sky", hue: 200},
	{kernel: "azure", hue: 210},
	{kernel: "navy", hue: 240},
	{kernel: "cobalt", hue: 215},
	{kernel: "blue", hue: 240},
	{kernel: "indigo", hue: 260},
	{kernel: "violet", hue: 270},
	{kernel: "purple", hue: 270},
	{kernel: "lavender", hue: 275},
	{kernel: "plum", hue: 290},
	{kernel: "magenta", hue: 300},
	{kernel: "fuchsia", hue: 300},
	{kernel: "pink", hue: 330},
	{kernel: "rose", hue: 340},
	{kernel: "black", achromatic: true},
	{kernel: "white", achromatic: true},
	{kernel: "gray", achromatic: true},
	{kernel: "grey", achromatic: true},
	{kernel: "silver", achromatic: true},
	{kernel: "charcoal", achromatic: true},
	{kernel: "ivory", achromatic: true},
	{kernel: "snow", achromatic: true},
}

var kernelByWord = func() map[string]kernelEntry {
	m := make(map[string]kernelEntry, len(kernelTable))
	for _, e := range kernelTable {
		m[e.kernel] = e
	}
	return m
}()

// Adapter is a stateless ports.NameSemanticsPort implementation.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

var _ ports.NameSemanticsPort = (*Adapter)(nil)

// ExtractSemantics returns the semantic roots found in a name, ordered as
// they appear. A token matches exactly first, then by substring against the
// table order, so "Greyish Blue" yields [grey, blue].
func (a *Adapter) ExtractSemantics(name string) ports.Semantics {
	var kernels []string
	seen := make(map[string]bool)

	for _, token := range tokenize(name) {
		entry, ok := kernelByWord[token]
		if !ok {
			for _, e := range kernelTable {
				if strings.Contains(token, e.kernel) {
					entry, ok = e, true
					break
				}
			}
		}
		if ok && !seen[entry.kernel] {
			seen[entry.kernel] = true
			kernels = append(kernels, entry.kernel)
		}
	}

	return ports.Semantics{Kernels: kernels}
}

// ScoreSemanticMatch rates how well a record's name agrees with its actual
// hue, in [0,100]. Names with no recognizable kernel score a neutral 50.
// The best-agreeing kernel wins, so compound names like "Blue Green" are
// judged by whichever root fits.
func (a *Adapter) ScoreSemanticMatch(rec color.Record) float64 {
	sem := a.ExtractSemantics(rec.Name)
	if len(sem.Kernels) == 0 {
		return 50
	}

	recIsAchromatic := rec.HSL.S < 10

	best := 0.0
	for _, k := range sem.Kernels {
		entry := kernelByWord[k]

		var score float64
		switch {
		case entry.achromatic && recIsAchromatic:
			score = 90
		case entry.achromatic != recIsAchromatic:
			score = 10
		default:
			d := colormath.HueDistance(rec.HSL.H, entry.hue)
			score = 100 * (1 - d/180)
		}
		if score > best {
			best = score
		}
	}
	return best
}

func tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}
