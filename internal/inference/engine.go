// Package inference diagnoses the structural shape of raw deserialized
// color-dataset input. A fixed battery of independent detectors each
// proposes at most one StructureCandidate with a confidence heuristic; the
// engine ranks them and the caller decides how to extract records from the
// winning interpretation.
package inference

import (
	"context"
	"sort"

	"chromacull/domain/curation"

	"golang.org/x/sync/errgroup"
)

// Engine runs the detector battery in its fixed order.
type Engine struct {
	detectors []ShapeDetector
}

// NewEngine creates an engine with the standard battery. Battery order is
// the tie-break order for equal-confidence candidates, so it is fixed.
func NewEngine() *Engine {
	return &Engine{
		detectors: []ShapeDetector{
			&PaletteRecordDetector{},
			&ObjectMapDetector{},
			&HexPairsDetector{},
			&ObjectEntriesDetector{},
			&ObjectArrayDetector{},
			&CategoriesDetector{},
		},
	}
}

// Infer runs every detector against the raw value and returns the produced
// candidates sorted by descending confidence. Detectors run concurrently but
// results are collected by battery index before ranking, so the output is
// deterministic: ties keep battery order via the stable sort. Input that is
// neither an object nor an array, and input no detector recognizes, yields
// the single unknown candidate with confidence 0, never an empty list.
func (e *Engine) Infer(ctx context.Context, raw interface{}) []curation.StructureCandidate {
	results := make([]*curation.StructureCandidate, len(e.detectors))

	switch raw.(type) {
	case map[string]interface{}, []interface{}:
		g, _ := errgroup.WithContext(ctx)
		for i, det := range e.detectors {
			i, det := i, det
			g.Go(func() error {
				if cand, ok := det.Detect(raw); ok {
					results[i] = &cand
				}
				return nil
			})
		}
		// Detectors are pure and never fail; Wait only synchronizes.
		_ = g.Wait()
	}

	candidates := make([]curation.StructureCandidate, 0, len(e.detectors))
	for _, c := range results {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	if len(candidates) == 0 {
		return []curation.StructureCandidate{{
			Type:       curation.StructureUnknown,
			Confidence: 0,
			Schema:     "unrecognized",
		}}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	return candidates
}

// Detectors lists the battery's detector names in evaluation order.
func (e *Engine) Detectors() []string {
	names := make([]string, len(e.detectors))
	for i, d := range e.detectors {
		names[i] = d.Name()
	}
	return names
}
