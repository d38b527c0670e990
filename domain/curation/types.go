// Package curation holds the intermediate value types produced by the
// ingestion and curation stages: structure candidates from format inference,
// duplicate groups from deduplication, and quality metrics from scoring.
// Everything here is ephemeral: produced, consumed, and discarded within a
// single pipeline run.
package curation

// StructureType tags a hypothesized schema for an unlabeled dataset.
type StructureType string

const (
	StructurePaletteRecord StructureType = "palette-record"
	StructureObjectMap     StructureType = "json-object-map"
	StructureHexPairs      StructureType = "hex-string-pairs"
	StructureObjectEntries StructureType = "object-entries"
	StructureObjectArray   StructureType = "array-of-objects"
	StructureCategories    StructureType = "structured-categories"
	StructureUnknown       StructureType = "unknown"
)

// StructureCandidate is one detector's hypothesis about the shape of a raw
// deserialized value. Candidates are ranked by confidence and discarded once
// a winner is chosen; the inferencer never extracts records itself.
type StructureCandidate struct {
	Type       StructureType          `json:"type"`
	Confidence float64                `json:"confidence"`
	Schema     string                 `json:"schema"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// GroupKind says which phase of deduplication collapsed a group.
type GroupKind string

const (
	GroupByHex  GroupKind = "HEX"
	GroupByName GroupKind = "NAME"
)

// DuplicateGroup records one collapsed set of records: every hex and name
// observed in the group (names in insertion order), the winning name, and a
// human-readable rationale. Groups are never mutated after creation.
type DuplicateGroup struct {
	ID       string    `json:"id"`
	Kind     GroupKind `json:"kind"`
	Hexes    []string  `json:"hexes"`
	Names    []string  `json:"names"`
	Selected string    `json:"selected"`
	Reason   string    `json:"reason"`
}

// QualityMetrics scores a single color against its spectral and family
// context. All components are in [0,1]; OverallScore is the weighted blend
// rounded to an integer 0–100. Metrics are recomputed fresh for every
// pruning run and never persisted.
type QualityMetrics struct {
	Uniqueness             float64 `json:"uniqueness"`
	SaturationQuality      float64 `json:"saturation_quality"`
	LightnessQuality       float64 `json:"lightness_quality"`
	FamilyRepresentativity float64 `json:"family_representativity"`
	OverallScore           int     `json:"overall_score"`
}

// DedupeStats summarizes a deduplication pass.
type DedupeStats struct {
	InputCount  int `json:"input_count"`
	OutputCount int `json:"output_count"`
	HexGroups   int `json:"hex_groups"`
	NameGroups  int `json:"name_groups"`
}

// PruneStats summarizes a pruning pass. MeanKeptScore >= MeanRemovedScore is
// the net-positive quality property the pruner is validated against.
type PruneStats struct {
	InputCount       int      `json:"input_count"`
	KeptCount        int      `json:"kept_count"`
	RemovedCount     int      `json:"removed_count"`
	MeanKeptScore    float64  `json:"mean_kept_score"`
	MeanRemovedScore float64  `json:"mean_removed_score"`
	GapFills         int      `json:"gap_fills"`
	FamiliesKept     int      `json:"families_kept"`
	Warnings         []string `json:"warnings,omitempty"`
}
