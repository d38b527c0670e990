package ports

import (
	"chromacull/domain/color"
)

// Semantics is the result of analyzing a color name for semantic root
// tokens. Kernels are ordered as found in the name and may be empty.
type Semantics struct {
	Kernels []string `json:"kernels"`
}

// NameSemanticsPort scores how well a color's name matches its apparent hue
// family. The curation core treats the implementation as an opaque oracle so
// it can be tested with a deterministic stub.
type NameSemanticsPort interface {
	// ScoreSemanticMatch returns a score in [0,100].
	ScoreSemanticMatch(rec color.Record) float64

	// ExtractSemantics returns the semantic root tokens found in a name.
	ExtractSemantics(name string) Semantics
}
