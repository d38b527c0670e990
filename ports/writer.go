package ports

import (
	"chromacull/domain/color"
)

// DatasetWriterPort persists a curated record list. The core guarantees the
// slice it hands off contains only validated, internally consistent records;
// everything about the on-disk format belongs to the adapter.
type DatasetWriterPort interface {
	Write(path string, records []color.Record) error
}

// ProgressFunc receives coarse-grained progress ticks (0–100) and a short
// textual message. Every stage must function correctly with a nil callback.
type ProgressFunc func(progress float64, message string)
