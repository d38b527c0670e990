package extract

import (
	"testing"

	"chromacull/domain/curation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsFromPaletteRecords(t *testing.T) {
	raw := map[string]interface{}{
		"b": map[string]interface{}{"name": "Teal", "hex": "008080"},
		"a": map[string]interface{}{"name": "Crimson", "hex": "#DC143C"},
		"c": "not an object",
	}

	recs := Records(curation.StructureCandidate{Type: curation.StructurePaletteRecord}, raw)
	require.Len(t, recs, 2)

	// Sorted key order keeps the output deterministic.
	assert.Equal(t, "dc143c", recs[0].Hex)
	assert.Equal(t, "Crimson", recs[0].Name)
	assert.Equal(t, "008080", recs[1].Hex)
	assert.Equal(t, "Teal", recs[1].Name)

	// Derived fields are populated.
	assert.NotZero(t, recs[0].HSL.S)
	assert.NotEmpty(t, recs[0].Family)
}

func TestRecordsFromHexPairs(t *testing.T) {
	raw := []interface{}{
		[]interface{}{"#ff0000", "Red"},
		[]interface{}{"Lime", "#00ff00"}, // reversed order still resolves
		[]interface{}{"nope", "also nope"},
	}

	recs := Records(curation.StructureCandidate{Type: curation.StructureHexPairs}, raw)
	require.Len(t, recs, 2)
	assert.Equal(t, "ff0000", recs[0].Hex)
	assert.Equal(t, "Red", recs[0].Name)
	assert.Equal(t, "00ff00", recs[1].Hex)
	assert.Equal(t, "Lime", recs[1].Name)
}

func TestRecordsFromObjectEntries(t *testing.T) {
	raw := map[string]interface{}{
		"#ff0000": "Red",
		"Green":   "#00ff00",
		"note":    "not a color",
	}

	recs := Records(curation.StructureCandidate{Type: curation.StructureObjectEntries}, raw)
	require.Len(t, recs, 2)

	byName := map[string]string{}
	for _, r := range recs {
		byName[r.Name] = r.Hex
	}
	assert.Equal(t, "ff0000", byName["Red"])
	assert.Equal(t, "00ff00", byName["Green"])
}

func TestRecordsFromObjectArray(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"hex": "#ffd700", "name": "Gold"},
		map[string]interface{}{"value": "4169e1", "name": "Royal Blue"},
		map[string]interface{}{"name": "No Hex"}, // skipped
		map[string]interface{}{"hex": "zzzzzz", "name": "Broken"},
	}

	recs := Records(curation.StructureCandidate{Type: curation.StructureObjectArray}, raw)
	require.Len(t, recs, 3)
	assert.Equal(t, "ffd700", recs[0].Hex)
	assert.Equal(t, "4169e1", recs[1].Hex)

	// Malformed hex degrades to the zero color instead of aborting.
	assert.Equal(t, "000000", recs[2].Hex)
	assert.Equal(t, "Broken", recs[2].Name)
}

func TestRecordsFromCategories(t *testing.T) {
	raw := map[string]interface{}{
		"meta": map[string]interface{}{"version": "2"},
		"warm": []interface{}{
			map[string]interface{}{"hex": "#ff4500", "name": "Orange Red"},
		},
		"cool": []interface{}{
			map[string]interface{}{"hex": "#4169e1", "name": "Royal Blue"},
		},
	}

	recs := Records(curation.StructureCandidate{Type: curation.StructureCategories}, raw)
	require.Len(t, recs, 2)

	// Category keys walk in sorted order: cool before warm.
	assert.Equal(t, "4169e1", recs[0].Hex)
	assert.Equal(t, "ff4500", recs[1].Hex)
}

func TestRecordsUnknownYieldsNothing(t *testing.T) {
	recs := Records(curation.StructureCandidate{Type: curation.StructureUnknown}, map[string]interface{}{"x": 1.0})
	assert.Empty(t, recs)
}
