package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsSeeded(t *testing.T) {
	cfg := DefaultPaletteGeneratorConfig()

	first := NewPaletteGenerator(cfg).Generate()
	second := NewPaletteGenerator(cfg).Generate()
	assert.Equal(t, first, second)

	cfg.Seed = 7
	different := NewPaletteGenerator(cfg).Generate()
	assert.NotEqual(t, first, different)
}

func TestGenerateCountAndDerivedFields(t *testing.T) {
	cfg := DefaultPaletteGeneratorConfig()
	cfg.ColorCount = 50

	records := NewPaletteGenerator(cfg).Generate()
	require.Len(t, records, 50)
	for _, r := range records {
		assert.Len(t, r.Hex, 6)
		assert.NotEmpty(t, r.Family)
	}
}

func TestGenerateIncludesDuplicatesAndUnnamed(t *testing.T) {
	cfg := PaletteGeneratorConfig{ColorCount: 500, DuplicateRate: 0.2, UnnamedRate: 0.1, Seed: 1}
	records := NewPaletteGenerator(cfg).Generate()

	seen := map[string]int{}
	unnamed := 0
	for _, r := range records {
		seen[r.Hex]++
		if r.Unnamed() {
			unnamed++
		}
	}

	duplicated := 0
	for _, n := range seen {
		if n > 1 {
			duplicated++
		}
	}
	assert.Positive(t, duplicated)
	assert.Positive(t, unnamed)
}

func TestRawShapesRoundToSameSize(t *testing.T) {
	cfg := DefaultPaletteGeneratorConfig()
	cfg.ColorCount = 20
	cfg.DuplicateRate = 0
	records := NewPaletteGenerator(cfg).Generate()

	assert.Len(t, RawPaletteRecord(records), 20)
	assert.Len(t, RawHexPairs(records), 20)
	assert.Len(t, RawObjectArray(records), 20)

	cats := RawCategories(records)
	warm := cats["warm"].([]interface{})
	cool := cats["cool"].([]interface{})
	assert.Equal(t, 20, len(warm)+len(cool))
}
