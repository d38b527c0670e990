// Package testkit provides seeded synthetic color datasets for tests. The
// generator is deterministic for a given seed, so pipeline tests can assert
// exact outcomes without fixture files.
package testkit

import (
	"fmt"
	"math/rand"

	"chromacull/domain/color"
	"chromacull/internal/colormath"
)

// PaletteGeneratorConfig configures the synthetic palette generator
type PaletteGeneratorConfig struct {
	ColorCount    int     `json:"color_count"`
	DuplicateRate float64 `json:"duplicate_rate"`
	UnnamedRate   float64 `json:"unnamed_rate"`
	Seed          int64   `json:"seed"`
}

// DefaultPaletteGeneratorConfig returns a mid-size palette with a realistic
// amount of dirt: some exact duplicates and some unnamed entries.
func DefaultPaletteGeneratorConfig() PaletteGeneratorConfig {
	return PaletteGeneratorConfig{
		ColorCount:    200,
		DuplicateRate: 0.1,
		UnnamedRate:   0.05,
		Seed:          42,
	}
}

// PaletteGenerator produces synthetic color records and raw dataset shapes
type PaletteGenerator struct {
	config PaletteGeneratorConfig
	rng    *rand.Rand
}

func NewPaletteGenerator(config PaletteGeneratorConfig) *PaletteGenerator {
	return &PaletteGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var nameAdjectives = []string{
	"Deep", "Pale", "Dusty", "Vivid", "Soft", "Dark", "Light", "Muted",
	"Electric", "Warm", "Cool", "Faded", "Rich", "Smoky", "Bright",
}

var nameNouns = []string{
	"Red", "Orange", "Gold", "Yellow", "Lime", "Green", "Teal", "Cyan",
	"Sky", "Blue", "Navy", "Purple", "Violet", "Magenta", "Pink", "Rose",
	"Coral", "Peach", "Brown", "Gray",
}

// Generate produces the configured number of records. Duplicates repeat an
// earlier record verbatim; unnamed records keep their hex but lose the name.
func (g *PaletteGenerator) Generate() []color.Record {
	records := make([]color.Record, 0, g.config.ColorCount)

	for i := 0; i < g.config.ColorCount; i++ {
		if len(records) > 0 && g.rng.Float64() < g.config.DuplicateRate {
			records = append(records, records[g.rng.Intn(len(records))])
			continue
		}

		hex := fmt.Sprintf("%02x%02x%02x", g.rng.Intn(256), g.rng.Intn(256), g.rng.Intn(256))
		name := ""
		if g.rng.Float64() >= g.config.UnnamedRate {
			name = fmt.Sprintf("%s %s",
				nameAdjectives[g.rng.Intn(len(nameAdjectives))],
				nameNouns[g.rng.Intn(len(nameNouns))])
		}
		records = append(records, colormath.NewRecord(hex, name))
	}

	return records
}

// RawPaletteRecord renders records in the keyed {name, hex} object shape.
func RawPaletteRecord(records []color.Record) map[string]interface{} {
	raw := make(map[string]interface{}, len(records))
	for i, r := range records {
		raw[fmt.Sprintf("color-%04d", i)] = map[string]interface{}{
			"name": r.Name,
			"hex":  r.Hex,
		}
	}
	return raw
}

// RawHexPairs renders records as [hex, name] pair arrays.
func RawHexPairs(records []color.Record) []interface{} {
	raw := make([]interface{}, len(records))
	for i, r := range records {
		raw[i] = []interface{}{"#" + r.Hex, r.Name}
	}
	return raw
}

// RawObjectEntries renders records as a hex-to-name object.
func RawObjectEntries(records []color.Record) map[string]interface{} {
	raw := make(map[string]interface{}, len(records))
	for _, r := range records {
		raw["#"+r.Hex] = r.Name
	}
	return raw
}

// RawObjectArray renders records as an array of color objects.
func RawObjectArray(records []color.Record) []interface{} {
	raw := make([]interface{}, len(records))
	for i, r := range records {
		raw[i] = map[string]interface{}{
			"hex":    r.Hex,
			"name":   r.Name,
			"family": string(r.Family),
		}
	}
	return raw
}

// RawCategories renders records as a structured-categories object, split by
// warm/cool hue with a meta block.
func RawCategories(records []color.Record) map[string]interface{} {
	warm := []interface{}{}
	cool := []interface{}{}
	for _, r := range records {
		obj := map[string]interface{}{"hex": r.Hex, "name": r.Name}
		if r.HSL.H < 105 || r.HSL.H >= 315 {
			warm = append(warm, obj)
		} else {
			cool = append(cool, obj)
		}
	}
	return map[string]interface{}{
		"meta": map[string]interface{}{"version": "1", "count": len(records)},
		"warm": warm,
		"cool": cool,
	}
}
