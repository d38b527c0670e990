package inference

import (
	"fmt"
	"regexp"

	"chromacull/domain/curation"
)

// ShapeDetector is implemented by each structural hypothesis in the battery.
// A detector inspects the raw deserialized value and either proposes one
// candidate with a confidence heuristic or abstains. Detectors are pure and
// independent of one another; none of them extracts records.
type ShapeDetector interface {
	Name() string
	Description() string
	Detect(raw interface{}) (curation.StructureCandidate, bool)
}

var (
	hexLikePattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	fullHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

func isHexLike(v interface{}) bool {
	s, ok := v.(string)
	return ok && hexLikePattern.MatchString(s)
}

func isFullHex(v interface{}) bool {
	s, ok := v.(string)
	return ok && fullHexPattern.MatchString(s)
}

// isColorObject reports whether a value looks like one color entry: a map
// carrying a hex-like field, or a name plus any hex-ish key.
func isColorObject(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	if hex, exists := m["hex"]; exists && isHexLike(hex) {
		return true
	}
	if value, exists := m["value"]; exists && isHexLike(value) {
		return true
	}
	_, hasName := m["name"].(string)
	return hasName && len(m) > 1
}

// isPaletteValue checks the strict {name:string, hex:6-hex} record shape.
func isPaletteValue(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	_, hasName := m["name"].(string)
	hex, hasHex := m["hex"]
	return hasName && hasHex && isFullHex(hex)
}

// PaletteRecordDetector matches objects whose values are {name, hex}
// records, tolerating minor corruption: at least 80% of values must match,
// and the base confidence of 0.98 is scaled by the clean fraction.
type PaletteRecordDetector struct{}

func (d *PaletteRecordDetector) Name() string { return "palette-record" }

func (d *PaletteRecordDetector) Description() string {
	return "Object keyed by id with {name, hex} record values, tolerant of minor corruption"
}

func (d *PaletteRecordDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return curation.StructureCandidate{}, false
	}

	clean := 0
	for _, v := range m {
		if isPaletteValue(v) {
			clean++
		}
	}

	frac := float64(clean) / float64(len(m))
	if frac < 0.8 {
		return curation.StructureCandidate{}, false
	}

	return curation.StructureCandidate{
		Type:       curation.StructurePaletteRecord,
		Confidence: 0.98 * frac,
		Schema:     "map[key]{name: string, hex: 6-hex}",
		Metadata: map[string]interface{}{
			"entries": len(m),
			"clean":   clean,
		},
	}, true
}

// ObjectMapDetector is the strict variant of PaletteRecordDetector: every
// single value must match the record shape. Flat confidence 0.95.
type ObjectMapDetector struct{}

func (d *ObjectMapDetector) Name() string { return "json-object-map" }

func (d *ObjectMapDetector) Description() string {
	return "Object whose values are all {name, hex} records, no corruption allowed"
}

func (d *ObjectMapDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return curation.StructureCandidate{}, false
	}

	for _, v := range m {
		if !isPaletteValue(v) {
			return curation.StructureCandidate{}, false
		}
	}

	return curation.StructureCandidate{
		Type:       curation.StructureObjectMap,
		Confidence: 0.95,
		Schema:     "map[key]{name: string, hex: 6-hex}, fully clean",
		Metadata: map[string]interface{}{
			"entries": len(m),
		},
	}, true
}

// HexPairsDetector matches arrays of 2-element arrays where exactly one
// element of each pair is hex-like and the other is a string. Confidence
// starts at 0.8 and earns up to 0.2 more from the fraction of pairs carrying
// a full 6/8-digit hex rather than 3-digit shorthand.
type HexPairsDetector struct{}

func (d *HexPairsDetector) Name() string { return "hex-string-pairs" }

func (d *HexPairsDetector) Description() string {
	return "Array of [hex, name] or [name, hex] pairs"
}

func (d *HexPairsDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	arr, ok := raw.([]interface{})
	if !ok || len(arr) == 0 {
		return curation.StructureCandidate{}, false
	}

	fullHex := 0
	for _, elem := range arr {
		pair, ok := elem.([]interface{})
		if !ok || len(pair) != 2 {
			return curation.StructureCandidate{}, false
		}

		a, aIsStr := pair[0].(string)
		b, bIsStr := pair[1].(string)
		if !aIsStr || !bIsStr {
			return curation.StructureCandidate{}, false
		}

		aHex := hexLikePattern.MatchString(a)
		bHex := hexLikePattern.MatchString(b)
		if aHex == bHex {
			// Zero or two hex-like elements: not a hex/name pair.
			return curation.StructureCandidate{}, false
		}

		if isFullHex(pair[0]) || isFullHex(pair[1]) {
			fullHex++
		}
	}

	conf := 0.8 + 0.2*float64(fullHex)/float64(len(arr))
	return curation.StructureCandidate{
		Type:       curation.StructureHexPairs,
		Confidence: conf,
		Schema:     "[][2]string, one hex and one name per pair",
		Metadata: map[string]interface{}{
			"pairs":    len(arr),
			"full_hex": fullHex,
		},
	}, true
}

// ObjectEntriesDetector matches objects whose keys or values plausibly
// encode hex colors. Confidence is the fraction of entries satisfying the
// stricter {hex-key, string-value} or {string-key, hex-value} check.
type ObjectEntriesDetector struct{}

func (d *ObjectEntriesDetector) Name() string { return "object-entries" }

func (d *ObjectEntriesDetector) Description() string {
	return "Object mapping hex keys to names, or name keys to hex values"
}

func (d *ObjectEntriesDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return curation.StructureCandidate{}, false
	}

	plausible := 0
	strict := 0
	for k, v := range m {
		keyHex := hexLikePattern.MatchString(k)
		valStr, valIsStr := v.(string)
		valHex := valIsStr && hexLikePattern.MatchString(valStr)

		if keyHex || valHex {
			plausible++
		}
		if (keyHex && valIsStr) || (valHex && !keyHex) {
			strict++
		}
	}

	if plausible == 0 {
		return curation.StructureCandidate{}, false
	}

	return curation.StructureCandidate{
		Type:       curation.StructureObjectEntries,
		Confidence: float64(strict) / float64(len(m)),
		Schema:     "map[hex]name or map[name]hex",
		Metadata: map[string]interface{}{
			"entries": len(m),
			"strict":  strict,
		},
	}, true
}

// ObjectArrayDetector matches arrays of objects carrying hex or name fields.
// Confidence is additive: +0.4 when hex is present, +0.4 for name, +0.2 for
// family or hsl, capped at 1.0. A field counts as present when at least 80%
// of the elements carry it.
type ObjectArrayDetector struct{}

func (d *ObjectArrayDetector) Name() string { return "array-of-objects" }

func (d *ObjectArrayDetector) Description() string {
	return "Array of color objects with hex/name/family fields"
}

func (d *ObjectArrayDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	arr, ok := raw.([]interface{})
	if !ok || len(arr) == 0 {
		return curation.StructureCandidate{}, false
	}

	hexCount, nameCount, extraCount := 0, 0, 0
	for _, elem := range arr {
		m, ok := elem.(map[string]interface{})
		if !ok {
			return curation.StructureCandidate{}, false
		}
		if _, exists := m["hex"]; exists {
			hexCount++
		}
		if _, exists := m["name"]; exists {
			nameCount++
		}
		_, hasFamily := m["family"]
		_, hasHSL := m["hsl"]
		if hasFamily || hasHSL {
			extraCount++
		}
	}

	threshold := int(0.8 * float64(len(arr)))
	if threshold < 1 {
		threshold = 1
	}

	conf := 0.0
	if hexCount >= threshold {
		conf += 0.4
	}
	if nameCount >= threshold {
		conf += 0.4
	}
	if extraCount >= threshold {
		conf += 0.2
	}
	if conf == 0 {
		return curation.StructureCandidate{}, false
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return curation.StructureCandidate{
		Type:       curation.StructureObjectArray,
		Confidence: conf,
		Schema:     fmt.Sprintf("[]object, %d/%d hex, %d/%d name", hexCount, len(arr), nameCount, len(arr)),
		Metadata: map[string]interface{}{
			"elements":   len(arr),
			"with_hex":   hexCount,
			"with_name":  nameCount,
			"with_extra": extraCount,
		},
	}, true
}

// CategoriesDetector matches objects carrying a meta field plus one or more
// array-valued keys whose elements look like color objects. Confidence is
// 0.3 for the meta field plus 0.1 per qualifying array key, capped at 1.0.
type CategoriesDetector struct{}

func (d *CategoriesDetector) Name() string { return "structured-categories" }

func (d *CategoriesDetector) Description() string {
	return "Object with meta plus category arrays of color objects"
}

func (d *CategoriesDetector) Detect(raw interface{}) (curation.StructureCandidate, bool) {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return curation.StructureCandidate{}, false
	}

	_, hasMeta := m["meta"]

	qualifying := 0
	for k, v := range m {
		if k == "meta" {
			continue
		}
		arr, ok := v.([]interface{})
		if !ok || len(arr) == 0 {
			continue
		}
		allColors := true
		for _, elem := range arr {
			if !isColorObject(elem) {
				allColors = false
				break
			}
		}
		if allColors {
			qualifying++
		}
	}

	if qualifying == 0 {
		return curation.StructureCandidate{}, false
	}

	conf := 0.1 * float64(qualifying)
	if hasMeta {
		conf += 0.3
	}
	if conf > 1.0 {
		conf = 1.0
	}

	return curation.StructureCandidate{
		Type:       curation.StructureCategories,
		Confidence: conf,
		Schema:     "map{meta, category: []colorObject, ...}",
		Metadata: map[string]interface{}{
			"has_meta":   hasMeta,
			"categories": qualifying,
		},
	}, true
}
