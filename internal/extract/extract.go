// Package extract is the parsing glue between format inference and the
// curation stages: given the winning structure candidate and the raw value,
// it produces canonical color records, deriving every missing field through
// colormath. Extraction is total: entries with a malformed hex degrade to
// the zero color, entries with no usable hex at all are skipped, and a
// partially dirty dataset never aborts the batch.
package extract

import (
	"sort"

	"chromacull/domain/color"
	"chromacull/domain/curation"
	"chromacull/internal/colormath"
)

// Records extracts canonical records from raw input according to the chosen
// structural interpretation. Map-shaped input is walked in sorted key order
// so output is deterministic; array-shaped input keeps its element order.
// The returned slice is always freshly allocated.
func Records(cand curation.StructureCandidate, raw interface{}) []color.Record {
	switch cand.Type {
	case curation.StructurePaletteRecord, curation.StructureObjectMap:
		return fromPaletteRecords(raw)
	case curation.StructureHexPairs:
		return fromHexPairs(raw)
	case curation.StructureObjectEntries:
		return fromObjectEntries(raw)
	case curation.StructureObjectArray:
		return fromObjectArray(raw)
	case curation.StructureCategories:
		return fromCategories(raw)
	default:
		return nil
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fromPaletteRecords(raw interface{}) []color.Record {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	records := make([]color.Record, 0, len(m))
	for _, k := range sortedKeys(m) {
		entry, ok := m[k].(map[string]interface{})
		if !ok {
			continue
		}
		hex, hasHex := entry["hex"].(string)
		if !hasHex {
			continue
		}
		name, _ := entry["name"].(string)
		records = append(records, colormath.NewRecord(hex, name))
	}
	return records
}

func fromHexPairs(raw interface{}) []color.Record {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	records := make([]color.Record, 0, len(arr))
	for _, elem := range arr {
		pair, ok := elem.([]interface{})
		if !ok || len(pair) != 2 {
			continue
		}
		a, aOK := pair[0].(string)
		b, bOK := pair[1].(string)
		if !aOK || !bOK {
			continue
		}

		// The hex element is whichever side normalizes; when both do, the
		// first wins.
		if _, ok := colormath.NormalizeHex(a); ok {
			records = append(records, colormath.NewRecord(a, b))
		} else if _, ok := colormath.NormalizeHex(b); ok {
			records = append(records, colormath.NewRecord(b, a))
		}
	}
	return records
}

func fromObjectEntries(raw interface{}) []color.Record {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	records := make([]color.Record, 0, len(m))
	for _, k := range sortedKeys(m) {
		value, valIsStr := m[k].(string)

		if _, keyIsHex := colormath.NormalizeHex(k); keyIsHex {
			if valIsStr {
				records = append(records, colormath.NewRecord(k, value))
			}
			continue
		}
		if valIsStr {
			if _, valIsHex := colormath.NormalizeHex(value); valIsHex {
				records = append(records, colormath.NewRecord(value, k))
			}
		}
	}
	return records
}

func fromObjectArray(raw interface{}) []color.Record {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	records := make([]color.Record, 0, len(arr))
	for _, elem := range arr {
		m, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		rec, ok := fromColorObject(m)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func fromCategories(raw interface{}) []color.Record {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	var records []color.Record
	for _, k := range sortedKeys(m) {
		if k == "meta" {
			continue
		}
		arr, ok := m[k].([]interface{})
		if !ok {
			continue
		}
		for _, elem := range arr {
			obj, ok := elem.(map[string]interface{})
			if !ok {
				continue
			}
			if rec, ok := fromColorObject(obj); ok {
				records = append(records, rec)
			}
		}
	}
	if records == nil {
		records = []color.Record{}
	}
	return records
}

// fromColorObject pulls hex and name out of one color object. The hex field
// may be named hex or value; entries with neither are skipped.
func fromColorObject(m map[string]interface{}) (color.Record, bool) {
	hex, ok := m["hex"].(string)
	if !ok {
		hex, ok = m["value"].(string)
	}
	if !ok {
		return color.Record{}, false
	}
	name, _ := m["name"].(string)
	return colormath.NewRecord(hex, name), true
}
