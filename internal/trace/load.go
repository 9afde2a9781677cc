package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads one JSON document from path and resolves it into a Trace.
func Load(path string) (Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tr, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

// Decode resolves a raw trace document into an ordered state sequence.
// Three shapes are accepted, in this tolerance order:
//
//   - an object with a "states" array, used directly;
//   - an object with a "triangles" array, each record reduced to the
//     centroid of its first three vertex pairs;
//   - a bare array, treated as states.
//
// Anything else fails with a FormatError. Loading is all or nothing: a
// single invalid record rejects the document.
func Decode(data []byte) (Trace, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: "not valid JSON: " + err.Error()}
	}
	switch doc := raw.(type) {
	case map[string]any:
		if v, ok := doc["states"]; ok {
			records, ok := v.([]any)
			if !ok {
				return nil, &FormatError{Reason: `"states" is not an array`}
			}
			return fromStates(records)
		}
		if v, ok := doc["triangles"]; ok {
			records, ok := v.([]any)
			if !ok {
				return nil, &FormatError{Reason: `"triangles" is not an array`}
			}
			return fromTriangles(records)
		}
		return nil, &FormatError{Reason: `object has neither "states" nor "triangles"`}
	case []any:
		return fromStates(doc)
	default:
		return nil, &FormatError{Reason: "document is neither an object nor an array"}
	}
}

func fromStates(records []any) (Trace, error) {
	states := make(Trace, 0, len(records))
	for i, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			return nil, &ValidationError{Kind: "state", Record: i, Reason: "not an object"}
		}
		coords, err := coordsOf(m, "state", i, 2)
		if err != nil {
			return nil, err
		}
		states = append(states, State{Step: stepOf(m, i), Coords: coords})
	}
	if len(states) == 0 {
		return nil, ErrEmptyTrace
	}
	return states, nil
}

// fromTriangles reduces each triangle record to the centroid of the
// first three (x, y) vertex pairs in its coords.
func fromTriangles(records []any) (Trace, error) {
	states := make(Trace, 0, len(records))
	for i, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			return nil, &ValidationError{Kind: "triangle", Record: i, Reason: "not an object"}
		}
		coords, err := coordsOf(m, "triangle", i, 6)
		if err != nil {
			return nil, err
		}
		cx := (coords[0] + coords[2] + coords[4]) / 3.0
		cy := (coords[1] + coords[3] + coords[5]) / 3.0
		states = append(states, State{Step: stepOf(m, i), Coords: []float64{cx, cy}})
	}
	if len(states) == 0 {
		return nil, ErrEmptyTrace
	}
	return states, nil
}

func coordsOf(m map[string]any, kind string, record, minLen int) ([]float64, error) {
	v, ok := m["coords"]
	if !ok {
		return nil, &ValidationError{Kind: kind, Record: record, Reason: `missing "coords"`}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &ValidationError{Kind: kind, Record: record, Reason: `"coords" is not an array`}
	}
	coords := make([]float64, 0, len(arr))
	for _, el := range arr {
		f, ok := el.(float64)
		if !ok {
			return nil, &ValidationError{Kind: kind, Record: record, Reason: `"coords" contains a non-numeric value`}
		}
		coords = append(coords, f)
	}
	if len(coords) < minLen {
		return nil, &ValidationError{
			Kind:   kind,
			Record: record,
			Reason: fmt.Sprintf(`"coords" has %d values, need at least %d`, len(coords), minLen),
		}
	}
	return coords, nil
}

func stepOf(m map[string]any, ordinal int) int {
	if v, ok := m["step"].(float64); ok {
		return int(v)
	}
	return ordinal
}
