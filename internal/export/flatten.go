// Package export turns the currently displayed report JSON into files the
// operator can take away. The flattening mirrors what the original console
// did before handing data to its exporters: nested objects become
// dot-separated paths, arrays join into one cell, and no leaf is dropped.
package export

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Flatten reduces an arbitrarily nested JSON object to a single level.
// Nested object keys concatenate with "."; array elements render to strings
// (objects inside arrays are JSON-encoded) and join with ", "; nil leaves
// become "".
func Flatten(data map[string]any) map[string]string {
	out := make(map[string]string)
	flattenInto(out, data, "")
	return out
}

func flattenInto(out map[string]string, obj map[string]any, prefix string) {
	for key, val := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			flattenInto(out, v, path)
		case []any:
			out[path] = joinArray(v)
		default:
			out[path] = leafString(val)
		}
	}
}

func joinArray(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		switch item.(type) {
		case nil:
			// Inside arrays a null renders literally, unlike nil leaves.
			parts[i] = "null"
		case map[string]any, []any:
			encoded, err := json.Marshal(item)
			if err != nil {
				parts[i] = ""
				continue
			}
			parts[i] = string(encoded)
		default:
			parts[i] = leafString(item)
		}
	}
	return strings.Join(parts, ", ")
}

func leafString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return strings.Trim(string(encoded), `"`)
	}
}

// FlattenJSON decodes raw report JSON and flattens it. A top-level array is
// wrapped under per-index keys so list reports export too.
func FlattenJSON(raw []byte) (map[string]string, error) {
	var asObject map[string]any
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return Flatten(asObject), nil
	}
	var asArray []any
	if err := json.Unmarshal(raw, &asArray); err != nil {
		return nil, err
	}
	wrapped := make(map[string]any, len(asArray))
	for i, item := range asArray {
		wrapped[strconv.Itoa(i)] = item
	}
	return Flatten(wrapped), nil
}

// sortedKeys fixes an output order for the writers; flattened paths sort
// lexically so related keys stay adjacent.
func sortedKeys(flat map[string]string) []string {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
