package providers

import "encoding/json"

// TypedMapper lets a wire type provide its recognized fields as a metadata
// map. MetadataMap consults it before falling back to generic coercion.
type TypedMapper interface {
	TypedMap() (map[string]any, error)
}

// MetadataMap coerces a wire substructure into a metadata map. Three tiers,
// tried in order, each failing closed into the next: the type's own
// TypedMap, a generic JSON round-trip, and finally an empty map. Never
// returns nil and never fails.
func MetadataMap(v any) map[string]any {
	if v == nil {
		return map[string]any{}
	}

	if tm, ok := v.(TypedMapper); ok {
		if m, err := tm.TypedMap(); err == nil && m != nil {
			return m
		}
	}

	if data, err := json.Marshal(v); err == nil {
		var m map[string]any
		if err := json.Unmarshal(data, &m); err == nil && m != nil {
			return m
		}
	}

	return map[string]any{}
}

// MergeExtra merges a residual bag into a metadata map. Extras overwrite
// typed keys here: within one substructure the provider's own field is the
// authoritative value. This is the opposite of the provider-data level,
// where typed fields are written first and never revisited.
func MergeExtra(dst map[string]any, extra map[string]any) {
	for k, v := range extra {
		dst[k] = v
	}
}
