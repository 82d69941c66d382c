package settings

// Settings is one layer of the configuration cascade: a flat key→value
// mapping. The user-override layer is partial; the hardcoded default layer
// is total. Values are JSON-shaped (bool, float64/int, string, []string,
// []any).
type Settings map[string]any

// Clone returns a shallow copy of the layer. Slice values are copied so the
// original cannot be mutated through the clone.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		switch vv := v.(type) {
		case []string:
			out[k] = append([]string(nil), vv...)
		case []any:
			out[k] = append([]any(nil), vv...)
		default:
			out[k] = v
		}
	}
	return out
}

// Resolve merges the three cascade layers into one effective configuration.
// The merge is shallow and ordered: for every key the override wins if the
// key is present with a non-nil value, then the template default, then the
// hardcoded default. Presence is what matters: a present false or 0
// override wins over any default. A present nil counts as unset, so a JSON
// null clears an override without deleting the key client-side.
func Resolve(hardcoded, template, overrides Settings) *Effective {
	merged := make(map[string]any, len(hardcoded))
	for k, v := range hardcoded {
		merged[k] = v
	}
	for k, v := range template {
		if v != nil {
			merged[k] = v
		}
	}
	for k, v := range overrides {
		if v != nil {
			merged[k] = v
		}
	}
	return &Effective{values: merged, defaults: hardcoded}
}
