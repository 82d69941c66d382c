package settings

// Effective is the fully merged configuration for one render pass. It is
// immutable after Resolve, so renderers may read it any number of times
// with consistent results.
type Effective struct {
	values   map[string]any
	defaults Settings
}

// FieldStyle is the resolved typography decision for one (section, field)
// pair.
type FieldStyle struct {
	Bold   bool
	Italic bool
}

// Bool returns the boolean value for key, failing closed to the hardcoded
// default when the stored value has the wrong type.
func (e *Effective) Bool(key string) bool {
	if v, ok := e.values[key].(bool); ok {
		return v
	}
	v, _ := e.defaults[key].(bool)
	return v
}

// Int returns the integer value for key. JSON round-trips deliver numbers
// as float64, so both representations are accepted; anything else fails
// closed to the hardcoded default.
func (e *Effective) Int(key string) int {
	if v, ok := asInt(e.values[key]); ok {
		return v
	}
	v, _ := asInt(e.defaults[key])
	return v
}

// Float returns the float value for key, failing closed to the hardcoded
// default on a type mismatch.
func (e *Effective) Float(key string) float64 {
	if v, ok := asFloat(e.values[key]); ok {
		return v
	}
	v, _ := asFloat(e.defaults[key])
	return v
}

// String returns the string value for key, failing closed to the hardcoded
// default on a type mismatch.
func (e *Effective) String(key string) string {
	if v, ok := e.values[key].(string); ok {
		return v
	}
	v, _ := e.defaults[key].(string)
	return v
}

// Strings returns the string-slice value for key. JSON round-trips deliver
// arrays as []any; elements that are not strings are dropped. A value of
// the wrong shape entirely fails closed to the hardcoded default.
func (e *Effective) Strings(key string) []string {
	if v, ok := asStrings(e.values[key]); ok {
		return v
	}
	v, _ := asStrings(e.defaults[key])
	return v
}

// FieldStyle returns the bold/italic decision for a (section, field) pair.
// Fields unknown to the key space resolve to the zero FieldStyle.
func (e *Effective) FieldStyle(section, field string) FieldStyle {
	return FieldStyle{
		Bold:   e.Bool(BoldKey(section, field)),
		Italic: e.Bool(ItalicKey(section, field)),
	}
}

// ListStyle returns the list style name for a list-bearing field.
func (e *Effective) ListStyle(section, field string) string {
	return e.String(ListStyleKey(section, field))
}

// HeadingVisible reports whether the section's heading should be shown.
// Sections without a stored toggle default to visible.
func (e *Effective) HeadingVisible(section string) bool {
	key := HeadingVisibleKey(section)
	if v, ok := e.values[key].(bool); ok {
		return v
	}
	if v, ok := e.defaults[key].(bool); ok {
		return v
	}
	return true
}

// SectionOrder returns the configured section order. The caller is expected
// to repair the permutation against the document (see the layout and
// compose packages); this accessor only resolves the cascade.
func (e *Effective) SectionOrder() []string {
	return e.Strings(KeySectionOrder)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...), true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
