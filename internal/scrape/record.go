package scrape

import (
	"strconv"
)

// Record wraps one raw provider payload. The detail actors disagree on
// field names and nesting (top-level vs a "basic_info" sub-object), so the
// rest of the pipeline goes through these accessors instead of touching raw
// JSON.
type Record map[string]any

// Str probes keys in priority order and returns the first value that
// coerces to a non-empty string, else fallback. Object-shaped values are
// unwrapped via the sub-fields providers hide text under.
func (r Record) Str(fallback string, keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			if s := coerceString(v); s != "" {
				return s
			}
		}
	}
	return fallback
}

// Obj returns the first key holding a nested object, else nil.
func (r Record) Obj(keys ...string) Record {
	for _, k := range keys {
		if m, ok := r[k].(map[string]any); ok {
			return Record(m)
		}
	}
	return nil
}

// List returns the first key holding a list, else nil.
func (r Record) List(keys ...string) []any {
	for _, k := range keys {
		if l, ok := r[k].([]any); ok {
			return l
		}
	}
	return nil
}

// Num returns the first key holding a number, else 0 with ok=false. String
// digits count too; duration fields arrive both ways.
func (r Record) Num(keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := r[k].(type) {
		case float64:
			return int(v), true
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// AsRecord converts a list element into a Record when it is object-shaped.
func AsRecord(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// Object values sometimes wrap the actual text; these are the sub-fields
// providers have been seen using, in priority order.
var textWrapKeys = []string{"linkedinText", "name", "title", "parsed"}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		for _, k := range textWrapKeys {
			if s, ok := t[k].(string); ok && s != "" {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}

// CoerceString is the exported form used where a value isn't reached
// through a Record (list elements, for instance).
func CoerceString(v any, fallback string) string {
	if s := coerceString(v); s != "" {
		return s
	}
	return fallback
}
