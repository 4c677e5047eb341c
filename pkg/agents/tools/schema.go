package tools

import (
	"sort"
)

// KeySet is a set of schema keys.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given keys.
func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the set contents in sorted order.
func (s KeySet) Keys() []string {
	out := make([]string, 0, len(s))
	for key := range s {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// DefaultSchemaDenylist returns the keys stripped from remote function schemas.
// "visible" is a registry-internal annotation that providers reject.
func DefaultSchemaDenylist() KeySet {
	return NewKeySet("visible")
}

type stripReport struct {
	stripped map[string]struct{}
}

func (r *stripReport) add(key string) {
	if r == nil {
		return
	}
	if r.stripped == nil {
		r.stripped = make(map[string]struct{})
	}
	r.stripped[key] = struct{}{}
}

func (r *stripReport) list() []string {
	if r == nil || len(r.stripped) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.stripped))
	for key := range r.stripped {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// StripSchemaKeys returns a copy of value with every denylisted key removed
// from every mapping at every depth, including mappings nested in sequences.
// Sequences keep their length and order; scalars are returned as-is.
// The input is never modified.
func StripSchemaKeys(value any, deny KeySet) any {
	return stripSchemaKeys(value, deny, nil)
}

// StripSchemaKeysReport is StripSchemaKeys that also returns the sorted
// distinct keys that were removed.
func StripSchemaKeysReport(value any, deny KeySet) (any, []string) {
	report := &stripReport{}
	cleaned := stripSchemaKeys(value, deny, report)
	return cleaned, report.list()
}

func stripSchemaKeys(value any, deny KeySet, report *stripReport) any {
	switch v := value.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		cleaned := make(map[string]any, len(v))
		for key, item := range v {
			if deny.Has(key) {
				report.add(key)
				continue
			}
			cleaned[key] = stripSchemaKeys(item, deny, report)
		}
		return cleaned
	case []any:
		if v == nil {
			return v
		}
		cleaned := make([]any, len(v))
		for i, item := range v {
			cleaned[i] = stripSchemaKeys(item, deny, report)
		}
		return cleaned
	case []map[string]any:
		if v == nil {
			return v
		}
		cleaned := make([]map[string]any, len(v))
		for i, item := range v {
			cleaned[i], _ = stripSchemaKeys(item, deny, report).(map[string]any)
		}
		return cleaned
	case []string:
		if v == nil {
			return v
		}
		return append([]string(nil), v...)
	default:
		return value
	}
}
