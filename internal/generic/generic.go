// Package generic holds small helpers shared by the API packages.
package generic

// RemoveUnsetValues returns a copy of m without the keys whose value is nil.
// A typed nil pointer stored in the map counts as unset too. Empty strings
// and empty slices are kept.
func RemoveUnsetValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if isUnset(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isUnset(v any) bool {
	switch tv := v.(type) {
	case nil:
		return true
	case *string:
		return tv == nil
	}
	return false
}
