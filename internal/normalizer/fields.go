package normalizer

// Field accessors over decoded JSON. Every upstream value is untrusted:
// a field is only accepted when it is present and has the exact type the
// schema asks for. Required strings must also be non-empty.

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// stringField returns the value of a required string field. Empty strings
// do not count as present.
func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// optString returns the field when it is a string, "" otherwise. Used for
// optional fields where a wrong type is dropped rather than rejected.
func optString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

// numberField matches any JSON number. encoding/json decodes them all as
// float64.
func numberField(m map[string]any, key string) (float64, bool) {
	n, ok := m[key].(float64)
	return n, ok
}

func objectField(m map[string]any, key string) (map[string]any, bool) {
	return asObject(m[key])
}

func arrayField(m map[string]any, key string) ([]any, bool) {
	return asArray(m[key])
}
