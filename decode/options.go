package decode

// Options is the layered option view handed to decoders and filter steps.
//
// Precedence on key collision, highest first: entry-level options from the
// file map, then shared options from the ingestion call. This replaces
// untyped keyword-dictionary merging with documented lookup order.
type Options struct {
	entry  map[string]any
	shared map[string]any
}

// NewOptions builds a layered view. Neither map is copied or mutated.
func NewOptions(shared, entry map[string]any) Options {
	return Options{entry: entry, shared: shared}
}

// Get returns the value for key, entry layer first.
func (o Options) Get(key string) (any, bool) {
	if v, ok := o.entry[key]; ok {
		return v, true
	}
	if v, ok := o.shared[key]; ok {
		return v, true
	}
	return nil, false
}

// String returns the value for key when it is a string.
func (o Options) String(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the value for key when it is a bool, else false.
func (o Options) Bool(key string) bool {
	v, ok := o.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Int returns the value for key coerced to int. JSON and YAML decoders
// disagree about integer types, so float64 and int64 both count.
func (o Options) Int(key string) (int, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// StringSlice returns the value for key as a string slice. Accepts both
// []string and the []any a document decoder produces.
func (o Options) StringSlice(key string) []string {
	v, ok := o.Get(key)
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// StringMap returns the value for key as a string-to-string map.
func (o Options) StringMap(key string) map[string]string {
	v, ok := o.Get(key)
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, item := range m {
			if s, ok := item.(string); ok {
				out[k] = s
			}
		}
		return out
	}
	return nil
}
