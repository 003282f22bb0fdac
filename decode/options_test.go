package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsPrecedenceEntryOverShared(t *testing.T) {
	opts := NewOptions(
		map[string]any{"profile": "reeds", "solve_year": 2030},
		map[string]any{"profile": "plexos"},
	)

	profile, ok := opts.String("profile")
	assert.True(t, ok)
	assert.Equal(t, "plexos", profile, "entry layer wins on collision")

	year, ok := opts.Int("solve_year")
	assert.True(t, ok)
	assert.Equal(t, 2030, year, "shared layer fills the rest")
}

func TestOptionsMissingKey(t *testing.T) {
	opts := NewOptions(nil, nil)

	_, ok := opts.Get("anything")
	assert.False(t, ok)
	assert.False(t, opts.Bool("anything"))
}

func TestOptionsIntCoercion(t *testing.T) {
	// JSON numbers arrive as float64, YAML as int; both must coerce
	opts := NewOptions(map[string]any{"a": float64(2035), "b": int64(7), "c": 3}, nil)

	for key, want := range map[string]int{"a": 2035, "b": 7, "c": 3} {
		got, ok := opts.Int(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := opts.Int("missing")
	assert.False(t, ok)
}

func TestOptionsStringSlice(t *testing.T) {
	opts := NewOptions(nil, map[string]any{
		"columns": []any{"tech", "value"},
		"typed":   []string{"a", "b"},
	})

	assert.Equal(t, []string{"tech", "value"}, opts.StringSlice("columns"))
	assert.Equal(t, []string{"a", "b"}, opts.StringSlice("typed"))
	assert.Nil(t, opts.StringSlice("missing"))
}

func TestOptionsStringMap(t *testing.T) {
	opts := NewOptions(map[string]any{
		"column_mapping": map[string]any{"allpoints": "region", "i": "tech"},
	}, nil)

	assert.Equal(t, map[string]string{"allpoints": "region", "i": "tech"},
		opts.StringMap("column_mapping"))
}
