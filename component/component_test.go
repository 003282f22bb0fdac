package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcllerena/R2X/errors"
)

type generator struct {
	Name      string  `mapstructure:"name" validate:"required"`
	BasePower float64 `mapstructure:"base_power" validate:"omitempty,gt=0"`
	Region    string  `mapstructure:"region"`
}

func TestConstruct(t *testing.T) {
	gen, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": 150.0,
		"region":     "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "wind_p1", gen.Name)
	assert.Equal(t, 150.0, gen.BasePower)
}

func TestConstructDropsNullsAndUnknownKeys(t *testing.T) {
	gen, err := Construct[generator](map[string]any{
		"name":          "wind_p1",
		"region":        nil,     // null: dropped before decoding
		"prime_mover":   "WT",    // unknown: dropped silently
		"fuel_price":    nil,     // null and unknown
		"storage_hours": 4,       // unknown
	})
	require.NoError(t, err)
	assert.Equal(t, "wind_p1", gen.Name)
	assert.Empty(t, gen.Region)
}

func TestConstructValidationFailure(t *testing.T) {
	_, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": -5.0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConstructMissingRequiredField(t *testing.T) {
	_, err := Construct[generator](map[string]any{"region": "p1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConstructTypeMismatchFailsStrict(t *testing.T) {
	_, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": "not-a-number",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConstructUncheckedCarriesInvalidValues(t *testing.T) {
	gen, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": -5.0, // fails gt=0
	}, WithUnchecked())
	require.NoError(t, err)
	assert.Equal(t, -5.0, gen.BasePower, "unchecked construction keeps the invalid value unchanged")
}

func TestConstructUncheckedCoercesTypes(t *testing.T) {
	gen, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": "150", // weak decode coerces the string
	}, WithUnchecked())
	require.NoError(t, err)
	assert.Equal(t, 150.0, gen.BasePower)
}

func TestConstructUncheckedUnsalvageableFieldFails(t *testing.T) {
	// Weak typing coerces scalars, but a nested map can never land in a
	// float field; that is a decode failure, not a best-effort value
	_, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": map[string]any{"value": 150.0, "unit": "MW"},
	}, WithUnchecked())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConstructUncheckedIsNotADefault(t *testing.T) {
	// Without the explicit opt-in, the same input must fail
	_, err := Construct[generator](map[string]any{
		"name":       "wind_p1",
		"base_power": -5.0,
	})
	require.Error(t, err)
}

func TestConstructEmptyFieldsFailsRequired(t *testing.T) {
	_, err := Construct[generator](map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}
