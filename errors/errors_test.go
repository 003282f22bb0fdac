package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelIdentitySurvivesWrapping(t *testing.T) {
	err := Wrapf(ErrMissingMandatoryFile, "file %q not found in %q", "load.csv", "/runs/base")

	assert.True(t, Is(err, ErrMissingMandatoryFile))
	assert.False(t, Is(err, ErrUnsupportedFormat))
	assert.True(t, IsMissingFileError(err))
}

func TestIsUnsupportedFormatCoversProfiles(t *testing.T) {
	formatErr := NewUnsupportedFormatError("extension %q not registered", ".dat")
	profileErr := Wrap(ErrUnknownProfile, "profile \"plexos\" has no parquet layout")

	assert.True(t, IsUnsupportedFormatError(formatErr))
	assert.True(t, IsUnsupportedFormatError(profileErr))
	assert.False(t, IsUnsupportedFormatError(nil))
}

func TestNewMissingFileError(t *testing.T) {
	err := NewMissingFileError("mandatory file %q not found in %q", "load.csv", "/runs/base")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load.csv")
	assert.True(t, Is(err, ErrMissingMandatoryFile))
}

func TestValidationSentinel(t *testing.T) {
	err := Wrap(ErrValidation, "field base_power must be positive")

	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(New("unrelated")))
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(ErrSchemaViolation, "every file map entry must be an object")
	wrapped := Wrap(err, "loading fmap.yaml")

	hints := GetAllHints(wrapped)
	require.Len(t, hints, 1)
	assert.Equal(t, "every file map entry must be an object", hints[0])
}
