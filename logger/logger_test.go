package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerIsUsableBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic on the package-load no-op logger
	Logger.Debugw("pre-init message", "key", "value")
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false, VerbosityInfo)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true, VerbosityUser)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.True(t, JSONOutput)
}

func TestInitializeForTesting(t *testing.T) {
	InitializeForTesting()
	require.NotNil(t, Logger)
	Logger.Debugw("test message", "key", "value")
	Sync()
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}
