package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"debug development", "development", "debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn production", "production", "warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"unknown falls back to info", "development", "loud", zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.env, tt.level)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.off))
		})
	}
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		Must("production", "info").Info("ok")
	})
}
