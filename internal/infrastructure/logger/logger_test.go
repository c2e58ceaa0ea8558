package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestNew(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := DefaultConfig()
		cfg.Format = format
		log, err := New(cfg)
		require.NoError(t, err)
		require.NotNil(t, log)
		log.Info("logger smoke test")
	}
}
