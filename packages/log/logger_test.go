package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("REQUEASY_DEBUG", "")
		t.Setenv("REQUEASY_LOG_LEVEL", "")
		t.Setenv("REQUEASY_LOG_FORMAT", "")

		cfg := FromEnv()
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, FormatText, cfg.Format)
		assert.False(t, cfg.AddSource)
	})

	t.Run("debug wins over level", func(t *testing.T) {
		t.Setenv("REQUEASY_DEBUG", "1")
		t.Setenv("REQUEASY_LOG_LEVEL", "error")

		cfg := FromEnv()
		assert.Equal(t, "debug", cfg.Level)
		assert.True(t, cfg.AddSource)
	})

	t.Run("level and format", func(t *testing.T) {
		t.Setenv("REQUEASY_DEBUG", "")
		t.Setenv("REQUEASY_LOG_LEVEL", "TRACE")
		t.Setenv("REQUEASY_LOG_FORMAT", "JSON")

		cfg := FromEnv()
		assert.Equal(t, "trace", cfg.Level)
		assert.Equal(t, FormatJSON, cfg.Format)
	})
}

func TestNew_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "trace", Format: FormatJSON, Output: &buf})

	WithRequestID(logger, "abc").Log(context.Background(), LevelTrace, "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "TRACE", entry["level"])
	assert.Equal(t, "abc", entry[RequestIDKey])
	assert.Equal(t, "hello", entry["msg"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatText, Output: &buf})

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
