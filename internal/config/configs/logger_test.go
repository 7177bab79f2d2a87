package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "warn", Format: "JSON"}.New(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("id", 1))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(1), line["id"])
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "yaml"}.New(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
