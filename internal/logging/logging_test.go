package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "json", "info")

	logger.Debug("hidden")
	logger.Info("shown", "path", "/docs")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record), "only one JSON record expected: %s", buf.String())
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "/docs", record["path"])
}

func TestNewWithWriter_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "text", "debug")

	logger.Debug("visible")

	out := buf.String()
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "source=")
}

func TestNew_SetsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logger := New("text", "warn")
	assert.Same(t, logger, slog.Default())
}
