package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/config"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnvVar, "1")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	original := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = original })

	t.Setenv(DebugEnvVar, "")
	Debugf("hidden %d\n", 1)
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnvVar, "true")
	Debugf("loaded %d tasks\n", 3)
	assert.Equal(t, "loaded 3 tasks\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("dropped")
	logger.Info("task added", "id", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "task added", record["msg"])
	assert.Equal(t, "todo", record["app"])
	_, err := uuid.Parse(record["session"].(string))
	assert.NoError(t, err)
}

func TestNewWithWriter_DebugEnvOverridesLevel(t *testing.T) {
	t.Setenv(DebugEnvVar, "1")
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "error", Format: "text"}, &buf)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewModuleLogger(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	var buf bytes.Buffer
	logger := NewModuleLogger(NewWithWriter(config.LoggingConfig{Level: "warn"}, &buf), "store")

	logger.Warn("careful")
	assert.Contains(t, buf.String(), "module=store")
}
