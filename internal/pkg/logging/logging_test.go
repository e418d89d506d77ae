package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/layout-api/internal/pkg/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := logging.New(logging.Options{Level: "warn", Console: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("hidden")
	logger.Warn("shown", "room_id", "r1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "room_id=r1")
}

func TestFileReceivesDebugAsJSON(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "layout.log")

	logger, cleanup, err := logging.New(logging.Options{
		Level:     "error",
		File:      path,
		MaxSizeMB: 1,
		Console:   &buf,
	})
	require.NoError(t, err)

	logger.With("component", "test").Debug("details", "zoom", 1.5)
	cleanup()

	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "details", record["msg"])
	assert.Equal(t, "test", record["component"])
	assert.Equal(t, 1.5, record["zoom"])
}
