package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscards(t *testing.T) {
	closeFn, err := Init(Options{})
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.NotNil(t, L)
	Info("dropped")
}

func TestInitStderr(t *testing.T) {
	var out bytes.Buffer
	_, err := Init(Options{Enabled: true, Level: slog.LevelDebug, Stderr: &out})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init(Options{}) })

	Debug("decoded table", "rows", 3)
	assert.Contains(t, out.String(), "decoded table")
	assert.Contains(t, out.String(), "rows=3")
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dbcctl.log")
	closeFn, err := Init(Options{Enabled: true, File: path})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Init(Options{}) })

	Debug("hidden")
	Warn("bad table", "reason", "size mismatch")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "bad table", entry["msg"])
	assert.Equal(t, "size mismatch", entry["reason"])
}
