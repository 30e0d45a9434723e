package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	t.Setenv("ENV_NAME", "")
	path := filepath.Join(t.TempDir(), "grid.log")

	log, err := New(path)
	require.NoError(t, err)
	log.Infow("sort changed", "column", "name")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sort changed")
	assert.Contains(t, string(data), "name")
}

func TestLogLevelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.log")

	t.Setenv("LOG_LEVEL", "warn")
	log, err := New(path)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")

	t.Setenv("LOG_LEVEL", "loud")
	_, err = New(path)
	assert.Error(t, err)
}
