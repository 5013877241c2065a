package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := loadConfig()

	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "heckel", cfg.LineMatcher)
	assert.Equal(t, "standard", cfg.InlineMatcher)
	assert.InDelta(t, 0.75, cfg.Cutoff, 1e-9)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mdiff"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "mdiff", "config.yaml"),
		[]byte("lineMatcher: displacement\ncutoff: 0.6\n"),
		0o644,
	))

	cfg := loadConfig()

	assert.Equal(t, "displacement", cfg.LineMatcher)
	assert.InDelta(t, 0.6, cfg.Cutoff, 1e-9)
	// Unset keys keep their defaults.
	assert.Equal(t, "utf8", cfg.CharMode)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mdiff"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "mdiff", "config.yaml"),
		[]byte(":[ not yaml"),
		0o644,
	))

	assert.Equal(t, defaultConfig(), loadConfig())
}
