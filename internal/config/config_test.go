package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coecms/soil-column/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
path: /g/data/soil
soil_vars:
  - SAND
  - SILT
  - CLAY
  - OC
  - BULK_DEN
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/g/data/soil", cfg.Path)
	assert.Equal(t, []string{"SAND", "SILT", "CLAY", "OC", "BULK_DEN"}, cfg.SoilVars)
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := config.Load(missing)
	require.ErrorIs(t, err, config.ErrNotFound)
	assert.Contains(t, err.Error(), missing)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "path: [unterminated")
	_, err := config.Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrNotFound)
}

func TestLoadMissingPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "soil_vars: [SAND]")
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrMissingField)
	assert.Contains(t, err.Error(), "path")
}

func TestLoadMissingSoilVars(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "path: /g/data/soil")
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrMissingField)
	assert.Contains(t, err.Error(), "soil_vars")
}
