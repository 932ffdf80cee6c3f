package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diascope/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data/diabetes_clean.csv", cfg.Data.File)
	assert.Equal(t, 10000, cfg.Export.RowLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/srv/data/diabetes.xlsx")
	t.Setenv("EXPORT_ROW_LIMIT", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/data/diabetes.xlsx", cfg.Data.File)
	assert.Equal(t, 500, cfg.Export.RowLimit)
}

func TestLoadRejectsNonPositiveExportLimit(t *testing.T) {
	t.Setenv("EXPORT_ROW_LIMIT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("EXPORT_ROW_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Export.RowLimit)
}
