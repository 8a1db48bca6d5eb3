package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.False(t, cfg.Cache)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
store_path: /var/lib/idreg/ids.json
cache: true
validators:
  isbn: isbn13
  author: orcid
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/idreg/ids.json", cfg.StorePath)
	assert.True(t, cfg.Cache)
	assert.Equal(t, map[string]string{"isbn": "isbn13", "author": "orcid"}, cfg.Validators)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "cache: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Cache)
	assert.Equal(t, DefaultStorePath, cfg.StorePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store_path: [unclosed\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidYAML)
}
