package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	// The directory and a default config.yaml were created.
	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: warn")

	assert.Equal(t, defaultLogLevel, v.GetString(cfgKeyLogLevel))
	assert.Empty(t, v.GetString(cfgKeyDataDir))
	assert.Empty(t, v.GetString(cfgKeyExportPath))
	assert.Empty(t, v.GetString(cfgKeyLogFile))
}

func TestLoadConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	content := `data_dir: /srv/stockroom
export_path: out.csv
log_level: debug
log_file: stockroom.log
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/stockroom", v.GetString(cfgKeyDataDir))
	assert.Equal(t, "out.csv", v.GetString(cfgKeyExportPath))
	assert.Equal(t, "debug", v.GetString(cfgKeyLogLevel))
	assert.Equal(t, "stockroom.log", v.GetString(cfgKeyLogFile))
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := "log_level: error\n"
	path := filepath.Join(dir, configFileExt)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "error", v.GetString(cfgKeyLogLevel))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("log_level: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
