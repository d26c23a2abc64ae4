package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "log_level": "debug", "log_file": "passgen.log" },
		"storage": {
			"files": { "passwords_path": "vault.txt", "key_path": "vault.key" }
		},
		"cipher": { "scheme": "age" },
		"generator": { "allow_empty_template": true }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "passgen.log", cfg.App.LogFile)
	assert.Equal(t, "vault.txt", cfg.Storage.Files.PasswordsPath)
	assert.Equal(t, "vault.key", cfg.Storage.Files.KeyPath)
	assert.Equal(t, "age", cfg.Cipher.Scheme)
	assert.True(t, cfg.Generator.AllowEmptyTemplate)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// TestParseJSON_UnknownField verifies that typos in the config file are
// reported instead of silently ignored.
func TestParseJSON_UnknownField(t *testing.T) {
	p := filepath.Join(t.TempDir(), "typo.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"cipher": {"schema": "age"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
