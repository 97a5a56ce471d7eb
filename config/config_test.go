package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.json", `{"app":{"name":"usersvc","debug":true}}`)

	var cfg Config
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "usersvc", cfg.App.Name)
	assert.True(t, cfg.App.Debug)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg Config
	err := Load(filepath.Join(t.TempDir(), "nope.json"), &cfg)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"app":`)

	var cfg Config
	err := Load(path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadFileSetsCurrent(t *testing.T) {
	path := writeFile(t, "config.json", `{"app":{"name":"sample","debug":false}}`)

	prev := Current
	t.Cleanup(func() { Current = prev })

	require.NoError(t, LoadFile(path))
	assert.Equal(t, "sample", Current.App.Name)
	assert.False(t, Current.App.Debug)
}
