//go:build linux

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaime/internal/config"
)

func TestOpenConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanaime", "config.toml")

	loader, cfg, created, err := openConfig(path)
	require.NoError(t, err)
	defer loader.Close()

	assert.True(t, created)
	assert.Equal(t, path, loader.Path())
	assert.FileExists(t, path)
	assert.Equal(t, config.DefaultConfig().Input.KeyboardType, cfg.Input.KeyboardType)
}

func TestOpenConfigKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n\n[input]\nkeyboard_type = \"12key\"\n"), 0600))

	loader, cfg, created, err := openConfig(path)
	require.NoError(t, err)
	defer loader.Close()

	assert.False(t, created)
	assert.Equal(t, "12key", cfg.Input.KeyboardType)
}
