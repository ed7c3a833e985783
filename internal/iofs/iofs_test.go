package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/kgraft/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "kgraft"),
		filepath.Join(tmpDir, ".local", "share", "kgraft", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}

	// repeated calls succeed
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	existingDir := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(existingDir, 0700))

	require.NoError(t, touchDir(existingDir))

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestEnsureConfigFile verifies config file is created once and
// user edits are kept.
func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "kgraft",
		"config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	custom := "graft:\n  root_id: 10239\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content),
		"Existing config file should not be overwritten")
}

// TestEnsureConfigFile_Invalid verifies broken YAML is reported.
func TestEnsureConfigFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "kgraft",
		"config.yaml")
	require.NoError(t,
		os.WriteFile(configPath, []byte("graft: [root_id\n"), 0644))

	err := EnsureConfigFile(tmpDir)
	require.Error(t, err)
	assert.Equal(t, errcode.ReadFileError, errcode.Of(err))
}

// TestConfigYAML_Embedded verifies embedded config is valid.
func TestConfigYAML_Embedded(t *testing.T) {
	assert.Contains(t, ConfigYAML, "root_id: 32630")
	assert.Contains(t, ConfigYAML, "log:")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ConfigYAML), 0644))
	assert.NoError(t, CheckConfigFile(path))
}
