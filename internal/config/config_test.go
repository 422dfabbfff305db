package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COLCON_WS_BASE", "COLCON_INSTALL_BASE", "AMENTREG_LOG_LEVEL", "AMENTREG_CONFIG"} {
		unsetenv(t, key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amentreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLCON_WS_BASE", "/ws")
	t.Setenv("COLCON_INSTALL_BASE", "install")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/ws", s.WorkspaceRoot)
	assert.Equal(t, "install", s.InstallBase)
	assert.Equal(t, DefaultLogLevel, s.LogLevel)
	assert.True(t, s.Registry().Enabled())
}

func TestLoadUnsetEnvDisablesRegistration(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLCON_WS_BASE", "/ws")

	s, err := Load("")
	require.NoError(t, err)
	assert.False(t, s.Registry().Enabled())
}

func TestLoadValuesVerbatim(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLCON_WS_BASE", " /ws ")
	t.Setenv("COLCON_INSTALL_BASE", "install/")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, " /ws ", s.WorkspaceRoot)
	assert.Equal(t, "install/", s.InstallBase)
}

func TestLoadFileFallback(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "workspace_root: /from/file\ninstall_base: install\nlog_level: debug\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", s.WorkspaceRoot)
	assert.Equal(t, "install", s.InstallBase)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, path, s.ConfigFile)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLCON_WS_BASE", "/from/env")
	path := writeConfig(t, "workspace_root: /from/file\ninstall_base: install\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", s.WorkspaceRoot)
	assert.Equal(t, "install", s.InstallBase)
}

func TestLoadEmptyEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("COLCON_WS_BASE", "")
	path := writeConfig(t, "workspace_root: /from/file\ninstall_base: install\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.WorkspaceRoot)
	assert.False(t, s.Registry().Enabled())
}

func TestLoadLogLevelFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMENTREG_LOG_LEVEL", "info")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "workspace_root: /ws\ninstall_dir: install\n")

	_, err := Load(path)
	require.Error(t, err)

	var invalid *InvalidFileError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, path, invalid.Path)
	assert.NotEmpty(t, invalid.Issues)
}

func TestFileFromEnv(t *testing.T) {
	clearEnv(t)
	assert.Empty(t, FileFromEnv())

	t.Setenv("AMENTREG_CONFIG", "/etc/amentreg.yaml")
	assert.Equal(t, "/etc/amentreg.yaml", FileFromEnv())
}
