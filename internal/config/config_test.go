package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CMK_MARKERS", "CMK_MINIMUM_VERSION", "CMK_BUILD_DIR",
		"CMK_BIN_DIR", "CMK_CMAKE_COMMAND",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"CMakeLists.txt"}, cfg.Markers)
	assert.Equal(t, "3.7", cfg.MinimumVersion)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, "bin", cfg.BinDir)
	assert.Equal(t, "cmake", cfg.CMakeCommand)
	assert.Contains(t, cfg.StopBoundaries, ".git")
	assert.Empty(t, cfg.PostCreate)

	// First load installs the defaults file.
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)

	require.NoError(t, cfg.Validate())
}

func TestLoadGlobalOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	data := []byte("build_dir: out\nminimum_version: \"3.20\"\n")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600))

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, "3.20", cfg.MinimumVersion)
	// Untouched fields keep embedded defaults.
	assert.Equal(t, "bin", cfg.BinDir)
	assert.Equal(t, []string{"CMakeLists.txt"}, cfg.Markers)
}

func TestEnvOverridesGlobal(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("build_dir: out\n"), 0o600))

	t.Setenv("CMK_BUILD_DIR", "cmake-build")
	t.Setenv("CMK_MARKERS", "CMakeLists.txt,Makefile")

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "cmake-build", cfg.BuildDir)
	assert.Equal(t, []string{"CMakeLists.txt", "Makefile"}, cfg.Markers)
	assert.Contains(t, cfg.Sources(), "env:CMK_BUILD_DIR")
}

func TestMergeProjectFile(t *testing.T) {
	clearEnv(t)
	globalDir := t.TempDir()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFileName),
		[]byte("bin_dir: binaries\npost_create:\n  - git init\n"), 0o600))

	cfg, err := LoadWithDir(globalDir)
	require.NoError(t, err)
	require.NoError(t, cfg.MergeProjectFile(root))

	assert.Equal(t, "binaries", cfg.BinDir)
	assert.Equal(t, []string{"git init"}, cfg.PostCreate)
	// Project file wins over env.
	assert.Contains(t, cfg.Sources(), filepath.Join(root, ProjectFileName))
}

func TestMergeProjectFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadWithDir(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, cfg.MergeProjectFile(t.TempDir()))
	assert.NoError(t, cfg.MergeProjectFile(""))
}

func TestApplyCLIFlags(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadWithDir(t.TempDir())
	require.NoError(t, err)

	cfg.ApplyCLIFlags("out", "", "cmake3")
	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, "bin", cfg.BinDir)
	assert.Equal(t, "cmake3", cfg.CMakeCommand)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no markers", func(c *Config) { c.Markers = nil }, "markers"},
		{"empty build dir", func(c *Config) { c.BuildDir = "" }, "build_dir"},
		{"absolute build dir", func(c *Config) { c.BuildDir = "/tmp/build" }, "build_dir"},
		{"absolute bin dir", func(c *Config) { c.BinDir = "/tmp/bin" }, "bin_dir"},
		{"no cmake command", func(c *Config) { c.CMakeCommand = "" }, "cmake_command"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := LoadWithDir(t.TempDir())
			require.NoError(t, err)
			tc.mutate(cfg)

			err = cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadWithDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/proj", "build"), cfg.BuildPath("/proj"))
	assert.Equal(t, filepath.Join("/proj", "build", "bin"), cfg.BinPath("/proj"))
}
