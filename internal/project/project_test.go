package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmkproject/cmk/internal/config"
)

func testOptions() Options {
	return Options{
		Markers:        []string{"CMakeLists.txt"},
		StopBoundaries: []string{".git"},
		MinimumVersion: "3.7",
		BuildDir:       "build",
		BinDir:         "bin",
	}
}

func TestProjectPaths(t *testing.T) {
	p := New(filepath.Join("/work", "widget"), testOptions())

	assert.Equal(t, "widget", p.Name())
	assert.Equal(t, filepath.Join("/work", "widget", "build"), p.BuildDir())
	assert.Equal(t, filepath.Join("/work", "widget", "build", "bin"), p.BinDir())
	assert.Equal(t, filepath.Join("/work", "widget", "CMakeLists.txt"), p.CMakeListsPath())
	assert.Equal(t, "build", p.BuildDirRel())
}

func TestProjectTemplateDefault(t *testing.T) {
	p := New("/work/widget", testOptions())

	tmpl := p.Template()
	assert.Contains(t, tmpl, "cmake_minimum_required(VERSION 3.7)")
	assert.Contains(t, tmpl, "set(PROJECT_NAME widget)")
}

func TestProjectTemplateOverride(t *testing.T) {
	opts := testOptions()
	opts.Generator = func() string { return "# custom\n" }
	p := New("/work/widget", opts)

	assert.Equal(t, "# custom\n", p.Template())
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("CMK_BUILD_DIR", "")
	cfg, err := config.LoadWithDir(t.TempDir())
	require.NoError(t, err)

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, cfg.Markers, opts.Markers)
	assert.Equal(t, cfg.BuildDir, opts.BuildDir)
	assert.Equal(t, cfg.BinDir, opts.BinDir)
	assert.Equal(t, cfg.MinimumVersion, opts.MinimumVersion)
	assert.Nil(t, opts.Generator)
}
