package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmkproject/cmk/internal/project"
)

func TestExecutableLine(t *testing.T) {
	tests := []struct {
		name     string
		exe      string
		args     string
		expected string
	}{
		{"no args", "/p/build/bin/app", "", "/p/build/bin/app"},
		{"with args", "/p/build/bin/app", "--verbose -n 3", "/p/build/bin/app --verbose -n 3"},
		{"whitespace args", "/p/build/bin/app", "   ", "/p/build/bin/app"},
		{"args trimmed", "/p/build/bin/app", "  --flag  ", "/p/build/bin/app --flag"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, executableLine(tc.exe, tc.args))
		})
	}
}

func TestChooseExecutableSingleBinary(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "build", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "app"), []byte("#!/bin/sh\n"), 0o755))

	p := project.New(root, project.Options{BuildDir: "build", BinDir: "bin"})

	got, err := chooseExecutable(p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(binDir, "app"), got)
}

func TestChooseExecutableNoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build", "bin"), 0o755))

	p := project.New(root, project.Options{BuildDir: "build", BinDir: "bin"})

	_, err := chooseExecutable(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no executables found")
}
