package dirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "default uses ~/.config/cmk",
			envVars:  map[string]string{"XDG_CONFIG_HOME": ""},
			expected: filepath.Join(home, ".config", "cmk"),
		},
		{
			name:     "respects XDG_CONFIG_HOME",
			envVars:  map[string]string{"XDG_CONFIG_HOME": "/custom/config"},
			expected: filepath.Join("/custom/config", "cmk"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, ConfigDir())
		})
	}
}

func TestStateDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "default uses ~/.local/state/cmk",
			envVars:  map[string]string{"XDG_STATE_HOME": "", "CMK_STATE_DIR": ""},
			expected: filepath.Join(home, ".local", "state", "cmk"),
		},
		{
			name:     "respects XDG_STATE_HOME",
			envVars:  map[string]string{"XDG_STATE_HOME": "/custom/state", "CMK_STATE_DIR": ""},
			expected: filepath.Join("/custom/state", "cmk"),
		},
		{
			name:     "CMK_STATE_DIR takes precedence over XDG_STATE_HOME",
			envVars:  map[string]string{"CMK_STATE_DIR": "/override/dir", "XDG_STATE_HOME": "/custom/state"},
			expected: "/override/dir",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, StateDir())
		})
	}
}
