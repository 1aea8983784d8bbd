// Package dirs provides XDG Base Directory Specification compliant paths
// for all cmk directories.
package dirs

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the cmk configuration directory.
// Resolution order: XDG_CONFIG_HOME/cmk > ~/.config/cmk.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cmk")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "cmk")
	}
	return filepath.Join(home, ".config", "cmk")
}

// StateDir returns the cmk state directory.
// Resolution order: CMK_STATE_DIR > XDG_STATE_HOME/cmk > ~/.local/state/cmk.
func StateDir() string {
	if dir := os.Getenv("CMK_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cmk")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", "cmk")
	}
	return filepath.Join(home, ".local", "state", "cmk")
}
