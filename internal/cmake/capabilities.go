package cmake

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/tidwall/gjson"
)

// Capabilities runs `cmake -E capabilities` and returns the raw JSON
// report.
func Capabilities(ctx context.Context, cmakeCmd string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, cmakeCmd, "-E", "capabilities") //nolint:gosec // cmake command comes from config
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("cmake capabilities: %w", err)
	}
	return out.Bytes(), nil
}

// Version extracts the cmake version string from a capabilities report.
func Version(capabilities []byte) string {
	return gjson.GetBytes(capabilities, "version.string").String()
}

// GeneratorNames extracts the available generator names from a
// capabilities report.
func GeneratorNames(capabilities []byte) []string {
	var names []string
	for _, g := range gjson.GetBytes(capabilities, "generators.#.name").Array() {
		names = append(names, g.String())
	}
	return names
}

// SupportsFileAPI reports whether the capabilities report announces File
// API support (cmake >= 3.14).
func SupportsFileAPI(capabilities []byte) bool {
	return gjson.GetBytes(capabilities, "fileApi").Exists()
}
