package cmake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// fileAPIClient is the client name cmk registers with the CMake File API.
const fileAPIClient = "client-cmk"

// Target is a build target reported by the CMake File API codemodel.
type Target struct {
	Name     string
	Artifact string // first artifact path, relative to the build directory
}

// WriteQuery writes a File API codemodel query under the build directory.
// The next configure run makes cmake answer it with a reply on disk.
func WriteQuery(buildDir string) error {
	queryDir := filepath.Join(buildDir, ".cmake", "api", "v1", "query", fileAPIClient)
	if err := os.MkdirAll(queryDir, 0o755); err != nil {
		return fmt.Errorf("create query dir: %w", err)
	}

	query, err := sjson.Set("", "requests.0.kind", "codemodel")
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	query, err = sjson.Set(query, "requests.0.version", 2)
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	path := filepath.Join(queryDir, "query.json")
	if err := os.WriteFile(path, []byte(query), 0o644); err != nil {
		return fmt.Errorf("write query: %w", err)
	}
	return nil
}

// ExecutableTargets reads the File API reply under the build directory and
// returns the executable targets it describes. A missing reply (cmake not
// configured yet, or too old for the File API) yields an empty slice, not
// an error.
func ExecutableTargets(buildDir string) ([]Target, error) {
	replyDir := filepath.Join(buildDir, ".cmake", "api", "v1", "reply")
	entries, err := os.ReadDir(replyDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read reply dir: %w", err)
	}

	var targets []Target
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "target-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(replyDir, name)) //nolint:gosec // reply files are cmake output
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if gjson.GetBytes(data, "type").String() != "EXECUTABLE" {
			continue
		}
		targets = append(targets, Target{
			Name:     gjson.GetBytes(data, "name").String(),
			Artifact: gjson.GetBytes(data, "artifacts.0.path").String(),
		})
	}
	return targets, nil
}
