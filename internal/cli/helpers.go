package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/cmkproject/cmk/internal/config"
	"github.com/cmkproject/cmk/internal/debug"
	"github.com/cmkproject/cmk/internal/dirs"
	"github.com/cmkproject/cmk/internal/history"
	"github.com/cmkproject/cmk/internal/project"
)

// resolveWorkingDir returns the absolute working directory from the --dir
// flag, defaulting to the current directory.
func resolveWorkingDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", dir, err)
	}
	return abs, nil
}

// loadConfig loads the layered configuration and applies CLI flag
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyCLIFlags(buildDirFlag, binDirFlag, cmakeFlag)
	return cfg, nil
}

// locateProject resolves the project for the working directory. The third
// result is false when no project root was found; callers fall back to the
// ambient directory or fail with a user-facing message.
func locateProject(cfg *config.Config) (*project.Project, string, bool, error) {
	wd, err := resolveWorkingDir(workingDir)
	if err != nil {
		return nil, "", false, err
	}

	loc := project.NewLocator(cfg.Markers, cfg.StopBoundaries)
	root, ok := loc.Locate(wd)
	if !ok {
		debug.Logf("no project root above %s", wd)
		return nil, wd, false, nil
	}

	// The project file may adjust paths; flags still win.
	if err := cfg.MergeProjectFile(root); err != nil {
		return nil, wd, false, err
	}
	cfg.ApplyCLIFlags(buildDirFlag, binDirFlag, cmakeFlag)
	if err := cfg.Validate(); err != nil {
		return nil, wd, false, fmt.Errorf("invalid config: %w", err)
	}

	return project.New(root, project.OptionsFromConfig(cfg)), wd, true, nil
}

// requireProject is locateProject for commands that cannot run without a
// root.
func requireProject(cfg *config.Config) (*project.Project, error) {
	p, wd, ok, err := locateProject(cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no project found above %s (marker: %v)", wd, cfg.Markers)
	}
	return p, nil
}

// recordHistory notes an action in the project history store. History is
// best-effort: failures are logged and never fail the action itself.
func recordHistory(p *project.Project, action string) {
	st, err := history.Open(dirs.StateDir())
	if err != nil {
		debug.Logf("history: %v", err)
		return
	}
	defer st.Close()
	if err := st.Record(p.Root, p.Name(), action); err != nil {
		debug.Logf("history: %v", err)
	}
}

// executablesUnder lists executable regular files below dir, as paths
// relative to dir.
func executablesUnder(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			out = append(out, rel)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return out, nil
}

// stdoutIsTTY reports whether stdout is attached to a terminal.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
