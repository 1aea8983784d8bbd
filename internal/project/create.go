package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/cmkproject/cmk/internal/debug"
)

// ErrCreate is the single user-facing failure for project creation. The
// underlying cause is logged, not returned.
var ErrCreate = errors.New("could not create project")

// Hook runs after a new project has been created. A failing hook does not
// stop the hooks after it and does not undo the creation.
type Hook func(p *Project) error

// Creator scaffolds new projects. Creation is all-or-nothing: when any
// setup step fails, everything created so far is removed and the locator
// cache is cleared.
type Creator struct {
	Locator *Locator
	Opts    Options

	hooks []Hook

	// writeFile is injectable for tests simulating write failures.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewCreator creates a Creator using the given locator and options.
func NewCreator(loc *Locator, opts Options) *Creator {
	return &Creator{Locator: loc, Opts: opts, writeFile: os.WriteFile}
}

// AddHook registers a post-creation hook. Hooks run in registration order.
func (c *Creator) AddHook(h Hook) {
	c.hooks = append(c.hooks, h)
}

// Create sets up a new project at dir: the directory itself, the build
// directory, and a generated CMakeLists.txt. On success the locator cache
// points at the new root and all registered hooks have run.
func (c *Creator) Create(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		debug.Logf("create: abs %q: %v", dir, err)
		return nil, ErrCreate
	}

	preexisted := pathExists(root)
	p := New(root, c.Opts)

	if err := c.setup(p); err != nil {
		debug.Logf("create %s: %v", root, err)
		c.rollback(p, preexisted)
		return nil, ErrCreate
	}

	c.Locator.SetRoot(root)
	c.runHooks(p)
	return p, nil
}

func (c *Creator) setup(p *Project) error {
	if err := os.MkdirAll(p.BuildDir(), 0o755); err != nil {
		return err
	}
	wf := c.writeFile
	if wf == nil {
		wf = os.WriteFile
	}
	return wf(p.CMakeListsPath(), []byte(p.Template()), 0o644)
}

// rollback removes everything setup created. A root directory that existed
// before the call is kept; only the files written into it are removed.
func (c *Creator) rollback(p *Project, preexisted bool) {
	if preexisted {
		if err := os.Remove(p.CMakeListsPath()); err != nil && !os.IsNotExist(err) {
			debug.Logf("rollback: remove %s: %v", p.CMakeListsPath(), err)
		}
		if err := os.RemoveAll(p.BuildDir()); err != nil {
			debug.Logf("rollback: remove %s: %v", p.BuildDir(), err)
		}
	} else if err := os.RemoveAll(p.Root); err != nil {
		debug.Logf("rollback: remove %s: %v", p.Root, err)
	}
	c.Locator.Invalidate()
}

func (c *Creator) runHooks(p *Project) {
	for _, h := range c.hooks {
		if err := h(p); err != nil {
			debug.Logf("post-create hook: %v", err)
		}
	}
}
