// Package project implements project root location, project-relative path
// resolution, and project creation for cmk.
package project

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/cmkproject/cmk/internal/debug"
)

// ErrRefresh is returned when re-locating the project root fails. The
// underlying cause is logged, not returned.
var ErrRefresh = errors.New("could not refresh project root")

// Locator finds the project root by walking upward from a start directory.
//
// A directory containing any of the configured marker files is a candidate
// root. When several marker-bearing directories form a contiguous ancestor
// run, the outermost one wins: for a chain A/B/C/D where B and C carry the
// marker and D does not, locating from D yields B, not the nearer C. The walk
// never ascends past a stop boundary (a VCS root or a configured boundary
// entry).
type Locator struct {
	markers    []string
	boundaries []string
	cached     string

	// exists probes the filesystem for a path. Injectable for tests.
	exists func(path string) bool
	// repoRoot reports whether a directory is a VCS repository root.
	repoRoot func(dir string) bool
}

// NewLocator creates a Locator for the given marker filenames and stop
// boundary entries.
func NewLocator(markers, boundaries []string) *Locator {
	return &Locator{
		markers:    markers,
		boundaries: boundaries,
		exists:     pathExists,
		repoRoot:   IsRepoRoot,
	}
}

// Locate returns the project root for the given start directory, or
// ("", false) when no marker is found up to a stop boundary or the
// filesystem root.
//
// A previously located root is reused without touching the filesystem for
// any query path that textually contains the cached root. This is a
// substring test, not a path-prefix test: "/home/proj" also matches
// "/home/proj-other". The imprecision is kept for compatibility with the
// behavior this tool replaces.
func (l *Locator) Locate(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		debug.Logf("locate: abs %q: %v", start, err)
		return "", false
	}

	if l.cached != "" && strings.Contains(dir, l.cached) {
		return l.cached, true
	}

	root, ok := l.scan(dir)
	if ok {
		l.cached = root
	}
	return root, ok
}

// Refresh re-locates the root from the start directory, bypassing the
// cache. On failure the cached root is left unchanged and ErrRefresh is
// returned.
func (l *Locator) Refresh(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		debug.Logf("refresh: abs %q: %v", start, err)
		return "", ErrRefresh
	}
	root, ok := l.scan(dir)
	if !ok {
		return "", ErrRefresh
	}
	l.cached = root
	return root, nil
}

// Invalidate clears the cached root.
func (l *Locator) Invalidate() {
	l.cached = ""
}

// SetRoot pins the cached root to the given directory. Used when a new
// project is created at a known location.
func (l *Locator) SetRoot(dir string) {
	l.cached = dir
}

// Cached returns the currently cached root, or "".
func (l *Locator) Cached() string {
	return l.cached
}

// scan walks upward from dir looking for a marker-bearing directory, then
// extends the match to the outermost contiguous marker-bearing ancestor.
func (l *Locator) scan(dir string) (string, bool) {
	for {
		if l.hasMarker(dir) {
			return l.outermost(dir), true
		}
		if l.isBoundary(dir) {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// outermost climbs a contiguous run of marker-bearing ancestors, stopping
// at stop boundaries. dir must already carry a marker.
func (l *Locator) outermost(dir string) string {
	for {
		if l.isBoundary(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || !l.hasMarker(parent) {
			return dir
		}
		dir = parent
	}
}

func (l *Locator) hasMarker(dir string) bool {
	for _, m := range l.markers {
		if l.exists(filepath.Join(dir, m)) {
			return true
		}
	}
	return false
}

// isBoundary reports whether the walk must not ascend above dir. The ".git"
// boundary additionally consults go-git so that worktrees and gitdir
// redirections are recognized.
func (l *Locator) isBoundary(dir string) bool {
	for _, b := range l.boundaries {
		if l.exists(filepath.Join(dir, b)) {
			return true
		}
		if b == ".git" && l.repoRoot(dir) {
			return true
		}
	}
	return false
}
