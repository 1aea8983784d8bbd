package project

import (
	"path/filepath"

	"github.com/cmkproject/cmk/internal/config"
	"github.com/cmkproject/cmk/internal/scaffold"
)

// Options hold the settings project operations resolve paths and templates
// against.
type Options struct {
	Markers        []string
	StopBoundaries []string
	MinimumVersion string
	BuildDir       string // relative to the project root
	BinDir         string // relative to the build directory

	// Generator overrides the built-in CMakeLists.txt generator. When nil,
	// the default generator bound to the project name and MinimumVersion
	// is used.
	Generator scaffold.Generator
}

// OptionsFromConfig derives Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Markers:        cfg.Markers,
		StopBoundaries: cfg.StopBoundaries,
		MinimumVersion: cfg.MinimumVersion,
		BuildDir:       cfg.BuildDir,
		BinDir:         cfg.BinDir,
	}
}

// Project is a resolved project root together with the options its derived
// paths are computed from.
type Project struct {
	Root string
	opts Options
}

// New wraps an already-located root directory.
func New(root string, opts Options) *Project {
	return &Project{Root: root, opts: opts}
}

// Name is the project name, derived from the root directory's base name.
func (p *Project) Name() string {
	return filepath.Base(p.Root)
}

// BuildDir is the absolute build directory.
func (p *Project) BuildDir() string {
	return filepath.Join(p.Root, p.opts.BuildDir)
}

// BinDir is the absolute binary output directory.
func (p *Project) BinDir() string {
	return filepath.Join(p.BuildDir(), p.opts.BinDir)
}

// BuildDirRel is the build directory relative to the root, as configured.
func (p *Project) BuildDirRel() string {
	return p.opts.BuildDir
}

// CMakeListsPath is the path of the top-level CMakeLists.txt.
func (p *Project) CMakeListsPath() string {
	return filepath.Join(p.Root, "CMakeLists.txt")
}

// Template returns the CMakeLists.txt body for this project, using the
// configured generator when one is set.
func (p *Project) Template() string {
	if p.opts.Generator != nil {
		return p.opts.Generator()
	}
	return scaffold.Render(p.Name(), p.opts.MinimumVersion)
}
