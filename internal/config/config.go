// Package config provides unified configuration management for cmk.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → project file → CLI flags
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// ProjectFileName is the per-project configuration file, looked up at the
// project root.
const ProjectFileName = ".cmk.yaml"

// Config holds all configuration settings for cmk.
type Config struct {
	// Root location settings
	Markers        []string `yaml:"markers"`
	StopBoundaries []string `yaml:"stop_boundaries"`

	// Scaffold settings
	MinimumVersion string `yaml:"minimum_version"`

	// Directory layout, relative paths
	BuildDir string `yaml:"build_dir"` // relative to project root
	BinDir   string `yaml:"bin_dir"`   // relative to build dir

	// External tool settings
	CMakeCommand string `yaml:"cmake_command"`

	// Post-creation hook commands, run at the project root
	PostCreate []string `yaml:"post_create"`

	// Private: track where config was loaded from
	configDir string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns the ordered list of sources that contributed values.
func (c *Config) Sources() []string {
	return c.sources
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// BuildPath resolves the build directory against a project root.
func (c *Config) BuildPath(root string) string {
	return filepath.Join(root, c.BuildDir)
}

// BinPath resolves the binary directory against a project root.
func (c *Config) BinPath(root string) string {
	return filepath.Join(c.BuildPath(root), c.BinDir)
}

// Load loads configuration from the default global directory, installing
// defaults on first run, then applies environment variables.
func Load() (*Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir loads configuration with an explicit global directory.
func LoadWithDir(globalDir string) (*Config, error) {
	if err := InstallDefaults(globalDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	// 1. Start with embedded defaults
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	// 2. Merge global config
	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	// 3. Apply environment variables
	cfg.applyEnv()

	cfg.configDir = globalDir
	return cfg, nil
}

// MergeProjectFile merges the per-project config file at the given root, if
// one exists. Project values override global and env values per-field.
func (c *Config) MergeProjectFile(root string) error {
	if root == "" {
		return nil
	}
	path := filepath.Join(root, ProjectFileName)
	projCfg, err := loadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load project config: %w", err)
	}
	c.mergeFrom(projCfg)
	c.sources = append(c.sources, path)
	return nil
}

// DefaultConfigDir returns the default global configuration directory path.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cmk")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "cmk")
	}
	return filepath.Join(home, ".config", "cmk")
}

// InstallDefaults creates the config directory and installs default config
// if not exists.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Markers) == 0 {
		return fmt.Errorf("markers must not be empty")
	}
	if c.BuildDir == "" {
		return fmt.Errorf("build_dir must not be empty")
	}
	if filepath.IsAbs(c.BuildDir) {
		return fmt.Errorf("build_dir must be relative, got %q", c.BuildDir)
	}
	if filepath.IsAbs(c.BinDir) {
		return fmt.Errorf("bin_dir must be relative, got %q", c.BinDir)
	}
	if c.CMakeCommand == "" {
		return fmt.Errorf("cmake_command must not be empty")
	}
	return nil
}

// loadEmbedded loads config from the embedded defaults.
func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

// loadFile loads config from a file path.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

// parseConfig parses YAML config data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// applyEnv applies environment variables to the config.
// Env vars sit between the global and project files in precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("CMK_MARKERS"); v != "" {
		c.Markers = splitList(v)
		c.sources = append(c.sources, "env:CMK_MARKERS")
	}
	if v := os.Getenv("CMK_MINIMUM_VERSION"); v != "" {
		c.MinimumVersion = v
		c.sources = append(c.sources, "env:CMK_MINIMUM_VERSION")
	}
	if v := os.Getenv("CMK_BUILD_DIR"); v != "" {
		c.BuildDir = v
		c.sources = append(c.sources, "env:CMK_BUILD_DIR")
	}
	if v := os.Getenv("CMK_BIN_DIR"); v != "" {
		c.BinDir = v
		c.sources = append(c.sources, "env:CMK_BIN_DIR")
	}
	if v := os.Getenv("CMK_CMAKE_COMMAND"); v != "" {
		c.CMakeCommand = v
		c.sources = append(c.sources, "env:CMK_CMAKE_COMMAND")
	}
}

// mergeFrom merges non-empty values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if len(src.Markers) > 0 {
		c.Markers = src.Markers
	}
	if len(src.StopBoundaries) > 0 {
		c.StopBoundaries = src.StopBoundaries
	}
	if src.MinimumVersion != "" {
		c.MinimumVersion = src.MinimumVersion
	}
	if src.BuildDir != "" {
		c.BuildDir = src.BuildDir
	}
	if src.BinDir != "" {
		c.BinDir = src.BinDir
	}
	if src.CMakeCommand != "" {
		c.CMakeCommand = src.CMakeCommand
	}
	if len(src.PostCreate) > 0 {
		c.PostCreate = src.PostCreate
	}
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence.
func (c *Config) ApplyCLIFlags(buildDir, binDir, cmakeCommand string) {
	if buildDir != "" {
		c.BuildDir = buildDir
		c.sources = append(c.sources, "cli:build-dir")
	}
	if binDir != "" {
		c.BinDir = binDir
		c.sources = append(c.sources, "cli:bin-dir")
	}
	if cmakeCommand != "" {
		c.CMakeCommand = cmakeCommand
		c.sources = append(c.sources, "cli:cmake")
	}
}

// splitList splits a comma- or colon-separated env value into entries.
func splitList(v string) []string {
	sep := ","
	if !strings.Contains(v, ",") {
		sep = ":"
	}
	var out []string
	for _, p := range strings.Split(v, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
