// Package config provides hierarchical configuration management for the
// changelog CLI using koanf. Configuration is loaded with priority:
// environment variables > project config (.changelog.yml) > user config
// (~/.config/changelog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// CHANGELOG_FILENAME or CHANGELOG_INFER_BUMP.
const envPrefix = "CHANGELOG_"

// Configuration holds the changelog CLI settings.
type Configuration struct {
	// Filename is the changelog file name relative to the working
	// directory. Can be set via CHANGELOG_FILENAME.
	Filename string `koanf:"filename"`

	// InferBump is the version component the infer selector bumps when the
	// package version does not point past the latest release: "patch",
	// "minor" or "major". Can be set via CHANGELOG_INFER_BUMP.
	InferBump string `koanf:"infer_bump"`

	// ListAmount is the default number of versions the list command shows.
	// Can be set via CHANGELOG_LIST_AMOUNT.
	ListAmount int `koanf:"list_amount"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"filename":    "CHANGELOG.md",
		"infer_bump":  "patch",
		"list_amount": 10,
	}
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// WorkDir is the directory the project config is searched in
	// (default: current working directory).
	WorkDir string
	// ProjectConfigPath overrides the project config path entirely.
	ProjectConfigPath string
	// UserConfigPath overrides the user config path entirely.
	UserConfigPath string
}

// Load loads configuration for the given working directory.
// Priority: environment variables > project config > user config > defaults.
func Load(workDir string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{WorkDir: workDir})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	userPath := opts.UserConfigPath
	if userPath == "" {
		userPath = userConfigPath()
	}
	if err := loadFileIfExists(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = filepath.Join(opts.WorkDir, ".changelog.yml")
	}
	if err := loadFileIfExists(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFileIfExists merges a YAML config file into k when it is present.
// A missing file is not an error; every config layer is optional.
func loadFileIfExists(k *koanf.Koanf, path, layer string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", layer, path, err)
	}
	return nil
}

// userConfigPath returns the XDG-compliant user config location.
func userConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "changelog", "config.yml")
}

// validate checks the loaded configuration values.
func validate(cfg *Configuration) error {
	if cfg.Filename == "" {
		return fmt.Errorf("config: filename cannot be empty")
	}
	switch cfg.InferBump {
	case "patch", "minor", "major":
	default:
		return fmt.Errorf("config: invalid infer_bump %q (expected: patch, minor or major)", cfg.InferBump)
	}
	if cfg.ListAmount < 1 {
		return fmt.Errorf("config: list_amount must be at least 1")
	}
	return nil
}
