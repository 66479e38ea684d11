// Package config loads sweep configuration from
// ~/.config/sweep/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultGraphLimit is the number of recent commits shown in the
// status commit graph.
const DefaultGraphLimit = 7

// Config holds the sweep configuration.
type Config struct {
	TrashDir   string `toml:"trash_dir"`   // where trashed files go
	GraphLimit int    `toml:"graph_limit"` // commits shown in the status graph
	Theme      string `toml:"theme"`       // color theme name
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		TrashDir:   "~/.local/share/sweep/trash",
		GraphLimit: DefaultGraphLimit,
		Theme:      "default",
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error if the path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if len(path) >= 1 && path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sweep", "config.toml"), nil
}

// Load reads config from ~/.config/sweep/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path with the same missing-file
// tolerance as Load.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.TrashDir, "trash_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in trash_dir (the shell doesn't expand inside config files)
	if cfg.TrashDir != "" {
		expanded, err := ExpandPath(cfg.TrashDir)
		if err != nil {
			return Default(), fmt.Errorf("expand trash_dir: %w", err)
		}
		cfg.TrashDir = expanded
	}

	if cfg.GraphLimit <= 0 {
		return Default(), fmt.Errorf("invalid graph_limit %d: must be positive", cfg.GraphLimit)
	}

	return cfg, nil
}

// DefaultFileContent is the content written by `sweep config init`.
const DefaultFileContent = `# sweep configuration

# Directory that holds trashed files.
# Must be absolute or start with ~.
trash_dir = "~/.local/share/sweep/trash"

# Number of recent commits shown in the status commit graph.
graph_limit = 7

# Color theme: "default" or "dracula".
theme = "default"
`

// Init writes the default config file. Refuses to overwrite an existing
// file unless force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultFileContent), 0644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
