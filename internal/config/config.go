// ABOUTME: Diary configuration loading from TOML files
// ABOUTME: Walks directory tree for .diary.toml and resolves file paths
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

const (
	// ProjectFile is the per-directory config file name.
	ProjectFile = ".diary.toml"

	// DataFileName is the diary file created next to the executable by default.
	DataFileName = "diary.txt"
)

type Config struct {
	DataFile    string `toml:"data_file"`
	Locale      string `toml:"locale"`
	Color       bool   `toml:"color"`
	ClearScreen bool   `toml:"clear_screen"`
	HistoryFile string `toml:"history_file"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Locale:      "en",
		Color:       true,
		ClearScreen: true,
	}
}

// FindProjectRoot walks up from dir looking for .diary.toml
// Returns empty string if not found
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	current := absDir
	for {
		if _, err := os.Stat(filepath.Join(current, ProjectFile)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || current == homeDir {
			return "", nil
		}

		current = parent
	}
}

// LoadFile loads a TOML config from path on top of the defaults
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Source = path

	return cfg, nil
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() string {
	return filepath.Join(GetConfigHome(), "diary", "config.toml")
}

// Resolve picks the config to use: an explicit path, then the nearest
// .diary.toml above cwd, then the user config, then the defaults.
func Resolve(explicit, cwd string) (*Config, error) {
	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return nil, err
		}
		return LoadFile(path)
	}

	if cwd != "" {
		root, err := FindProjectRoot(cwd)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", ProjectFile, err)
		}
		if root != "" {
			return LoadFile(filepath.Join(root, ProjectFile))
		}
	}

	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		return LoadFile(userPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return Default(), nil
}

// DataPath returns the diary file location. Without data_file it is
// diary.txt in the executable's directory.
func (c *Config) DataPath() (string, error) {
	if c.DataFile == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		return filepath.Join(filepath.Dir(exe), DataFileName), nil
	}
	return c.resolvePath(c.DataFile)
}

// HistoryPath returns the readline history file, or empty when disabled.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile == "" {
		return "", nil
	}
	return c.resolvePath(c.HistoryFile)
}

// LogPath returns the diagnostic log file, or empty when logging is off.
func (c *Config) LogPath() (string, error) {
	if c.LogLevel == "" {
		return "", nil
	}
	if c.LogFile == "" {
		return filepath.Join(GetStateHome(), "diary", "diary.log"), nil
	}
	return c.resolvePath(c.LogFile)
}

// resolvePath expands ~ and anchors relative paths at the config file's directory.
func (c *Config) resolvePath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(expanded) || c.Source == "" {
		return expanded, nil
	}
	return filepath.Join(filepath.Dir(c.Source), expanded), nil
}
