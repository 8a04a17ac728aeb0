// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves config and state directories with fallbacks
package config

import (
	"os"
	"path/filepath"
)

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// GetStateHome returns XDG_STATE_HOME or fallback to ~/.local/state
func GetStateHome() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".local", "state")
}
