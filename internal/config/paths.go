package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/bumpgen/config.yml
// - macOS: ~/Library/Application Support/bumpgen/config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "bumpgen", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .bumpgen/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".bumpgen", "config.yml")
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file, kept readable during migration.
func LegacyProjectConfigPath() string {
	return filepath.Join(".bumpgen", "config.json")
}
