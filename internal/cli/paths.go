// Package cli provides theme directory resolution.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultThemeDir returns the default theme directory under the user's
// config directory.
func DefaultThemeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "swatch", "themes")
}

// resolveThemeDir picks the theme directory: the --theme-dir flag,
// then SWATCH_THEME_DIR or the config file, then the default.
func resolveThemeDir() string {
	if flagThemeDir != "" {
		return flagThemeDir
	}
	if dir := viper.GetString("theme_dir"); dir != "" {
		return dir
	}
	return DefaultThemeDir()
}

// ensureThemeDir resolves the theme directory and creates it if needed.
func ensureThemeDir() (string, error) {
	dir := resolveThemeDir()
	if dir == "" {
		return "", fmt.Errorf("cannot determine theme directory; set --theme-dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create theme dir %s: %w", dir, err)
	}
	return dir, nil
}
