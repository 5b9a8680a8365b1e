package theme

import "errors"

// Theme errors.
var (
	// ErrThemeNotFound is returned when a theme name is not in the collection.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrNoPath is returned when an operation needs a path and the theme has none.
	ErrNoPath = errors.New("theme has no path")
	// ErrThemeExists is returned by Save when the target file exists and overwrite was not requested.
	ErrThemeExists = errors.New("theme file already exists")
	// ErrThemeFileNotFound is returned by Load when the backing file is missing.
	ErrThemeFileNotFound = errors.New("theme file not found")
	// ErrNoDirectory is returned by LoadThemes when no directory is available.
	ErrNoDirectory = errors.New("no theme directory")
)
