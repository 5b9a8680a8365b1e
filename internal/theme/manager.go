package theme

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Manager owns a named collection of themes and reconciles it against
// a directory of persisted theme files. It assumes exclusive ownership
// of that directory for the life of the process; there is no locking.
type Manager struct {
	dir    string
	themes map[string]*Theme
	logger zerolog.Logger
}

// Options configure manager construction.
type Options struct {
	// Dir is the theme directory. Empty disables all disk interaction.
	Dir string

	// Themes seeds the in-memory collection; last wins on duplicate names.
	Themes []*Theme

	// Overwrite forces the in-memory themes over any files already in
	// Dir before loading, resetting user edits.
	Overwrite bool

	// Update field-merges loaded themes into in-memory ones of the same
	// name instead of replacing them wholesale, and rewrites the merged
	// result so new built-in styles reach user-customized files.
	Update bool
}

// NewManager builds a manager and reconciles it against Options.Dir.
//
// With Overwrite set, in-memory themes are written first and the
// directory loaded afterwards, picking up on-disk themes the seed set
// lacks. Otherwise the directory is loaded first, so persisted user
// edits take precedence, and only missing files are written. This way
// a first run creates the default files and later runs preserve edits
// without extra flags.
func NewManager(logger zerolog.Logger, opts Options) (*Manager, error) {
	m := &Manager{
		dir:    opts.Dir,
		themes: make(map[string]*Theme, len(opts.Themes)),
		logger: logger,
	}
	for _, t := range opts.Themes {
		m.themes[t.Name()] = t
	}

	if m.dir == "" {
		return m, nil
	}

	for _, t := range m.themes {
		t.SetPath(m.themePath(t.Name()))
	}

	if opts.Overwrite {
		if err := m.WriteThemes(true); err != nil {
			return nil, err
		}
		if err := m.LoadThemes("", opts.Update); err != nil {
			return nil, err
		}
	} else {
		if err := m.LoadThemes("", opts.Update); err != nil {
			return nil, err
		}
		if err := m.WriteThemes(opts.Update); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Dir returns the configured theme directory.
func (m *Manager) Dir() string { return m.dir }

// Themes returns the managed themes sorted by name.
func (m *Manager) Themes() []*Theme {
	themes := make([]*Theme, 0, len(m.themes))
	for _, t := range m.themes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool {
		return themes[i].Name() < themes[j].Name()
	})
	return themes
}

// Get looks up a theme by name.
func (m *Manager) Get(name string) (*Theme, error) {
	t, ok := m.themes[name]
	if !ok {
		return nil, fmt.Errorf("theme %s: %w", name, ErrThemeNotFound)
	}
	return t, nil
}

// Add inserts a theme into the collection. A theme without a path is
// assigned one under the manager's directory, and the theme file is
// written when overwrite is requested or nothing exists at its path.
func (m *Manager) Add(t *Theme, overwrite bool) error {
	if m.dir != "" && t.Path() == "" {
		t.SetPath(m.themePath(t.Name()))
	}
	if (m.dir != "" && overwrite) || (t.Path() != "" && !fileExists(t.Path())) {
		if err := t.Save(overwrite); err != nil {
			return err
		}
		m.logger.Debug().Str("theme", t.Name()).Str("path", t.Path()).Msg("wrote theme file")
	}
	m.themes[t.Name()] = t
	return nil
}

// Remove deletes the theme's backing file, if any, and drops it from
// the collection.
func (m *Manager) Remove(t *Theme) error {
	if _, ok := m.themes[t.Name()]; !ok {
		return fmt.Errorf("theme %s: %w", t.Name(), ErrThemeNotFound)
	}
	if path := t.Path(); path != "" && fileExists(path) {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove theme %s: %w", t.Name(), err)
		}
	}
	delete(m.themes, t.Name())
	return nil
}

// LoadThemes scans dir (the manager's directory when empty) for theme
// files and inserts them into the collection. A missing or empty
// directory yields zero themes, not an error. With update set, a theme
// already in memory keeps its identity and its declared styles; novel
// styles, tags, and the description from the file are merged into it.
// Without update the freshly parsed theme replaces the entry.
func (m *Manager) LoadThemes(dir string, update bool) error {
	if dir == "" {
		dir = m.dir
	}
	if dir == "" {
		return ErrNoDirectory
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read theme dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		loaded, err := Read(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if existing, ok := m.themes[loaded.Name()]; ok && update {
			existing.Update(loaded, false)
			m.logger.Debug().Str("theme", loaded.Name()).Msg("merged theme from disk")
			continue
		}
		m.themes[loaded.Name()] = loaded
		m.logger.Debug().Str("theme", loaded.Name()).Str("path", loaded.Path()).Msg("loaded theme")
	}

	return nil
}

// WriteThemes persists every managed theme, skipping files that already
// exist unless overwrite is set. A theme without a path is an error.
func (m *Manager) WriteThemes(overwrite bool) error {
	for _, t := range m.Themes() {
		if t.Path() == "" {
			return fmt.Errorf("theme %s: %w", t.Name(), ErrNoPath)
		}
		if overwrite || !fileExists(t.Path()) {
			if err := t.Save(overwrite); err != nil {
				return err
			}
			m.logger.Debug().Str("theme", t.Name()).Str("path", t.Path()).Msg("wrote theme file")
		}
	}
	return nil
}

// ListOptions configure ListThemes output.
type ListOptions struct {
	// ShowPath adds a Path column.
	ShowPath bool
	// Names filters the listing; empty lists every theme.
	Names []string
}

// ListThemes writes a table of themes to out.
func (m *Manager) ListThemes(out io.Writer, opts ListOptions) error {
	headers := []string{"Theme", "Description", "Tags"}
	if opts.ShowPath {
		headers = append(headers, "Path")
	}

	rows := make([][]string, 0, len(m.themes))
	for _, t := range m.Themes() {
		if len(opts.Names) > 0 && !containsString(opts.Names, t.Name()) {
			continue
		}
		row := []string{t.Name(), t.Description(), strings.Join(t.Tags(), ", ")}
		if opts.ShowPath {
			row = append(row, t.Path())
		}
		rows = append(rows, row)
	}

	return writeTable(out, headers, rows)
}

// PreviewTheme writes the theme's preview to out.
func (m *Manager) PreviewTheme(out io.Writer, t *Theme, sampleText string, showPath bool) error {
	_, err := io.WriteString(out, t.Preview(PreviewOptions{SampleText: sampleText, ShowPath: showPath}))
	return err
}

func (m *Manager) themePath(name string) string {
	return filepath.Join(m.dir, name+FileExt)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
