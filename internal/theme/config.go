package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/opencode-ai/swatch/internal/style"
)

// FileExt is the filename extension for persisted themes.
const FileExt = ".theme"

// Config renders the theme in its on-disk form: a [metadata] section
// with name, description, comma-joined tags, and the inherit flag,
// followed by a [styles] section with one line per declared style name
// in alphabetical order. Declared names with no resolvable style are
// skipped.
func (t *Theme) Config() string {
	var b strings.Builder

	b.WriteString("[metadata]\n")
	fmt.Fprintf(&b, "name = %s\n", t.name)
	fmt.Fprintf(&b, "description = %s\n", t.description)
	fmt.Fprintf(&b, "tags = %s\n", strings.Join(t.tags, ", "))
	fmt.Fprintf(&b, "inherit = %s\n", formatBool(t.inherit))

	b.WriteString("\n[styles]\n")
	names := slicesSorted(t.styleNames)
	for _, name := range names {
		s, ok := t.styles[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s = %s\n", name, s.String())
	}

	return b.String()
}

// FromConfig parses a theme from its config form. source becomes the
// theme path; inherit is ORed with the stored flag, so a caller
// requesting inheritance always wins while the file can still opt in.
func FromConfig(data []byte, source string, inherit bool) (*Theme, error) {
	// Inline comment handling is off so hex colors like #383b3d survive.
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse theme config: %w", err)
	}

	meta, err := file.GetSection("metadata")
	if err != nil {
		return nil, fmt.Errorf("parse theme config: missing [metadata] section")
	}
	name := strings.TrimSpace(meta.Key("name").String())
	if name == "" {
		return nil, fmt.Errorf("parse theme config: theme name is required")
	}

	stylesSec, err := file.GetSection("styles")
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: missing [styles] section", name)
	}

	t := &Theme{
		name:        name,
		description: meta.Key("description").String(),
		tags:        splitTags(meta.Key("tags").String()),
		inherit:     inherit || parseBool(meta.Key("inherit").String()),
		styles:      make(map[string]style.Style),
		path:        source,
	}
	for _, key := range stylesSec.Keys() {
		parsed, err := style.Parse(key.Value())
		if err != nil {
			return nil, fmt.Errorf("parse theme %s: style %q: %w", name, key.Name(), err)
		}
		t.styles[key.Name()] = parsed
		t.styleNames = append(t.styleNames, key.Name())
	}

	return t, nil
}

// Read loads a theme from a config file.
func Read(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	return FromConfig(data, path, true)
}

// ToFile writes the theme config to path, replacing any existing file.
func (t *Theme) ToFile(path string) error {
	if err := os.WriteFile(path, []byte(t.Config()), 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", t.name, err)
	}
	return nil
}

// Save writes the theme to its path. It refuses to replace an existing
// file unless overwrite is set.
func (t *Theme) Save(overwrite bool) error {
	if t.path == "" {
		return fmt.Errorf("theme %s: %w", t.name, ErrNoPath)
	}
	if !overwrite {
		if _, err := os.Stat(t.path); err == nil {
			return fmt.Errorf("theme %s at %s: %w", t.name, t.path, ErrThemeExists)
		}
	}
	return t.ToFile(t.path)
}

// Load re-reads the theme from its path, replacing the in-memory name,
// description, styles, declared names, inherit flag, tags, and path
// with the persisted values.
func (t *Theme) Load() error {
	if t.path == "" {
		return fmt.Errorf("theme %s: %w", t.name, ErrNoPath)
	}
	if _, err := os.Stat(t.path); os.IsNotExist(err) {
		return fmt.Errorf("theme %s at %s: %w", t.name, t.path, ErrThemeFileNotFound)
	}

	loaded, err := Read(t.path)
	if err != nil {
		return err
	}
	t.name = loaded.name
	t.description = loaded.description
	t.tags = loaded.tags
	t.styleNames = loaded.styleNames
	t.styles = loaded.styles
	t.inherit = loaded.inherit
	t.path = loaded.path
	return nil
}

func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	fields := strings.Split(value, ",")
	tags := make([]string, 0, len(fields))
	for _, field := range fields {
		if tag := strings.TrimSpace(field); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func formatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}

func slicesSorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
