// Package theme manages named presentation themes: mappings from
// semantic style names ("error", "warning", "filename") to style
// descriptors, persisted one theme per file in a small section-based
// config format, with merge and directory reconciliation semantics.
package theme

import (
	"maps"
	"slices"
	"sort"

	"github.com/opencode-ai/swatch/internal/style"
)

// Theme is a named, taggable bundle of style declarations plus an
// optional on-disk location.
type Theme struct {
	name        string
	description string
	tags        []string

	// styleNames is the declared surface: the style names this theme
	// explicitly owns and serializes, as opposed to inherited defaults
	// that may also appear in styles.
	styleNames []string
	styles     map[string]style.Style

	inherit bool
	path    string
}

// Option configures a theme at construction time.
type Option func(*Theme)

// WithDescription sets the theme description.
func WithDescription(description string) Option {
	return func(t *Theme) { t.description = description }
}

// WithStyles sets the style mapping. The declared style names are
// captured as the keys of the mapping, sorted for determinism.
func WithStyles(styles map[string]style.Style) Option {
	return func(t *Theme) {
		t.styles = maps.Clone(styles)
		t.styleNames = slices.Collect(maps.Keys(styles))
		sort.Strings(t.styleNames)
	}
}

// WithTags sets the theme tags.
func WithTags(tags ...string) Option {
	return func(t *Theme) { t.tags = slices.Clone(tags) }
}

// WithPath sets the backing file path.
func WithPath(path string) Option {
	return func(t *Theme) { t.path = path }
}

// WithInherit controls whether unset style names fall back to a global
// default style set. Themes inherit by default.
func WithInherit(inherit bool) Option {
	return func(t *Theme) { t.inherit = inherit }
}

// New creates a theme.
func New(name string, opts ...Option) *Theme {
	t := &Theme{
		name:    name,
		styles:  make(map[string]style.Style),
		inherit: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the theme name, the unique key within a collection.
func (t *Theme) Name() string { return t.name }

// Description returns the free-text description.
func (t *Theme) Description() string { return t.description }

// Tags returns the theme tags in insertion order.
func (t *Theme) Tags() []string { return slices.Clone(t.tags) }

// StyleNames returns the declared style names in order.
func (t *Theme) StyleNames() []string { return slices.Clone(t.styleNames) }

// Styles returns the full style mapping, declared and inherited.
func (t *Theme) Styles() map[string]style.Style { return maps.Clone(t.styles) }

// Style looks up a single style by name.
func (t *Theme) Style(name string) (style.Style, bool) {
	s, ok := t.styles[name]
	return s, ok
}

// SetStyle sets a style and declares its name if not already declared.
func (t *Theme) SetStyle(name string, s style.Style) {
	t.styles[name] = s
	if !slices.Contains(t.styleNames, name) {
		t.styleNames = append(t.styleNames, name)
	}
}

// Inherit reports whether the theme inherits default styles.
func (t *Theme) Inherit() bool { return t.inherit }

// Path returns the backing file path, empty until assigned.
func (t *Theme) Path() string { return t.path }

// SetPath assigns the backing file path.
func (t *Theme) SetPath(path string) { t.path = path }

// SetDescription replaces the description.
func (t *Theme) SetDescription(description string) { t.description = description }

// Equal reports whether two themes match on name, description, full
// style mapping, inherit flag, and tag sequence. Path is not compared.
func (t *Theme) Equal(other *Theme) bool {
	if other == nil {
		return false
	}
	return t.name == other.name &&
		t.description == other.description &&
		maps.Equal(t.styles, other.styles) &&
		t.inherit == other.inherit &&
		slices.Equal(t.tags, other.tags)
}

// declares reports whether name is part of the declared surface.
func (t *Theme) declares(name string) bool {
	return slices.Contains(t.styleNames, name)
}
