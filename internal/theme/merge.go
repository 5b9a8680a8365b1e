package theme

import (
	"slices"

	"github.com/opencode-ai/swatch/internal/style"
)

// Update copies other's declared styles into the receiver. When
// overwriteExisting is false, style names the receiver already declares
// keep their current value. Tags and declared names become the ordered
// union of the receiver's then other's; the description is always
// replaced by other's. Name and path are untouched.
func (t *Theme) Update(other *Theme, overwriteExisting bool) {
	for _, name := range other.styleNames {
		s, ok := other.styles[name]
		if !ok {
			continue
		}
		if !overwriteExisting && t.declares(name) {
			continue
		}
		t.styles[name] = s
	}
	t.tags = unionStrings(t.tags, other.tags)
	t.styleNames = unionStrings(t.styleNames, other.styleNames)
	t.description = other.description
}

// MergeInto merges other into the receiver, always taking other's
// value for styles both declare. Equivalent to Update with overwrite.
func (t *Theme) MergeInto(other *Theme) {
	t.Update(other, true)
}

// Union builds a new theme from the receiver's declared styles with
// other's declared styles merged on top. The result is right-biased:
// other wins on overlapping style names and supplies the description;
// name, inherit flag, and path come from the receiver.
func (t *Theme) Union(other *Theme) *Theme {
	styles := make(map[string]style.Style, len(t.styleNames)+len(other.styleNames))
	for _, name := range t.styleNames {
		if s, ok := t.styles[name]; ok {
			styles[name] = s
		}
	}
	for _, name := range other.styleNames {
		if s, ok := other.styles[name]; ok {
			styles[name] = s
		}
	}

	return &Theme{
		name:        t.name,
		description: other.description,
		tags:        unionStrings(t.tags, other.tags),
		styleNames:  unionStrings(t.styleNames, other.styleNames),
		styles:      styles,
		inherit:     t.inherit,
		path:        t.path,
	}
}

// unionStrings appends elements of b not already present in a,
// preserving first-seen order.
func unionStrings(a, b []string) []string {
	out := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
