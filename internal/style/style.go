// Package style implements the text style descriptor used by themes: a
// set of boolean attributes, optional foreground/background colors, and
// an optional hyperlink target, round-trippable through a compact
// string form such as "bold rgb(255,85,85)" or "dim #383b3d on #1c1c1c".
package style

import "strings"

// Style describes how a piece of text is rendered.
type Style struct {
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
	Underline2 bool
	Blink      bool
	Blink2     bool
	Reverse    bool
	Conceal    bool
	Strike     bool
	Frame      bool
	Encircle   bool
	Overline   bool

	Foreground Color
	Background Color

	// Link is an optional hyperlink target.
	Link string
}

// attrWords maps descriptor words to flag setters, in canonical order.
var attrWords = []struct {
	word string
	flag func(*Style) *bool
}{
	{"bold", func(s *Style) *bool { return &s.Bold }},
	{"dim", func(s *Style) *bool { return &s.Dim }},
	{"italic", func(s *Style) *bool { return &s.Italic }},
	{"underline", func(s *Style) *bool { return &s.Underline }},
	{"underline2", func(s *Style) *bool { return &s.Underline2 }},
	{"blink", func(s *Style) *bool { return &s.Blink }},
	{"blink2", func(s *Style) *bool { return &s.Blink2 }},
	{"reverse", func(s *Style) *bool { return &s.Reverse }},
	{"conceal", func(s *Style) *bool { return &s.Conceal }},
	{"strike", func(s *Style) *bool { return &s.Strike }},
	{"frame", func(s *Style) *bool { return &s.Frame }},
	{"encircle", func(s *Style) *bool { return &s.Encircle }},
	{"overline", func(s *Style) *bool { return &s.Overline }},
}

// IsZero reports whether the style sets nothing at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Equal reports whether two styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// String returns the canonical descriptor form. Parse(s.String())
// reconstructs an equal style; the zero style renders as "none".
func (s Style) String() string {
	if s.IsZero() {
		return "none"
	}

	parts := make([]string, 0, 4)
	for _, attr := range attrWords {
		if *attr.flag(&s) {
			parts = append(parts, attr.word)
		}
	}
	if s.Foreground.IsSet() {
		parts = append(parts, s.Foreground.String())
	}
	if s.Background.IsSet() {
		parts = append(parts, "on", s.Background.String())
	}
	if s.Link != "" {
		parts = append(parts, "link", s.Link)
	}
	return strings.Join(parts, " ")
}

// Attributes returns the fixed 14-character flag string used by theme
// previews: one letter per set attribute, a dash otherwise, in the
// order bold, dim, italic, underline, double-underline, blink, blink2,
// reverse, conceal, strike, frame, encircle, overline, link.
func (s Style) Attributes() string {
	flags := []struct {
		letter string
		set    bool
	}{
		{"b", s.Bold},
		{"d", s.Dim},
		{"i", s.Italic},
		{"u", s.Underline},
		{"U", s.Underline2},
		{"B", s.Blink},
		{"2", s.Blink2},
		{"r", s.Reverse},
		{"c", s.Conceal},
		{"s", s.Strike},
		{"f", s.Frame},
		{"e", s.Encircle},
		{"o", s.Overline},
		{"L", s.Link != ""},
	}

	var b strings.Builder
	for _, flag := range flags {
		if flag.set {
			b.WriteString(flag.letter)
		} else {
			b.WriteString("-")
		}
	}
	return b.String()
}
