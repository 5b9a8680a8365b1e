package style

import (
	"fmt"
	"strings"
)

// Parse parses a style descriptor string. Descriptors are whitespace
// separated: attribute words ("bold", "dim", ...), "not <attribute>",
// a bare color token for the foreground, "on <color>" for the
// background, "link <url>", or "none" for the empty style.
func Parse(descriptor string) (Style, error) {
	var parsed Style

	words := strings.Fields(descriptor)
	for i := 0; i < len(words); i++ {
		word := words[i]

		switch word {
		case "none":
			continue

		case "not":
			i++
			if i >= len(words) {
				return Style{}, fmt.Errorf("parse style %q: expected attribute after %q", descriptor, "not")
			}
			flag, ok := attrFlag(&parsed, words[i])
			if !ok {
				return Style{}, fmt.Errorf("parse style %q: unknown attribute %q", descriptor, words[i])
			}
			*flag = false

		case "on":
			i++
			if i >= len(words) {
				return Style{}, fmt.Errorf("parse style %q: expected color after %q", descriptor, "on")
			}
			color, err := ParseColor(words[i])
			if err != nil {
				return Style{}, fmt.Errorf("parse style %q: %w", descriptor, err)
			}
			parsed.Background = color

		case "link":
			i++
			if i >= len(words) {
				return Style{}, fmt.Errorf("parse style %q: expected url after %q", descriptor, "link")
			}
			parsed.Link = words[i]

		default:
			if flag, ok := attrFlag(&parsed, word); ok {
				*flag = true
				continue
			}
			color, err := ParseColor(word)
			if err != nil {
				return Style{}, fmt.Errorf("parse style %q: %w", descriptor, err)
			}
			if parsed.Foreground.IsSet() {
				return Style{}, fmt.Errorf("parse style %q: unexpected second color %q", descriptor, word)
			}
			parsed.Foreground = color
		}
	}

	return parsed, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(descriptor string) Style {
	parsed, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return parsed
}

func attrFlag(s *Style, word string) (*bool, bool) {
	for _, attr := range attrWords {
		if attr.word == strings.ToLower(word) {
			return attr.flag(s), true
		}
	}
	return nil, false
}
