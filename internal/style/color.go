package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type colorMode uint8

const (
	colorUnset colorMode = iota
	colorNamed
	colorTrueColor
)

// Color is a foreground or background color: either one of the 16
// standard named colors or a truecolor value written as "#rrggbb" or
// "rgb(r,g,b)". The original token is preserved so descriptors
// round-trip byte for byte.
type Color struct {
	token   string
	r, g, b uint8
	ansi    uint8
	mode    colorMode
}

// namedColors maps the standard color names to ANSI numbers.
var namedColors = map[string]uint8{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"bright_black":   8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// ParseColor parses a single color token.
func ParseColor(token string) (Color, error) {
	if token == "" {
		return Color{}, fmt.Errorf("empty color token")
	}

	if ansi, ok := namedColors[strings.ToLower(token)]; ok {
		return Color{token: strings.ToLower(token), ansi: ansi, mode: colorNamed}, nil
	}

	if strings.HasPrefix(token, "#") {
		parsed, err := colorful.Hex(strings.ToLower(token))
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", token, err)
		}
		r, g, b := parsed.RGB255()
		return Color{token: strings.ToLower(token), r: r, g: g, b: b, mode: colorTrueColor}, nil
	}

	if strings.HasPrefix(token, "rgb(") && strings.HasSuffix(token, ")") {
		fields := strings.Split(token[4:len(token)-1], ",")
		if len(fields) != 3 {
			return Color{}, fmt.Errorf("invalid rgb color %q", token)
		}
		var channels [3]uint8
		for i, field := range fields {
			value, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || value < 0 || value > 255 {
				return Color{}, fmt.Errorf("invalid rgb color %q", token)
			}
			channels[i] = uint8(value)
		}
		return Color{token: token, r: channels[0], g: channels[1], b: channels[2], mode: colorTrueColor}, nil
	}

	return Color{}, fmt.Errorf("unknown color %q", token)
}

// IsSet reports whether the color holds a value.
func (c Color) IsSet() bool {
	return c.mode != colorUnset
}

// String returns the original color token, or "" when unset.
func (c Color) String() string {
	return c.token
}

// RGB returns the resolved color channels. Named colors resolve via
// the standard ANSI palette.
func (c Color) RGB() (r, g, b uint8) {
	if c.mode == colorNamed {
		hex := ansiPalette[c.ansi]
		parsed, err := colorful.Hex(hex)
		if err == nil {
			return parsed.RGB255()
		}
	}
	return c.r, c.g, c.b
}

// Lipgloss converts the color for the rendering collaborator.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	switch c.mode {
	case colorNamed:
		return lipgloss.Color(strconv.Itoa(int(c.ansi)))
	case colorTrueColor:
		r, g, b := c.RGB()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	default:
		return lipgloss.NoColor{}
	}
}

// ansiPalette holds reference hex values for the 16 standard colors,
// used only to resolve RGB for previews.
var ansiPalette = [16]string{
	"#000000", "#800000", "#008000", "#808000",
	"#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00",
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}
