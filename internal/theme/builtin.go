package theme

import "github.com/opencode-ai/swatch/internal/style"

// BuiltinThemes returns the themes bundled with swatch. A fresh set is
// built on every call since themes are mutated in place by merges.
func BuiltinThemes() []*Theme {
	return []*Theme{
		New("dark",
			WithDescription("Dark mode theme"),
			WithTags("dark"),
			WithStyles(map[string]style.Style{
				"hidden":    style.MustParse("dim #383b3d"),
				"error":     style.MustParse("bold rgb(255,85,85)"),
				"filename":  style.MustParse("bold rgb(189,147,249)"),
				"filepath":  style.MustParse("bold rgb(80,250,123)"),
				"highlight": style.MustParse("bold #000000 on #d73a49"),
				"num":       style.MustParse("bold rgb(139,233,253)"),
				"time":      style.MustParse("bold rgb(139,233,253)"),
				"warning":   style.MustParse("bold rgb(241,250,140)"),
			}),
		),
		New("light",
			WithDescription("Light mode theme"),
			WithStyles(map[string]style.Style{
				"hidden":    style.MustParse("dim #383b3d"),
				"error":     style.MustParse("bold italic underline #b31d28"),
				"filename":  style.MustParse("bold #6f42c1"),
				"filepath":  style.MustParse("bold #22863a"),
				"highlight": style.MustParse("bold #ffffff on #d73a49"),
				"num":       style.MustParse("bold #005cc5"),
				"time":      style.MustParse("bold #032f62"),
				"warning":   style.MustParse("bold italic underline #e36209"),
			}),
		),
		New("mono",
			WithDescription("Monochromatic theme"),
			WithTags("mono", "colorblind"),
			WithStyles(map[string]style.Style{
				"hidden":    style.MustParse("dim"),
				"error":     style.MustParse("reverse italic"),
				"filename":  style.MustParse("bold"),
				"filepath":  style.MustParse("bold underline"),
				"highlight": style.MustParse("reverse italic"),
				"num":       style.MustParse("bold"),
				"time":      style.MustParse("bold"),
				"warning":   style.MustParse("bold italic"),
			}),
		),
		New("plain",
			WithDescription("Plain theme with no colors"),
			WithTags("colorblind"),
			WithStyles(map[string]style.Style{
				"hidden":    {},
				"error":     {},
				"filename":  {},
				"filepath":  {},
				"highlight": {},
				"num":       {},
				"time":      {},
				"warning":   {},
			}),
		),
	}
}
