package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/style"
)

// SampleText is the default sample rendered in theme previews.
const SampleText = "The quick brown fox..."

const swatchWidth = 5

// noneSentinel marks an absent color in preview output.
const noneSentinel = "None"

var (
	previewTitleStyle  = lipgloss.NewStyle().Bold(true)
	previewLegendStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1)
	legendKeyStyle = lipgloss.NewStyle().Bold(true)
)

// PreviewOptions configure theme preview rendering.
type PreviewOptions struct {
	// SampleText overrides SampleText when non-empty.
	SampleText string
	// ShowPath appends the backing file path to the preview title.
	ShowPath bool
}

// Preview renders a tabular listing of the theme's declared styles —
// name, foreground, swatch, background, swatch, attribute flags, and a
// sample rendered in the style — followed by an attribute legend.
func (t *Theme) Preview(opts PreviewOptions) string {
	sample := opts.SampleText
	if sample == "" {
		sample = SampleText
	}

	title := "Theme: " + t.name
	if opts.ShowPath && t.path != "" {
		title += " - " + t.path
	}

	headers := []string{"style", "color", "", "bgcolor", "", "attributes", "example"}
	rows := make([][]string, 0, len(t.styleNames))
	for _, name := range t.styleNames {
		s, ok := t.styles[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			name,
			colorLabel(s.Foreground),
			swatch(s.Foreground),
			colorLabel(s.Background),
			swatch(s.Background),
			s.Attributes(),
			s.Lipgloss().Render(sample),
		})
	}

	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(title))
	b.WriteString("\n")
	// tabwriter misaligns on failure only if the writer errors, which a
	// strings.Builder never does.
	_ = writeTable(&b, headers, rows)
	b.WriteString(legend())
	b.WriteString("\n")
	return b.String()
}

func colorLabel(c style.Color) string {
	if !c.IsSet() {
		return noneSentinel
	}
	return c.String()
}

func swatch(c style.Color) string {
	if !c.IsSet() {
		return strings.Repeat(" ", swatchWidth)
	}
	bar := strings.Repeat("█", swatchWidth)
	return lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(bar)
}

func legend() string {
	entries := [][2]string{
		{"b", "bold"}, {"d", "dim"}, {"i", "italic"}, {"u", "underline"},
		{"U", "double underline"}, {"B", "blink"}, {"2", "blink2"},
		{"r", "reverse"}, {"c", "conceal"}, {"s", "strike"},
		{"f", "frame"}, {"e", "encircle"}, {"o", "overline"}, {"L", "link"},
	}

	lines := make([]string, 2)
	for i, entry := range entries {
		part := legendKeyStyle.Render(entry[0]) + ": " + entry[1]
		row := i / 7
		if lines[row] != "" {
			lines[row] += ", "
		}
		lines[row] += part
	}

	return previewLegendStyle.Render("attributes legend\n" + strings.Join(lines, "\n"))
}
