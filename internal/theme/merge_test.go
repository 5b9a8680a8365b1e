package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/style"
)

func mergeFixtures() (*Theme, *Theme) {
	a := New("base",
		WithDescription("base description"),
		WithTags("one", "two"),
		WithStyles(map[string]style.Style{
			"error":  style.MustParse("bold red"),
			"hidden": style.MustParse("dim"),
		}),
	)
	b := New("other",
		WithDescription("other description"),
		WithTags("two", "three"),
		WithStyles(map[string]style.Style{
			"error":   style.MustParse("bold rgb(255,85,85)"),
			"warning": style.MustParse("bold yellow"),
		}),
	)
	return a, b
}

func TestUpdateOverwrite(t *testing.T) {
	a, b := mergeFixtures()
	a.Update(b, true)

	errorStyle, _ := a.Style("error")
	require.Equal(t, "bold rgb(255,85,85)", errorStyle.String())

	warning, ok := a.Style("warning")
	require.True(t, ok)
	require.Equal(t, "bold yellow", warning.String())

	hidden, _ := a.Style("hidden")
	require.Equal(t, "dim", hidden.String())

	require.Equal(t, "other description", a.Description())
	require.Equal(t, []string{"one", "two", "three"}, a.Tags())
	require.Equal(t, []string{"error", "hidden", "warning"}, a.StyleNames())
	require.Equal(t, "base", a.Name())
}

func TestUpdateNoOverwrite(t *testing.T) {
	a, b := mergeFixtures()
	a.Update(b, false)

	// A style the receiver already declares never changes.
	errorStyle, _ := a.Style("error")
	require.Equal(t, "bold red", errorStyle.String())

	// Novel styles are still pulled in.
	warning, ok := a.Style("warning")
	require.True(t, ok)
	require.Equal(t, "bold yellow", warning.String())

	// Description is replaced either way.
	require.Equal(t, "other description", a.Description())
}

func TestMergeInto(t *testing.T) {
	a, b := mergeFixtures()
	a.MergeInto(b)

	errorStyle, _ := a.Style("error")
	require.Equal(t, "bold rgb(255,85,85)", errorStyle.String())
	require.Equal(t, "other description", a.Description())
}

func TestUnionRightBias(t *testing.T) {
	a, b := mergeFixtures()
	a.SetPath("/themes/base.theme")
	union := a.Union(b)

	require.Equal(t, "base", union.Name())
	require.Equal(t, "other description", union.Description())
	require.Equal(t, "/themes/base.theme", union.Path())
	require.Equal(t, a.Inherit(), union.Inherit())

	// Overlapping names take the right operand's value.
	errorStyle, _ := union.Style("error")
	require.Equal(t, "bold rgb(255,85,85)", errorStyle.String())

	// Styles only in the left operand are preserved, only in the right
	// are added.
	hidden, ok := union.Style("hidden")
	require.True(t, ok)
	require.Equal(t, "dim", hidden.String())
	warning, ok := union.Style("warning")
	require.True(t, ok)
	require.Equal(t, "bold yellow", warning.String())

	require.Equal(t, []string{"one", "two", "three"}, union.Tags())

	// The operands are untouched.
	leftError, _ := a.Style("error")
	require.Equal(t, "bold red", leftError.String())
	require.Equal(t, "base description", a.Description())
}

func TestUnionSelfIsIdempotent(t *testing.T) {
	a, _ := mergeFixtures()
	require.True(t, a.Equal(a.Union(a)))
}

func TestUnionTagOrder(t *testing.T) {
	a := New("a", WithTags("z", "a"))
	b := New("b", WithTags("a", "m", "z", "q"))
	require.Equal(t, []string{"z", "a", "m", "q"}, a.Union(b).Tags())
}
