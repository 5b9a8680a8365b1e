package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/style"
)

func newDarkTheme() *Theme {
	return New("dark",
		WithDescription("Dark mode theme"),
		WithTags("dark"),
		WithStyles(map[string]style.Style{
			"hidden": style.MustParse("dim #383b3d"),
			"error":  style.MustParse("bold rgb(255,85,85)"),
		}),
	)
}

func TestNewDefaults(t *testing.T) {
	theme := New("empty")
	require.Equal(t, "empty", theme.Name())
	require.Empty(t, theme.Description())
	require.Empty(t, theme.Tags())
	require.Empty(t, theme.StyleNames())
	require.True(t, theme.Inherit())
	require.Empty(t, theme.Path())
}

func TestNewCapturesDeclaredNames(t *testing.T) {
	theme := newDarkTheme()
	require.Equal(t, []string{"error", "hidden"}, theme.StyleNames())
}

func TestConfigRoundTrip(t *testing.T) {
	theme := newDarkTheme()

	parsed, err := FromConfig([]byte(theme.Config()), "", false)
	require.NoError(t, err)
	require.True(t, theme.Equal(parsed), "round-tripped theme differs")

	// The re-parsed config must carry the original tags and the
	// canonical descriptor form of the gray hidden style.
	config := parsed.Config()
	require.Contains(t, config, "tags = dark")
	hidden, ok := parsed.Style("hidden")
	require.True(t, ok)
	require.Equal(t, style.MustParse("dim #383b3d").String(), hidden.String())
}

func TestConfigSortsStyles(t *testing.T) {
	theme := newDarkTheme()
	config := theme.Config()
	require.Less(t, strings.Index(config, "error ="), strings.Index(config, "hidden ="))
}

func TestConfigSkipsUndeclaredStyles(t *testing.T) {
	theme := newDarkTheme()
	// Simulate an inherited style present in the mapping but not
	// declared by this theme.
	theme.styles["inherited"] = style.MustParse("bold")
	require.NotContains(t, theme.Config(), "inherited")
}

func TestConfigSkipsUnresolvableDeclaredNames(t *testing.T) {
	theme := newDarkTheme()
	theme.styleNames = append(theme.styleNames, "ghost")
	require.NotContains(t, theme.Config(), "ghost")
}

func TestFromConfigInherit(t *testing.T) {
	on := New("t", WithInherit(true)).Config()
	off := New("t", WithInherit(false)).Config()
	require.Contains(t, on, "inherit = True")
	require.Contains(t, off, "inherit = False")

	// Requested inherit always wins; the file can only turn it on.
	parsed, err := FromConfig([]byte(off), "", true)
	require.NoError(t, err)
	require.True(t, parsed.Inherit())

	parsed, err = FromConfig([]byte(on), "", false)
	require.NoError(t, err)
	require.True(t, parsed.Inherit())

	parsed, err = FromConfig([]byte(off), "", false)
	require.NoError(t, err)
	require.False(t, parsed.Inherit())
}

func TestFromConfigRequiresName(t *testing.T) {
	_, err := FromConfig([]byte("[metadata]\ndescription = x\n\n[styles]\n"), "", true)
	require.Error(t, err)
}

func TestFromConfigEmptyTags(t *testing.T) {
	theme := New("bare", WithStyles(map[string]style.Style{"a": style.MustParse("bold")}))
	parsed, err := FromConfig([]byte(theme.Config()), "", false)
	require.NoError(t, err)
	require.Empty(t, parsed.Tags())
}

func TestFromConfigTrimsTags(t *testing.T) {
	config := "[metadata]\nname = x\ntags = one,  two , three\n\n[styles]\n"
	parsed, err := FromConfig([]byte(config), "", false)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, parsed.Tags())
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	theme := newDarkTheme()
	theme.SetPath(filepath.Join(dir, "dark.theme"))

	require.NoError(t, theme.Save(false))
	require.FileExists(t, theme.Path())

	err := theme.Save(false)
	require.ErrorIs(t, err, ErrThemeExists)

	require.NoError(t, theme.Save(true))
}

func TestSaveNoPath(t *testing.T) {
	err := newDarkTheme().Save(false)
	require.ErrorIs(t, err, ErrNoPath)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark.theme")

	theme := newDarkTheme()
	theme.SetPath(path)
	require.NoError(t, theme.Save(false))

	edited := New("dark",
		WithDescription("edited on disk"),
		WithTags("dark", "edited"),
		WithStyles(map[string]style.Style{"hidden": style.MustParse("dim")}),
	)
	require.NoError(t, edited.ToFile(path))

	require.NoError(t, theme.Load())
	require.Equal(t, "edited on disk", theme.Description())
	require.Equal(t, []string{"dark", "edited"}, theme.Tags())
	require.Equal(t, []string{"hidden"}, theme.StyleNames())
	hidden, ok := theme.Style("hidden")
	require.True(t, ok)
	require.Equal(t, "dim", hidden.String())
}

func TestLoadErrors(t *testing.T) {
	theme := newDarkTheme()
	require.ErrorIs(t, theme.Load(), ErrNoPath)

	theme.SetPath(filepath.Join(t.TempDir(), "missing.theme"))
	require.ErrorIs(t, theme.Load(), ErrThemeFileNotFound)
}

func TestReadBadStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.theme")
	config := "[metadata]\nname = bad\n\n[styles]\nerror = sparkly\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sparkly")
}

func TestEqual(t *testing.T) {
	a := newDarkTheme()
	b := newDarkTheme()
	require.True(t, a.Equal(b))

	// Path differences do not affect equality.
	b.SetPath("/somewhere/dark.theme")
	require.True(t, a.Equal(b))

	b.SetDescription("different")
	require.False(t, a.Equal(b))

	c := newDarkTheme()
	c.SetStyle("error", style.MustParse("bold red"))
	require.False(t, a.Equal(c))

	require.False(t, a.Equal(nil))
}
