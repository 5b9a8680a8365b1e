// Package cli provides the styled example output command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/theme"
)

var exampleCmd = &cobra.Command{
	Use:   "example [theme]",
	Short: "Show example output rendered with a theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}

		name := "dark"
		if len(args) > 0 {
			name = args[0]
		}
		selected, err := manager.Get(name)
		if err != nil {
			return err
		}
		printExample(os.Stdout, selected)
		return nil
	},
}

func printExample(out io.Writer, t *theme.Theme) {
	render := func(name, text string) string {
		if s, ok := t.Style(name); ok {
			return s.Lipgloss().Render(text)
		}
		return text
	}

	fmt.Fprintln(out, "The following shows examples of how themed styles render your text.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "This is an example filepath: %s\n", render("filepath", "/usr/local/bin/swatch"))
	fmt.Fprintf(out, "This is an example filename: %s\n", render("filename", "swatch"))
	fmt.Fprintf(out, "This is an example of a hidden filename: %s\n", render("hidden", ".zshrc"))
	fmt.Fprintf(out, "This is an example of a warning: %s\n", render("warning", "I've giv'n her all she's got captain, an' I canna give her no more."))
	fmt.Fprintf(out, "This is an example of an error: %s\n", render("error", "I'm sorry, Dave. I'm afraid I can't do that."))
	fmt.Fprintf(out, "This is an example of a highlight: %s\n", render("highlight", "foo"))
	fmt.Fprintf(out, "This is an example of a number: %s\n", render("num", "42"))
	fmt.Fprintf(out, "This is an example of a time: %s\n", render("time", "12:34"))
}
