// Package cli provides theme management commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/theme"
)

var (
	listNoPath    bool
	previewSample string
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exampleCmd)

	listCmd.Flags().BoolVar(&listNoPath, "no-path", false, "hide theme file paths")
	previewCmd.Flags().StringVar(&previewSample, "sample", "", "sample text rendered in each style")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}
		return manager.ListThemes(os.Stdout, theme.ListOptions{ShowPath: !listNoPath})
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Preview a theme's styles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}
		selected, err := manager.Get(args[0])
		if err != nil {
			return err
		}
		return manager.PreviewTheme(os.Stdout, selected, previewSample, true)
	},
}

var configCmd = &cobra.Command{
	Use:   "config <theme>",
	Short: "Print a theme's config file contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()
		if err != nil {
			return err
		}
		selected, err := manager.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(selected.Config())
		return nil
	},
}

func newManager() (*theme.Manager, error) {
	dir, err := ensureThemeDir()
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("dir", dir).Msg("using theme directory")
	return theme.NewManager(logger, theme.Options{
		Dir:    dir,
		Themes: theme.BuiltinThemes(),
	})
}
