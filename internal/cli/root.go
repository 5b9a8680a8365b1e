// Package cli implements the swatch command line interface, a thin
// presentation shell over the theme manager.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	flagThemeDir string
	flagVerbose  bool
	flagNoColor  bool

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:           "swatch",
	Short:         "Manage terminal presentation themes",
	Long:          "Swatch manages named presentation themes: mappings from semantic style names to colors and text attributes, persisted as editable .theme files.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		setupColor()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&flagThemeDir, "theme-dir", "", "theme directory (default ~/.config/swatch/themes)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	viper.BindPFlag("theme_dir", rootCmd.PersistentFlags().Lookup("theme-dir"))
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viper.AddConfigPath(home + "/.config/swatch")
	}
	viper.SetEnvPrefix("SWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; themes have built-in defaults.
	_ = viper.ReadInConfig()
}

func setupLogger() {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)
}

func setupColor() {
	if flagNoColor || !hasTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
