package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/settings"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:       "theme [toggle|light|dark]",
	Short:     "Show or change the stored theme",
	Long:      `Without an argument the stored theme is printed. The browser reads it on startup.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle", "light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.NewFileStore(afero.NewOsFs(), cfg.UI.SettingsFile)
		if err != nil {
			return fmt.Errorf("failed to open settings: %w", err)
		}

		theme, err := applyTheme(store, args)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
		return nil
	},
}

// applyTheme reads, toggles or sets the stored theme depending on args
func applyTheme(store settings.Store, args []string) (settings.Theme, error) {
	if len(args) == 0 {
		return settings.LoadTheme(store), nil
	}

	if args[0] == "toggle" {
		return settings.ToggleTheme(store)
	}

	theme, err := settings.ParseTheme(args[0])
	if err != nil {
		return settings.ThemeLight, err
	}
	return theme, settings.SaveTheme(store, theme)
}
