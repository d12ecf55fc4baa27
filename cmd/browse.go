package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/settings"
	"github.com/s0up4200/marquee/tui"
)

// errNoTerminal is returned when the browser is started without an interactive terminal
var errNoTerminal = errors.New("the interactive browser needs a terminal; use search, title or contributor instead")

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Open the interactive browser",
	Long: `Open the interactive browser, optionally at a path such as /movie/42 or /contributor/7.
Paths that do not name a screen open the home screen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return errNoTerminal
	}

	store, err := settings.NewFileStore(afero.NewOsFs(), cfg.UI.SettingsFile)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}

	tuiLogger, closer := setupTUILogger(cfg.Logging)
	defer closer.Close()

	route := "/"
	if len(args) == 1 {
		route = args[0]
	}

	model := tui.New(tui.Options{
		Context:       cmd.Context(),
		API:           client,
		Store:         store,
		Logger:        tuiLogger,
		LookaheadRows: cfg.UI.LookaheadRows,
		Route:         route,
	})

	tuiLogger.Info().Str("route", route).Str("catalog", client.BaseURL()).Msg("Starting browser")

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
