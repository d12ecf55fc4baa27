package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *catalog.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse a movie catalog from the terminal",
	Long: `marquee is a terminal browser for a movie catalog API. Without a subcommand it
opens the interactive browser; the other commands print catalog data for scripts.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeApp,
	RunE:              runBrowse,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// SetVersion sets the version reported by --version
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(contributorCmd)
	rootCmd.AddCommand(genresCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the catalog client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	opts := []catalog.Option{catalog.WithTimeout(cfg.Catalog.Timeout)}
	if cfg.Catalog.UserAgent != "" {
		opts = append(opts, catalog.WithUserAgent(cfg.Catalog.UserAgent))
	}

	client, err = catalog.NewClient(cfg.Catalog.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	logger.Debug().Str("url", client.BaseURL()).Msg("Catalog client ready")
	return nil
}

// parseLevel maps a configured level name onto zerolog, defaulting to info
func parseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// setupLogger configures the zerolog logger used by the commands
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// setupTUILogger returns the logger for the interactive browser. The terminal belongs
// to the UI, so logs go to the rotated log file or nowhere.
func setupTUILogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer) {
	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	return zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger(), w
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the catalog API",
	Long:  `Test the connection to the catalog API by requesting the genre options and the first browse page.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to catalog at %s...\n", client.BaseURL())

	stats, err := probe(cmd.Context(), client)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	fmt.Fprintf(out, "\nCatalog Statistics:\n")
	fmt.Fprintf(out, "- Genres: %d\n", stats.genres)
	fmt.Fprintf(out, "- Titles on the first page: %d\n", stats.titles)
	return nil
}

type probeStats struct {
	genres int
	titles int
}

// probe requests the genre options and the first browse page concurrently
func probe(ctx context.Context, api browse.Fetcher) (probeStats, error) {
	var stats probeStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		genres, err := api.BrowseGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}
		stats.genres = len(genres)
		return nil
	})
	g.Go(func() error {
		page, err := api.BrowseTitles(ctx, catalog.BrowseQuery{PageSize: browse.DefaultPageSize})
		if err != nil {
			return fmt.Errorf("failed to get titles: %w", err)
		}
		stats.titles = len(page.Results)
		return nil
	})

	if err := g.Wait(); err != nil {
		return probeStats{}, err
	}
	return stats, nil
}
