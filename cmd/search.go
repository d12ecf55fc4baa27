package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/filter"
)

var (
	searchYear    int
	searchGenre   int
	searchPages   int
	searchWhere   string
	searchDetails bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the catalog and print matching titles",
	Long: `Search the catalog by text with optional release year and genre filters.
Without text the first browse page is printed and the filters do not apply.

The --where expression is evaluated locally against each result, for example:
  marquee search alien --pages 0 --where 'HasYear && Year < 1990'
  marquee search alien --where 'prefixFold(Title, "alien")'

Helpers: containsFold, prefixFold, suffixFold (case-insensitive), lower, upper,
between(value, low, high).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchYear, "year", "y", 0, "release year filter")
	searchCmd.Flags().IntVarP(&searchGenre, "genre", "g", 0, "genre id filter (see the genres command)")
	searchCmd.Flags().IntVarP(&searchPages, "pages", "n", 1, "number of pages to fetch, 0 for all")
	searchCmd.Flags().StringVarP(&searchWhere, "where", "w", "", "filter expression applied to the results")
	searchCmd.Flags().BoolVar(&searchDetails, "details", false, "show ids, media type and references")
}

// searchOptions describes one CLI search
type searchOptions struct {
	Text        string
	ReleaseYear int
	GenreID     int
	// Pages limits how many pages are fetched; zero fetches until a page comes back short
	Pages int
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := searchOptions{
		ReleaseYear: searchYear,
		GenreID:     searchGenre,
		Pages:       searchPages,
	}
	if len(args) == 1 {
		opts.Text = args[0]
	}

	var where filter.Filter
	if searchWhere != "" {
		compiled, err := filter.NewExprCompiler().Compile(searchWhere)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}
		where = compiled
	}

	logger.Info().Str("text", opts.Text).Int("year", opts.ReleaseYear).Int("genre", opts.GenreID).Msg("Searching titles")

	titles, err := collectTitles(cmd.Context(), client, logger, opts)
	if err != nil {
		return err
	}
	if where != nil {
		titles = filter.Apply(where, titles)
	}

	formatter := catalog.NewConsoleFormatter()
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTitleList(titles, catalog.FormatOptions{ShowDetails: searchDetails}))
	return nil
}

// collectTitles drives a browse controller to completion, one page at a time
func collectTitles(ctx context.Context, api browse.Fetcher, logger zerolog.Logger, opts searchOptions) ([]catalog.Title, error) {
	if opts.Pages < 0 {
		return nil, fmt.Errorf("pages must not be negative, got %d", opts.Pages)
	}

	opts.Text = strings.TrimSpace(opts.Text)
	ctrl := browse.NewController(logger)

	var tickets []browse.Ticket
	if opts.Text == "" {
		if opts.ReleaseYear != 0 || opts.GenreID != 0 {
			return nil, errors.New("release year and genre filters need search text")
		}
		tickets = ctrl.Start()
	} else {
		// Each setter supersedes the tickets of the one before, and the genre
		// options are only needed by the interactive picker. A single Reload
		// fetches the first page for the combined filters.
		ctrl.SetSearchText(opts.Text)
		ctrl.SetReleaseYear(opts.ReleaseYear)
		ctrl.SetGenre(opts.GenreID)
		tickets = ctrl.Reload()
	}

	for _, t := range tickets {
		ctrl.Apply(browse.Fetch(ctx, api, t))
	}
	if err := ctrl.Err(); err != nil {
		return nil, err
	}

	for page := 1; opts.Pages == 0 || page < opts.Pages; page++ {
		t, ok := ctrl.LoadMore()
		if !ok {
			break
		}
		ctrl.Apply(browse.Fetch(ctx, api, t))
		if err := ctrl.MoreErr(); err != nil {
			return nil, err
		}
	}

	return ctrl.Titles(), nil
}
