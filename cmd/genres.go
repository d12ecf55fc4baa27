package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/catalog"
)

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genre filter options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		genres, err := client.BrowseGenres(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), catalog.NewConsoleFormatter().FormatGenres(genres))
		return nil
	},
}
