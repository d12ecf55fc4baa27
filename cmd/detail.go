package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/detail"
)

// titleCmd represents the title command
var titleCmd = &cobra.Command{
	Use:   "title <id>...",
	Short: "Show titles with their genres and contributors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTitle,
}

// contributorCmd represents the contributor command
var contributorCmd = &cobra.Command{
	Use:   "contributor <id>...",
	Short: "Show contributors with the titles they worked on",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runContributor,
}

func runTitle(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	details, err := client.GetTitleDetailsBatch(cmd.Context(), ids)
	if err != nil {
		return err
	}

	formatter := catalog.NewConsoleFormatter()
	for _, d := range details {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTitleDetails(d))
	}
	return nil
}

func runContributor(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	details, err := client.GetContributorDetailsBatch(cmd.Context(), ids)
	if err != nil {
		return err
	}

	formatter := catalog.NewConsoleFormatter()
	for _, d := range details {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContributorDetails(d, detail.DistinctRoles(d.Titles)))
	}
	return nil
}

// parseIDs validates identifiers the same way the browser validates route ids
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, ok := detail.ParseID(arg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", catalog.ErrInvalidID, arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
