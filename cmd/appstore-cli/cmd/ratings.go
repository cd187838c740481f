package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ratingsCmd)
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings <id>",
	Short: "Prints the rating histogram for an application.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		ratings, err := client.Ratings(cmd.Context(), appstore.RatingsSpec{
			ID:      id,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Stars", "Count"})
		for star := 5; star >= 1; star-- {
			t.AppendRow(table.Row{star, ratings.Histogram[star]})
		}
		t.AppendFooter(table.Row{"Total", ratings.Total})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
