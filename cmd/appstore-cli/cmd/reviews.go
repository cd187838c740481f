package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	reviewsPage int
	reviewsSort string
)

func init() {
	reviewsCmd.Flags().IntVar(&reviewsPage, "page", 0, "1-based page (max 10)")
	reviewsCmd.Flags().StringVar(&reviewsSort, "sort", "", "mostrecent or mosthelpful")
	rootCmd.AddCommand(reviewsCmd)
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <id>",
	Short: "Prints one page of user reviews for an application.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		reviews, err := client.Reviews(cmd.Context(), appstore.ReviewsSpec{
			ID:      id,
			Page:    reviewsPage,
			Sort:    appstore.Sort(reviewsSort),
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Score", "Version", "User", "Title"})
		for _, review := range reviews {
			t.AppendRow(table.Row{review.Score, review.Version, review.UserName, review.Title})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
