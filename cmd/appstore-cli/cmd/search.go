package cmd

import (
	"fmt"
	"os"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	searchNum  int
	searchPage int
)

func init() {
	searchCmd.Flags().IntVar(&searchNum, "num", 0, "page size")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "1-based page")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Searches the marketplace for applications matching a term.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		apps, err := client.Search(cmd.Context(), appstore.SearchSpec{
			Term:    args[0],
			Num:     searchNum,
			Page:    searchPage,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Developer", "Price", "Score"})
		for _, app := range apps {
			t.AppendRow(table.Row{
				app.ID,
				app.Title,
				app.Developer,
				fmt.Sprintf("%.2f %s", app.Price, app.Currency),
				app.Score,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
