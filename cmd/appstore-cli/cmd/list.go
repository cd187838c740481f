package cmd

import (
	"fmt"
	"os"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	listCollection string
	listCategory   int
	listNum        int
)

func init() {
	listCmd.Flags().StringVar(&listCollection, "collection", "", "feed collection (defaults to top free)")
	listCmd.Flags().IntVar(&listCategory, "category", 0, "genre id, 0 for all")
	listCmd.Flags().IntVar(&listNum, "num", 0, "number of entries")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints a curated collection feed.",
	Run: func(cmd *cobra.Command, args []string) {
		apps, err := client.List(cmd.Context(), appstore.ListSpec{
			Collection: appstore.Collection(listCollection),
			Category:   listCategory,
			Num:        listNum,
			Country:    country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Developer", "Genre", "Price"})
		for _, app := range apps {
			t.AppendRow(table.Row{
				app.ID,
				app.Title,
				app.Developer,
				app.Genre,
				fmt.Sprintf("%.2f %s", app.Price, app.Currency),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
