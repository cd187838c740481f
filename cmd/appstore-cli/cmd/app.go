package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var appRatings bool

func init() {
	appCmd.Flags().BoolVar(&appRatings, "ratings", false, "include the scraped ratings histogram")
	rootCmd.AddCommand(appCmd)
}

var appCmd = &cobra.Command{
	Use:   "app <id>",
	Short: "Prints the detailed record for one application.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		app, err := client.App(cmd.Context(), appstore.AppSpec{
			ID:      id,
			Country: country(),
			Ratings: appRatings,
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRows([]table.Row{
			{"ID", app.ID},
			{"Bundle", app.AppID},
			{"Title", app.Title},
			{"Developer", app.Developer},
			{"Version", app.Version},
			{"Price", fmt.Sprintf("%.2f %s", app.Price, app.Currency)},
			{"Score", app.Score},
			{"Reviews", app.Reviews},
			{"Updated", app.Updated},
			{"URL", app.URL},
		})
		if app.Ratings != nil {
			for star := 5; star >= 1; star-- {
				t.AppendRow(table.Row{
					fmt.Sprintf("%d star", star),
					app.Ratings.Histogram[star],
				})
			}
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
