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
	rootCmd.AddCommand(developerCmd)
}

var developerCmd = &cobra.Command{
	Use:   "developer <dev-id>",
	Short: "Prints the applications published by one developer.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid developer id %q: %w", args[0], err))
		}

		apps, err := client.Developer(cmd.Context(), appstore.DeveloperSpec{
			DevID:   id,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Version", "Score"})
		for _, app := range apps {
			t.AppendRow(table.Row{app.ID, app.Title, app.Version, app.Score})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
