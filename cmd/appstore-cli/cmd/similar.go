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
	rootCmd.AddCommand(similarCmd)
}

var similarCmd = &cobra.Command{
	Use:   "similar <id>",
	Short: "Prints applications related to the given one, by page section.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		similar, err := client.Similar(cmd.Context(), appstore.SimilarSpec{
			ID:      id,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Section", "ID", "Title", "Developer"})
		for _, s := range similar {
			t.AppendRow(table.Row{s.LinkType, s.App.ID, s.App.Title, s.App.Developer})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
