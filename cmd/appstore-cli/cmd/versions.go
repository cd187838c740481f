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
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions <id>",
	Short: "Prints the version history of an application.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		releases, err := client.VersionHistory(cmd.Context(), appstore.VersionHistorySpec{
			ID:      id,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Version", "Released", "Notes"})
		for _, release := range releases {
			t.AppendRow(table.Row{release.Version, release.ReleaseDate, release.ReleaseNotes})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
