package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"appstore-scraper/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(privacyCmd)
}

var privacyCmd = &cobra.Command{
	Use:   "privacy <id>",
	Short: "Prints the privacy declarations for an application.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal(fmt.Errorf("invalid app id %q: %w", args[0], err))
		}

		details, err := client.Privacy(cmd.Context(), appstore.PrivacySpec{
			ID:      id,
			Country: country(),
		})
		if err != nil {
			fatal(err)
		}

		if details.PolicyURL != "" {
			fmt.Println("policy:", details.PolicyURL)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Type", "Categories"})
		for _, ptype := range details.Types {
			t.AppendRow(table.Row{ptype.Name, strings.Join(ptype.DataCategories, ", ")})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
