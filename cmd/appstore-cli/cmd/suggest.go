package cmd

import (
	"fmt"

	"appstore-scraper/appstore"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <term>",
	Short: "Prints search term suggestions.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		suggestions, err := client.Suggest(cmd.Context(), appstore.SuggestSpec{Term: args[0]})
		if err != nil {
			fatal(err)
		}
		for _, s := range suggestions {
			fmt.Println(s.Term)
		}
	},
}
