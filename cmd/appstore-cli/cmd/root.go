package cmd

import (
	"context"
	"fmt"
	"os"

	"appstore-scraper/appstore"
	"appstore-scraper/lib/configutil"
	"appstore-scraper/lib/telemetry"

	"github.com/spf13/cobra"
)

var client *appstore.Client

var countryFlag string

type cliConfig struct {
	Country   string           `json:"country"`
	Language  string           `json:"language"`
	Retries   int              `json:"retries"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var rootCmd = &cobra.Command{
	Use:   "appstore-cli",
	Short: "appstore-cli is a CLI interface for the app marketplace scraping library.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&countryFlag, "country", "", "two-letter country code (overrides config)")
}

func Execute() {
	config, err := configutil.ReadConfig[cliConfig]("appstore.json5")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, "appstore-cli", config.Telemetry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tel.Shutdown(ctx)

	client = appstore.NewClient(appstore.ClientOptions{
		Country:  config.Country,
		Language: config.Language,
		Retries:  config.Retries,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// country returns the per-invocation country override, if any.
func country() string {
	return countryFlag
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
