package main

import "appstore-scraper/cmd/appstore-cli/cmd"

func main() {
	cmd.Execute()
}
