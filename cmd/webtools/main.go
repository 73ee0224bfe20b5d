package main

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools"
)

func main() {
	app := cli.New("webtools").
		Description("Web search, crawl, extract, and map tools backed by the Tavily API").
		Version(webtools.Version).
		GlobalFlags(
			cli.String("api-key", "").
				Env("TAVILY_API_KEY").
				Help("Tavily API key"),
			cli.String("config", "c").
				Help("Path to a YAML or JSON configuration file"),
			cli.String("log-level", "").
				Default("warn").
				Help("Log level to use (debug, info, warn, error)"),
			cli.Bool("json", "").
				Help("Print raw JSON output instead of formatted results"),
		)

	registerSearchCommand(app)
	registerCrawlCommand(app)
	registerExtractCommand(app)
	registerMapCommand(app)
	registerServeCommand(app)

	app.Command("version").
		Description("Print the webtools version").
		Run(func(ctx *cli.Context) error {
			fmt.Println(webtools.Version)
			return nil
		})

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
