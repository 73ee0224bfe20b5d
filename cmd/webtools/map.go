package main

import (
	"context"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools/config"
	"github.com/wordslab-org/webtools/tavily"
	"github.com/wordslab-org/webtools/toolkit"
)

func registerMapCommand(app *cli.App) {
	app.Command("map").
		Description("Map the link structure of a website starting from a base URL").
		Args("url").
		Flags(
			cli.Int("max-depth", "d").Help("Max depth of the mapping (default: 1)"),
			cli.Int("max-breadth", "b").Help("Max number of links per level (default: 20)"),
			cli.Int("limit", "l").Help("Total number of links to process (default: 50)"),
			cli.Float("timeout", "").Help("Timeout in seconds (default: 150)"),
			cli.String("instructions", "i").Help("Natural language instructions for the mapper"),
			cli.Strings("select-paths", "").Help("Regex patterns to select specific paths"),
			cli.Strings("select-domains", "").Help("Regex patterns to select specific domains"),
			cli.Strings("exclude-paths", "").Help("Regex patterns to exclude specific paths"),
			cli.Strings("exclude-domains", "").Help("Regex patterns to exclude specific domains"),
			cli.Bool("no-external", "").Help("Do not follow links to external domains"),
		).
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)
			if ctx.NArg() == 0 {
				return cli.Errorf("no url provided")
			}
			url := ctx.Arg(0)

			cfg, err := loadConfig()
			if err != nil {
				return cli.Errorf("%v", err)
			}
			params := cfg.ToolParams("web_map")
			if v := ctx.Int("max-depth"); v > 0 {
				params["max_depth"] = v
			}
			if v := ctx.Int("max-breadth"); v > 0 {
				params["max_breadth"] = v
			}
			if v := ctx.Int("limit"); v > 0 {
				params["limit"] = v
			}
			if v := ctx.Float64("timeout"); v > 0 {
				params["timeout"] = v
			}
			tool, err := config.InitializeToolByName("web_map", params)
			if err != nil {
				return cli.Errorf("%v", err)
			}

			input := &toolkit.WebMapInput{
				URL:            url,
				Instructions:   ctx.String("instructions"),
				SelectPaths:    ctx.Strings("select-paths"),
				SelectDomains:  ctx.Strings("select-domains"),
				ExcludePaths:   ctx.Strings("exclude-paths"),
				ExcludeDomains: ctx.Strings("exclude-domains"),
				AllowExternal:  tavily.Bool(!ctx.Bool("no-external")),
			}
			result, err := tool.Call(context.Background(), input)
			if err != nil {
				return cli.Errorf("map failed: %v", err)
			}
			if result.IsError {
				return cli.Errorf("%s", callResultText(result))
			}
			if jsonOutput {
				printJSON(callResultText(result))
				return nil
			}

			var projected toolkit.WebMapResult
			if err := decodeResult(result, &projected); err != nil {
				return cli.Errorf("failed to decode map result: %v", err)
			}
			printMapResult(&projected)
			return nil
		})
}
