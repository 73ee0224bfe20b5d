package main

import (
	"context"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools/config"
	"github.com/wordslab-org/webtools/tavily"
	"github.com/wordslab-org/webtools/toolkit"
)

func registerCrawlCommand(app *cli.App) {
	app.Command("crawl").
		Description("Crawl a website starting from a base URL, extracting content from linked pages").
		Args("url").
		Flags(
			cli.Int("max-depth", "d").Help("Max depth of the crawl (default: 1)"),
			cli.Int("max-breadth", "b").Help("Max number of links per level (default: 20)"),
			cli.Int("limit", "l").Help("Total number of links to process (default: 50)"),
			cli.String("extract-depth", "").Help("Extraction depth: 'basic' or 'advanced'"),
			cli.String("format", "f").Help("Content format: 'markdown' or 'text'"),
			cli.Float("timeout", "").Help("Timeout in seconds (default: 150)"),
			cli.Int("chunks-per-source", "").Help("Content chunks kept per page, 1-5 (default: 3)"),
			cli.String("instructions", "i").Help("Natural language instructions for the crawler"),
			cli.Strings("select-paths", "").Help("Regex patterns to select specific paths"),
			cli.Strings("select-domains", "").Help("Regex patterns to select specific domains"),
			cli.Strings("exclude-paths", "").Help("Regex patterns to exclude specific paths"),
			cli.Strings("exclude-domains", "").Help("Regex patterns to exclude specific domains"),
			cli.Bool("no-external", "").Help("Do not follow links to external domains"),
			cli.Bool("include-images", "").Help("Include image URLs in the results"),
			cli.Bool("include-favicon", "").Help("Include favicon URLs in the results"),
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
			params := cfg.ToolParams("web_crawl")
			if v := ctx.Int("max-depth"); v > 0 {
				params["max_depth"] = v
			}
			if v := ctx.Int("max-breadth"); v > 0 {
				params["max_breadth"] = v
			}
			if v := ctx.Int("limit"); v > 0 {
				params["limit"] = v
			}
			if v := ctx.String("extract-depth"); v != "" {
				params["extract_depth"] = v
			}
			if v := ctx.String("format"); v != "" {
				params["format"] = v
			}
			if v := ctx.Float64("timeout"); v > 0 {
				params["timeout"] = v
			}
			if v := ctx.Int("chunks-per-source"); v > 0 {
				params["chunks_per_source"] = v
			}
			tool, err := config.InitializeToolByName("web_crawl", params)
			if err != nil {
				return cli.Errorf("%v", err)
			}

			input := &toolkit.WebCrawlInput{
				URL:            url,
				Instructions:   ctx.String("instructions"),
				SelectPaths:    ctx.Strings("select-paths"),
				SelectDomains:  ctx.Strings("select-domains"),
				ExcludePaths:   ctx.Strings("exclude-paths"),
				ExcludeDomains: ctx.Strings("exclude-domains"),
				AllowExternal:  tavily.Bool(!ctx.Bool("no-external")),
				IncludeImages:  ctx.Bool("include-images"),
				IncludeFavicon: ctx.Bool("include-favicon"),
			}
			result, err := tool.Call(context.Background(), input)
			if err != nil {
				return cli.Errorf("crawl failed: %v", err)
			}
			if result.IsError {
				return cli.Errorf("%s", callResultText(result))
			}
			if jsonOutput {
				printJSON(callResultText(result))
				return nil
			}

			var projected toolkit.WebCrawlResult
			if err := decodeResult(result, &projected); err != nil {
				return cli.Errorf("failed to decode crawl result: %v", err)
			}
			printCrawlResult(&projected)
			return nil
		})
}
