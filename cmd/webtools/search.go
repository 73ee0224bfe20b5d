package main

import (
	"context"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools/config"
	"github.com/wordslab-org/webtools/toolkit"
)

func registerSearchCommand(app *cli.App) {
	app.Command("search").
		Description("Search the web for information, news, or financial data").
		Args("query").
		Flags(
			cli.Int("max-results", "n").Help("Maximum number of results (default: 5)"),
			cli.String("search-depth", "").Help("Search depth: 'basic' or 'advanced'"),
			cli.Float("timeout", "").Help("Timeout in seconds (default: 60)"),
			cli.String("topic", "").Help("Search topic: 'general', 'news', or 'finance'"),
			cli.String("time-range", "").Help("Restrict results by recency: 'day', 'week', 'month', 'year'"),
			cli.String("start-date", "").Help("Only include results published after this date (YYYY-MM-DD)"),
			cli.String("end-date", "").Help("Only include results published before this date (YYYY-MM-DD)"),
			cli.Bool("include-answer", "a").Help("Include an LLM-generated answer"),
			cli.Bool("include-images", "").Help("Include image results"),
			cli.Bool("include-image-descriptions", "").Help("Include descriptions for image results"),
			cli.Strings("include-domains", "").Help("Only include results from these domains"),
			cli.Strings("exclude-domains", "").Help("Exclude results from these domains"),
			cli.String("country", "").Help("Boost results from a specific country"),
		).
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)
			if ctx.NArg() == 0 {
				return cli.Errorf("no search query provided")
			}
			query := ctx.Arg(0)

			cfg, err := loadConfig()
			if err != nil {
				return cli.Errorf("%v", err)
			}
			params := cfg.ToolParams("web_search")
			if v := ctx.Int("max-results"); v > 0 {
				params["max_results"] = v
			}
			if v := ctx.String("search-depth"); v != "" {
				params["search_depth"] = v
			}
			if v := ctx.Float64("timeout"); v > 0 {
				params["timeout"] = v
			}
			tool, err := config.InitializeToolByName("web_search", params)
			if err != nil {
				return cli.Errorf("%v", err)
			}

			input := &toolkit.WebSearchInput{
				Query:                    query,
				Topic:                    ctx.String("topic"),
				TimeRange:                ctx.String("time-range"),
				StartDate:                ctx.String("start-date"),
				EndDate:                  ctx.String("end-date"),
				IncludeAnswer:            ctx.Bool("include-answer"),
				IncludeImages:            ctx.Bool("include-images"),
				IncludeImageDescriptions: ctx.Bool("include-image-descriptions"),
				IncludeDomains:           ctx.Strings("include-domains"),
				ExcludeDomains:           ctx.Strings("exclude-domains"),
				Country:                  ctx.String("country"),
			}
			result, err := tool.Call(context.Background(), input)
			if err != nil {
				return cli.Errorf("search failed: %v", err)
			}
			if result.IsError {
				return cli.Errorf("%s", callResultText(result))
			}
			if jsonOutput {
				printJSON(callResultText(result))
				return nil
			}

			var projected toolkit.WebSearchResult
			if err := decodeResult(result, &projected); err != nil {
				return cli.Errorf("failed to decode search result: %v", err)
			}
			printSearchResult(&projected)
			return nil
		})
}
