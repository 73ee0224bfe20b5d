package main

import (
	"context"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools/config"
	"github.com/wordslab-org/webtools/toolkit"
)

func registerExtractCommand(app *cli.App) {
	app.Command("extract").
		Description("Extract and parse content from one or more web pages").
		Args("urls...").
		Flags(
			cli.String("extract-depth", "").Help("Extraction depth: 'basic' or 'advanced'"),
			cli.String("format", "f").Help("Content format: 'markdown' or 'text'"),
			cli.Float("timeout", "").Help("Timeout in seconds (service default when unset)"),
			cli.Int("chunks-per-source", "").Help("Content chunks kept per page, 1-5 (default: 3)"),
			cli.Bool("include-images", "").Help("Include image URLs in the results"),
			cli.Bool("include-favicon", "").Help("Include favicon URLs in the results"),
			cli.String("query", "q").Help("Query used to rerank the extracted content chunks"),
		).
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)
			if ctx.NArg() == 0 {
				return cli.Errorf("no urls provided")
			}
			urls := make([]string, 0, ctx.NArg())
			for i := 0; i < ctx.NArg(); i++ {
				urls = append(urls, ctx.Arg(i))
			}

			cfg, err := loadConfig()
			if err != nil {
				return cli.Errorf("%v", err)
			}
			params := cfg.ToolParams("web_extract")
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
			tool, err := config.InitializeToolByName("web_extract", params)
			if err != nil {
				return cli.Errorf("%v", err)
			}

			input := &toolkit.WebExtractInput{
				URLs:           toolkit.URLList(urls),
				IncludeImages:  ctx.Bool("include-images"),
				IncludeFavicon: ctx.Bool("include-favicon"),
				Query:          ctx.String("query"),
			}
			result, err := tool.Call(context.Background(), input)
			if err != nil {
				return cli.Errorf("extract failed: %v", err)
			}
			if result.IsError {
				return cli.Errorf("%s", callResultText(result))
			}
			if jsonOutput {
				printJSON(callResultText(result))
				return nil
			}

			var projected toolkit.WebExtractResult
			if err := decodeResult(result, &projected); err != nil {
				return cli.Errorf("failed to decode extract result: %v", err)
			}
			printExtractResult(&projected)
			return nil
		})
}
