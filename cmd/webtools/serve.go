package main

import (
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools/mcpserver"
)

func registerServeCommand(app *cli.App) {
	app.Command("serve").
		Description("Serve the web tools over the Model Context Protocol").
		Flags(
			cli.String("http", "").Help("Serve over streamable HTTP on this address instead of stdio (e.g. :8080)"),
		).
		Run(func(ctx *cli.Context) error {
			parseGlobalFlags(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return cli.Errorf("%v", err)
			}
			tools, err := cfg.Tools()
			if err != nil {
				return cli.Errorf("%v", err)
			}
			srv := mcpserver.New(mcpserver.Options{
				Tools:  tools,
				Logger: getLogger(),
			})
			if addr := ctx.String("http"); addr != "" {
				return srv.ListenAndServe(addr)
			}
			return srv.ServeStdio()
		})
}
