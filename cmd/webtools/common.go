package main

import (
	"encoding/json"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/wordslab-org/webtools"
	"github.com/wordslab-org/webtools/config"
	"github.com/wordslab-org/webtools/slogger"
)

var (
	apiKey     string
	configPath string
	logLevel   string
	jsonOutput bool
)

// parseGlobalFlags extracts global flag values from context
func parseGlobalFlags(ctx *cli.Context) {
	apiKey = ctx.String("api-key")
	configPath = ctx.String("config")
	logLevel = ctx.String("log-level")
	jsonOutput = ctx.Bool("json")
}

func getLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

// loadConfig reads the configuration file when one was given, then applies
// the --api-key flag on top.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.ParseFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	return cfg, nil
}

// callResultText extracts the text payload of a tool result.
func callResultText(result *webtools.ToolResult) string {
	for _, content := range result.Content {
		if content.Type == webtools.ToolResultContentTypeText {
			return content.Text
		}
	}
	return ""
}

// decodeResult unmarshals a tool result's JSON text into out.
func decodeResult(result *webtools.ToolResult, out any) error {
	return json.Unmarshal([]byte(callResultText(result)), out)
}
