// Package config loads and saves tool-suite configuration from YAML or
// JSON files and builds the configured tools.
package config

import (
	"fmt"

	"github.com/wordslab-org/webtools"
)

// Config is the top-level tool-suite configuration. The APIKey and
// LogLevel apply to every tool; per-tool sections override tool defaults.
// Zero values in a tool section fall back to that tool's own defaults.
type Config struct {
	// APIKey is the Tavily API key shared by all tools. Falls back to the
	// TAVILY_API_KEY environment variable when empty.
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`

	// ToolOptions holds per-tool option overrides, keyed by tool name
	// (web_search, web_crawl, web_extract, web_map).
	ToolOptions map[string]map[string]any `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Tools builds all four web tools from the configuration. Tools without a
// configuration section are built with their defaults. The top-level API
// key is injected into each tool section that does not set its own.
func (c *Config) Tools() ([]webtools.Tool, error) {
	var tools []webtools.Tool
	for _, name := range ToolNames() {
		params := c.ToolParams(name)
		tool, err := InitializeToolByName(name, params)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// Tool builds a single named tool from the configuration.
func (c *Config) Tool(name string) (webtools.Tool, error) {
	return InitializeToolByName(name, c.ToolParams(name))
}

// ToolParams returns the effective configuration parameters for the named
// tool: its configuration section plus the shared API key.
func (c *Config) ToolParams(name string) map[string]any {
	params := map[string]any{}
	for k, v := range c.ToolOptions[name] {
		params[k] = v
	}
	if c.APIKey != "" {
		if _, ok := params["api_key"]; !ok {
			params["api_key"] = c.APIKey
		}
	}
	return params
}

// Validate checks that every configured tool section refers to a known
// tool name.
func (c *Config) Validate() error {
	for name := range c.ToolOptions {
		if !isKnownTool(name) {
			return fmt.Errorf("unknown tool in configuration: %q", name)
		}
	}
	return nil
}
