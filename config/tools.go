package config

import (
	"encoding/json"
	"fmt"

	"github.com/wordslab-org/webtools"
	"github.com/wordslab-org/webtools/toolkit"
)

// ToolInitializer builds a tool from its configuration parameters.
type ToolInitializer func(params map[string]any) (webtools.Tool, error)

var toolInitializers = map[string]ToolInitializer{
	"web_search":  InitializeWebSearchTool,
	"web_crawl":   InitializeWebCrawlTool,
	"web_extract": InitializeWebExtractTool,
	"web_map":     InitializeWebMapTool,
}

// ToolNames returns the names of all known tools, in registration order.
func ToolNames() []string {
	return []string{"web_search", "web_crawl", "web_extract", "web_map"}
}

func isKnownTool(name string) bool {
	_, ok := toolInitializers[name]
	return ok
}

// InitializeToolByName builds the named tool with the given configuration
// parameters.
func InitializeToolByName(name string, params map[string]any) (webtools.Tool, error) {
	initializer, ok := toolInitializers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %q", name)
	}
	return initializer(params)
}

func convertToolConfig(params map[string]any, options any) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal tool config: %w", err)
	}
	if err := json.Unmarshal(paramsJSON, options); err != nil {
		return fmt.Errorf("failed to unmarshal tool config: %w", err)
	}
	return nil
}

// InitializeWebSearchTool initializes the web_search tool with the given
// configuration.
func InitializeWebSearchTool(params map[string]any) (webtools.Tool, error) {
	var options toolkit.WebSearchToolOptions
	if params != nil {
		if err := convertToolConfig(params, &options); err != nil {
			return nil, fmt.Errorf("failed to populate web_search tool config: %w", err)
		}
	}
	return toolkit.NewWebSearchTool(options), nil
}

// InitializeWebCrawlTool initializes the web_crawl tool with the given
// configuration.
func InitializeWebCrawlTool(params map[string]any) (webtools.Tool, error) {
	var options toolkit.WebCrawlToolOptions
	if params != nil {
		if err := convertToolConfig(params, &options); err != nil {
			return nil, fmt.Errorf("failed to populate web_crawl tool config: %w", err)
		}
	}
	return toolkit.NewWebCrawlTool(options), nil
}

// InitializeWebExtractTool initializes the web_extract tool with the given
// configuration.
func InitializeWebExtractTool(params map[string]any) (webtools.Tool, error) {
	var options toolkit.WebExtractToolOptions
	if params != nil {
		if err := convertToolConfig(params, &options); err != nil {
			return nil, fmt.Errorf("failed to populate web_extract tool config: %w", err)
		}
	}
	return toolkit.NewWebExtractTool(options), nil
}

// InitializeWebMapTool initializes the web_map tool with the given
// configuration.
func InitializeWebMapTool(params map[string]any) (webtools.Tool, error) {
	var options toolkit.WebMapToolOptions
	if params != nil {
		if err := convertToolConfig(params, &options); err != nil {
			return nil, fmt.Errorf("failed to populate web_map tool config: %w", err)
		}
	}
	return toolkit.NewWebMapTool(options), nil
}
