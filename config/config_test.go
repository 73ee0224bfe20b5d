package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wordslab-org/webtools/toolkit"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
api_key: test-key
log_level: debug
tools:
  web_search:
    max_results: 10
    search_depth: advanced
  web_crawl:
    max_depth: 2
`)
	cfg, err := ParseYAML(data)
	require.NoError(t, err)
	require.Equal(t, "test-key", cfg.APIKey)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.ToolOptions, 2)
	require.EqualValues(t, 10, cfg.ToolOptions["web_search"]["max_results"])
}

func TestParseYAML_UnknownTopLevelKey(t *testing.T) {
	_, err := ParseYAML([]byte("api_key: k\nbogus: true\n"))
	require.Error(t, err)
}

func TestParseYAML_UnknownTool(t *testing.T) {
	_, err := ParseYAML([]byte("tools:\n  web_scrape: {}\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown tool")
}

func TestParseJSON(t *testing.T) {
	cfg, err := ParseJSON([]byte(`{"api_key":"k","tools":{"web_map":{"limit":100}}}`))
	require.NoError(t, err)
	require.Equal(t, "k", cfg.APIKey)
	require.Contains(t, cfg.ToolOptions, "web_map")
}

func TestParseFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webtools.yaml")

	cfg := &Config{
		APIKey:   "k",
		LogLevel: "info",
		ToolOptions: map[string]map[string]any{
			"web_search": {"max_results": 7},
		},
	}
	require.NoError(t, SaveFile(cfg, path))

	loaded, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "k", loaded.APIKey)
	require.Equal(t, "info", loaded.LogLevel)
	require.Contains(t, loaded.ToolOptions, "web_search")
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webtools.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	_, err := ParseFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported file extension")
}

func TestInitializeToolByName(t *testing.T) {
	tool, err := InitializeToolByName("web_search", map[string]any{
		"api_key":      "k",
		"max_results":  3,
		"search_depth": "advanced",
	})
	require.NoError(t, err)
	require.Equal(t, "web_search", tool.Name())

	_, err = InitializeToolByName("nope", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown tool")
}

func TestConfig_Tools(t *testing.T) {
	cfg := &Config{
		APIKey: "top-level-key",
		ToolOptions: map[string]map[string]any{
			"web_crawl": {"max_depth": 3},
		},
	}
	tools, err := cfg.Tools()
	require.NoError(t, err)
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	require.Equal(t, ToolNames(), names)
}

func TestConfig_Tool_InjectsAPIKey(t *testing.T) {
	cfg := &Config{APIKey: "top-level-key"}
	tool, err := cfg.Tool("web_search")
	require.NoError(t, err)
	require.Equal(t, "web_search", tool.Name())
}

func TestConvertToolConfig(t *testing.T) {
	var options toolkit.WebCrawlToolOptions
	err := convertToolConfig(map[string]any{
		"max_depth":   2,
		"max_breadth": 5,
		"format":      "text",
	}, &options)
	require.NoError(t, err)
	require.Equal(t, 2, options.MaxDepth)
	require.Equal(t, 5, options.MaxBreadth)
	require.Equal(t, "text", options.Format)
}
