// Package webtools provides web search, crawl, extract, and sitemap tools
// for LLM agents, backed by the Tavily API. It takes a library-first
// approach, providing a clean API for embedding web research capabilities
// into Go applications.
//
// The core types are:
//
//   - [Tool] and [TypedTool] define callable tools that an LLM can invoke.
//   - [ToolResult] captures the output of a tool call.
//   - [ToolAnnotations] describes tool behavior hints for hosts.
//
// # Quick Start
//
//	tool := toolkit.NewWebSearchTool(toolkit.WebSearchToolOptions{})
//	result, _ := tool.Call(ctx, &toolkit.WebSearchInput{Query: "golang news"})
//	fmt.Println(result.Content[0].Text)
//
// Built-in tools are available in the
// [github.com/wordslab-org/webtools/toolkit] package. The underlying API
// client is in [github.com/wordslab-org/webtools/tavily]. Tools can be
// served over the Model Context Protocol using
// [github.com/wordslab-org/webtools/mcpserver].
package webtools
