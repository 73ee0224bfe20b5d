// Package mcpserver exposes the web tools over the Model Context Protocol,
// for use by MCP-capable hosts such as IDEs and agent runtimes.
package mcpserver

import (
	"context"
	"net/http"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wordslab-org/webtools"
	"github.com/wordslab-org/webtools/slogger"
	"github.com/wordslab-org/webtools/toolkit"
)

// Options configures the MCP server.
type Options struct {
	// Tools to expose. When empty, all four web tools are registered with
	// their defaults.
	Tools []webtools.Tool

	// Logger receives one entry per tool call. Defaults to a no-op logger.
	Logger slogger.Logger
}

// Server wraps an MCP server exposing the web tools.
type Server struct {
	mcp    *server.MCPServer
	logger slogger.Logger
}

// New creates an MCP server with the given options.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slogger.NewDevNullLogger()
	}
	tools := opts.Tools
	if len(tools) == 0 {
		tools = []webtools.Tool{
			toolkit.NewWebSearchTool(toolkit.WebSearchToolOptions{}),
			toolkit.NewWebCrawlTool(toolkit.WebCrawlToolOptions{}),
			toolkit.NewWebExtractTool(toolkit.WebExtractToolOptions{}),
			toolkit.NewWebMapTool(toolkit.WebMapToolOptions{}),
		}
	}

	s := &Server{
		mcp: server.NewMCPServer("webtools", webtools.Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
		logger: logger,
	}
	for _, tool := range tools {
		s.register(tool)
	}
	return s
}

// ServeStdio serves MCP over stdin/stdout. It blocks until the stream
// closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// Handler returns a stateless streamable HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true))
}

// ListenAndServe serves MCP over streamable HTTP on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("mcp server listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// register adds one tool to the MCP server, translating its schema into
// MCP tool options and wrapping its Call with logging.
func (s *Server) register(tool webtools.Tool) {
	s.mcp.AddTool(
		mcpgo.NewTool(tool.Name(), toolOptions(tool)...),
		func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
			start := time.Now()
			args := req.GetArguments()

			ctx = slogger.WithLogger(ctx, s.logger)
			result, err := tool.Call(ctx, mapToJSON(args))
			if err != nil {
				s.logger.Error("tool call failed",
					"tool", tool.Name(),
					"duration", time.Since(start),
					"error", err)
				return nil, err
			}

			text := resultText(result)
			if result.IsError {
				s.logger.Warn("tool call returned error result",
					"tool", tool.Name(),
					"duration", time.Since(start))
				return mcpgo.NewToolResultError(text), nil
			}
			s.logger.Info("tool call succeeded",
				"tool", tool.Name(),
				"duration", time.Since(start))
			return mcpgo.NewToolResultText(text), nil
		},
	)
}

func resultText(result *webtools.ToolResult) string {
	for _, content := range result.Content {
		if content.Type == webtools.ToolResultContentTypeText {
			return content.Text
		}
	}
	return ""
}

// toolOptions translates a tool's JSON schema into mcp-go tool options.
func toolOptions(tool webtools.Tool) []mcpgo.ToolOption {
	opts := []mcpgo.ToolOption{
		mcpgo.WithDescription(tool.Description()),
	}
	toolSchema := tool.Schema()
	if toolSchema == nil {
		return opts
	}
	required := map[string]bool{}
	for _, name := range toolSchema.Required {
		required[name] = true
	}
	for name, prop := range toolSchema.Properties {
		var propertyOpts []mcpgo.PropertyOption
		if required[name] {
			propertyOpts = append(propertyOpts, mcpgo.Required())
		}
		if prop.Description != "" {
			propertyOpts = append(propertyOpts, mcpgo.Description(prop.Description))
		}
		switch prop.Type {
		case "string":
			if len(prop.Enum) > 0 {
				propertyOpts = append(propertyOpts, mcpgo.Enum(enumStrings(prop.Enum)...))
			}
			opts = append(opts, mcpgo.WithString(name, propertyOpts...))
		case "integer", "number":
			opts = append(opts, mcpgo.WithNumber(name, propertyOpts...))
		case "boolean":
			opts = append(opts, mcpgo.WithBoolean(name, propertyOpts...))
		case "array":
			propertyOpts = append(propertyOpts, mcpgo.WithStringItems())
			opts = append(opts, mcpgo.WithArray(name, propertyOpts...))
		}
	}
	return opts
}

func enumStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mapToJSON passes tool arguments through as a JSON-compatible value for
// the typed tool adapters to unmarshal.
func mapToJSON(args map[string]any) any {
	if args == nil {
		return map[string]any{}
	}
	return args
}
