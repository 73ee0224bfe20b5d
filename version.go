package webtools

// Version is the library version, shared by the CLI and the MCP server.
const Version = "0.0.12"
