package server

import (
	"context"
	"os"

	"azdomcp/internal/dispatch"
	"azdomcp/pkg/logging"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServeStdio runs the MCP server over stdin/stdout until the context is
// cancelled or the input stream closes. Stdout carries the protocol
// stream; all logging goes to stderr.
func ServeStdio(ctx context.Context, router *dispatch.Router, version string) error {
	s := newMCPServer(router, version)

	logging.Info("Server", "Starting MCP server on stdio")
	stdioServer := mcpserver.NewStdioServer(s)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}
