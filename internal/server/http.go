package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"azdomcp/internal/dispatch"
	"azdomcp/pkg/logging"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServeHTTP runs the MCP streamable-HTTP endpoint on addr until the
// context is cancelled, then shuts down gracefully.
func ServeHTTP(ctx context.Context, router *dispatch.Router, addr, version string) error {
	s := newMCPServer(router, version)
	httpServer := mcpserver.NewStreamableHTTPServer(s)

	errChan := make(chan error, 1)
	go func() {
		logging.Info("Server", "Starting MCP streamable-http server on %s", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	logging.Info("Server", "Shutting down streamable-http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
