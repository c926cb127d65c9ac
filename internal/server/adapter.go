package server

import (
	"context"
	"encoding/json"
	"fmt"

	"azdomcp/internal/dispatch"
	"azdomcp/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "azdomcp"

// newMCPServer builds an MCP server exposing every registry tool through
// the dispatch router.
func newMCPServer(router *dispatch.Router, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		serverName,
		version,
		mcpserver.WithToolCapabilities(false),
	)

	descriptors := router.Tools()
	serverTools := make([]mcpserver.ServerTool, 0, len(descriptors))
	for _, d := range descriptors {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool: mcp.Tool{
				Name:        d.Name,
				Description: d.Description,
				InputSchema: d.InputSchema,
			},
			Handler: newToolHandler(router, d.Name),
		})
	}
	s.AddTools(serverTools...)

	logging.Info("Server", "Exposing %d tools", len(serverTools))
	return s
}

// newToolHandler adapts one tool to the MCP call envelope: decode the
// arguments, dispatch, and encode the outcome.
func newToolHandler(router *dispatch.Router, toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make(map[string]interface{})
		if req.Params.Arguments != nil {
			if argsMap, ok := req.Params.Arguments.(map[string]interface{}); ok {
				args = argsMap
			}
		}

		outcome := router.Dispatch(ctx, toolName, args)
		return encodeOutcome(outcome), nil
	}
}

// encodeOutcome maps a dispatch outcome onto the MCP result envelope:
// success becomes one JSON text content, failure becomes an error result
// carrying "kind: message".
func encodeOutcome(outcome dispatch.Outcome) *mcp.CallToolResult {
	if !outcome.OK {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", outcome.Kind, outcome.Message))
	}

	data, err := json.MarshalIndent(outcome.Value, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: failed to encode result: %v", dispatch.KindRemoteError, err))
	}
	return mcp.NewToolResultText(string(data))
}
