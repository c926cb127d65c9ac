package server

import (
	"context"
	"fmt"
	"os"
	"time"

	"azdomcp/pkg/logging"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const bridgeCallTimeout = 60 * time.Second

// Bridge exposes a remote azdomcp streamable-HTTP endpoint over stdio. It
// mirrors the remote tool list on a local MCP server and forwards every
// tool call to the remote instance, relaying responses verbatim. The
// bridge never reads credentials and never adds authentication of its
// own; the remote instance owns that concern.
type Bridge struct {
	endpoint string
	session  string
	remote   *client.Client
}

// NewBridge creates a bridge targeting the given streamable-HTTP endpoint.
func NewBridge(endpoint string) *Bridge {
	return &Bridge{
		endpoint: endpoint,
		session:  uuid.NewString(),
	}
}

// Run connects to the remote instance, mirrors its tools, and serves them
// on stdio until the context is cancelled or the input stream closes.
func (b *Bridge) Run(ctx context.Context, version string) error {
	logging.Info("Bridge", "Session %s connecting to %s", b.session, b.endpoint)

	remote, err := client.NewStreamableHttpClient(b.endpoint)
	if err != nil {
		return fmt.Errorf("failed to create streamable-http client: %w", err)
	}
	defer remote.Close()

	if err := remote.Start(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", b.endpoint, err)
	}
	b.remote = remote

	if err := b.initialize(ctx, version); err != nil {
		return err
	}

	tools, err := b.remoteTools(ctx)
	if err != nil {
		return err
	}
	logging.Info("Bridge", "Session %s mirroring %d remote tools", b.session, len(tools))

	local := mcpserver.NewMCPServer(
		serverName+"-bridge",
		version,
		mcpserver.WithToolCapabilities(false),
	)
	serverTools := make([]mcpserver.ServerTool, 0, len(tools))
	for _, t := range tools {
		serverTools = append(serverTools, mcpserver.ServerTool{
			Tool:    t,
			Handler: b.forward(t.Name),
		})
	}
	local.AddTools(serverTools...)

	stdioServer := mcpserver.NewStdioServer(local)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

// initialize performs the MCP handshake with the remote instance.
func (b *Bridge) initialize(ctx context.Context, version string) error {
	req := mcp.InitializeRequest{
		Params: struct {
			ProtocolVersion string                 `json:"protocolVersion"`
			Capabilities    mcp.ClientCapabilities `json:"capabilities"`
			ClientInfo      mcp.Implementation     `json:"clientInfo"`
		}{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: mcp.Implementation{
				Name:    serverName + "-bridge",
				Version: version,
			},
		},
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, bridgeCallTimeout)
	defer cancel()

	result, err := b.remote.Initialize(timeoutCtx, req)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}
	logging.Debug("Bridge", "Session %s connected to %s %s", b.session, result.ServerInfo.Name, result.ServerInfo.Version)
	return nil
}

// remoteTools fetches the remote tool list once at startup.
func (b *Bridge) remoteTools(ctx context.Context) ([]mcp.Tool, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, bridgeCallTimeout)
	defer cancel()

	result, err := b.remote.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list remote tools: %w", err)
	}
	return result.Tools, nil
}

// forward builds a handler that relays one tool call to the remote
// instance. The remote result is returned untouched, error flag included,
// so the caller sees exactly what the remote instance produced.
func (b *Bridge) forward(toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outReq := mcp.CallToolRequest{
			Params: struct {
				Name      string    `json:"name"`
				Arguments any       `json:"arguments,omitempty"`
				Meta      *mcp.Meta `json:"_meta,omitempty"`
			}{
				Name:      toolName,
				Arguments: req.Params.Arguments,
			},
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, bridgeCallTimeout)
		defer cancel()

		logging.Debug("Bridge", "Session %s forwarding %s", b.session, toolName)
		result, err := b.remote.CallTool(timeoutCtx, outReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bridge: remote call failed: %v", err)), nil
		}
		return result, nil
	}
}
