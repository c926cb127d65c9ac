package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"azdomcp/internal/auth"
	"azdomcp/internal/dispatch"
	"azdomcp/internal/tools"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestEncodeOutcome_Success(t *testing.T) {
	outcome := dispatch.Success(map[string]any{"id": 42, "name": "Fabrikam"})
	result := encodeOutcome(outcome)

	require.False(t, result.IsError)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &decoded))
	assert.Equal(t, float64(42), decoded["id"])
	assert.Equal(t, "Fabrikam", decoded["name"])
}

func TestEncodeOutcome_Failure(t *testing.T) {
	outcome := dispatch.Failure(dispatch.KindAuthError, "token exchange rejected")
	result := encodeOutcome(outcome)

	assert.True(t, result.IsError)
	assert.Equal(t, "AuthError: token exchange rejected", textOf(t, result))
}

func TestToolHandler_RoundTrip(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "echo",
		Description: "echoes its argument",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return args["value"], nil
		},
	})
	router := dispatch.NewRouter(registry)

	handler := newToolHandler(router, "echo")
	req := mcp.CallToolRequest{}
	req.Params.Name = "echo"
	req.Params.Arguments = map[string]interface{}{"value": "hello"}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "\"hello\"", textOf(t, result))
}

func TestToolHandler_NilArguments(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "no_args",
		Description: "needs no arguments",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return len(args), nil
		},
	})
	router := dispatch.NewRouter(registry)

	handler := newToolHandler(router, "no_args")
	result, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "0", textOf(t, result))
}

func TestToolHandler_FailureStaysInBand(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "broken",
		Description: "always fails",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, &auth.Error{Err: errors.New("device flow aborted")}
		},
	})
	router := dispatch.NewRouter(registry)

	handler := newToolHandler(router, "broken")
	result, err := handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err, "tool failures must travel as error results, not protocol errors")
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "AuthError")
	assert.Contains(t, textOf(t, result), "device flow aborted")
}

func TestNewMCPServer_RegistersAllTools(t *testing.T) {
	registry := tools.NewRegistry()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		registry.Register(tools.Descriptor{
			Name:        name,
			Description: "test tool " + name,
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				return nil, nil
			},
		})
	}

	s := newMCPServer(dispatch.NewRouter(registry), "0.0.1-test")
	require.NotNil(t, s)
}
