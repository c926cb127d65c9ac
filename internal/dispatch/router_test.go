package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"azdomcp/internal/auth"
	"azdomcp/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_UnknownTool(t *testing.T) {
	var invoked atomic.Int32
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "real_tool",
		Description: "a real tool",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			invoked.Add(1)
			return "ok", nil
		},
	})

	router := NewRouter(registry)
	outcome := router.Dispatch(context.Background(), "not_a_real_tool", map[string]any{})

	assert.False(t, outcome.OK)
	assert.Equal(t, KindUnknownTool, outcome.Kind)
	assert.Contains(t, outcome.Message, "not_a_real_tool")
	assert.Equal(t, int32(0), invoked.Load(), "an unknown tool must not invoke anything")
}

func TestDispatch_Success(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "echo",
		Description: "echoes its argument",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return args["value"], nil
		},
	})

	router := NewRouter(registry)
	outcome := router.Dispatch(context.Background(), "echo", map[string]any{"value": "hello"})

	require.True(t, outcome.OK)
	assert.Equal(t, "hello", outcome.Value)
	assert.Empty(t, outcome.Kind)
	assert.Empty(t, outcome.Message)
}

func TestDispatch_NilArgs(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "wants_args",
		Description: "reads from the argument map",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			// Must not panic on a nil map.
			return args["missing"], nil
		},
	})

	router := NewRouter(registry)
	outcome := router.Dispatch(context.Background(), "wants_args", nil)
	assert.True(t, outcome.OK)
}

func TestDispatch_ClassifiesAuthError(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "needs_auth",
		Description: "fails on credentials",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, fmt.Errorf("calling backend: %w", &auth.Error{Err: errors.New("login rejected")})
		},
	})

	router := NewRouter(registry)
	outcome := router.Dispatch(context.Background(), "needs_auth", nil)

	assert.False(t, outcome.OK)
	assert.Equal(t, KindAuthError, outcome.Kind)
	assert.Contains(t, outcome.Message, "login rejected")
}

func TestDispatch_ClassifiesRemoteError(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "remote_fail",
		Description: "fails remotely",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, errors.New("azure devops request failed: 403 Forbidden: quota exceeded")
		},
	})

	router := NewRouter(registry)
	outcome := router.Dispatch(context.Background(), "remote_fail", nil)

	assert.False(t, outcome.OK)
	assert.Equal(t, KindRemoteError, outcome.Kind)
	assert.Contains(t, outcome.Message, "quota exceeded", "the remote detail must be preserved")
}

func TestDispatch_RecoversPanic(t *testing.T) {
	registry := tools.NewRegistry()
	registry.Register(tools.Descriptor{
		Name:        "panics",
		Description: "panics on invocation",
		Invoke: func(ctx context.Context, args map[string]any) (any, error) {
			panic("boom")
		},
	})

	router := NewRouter(registry)
	var outcome Outcome
	assert.NotPanics(t, func() {
		outcome = router.Dispatch(context.Background(), "panics", nil)
	})
	assert.False(t, outcome.OK)
	assert.Equal(t, KindRemoteError, outcome.Kind)
	assert.Contains(t, outcome.Message, "boom")
}

func TestOutcome_NeverBoth(t *testing.T) {
	s := Success([]string{"a"})
	assert.True(t, s.OK)
	assert.Empty(t, s.Kind)
	assert.Empty(t, s.Message)

	f := Failure(KindRemoteError, "bad")
	assert.False(t, f.OK)
	assert.Nil(t, f.Value)
}
