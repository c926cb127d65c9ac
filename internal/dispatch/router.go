package dispatch

import (
	"context"
	"errors"
	"fmt"

	"azdomcp/internal/auth"
	"azdomcp/internal/tools"
	"azdomcp/pkg/logging"
)

// Kind classifies a dispatch failure.
type Kind string

const (
	// KindUnknownTool: the requested operation is not in the registry.
	// Always a caller bug, never retried.
	KindUnknownTool Kind = "UnknownTool"
	// KindAuthError: the credential exchange failed. A fresh dispatch gets
	// a fresh acquisition attempt.
	KindAuthError Kind = "AuthError"
	// KindRemoteError: the resource server rejected or failed the request.
	// The remote status and body are preserved in the message.
	KindRemoteError Kind = "RemoteError"
)

// Outcome is the tagged result of one dispatch: either a success value or a
// classified failure, never both. Produced fresh per invocation.
type Outcome struct {
	OK      bool   `json:"ok"`
	Value   any    `json:"value,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success wraps a result value.
func Success(value any) Outcome {
	return Outcome{OK: true, Value: value}
}

// Failure wraps a classified error.
func Failure(kind Kind, message string) Outcome {
	return Outcome{OK: false, Kind: kind, Message: message}
}

// Router resolves tool names against the registry and executes the bound
// invocation. It holds no mutable state of its own.
type Router struct {
	registry *tools.Registry
}

// NewRouter creates a router over a populated registry.
func NewRouter(registry *tools.Registry) *Router {
	return &Router{registry: registry}
}

// Tools returns the registry's descriptors in listing order.
func (r *Router) Tools() []tools.Descriptor {
	return r.registry.All()
}

// Dispatch looks up the tool and runs it. Errors never cross this boundary:
// every failure, including a panic inside an invocation, becomes a Failure
// outcome.
func (r *Router) Dispatch(ctx context.Context, toolName string, args map[string]any) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Error("Dispatch", fmt.Errorf("%v", rec), "Panic dispatching %s", toolName)
			outcome = Failure(KindRemoteError, fmt.Sprintf("internal error dispatching %s: %v", toolName, rec))
		}
	}()

	descriptor, ok := r.registry.Lookup(toolName)
	if !ok {
		return Failure(KindUnknownTool, fmt.Sprintf("unknown tool: %s", toolName))
	}

	if args == nil {
		args = map[string]any{}
	}

	value, err := descriptor.Invoke(ctx, args)
	if err != nil {
		kind := classify(err)
		logging.Debug("Dispatch", "Tool %s failed (%s): %v", toolName, kind, err)
		return Failure(kind, err.Error())
	}

	return Success(value)
}

// classify maps an invocation error onto the failure taxonomy.
func classify(err error) Kind {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return KindAuthError
	}
	return KindRemoteError
}
