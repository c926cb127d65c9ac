package auth

import (
	"context"
	"fmt"

	"azdomcp/internal/config"
	"azdomcp/pkg/logging"
)

// Provider yields a valid Authorization header value on demand. It is safe
// for concurrent use by any number of in-flight dispatches.
type Provider interface {
	// Authorization returns the full header value, e.g. "Bearer eyJ..." or
	// "Basic OnBhdC10b2tlbg==". Implementations may suspend the caller to
	// refresh an expired credential.
	Authorization(ctx context.Context) (string, error)
}

// Error marks a credential acquisition failure. The dispatch router
// classifies these separately from remote API failures; callers are not
// retried automatically, but a later dispatch gets a fresh attempt.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("credential acquisition failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewProvider constructs the process-wide credential provider for the
// configured mode. The presence of a PAT selects static-token mode; its
// absence selects interactive device-code mode.
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.StaticMode() {
		logging.Info("Auth", "Using static personal access token authentication")
		return newStaticProvider(cfg.PAT)
	}

	var store *TokenStore
	if cfg.TokenStore.Enabled {
		s, err := NewTokenStore(TokenStoreConfig{Dir: cfg.TokenStore.Dir})
		if err != nil {
			return nil, err
		}
		store = s
	}

	logging.Info("Auth", "Using interactive device-code authentication (tenant %s)", cfg.TenantID)
	return newInteractiveProvider(cfg.OrganizationURL, cfg.TenantID, store), nil
}
