package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"azdomcp/pkg/logging"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// tokenValidityBuffer is the margin applied when deciding whether a cached
// token can be reused. It accounts for clock skew, network latency, and the
// time a long catalog operation may spend holding the header.
const tokenValidityBuffer = 60 * time.Second

const (
	// azureDevOpsScope requests an access token for the Azure DevOps
	// resource (the well-known application ID of the service).
	azureDevOpsScope = "499b84ac-1321-427f-aa17-267ca6975798/.default"

	// publicClientID is the Azure CLI public client, usable for device-code
	// sign-in without a client secret.
	publicClientID = "04b07795-8ddb-461a-bbee-02f9e1bf7b46"
)

// interactiveProvider acquires bearer tokens through the Microsoft identity
// platform device-code flow and caches them until shortly before expiry.
//
// The cache and the in-flight acquisition are the only mutable shared state
// in the process. Concurrent callers racing on a cache miss are collapsed
// into a single upstream exchange via singleflight; every waiter receives
// that one exchange's token or error.
type interactiveProvider struct {
	orgURL string
	store  *TokenStore

	mu    sync.RWMutex
	token *oauth2.Token

	flight singleflight.Group

	// exchange performs the device-code login. Swapped out in tests.
	exchange func(ctx context.Context) (*oauth2.Token, error)
}

func newInteractiveProvider(orgURL, tenantID string, store *TokenStore) *interactiveProvider {
	oauthCfg := &oauth2.Config{
		ClientID: publicClientID,
		Scopes:   []string{azureDevOpsScope, "offline_access"},
		Endpoint: oauth2.Endpoint{
			AuthURL:       fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/authorize", tenantID),
			TokenURL:      fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
			DeviceAuthURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/devicecode", tenantID),
		},
	}

	p := &interactiveProvider{
		orgURL: orgURL,
		store:  store,
	}
	p.exchange = func(ctx context.Context) (*oauth2.Token, error) {
		return deviceCodeLogin(ctx, oauthCfg)
	}
	return p
}

// Authorization returns a bearer header for a token whose expiry is more
// than tokenValidityBuffer away, refreshing through a single shared
// exchange when necessary.
func (p *interactiveProvider) Authorization(ctx context.Context) (string, error) {
	if tok := p.cached(); tok != nil {
		return bearer(tok), nil
	}

	v, err, _ := p.flight.Do("token", func() (interface{}, error) {
		// A previous flight may have refreshed the cache between this
		// caller's miss and its turn in the group.
		if tok := p.cached(); tok != nil {
			return tok, nil
		}

		if p.store != nil {
			if tok := p.store.Get(p.orgURL); tok != nil {
				p.setCached(tok)
				return tok, nil
			}
		}

		tok, err := p.exchange(ctx)
		if err != nil {
			return nil, err
		}

		p.setCached(tok)
		if p.store != nil {
			if err := p.store.Put(p.orgURL, tok); err != nil {
				logging.Warn("Auth", "Failed to persist token: %v", err)
			}
		}
		logging.Info("Auth", "Acquired access token, expires %s", tok.Expiry.Format(time.RFC3339))
		return tok, nil
	})
	if err != nil {
		return "", &Error{Err: err}
	}

	return bearer(v.(*oauth2.Token)), nil
}

// cached returns the in-memory token if it is still usable, nil otherwise.
func (p *interactiveProvider) cached() *oauth2.Token {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if tokenUsable(p.token) {
		return p.token
	}
	return nil
}

func (p *interactiveProvider) setCached(tok *oauth2.Token) {
	p.mu.Lock()
	p.token = tok
	p.mu.Unlock()
}

// tokenUsable reports whether the token's expiry is strictly more than
// tokenValidityBuffer in the future. A token with no expiry never expires.
func tokenUsable(tok *oauth2.Token) bool {
	if tok == nil || tok.AccessToken == "" {
		return false
	}
	if tok.Expiry.IsZero() {
		return true
	}
	return tok.Expiry.After(time.Now().Add(tokenValidityBuffer))
}

func bearer(tok *oauth2.Token) string {
	return "Bearer " + tok.AccessToken
}

// deviceCodeLogin runs the out-of-band device-code exchange: the user
// completes the login in a browser while this call polls the token endpoint.
func deviceCodeLogin(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	resp, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("device authorization request failed: %w", err)
	}

	// The verification prompt goes to stderr with the rest of the logs;
	// stdout belongs to the stdio transport.
	logging.Info("Auth", "To sign in, open %s and enter the code %s", resp.VerificationURI, resp.UserCode)

	tok, err := cfg.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("device token exchange failed: %w", err)
	}
	return tok, nil
}
