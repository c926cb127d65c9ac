package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTokenStorageDir is the default directory for persisted tokens,
// relative to the user's home directory.
const DefaultTokenStorageDir = ".config/azdomcp/tokens"

// TokenStore persists interactive tokens across process restarts so a
// restart within the token's lifetime does not force a new login.
//
// SECURITY: the store handles bearer credentials. Files are written with
// 0600 permissions in a 0700 directory, and token values are never logged.
type TokenStore struct {
	mu  sync.Mutex
	dir string
}

// TokenStoreConfig configures the token store.
type TokenStoreConfig struct {
	// Dir is the storage directory. Defaults to ~/.config/azdomcp/tokens.
	Dir string
}

// storedToken is the on-disk representation of a persisted token.
type storedToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry,omitempty"`
	OrgURL       string    `json:"org_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewTokenStore creates a token store rooted at the configured directory,
// creating it if necessary.
func NewTokenStore(cfg TokenStoreConfig) (*TokenStore, error) {
	dir := cfg.Dir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, DefaultTokenStorageDir)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create token storage directory: %w", err)
	}

	return &TokenStore{dir: dir}, nil
}

// Get returns the persisted token for an organization, or nil when no token
// exists or the stored one is already inside the validity buffer.
func (s *TokenStore) Get(orgURL string) *oauth2.Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	// #nosec G304 -- the path is derived from a hash, not user input
	data, err := os.ReadFile(s.tokenPath(orgURL))
	if err != nil {
		return nil
	}

	var st storedToken
	if err := json.Unmarshal(data, &st); err != nil {
		return nil
	}

	tok := &oauth2.Token{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		TokenType:    st.TokenType,
		Expiry:       st.Expiry,
	}
	if !tokenUsable(tok) {
		return nil
	}
	return tok
}

// Put persists a token for an organization, overwriting any previous one.
func (s *TokenStore) Put(orgURL string, tok *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := storedToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
		OrgURL:       orgURL,
		CreatedAt:    time.Now(),
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(s.tokenPath(orgURL), data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Delete removes the persisted token for an organization. Deleting a token
// that does not exist is not an error.
func (s *TokenStore) Delete(orgURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.tokenPath(orgURL))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// tokenPath maps an organization URL to a filesystem-safe file name.
func (s *TokenStore) tokenPath(orgURL string) string {
	hash := sha256.Sum256([]byte(orgURL))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:16])+".json")
}
