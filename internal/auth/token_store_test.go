package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestTokenStore_PutAndGet(t *testing.T) {
	store, err := NewTokenStore(TokenStoreConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create token store: %v", err)
	}

	orgURL := "https://dev.azure.com/contoso"
	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}

	if err := store.Put(orgURL, tok); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}

	got := store.Get(orgURL)
	if got == nil {
		t.Fatal("Expected stored token, got nil")
	}
	if got.AccessToken != tok.AccessToken {
		t.Errorf("Expected access token %q, got %q", tok.AccessToken, got.AccessToken)
	}
	if got.RefreshToken != tok.RefreshToken {
		t.Errorf("Expected refresh token %q, got %q", tok.RefreshToken, got.RefreshToken)
	}
}

func TestTokenStore_RejectsTokenInsideBuffer(t *testing.T) {
	store, err := NewTokenStore(TokenStoreConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create token store: %v", err)
	}

	orgURL := "https://dev.azure.com/contoso"
	if err := store.Put(orgURL, &oauth2.Token{
		AccessToken: "stale",
		Expiry:      time.Now().Add(30 * time.Second),
	}); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}

	if got := store.Get(orgURL); got != nil {
		t.Error("Expected nil for a token inside the validity buffer")
	}
}

func TestTokenStore_MissingToken(t *testing.T) {
	store, err := NewTokenStore(TokenStoreConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create token store: %v", err)
	}

	if got := store.Get("https://dev.azure.com/unknown"); got != nil {
		t.Error("Expected nil for an organization with no stored token")
	}
}

func TestTokenStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewTokenStore(TokenStoreConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create token store: %v", err)
	}

	orgURL := "https://dev.azure.com/contoso"
	if err := store.Put(orgURL, &oauth2.Token{
		AccessToken: "x",
		Expiry:      time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}

	if err := store.Delete(orgURL); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := store.Get(orgURL); got != nil {
		t.Error("Expected nil after delete")
	}
	if err := store.Delete(orgURL); err != nil {
		t.Errorf("Deleting a missing token should not fail: %v", err)
	}
}

func TestTokenStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTokenStore(TokenStoreConfig{Dir: dir})
	if err != nil {
		t.Fatalf("Failed to create token store: %v", err)
	}

	orgURL := "https://dev.azure.com/contoso"
	if err := store.Put(orgURL, &oauth2.Token{
		AccessToken: "x",
		Expiry:      time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read storage dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 token file, got %d", len(entries))
	}

	info, err := os.Stat(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("Failed to stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected token file mode 0600, got %o", perm)
	}
}
