package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
organizationUrl: https://dev.azure.com/contoso
pat: file-secret
http:
  port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dev.azure.com/contoso", cfg.OrganizationURL)
	assert.Equal(t, "file-secret", cfg.PAT)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	// Untouched fields keep their defaults.
	assert.Equal(t, "localhost", cfg.HTTP.Host)
	assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, DefaultTenantID, cfg.TenantID)
	assert.True(t, cfg.TokenStore.Enabled)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
organizationUrl: https://dev.azure.com/contoso
pat: file-secret
`)

	t.Setenv("AZDOMCP_PAT", "env-secret")
	t.Setenv("AZDOMCP_HTTP_HOST", "0.0.0.0")
	t.Setenv("AZDOMCP_HTTP_PORT", "9443")
	t.Setenv("AZDOMCP_TOKEN_STORE_ENABLED", "false")
	t.Setenv("AZDOMCP_TOKEN_STORE_DIR", "/var/cache/azdomcp")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.PAT, "environment overrides the file")
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 9443, cfg.HTTP.Port)
	assert.False(t, cfg.TokenStore.Enabled)
	assert.Equal(t, "/var/cache/azdomcp", cfg.TokenStore.Dir)
}

func TestLoadIgnoresUnprefixedEnv(t *testing.T) {
	path := writeConfig(t, `
organizationUrl: https://dev.azure.com/contoso
pat: file-secret
`)

	// Ambient variables without the AZDOMCP_ prefix must never leak into
	// the configuration, least of all the credential.
	t.Setenv("PAT", "ambient-secret")
	t.Setenv("ORGANIZATION_URL", "https://dev.azure.com/intruder")
	t.Setenv("HTTP_HOST", "10.0.0.1")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("TOKEN_STORE_DIR", "/tmp/elsewhere")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dev.azure.com/contoso", cfg.OrganizationURL)
	assert.Equal(t, "file-secret", cfg.PAT)
	assert.Equal(t, "localhost", cfg.HTTP.Host)
	assert.Equal(t, 8347, cfg.HTTP.Port)
	assert.Empty(t, cfg.TokenStore.Dir)
}

func TestLoadEnvOnly(t *testing.T) {
	// Point the loader at a default path that does not exist.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AZDOMCP_ORGANIZATION_URL", "https://dev.azure.com/fabrikam")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://dev.azure.com/fabrikam", cfg.OrganizationURL)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "an explicitly named config file must exist")
}

func TestLoadInvalidConfigIsFatal(t *testing.T) {
	path := writeConfig(t, `pat: secret-without-org`)

	_, err := Load(path)
	assert.Error(t, err, "missing organizationUrl must fail validation")
}
