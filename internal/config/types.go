package config

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultAPIVersion is the Azure DevOps REST API version sent with every
// request via the api-version query parameter.
const DefaultAPIVersion = "7.2-preview.1"

// DefaultTenantID is the Microsoft Entra tenant used for the interactive
// device-code flow when no tenant is configured. "organizations" lets any
// work or school account sign in.
const DefaultTenantID = "organizations"

// Config is the top-level configuration structure for azdomcp.
//
// The same structure is populated from the YAML config file and then
// overridden from the environment (prefix AZDOMCP, e.g. AZDOMCP_PAT).
type Config struct {
	// OrganizationURL is the Azure DevOps organization base URL,
	// e.g. https://dev.azure.com/contoso. Required.
	OrganizationURL string `yaml:"organizationUrl" split_words:"true"`

	// PAT is an optional personal access token. When set, the process runs
	// in static-token mode and never attempts an interactive login.
	PAT string `yaml:"pat,omitempty"`

	// APIVersion overrides the REST api-version query parameter.
	APIVersion string `yaml:"apiVersion,omitempty" split_words:"true"`

	// TenantID selects the Microsoft Entra tenant for interactive login.
	TenantID string `yaml:"tenantId,omitempty" split_words:"true"`

	HTTP       HTTPConfig       `yaml:"http,omitempty"`
	TokenStore TokenStoreConfig `yaml:"tokenStore,omitempty" split_words:"true"`
}

// HTTPConfig defines where the streamable-HTTP transport listens. Keys
// compose under the parent field, e.g. AZDOMCP_HTTP_HOST.
type HTTPConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// TokenStoreConfig controls on-disk persistence of interactive tokens.
type TokenStoreConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
}

// Addr returns the host:port listen address for the HTTP transport.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// StaticMode reports whether a static secret is configured. Exactly one
// authentication mode is active for the process lifetime; presence of the
// PAT selects static-token mode, its absence selects interactive mode.
func (c *Config) StaticMode() bool {
	return c.PAT != ""
}

// Validate checks the configuration for fatal errors. Validation failures
// abort startup; nothing here is recoverable per-call.
func (c *Config) Validate() error {
	if c.OrganizationURL == "" {
		return fmt.Errorf("organizationUrl is required")
	}
	if _, err := OrganizationFromURL(c.OrganizationURL); err != nil {
		return err
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port %d out of range", c.HTTP.Port)
	}
	return nil
}

// OrganizationFromURL extracts the organization name from an Azure DevOps
// base URL. Both URL forms are accepted:
//
//	https://dev.azure.com/{organization}
//	https://{organization}.visualstudio.com
//
// A URL matching neither form is a configuration error.
func OrganizationFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid organization URL %q: %w", raw, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", fmt.Errorf("invalid organization URL %q: missing scheme", raw)
	}

	host := strings.ToLower(u.Hostname())

	// Legacy form: the organization is the leftmost host label.
	if org, ok := strings.CutSuffix(host, ".visualstudio.com"); ok {
		if org == "" || strings.Contains(org, ".") {
			return "", fmt.Errorf("invalid organization URL %q: cannot determine organization from host", raw)
		}
		return org, nil
	}

	// Current form: the organization is the first path segment.
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 || segments[0] == "" {
		return "", fmt.Errorf("invalid organization URL %q: missing organization path segment", raw)
	}
	return segments[0], nil
}
