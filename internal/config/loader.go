package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for all environment overrides,
// e.g. AZDOMCP_ORGANIZATION_URL, AZDOMCP_PAT.
const EnvPrefix = "AZDOMCP"

// DefaultConfigPath returns the default config file location,
// ~/.config/azdomcp/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "azdomcp", "config.yaml"), nil
}

// Load reads the configuration in three layers: built-in defaults, the YAML
// file at path (skipped when the file does not exist and path is the
// default location), and environment variable overrides.
//
// The returned configuration has been validated; errors here are fatal
// startup errors.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; env vars may carry everything.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		APIVersion: DefaultAPIVersion,
		TenantID:   DefaultTenantID,
		HTTP: HTTPConfig{
			Host: "localhost",
			Port: 8347,
		},
		TokenStore: TokenStoreConfig{
			Enabled: true,
		},
	}
}
