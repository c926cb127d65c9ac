package cmd

import (
	"fmt"
	"os"

	"azdomcp/internal/auth"
	"azdomcp/internal/azdo"
	"azdomcp/internal/config"
	"azdomcp/internal/dispatch"
	"azdomcp/internal/tools"
	"azdomcp/pkg/logging"
)

// buildRouter performs the common startup sequence for the serving
// commands: load configuration, initialize logging, construct the
// credential provider, backend client, and tool catalog. Logging always
// goes to stderr so stdout stays free for the stdio transport.
func buildRouter() (*dispatch.Router, *config.Config, error) {
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	provider, err := auth.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := azdo.NewClient(cfg, provider)
	if err != nil {
		return nil, nil, err
	}

	registry := tools.NewCatalog(client)
	return dispatch.NewRouter(registry), cfg, nil
}
