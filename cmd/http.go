package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"azdomcp/internal/server"

	"github.com/spf13/cobra"
)

// httpHost overrides the configured listen host when non-empty.
var httpHost string

// httpPort overrides the configured listen port when non-zero.
var httpPort int

// httpCmd defines the http command structure.
// It serves the same tool catalog as stdio mode, but over the MCP
// streamable-HTTP transport so several clients can share one instance.
var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve MCP over streamable HTTP",
	Long: `Starts the MCP streamable-HTTP server. Remote clients, including
azdomcp bridge processes, connect to this endpoint and share one
credential provider and one token cache.`,
	Args: cobra.NoArgs,
	RunE: runHTTP,
}

// runHTTP is the main entry point for the http command
func runHTTP(cmd *cobra.Command, args []string) error {
	router, cfg, err := buildRouter()
	if err != nil {
		return err
	}

	host := cfg.HTTP.Host
	if httpHost != "" {
		host = httpHost
	}
	port := cfg.HTTP.Port
	if httpPort != 0 {
		port = httpPort
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.ServeHTTP(ctx, router, addr, GetVersion())
}

func init() {
	rootCmd.AddCommand(httpCmd)

	httpCmd.Flags().StringVar(&httpHost, "host", "", "Listen host (overrides configuration)")
	httpCmd.Flags().IntVar(&httpPort, "port", 0, "Listen port (overrides configuration)")
}
