package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"azdomcp/internal/server"
	"azdomcp/pkg/logging"

	"github.com/spf13/cobra"
)

// bridgeEndpoint is the remote streamable-HTTP endpoint to relay to.
var bridgeEndpoint string

// bridgeCmd defines the bridge command structure.
// The bridge lets a stdio-only client use a shared remote instance: it
// mirrors the remote tool list locally and relays every call unchanged.
// It loads no configuration and holds no credentials.
var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Bridge stdio to a remote azdomcp HTTP instance",
	Long: `Starts a stdio MCP server that forwards every request to a remote
azdomcp streamable-HTTP instance and relays the responses verbatim. The
remote instance owns authentication; the bridge never reads a PAT or a
token and adds nothing to the payloads it relays.`,
	Args: cobra.NoArgs,
	RunE: runBridge,
}

// runBridge is the main entry point for the bridge command
func runBridge(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if debug {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bridge := server.NewBridge(bridgeEndpoint)
	return bridge.Run(ctx, GetVersion())
}

func init() {
	rootCmd.AddCommand(bridgeCmd)

	bridgeCmd.Flags().StringVar(&bridgeEndpoint, "endpoint", "http://localhost:8347/mcp", "Remote azdomcp streamable-HTTP endpoint")
}
