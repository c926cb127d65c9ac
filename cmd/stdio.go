package cmd

import (
	"os/signal"
	"syscall"

	"azdomcp/internal/server"

	"github.com/spf13/cobra"
)

// stdioCmd defines the stdio command structure.
// This is the default integration mode for AI assistants: the MCP
// protocol runs over stdin/stdout and all diagnostics go to stderr.
var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Long: `Starts the MCP server on standard input and output. This is the
transport AI assistants launch directly: the assistant owns the process
and speaks MCP over the pipes. All logging is written to stderr so the
protocol stream stays clean.`,
	Args: cobra.NoArgs,
	RunE: runStdio,
}

// runStdio is the main entry point for the stdio command
func runStdio(cmd *cobra.Command, args []string) error {
	router, _, err := buildRouter()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.ServeStdio(ctx, router, GetVersion())
}

func init() {
	rootCmd.AddCommand(stdioCmd)
}
