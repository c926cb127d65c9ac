package cmd

import (
	"errors"
	"os"

	"azdomcp/internal/auth"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthFailed indicates the credential exchange failed.
	ExitCodeAuthFailed = 3
)

// rootCmd represents the base command for the azdomcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "azdomcp",
	Short: "Expose Azure DevOps as MCP tools",
	Long: `azdomcp exposes the Azure DevOps REST API as MCP tools for AI
assistants. It serves the tool catalog over stdio or streamable HTTP, and
can bridge a stdio client to a remote azdomcp HTTP instance.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// configPath points at an explicit configuration file. Empty means the
// default location plus environment overrides.
var configPath string

// debug enables verbose logging across the application.
var debug bool

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "azdomcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return ExitCodeAuthFailed
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
