package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"azdomcp/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeError, getExitCode(errors.New("plain failure")))

	wrapped := fmt.Errorf("starting: %w", &auth.Error{Err: errors.New("device flow rejected")})
	assert.Equal(t, ExitCodeAuthFailed, getExitCode(wrapped))
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3-test")

	var out bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	assert.Equal(t, "azdomcp version 1.2.3-test\n", out.String())
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"stdio", "http", "bridge", "version"} {
		require.True(t, names[want], "expected subcommand %q", want)
	}
}
