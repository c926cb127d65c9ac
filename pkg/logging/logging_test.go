package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarn:    "WARN",
		LevelError:   "ERROR",
		LogLevel(99): "UNKNOWN",
		LogLevel(-1): "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, &buf)

	Debug("Test", "debug message")
	Info("Test", "info message")
	Warn("Test", "warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at Warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at Warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be logged at Warn level")
	}
}

func TestErrorIncludesErrAndSubsystem(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Error("Backend", errors.New("connection refused"), "request to %s failed", "example.com")

	out := buf.String()
	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected error detail in output, got: %s", out)
	}
	if !strings.Contains(out, "subsystem=Backend") {
		t.Errorf("expected subsystem attribute in output, got: %s", out)
	}
	if !strings.Contains(out, "request to example.com failed") {
		t.Errorf("expected formatted message in output, got: %s", out)
	}
}

func TestFallbackBeforeInit(t *testing.T) {
	defaultLogger = nil
	if Fallback() == nil {
		t.Fatal("Fallback() returned nil before Init")
	}
}
