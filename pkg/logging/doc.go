// Package logging provides structured logging for azdomcp on top of the
// standard library slog package.
//
// Every log call carries a subsystem identifier ("Auth", "Backend",
// "Dispatch", "Server", "Bridge", ...) so transport-facing logs can be
// filtered per component.
//
// Output always goes to a caller-supplied writer, stderr by convention:
// the stdio transport owns stdout for the MCP protocol stream, so nothing
// in this process may log there.
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Bootstrap", "starting azdomcp %s", version)
//	logging.Error("Backend", err, "request to %s failed", url)
package logging
