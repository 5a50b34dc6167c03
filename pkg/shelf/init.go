// Package shelf provides virtualized scrollable containers for remote and
// controller driven UIs: lists, grids ("panels") and wrap-around lists that
// show large item collections inside a fixed viewport.
//
// Containers are renderer agnostic. A host binds items, forwards
// directional input and calls Render once per frame with a RenderContext;
// see the sdlrender and termrender packages for two implementations.
package shelf

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/internal"
)

// Options configures logging for the containers.
type Options struct {
	LogPath   string    // Full path for log file including filename (creates parent directories)
	LogLevel  string    // Application log level: debug, info, warn or error
	LogOutput io.Writer // Console sink replacing stdout, e.g. io.Discard under a full-screen UI
}

// Init configures the loggers. The internal logger only reports errors
// unless SHELF_DEBUG is set.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogOutput != nil {
		internal.SetLogOutput(options.LogOutput)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv(constants.DebugEnvVar) != "" || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.GetInternalLogger().Debug("Initialized shelf", "log_path", options.LogPath)
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
