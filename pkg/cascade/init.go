// Package cascade provides a cascading dropdown menu for building
// breadcrumb-style nested menus in UI frameworks.
//
// A menu is an immutable Tree built once with Build or New. A State is the
// cursor over that tree; it descends into submenus, ascends to parents and
// resets to the root. Menu ties a State to an open/closed flag and a
// selection callback, and exposes a View that presentation adapters draw.
// Drawing, animation and host wiring are left to the adapter: the package
// only decides what is shown and which way a transition slides.
package cascade

import (
	"log/slog"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
	"github.com/BrandonKowalski/cascade/pkg/cascade/internal"
)

// Options configures process-wide logging.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // "debug", "info", "warn" or "error"; empty keeps LOG_LEVEL or the default
}

// Init configures the process-wide logger. It is optional: menus log to
// stderr at warn level without it. Call before creating menus.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	} else if constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	}
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the process-wide logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the process-wide logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
