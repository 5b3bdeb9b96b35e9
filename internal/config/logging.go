package config

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/greenstream/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logMu protects concurrent access to Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger resets the package-level Logger to a console logger on stderr
// at level. Unknown levels yield info.
func InitLogger(level string) {
	SetLogger(logging.NewLogger(logging.Config{Level: level}, os.Stderr))
}

// SetLogger replaces the package-level Logger, typically with the one a
// command built from the logging section.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	Logger = l
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// init initializes the package-level default logger at info level.
//
//nolint:gochecknoinits // intentional: package-level logger must be initialized before use
func init() {
	InitLogger("info")
}

// ToLoggingConfig converts the logging section to a logging.Config.
// A configured file selects file output, otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global configuration's logging
// section. Flag overrides are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
