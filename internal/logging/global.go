package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalMu     sync.RWMutex
	globalLogger = NewLogger(InfoLevel, os.Stdout)
)

// InitGlobalLogger configures the process-wide logger. format "console"
// writes human-readable output; anything else writes JSON.
func InitGlobalLogger(level LogLevel, format string) zerolog.Logger {
	var logger zerolog.Logger
	if format == "console" {
		logger = NewLogger(level, zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = NewLogger(level, os.Stdout)
	}

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
	return logger
}

// GetGlobalLogger returns the process-wide logger.
func GetGlobalLogger() zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// WithComponent returns the global logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return GetGlobalLogger().With().Str("component", component).Logger()
}
