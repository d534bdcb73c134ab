// Package logging provides mdslim's structured logging, backed by
// charmbracelet/log.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// levelEnvVar sets the initial level of the default logger before any
// flag parsing runs, e.g. MDSLIM_LOG_LEVEL=debug.
const levelEnvVar = "MDSLIM_LOG_LEVEL"

//nolint:gochecknoglobals // one process-wide logger shared by the CLI layers
var (
	defaultLogger *log.Logger
	initDefault   sync.Once
)

// New creates a logger writing to stderr at the given level. Levels
// are "debug", "info", "warn", and "error"; anything else means "info".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the process-wide logger, creating it on first use
// with the level named by MDSLIM_LOG_LEVEL.
func Default() *log.Logger {
	initDefault.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(os.Getenv(levelEnvVar))
		}
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel adjusts the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
