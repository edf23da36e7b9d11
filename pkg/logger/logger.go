// Package logger is a small leveled wrapper over the standard library's
// log package, configured from the LOG_LEVEL environment variable. The
// teacher and the rest of the retrieved corpus reach for log.Printf
// directly rather than a structured logging library, so this package
// keeps that idiom and only adds the level gate cmd/server needs.
package logger

import (
	"log"
	"os"
	"strings"
)

// Level is a logging verbosity threshold.
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

var current = LevelInfo

// Init sets the active level from LOG_LEVEL ("debug", "info", or
// "error"; defaults to "info" for anything else).
func Init() {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		current = LevelDebug
	case "error":
		current = LevelError
	default:
		current = LevelInfo
	}
}

// SetLevel overrides the active level directly, bypassing LOG_LEVEL.
// Tests use this instead of touching the environment.
func SetLevel(l Level) { current = l }

// Debug logs at debug level, shown only when LOG_LEVEL=debug.
func Debug(format string, v ...any) {
	if current >= LevelDebug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs at info level, shown for LOG_LEVEL=info or debug.
func Info(format string, v ...any) {
	if current >= LevelInfo {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error always logs, regardless of the configured level.
func Error(format string, v ...any) {
	log.Printf("[ERROR] "+format, v...)
}
