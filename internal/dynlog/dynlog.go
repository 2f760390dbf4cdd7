// Package dynlog provides the process-wide structured logger used
// throughout the integrator stack: a single log/slog-backed handle
// with Debug/Info/Warning convenience methods, mirroring the
// original solver's util::Log::Get() singleton.
package dynlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Get returns the process-wide logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault swaps the process-wide logger, letting cmd/heavytop pick
// a different handler (JSON output, verbosity level) at startup.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// Debug logs at debug level through the current logger.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs at info level through the current logger.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warning logs at warn level through the current logger.
func Warning(msg string, args ...any) { Get().Warn(msg, args...) }
