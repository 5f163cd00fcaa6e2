// Package logger provides the process-wide printf-style logger used by the
// library and the ewsctl command.
//
// Debug output is suppressed unless verbose mode is enabled with SetVerbose.
// Messages carry their component as a prefix ("ews: ...", "transport: ...").
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	handler slog.Handler
	log     *slog.Logger
)

func init() {
	level.Set(slog.LevelInfo)
	setOutput(os.Stderr)
}

func setOutput(w io.Writer) {
	handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	log = slog.New(handler)
}

// SetVerbose toggles debug output.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// IsVerbose reports whether debug output is enabled.
func IsVerbose() bool {
	return level.Level() <= slog.LevelDebug
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(w)
}

func emit(l slog.Level, format string, args ...any) {
	mu.RLock()
	lg := log
	mu.RUnlock()

	ctx := context.Background()
	if !lg.Enabled(ctx, l) {
		return
	}
	lg.Log(ctx, l, fmt.Sprintf(format, args...))
}

// Debug logs a formatted message when verbose mode is on.
func Debug(format string, args ...any) { emit(slog.LevelDebug, format, args...) }

// Info logs a formatted informational message.
func Info(format string, args ...any) { emit(slog.LevelInfo, format, args...) }

// Warn logs a formatted warning.
func Warn(format string, args ...any) { emit(slog.LevelWarn, format, args...) }

// Error logs a formatted error.
func Error(format string, args ...any) { emit(slog.LevelError, format, args...) }
