// Package debug provides conditional debug logging for ric.
//
// Debug logging is enabled by setting the RIC_DEBUG environment variable:
//
//	RIC_DEBUG=1 ric add
//
// When enabled, records are written to stderr as slog text lines. When
// disabled (default), every function is a no-op.
package debug

import (
	"io"
	"log/slog"
	"os"
	"time"
)

var (
	enabled bool
	logger  *slog.Logger
)

func init() {
	if os.Getenv("RIC_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is on.
func Enabled() bool {
	return enabled
}

// SetEnabled turns debug logging on or off, creating the stderr logger on
// first use.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		SetOutput(os.Stderr)
	}
}

// SetOutput redirects debug records to w.
func SetOutput(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("component", "ric")
}

// Log writes a debug record with structured key/value args.
func Log(msg string, args ...any) {
	if !enabled {
		return
	}
	logger.Debug(msg, args...)
}

// LogTiming records how long an operation took.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Debug("timing", "op", name, "elapsed", d)
}
