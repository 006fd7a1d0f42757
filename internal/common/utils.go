package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogLevel maps the -v count to a slog level: 0 errors only, 1 info,
// 2 and above debug.
func LogLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelError
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewLogger builds the stderr logger shared by every command. format is
// "json" (default) or "text".
func NewLogger(verbosity int, format string) *slog.Logger {
	return newLogger(os.Stderr, verbosity, format)
}

func newLogger(w io.Writer, verbosity int, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: LogLevel(verbosity)}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
