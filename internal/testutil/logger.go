package testutil

import (
	"bytes"
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// CaptureLogger returns a debug-level JSON logger and the buffer it writes
// to, for asserting on log fields
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
