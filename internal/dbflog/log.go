// Package dbflog holds the package-level logger shared by the codec and
// the top-level dispatch in pkg/dbof. It discards everything by default, exactly like
// cmd/hiveexplorer/logger, since this is a library and must stay silent
// until a caller opts in.
package dbflog

import (
	"io"
	"log/slog"
)

// L is the active logger. Library code logs at Debug level only.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces L, letting embedders route DBOF diagnostics into
// their own logging pipeline.
func SetLogger(l *slog.Logger) {
	if l != nil {
		L = l
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }
