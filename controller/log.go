package controller

import (
	"io"
	"log/slog"
)

// The engine never returns errors: invariant violations and racy toggle
// events degrade to no-ops and are reported here. Silent by default.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger routes engine warnings to l. Passing nil restores the discard
// logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = l
}
