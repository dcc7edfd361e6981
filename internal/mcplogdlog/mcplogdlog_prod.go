//go:build !dev

package mcplogdlog

import "log/slog"

// Wrap returns next unchanged. Build with -tags dev to mirror records to the
// local log daemon.
func Wrap(next slog.Handler) slog.Handler {
	return next
}
