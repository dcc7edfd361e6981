// Package logging builds the slog logger shared by the commands.
package logging

import (
	"io"
	"log/slog"

	"github.com/LegacyCodeHQ/soundcook/internal/mcplogdlog"
)

// New returns a text logger writing to w. Debug records are kept only when
// verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(mcplogdlog.Wrap(handler))
}
