//go:build dev

package mcplogdlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"
)

const appName = "soundcook"

var socketPath = "/tmp/mcplogd.sock"

type entry struct {
	App       string         `json:"app"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// handler mirrors every record it passes on to the log daemon socket.
type handler struct {
	next  slog.Handler
	attrs []slog.Attr
	group string
}

// Wrap returns a handler that forwards records to next and copies them to
// the local log daemon. Records are dropped silently when the daemon is not
// running.
func Wrap(next slog.Handler) slog.Handler {
	return &handler{next: next}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	metadata := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		metadata[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		metadata[key] = a.Value.Resolve().Any()
		return true
	})
	send(strings.ToLower(r.Level.String()), r.Message, r.Time, metadata)
	return h.next.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefixed := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	prefixed = append(prefixed, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		prefixed = append(prefixed, a)
	}
	return &handler{next: h.next.WithAttrs(attrs), attrs: prefixed, group: h.group}
}

func (h *handler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &handler{next: h.next.WithGroup(name), attrs: h.attrs, group: group}
}

func send(level, message string, at time.Time, metadata map[string]any) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return
	}
	defer conn.Close()

	if at.IsZero() {
		at = time.Now()
	}
	e := entry{
		App:       appName,
		Level:     level,
		Message:   message,
		Timestamp: at.UTC().Format(time.RFC3339Nano),
		Metadata:  metadata,
	}
	data, _ := json.Marshal(e)
	fmt.Fprintf(conn, "%s\n", data)
}
