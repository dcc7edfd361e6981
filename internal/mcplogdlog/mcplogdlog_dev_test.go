//go:build dev

package mcplogdlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_MirrorsRecordsToSocket(t *testing.T) {
	socketPath = filepath.Join(t.TempDir(), "mcplogd.sock")
	ln, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan entry, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		var e entry
		if line, err := bufio.NewReader(conn).ReadBytes('\n'); err == nil && json.Unmarshal(line, &e) == nil {
			received <- e
		}
	}()

	var out bytes.Buffer
	logger := slog.New(Wrap(slog.NewTextHandler(&out, nil))).With("platform", "Windows")
	logger.Warn("Posted event not found", "event", "Play_Missing")

	select {
	case e := <-received:
		assert.Equal(t, "soundcook", e.App)
		assert.Equal(t, "warn", e.Level)
		assert.Equal(t, "Posted event not found", e.Message)
		assert.Equal(t, map[string]any{"platform": "Windows", "event": "Play_Missing"}, e.Metadata)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the mirrored record")
	}
	assert.Contains(t, out.String(), "Play_Missing")
}
