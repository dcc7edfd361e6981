package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LegacyCodeHQ/soundcook/cmd/internal/project"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishAndSubscribe(t *testing.T) {
	b := newBroker()
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	b.publish(`{"id":1}`)

	select {
	case got := <-ch:
		assert.Equal(t, `{"id":1}`, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBroker_NewSubscriberReceivesLatest(t *testing.T) {
	b := newBroker()
	b.publish(`{"id":2}`)

	ch := b.subscribe()
	defer b.unsubscribe(ch)

	select {
	case got := <-ch:
		assert.Equal(t, `{"id":2}`, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for latest report")
	}
}

func TestHandleLatest_NoReportYet(t *testing.T) {
	w := httptest.NewRecorder()

	handleLatest(newBroker())(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleLatest_ServesReport(t *testing.T) {
	b := newBroker()
	b.publish(`{"id":3}`)
	w := httptest.NewRecorder()

	handleLatest(b)(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":3}`, w.Body.String())
}

func TestHandleSSE_StreamsCookEvent(t *testing.T) {
	b := newBroker()
	b.publish(`{"id":4}`)

	server := httptest.NewServer(handleSSE(b))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	buf := make([]byte, 4096)
	n, _ := resp.Body.Read(buf)
	body := string(buf[:n])

	assert.Contains(t, body, "event: cook")
	assert.Contains(t, body, `data: {"id":4}`)
}

func openProject(t *testing.T) (*project.Project, string) {
	t.Helper()

	dir := testproject.WriteSample(t)
	var flags project.Flags
	cmd := &cobra.Command{Use: "test"}
	flags.Register(cmd)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.ParseFlags([]string{
		"-m", dir,
		"-p", testproject.Platform,
		"--generated", testproject.WriteGeneratedFiles(t),
	}))

	p, err := project.Open(context.Background(), cmd, &flags)
	require.NoError(t, err)
	return p, dir
}

func TestRecooker_CooksAndPublishes(t *testing.T) {
	p, _ := openProject(t)
	reg := prometheus.NewRegistry()
	b := newBroker()
	var out bytes.Buffer
	r := newRecooker(p, t.TempDir(), "Wwise", reg, b, &out)

	report := r.cook(context.Background(), false)

	assert.Equal(t, int64(1), report.ID)
	assert.Equal(t, testproject.Platform, report.Platform)
	assert.Equal(t, 14, report.Events)
	assert.Equal(t, 2, report.AuxBuses)
	assert.Equal(t, 1, report.Sharesets)
	assert.Equal(t, 1, report.Failed)
	assert.Positive(t, report.Staged)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "Play_Broken")
	assert.Contains(t, out.String(), "Cooked 14 events, 2 aux buses and 1 sharesets")

	var published cookReport
	require.NoError(t, json.Unmarshal([]byte(b.last()), &published))
	assert.Equal(t, report.Staged, published.Staged)
}

func TestRecooker_RecooksChangedFiles(t *testing.T) {
	p, _ := openProject(t)
	r := newRecooker(p, t.TempDir(), "Wwise", prometheus.NewRegistry(), newBroker(), io.Discard)

	first := r.cook(context.Background(), false)
	second := r.cook(context.Background(), true)

	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, first.Staged, second.Staged, "a fresh sandbox stages every file again")
}

func TestRecooker_FailedReloadSkipsCook(t *testing.T) {
	p, dir := openProject(t)
	var out bytes.Buffer
	r := newRecooker(p, t.TempDir(), "Wwise", prometheus.NewRegistry(), newBroker(), &out)
	require.NoError(t, os.WriteFile(filepath.Join(dir, testproject.Platform, "Broken.json"), []byte("{"), 0o644))

	report := r.cook(context.Background(), true)

	assert.Zero(t, report.Events)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, out.String(), "Metadata reload failed")
}

func TestServer_ServesMetrics(t *testing.T) {
	p, _ := openProject(t)
	reg := prometheus.NewRegistry()
	b := newBroker()
	r := newRecooker(p, t.TempDir(), "Wwise", reg, b, io.Discard)
	r.cook(context.Background(), false)

	server := httptest.NewServer(newServer(b, reg, 0).Handler)
	defer server.Close()

	resp, err := http.Get(server.URL + routeMetrics)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "soundcook_stage_files_total")
}

func TestWatchAndRecook_RecooksOnMetadataChange(t *testing.T) {
	p, dir := openProject(t)
	b := newBroker()
	r := newRecooker(p, t.TempDir(), "Wwise", prometheus.NewRegistry(), b, io.Discard)
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchAndRecook(ctx, filepath.Join(dir, testproject.Platform), r)
	}()

	// Give the watcher time to register before touching the files.
	time.Sleep(100 * time.Millisecond)
	info := filepath.Join(dir, testproject.Platform, "SoundbanksInfoA.json")
	data, err := os.ReadFile(info)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(info, data, 0o644))

	select {
	case got := <-ch:
		var report cookReport
		require.NoError(t, json.Unmarshal([]byte(got), &report))
		assert.Equal(t, int64(1), report.ID)
		assert.Equal(t, 14, report.Events)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a re-cook")
	}

	cancel()
	assert.NoError(t, <-done)
}
