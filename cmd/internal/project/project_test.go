package project

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/config"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *Flags) {
	t.Helper()

	flags := &Flags{}
	cmd := &cobra.Command{Use: "test"}
	flags.Register(cmd)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestFlags_OverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soundcook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: Mac\ndebugNameRule: Name\n"), 0o644))

	cmd, flags := parse(t, "--config", path, "--platform", "Windows")
	cfg, err := flags.Config(cmd)

	require.NoError(t, err)
	assert.Equal(t, "Windows", cfg.Platform)
	assert.Equal(t, cooked.DebugNameName, cfg.Rule())
}

func TestFlags_InvalidOverride(t *testing.T) {
	cmd, flags := parse(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))

	_, err := flags.Config(cmd)

	assert.Error(t, err)

	cmd, flags = parse(t, "--debug-names", "Loud")
	_, err = flags.Config(cmd)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOpen_SampleProject(t *testing.T) {
	dir := testproject.WriteSample(t)
	cmd, flags := parse(t, "-m", dir, "-p", testproject.Platform, "-l", "French(France)")

	p, err := Open(context.Background(), cmd, flags)
	require.NoError(t, err)

	event, err := p.Cooker.GetEventCookedData(cooker.EventInfo{AssetInfo: cooker.AssetInfo{GUID: testproject.PlayVOGUID}})
	require.NoError(t, err)
	assert.Len(t, event.Languages, 1)
}

func TestOpen_UnknownLanguage(t *testing.T) {
	dir := testproject.WriteSample(t)
	cmd, flags := parse(t, "-m", dir, "-p", testproject.Platform, "-l", "German")

	_, err := Open(context.Background(), cmd, flags)

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
