package cook

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	base := []string{
		"-m", testproject.WriteSample(t),
		"-p", testproject.Platform,
		"--generated", testproject.WriteGeneratedFiles(t),
	}
	cmd := NewCommand()
	cmd.SetArgs(append(base, args...))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCook_SelectedEvent(t *testing.T) {
	sandbox := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "soundcook.prom")

	stdout, stderr, err := execute(t, "-e", "Play_Simple", "-o", sandbox, "--metrics-file", metricsFile)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "Cooked 1 events, 0 aux buses and 0 sharesets")
	assert.Contains(t, stdout, "(3 files staged)")
	assert.FileExists(t, filepath.Join(sandbox, "Wwise", "Main.bnk"))
	assert.FileExists(t, filepath.Join(sandbox, "Wwise", "Init.bnk"))

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "soundcook_stage_files_total 3")
}

func TestCook_CustomPrefix(t *testing.T) {
	sandbox := t.TempDir()

	_, stderr, err := execute(t, "-e", "2001", "-o", sandbox, "--prefix", "Audio")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.FileExists(t, filepath.Join(sandbox, "Audio", "Main.bnk"))
}

func TestCook_WholeProjectReportsFailures(t *testing.T) {
	sandbox := t.TempDir()

	stdout, _, err := execute(t, "-o", sandbox)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Play_Broken")
	assert.Contains(t, stdout, "1 assets failed")
	assert.FileExists(t, filepath.Join(sandbox, "Wwise", "Shared.bnk"))
}
