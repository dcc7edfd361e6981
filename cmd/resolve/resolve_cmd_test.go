package resolve

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := testproject.WriteSample(t)
	cmd := NewCommand()
	cmd.SetArgs(append(args, "-m", dir, "-p", testproject.Platform))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestResolve_EventAsJSON(t *testing.T) {
	output, err := execute(t, "event", "Play_Simple")
	require.NoError(t, err)

	var event struct {
		ID        uint32 `json:"id"`
		Languages []struct {
			Language struct {
				Name string `json:"name"`
			} `json:"language"`
		} `json:"languages"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &event))
	assert.Equal(t, uint32(2001), event.ID)
	require.Len(t, event.Languages, 1)
	assert.Equal(t, "SFX", event.Languages[0].Language.Name)
}

func TestResolve_EventAsDOT(t *testing.T) {
	output, err := execute(t, "event", "2003", "-f", "dot", "--debug-names", "Name")
	require.NoError(t, err)

	assert.Contains(t, output, `"event/2003" [label="Play_Footsteps"`)
	assert.Contains(t, output, `"event/2003" -> "leaf/2003/0";`)
	assert.Contains(t, output, `"leaf/2003/0" -> "media/4";`)
}

func TestResolve_LocalizedEventAsMermaid(t *testing.T) {
	output, err := execute(t, "event", testproject.PlayVOGUID.String(), "-f", "mermaid")
	require.NoError(t, err)

	assert.Contains(t, output, "flowchart LR")
	assert.Contains(t, output, "[English(US)]")
	assert.Contains(t, output, "[French(France)]")
}

func TestResolve_SwitchInGroup(t *testing.T) {
	output, err := execute(t, "switch", "Grass", "--group", "1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"type": "Switch", "groupId": 1, "id": 2, "debugName": "\\Switches\\Surface\\Grass"}`, output)
}

func TestResolve_InitBankNeedsNoName(t *testing.T) {
	output, err := execute(t, "initbank", "-f", "dot")
	require.NoError(t, err)

	assert.Contains(t, output, `"soundbank/1000" -> "media/9001";`)
}

func TestResolve_UnknownKind(t *testing.T) {
	_, err := execute(t, "bus", "Reverb")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind: bus")
}

func TestResolve_UnknownFormat(t *testing.T) {
	_, err := execute(t, "event", "Play_Simple", "-f", "svg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: svg (valid options: dot, json, mermaid)")
}

func TestResolve_MissingAsset(t *testing.T) {
	_, err := execute(t, "event", "Play_Nothing")

	assert.ErrorIs(t, err, cooker.ErrNoRef)
}
