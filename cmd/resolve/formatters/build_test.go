package formatters_test

import (
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cmd/resolve/formatters"
	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(t *testing.T, a *formatters.Asset) []string {
	t.Helper()
	nodes, err := a.Nodes()
	require.NoError(t, err)
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key
	}
	return out
}

func TestFromEvent_LeavesHangOffTheEvent(t *testing.T) {
	asset, err := formatters.FromEvent(testhelpers.FootstepsEvent())
	require.NoError(t, err)

	assert.Equal(t, []string{"event/2003", "leaf/2003/0", "media/4", "soundbank/1001"}, keys(t, asset))
	edges, err := asset.Edges()
	require.NoError(t, err)
	assert.Equal(t, []formatters.Edge{
		{From: "event/2003", To: "leaf/2003/0"},
		{From: "event/2003", To: "soundbank/1001"},
		{From: "leaf/2003/0", To: "media/4"},
	}, edges)
}

func TestFromEvent_UnnamedConditionValues(t *testing.T) {
	event := cooked.NewLocalized[cooked.Event](1, "")
	event.Add(cooked.SFX, cooked.Event{ID: 1, SwitchContainerLeaves: []cooked.SwitchContainerLeaf{{
		GroupValues: []cooked.GroupValue{
			{Type: cooked.GroupSwitch, GroupID: 1, ID: 2},
			{Type: cooked.GroupState, GroupID: 10, ID: 12, DebugName: "Dead"},
		},
	}}})

	asset, err := formatters.FromEvent(event)
	require.NoError(t, err)

	nodes, err := asset.Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Event 1", nodes[0].Label)
	assert.Equal(t, "Switch 1:2 & Dead", nodes[1].Label)
}

func TestFromInitBank_MediaOnly(t *testing.T) {
	asset, err := formatters.FromInitBank(cooked.InitBank{
		SoundBank: cooked.SoundBank{ID: 1000, PathName: "Init.bnk"},
		Media:     []cooked.Media{{ID: 9001, PathName: "Media/9001.wem"}},
		Languages: []cooked.Language{cooked.SFX},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"media/9001", "soundbank/1000"}, keys(t, asset))
}

func TestFromSoundBank_OneNodePerLanguage(t *testing.T) {
	bank := cooked.NewLocalized[cooked.SoundBank](1100, "VO")
	bank.Add(cooked.Language{ID: 1, Name: "English(US)"}, cooked.SoundBank{ID: 1100, PathName: "English(US)/VO.bnk"})
	bank.Add(cooked.Language{ID: 2, Name: "French(France)"}, cooked.SoundBank{ID: 1100, PathName: "French(France)/VO.bnk"})

	asset, err := formatters.FromSoundBank(bank)
	require.NoError(t, err)

	assert.Equal(t, []string{"English(US)/soundbank/1100", "French(France)/soundbank/1100"}, keys(t, asset))
}

func TestJSONFormatter_WritesCookedData(t *testing.T) {
	asset, err := formatters.FromValue(cooked.Trigger{ID: 88, DebugName: "Hit"}, 88, "Hit")
	require.NoError(t, err)

	output, err := (&formatters.JSONFormatter{}).Format(asset, formatters.RenderOptions{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"triggerId": 88, "debugName": "Hit"}`, output)
	_, ok := (&formatters.JSONFormatter{}).GenerateURL(output)
	assert.False(t, ok)
}

func TestParseOutputFormat(t *testing.T) {
	f, ok := formatters.ParseOutputFormat("Mermaid")
	require.True(t, ok)
	assert.Equal(t, formatters.OutputFormatMermaid, f)

	_, ok = formatters.ParseOutputFormat("svg")
	assert.False(t, ok)
	assert.Equal(t, "dot, json, mermaid", formatters.SupportedFormats())
}
