package cooker_test

import (
	"context"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEvents_JoinsFailures(t *testing.T) {
	c := newSampleCooker(t, cooker.WithWorkers(2))

	events, err := c.ResolveEvents(context.Background(), []cooker.EventInfo{
		eventNamed("Play_Simple"), eventNamed("Play_Broken"), eventNamed("Play_Music"),
	})

	assert.ErrorIs(t, err, cooker.ErrEmptyPath)
	require.Len(t, events, 2)
	assert.Equal(t, uint32(2001), events[0].ID)
	assert.Equal(t, uint32(2002), events[1].ID)
}

func TestResolveEvents_CanceledContext(t *testing.T) {
	c := newSampleCooker(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events, err := c.ResolveEvents(ctx, []cooker.EventInfo{eventNamed("Play_Simple")})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, events)
}

func TestCookAll(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, root := newSandbox(t)

	summary, err := c.CookAll(context.Background(), sandbox, cooker.Selection{})

	assert.ErrorIs(t, err, cooker.ErrEmptyPath, "Play_Broken has no media path")
	assert.Equal(t, cooker.Summary{Events: 14, AuxBuses: 2, Sharesets: 1, Failed: 1}, summary)
	assert.Equal(t, "Init.bnk", readStaged(t, root, "Init.bnk"))
	assert.Equal(t, "Shared.bnk", readStaged(t, root, "Shared.bnk"))
	assert.Equal(t, "Media/7.wem", readStaged(t, root, "Media/7.wem"))
	assert.Equal(t, "Cache/8.wem", readStaged(t, root, "Cache/8.wem"))
}

func TestCookAll_Selection(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, _ := newSandbox(t)

	summary, err := c.CookAll(context.Background(), sandbox, cooker.Selection{
		Events: []cooker.EventInfo{eventNamed("Play_Simple")},
	})

	require.NoError(t, err)
	assert.Equal(t, cooker.Summary{Events: 1}, summary)
	assert.Len(t, sandbox.Staged(), 3, "init bank, its media and Main.bnk")
}
