package cooker_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/LegacyCodeHQ/soundcook/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExternalSourceCooker struct {
	mu      sync.Mutex
	cookies []uint32
}

func (r *recordingExternalSourceCooker) CookExternalSource(source cooked.ExternalSource, _ *stage.Sandbox) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cookies = append(r.cookies, source.Cookie)
	return nil
}

func newSandbox(t *testing.T) (*stage.Sandbox, string) {
	t.Helper()
	root := t.TempDir()
	return stage.New(root, stage.WithPrefix("Wwise"), stage.WithLogger(discardLogger())), root
}

func readStaged(t *testing.T, root, pathName string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "Wwise", filepath.FromSlash(pathName)))
	require.NoError(t, err)
	return string(data)
}

func TestCookEventToSandbox_StagesLeavesToo(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, root := newSandbox(t)
	event := sfxEvent(t, c, eventNamed("Play_Footsteps"))

	err := c.CookEventToSandbox(event, sandbox)

	require.NoError(t, err)
	assert.Len(t, sandbox.Staged(), 4)
	for _, pathName := range []string{"Main.bnk", "Media/4.wem", "Media/5.wem", "Media/6.wem"} {
		assert.Equal(t, pathName, readStaged(t, root, pathName))
	}
}

func TestCookEventToSandbox_ExternalSources(t *testing.T) {
	esc := &recordingExternalSourceCooker{}
	c := newSampleCooker(t,
		cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)),
		cooker.WithExternalSourceCooker(esc))
	sandbox, _ := newSandbox(t)

	err := c.CookEventToSandbox(sfxEvent(t, c, eventNamed("Play_Nested")), sandbox)

	require.NoError(t, err)
	assert.Equal(t, []uint32{700}, esc.cookies)
}

func TestCookExternalSourceToSandbox_WithoutCookerIsSkipped(t *testing.T) {
	c := newSampleCooker(t)
	sandbox, _ := newSandbox(t)

	err := c.CookExternalSourceToSandbox(dialogue, sandbox)

	assert.NoError(t, err)
	assert.Empty(t, sandbox.Staged())
}

func TestCookMediaToSandbox_EmptyPath(t *testing.T) {
	c := newSampleCooker(t)
	sandbox, _ := newSandbox(t)

	err := c.CookMediaToSandbox(cooked.Media{ID: 9}, sandbox)

	assert.ErrorIs(t, err, cooker.ErrEmptyPath)
}

func TestCookEventToSandbox_KeepsGoingAfterFailure(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, root := newSandbox(t)
	event := cooked.Event{
		ID:         1,
		SoundBanks: []cooked.SoundBank{{ID: 77, PathName: "Missing.bnk"}},
		Media:      []cooked.Media{grassStep, {ID: 78}},
	}

	err := c.CookEventToSandbox(event, sandbox)

	require.Error(t, err)
	assert.ErrorIs(t, err, cooker.ErrEmptyPath)
	assert.ErrorContains(t, err, "Missing.bnk")
	assert.Equal(t, "Media/4.wem", readStaged(t, root, "Media/4.wem"))
}

func TestCookInitBankToSandbox(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, root := newSandbox(t)
	initBank, err := c.GetInitBankCookedData(cooker.AssetInfo{})
	require.NoError(t, err)

	require.NoError(t, c.CookInitBankToSandbox(initBank, sandbox))

	assert.Equal(t, "Init.bnk", readStaged(t, root, "Init.bnk"))
	assert.Equal(t, "Media/9001.wem", readStaged(t, root, "Media/9001.wem"))
}

func TestCookLocalizedEventToSandbox_StagesEveryLanguage(t *testing.T) {
	c := newSampleCooker(t, cooker.WithGeneratedDir(testproject.WriteGeneratedFiles(t)))
	sandbox, root := newSandbox(t)
	event, err := c.GetEventCookedData(cooker.EventInfo{AssetInfo: cooker.AssetInfo{GUID: testproject.PlayVOGUID}})
	require.NoError(t, err)

	require.NoError(t, c.CookLocalizedEventToSandbox(event, sandbox))

	assert.Equal(t, "English(US)/Media/100.wem", readStaged(t, root, "English(US)/Media/100.wem"))
	assert.Equal(t, "French(France)/VO.bnk", readStaged(t, root, "French(France)/VO.bnk"))
}

func TestSourcePath(t *testing.T) {
	c := cooker.New(openSample(t), cooker.WithGeneratedDir("/generated"))

	assert.Equal(t, filepath.Join("/generated", "Windows", "Media", "4.wem"), c.SourcePath("Media/4.wem"))
}
