package cooker_test

import (
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/testproject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuxBusCookedData(t *testing.T) {
	c := newSampleCooker(t)

	for _, info := range []cooker.AssetInfo{{GUID: testproject.ReverbGUID}, {Name: "Delay"}} {
		result, err := c.GetAuxBusCookedData(info)
		require.NoError(t, err)
		require.True(t, result.IsSFXOnly())
		bus := result.Languages[cooked.SFX]
		assert.Equal(t, []cooked.SoundBank{bussesBank}, bus.SoundBanks, "buses sending to each other are listed once")
		assert.Equal(t, []cooked.Media{reverbIR}, bus.Media)
	}
}

func TestGetSharesetCookedData(t *testing.T) {
	c := newSampleCooker(t)

	result, err := c.GetSharesetCookedData(cooker.AssetInfo{ShortID: 600})

	require.NoError(t, err)
	assert.Equal(t, `\ShareSets\Reverb_Shareset`, result.DebugName)
	shareset := result.Languages[cooked.SFX]
	assert.Equal(t, uint32(600), shareset.ID)
	assert.Equal(t, []cooked.SoundBank{bussesBank}, shareset.SoundBanks)
	assert.Equal(t, []cooked.Media{reverbIR}, shareset.Media)
}

func TestGetSoundBankCookedData(t *testing.T) {
	c := newSampleCooker(t)

	shared, err := c.GetSoundBankCookedData(cooker.AssetInfo{Name: "Shared"})
	require.NoError(t, err)
	assert.Equal(t, sharedBank, shared.Languages[cooked.SFX])

	vo, err := c.GetSoundBankCookedData(cooker.AssetInfo{ShortID: 1100})
	require.NoError(t, err)
	assert.Len(t, vo.Languages, 2)
	assert.Equal(t, "French(France)/VO.bnk", vo.Languages[french].PathName)
}

func TestGetInitBankCookedData(t *testing.T) {
	c := newSampleCooker(t)

	initBank, err := c.GetInitBankCookedData(cooker.AssetInfo{})

	require.NoError(t, err)
	assert.Equal(t, uint32(1000), initBank.ID)
	assert.Equal(t, "Init.bnk", initBank.PathName)
	assert.Equal(t, []cooked.Media{initMedia}, initBank.Media, "media shared with plugins is listed once")
	assert.Equal(t, []cooked.Language{english, french}, initBank.Languages)
}

func TestGetInitBankCookedData_RejectsOtherBanks(t *testing.T) {
	c := newSampleCooker(t)

	_, err := c.GetInitBankCookedData(cooker.AssetInfo{Name: "Main"})

	assert.ErrorIs(t, err, cooker.ErrNotInitBank)
}

func TestGetMediaCookedData(t *testing.T) {
	c := newSampleCooker(t)

	media, ok, err := c.GetMediaCookedData(cooker.AssetInfo{ShortID: 4, HardCodedSoundBankShortID: 1001})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, grassStep, media)

	_, ok, err = c.GetMediaCookedData(cooker.AssetInfo{ShortID: 1, HardCodedSoundBankShortID: 1001})
	require.NoError(t, err)
	assert.False(t, ok, "media held in memory needs no file")

	_, _, err = c.GetMediaCookedData(cooker.AssetInfo{ShortID: 3, HardCodedSoundBankShortID: 1001})
	assert.ErrorIs(t, err, cooker.ErrMediaInOtherSoundBank)

	_, _, err = c.GetMediaCookedData(cooker.AssetInfo{ShortID: 42, HardCodedSoundBankShortID: 1001})
	assert.ErrorIs(t, err, cooker.ErrNotFound)
}

func TestGetSimpleObjects(t *testing.T) {
	c := newSampleCooker(t)

	source, err := c.GetExternalSourceCookedData(cooker.AssetInfo{ShortID: 700})
	require.NoError(t, err)
	assert.Equal(t, dialogue, source)

	rpm, err := c.GetGameParameterCookedData(cooker.AssetInfo{Name: "RPM"})
	require.NoError(t, err)
	assert.Equal(t, cooked.GameParameter{ShortID: 77, DebugName: `\Game Parameters\RPM`}, rpm)

	hit, err := c.GetTriggerCookedData(cooker.AssetInfo{ShortID: 88})
	require.NoError(t, err)
	assert.Equal(t, cooked.Trigger{ID: 88, DebugName: `\Triggers\Hit`}, hit)

	carpet, err := c.GetAcousticTextureCookedData(cooker.AssetInfo{ShortID: 99})
	require.NoError(t, err)
	assert.Equal(t, cooked.AcousticTexture{ShortID: 99, DebugName: `\Virtual Acoustics\Carpet`}, carpet)

	_, err = c.GetTriggerCookedData(cooker.AssetInfo{Name: "Miss"})
	assert.ErrorIs(t, err, cooker.ErrNotFound)
}

func TestGetGroupValues(t *testing.T) {
	c := newSampleCooker(t, cooker.WithDebugNameRule(cooked.DebugNameName))

	gravel, err := c.GetSwitchCookedData(cooker.GroupValueInfo{AssetInfo: cooker.AssetInfo{Name: "Gravel"}})
	require.NoError(t, err)
	assert.Equal(t, cooked.GroupValue{Type: cooked.GroupSwitch, GroupID: 1, ID: 3, DebugName: "Gravel"}, gravel)

	dead, err := c.GetStateCookedData(cooker.GroupValueInfo{AssetInfo: cooker.AssetInfo{ShortID: 12}, GroupShortID: 10})
	require.NoError(t, err)
	assert.Equal(t, cooked.GroupValue{Type: cooked.GroupState, GroupID: 10, ID: 12, DebugName: "Dead"}, dead)

	_, err = c.GetStateCookedData(cooker.GroupValueInfo{AssetInfo: cooker.AssetInfo{ShortID: 12}, GroupShortID: 1})
	assert.ErrorIs(t, err, cooker.ErrNotFound)
}
