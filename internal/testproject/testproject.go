// Package testproject writes small metadata projects for tests.
package testproject

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const Platform = "Windows"

var (
	PlayVOGUID     = uuid.MustParse("6f1c7d4e-2b1a-4c55-9a0e-8d3f2f5b7a10")
	PlaySimpleGUID = uuid.MustParse("0b8e3a52-91f4-4f0c-a3a1-5d2e7c9b1e21")
	ReverbGUID     = uuid.MustParse("c7a2e019-44d6-4b8e-b1f3-2a9d8e6c5f32")
)

// Write stores files as <dir>/<Platform>/<n>.json and returns dir.
func Write(t *testing.T, files ...metadata.RootFile) string {
	t.Helper()

	dir := t.TempDir()
	platformDir := filepath.Join(dir, Platform)
	require.NoError(t, os.MkdirAll(platformDir, 0o755))
	for i, file := range files {
		data, err := json.MarshalIndent(file, "", "  ")
		require.NoError(t, err)
		name := filepath.Join(platformDir, "SoundbanksInfo"+string(rune('A'+i))+".json")
		require.NoError(t, os.WriteFile(name, data, 0o644))
	}
	return dir
}

// WriteSample writes the sample project and returns its metadata directory.
func WriteSample(t *testing.T) string {
	t.Helper()
	return Write(t, SampleFiles()...)
}

// WriteGeneratedFiles creates a source file for every bank and loose media
// path of the sample project under <dir>/<Platform> and returns dir.
func WriteGeneratedFiles(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, file := range SampleFiles() {
		if file.SoundBanksInfo == nil {
			continue
		}
		for _, bank := range file.SoundBanksInfo.SoundBanks {
			writeFile(t, dir, bank.Path)
			for _, media := range bank.Media {
				writeFile(t, dir, media.Path)
				writeFile(t, dir, media.CachePath)
			}
		}
	}
	return dir
}

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()
	if rel == "" {
		return
	}
	path := filepath.Join(dir, Platform, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(rel), 0o644))
}

// SampleFiles returns the sample project split over three documents.
//
//   - Init (1000): switch, state and RTPC declarations, external source 700.
//   - Main (1001): SFX events 2001..2013 and their media.
//   - Shared (1002): holds media 3 for Main.
//   - Busses (1003): aux buses 3001 <-> 3002, plugin 500, shareset 600.
//   - VO (1100): localized events 2100 and 2101 in English(US) and
//     French(France). VOMedia (1101) holds the media of the Radio plugin.
func SampleFiles() []metadata.RootFile {
	return []metadata.RootFile{
		{
			PlatformInfo: &metadata.PlatformInfo{Name: Platform, DefaultAlign: 16},
			ProjectInfo: &metadata.ProjectInfo{Languages: []metadata.Language{
				{ID: 1, Name: "English(US)", Default: true},
				{ID: 2, Name: "French(France)"},
			}},
			SoundBanksInfo: &metadata.SoundBanksInfo{SoundBanks: []metadata.SoundBank{initBank()}},
		},
		{
			SoundBanksInfo: &metadata.SoundBanksInfo{SoundBanks: []metadata.SoundBank{
				mainBank(), sharedBank(), bussesBank(),
			}},
		},
		{
			SoundBanksInfo: &metadata.SoundBanksInfo{SoundBanks: []metadata.SoundBank{
				voBank("English(US)"), voBank("French(France)"),
				voMediaBank("English(US)"), voMediaBank("French(France)"),
			}},
		},
	}
}

func initBank() metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1000,
		Language:   "SFX",
		ShortName:  "Init",
		ObjectPath: `\SoundBanks\Init`,
		Path:       "Init.bnk",
		Type:       metadata.SoundBankUser,
		Media: []metadata.Media{
			{ID: 9001, Language: "SFX", ShortName: "InitMedia", Path: "Media/9001.wem", Location: metadata.LocationLoose},
		},
		Plugins: &metadata.PluginGroup{
			AudioDevices: []metadata.Plugin{
				{ID: 400, Name: "System", ObjectPath: `\Audio Devices\System`, MediaRefs: []metadata.IDRef{{ID: 9001}}},
			},
		},
		ExternalSources: []metadata.ExternalSource{
			{Cookie: 700, Name: "Dialogue", ObjectPath: `\External Sources\Dialogue`},
		},
		SwitchGroups: []metadata.SwitchGroup{
			{
				Object: metadata.Object{ID: 1, Name: "Surface", ObjectPath: `\Switches\Surface`},
				Switches: []metadata.Object{
					{ID: 2, Name: "Grass", ObjectPath: `\Switches\Surface\Grass`},
					{ID: 3, Name: "Gravel", ObjectPath: `\Switches\Surface\Gravel`},
				},
			},
			{
				Object:           metadata.Object{ID: 5, Name: "Speed", ObjectPath: `\Switches\Speed`},
				GameParameterRef: &metadata.IDRef{ID: 77},
				Switches: []metadata.Object{
					{ID: 6, Name: "Fast", ObjectPath: `\Switches\Speed\Fast`},
				},
			},
		},
		StateGroups: []metadata.StateGroup{
			{
				Object: metadata.Object{ID: 10, Name: "PlayerState", ObjectPath: `\States\PlayerState`},
				States: []metadata.Object{
					{ID: 11, Name: "Alive", ObjectPath: `\States\PlayerState\Alive`},
					{ID: 12, Name: "Dead", ObjectPath: `\States\PlayerState\Dead`},
				},
			},
		},
		GameParameters:   []metadata.Object{{ID: 77, Name: "RPM", ObjectPath: `\Game Parameters\RPM`}},
		Triggers:         []metadata.Object{{ID: 88, Name: "Hit", ObjectPath: `\Triggers\Hit`}},
		AcousticTextures: []metadata.Object{{ID: 99, Name: "Carpet", ObjectPath: `\Virtual Acoustics\Carpet`}},
	}
}

func switchValue(groupID, id uint32) metadata.SwitchValue {
	return metadata.SwitchValue{GroupType: metadata.GroupSwitch, GroupID: groupID, ID: id}
}

func mainBank() metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1001,
		Language:   "SFX",
		ShortName:  "Main",
		ObjectPath: `\SoundBanks\Main`,
		Path:       "Main.bnk",
		Type:       metadata.SoundBankEvent,
		Media: []metadata.Media{
			{ID: 1, ShortName: "Footstep_Memory", Location: metadata.LocationMemory},
			{ID: 2, ShortName: "Music_Stream", Path: "Media/2.wem", PrefetchSize: 4096, Streaming: true, Location: metadata.LocationLoose},
			{ID: 3, ShortName: "Shared_Impact", Location: metadata.LocationOtherBank},
			{ID: 4, ShortName: "Grass_Step", Path: "Media/4.wem", Location: metadata.LocationLoose},
			{ID: 5, ShortName: "Grass_Step_Alt", Path: "Media/5.wem", Location: metadata.LocationLoose},
			{ID: 6, ShortName: "Gravel_Step", Path: "Media/6.wem", Align: 32, Location: metadata.LocationLoose},
			{ID: 8, ShortName: "Cached", CachePath: "Cache/8.wem", Location: metadata.LocationLoose},
			{ID: 9, ShortName: "Broken", Location: metadata.LocationLoose},
			{ID: 9001, ShortName: "InitMedia", Location: metadata.LocationOtherBank},
		},
		Events: []metadata.Event{
			{ID: 2001, GUID: PlaySimpleGUID, Name: "Play_Simple", ObjectPath: `\Events\Play_Simple`, MediaRefs: []metadata.IDRef{{ID: 1}}},
			{ID: 2002, Name: "Play_Music", ObjectPath: `\Events\Play_Music`, MediaRefs: []metadata.IDRef{{ID: 2}, {ID: 3}, {ID: 8}}},
			{
				ID: 2003, Name: "Play_Footsteps", ObjectPath: `\Events\Play_Footsteps`,
				SwitchContainers: []metadata.SwitchContainer{
					{SwitchValue: switchValue(1, 2), MediaRefs: []metadata.IDRef{{ID: 4}}},
					{SwitchValue: switchValue(1, 2), MediaRefs: []metadata.IDRef{{ID: 5}}},
					{SwitchValue: switchValue(1, 3), MediaRefs: []metadata.IDRef{{ID: 6}}},
				},
			},
			{
				ID: 2004, Name: "Play_SetGravel", ObjectPath: `\Events\Play_SetGravel`,
				ActionSetSwitch: []metadata.GroupValueRef{{GroupID: 1, ID: 3}},
				ActionSetState:  []metadata.GroupValueRef{{GroupID: 10, ID: 11}},
				SwitchContainers: []metadata.SwitchContainer{
					{SwitchValue: switchValue(1, 3), MediaRefs: []metadata.IDRef{{ID: 6}}},
					{
						SwitchValue: metadata.SwitchValue{GroupType: metadata.GroupState, GroupID: 10, ID: 12},
						MediaRefs:   []metadata.IDRef{{ID: 6}},
					},
				},
			},
			{
				ID: 2005, Name: "Play_Engine", ObjectPath: `\Events\Play_Engine`,
				SwitchContainers: []metadata.SwitchContainer{
					{SwitchValue: switchValue(5, 6), MediaRefs: []metadata.IDRef{{ID: 4}}},
					{SwitchValue: switchValue(1, 0), MediaRefs: []metadata.IDRef{{ID: 5}}},
				},
			},
			{
				ID: 2006, Name: "Play_Chain", ObjectPath: `\Events\Play_Chain`, IsMandatory: true,
				ActionPostEvent: []metadata.NamedRef{{ID: 2007, Name: "Play_ChainTail"}, {ID: 2999, Name: "Play_Missing"}},
			},
			{
				ID: 2007, Name: "Play_ChainTail", ObjectPath: `\Events\Play_ChainTail`, IsMandatory: true,
				MediaRefs:       []metadata.IDRef{{ID: 2}},
				ActionPostEvent: []metadata.NamedRef{{ID: 2006, Name: "Play_Chain"}},
			},
			{ID: 2008, Name: "Play_Reverb", ObjectPath: `\Events\Play_Reverb`, AuxBusRefs: []metadata.IDRef{{ID: 3001}}},
			{ID: 2009, Name: "Play_External", ObjectPath: `\Events\Play_External`, ExternalSourceRefs: []metadata.CookieRef{{Cookie: 700}}},
			{ID: 2010, Name: "Play_Broken", ObjectPath: `\Events\Play_Broken`, MediaRefs: []metadata.IDRef{{ID: 9}}},
			{
				ID: 2011, Name: "Play_Nested", ObjectPath: `\Events\Play_Nested`,
				MediaRefs: []metadata.IDRef{{ID: 9001}},
				SwitchContainers: []metadata.SwitchContainer{
					{
						SwitchValue: metadata.SwitchValue{GroupType: metadata.GroupSwitch, GroupID: 1, ID: 2, Default: true},
						Children: []metadata.SwitchContainer{
							{
								SwitchValue:        metadata.SwitchValue{GroupType: metadata.GroupState, GroupID: 10, ID: 12},
								MediaRefs:          []metadata.IDRef{{ID: 4}},
								ExternalSourceRefs: []metadata.CookieRef{{Cookie: 700}},
								PluginRefs:         &metadata.PluginRefs{AudioDevices: []metadata.IDRef{{ID: 401}}},
							},
						},
					},
				},
				PluginRefs: &metadata.PluginRefs{Custom: []metadata.IDRef{{ID: 500}}},
			},
			{
				ID: 2012, Name: "Play_Root", ObjectPath: `\Events\Play_Root`,
				ActionPostEvent: []metadata.NamedRef{{ID: 2013, Name: "Play_Posted"}},
				SwitchContainers: []metadata.SwitchContainer{
					{SwitchValue: switchValue(1, 2), MediaRefs: []metadata.IDRef{{ID: 4}}},
				},
			},
			{
				ID: 2013, Name: "Play_Posted", ObjectPath: `\Events\Play_Posted`,
				MediaRefs:       []metadata.IDRef{{ID: 2}},
				ActionPostEvent: []metadata.NamedRef{{ID: 2012, Name: "Play_Root"}},
				SwitchContainers: []metadata.SwitchContainer{
					{SwitchValue: switchValue(1, 3), MediaRefs: []metadata.IDRef{{ID: 6}}},
				},
			},
		},
		Plugins: &metadata.PluginGroup{
			AudioDevices: []metadata.Plugin{
				{ID: 401, Name: "Controller", ObjectPath: `\Audio Devices\Controller`, MediaRefs: []metadata.IDRef{{ID: 5}}},
			},
		},
	}
}

func sharedBank() metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1002,
		Language:   "SFX",
		ShortName:  "Shared",
		ObjectPath: `\SoundBanks\Shared`,
		Path:       "Shared.bnk",
		Align:      64,
		Type:       metadata.SoundBankUser,
		Media: []metadata.Media{
			{ID: 3, ShortName: "Shared_Impact", Location: metadata.LocationMemory},
		},
	}
}

func bussesBank() metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1003,
		Language:   "SFX",
		ShortName:  "Busses",
		ObjectPath: `\SoundBanks\Busses`,
		Path:       "Busses.bnk",
		Type:       metadata.SoundBankBus,
		Media: []metadata.Media{
			{ID: 7, ShortName: "Reverb_IR", Path: "Media/7.wem", Location: metadata.LocationLoose},
		},
		AuxBusses: []metadata.AuxBus{
			{
				ID: 3001, GUID: ReverbGUID, Name: "Reverb", ObjectPath: `\Busses\Reverb`,
				AuxBusRefs: []metadata.IDRef{{ID: 3002}},
				PluginRefs: &metadata.PluginRefs{Custom: []metadata.IDRef{{ID: 500}}},
			},
			{
				ID: 3002, Name: "Delay", ObjectPath: `\Busses\Delay`,
				AuxBusRefs: []metadata.IDRef{{ID: 3001}},
			},
		},
		Plugins: &metadata.PluginGroup{
			Custom: []metadata.Plugin{
				{ID: 500, Name: "Convolver", ObjectPath: `\Effects\Convolver`, MediaRefs: []metadata.IDRef{{ID: 7}}},
			},
			ShareSets: []metadata.Plugin{
				{ID: 600, Name: "Reverb_Shareset", ObjectPath: `\ShareSets\Reverb_Shareset`, MediaRefs: []metadata.IDRef{{ID: 7}}},
			},
		},
	}
}

func voBank(language string) metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1100,
		Language:   language,
		ShortName:  "VO",
		ObjectPath: `\SoundBanks\VO`,
		Path:       language + "/VO.bnk",
		Type:       metadata.SoundBankUser,
		Media: []metadata.Media{
			{ID: 100, Language: language, ShortName: "Hello", Path: language + "/Media/100.wem", Location: metadata.LocationLoose},
			{ID: 101, Language: language, ShortName: "Radio_IR", Location: metadata.LocationOtherBank},
		},
		Events: []metadata.Event{
			{ID: 2100, GUID: PlayVOGUID, Name: "Play_VO", ObjectPath: `\Events\Play_VO`, MediaRefs: []metadata.IDRef{{ID: 100}}},
			{
				ID: 2101, Name: "Play_VORadio", ObjectPath: `\Events\Play_VORadio`,
				MediaRefs:  []metadata.IDRef{{ID: 100}},
				PluginRefs: &metadata.PluginRefs{Custom: []metadata.IDRef{{ID: 510}}},
			},
		},
		Plugins: &metadata.PluginGroup{
			Custom: []metadata.Plugin{
				{ID: 510, Name: "Radio", ObjectPath: `\Effects\Radio`, MediaRefs: []metadata.IDRef{{ID: 101}}},
			},
		},
	}
}

// voMediaBank holds the localized impulse response used by the Radio plugin.
func voMediaBank(language string) metadata.SoundBank {
	return metadata.SoundBank{
		ID:         1101,
		Language:   language,
		ShortName:  "VOMedia",
		ObjectPath: `\SoundBanks\VOMedia`,
		Path:       language + "/VOMedia.bnk",
		Type:       metadata.SoundBankUser,
		Media: []metadata.Media{
			{ID: 101, Language: language, ShortName: "Radio_IR", Location: metadata.LocationMemory},
		},
	}
}
