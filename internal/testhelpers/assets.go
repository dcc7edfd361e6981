package testhelpers

import "github.com/LegacyCodeHQ/soundcook/cooked"

// FootstepsEvent is a language-agnostic event with one bank and one switch
// container leaf.
func FootstepsEvent() cooked.LocalizedEvent {
	event := cooked.NewLocalized[cooked.Event](2003, "Play_Footsteps")
	event.Add(cooked.SFX, cooked.Event{
		ID:         2003,
		DebugName:  "Play_Footsteps",
		SoundBanks: []cooked.SoundBank{{ID: 1001, PathName: "Main.bnk", MemoryAlignment: 16, DebugName: "Main"}},
		SwitchContainerLeaves: []cooked.SwitchContainerLeaf{{
			GroupValues: []cooked.GroupValue{{Type: cooked.GroupSwitch, GroupID: 1, ID: 2, DebugName: "Grass"}},
			Media:       []cooked.Media{{ID: 4, PathName: "Media/4.wem", MemoryAlignment: 16, DebugName: "Grass_Step"}},
		}},
	})
	return event
}
