package projectdb

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
	"github.com/dominikbraun/graph"
)

// FindSoundBanks resolves q in every language.
func (pd *PlatformData) FindSoundBanks(q Query, languages []cooked.Language) map[cooked.Language]SoundBankRef {
	return pd.soundBanks.findAll(q, languages)
}

// FindSoundBank resolves q in language, falling back to SFX.
func (pd *PlatformData) FindSoundBank(q Query, language cooked.Language) (SoundBankRef, bool) {
	return pd.soundBanks.find(q, language)
}

// FindEvents resolves q in every language.
func (pd *PlatformData) FindEvents(q Query, languages []cooked.Language) map[cooked.Language]EventRef {
	return pd.events.findAll(q, languages)
}

// FindEvent resolves q in language, falling back to SFX.
func (pd *PlatformData) FindEvent(q Query, language cooked.Language) (EventRef, bool) {
	return pd.events.find(q, language)
}

// FindAuxBuses resolves q in every language.
func (pd *PlatformData) FindAuxBuses(q Query, languages []cooked.Language) map[cooked.Language]AuxBusRef {
	return pd.auxBuses.findAll(q, languages)
}

// FindSharesets resolves q against plugin sharesets in every language.
func (pd *PlatformData) FindSharesets(q Query, languages []cooked.Language) map[cooked.Language]PluginRef {
	return pd.pluginSharesets.findAll(q, languages)
}

// FindMedia returns the entry of the bank that actually holds the media,
// skipping banks that only point elsewhere.
func (pd *PlatformData) FindMedia(mediaID uint32, shortName string, language cooked.Language) (MediaRef, bool) {
	return pd.mediaHomes.find(Query{ShortID: mediaID, Name: shortName}, language)
}

// MediaInSoundBank returns the media entry as listed by the given bank.
// The SFX variant of the bank is preferred, then the project languages in
// order.
func (pd *PlatformData) MediaInSoundBank(mediaID, soundBankID uint32) (MediaRef, bool) {
	if ref, ok := pd.mediaInSoundBank(mediaID, soundBankID, cooked.SFX); ok {
		return ref, true
	}
	for _, language := range pd.languages {
		if ref, ok := pd.mediaInSoundBank(mediaID, soundBankID, language); ok {
			return ref, true
		}
	}
	return MediaRef{}, false
}

func (pd *PlatformData) mediaInSoundBank(mediaID, soundBankID uint32, language cooked.Language) (MediaRef, bool) {
	ref, ok := pd.mediaFiles[mediaKey{MediaID: mediaID, SoundBankID: soundBankID, LanguageID: language.ID}]
	return ref, ok
}

// Media returns the media referenced by owner, as listed by the owner's
// bank. References the bank does not list are skipped.
func (pd *PlatformData) Media(owner Owner) []MediaRef {
	if owner.SoundBank == nil {
		return nil
	}
	var result []MediaRef
	seen := make(map[uint32]bool, len(owner.MediaRefs))
	for _, r := range owner.MediaRefs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		if ref, ok := pd.mediaInSoundBank(r.ID, owner.SoundBank.ID, owner.Language); ok {
			result = append(result, ref)
		}
	}
	return result
}

// CustomPlugins returns the custom plugins referenced by owner.
func (pd *PlatformData) CustomPlugins(owner Owner) []PluginRef {
	if owner.PluginRefs == nil {
		return nil
	}
	return findByIDs(pd.customPlugins, owner.PluginRefs.Custom, owner.Language)
}

// PluginSharesets returns the plugin sharesets referenced by owner.
func (pd *PlatformData) PluginSharesets(owner Owner) []PluginRef {
	if owner.PluginRefs == nil {
		return nil
	}
	return findByIDs(pd.pluginSharesets, owner.PluginRefs.ShareSets, owner.Language)
}

// AudioDevices returns the audio devices referenced by owner.
func (pd *PlatformData) AudioDevices(owner Owner) []PluginRef {
	if owner.PluginRefs == nil {
		return nil
	}
	return findByIDs(pd.audioDevices, owner.PluginRefs.AudioDevices, owner.Language)
}

// AuxBuses returns the buses owner sends to directly.
func (pd *PlatformData) AuxBuses(owner Owner) []AuxBusRef {
	return findByIDs(pd.auxBuses, owner.AuxBusRefs, owner.Language)
}

// ExternalSources returns the external sources referenced by owner.
func (pd *PlatformData) ExternalSources(owner Owner) []ExternalSourceRef {
	var result []ExternalSourceRef
	seen := make(map[uint32]bool, len(owner.ExternalSourceRefs))
	for _, r := range owner.ExternalSourceRefs {
		if seen[r.Cookie] {
			continue
		}
		seen[r.Cookie] = true
		if ref, ok := pd.externalSources.find(Query{ShortID: r.Cookie}, owner.Language); ok {
			result = append(result, ref)
		}
	}
	return result
}

func findByIDs[R any](ix *index[R], refs []metadata.IDRef, language cooked.Language) []R {
	var result []R
	seen := make(map[uint32]bool, len(refs))
	for _, r := range refs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		if ref, ok := ix.find(Query{ShortID: r.ID}, language); ok {
			result = append(result, ref)
		}
	}
	return result
}

// AllAuxBuses returns roots and every bus reachable from them. Each bus is
// listed once, even when sends form a cycle.
func (pd *PlatformData) AllAuxBuses(roots ...AuxBusRef) ([]AuxBusRef, error) {
	visited := make(map[localizedID]bool)
	var result []AuxBusRef
	for _, root := range roots {
		if visited[root.key()] {
			continue
		}
		err := graph.BFS(pd.auxBusGraph, root.key(), func(key localizedID) bool {
			if visited[key] {
				return false
			}
			visited[key] = true
			bus, err := pd.auxBusGraph.Vertex(key)
			if err == nil {
				result = append(result, bus)
			}
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk aux buses from %d: %w", root.AuxBus.ID, err)
		}
	}
	return result, nil
}

// SwitchContainers returns every node of the event's switch container tree,
// parents before children.
func (pd *PlatformData) SwitchContainers(event EventRef) []SwitchContainerRef {
	var result []SwitchContainerRef
	var walk func(containers []metadata.SwitchContainer, path []int)
	walk = func(containers []metadata.SwitchContainer, path []int) {
		for i := range containers {
			childPath := append(append([]int(nil), path...), i)
			result = append(result, SwitchContainerRef{Event: event, Path: childPath})
			walk(containers[i].Children, childPath)
		}
	}
	walk(event.Event.SwitchContainers, nil)
	return result
}

// SwitchValues returns the non-default switch and state values on the path
// from the event to the container node. It reports false when a value on
// the path cannot be resolved.
func (pd *PlatformData) SwitchValues(container SwitchContainerRef) ([]GroupValueRef, bool) {
	containers := container.Event.Event.SwitchContainers
	var result []GroupValueRef
	for _, i := range container.Path {
		if i < 0 || i >= len(containers) {
			return nil, false
		}
		node := containers[i]
		if !node.SwitchValue.Default {
			kind := cooked.GroupSwitch
			if node.SwitchValue.GroupType == metadata.GroupState {
				kind = cooked.GroupState
			} else if node.SwitchValue.GroupType != metadata.GroupSwitch {
				return nil, false
			}
			value, ok := pd.groupValue(kind, node.SwitchValue.GroupID, node.SwitchValue.ID)
			if !ok {
				return nil, false
			}
			result = append(result, value)
		}
		containers = node.Children
	}
	return result, true
}

func (pd *PlatformData) groupValue(kind cooked.GroupType, groupID, id uint32) (GroupValueRef, bool) {
	value, ok := pd.groupValues[groupValueKey{Kind: kind, GroupID: groupID, ID: id}]
	if ok {
		return value, true
	}
	// Wildcard values are not declared by any group.
	if id == 0 {
		return GroupValueRef{Kind: kind, GroupID: groupID}, true
	}
	return GroupValueRef{}, false
}

// SetSwitchValues returns the switch values set by the event's actions.
func (pd *PlatformData) SetSwitchValues(event EventRef) []GroupValueRef {
	return pd.groupValuesOf(cooked.GroupSwitch, event.Event.ActionSetSwitch)
}

// SetStateValues returns the state values set by the event's actions.
func (pd *PlatformData) SetStateValues(event EventRef) []GroupValueRef {
	return pd.groupValuesOf(cooked.GroupState, event.Event.ActionSetState)
}

func (pd *PlatformData) groupValuesOf(kind cooked.GroupType, refs []metadata.GroupValueRef) []GroupValueRef {
	var result []GroupValueRef
	for _, r := range refs {
		if value, ok := pd.groupValues[groupValueKey{Kind: kind, GroupID: r.GroupID, ID: r.ID}]; ok {
			result = append(result, value)
		}
	}
	return result
}

// ExternalSource returns the language-agnostic external source with cookie.
func (pd *PlatformData) ExternalSource(cookie uint32) (ExternalSourceRef, bool) {
	return pd.externalSources.exact(Query{ShortID: cookie}, cooked.SFX.ID)
}

// GameParameter resolves q among game parameters.
func (pd *PlatformData) GameParameter(q Query) (ObjectRef, bool) {
	return pd.gameParameters.find(q, cooked.SFX)
}

// Trigger resolves q among triggers.
func (pd *PlatformData) Trigger(q Query) (ObjectRef, bool) {
	return pd.triggers.find(q, cooked.SFX)
}

// AcousticTexture resolves q among acoustic textures.
func (pd *PlatformData) AcousticTexture(q Query) (ObjectRef, bool) {
	return pd.acousticTextures.find(q, cooked.SFX)
}

// Switch resolves a switch value. A short id only matches inside the
// requested group.
func (pd *PlatformData) Switch(q GroupQuery) (GroupValueRef, bool) {
	return pd.findGroupValue(pd.switches, cooked.GroupSwitch, q)
}

// State resolves a state value. A short id only matches inside the
// requested group.
func (pd *PlatformData) State(q GroupQuery) (GroupValueRef, bool) {
	return pd.findGroupValue(pd.states, cooked.GroupState, q)
}

func (pd *PlatformData) findGroupValue(ix *index[GroupValueRef], kind cooked.GroupType, q GroupQuery) (GroupValueRef, bool) {
	if q.ShortID != 0 && q.GroupShortID != 0 {
		if value, ok := pd.groupValues[groupValueKey{Kind: kind, GroupID: q.GroupShortID, ID: q.ShortID}]; ok {
			return value, true
		}
	}
	lookup := Query{GUID: q.GUID, Name: q.Name}
	if q.GroupShortID == 0 {
		lookup.ShortID = q.ShortID
	}
	value, ok := ix.find(lookup, cooked.SFX)
	if ok && q.GroupShortID != 0 && value.GroupID != q.GroupShortID {
		return GroupValueRef{}, false
	}
	return value, ok
}

// InitBank returns the init bank.
func (pd *PlatformData) InitBank() (SoundBankRef, bool) {
	return pd.soundBanks.find(Query{Name: metadata.InitBankName}, cooked.SFX)
}

// SoundBankQueries lists every sound bank once.
func (pd *PlatformData) SoundBankQueries() []Query {
	return pd.soundBanks.queries()
}

// EventQueries lists every event once.
func (pd *PlatformData) EventQueries() []Query {
	return pd.events.queries()
}

// AuxBusQueries lists every aux bus once.
func (pd *PlatformData) AuxBusQueries() []Query {
	return pd.auxBuses.queries()
}

// SharesetQueries lists every plugin shareset once.
func (pd *PlatformData) SharesetQueries() []Query {
	return pd.pluginSharesets.queries()
}
