package projectdb

import (
	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
)

// Owner is the part of an authored object that references media, plugins,
// external sources and auxiliary buses, resolved within its sound bank and
// language.
type Owner struct {
	SoundBank          *metadata.SoundBank
	Language           cooked.Language
	MediaRefs          []metadata.IDRef
	ExternalSourceRefs []metadata.CookieRef
	PluginRefs         *metadata.PluginRefs
	AuxBusRefs         []metadata.IDRef
}

// SoundBankRef is a sound bank in one language.
type SoundBankRef struct {
	SoundBank *metadata.SoundBank
	Language  cooked.Language
}

// IsInitBank reports whether the referenced bank is the init bank.
func (r SoundBankRef) IsInitBank() bool {
	return r.SoundBank.IsInitBank()
}

// Owner returns every media and plugin contained in the bank.
func (r SoundBankRef) Owner() Owner {
	owner := Owner{SoundBank: r.SoundBank, Language: r.Language}
	for _, media := range r.SoundBank.Media {
		owner.MediaRefs = append(owner.MediaRefs, metadata.IDRef{ID: media.ID})
	}
	if plugins := r.SoundBank.Plugins; plugins != nil {
		owner.PluginRefs = &metadata.PluginRefs{
			Custom:       pluginIDs(plugins.Custom),
			ShareSets:    pluginIDs(plugins.ShareSets),
			AudioDevices: pluginIDs(plugins.AudioDevices),
		}
	}
	return owner
}

func pluginIDs(plugins []metadata.Plugin) []metadata.IDRef {
	refs := make([]metadata.IDRef, 0, len(plugins))
	for _, plugin := range plugins {
		refs = append(refs, metadata.IDRef{ID: plugin.ID})
	}
	return refs
}

// MediaRef is a media entry as listed by one sound bank.
type MediaRef struct {
	Media     *metadata.Media
	SoundBank *metadata.SoundBank
	Language  cooked.Language
}

// EventRef is an event in one language.
type EventRef struct {
	Event     *metadata.Event
	SoundBank *metadata.SoundBank
	Language  cooked.Language
}

func (r EventRef) Owner() Owner {
	return Owner{
		SoundBank:          r.SoundBank,
		Language:           r.Language,
		MediaRefs:          r.Event.MediaRefs,
		ExternalSourceRefs: r.Event.ExternalSourceRefs,
		PluginRefs:         r.Event.PluginRefs,
		AuxBusRefs:         r.Event.AuxBusRefs,
	}
}

// AuxBusRef is an auxiliary bus in one language.
type AuxBusRef struct {
	AuxBus    *metadata.AuxBus
	SoundBank *metadata.SoundBank
	Language  cooked.Language
}

func (r AuxBusRef) Owner() Owner {
	return Owner{
		SoundBank:  r.SoundBank,
		Language:   r.Language,
		PluginRefs: r.AuxBus.PluginRefs,
		AuxBusRefs: r.AuxBus.AuxBusRefs,
	}
}

func (r AuxBusRef) key() localizedID {
	return localizedID{ID: r.AuxBus.ID, Language: r.Language.ID}
}

// PluginRef is a custom plugin, plugin shareset or audio device.
type PluginRef struct {
	Plugin    *metadata.Plugin
	SoundBank *metadata.SoundBank
	Language  cooked.Language
}

func (r PluginRef) Owner() Owner {
	return Owner{
		SoundBank:  r.SoundBank,
		Language:   r.Language,
		MediaRefs:  r.Plugin.MediaRefs,
		PluginRefs: r.Plugin.PluginRefs,
	}
}

// ExternalSourceRef is an external source declared by a sound bank.
type ExternalSourceRef struct {
	ExternalSource *metadata.ExternalSource
	SoundBank      *metadata.SoundBank
	Language       cooked.Language
}

// ObjectRef is a game parameter, trigger or acoustic texture.
type ObjectRef struct {
	Object    *metadata.Object
	SoundBank *metadata.SoundBank
}

// SwitchContainerRef is one node of an event's switch container tree. Path
// holds the child indices leading to it from the event's top level.
type SwitchContainerRef struct {
	Event EventRef
	Path  []int
}

// Container returns the referenced node, or nil when the path is invalid.
func (r SwitchContainerRef) Container() *metadata.SwitchContainer {
	containers := r.Event.Event.SwitchContainers
	var node *metadata.SwitchContainer
	for _, i := range r.Path {
		if i < 0 || i >= len(containers) {
			return nil
		}
		node = &containers[i]
		containers = node.Children
	}
	return node
}

// Owner returns the container node's own references. The result is empty
// when the path is invalid.
func (r SwitchContainerRef) Owner() Owner {
	owner := Owner{SoundBank: r.Event.SoundBank, Language: r.Event.Language}
	if node := r.Container(); node != nil {
		owner.MediaRefs = node.MediaRefs
		owner.ExternalSourceRefs = node.ExternalSourceRefs
		owner.PluginRefs = node.PluginRefs
	}
	return owner
}

// GroupValueRef is a resolved switch or state value.
type GroupValueRef struct {
	Kind                      cooked.GroupType
	GroupID                   uint32
	ID                        uint32
	Name                      string
	ObjectPath                string
	ControlledByGameParameter bool
}

// Key returns the identity of the value.
func (r GroupValueRef) Key() cooked.GroupValueKey {
	return cooked.GroupValueKey{Type: r.Kind, GroupID: r.GroupID, ID: r.ID}
}

// Cooked converts the value, choosing the debug name with rule.
func (r GroupValueRef) Cooked(rule cooked.DebugNameRule) cooked.GroupValue {
	return cooked.GroupValue{
		Type:      r.Kind,
		GroupID:   r.GroupID,
		ID:        r.ID,
		DebugName: rule.Pick(r.Name, r.ObjectPath),
	}
}
