package projectdb

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
	"github.com/dominikbraun/graph"
	"github.com/google/uuid"
)

type mediaKey struct {
	MediaID     uint32
	SoundBankID uint32
	LanguageID  uint32
}

type groupValueKey struct {
	Kind    cooked.GroupType
	GroupID uint32
	ID      uint32
}

// PlatformData is an immutable, indexed view of every metadata file of one
// platform.
type PlatformData struct {
	info      metadata.PlatformInfo
	languages []cooked.Language
	byName    map[string]cooked.Language

	soundBanks       *index[SoundBankRef]
	events           *index[EventRef]
	auxBuses         *index[AuxBusRef]
	customPlugins    *index[PluginRef]
	pluginSharesets  *index[PluginRef]
	audioDevices     *index[PluginRef]
	externalSources  *index[ExternalSourceRef]
	gameParameters   *index[ObjectRef]
	triggers         *index[ObjectRef]
	acousticTextures *index[ObjectRef]
	switches         *index[GroupValueRef]
	states           *index[GroupValueRef]
	groupValues      map[groupValueKey]GroupValueRef

	mediaFiles map[mediaKey]MediaRef
	mediaHomes *index[MediaRef]

	auxBusGraph graph.Graph[localizedID, AuxBusRef]
}

// NewPlatformData indexes the given metadata files.
func NewPlatformData(files []*metadata.RootFile, logger *slog.Logger) (*PlatformData, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pd := &PlatformData{
		byName:           make(map[string]cooked.Language),
		soundBanks:       newIndex[SoundBankRef](),
		events:           newIndex[EventRef](),
		auxBuses:         newIndex[AuxBusRef](),
		customPlugins:    newIndex[PluginRef](),
		pluginSharesets:  newIndex[PluginRef](),
		audioDevices:     newIndex[PluginRef](),
		externalSources:  newIndex[ExternalSourceRef](),
		gameParameters:   newIndex[ObjectRef](),
		triggers:         newIndex[ObjectRef](),
		acousticTextures: newIndex[ObjectRef](),
		switches:         newIndex[GroupValueRef](),
		states:           newIndex[GroupValueRef](),
		groupValues:      make(map[groupValueKey]GroupValueRef),
		mediaFiles:       make(map[mediaKey]MediaRef),
		mediaHomes:       newIndex[MediaRef](),
		auxBusGraph:      graph.New(AuxBusRef.key, graph.Directed()),
	}

	hasPlatformInfo := false
	for _, file := range files {
		if file.PlatformInfo != nil && !hasPlatformInfo {
			pd.info = *file.PlatformInfo
			hasPlatformInfo = true
		}
		if file.ProjectInfo != nil {
			pd.addLanguages(file.ProjectInfo.Languages)
		}
	}
	if !hasPlatformInfo {
		return nil, fmt.Errorf("no platform info in %d files: %w", len(files), ErrInvalidMetadata)
	}
	slices.SortFunc(pd.languages, cooked.CompareLanguages)

	for _, file := range files {
		if file.SoundBanksInfo == nil {
			continue
		}
		for i := range file.SoundBanksInfo.SoundBanks {
			if err := pd.addSoundBank(&file.SoundBanksInfo.SoundBanks[i]); err != nil {
				return nil, err
			}
		}
	}

	if err := pd.linkAuxBuses(logger); err != nil {
		return nil, err
	}
	return pd, nil
}

func (pd *PlatformData) addLanguages(languages []metadata.Language) {
	for _, l := range languages {
		if _, ok := pd.byName[l.Name]; ok {
			continue
		}
		language := cooked.Language{ID: l.ID, Name: l.Name, Requirement: cooked.LanguageOptional}
		if l.Default {
			language.Requirement = cooked.LanguageMandatory
		}
		pd.byName[l.Name] = language
		pd.languages = append(pd.languages, language)
	}
}

func (pd *PlatformData) language(name string) (cooked.Language, error) {
	if name == "" || name == metadata.SFXLanguageName {
		return cooked.SFX, nil
	}
	language, ok := pd.byName[name]
	if !ok {
		return cooked.Language{}, fmt.Errorf("language %q is not declared by the project: %w", name, ErrInvalidMetadata)
	}
	return language, nil
}

func (pd *PlatformData) addSoundBank(bank *metadata.SoundBank) error {
	language, err := pd.language(bank.Language)
	if err != nil {
		return fmt.Errorf("failed to index sound bank %s: %w", bank.ShortName, err)
	}
	pd.soundBanks.add(bank.ID, bank.GUID, bank.ShortName, language, SoundBankRef{SoundBank: bank, Language: language})

	for i := range bank.Media {
		media := &bank.Media[i]
		mediaLanguage := language
		if media.Language != "" {
			if mediaLanguage, err = pd.language(media.Language); err != nil {
				return fmt.Errorf("failed to index media %d of %s: %w", media.ID, bank.ShortName, err)
			}
		}
		ref := MediaRef{Media: media, SoundBank: bank, Language: mediaLanguage}
		key := mediaKey{MediaID: media.ID, SoundBankID: bank.ID, LanguageID: language.ID}
		if _, ok := pd.mediaFiles[key]; !ok {
			pd.mediaFiles[key] = ref
		}
		if media.Location != metadata.LocationOtherBank {
			pd.mediaHomes.add(media.ID, uuid.Nil, media.ShortName, mediaLanguage, ref)
		}
	}

	for i := range bank.Events {
		event := &bank.Events[i]
		pd.events.add(event.ID, event.GUID, event.Name, language, EventRef{Event: event, SoundBank: bank, Language: language})
	}

	for i := range bank.AuxBusses {
		bus := &bank.AuxBusses[i]
		ref := AuxBusRef{AuxBus: bus, SoundBank: bank, Language: language}
		pd.auxBuses.add(bus.ID, bus.GUID, bus.Name, language, ref)
		if err := pd.auxBusGraph.AddVertex(ref); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return fmt.Errorf("failed to add aux bus %s: %w", bus.Name, err)
		}
	}

	if plugins := bank.Plugins; plugins != nil {
		addPlugins(pd.customPlugins, plugins.Custom, bank, language)
		addPlugins(pd.pluginSharesets, plugins.ShareSets, bank, language)
		addPlugins(pd.audioDevices, plugins.AudioDevices, bank, language)
	}

	for i := range bank.ExternalSources {
		source := &bank.ExternalSources[i]
		pd.externalSources.add(source.Cookie, source.GUID, source.Name, language,
			ExternalSourceRef{ExternalSource: source, SoundBank: bank, Language: language})
	}

	addObjects(pd.gameParameters, bank.GameParameters, bank, language)
	addObjects(pd.triggers, bank.Triggers, bank, language)
	addObjects(pd.acousticTextures, bank.AcousticTextures, bank, language)

	for i := range bank.SwitchGroups {
		group := &bank.SwitchGroups[i]
		for _, value := range group.Switches {
			pd.addGroupValue(pd.switches, GroupValueRef{
				Kind:                      cooked.GroupSwitch,
				GroupID:                   group.ID,
				ID:                        value.ID,
				Name:                      value.Name,
				ObjectPath:                value.ObjectPath,
				ControlledByGameParameter: group.GameParameterRef != nil,
			}, value, language)
		}
	}
	for i := range bank.StateGroups {
		group := &bank.StateGroups[i]
		for _, value := range group.States {
			pd.addGroupValue(pd.states, GroupValueRef{
				Kind:       cooked.GroupState,
				GroupID:    group.ID,
				ID:         value.ID,
				Name:       value.Name,
				ObjectPath: value.ObjectPath,
			}, value, language)
		}
	}
	return nil
}

func (pd *PlatformData) addGroupValue(ix *index[GroupValueRef], ref GroupValueRef, value metadata.Object, language cooked.Language) {
	key := groupValueKey{Kind: ref.Kind, GroupID: ref.GroupID, ID: ref.ID}
	if _, ok := pd.groupValues[key]; !ok {
		pd.groupValues[key] = ref
	}
	ix.add(value.ID, value.GUID, value.Name, language, ref)
}

func addPlugins(ix *index[PluginRef], plugins []metadata.Plugin, bank *metadata.SoundBank, language cooked.Language) {
	for i := range plugins {
		plugin := &plugins[i]
		ix.add(plugin.ID, plugin.GUID, plugin.Name, language, PluginRef{Plugin: plugin, SoundBank: bank, Language: language})
	}
}

func addObjects(ix *index[ObjectRef], objects []metadata.Object, bank *metadata.SoundBank, language cooked.Language) {
	for i := range objects {
		object := &objects[i]
		ix.add(object.ID, object.GUID, object.Name, language, ObjectRef{Object: object, SoundBank: bank})
	}
}

// linkAuxBuses adds an edge from every bus to each bus it sends to.
func (pd *PlatformData) linkAuxBuses(logger *slog.Logger) error {
	for _, key := range pd.auxBuses.keys {
		source := pd.auxBuses.byID[key.localizedID]
		targets := pd.AuxBuses(source.Owner())
		for _, target := range targets {
			err := pd.auxBusGraph.AddEdge(source.key(), target.key())
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return fmt.Errorf("failed to link aux bus %d to %d: %w", source.AuxBus.ID, target.AuxBus.ID, err)
			}
		}
		if missing := len(source.AuxBus.AuxBusRefs) - len(targets); missing > 0 {
			logger.Debug("Aux bus references unknown buses", "aux_bus", source.AuxBus.Name, "missing", missing)
		}
	}
	return nil
}

// PlatformInfo returns the platform description.
func (pd *PlatformData) PlatformInfo() metadata.PlatformInfo {
	return pd.info
}

// Languages returns the project languages ordered by id. A project without
// languages yields SFX alone.
func (pd *PlatformData) Languages() []cooked.Language {
	if len(pd.languages) == 0 {
		return []cooked.Language{cooked.SFX}
	}
	return slices.Clone(pd.languages)
}

// Language returns the project language with the given id. Id 0 is SFX.
func (pd *PlatformData) Language(id uint32) (cooked.Language, bool) {
	if id == cooked.SFX.ID {
		return cooked.SFX, true
	}
	for _, language := range pd.languages {
		if language.ID == id {
			return language, true
		}
	}
	return cooked.Language{}, false
}
