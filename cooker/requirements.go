package cooker

import (
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
)

// session carries what one resolver call needs while the database is
// read-locked.
type session struct {
	pd     *projectdb.PlatformData
	rule   cooked.DebugNameRule
	logger *slog.Logger
}

func (c *Cooker) newSession(pd *projectdb.PlatformData) *session {
	return &session{pd: pd, rule: c.debugNameRule, logger: c.logger}
}

// dependencies accumulates the files an asset needs.
type dependencies struct {
	soundBanks      cooked.SoundBankSet
	media           cooked.MediaSet
	externalSources cooked.ExternalSourceSet
}

func newDependencies() *dependencies {
	return &dependencies{
		soundBanks:      cooked.NewSet[cooked.SoundBank](),
		media:           cooked.NewSet[cooked.Media](),
		externalSources: cooked.NewSet[cooked.ExternalSource](),
	}
}

func (d *dependencies) merge(other *dependencies) {
	d.soundBanks.Union(other.soundBanks)
	d.media.Union(other.media)
	d.externalSources.Union(other.externalSources)
}

// subtract returns what d needs beyond other.
func (d *dependencies) subtract(other *dependencies) *dependencies {
	return &dependencies{
		soundBanks:      d.soundBanks.Difference(other.soundBanks),
		media:           d.media.Difference(other.media),
		externalSources: d.externalSources.Difference(other.externalSources),
	}
}

func (d *dependencies) empty() bool {
	return d.soundBanks.Len() == 0 && d.media.Len() == 0 && d.externalSources.Len() == 0
}

func (d *dependencies) sortedSoundBanks() []cooked.SoundBank {
	return d.soundBanks.Sorted(cooked.CompareSoundBanks)
}

func (d *dependencies) sortedMedia() []cooked.Media {
	return d.media.Sorted(cooked.CompareMedia)
}

func (d *dependencies) sortedExternalSources() []cooked.ExternalSource {
	return d.externalSources.Sorted(cooked.CompareExternalSources)
}

// addSoundBank requires bank unless it is the init bank, which is always
// loaded.
func (s *session) addSoundBank(deps *dependencies, bank *metadata.SoundBank) error {
	if bank == nil {
		return fmt.Errorf("failed to get sound bank: %w", ErrNotFound)
	}
	if bank.IsInitBank() {
		return nil
	}
	data, err := s.soundBankData(bank)
	if err != nil {
		return err
	}
	deps.soundBanks.Add(data)
	return nil
}

// addMedia records what loading ref requires. Media held in memory by its
// bank needs nothing more; media held by another bank needs that bank;
// anything else is a file of its own.
func (s *session) addMedia(deps *dependencies, ref projectdb.MediaRef, language cooked.Language) error {
	media := ref.Media
	if media == nil {
		return fmt.Errorf("failed to get media: %w", ErrNotFound)
	}
	switch {
	case media.Location == metadata.LocationMemory && !media.Streaming:
		return nil
	case media.Location == metadata.LocationOtherBank:
		home, ok := s.pd.FindMedia(media.ID, media.ShortName, language)
		if !ok {
			return fmt.Errorf("failed to find sound bank holding media %d: %w", media.ID, ErrNotFound)
		}
		if home.SoundBank.IsInitBank() {
			return nil
		}
		return s.addSoundBank(deps, home.SoundBank)
	default:
		data, err := s.mediaData(media)
		if err != nil {
			return err
		}
		deps.media.Add(data)
		return nil
	}
}

func (s *session) addExternalSources(deps *dependencies, refs []projectdb.ExternalSourceRef) {
	for _, ref := range refs {
		deps.externalSources.Add(s.externalSourceData(ref.ExternalSource))
	}
}

// addOwner requires the media and external sources owner references, and the
// media of its plugins. Plugin media held by another bank is looked up in
// pluginLanguage.
func (s *session) addOwner(deps *dependencies, owner projectdb.Owner, pluginLanguage cooked.Language) error {
	for _, ref := range s.pd.Media(owner) {
		if err := s.addMedia(deps, ref, owner.Language); err != nil {
			return err
		}
	}
	if err := s.addPluginMedia(deps, owner, pluginLanguage); err != nil {
		return err
	}
	s.addExternalSources(deps, s.pd.ExternalSources(owner))
	return nil
}

func (s *session) addPluginMedia(deps *dependencies, owner projectdb.Owner, language cooked.Language) error {
	var plugins []projectdb.PluginRef
	plugins = append(plugins, s.pd.CustomPlugins(owner)...)
	plugins = append(plugins, s.pd.PluginSharesets(owner)...)
	plugins = append(plugins, s.pd.AudioDevices(owner)...)
	for _, plugin := range plugins {
		for _, ref := range s.pd.Media(plugin.Owner()) {
			if err := s.addMedia(deps, ref, language); err != nil {
				return fmt.Errorf("failed to add media of plugin %d: %w", plugin.Plugin.ID, err)
			}
		}
	}
	return nil
}

// addAuxBuses requires every bus reachable from roots with its bank and
// media.
func (s *session) addAuxBuses(deps *dependencies, roots []projectdb.AuxBusRef) error {
	if len(roots) == 0 {
		return nil
	}
	buses, err := s.pd.AllAuxBuses(roots...)
	if err != nil {
		return err
	}
	for _, bus := range buses {
		if err := s.addSoundBank(deps, bus.SoundBank); err != nil {
			return fmt.Errorf("failed to add sound bank of aux bus %d: %w", bus.AuxBus.ID, err)
		}
		if err := s.addOwner(deps, bus.Owner(), cooked.SFX); err != nil {
			return fmt.Errorf("failed to add media of aux bus %d: %w", bus.AuxBus.ID, err)
		}
	}
	return nil
}
