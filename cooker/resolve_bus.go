package cooker

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

// GetAuxBusCookedData resolves an auxiliary bus together with every bus it
// sends to.
func (c *Cooker) GetAuxBusCookedData(info AssetInfo) (cooked.LocalizedAuxBus, error) {
	return resolveLocalized(c, localizedKind[projectdb.AuxBusRef, cooked.AuxBus]{
		op:   "GetAuxBusCookedData",
		find: (*projectdb.PlatformData).FindAuxBuses,
		identity: func(ref projectdb.AuxBusRef) (uint32, string, string) {
			return ref.AuxBus.ID, ref.AuxBus.Name, ref.AuxBus.ObjectPath
		},
		resolve: (*session).auxBus,
	}, info)
}

func (s *session) auxBus(ref projectdb.AuxBusRef) (cooked.AuxBus, error) {
	deps := newDependencies()
	if err := s.addAuxBuses(deps, []projectdb.AuxBusRef{ref}); err != nil {
		return cooked.AuxBus{}, err
	}
	return cooked.AuxBus{
		ID:         ref.AuxBus.ID,
		DebugName:  s.rule.Pick(ref.AuxBus.Name, ref.AuxBus.ObjectPath),
		SoundBanks: deps.sortedSoundBanks(),
		Media:      deps.sortedMedia(),
	}, nil
}

// GetSharesetCookedData resolves a plugin shareset.
func (c *Cooker) GetSharesetCookedData(info AssetInfo) (cooked.LocalizedShareset, error) {
	return resolveLocalized(c, localizedKind[projectdb.PluginRef, cooked.Shareset]{
		op:   "GetSharesetCookedData",
		find: (*projectdb.PlatformData).FindSharesets,
		identity: func(ref projectdb.PluginRef) (uint32, string, string) {
			return ref.Plugin.ID, ref.Plugin.Name, ref.Plugin.ObjectPath
		},
		resolve: (*session).shareset,
	}, info)
}

func (s *session) shareset(ref projectdb.PluginRef) (cooked.Shareset, error) {
	deps := newDependencies()
	if err := s.addSoundBank(deps, ref.SoundBank); err != nil {
		return cooked.Shareset{}, err
	}
	if err := s.addOwner(deps, ref.Owner(), cooked.SFX); err != nil {
		return cooked.Shareset{}, fmt.Errorf("failed to add media of shareset %d: %w", ref.Plugin.ID, err)
	}
	return cooked.Shareset{
		ID:         ref.Plugin.ID,
		DebugName:  s.rule.Pick(ref.Plugin.Name, ref.Plugin.ObjectPath),
		SoundBanks: deps.sortedSoundBanks(),
		Media:      deps.sortedMedia(),
	}, nil
}
