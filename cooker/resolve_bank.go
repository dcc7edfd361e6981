package cooker

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

// GetSoundBankCookedData resolves a sound bank in every active language.
func (c *Cooker) GetSoundBankCookedData(info AssetInfo) (cooked.LocalizedSoundBank, error) {
	return resolveLocalized(c, localizedKind[projectdb.SoundBankRef, cooked.SoundBank]{
		op:   "GetSoundBankCookedData",
		find: (*projectdb.PlatformData).FindSoundBanks,
		identity: func(ref projectdb.SoundBankRef) (uint32, string, string) {
			return ref.SoundBank.ID, ref.SoundBank.ShortName, ref.SoundBank.ObjectPath
		},
		resolve: func(s *session, ref projectdb.SoundBankRef) (cooked.SoundBank, error) {
			return s.soundBankData(ref.SoundBank)
		},
	}, info)
}

// GetInitBankCookedData resolves the init bank with its media and the
// project languages. A zero info selects the project's init bank.
func (c *Cooker) GetInitBankCookedData(info AssetInfo) (cooked.InitBank, error) {
	const op = "GetInitBankCookedData"
	lock, pd, err := c.readLock()
	if err != nil {
		return cooked.InitBank{}, c.fail(op, info, err)
	}
	defer lock.Unlock()

	var ref projectdb.SoundBankRef
	var ok bool
	if q := info.query(); q.IsZero() {
		ref, ok = pd.InitBank()
	} else {
		ref, ok = pd.FindSoundBank(q, cooked.SFX)
	}
	if !ok {
		return cooked.InitBank{}, c.fail(op, info, ErrNoRef)
	}
	if !ref.IsInitBank() {
		return cooked.InitBank{}, c.fail(op, info, fmt.Errorf("%s: %w", ref.SoundBank.ShortName, ErrNotInitBank))
	}

	s := c.newSession(pd)
	bank, err := s.soundBankData(ref.SoundBank)
	if err != nil {
		return cooked.InitBank{}, c.fail(op, info, err)
	}
	// Banks required by init bank media are loaded on their own.
	deps := newDependencies()
	if err := s.addOwner(deps, ref.Owner(), cooked.SFX); err != nil {
		return cooked.InitBank{}, c.fail(op, info, err)
	}
	return cooked.InitBank{
		SoundBank: bank,
		Media:     deps.sortedMedia(),
		Languages: pd.Languages(),
	}, nil
}

// GetMediaCookedData resolves a media as listed by the bank given in
// info.HardCodedSoundBankShortID. It reports false when the media is fully
// held in memory by that bank and needs no file of its own.
func (c *Cooker) GetMediaCookedData(info AssetInfo) (cooked.Media, bool, error) {
	const op = "GetMediaCookedData"
	lock, pd, err := c.readLock()
	if err != nil {
		return cooked.Media{}, false, c.fail(op, info, err)
	}
	defer lock.Unlock()

	ref, ok := pd.MediaInSoundBank(info.ShortID, info.HardCodedSoundBankShortID)
	if !ok {
		return cooked.Media{}, false, c.fail(op, info, ErrNotFound)
	}
	s := c.newSession(pd)
	deps := newDependencies()
	if err := s.addMedia(deps, ref, ref.Language); err != nil {
		return cooked.Media{}, false, c.fail(op, info, err)
	}
	if deps.soundBanks.Len() > 0 {
		return cooked.Media{}, false, c.fail(op, info, ErrMediaInOtherSoundBank)
	}
	media := deps.sortedMedia()
	if len(media) == 0 {
		c.logger.Debug("Media is held by its sound bank", assetAttrs(info)...)
		return cooked.Media{}, false, nil
	}
	return media[0], true, nil
}
