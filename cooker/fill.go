package cooker

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
)

func (s *session) soundBankData(bank *metadata.SoundBank) (cooked.SoundBank, error) {
	if bank.Path == "" {
		return cooked.SoundBank{}, fmt.Errorf("failed to fill sound bank %d: %w", bank.ID, ErrEmptyPath)
	}
	data := cooked.SoundBank{
		ID:              bank.ID,
		PathName:        bank.Path,
		MemoryAlignment: s.alignment(bank.Align),
		DeviceMemory:    bank.DeviceMemory,
		ContainsMedia:   bank.ContainsMedia(),
		DebugName:       s.rule.Pick(bank.ShortName, bank.ObjectPath),
	}
	switch bank.Type {
	case metadata.SoundBankEvent:
		data.Type = cooked.SoundBankEvent
	case metadata.SoundBankBus:
		data.Type = cooked.SoundBankBus
	default:
		data.Type = cooked.SoundBankUser
	}
	return data, nil
}

// mediaData fills a media entry. Media without a generated path is staged
// from the conversion cache.
func (s *session) mediaData(media *metadata.Media) (cooked.Media, error) {
	pathName := media.Path
	if pathName == "" {
		pathName = media.CachePath
	}
	if pathName == "" {
		return cooked.Media{}, fmt.Errorf("failed to fill media %d: %w", media.ID, ErrEmptyPath)
	}
	data := cooked.Media{
		ID:              media.ID,
		PathName:        pathName,
		PrefetchSize:    media.PrefetchSize,
		MemoryAlignment: s.alignment(media.Align),
		DeviceMemory:    media.DeviceMemory,
		Streaming:       media.Streaming,
	}
	if s.rule != cooked.DebugNameRelease {
		data.DebugName = media.ShortName
	}
	return data, nil
}

func (s *session) externalSourceData(source *metadata.ExternalSource) cooked.ExternalSource {
	return cooked.ExternalSource{
		Cookie:    source.Cookie,
		DebugName: s.rule.Pick(source.Name, source.ObjectPath),
	}
}

func (s *session) alignment(align uint32) uint32 {
	if align == 0 {
		return s.pd.PlatformInfo().DefaultAlign
	}
	return align
}
