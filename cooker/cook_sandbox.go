package cooker

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/stage"
)

// stageFile copies one generated file into the sandbox.
func (c *Cooker) stageFile(sandbox *stage.Sandbox, pathName string) error {
	if pathName == "" {
		return ErrEmptyPath
	}
	return sandbox.StageFile(c.SourcePath(pathName), pathName)
}

// SourcePath returns where the generated file pathName is read from.
func (c *Cooker) SourcePath(pathName string) string {
	platform := ""
	if c.db != nil {
		platform = c.db.Platform()
	}
	return filepath.Join(c.generatedDir, platform, filepath.FromSlash(pathName))
}

func (c *Cooker) stageAll(sandbox *stage.Sandbox, banks []cooked.SoundBank, media []cooked.Media, sources []cooked.ExternalSource) error {
	var errs []error
	for _, bank := range banks {
		errs = append(errs, c.CookSoundBankToSandbox(bank, sandbox))
	}
	for _, m := range media {
		errs = append(errs, c.CookMediaToSandbox(m, sandbox))
	}
	for _, source := range sources {
		errs = append(errs, c.CookExternalSourceToSandbox(source, sandbox))
	}
	return errors.Join(errs...)
}

// CookEventToSandbox stages the files of an event, including the content of
// every switch container leaf. Every file is attempted; failures are joined.
func (c *Cooker) CookEventToSandbox(event cooked.Event, sandbox *stage.Sandbox) error {
	errs := []error{c.stageAll(sandbox, event.SoundBanks, event.Media, event.ExternalSources)}
	for _, leaf := range event.SwitchContainerLeaves {
		errs = append(errs, c.stageAll(sandbox, leaf.SoundBanks, leaf.Media, leaf.ExternalSources))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to stage event %d: %w", event.ID, err)
	}
	return nil
}

func (c *Cooker) CookAuxBusToSandbox(bus cooked.AuxBus, sandbox *stage.Sandbox) error {
	if err := c.stageAll(sandbox, bus.SoundBanks, bus.Media, nil); err != nil {
		return fmt.Errorf("failed to stage aux bus %d: %w", bus.ID, err)
	}
	return nil
}

func (c *Cooker) CookSharesetToSandbox(shareset cooked.Shareset, sandbox *stage.Sandbox) error {
	if err := c.stageAll(sandbox, shareset.SoundBanks, shareset.Media, nil); err != nil {
		return fmt.Errorf("failed to stage shareset %d: %w", shareset.ID, err)
	}
	return nil
}

func (c *Cooker) CookInitBankToSandbox(bank cooked.InitBank, sandbox *stage.Sandbox) error {
	if err := c.stageAll(sandbox, []cooked.SoundBank{bank.SoundBank}, bank.Media, nil); err != nil {
		return fmt.Errorf("failed to stage init bank %d: %w", bank.ID, err)
	}
	return nil
}

func (c *Cooker) CookSoundBankToSandbox(bank cooked.SoundBank, sandbox *stage.Sandbox) error {
	if err := c.stageFile(sandbox, bank.PathName); err != nil {
		return fmt.Errorf("failed to stage sound bank %d: %w", bank.ID, err)
	}
	return nil
}

func (c *Cooker) CookMediaToSandbox(media cooked.Media, sandbox *stage.Sandbox) error {
	if err := c.stageFile(sandbox, media.PathName); err != nil {
		return fmt.Errorf("failed to stage media %d: %w", media.ID, err)
	}
	return nil
}

// CookExternalSourceToSandbox hands the source to the configured
// ExternalSourceCooker.
func (c *Cooker) CookExternalSourceToSandbox(source cooked.ExternalSource, sandbox *stage.Sandbox) error {
	if c.externalSources == nil {
		c.logger.Warn("No external source cooker, skipping external source",
			slog.Uint64("cookie", uint64(source.Cookie)),
			slog.String("name", source.DebugName))
		return nil
	}
	if err := c.externalSources.CookExternalSource(source, sandbox); err != nil {
		return fmt.Errorf("failed to stage external source %d: %w", source.Cookie, err)
	}
	return nil
}

// cookLocalized stages every language variant of a localized value.
func cookLocalized[T cooked.Equivalenter[T]](l cooked.Localized[T], cook func(T) error) error {
	var errs []error
	for _, language := range l.SortedLanguages() {
		errs = append(errs, cook(l.Languages[language]))
	}
	return errors.Join(errs...)
}

func (c *Cooker) CookLocalizedEventToSandbox(event cooked.LocalizedEvent, sandbox *stage.Sandbox) error {
	return cookLocalized(event, func(e cooked.Event) error {
		return c.CookEventToSandbox(e, sandbox)
	})
}

func (c *Cooker) CookLocalizedAuxBusToSandbox(bus cooked.LocalizedAuxBus, sandbox *stage.Sandbox) error {
	return cookLocalized(bus, func(b cooked.AuxBus) error {
		return c.CookAuxBusToSandbox(b, sandbox)
	})
}

func (c *Cooker) CookLocalizedSharesetToSandbox(shareset cooked.LocalizedShareset, sandbox *stage.Sandbox) error {
	return cookLocalized(shareset, func(s cooked.Shareset) error {
		return c.CookSharesetToSandbox(s, sandbox)
	})
}
