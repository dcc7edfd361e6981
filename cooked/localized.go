package cooked

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Equivalenter is implemented by per-language cooked values that can be
// compared across language variants.
type Equivalenter[T any] interface {
	Equivalent(other T) bool
}

// Localized holds the language variants of one cooked asset.
//
// When every variant is equivalent, Languages holds a single entry keyed by
// SFX. Use FoldSFX to establish that.
type Localized[T Equivalenter[T]] struct {
	ID        uint32
	DebugName string
	Languages map[Language]T
}

type (
	LocalizedEvent     = Localized[Event]
	LocalizedAuxBus    = Localized[AuxBus]
	LocalizedShareset  = Localized[Shareset]
	LocalizedSoundBank = Localized[SoundBank]
)

// NewLocalized returns an empty localized value.
func NewLocalized[T Equivalenter[T]](id uint32, debugName string) Localized[T] {
	return Localized[T]{ID: id, DebugName: debugName, Languages: make(map[Language]T)}
}

// Add records the cooked data of one language.
func (l *Localized[T]) Add(language Language, data T) {
	if l.Languages == nil {
		l.Languages = make(map[Language]T)
	}
	l.Languages[language] = data
}

// Get returns the cooked data for language, falling back to the SFX entry.
func (l Localized[T]) Get(language Language) (T, bool) {
	if data, ok := l.Languages[language]; ok {
		return data, true
	}
	data, ok := l.Languages[SFX]
	return data, ok
}

// IsSFXOnly reports whether the value does not vary by language.
func (l Localized[T]) IsSFXOnly() bool {
	if len(l.Languages) != 1 {
		return false
	}
	_, ok := l.Languages[SFX]
	return ok
}

// SortedLanguages returns the languages present, ordered by id.
func (l Localized[T]) SortedLanguages() []Language {
	languages := make([]Language, 0, len(l.Languages))
	for language := range l.Languages {
		languages = append(languages, language)
	}
	slices.SortFunc(languages, CompareLanguages)
	return languages
}

// FoldSFX collapses the language variants into a single SFX entry when all of
// them are equivalent. The data of the lowest language id is kept.
// It reports whether a fold happened.
func FoldSFX[T Equivalenter[T]](l *Localized[T]) bool {
	if len(l.Languages) == 0 || l.IsSFXOnly() {
		return false
	}
	languages := l.SortedLanguages()
	first := l.Languages[languages[0]]
	for _, language := range languages[1:] {
		if !first.Equivalent(l.Languages[language]) {
			return false
		}
	}
	l.Languages = map[Language]T{SFX: first}
	return true
}

type localizedEntry[T any] struct {
	Language   Language `json:"language"`
	CookedData T        `json:"cookedData"`
}

type localizedJSON[T any] struct {
	ID        uint32              `json:"id"`
	DebugName string              `json:"debugName,omitempty"`
	Languages []localizedEntry[T] `json:"languages"`
}

// MarshalJSON writes the language map as an array ordered by language id.
func (l Localized[T]) MarshalJSON() ([]byte, error) {
	out := localizedJSON[T]{ID: l.ID, DebugName: l.DebugName, Languages: []localizedEntry[T]{}}
	for _, language := range l.SortedLanguages() {
		out.Languages = append(out.Languages, localizedEntry[T]{Language: language, CookedData: l.Languages[language]})
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Localized[T]) UnmarshalJSON(data []byte) error {
	var in localizedJSON[T]
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	l.ID = in.ID
	l.DebugName = in.DebugName
	l.Languages = make(map[Language]T, len(in.Languages))
	for _, entry := range in.Languages {
		if _, ok := l.Languages[entry.Language]; ok {
			return fmt.Errorf("duplicate language %q", entry.Language.Name)
		}
		l.Languages[entry.Language] = entry.CookedData
	}
	return nil
}
