package cooked

import "cmp"

// LanguageRequirement tells the loader whether a language must be present.
type LanguageRequirement int

const (
	LanguageOptional LanguageRequirement = iota
	LanguageMandatory
)

func (r LanguageRequirement) String() string {
	if r == LanguageMandatory {
		return "Mandatory"
	}
	return "Optional"
}

// MarshalText implements encoding.TextMarshaler.
func (r LanguageRequirement) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *LanguageRequirement) UnmarshalText(text []byte) error {
	if string(text) == "Mandatory" {
		*r = LanguageMandatory
	} else {
		*r = LanguageOptional
	}
	return nil
}

// Language identifies one language variant of localized cooked data.
type Language struct {
	ID          uint32              `json:"id"`
	Name        string              `json:"name"`
	Requirement LanguageRequirement `json:"requirement"`
}

// SFX is the reserved language used for content that does not vary by
// language.
var SFX = Language{ID: 0, Name: "SFX", Requirement: LanguageMandatory}

// IsSFX reports whether l is the language-agnostic sentinel.
func (l Language) IsSFX() bool {
	return l.ID == SFX.ID
}

// CompareLanguages orders languages by id, then name.
func CompareLanguages(a, b Language) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
