package cooked

import "cmp"

// SoundBankType classifies how a sound bank was generated.
type SoundBankType int

const (
	SoundBankUser SoundBankType = iota
	SoundBankEvent
	SoundBankBus
)

func (t SoundBankType) String() string {
	switch t {
	case SoundBankEvent:
		return "Event"
	case SoundBankBus:
		return "Bus"
	default:
		return "User"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SoundBankType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SoundBankType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Event":
		*t = SoundBankEvent
	case "Bus":
		*t = SoundBankBus
	default:
		*t = SoundBankUser
	}
	return nil
}

// SoundBank describes one sound bank file to stage and load.
type SoundBank struct {
	ID              uint32        `json:"soundBankId"`
	PathName        string        `json:"soundBankPathName"`
	MemoryAlignment uint32        `json:"memoryAlignment"`
	DeviceMemory    bool          `json:"deviceMemory"`
	ContainsMedia   bool          `json:"containsMedia"`
	Type            SoundBankType `json:"soundBankType"`
	DebugName       string        `json:"debugName,omitempty"`
}

// Equivalent reports whether two language variants of a sound bank are the
// same bank.
func (b SoundBank) Equivalent(other SoundBank) bool {
	return b == other
}

// CompareSoundBanks orders sound banks by id, then path.
func CompareSoundBanks(a, b SoundBank) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.PathName, b.PathName)
}
