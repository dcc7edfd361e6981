package cooked

// AuxBus is the footprint of an auxiliary bus and every bus it sends to.
type AuxBus struct {
	ID         uint32      `json:"auxBusId"`
	DebugName  string      `json:"debugName,omitempty"`
	SoundBanks []SoundBank `json:"soundBanks"`
	Media      []Media     `json:"media"`
}

// Equivalent reports whether two language variants need the same content.
func (b AuxBus) Equivalent(other AuxBus) bool {
	return b.ID == other.ID &&
		b.DebugName == other.DebugName &&
		sameElements(b.SoundBanks, other.SoundBanks) &&
		sameElements(b.Media, other.Media)
}

// Shareset is the footprint of a plugin shareset.
type Shareset struct {
	ID         uint32      `json:"sharesetId"`
	DebugName  string      `json:"debugName,omitempty"`
	SoundBanks []SoundBank `json:"soundBanks"`
	Media      []Media     `json:"media"`
}

// Equivalent reports whether two language variants need the same content.
func (s Shareset) Equivalent(other Shareset) bool {
	return s.ID == other.ID &&
		s.DebugName == other.DebugName &&
		sameElements(s.SoundBanks, other.SoundBanks) &&
		sameElements(s.Media, other.Media)
}
