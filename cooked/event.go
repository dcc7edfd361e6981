package cooked

import "strings"

// DestroyOptions tells the runtime what to do with a playing event when its
// owner goes away.
type DestroyOptions int

const (
	StopEffectsOnDestroy DestroyOptions = iota
	WaitForEventEnd
)

func (o DestroyOptions) String() string {
	if o == WaitForEventEnd {
		return "WaitForEventEnd"
	}
	return "StopEffectsOnDestroy"
}

// MarshalText implements encoding.TextMarshaler.
func (o DestroyOptions) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *DestroyOptions) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "WaitForEventEnd") {
		*o = WaitForEventEnd
	} else {
		*o = StopEffectsOnDestroy
	}
	return nil
}

// Event is the footprint of one event in one language.
type Event struct {
	ID                    uint32                `json:"eventId"`
	DebugName             string                `json:"debugName,omitempty"`
	SoundBanks            []SoundBank           `json:"soundBanks"`
	Media                 []Media               `json:"media"`
	ExternalSources       []ExternalSource      `json:"externalSources"`
	SwitchContainerLeaves []SwitchContainerLeaf `json:"switchContainerLeaves"`
	RequiredGroupValues   []GroupValue          `json:"requiredGroupValueSet"`
	DestroyOptions        DestroyOptions        `json:"destroyOptions"`
}

// Equivalent reports whether two language variants of an event need exactly
// the same content.
func (e Event) Equivalent(other Event) bool {
	if e.ID != other.ID ||
		e.DebugName != other.DebugName ||
		e.DestroyOptions != other.DestroyOptions ||
		len(e.SwitchContainerLeaves) != len(other.SwitchContainerLeaves) {
		return false
	}
	if !sameElements(e.SoundBanks, other.SoundBanks) ||
		!sameElements(e.Media, other.Media) ||
		!sameElements(e.ExternalSources, other.ExternalSources) ||
		!NewGroupValueSet(e.RequiredGroupValues...).Equal(NewGroupValueSet(other.RequiredGroupValues...)) {
		return false
	}
	for _, leaf := range e.SwitchContainerLeaves {
		match, ok := other.Leaf(leaf.Condition())
		if !ok || !leaf.Equivalent(match) {
			return false
		}
	}
	return true
}

// Leaf returns the switch container leaf selected by condition.
func (e Event) Leaf(condition GroupValueSet) (SwitchContainerLeaf, bool) {
	for _, leaf := range e.SwitchContainerLeaves {
		if leaf.Condition().Equal(condition) {
			return leaf, true
		}
	}
	return SwitchContainerLeaf{}, false
}
