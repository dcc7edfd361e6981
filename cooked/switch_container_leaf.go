package cooked

// SwitchContainerLeaf lists what must additionally be loaded when every
// group value of its condition is set.
type SwitchContainerLeaf struct {
	GroupValues     []GroupValue     `json:"groupValueSet"`
	SoundBanks      []SoundBank      `json:"soundBanks"`
	Media           []Media          `json:"media"`
	ExternalSources []ExternalSource `json:"externalSources"`
}

// Condition returns the selecting group values as a set.
func (l SwitchContainerLeaf) Condition() GroupValueSet {
	return NewGroupValueSet(l.GroupValues...)
}

// SameCondition reports whether both leaves are selected by the same group
// values. Leaf contents are not compared.
func (l SwitchContainerLeaf) SameCondition(other SwitchContainerLeaf) bool {
	return l.Condition().Equal(other.Condition())
}

// Equivalent compares both the condition and the contents.
func (l SwitchContainerLeaf) Equivalent(other SwitchContainerLeaf) bool {
	return l.SameCondition(other) &&
		sameElements(l.SoundBanks, other.SoundBanks) &&
		sameElements(l.Media, other.Media) &&
		sameElements(l.ExternalSources, other.ExternalSources)
}
