package cooked

import (
	"cmp"
	"slices"
)

// GroupType tells whether a group value belongs to a switch or a state group.
type GroupType int

const (
	GroupUnknown GroupType = iota
	GroupSwitch
	GroupState
)

func (t GroupType) String() string {
	switch t {
	case GroupSwitch:
		return "Switch"
	case GroupState:
		return "State"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t GroupType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *GroupType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Switch":
		*t = GroupSwitch
	case "State":
		*t = GroupState
	default:
		*t = GroupUnknown
	}
	return nil
}

// GroupValue is one switch or state value.
type GroupValue struct {
	Type      GroupType `json:"type"`
	GroupID   uint32    `json:"groupId"`
	ID        uint32    `json:"id"`
	DebugName string    `json:"debugName,omitempty"`
}

// GroupValueKey is the identity of a group value. DebugName is not part of it.
type GroupValueKey struct {
	Type    GroupType
	GroupID uint32
	ID      uint32
}

// Key returns the identity of v.
func (v GroupValue) Key() GroupValueKey {
	return GroupValueKey{Type: v.Type, GroupID: v.GroupID, ID: v.ID}
}

// Equal compares identities only.
func (v GroupValue) Equal(other GroupValue) bool {
	return v.Key() == other.Key()
}

// CompareGroupValues orders group values by type, group and id.
func CompareGroupValues(a, b GroupValue) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := cmp.Compare(a.GroupID, b.GroupID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// GroupValueSet is a set of group values keyed by identity.
type GroupValueSet map[GroupValueKey]GroupValue

// NewGroupValueSet returns a set holding values. When two values share an
// identity the first one is kept.
func NewGroupValueSet(values ...GroupValue) GroupValueSet {
	s := make(GroupValueSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v unless a value with the same identity is present.
func (s GroupValueSet) Add(v GroupValue) {
	if _, ok := s[v.Key()]; !ok {
		s[v.Key()] = v
	}
}

// Contains reports whether a value with v's identity is in the set.
func (s GroupValueSet) Contains(v GroupValue) bool {
	_, ok := s[v.Key()]
	return ok
}

// Len returns the number of elements.
func (s GroupValueSet) Len() int {
	return len(s)
}

// Equal reports whether both sets have the same size and every element of s
// is present in other.
func (s GroupValueSet) Equal(other GroupValueSet) bool {
	if len(s) != len(other) {
		return false
	}
	for key := range s {
		if _, ok := other[key]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the values in CompareGroupValues order.
func (s GroupValueSet) Sorted() []GroupValue {
	values := make([]GroupValue, 0, len(s))
	for _, v := range s {
		values = append(values, v)
	}
	slices.SortFunc(values, CompareGroupValues)
	return values
}
