package cooker

import (
	"strconv"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/google/uuid"
)

// AssetInfo identifies the asset to resolve. Zero fields are ignored.
type AssetInfo struct {
	GUID    uuid.UUID
	ShortID uint32
	Name    string
	// HardCodedSoundBankShortID is the bank a media asset is looked up in.
	HardCodedSoundBankShortID uint32
}

func (i AssetInfo) query() projectdb.Query {
	return projectdb.Query{GUID: i.GUID, ShortID: i.ShortID, Name: i.Name}
}

// SwitchContainerLoading decides whether switched content is loaded up
// front or only when its switch values are set.
type SwitchContainerLoading int

const (
	LoadOnReference SwitchContainerLoading = iota
	AlwaysLoad
)

func (l SwitchContainerLoading) String() string {
	if l == AlwaysLoad {
		return "AlwaysLoad"
	}
	return "LoadOnReference"
}

// MarshalText implements encoding.TextMarshaler.
func (l SwitchContainerLoading) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *SwitchContainerLoading) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), "AlwaysLoad") {
		*l = AlwaysLoad
	} else {
		*l = LoadOnReference
	}
	return nil
}

// EventInfo identifies an event and how its content is loaded.
type EventInfo struct {
	AssetInfo
	SwitchContainerLoading SwitchContainerLoading
	DestroyOptions         cooked.DestroyOptions
}

// GroupValueInfo identifies a switch or state value.
type GroupValueInfo struct {
	AssetInfo
	GroupShortID uint32
}

func (i GroupValueInfo) query() projectdb.GroupQuery {
	return projectdb.GroupQuery{Query: i.AssetInfo.query(), GroupShortID: i.GroupShortID}
}

// ParseAssetInfo reads a GUID, a short id or a name.
func ParseAssetInfo(s string) AssetInfo {
	s = strings.TrimSpace(s)
	if guid, err := uuid.Parse(s); err == nil {
		return AssetInfo{GUID: guid}
	}
	if id, err := strconv.ParseUint(s, 10, 32); err == nil {
		return AssetInfo{ShortID: uint32(id)}
	}
	return AssetInfo{Name: s}
}
