// Package metadata holds the JSON model of the generated sound bank metadata
// files. Field names follow the generator output.
package metadata

import (
	"strings"

	"github.com/google/uuid"
)

// InitBankName is the short name of the bank holding the global project
// settings.
const InitBankName = "Init"

// SFXLanguageName marks language-agnostic content.
const SFXLanguageName = "SFX"

// RootFile is one metadata document. Every part is optional; a platform is
// described by the union of its files.
type RootFile struct {
	PlatformInfo   *PlatformInfo   `json:"PlatformInfo,omitempty"`
	ProjectInfo    *ProjectInfo    `json:"ProjectInfo,omitempty"`
	SoundBanksInfo *SoundBanksInfo `json:"SoundBanksInfo,omitempty"`
}

type PlatformInfo struct {
	Name         string `json:"Name"`
	DefaultAlign uint32 `json:"DefaultAlign"`
}

type ProjectInfo struct {
	Languages []Language `json:"Languages"`
}

type Language struct {
	ID      uint32 `json:"Id"`
	Name    string `json:"Name"`
	Default bool   `json:"Default,omitempty"`
}

type SoundBanksInfo struct {
	SoundBanks []SoundBank `json:"SoundBanks"`
}

// SoundBankType is the generator's bank classification.
type SoundBankType string

const (
	SoundBankUser  SoundBankType = "User"
	SoundBankEvent SoundBankType = "Event"
	SoundBankBus   SoundBankType = "Bus"
)

type SoundBank struct {
	ID               uint32           `json:"Id"`
	GUID             uuid.UUID        `json:"GUID"`
	Language         string           `json:"Language"`
	ShortName        string           `json:"ShortName"`
	ObjectPath       string           `json:"ObjectPath"`
	Path             string           `json:"Path"`
	Align            uint32           `json:"Align,omitempty"`
	DeviceMemory     bool             `json:"DeviceMemory,omitempty"`
	Type             SoundBankType    `json:"Type,omitempty"`
	Media            []Media          `json:"Media,omitempty"`
	Events           []Event          `json:"Events,omitempty"`
	AuxBusses        []AuxBus         `json:"AuxBusses,omitempty"`
	Plugins          *PluginGroup     `json:"Plugins,omitempty"`
	ExternalSources  []ExternalSource `json:"ExternalSources,omitempty"`
	SwitchGroups     []SwitchGroup    `json:"SwitchGroups,omitempty"`
	StateGroups      []StateGroup     `json:"StateGroups,omitempty"`
	GameParameters   []Object         `json:"GameParameters,omitempty"`
	Triggers         []Object         `json:"Triggers,omitempty"`
	AcousticTextures []Object         `json:"AcousticTextures,omitempty"`
}

// IsInitBank reports whether the bank is the init bank.
func (b *SoundBank) IsInitBank() bool {
	return strings.EqualFold(b.ShortName, InitBankName)
}

// ContainsMedia reports whether any media is embedded in the bank itself.
func (b *SoundBank) ContainsMedia() bool {
	for i := range b.Media {
		if b.Media[i].Location == LocationMemory {
			return true
		}
	}
	return false
}

// MediaLocation tells where the payload of a media lives.
type MediaLocation string

const (
	LocationMemory    MediaLocation = "Memory"
	LocationLoose     MediaLocation = "Loose"
	LocationOtherBank MediaLocation = "OtherBank"
)

type Media struct {
	ID           uint32        `json:"Id"`
	Language     string        `json:"Language"`
	ShortName    string        `json:"ShortName"`
	Path         string        `json:"Path,omitempty"`
	CachePath    string        `json:"CachePath,omitempty"`
	PrefetchSize uint32        `json:"PrefetchSize,omitempty"`
	Align        uint32        `json:"Align,omitempty"`
	DeviceMemory bool          `json:"DeviceMemory,omitempty"`
	Streaming    bool          `json:"Streaming,omitempty"`
	Location     MediaLocation `json:"Location"`
}

// IDRef points at another object by short id.
type IDRef struct {
	ID uint32 `json:"Id"`
}

// CookieRef points at an external source.
type CookieRef struct {
	Cookie uint32 `json:"Cookie"`
}

// NamedRef points at an event by id and name.
type NamedRef struct {
	ID   uint32 `json:"Id"`
	Name string `json:"Name,omitempty"`
}

// GroupValueRef points at a switch or state inside its group.
type GroupValueRef struct {
	GroupID uint32 `json:"GroupId"`
	ID      uint32 `json:"Id"`
}

type PluginRefs struct {
	Custom       []IDRef `json:"Custom,omitempty"`
	ShareSets    []IDRef `json:"ShareSets,omitempty"`
	AudioDevices []IDRef `json:"AudioDevices,omitempty"`
}

type Event struct {
	ID                 uint32            `json:"Id"`
	GUID               uuid.UUID         `json:"GUID"`
	Name               string            `json:"Name"`
	ObjectPath         string            `json:"ObjectPath"`
	IsMandatory        bool              `json:"IsMandatory,omitempty"`
	MediaRefs          []IDRef           `json:"MediaRefs,omitempty"`
	ExternalSourceRefs []CookieRef       `json:"ExternalSourceRefs,omitempty"`
	PluginRefs         *PluginRefs       `json:"PluginRefs,omitempty"`
	AuxBusRefs         []IDRef           `json:"AuxBusRefs,omitempty"`
	ActionPostEvent    []NamedRef        `json:"ActionPostEvent,omitempty"`
	ActionSetSwitch    []GroupValueRef   `json:"ActionSetSwitch,omitempty"`
	ActionSetState     []GroupValueRef   `json:"ActionSetState,omitempty"`
	SwitchContainers   []SwitchContainer `json:"SwitchContainers,omitempty"`
}

// GroupType tells whether a switch value belongs to a switch or state group.
type GroupType string

const (
	GroupSwitch GroupType = "Switch"
	GroupState  GroupType = "State"
)

type SwitchValue struct {
	GroupType GroupType `json:"GroupType"`
	GroupID   uint32    `json:"GroupId"`
	ID        uint32    `json:"Id"`
	Default   bool      `json:"Default,omitempty"`
}

type SwitchContainer struct {
	SwitchValue        SwitchValue       `json:"SwitchValue"`
	MediaRefs          []IDRef           `json:"MediaRefs,omitempty"`
	ExternalSourceRefs []CookieRef       `json:"ExternalSourceRefs,omitempty"`
	PluginRefs         *PluginRefs       `json:"PluginRefs,omitempty"`
	Children           []SwitchContainer `json:"Children,omitempty"`
}

type AuxBus struct {
	ID         uint32      `json:"Id"`
	GUID       uuid.UUID   `json:"GUID"`
	Name       string      `json:"Name"`
	ObjectPath string      `json:"ObjectPath"`
	AuxBusRefs []IDRef     `json:"AuxBusRefs,omitempty"`
	PluginRefs *PluginRefs `json:"PluginRefs,omitempty"`
}

type PluginGroup struct {
	Custom       []Plugin `json:"Custom,omitempty"`
	ShareSets    []Plugin `json:"ShareSets,omitempty"`
	AudioDevices []Plugin `json:"AudioDevices,omitempty"`
}

type Plugin struct {
	ID         uint32      `json:"Id"`
	GUID       uuid.UUID   `json:"GUID"`
	Name       string      `json:"Name"`
	ObjectPath string      `json:"ObjectPath"`
	MediaRefs  []IDRef     `json:"MediaRefs,omitempty"`
	PluginRefs *PluginRefs `json:"PluginRefs,omitempty"`
}

type ExternalSource struct {
	Cookie     uint32    `json:"Cookie"`
	GUID       uuid.UUID `json:"GUID"`
	Name       string    `json:"Name"`
	ObjectPath string    `json:"ObjectPath"`
}

// Object is the common shape of game parameters, triggers, acoustic textures
// and group values.
type Object struct {
	ID         uint32    `json:"Id"`
	GUID       uuid.UUID `json:"GUID"`
	Name       string    `json:"Name"`
	ObjectPath string    `json:"ObjectPath"`
}

type SwitchGroup struct {
	Object
	GameParameterRef *IDRef   `json:"GameParameterRef,omitempty"`
	Switches         []Object `json:"Switches,omitempty"`
}

type StateGroup struct {
	Object
	States []Object `json:"States,omitempty"`
}
