package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/soundcook/cooked"
)

// scope prefixes the keys of one language variant so that variants of the
// same bank or media stay apart. SFX content is not prefixed.
func scope(language cooked.Language) string {
	if language.IsSFX() {
		return ""
	}
	return language.Name + "/"
}

func rootLabel(debugName, kind string, id uint32, language cooked.Language) string {
	label := debugName
	if label == "" {
		label = fmt.Sprintf("%s %d", kind, id)
	}
	if !language.IsSFX() {
		label += " [" + language.Name + "]"
	}
	return label
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func conditionLabel(values []cooked.GroupValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = orDefault(v.DebugName, fmt.Sprintf("%s %d:%d", v.Type, v.GroupID, v.ID))
	}
	return strings.Join(parts, " & ")
}

// requires adds the content nodes under root.
func (a *Asset) requires(prefix, root string, banks []cooked.SoundBank, media []cooked.Media, sources []cooked.ExternalSource) error {
	var targets []Node
	for _, b := range banks {
		targets = append(targets, Node{Key: fmt.Sprintf("%s%s/%d", prefix, KindSoundBank, b.ID), Label: orDefault(b.DebugName, b.PathName), Kind: KindSoundBank})
	}
	for _, m := range media {
		targets = append(targets, Node{Key: fmt.Sprintf("%s%s/%d", prefix, KindMedia, m.ID), Label: orDefault(m.DebugName, m.PathName), Kind: KindMedia})
	}
	for _, s := range sources {
		targets = append(targets, Node{Key: fmt.Sprintf("%s%s/%d", prefix, KindExternalSource, s.Cookie), Label: orDefault(s.DebugName, fmt.Sprintf("cookie %d", s.Cookie)), Kind: KindExternalSource})
	}
	for _, n := range targets {
		key, err := a.AddNode(n)
		if err != nil {
			return err
		}
		if err := a.AddEdge(root, key); err != nil {
			return err
		}
	}
	return nil
}

func (a *Asset) root(prefix string, kind NodeKind, id uint32, label string) (string, error) {
	return a.AddNode(Node{Key: fmt.Sprintf("%s%s/%d", prefix, kind, id), Label: label, Kind: kind})
}

// FromEvent builds the graph of every language variant of an event, with
// one node per switch container leaf.
func FromEvent(event cooked.LocalizedEvent) (*Asset, error) {
	a := NewAsset(event)
	for _, language := range event.SortedLanguages() {
		data := event.Languages[language]
		prefix := scope(language)
		root, err := a.root(prefix, KindEvent, data.ID, rootLabel(data.DebugName, "Event", data.ID, language))
		if err != nil {
			return nil, err
		}
		if err := a.requires(prefix, root, data.SoundBanks, data.Media, data.ExternalSources); err != nil {
			return nil, err
		}
		for i, leaf := range data.SwitchContainerLeaves {
			key, err := a.AddNode(Node{Key: fmt.Sprintf("%s%s/%d/%d", prefix, KindLeaf, data.ID, i), Label: conditionLabel(leaf.GroupValues), Kind: KindLeaf})
			if err != nil {
				return nil, err
			}
			if err := a.AddEdge(root, key); err != nil {
				return nil, err
			}
			if err := a.requires(prefix, key, leaf.SoundBanks, leaf.Media, leaf.ExternalSources); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// FromAuxBus builds the graph of an auxiliary bus.
func FromAuxBus(bus cooked.LocalizedAuxBus) (*Asset, error) {
	a := NewAsset(bus)
	for _, language := range bus.SortedLanguages() {
		data := bus.Languages[language]
		prefix := scope(language)
		root, err := a.root(prefix, KindAuxBus, data.ID, rootLabel(data.DebugName, "Aux bus", data.ID, language))
		if err != nil {
			return nil, err
		}
		if err := a.requires(prefix, root, data.SoundBanks, data.Media, nil); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromShareset builds the graph of a plugin shareset.
func FromShareset(shareset cooked.LocalizedShareset) (*Asset, error) {
	a := NewAsset(shareset)
	for _, language := range shareset.SortedLanguages() {
		data := shareset.Languages[language]
		prefix := scope(language)
		root, err := a.root(prefix, KindShareset, data.ID, rootLabel(data.DebugName, "Shareset", data.ID, language))
		if err != nil {
			return nil, err
		}
		if err := a.requires(prefix, root, data.SoundBanks, data.Media, nil); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromSoundBank builds one node per language variant of a sound bank.
func FromSoundBank(bank cooked.LocalizedSoundBank) (*Asset, error) {
	a := NewAsset(bank)
	for _, language := range bank.SortedLanguages() {
		data := bank.Languages[language]
		label := rootLabel(orDefault(data.DebugName, data.PathName), "Sound bank", data.ID, language)
		if _, err := a.root(scope(language), KindSoundBank, data.ID, label); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromInitBank builds the graph of the init bank and its loose media.
func FromInitBank(bank cooked.InitBank) (*Asset, error) {
	a := NewAsset(bank)
	root, err := a.root("", KindSoundBank, bank.ID, orDefault(bank.DebugName, bank.PathName))
	if err != nil {
		return nil, err
	}
	if err := a.requires("", root, nil, bank.Media, nil); err != nil {
		return nil, err
	}
	return a, nil
}

// FromMedia builds a single media node.
func FromMedia(media cooked.Media) (*Asset, error) {
	a := NewAsset(media)
	if _, err := a.root("", KindMedia, media.ID, orDefault(media.DebugName, media.PathName)); err != nil {
		return nil, err
	}
	return a, nil
}

// FromValue builds a single node for an object that requires nothing, such
// as a trigger or a switch value.
func FromValue(data any, id uint32, label string) (*Asset, error) {
	a := NewAsset(data)
	if _, err := a.root("", KindValue, id, label); err != nil {
		return nil, err
	}
	return a, nil
}
