package cooker

import (
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

// GetEventCookedData resolves everything an event needs in every active
// language. Events posted by the event are resolved along with it.
func (c *Cooker) GetEventCookedData(info EventInfo) (cooked.LocalizedEvent, error) {
	return resolveLocalized(c, localizedKind[projectdb.EventRef, cooked.Event]{
		op:   "GetEventCookedData",
		find: (*projectdb.PlatformData).FindEvents,
		identity: func(ref projectdb.EventRef) (uint32, string, string) {
			return ref.Event.ID, ref.Event.Name, ref.Event.ObjectPath
		},
		resolve: func(s *session, ref projectdb.EventRef) (cooked.Event, error) {
			return s.event(info, ref)
		},
	}, info.AssetInfo)
}

func (s *session) event(info EventInfo, root projectdb.EventRef) (cooked.Event, error) {
	events := s.postedEvents(root)
	mandatory := newDependencies()
	required := cooked.NewGroupValueSet()
	var containers []projectdb.SwitchContainerRef

	for _, ref := range events {
		containers = append(containers, s.pd.SwitchContainers(ref)...)
		if !ref.Event.IsMandatory && len(events) != 1 {
			continue
		}
		if err := s.addSoundBank(mandatory, ref.SoundBank); err != nil {
			return cooked.Event{}, fmt.Errorf("failed to add sound bank of event %d: %w", ref.Event.ID, err)
		}
		owner := ref.Owner()
		if err := s.addAuxBuses(mandatory, s.pd.AuxBuses(owner)); err != nil {
			return cooked.Event{}, err
		}
		if err := s.addOwner(mandatory, owner, owner.Language); err != nil {
			return cooked.Event{}, fmt.Errorf("failed to add media of event %d: %w", ref.Event.ID, err)
		}
		for _, value := range s.pd.SetSwitchValues(ref) {
			required.Add(value.Cooked(s.rule))
		}
		for _, value := range s.pd.SetStateValues(ref) {
			required.Add(value.Cooked(s.rule))
		}
	}

	leaves, err := s.switchContainerLeaves(info.SwitchContainerLoading, containers, mandatory, required)
	if err != nil {
		return cooked.Event{}, err
	}

	event := cooked.Event{
		ID:                    root.Event.ID,
		DebugName:             s.rule.Pick(root.Event.Name, root.Event.ObjectPath),
		SoundBanks:            mandatory.sortedSoundBanks(),
		Media:                 mandatory.sortedMedia(),
		ExternalSources:       mandatory.sortedExternalSources(),
		SwitchContainerLeaves: leaves,
		RequiredGroupValues:   required.Sorted(),
		DestroyOptions:        info.DestroyOptions,
	}
	if len(event.SoundBanks) == 0 {
		s.logger.Info("Unless switch values are properly set, no sound bank will be loaded",
			slog.Uint64("event_id", uint64(event.ID)),
			slog.String("language", root.Language.Name))
	}
	return event, nil
}

// postedEvents returns root followed by every event it posts, directly or
// through other posted events. Each event is listed once, so the worklist
// only grows with events it has not seen and ends when none are left.
func (s *session) postedEvents(root projectdb.EventRef) []projectdb.EventRef {
	events := []projectdb.EventRef{root}
	visited := map[uint32]bool{root.Event.ID: true}
	for i := 0; i < len(events); i++ {
		for _, post := range events[i].Event.ActionPostEvent {
			ref, ok := s.pd.FindEvent(projectdb.Query{ShortID: post.ID, Name: post.Name}, root.Language)
			if !ok {
				s.logger.Warn("Posted event not found",
					slog.Uint64("event_id", uint64(events[i].Event.ID)),
					slog.Uint64("posted_id", uint64(post.ID)),
					slog.String("posted_name", post.Name))
				continue
			}
			if visited[ref.Event.ID] {
				continue
			}
			visited[ref.Event.ID] = true
			events = append(events, ref)
		}
	}
	return events
}
