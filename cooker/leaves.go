package cooker

import (
	"fmt"
	"slices"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

type conditionalContainer struct {
	container projectdb.SwitchContainerRef
	condition cooked.GroupValueSet
}

type leafDependencies struct {
	condition cooked.GroupValueSet
	deps      *dependencies
}

// switchContainerLeaves splits the content of containers between what is
// always loaded, merged into mandatory, and what is only loaded once a set
// of switch or state values is set.
func (s *session) switchContainerLeaves(loading SwitchContainerLoading, containers []projectdb.SwitchContainerRef,
	mandatory *dependencies, required cooked.GroupValueSet) ([]cooked.SwitchContainerLeaf, error) {
	var conditional []conditionalContainer
	for _, container := range containers {
		values, ok := s.pd.SwitchValues(container)
		if !ok {
			return nil, fmt.Errorf("failed to resolve switch values of event %d container %v: %w",
				container.Event.Event.ID, container.Path, ErrNotFound)
		}
		condition := cooked.NewGroupValueSet()
		for _, value := range values {
			if s.alwaysSet(loading, value, required) {
				continue
			}
			condition.Add(value.Cooked(s.rule))
		}
		if condition.Len() == 0 {
			if err := s.addContainer(mandatory, container); err != nil {
				return nil, err
			}
			continue
		}
		conditional = append(conditional, conditionalContainer{container: container, condition: condition})
	}

	// Mandatory content is complete; leaves only keep what it lacks.
	var leaves []*leafDependencies
	for _, c := range conditional {
		deps := newDependencies()
		if err := s.addContainer(deps, c.container); err != nil {
			return nil, err
		}
		extra := deps.subtract(mandatory)
		if extra.empty() {
			continue
		}
		i := slices.IndexFunc(leaves, func(l *leafDependencies) bool {
			return l.condition.Equal(c.condition)
		})
		if i >= 0 {
			leaves[i].deps.merge(extra)
			continue
		}
		leaves = append(leaves, &leafDependencies{condition: c.condition, deps: extra})
	}

	result := make([]cooked.SwitchContainerLeaf, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, cooked.SwitchContainerLeaf{
			GroupValues:     l.condition.Sorted(),
			SoundBanks:      l.deps.sortedSoundBanks(),
			Media:           l.deps.sortedMedia(),
			ExternalSources: l.deps.sortedExternalSources(),
		})
	}
	slices.SortFunc(result, func(a, b cooked.SwitchContainerLeaf) int {
		return slices.CompareFunc(a.GroupValues, b.GroupValues, cooked.CompareGroupValues)
	})
	return result, nil
}

// alwaysSet reports whether value can be left out of a leaf condition.
func (s *session) alwaysSet(loading SwitchContainerLoading, value projectdb.GroupValueRef, required cooked.GroupValueSet) bool {
	switch {
	case loading == AlwaysLoad:
		return true
	case required.Contains(value.Cooked(s.rule)):
		return true
	case value.ID == 0:
		return true
	case value.Kind == cooked.GroupSwitch && value.ControlledByGameParameter:
		return true
	}
	return false
}

func (s *session) addContainer(deps *dependencies, container projectdb.SwitchContainerRef) error {
	if err := s.addSoundBank(deps, container.Event.SoundBank); err != nil {
		return err
	}
	if err := s.addOwner(deps, container.Owner(), container.Event.Language); err != nil {
		return fmt.Errorf("failed to add media of event %d container %v: %w", container.Event.Event.ID, container.Path, err)
	}
	return nil
}
