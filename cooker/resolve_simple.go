package cooker

import (
	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

// resolveSimple looks up a language-agnostic object that has no
// dependencies.
func resolveSimple[T any](c *Cooker, op string, info AssetInfo, lookup func(s *session) (T, bool)) (T, error) {
	var zero T
	lock, pd, err := c.readLock()
	if err != nil {
		return zero, c.fail(op, info, err)
	}
	defer lock.Unlock()

	data, ok := lookup(c.newSession(pd))
	if !ok {
		return zero, c.fail(op, info, ErrNotFound)
	}
	return data, nil
}

// GetExternalSourceCookedData resolves the external source whose cookie is
// info.ShortID.
func (c *Cooker) GetExternalSourceCookedData(info AssetInfo) (cooked.ExternalSource, error) {
	return resolveSimple(c, "GetExternalSourceCookedData", info, func(s *session) (cooked.ExternalSource, bool) {
		ref, ok := s.pd.ExternalSource(info.ShortID)
		if !ok {
			return cooked.ExternalSource{}, false
		}
		return s.externalSourceData(ref.ExternalSource), true
	})
}

func (c *Cooker) GetGameParameterCookedData(info AssetInfo) (cooked.GameParameter, error) {
	return resolveSimple(c, "GetGameParameterCookedData", info, func(s *session) (cooked.GameParameter, bool) {
		ref, ok := s.pd.GameParameter(info.query())
		if !ok {
			return cooked.GameParameter{}, false
		}
		return cooked.GameParameter{ShortID: ref.Object.ID, DebugName: s.objectName(ref)}, true
	})
}

func (c *Cooker) GetTriggerCookedData(info AssetInfo) (cooked.Trigger, error) {
	return resolveSimple(c, "GetTriggerCookedData", info, func(s *session) (cooked.Trigger, bool) {
		ref, ok := s.pd.Trigger(info.query())
		if !ok {
			return cooked.Trigger{}, false
		}
		return cooked.Trigger{ID: ref.Object.ID, DebugName: s.objectName(ref)}, true
	})
}

func (c *Cooker) GetAcousticTextureCookedData(info AssetInfo) (cooked.AcousticTexture, error) {
	return resolveSimple(c, "GetAcousticTextureCookedData", info, func(s *session) (cooked.AcousticTexture, bool) {
		ref, ok := s.pd.AcousticTexture(info.query())
		if !ok {
			return cooked.AcousticTexture{}, false
		}
		return cooked.AcousticTexture{ShortID: ref.Object.ID, DebugName: s.objectName(ref)}, true
	})
}

// GetSwitchCookedData resolves a switch value. Set GroupShortID to look the
// value up by short id.
func (c *Cooker) GetSwitchCookedData(info GroupValueInfo) (cooked.GroupValue, error) {
	return resolveSimple(c, "GetSwitchCookedData", info.AssetInfo, func(s *session) (cooked.GroupValue, bool) {
		ref, ok := s.pd.Switch(info.query())
		return ref.Cooked(s.rule), ok
	})
}

// GetStateCookedData resolves a state value. Set GroupShortID to look the
// value up by short id.
func (c *Cooker) GetStateCookedData(info GroupValueInfo) (cooked.GroupValue, error) {
	return resolveSimple(c, "GetStateCookedData", info.AssetInfo, func(s *session) (cooked.GroupValue, bool) {
		ref, ok := s.pd.State(info.query())
		return ref.Cooked(s.rule), ok
	})
}

func (s *session) objectName(ref projectdb.ObjectRef) string {
	return s.rule.Pick(ref.Object.Name, ref.Object.ObjectPath)
}
