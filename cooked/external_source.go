package cooked

import "cmp"

// ExternalSource is a source whose media is provided by the game at runtime.
type ExternalSource struct {
	Cookie    uint32 `json:"cookie"`
	DebugName string `json:"debugName,omitempty"`
}

// CompareExternalSources orders external sources by cookie.
func CompareExternalSources(a, b ExternalSource) int {
	if c := cmp.Compare(a.Cookie, b.Cookie); c != 0 {
		return c
	}
	return cmp.Compare(a.DebugName, b.DebugName)
}
