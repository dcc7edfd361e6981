package cooked

import "cmp"

// Media describes a media file that must be staged next to the banks because
// it is streamed or kept loose on disk.
type Media struct {
	ID              uint32 `json:"mediaId"`
	PathName        string `json:"mediaPathName"`
	PrefetchSize    uint32 `json:"prefetchSize"`
	MemoryAlignment uint32 `json:"memoryAlignment"`
	DeviceMemory    bool   `json:"deviceMemory"`
	Streaming       bool   `json:"streaming"`
	DebugName       string `json:"debugName,omitempty"`
}

// CompareMedia orders media by id, then path.
func CompareMedia(a, b Media) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return cmp.Compare(a.PathName, b.PathName)
}
