package cooked

// AcousticTexture identifies an acoustic texture.
type AcousticTexture struct {
	ShortID   uint32 `json:"shortId"`
	DebugName string `json:"debugName,omitempty"`
}

// GameParameter identifies a game parameter (RTPC).
type GameParameter struct {
	ShortID   uint32 `json:"shortId"`
	DebugName string `json:"debugName,omitempty"`
}

// Trigger identifies a trigger.
type Trigger struct {
	ID        uint32 `json:"triggerId"`
	DebugName string `json:"debugName,omitempty"`
}
