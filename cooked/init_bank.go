package cooked

// InitBank is the init sound bank together with the media it needs and the
// languages the project ships.
type InitBank struct {
	SoundBank
	Media     []Media    `json:"media"`
	Languages []Language `json:"language"`
}
