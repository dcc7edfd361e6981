package cooker

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotInitialized        = errors.New("project database not initialized")
	ErrNoPlatformData        = errors.New("no data for platform")
	ErrNoRef                 = errors.New("no ref found")
	ErrNotFound              = errors.New("not found")
	ErrEmptyPath             = errors.New("empty path name")
	ErrNotInitBank           = errors.New("not an init sound bank")
	ErrMediaInOtherSoundBank = errors.New("media must be fully defined in the requested sound bank")
)

// AssetError reports which asset a resolver failed on.
type AssetError struct {
	Op      string
	GUID    uuid.UUID
	ShortID uint32
	Name    string
	Err     error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s (%s %d %s): %v", e.Op, e.GUID, e.ShortID, e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
