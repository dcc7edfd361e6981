package projectdb

import "errors"

var (
	// ErrUnknownPlatform is returned when no metadata exists for the platform.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrInvalidMetadata is returned when a metadata file cannot be used.
	ErrInvalidMetadata = errors.New("invalid metadata")
)
