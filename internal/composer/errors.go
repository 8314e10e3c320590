package composer

import "errors"

// Submit preconditions are checked in this order; the first failure wins.
var (
	ErrEmptyCaption       = errors.New("caption cannot be empty")
	ErrNoPlatformSelected = errors.New("select at least one platform")
	ErrNoActiveWorkspace  = errors.New("no active workspace")
	ErrUnknownPlatform    = errors.New("unknown platform")
)
