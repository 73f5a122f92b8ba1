package provider

import "errors"

// ErrLookupInterrupted is returned when the context ends before a profile
// lookup completes.
var ErrLookupInterrupted = errors.New("profile lookup interrupted")
