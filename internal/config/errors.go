package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidHistoryConfigs indicates an empty history key or a
	// non-positive history limit.
	ErrInvalidHistoryConfigs = errors.New("invalid history configuration")
	// ErrInvalidSearchConfigs indicates a negative simulated latency.
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
)
