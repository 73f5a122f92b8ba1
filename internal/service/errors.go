package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrHistoryNotSaved marks a successful search that could not be
	// recorded in the history.
	ErrHistoryNotSaved = errors.New("search was not saved to history")

	// ErrSearchInterrupted is returned when the client shuts down during
	// the simulated round trip.
	ErrSearchInterrupted = errors.New("search interrupted")

	// ErrNotProfileRoute is returned by ProfileService.Load for routes that
	// do not point at a subject's profile.
	ErrNotProfileRoute = errors.New("route does not point to a profile")
)
