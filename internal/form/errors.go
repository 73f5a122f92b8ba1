package form

import "errors"

var (
	// ErrFormBusy is returned for any change attempted while a submission
	// is in flight.
	ErrFormBusy = errors.New("search is already in progress")

	// ErrEntryNotFound is returned when no entry has the given id.
	ErrEntryNotFound = errors.New("identifier entry not found")

	// ErrNotSubmitting is returned by Complete outside of a submission.
	ErrNotSubmitting = errors.New("form is not submitting")
)
