// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/service"
	"github.com/MKhiriev/horizon/internal/store"
)

// humanizeError turns service errors into short messages for the status
// line. Validation errors already carry user-facing text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrHistoryNotSaved):
		return "Search completed but could not be saved to history"
	case errors.Is(err, service.ErrSearchInterrupted):
		return "Search was interrupted"
	case errors.Is(err, store.ErrHistoryRecordNotFound):
		return "This search is no longer in your history"
	case errors.Is(err, navigation.ErrMalformedQuery):
		return "The search link is malformed"
	default:
		return err.Error()
	}
}

// ErrNoServices is returned by New when no services are provided.
var ErrNoServices = errors.New("tui: client services are required")
