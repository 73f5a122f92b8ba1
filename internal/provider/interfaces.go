// Package provider supplies profile data for a search query.
//
// The only implementation synthesizes a plausible looking record from the
// query string itself after a simulated lookup delay. There is no real data
// source behind it.
package provider

import (
	"context"

	"github.com/MKhiriev/horizon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// ProfileProvider looks up everything known about a subject.
type ProfileProvider interface {
	// Fetch returns the profile for query. It fails only when ctx is done
	// before the lookup completes.
	Fetch(ctx context.Context, query string) (models.ProfileRecord, error)
}
