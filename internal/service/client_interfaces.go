package service

import (
	"context"

	"github.com/MKhiriev/horizon/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// SearchService runs a search form submission end to end.
type SearchService interface {
	// Submit validates req, records it in the search history, waits the
	// simulated round trip and returns the profile route to navigate to.
	//
	// Validation failures are returned as validators sentinel errors and
	// nothing is recorded. A failure to record the search does not stop it:
	// the route is returned together with an error wrapping
	// [ErrHistoryNotSaved].
	Submit(ctx context.Context, req models.SearchRequest) (route string, err error)
}

// HistoryService exposes the stored search history to the UI.
type HistoryService interface {
	// List returns past searches, newest first. It never fails because of
	// a missing or malformed stored history.
	List(ctx context.Context) ([]models.HistoryRecord, error)

	// Remove deletes one record. Unknown ids are ignored.
	Remove(ctx context.Context, id int64) error

	// Clear deletes every record.
	Clear(ctx context.Context) error

	// Repeat returns the profile route of a past search without recording
	// it again.
	Repeat(ctx context.Context, id int64) (route string, err error)
}

// ProfileService loads the data shown on the profile screen.
type ProfileService interface {
	// Load decodes the subject name from a profile route and fetches its
	// profile.
	Load(ctx context.Context, route string) (models.ProfileRecord, error)
}

// AppInfoService reports build metadata of the running client.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
