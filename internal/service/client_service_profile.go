package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/provider"
	"github.com/MKhiriev/horizon/models"
)

type profileService struct {
	router   *navigation.Router
	provider provider.ProfileProvider
}

func NewProfileService(router *navigation.Router, provider provider.ProfileProvider) ProfileService {
	return &profileService{router: router, provider: provider}
}

func (p *profileService) Load(ctx context.Context, route string) (models.ProfileRecord, error) {
	dest, err := p.router.Resolve(route)
	if err != nil {
		return models.ProfileRecord{}, fmt.Errorf("resolve %q: %w", route, err)
	}
	if dest.Page != navigation.PageProfile {
		return models.ProfileRecord{}, fmt.Errorf("%w: %q", ErrNotProfileRoute, route)
	}

	profile, err := p.provider.Fetch(ctx, dest.Query)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "profileService.Load").
			Str("query", dest.Query).
			Msg("failed to fetch profile")
		return models.ProfileRecord{}, fmt.Errorf("fetch profile: %w", err)
	}

	return profile, nil
}
