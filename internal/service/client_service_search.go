// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/store"
	"github.com/MKhiriev/horizon/internal/utils"
	"github.com/MKhiriev/horizon/internal/validators"
	"github.com/MKhiriev/horizon/models"
)

type searchService struct {
	validator validators.Validator
	history   store.HistoryRepository
	latency   utils.Delayer
	clock     utils.Clock
}

func NewSearchService(validator validators.Validator, history store.HistoryRepository, latency utils.Delayer, clock utils.Clock) SearchService {
	return &searchService{
		validator: validator,
		history:   history,
		latency:   latency,
		clock:     clock,
	}
}

func (s *searchService) Submit(ctx context.Context, req models.SearchRequest) (string, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	name := strings.TrimSpace(req.Name)
	record := models.NewHistoryRecord(name, trimmedFields(req), s.clock.Now())

	var historyErr error
	if _, err := s.history.Append(ctx, record); err != nil {
		log.Err(err).
			Str("func", "searchService.Submit").
			Str("query", name).
			Msg("failed to save search to history")
		historyErr = fmt.Errorf("%w: %w", ErrHistoryNotSaved, err)
	}

	if err := s.latency.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSearchInterrupted, err)
	}

	log.Debug().
		Str("func", "searchService.Submit").
		Str("query", name).
		Msg("search submitted")

	return navigation.ProfileRoute(name), historyErr
}

func trimmedFields(req models.SearchRequest) []models.HistoryField {
	entries := make([]models.IdentifierEntry, len(req.Entries))
	for i, e := range req.Entries {
		e.Value = strings.TrimSpace(e.Value)
		entries[i] = e
	}
	return models.SearchRequest{Entries: entries}.NonEmptyFields()
}
