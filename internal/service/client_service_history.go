package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/store"
	"github.com/MKhiriev/horizon/models"
)

type historyService struct {
	history store.HistoryRepository
}

func NewHistoryService(history store.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (h *historyService) List(ctx context.Context) ([]models.HistoryRecord, error) {
	return h.history.List(ctx)
}

func (h *historyService) Remove(ctx context.Context, id int64) error {
	if err := h.history.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove history record %d: %w", id, err)
	}
	return nil
}

func (h *historyService) Clear(ctx context.Context) error {
	if err := h.history.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (h *historyService) Repeat(ctx context.Context, id int64) (string, error) {
	rec, err := h.history.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("repeat search %d: %w", id, err)
	}
	return navigation.ProfileRoute(rec.Query), nil
}
