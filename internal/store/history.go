// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/models"
)

// historyRepository stores the whole search history as one JSON array under
// a fixed key of a [KeyValueStore].
//
// Read-modify-write cycles are serialized by mu so concurrent appends cannot
// drop each other's records.
type historyRepository struct {
	kv    KeyValueStore
	key   string
	limit int

	mu sync.Mutex
}

// NewHistoryRepository constructs a [HistoryRepository] keeping at most
// limit records under key. A non-positive limit falls back to
// [config.DefaultHistoryLimit].
func NewHistoryRepository(kv KeyValueStore, key string, limit int) HistoryRepository {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	return &historyRepository{
		kv:    kv,
		key:   key,
		limit: limit,
	}
}

func (h *historyRepository) Append(ctx context.Context, rec models.HistoryRecord) (models.HistoryRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.load(ctx)
	if err != nil {
		return models.HistoryRecord{}, err
	}

	// ids are millisecond timestamps; keep them unique when two searches land
	// in the same millisecond
	if len(records) > 0 && rec.ID <= records[0].ID {
		rec.ID = records[0].ID + 1
	}

	records = append([]models.HistoryRecord{rec}, records...)
	if len(records) > h.limit {
		records = records[:h.limit]
	}

	if err = h.save(ctx, records); err != nil {
		return models.HistoryRecord{}, err
	}

	return rec, nil
}

func (h *historyRepository) List(ctx context.Context) ([]models.HistoryRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "historyRepository.List").
			Msg("history is unavailable, treating as empty")
		return []models.HistoryRecord{}, nil
	}

	return records, nil
}

func (h *historyRepository) Get(ctx context.Context, id int64) (models.HistoryRecord, error) {
	records, err := h.List(ctx)
	if err != nil {
		return models.HistoryRecord{}, err
	}

	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}

	return models.HistoryRecord{}, ErrHistoryRecordNotFound
}

func (h *historyRepository) Remove(ctx context.Context, id int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records, err := h.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.HistoryRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if len(kept) == len(records) {
		return nil
	}

	return h.save(ctx, kept)
}

func (h *historyRepository) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.kv.Remove(ctx, h.key); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}

// load reads the stored list. A missing key or a value that is not a JSON
// array of records both yield an empty list; only storage failures are
// returned as errors.
func (h *historyRepository) load(ctx context.Context) ([]models.HistoryRecord, error) {
	raw, err := h.kv.Get(ctx, h.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}

	var records []models.HistoryRecord
	if err = json.Unmarshal([]byte(raw), &records); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "historyRepository.load").
			Str("key", h.key).
			Msg("stored history is malformed, treating as empty")
		return []models.HistoryRecord{}, nil
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}

	return records, nil
}

func (h *historyRepository) save(ctx context.Context, records []models.HistoryRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingHistory, err)
	}

	if err = h.kv.Set(ctx, h.key, string(payload)); err != nil {
		return fmt.Errorf("failed to write search history: %w", err)
	}

	return nil
}
