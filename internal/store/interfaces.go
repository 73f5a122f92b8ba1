// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/horizon/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the local persistence port: a flat namespace of named
// string blobs. It replaces browser-wide local storage so that everything on
// top of it can be tested without a real database.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// HistoryRepository keeps a capped list of past searches, newest first.
type HistoryRepository interface {
	// Append prepends rec, drops everything past the limit and persists the
	// list. It returns the record as stored; its ID may have been bumped to
	// stay unique. No de-duplication is performed.
	Append(ctx context.Context, rec models.HistoryRecord) (models.HistoryRecord, error)

	// List returns the stored records, newest first. A missing or malformed
	// stored value yields an empty list.
	List(ctx context.Context) ([]models.HistoryRecord, error)

	// Get returns the record with the given id or [ErrHistoryRecordNotFound].
	Get(ctx context.Context, id int64) (models.HistoryRecord, error)

	// Remove deletes the record with the given id. Removing an unknown id
	// leaves the list unchanged.
	Remove(ctx context.Context, id int64) error

	// Clear erases all records.
	Clear(ctx context.Context) error
}
