package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/logger"
)

// MemoryDSN selects the in-process key-value store.
const MemoryDSN = "memory"

// ClientStorages groups the client storage layer into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// KeyValueStore is the local persistence port.
	KeyValueStore KeyValueStore

	// HistoryRepository keeps past searches inside KeyValueStore.
	HistoryRepository HistoryRepository

	closer func() error
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to the file at cfg.DB.DSN, creating the
//     file if it does not yet exist, or uses the in-memory store when the
//     DSN is [MemoryDSN].
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the history repository on top of the key-value store.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log = log.GetChildLogger("store")
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		kv := NewMemoryKeyValueStore()
		return newClientStorages(kv, cfg.History, func() error { return nil }), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(NewSQLiteKeyValueStore(db), cfg.History, db.Close), nil
}

func newClientStorages(kv KeyValueStore, cfg config.History, closer func() error) *ClientStorages {
	return &ClientStorages{
		KeyValueStore:     kv,
		HistoryRepository: NewHistoryRepository(kv, cfg.Key, cfg.Limit),
		closer:            closer,
	}
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
