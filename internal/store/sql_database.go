package store

import (
	"database/sql"

	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/migrations"
)

// DB wraps the SQL connection used by the local key-value store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
