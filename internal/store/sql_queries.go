// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_store"

// psql builds SQLite statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

// buildSetValueQuery upserts the value so Set behaves like assignment.
func buildSetValueQuery(key, value string, updatedAt time.Time) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns("name", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveValueQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}
