// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryTimestampLayout is the ISO-8601 layout used for
// HistoryRecord.Timestamp. Times are always rendered in UTC with millisecond
// precision, e.g. "2026-03-01T12:30:45.123Z".
const HistoryTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HistoryField is the persisted form of an identifier entry.
type HistoryField struct {
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
}

// HistoryRecord is a log entry of a past search. The whole history is kept as
// a JSON array of these records, newest first.
type HistoryRecord struct {
	// ID is the creation time in Unix milliseconds. It doubles as the record
	// identifier for removal.
	ID int64 `json:"id"`

	// Query is the trimmed subject name that was searched.
	Query string `json:"query"`

	// Fields are the non-empty identifier entries submitted with the query.
	// Older records may not carry any.
	Fields []HistoryField `json:"fields,omitempty"`

	// Timestamp is the creation time formatted with HistoryTimestampLayout.
	Timestamp string `json:"timestamp"`
}

// NewHistoryRecord builds a record for query created at now.
func NewHistoryRecord(query string, fields []HistoryField, now time.Time) HistoryRecord {
	return HistoryRecord{
		ID:        now.UnixMilli(),
		Query:     query,
		Fields:    fields,
		Timestamp: now.UTC().Format(HistoryTimestampLayout),
	}
}

// Time parses Timestamp. A zero time is returned if the stored value is not a
// valid timestamp.
func (r HistoryRecord) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
