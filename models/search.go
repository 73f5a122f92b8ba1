// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentifierEntry is one (type, value) pair entered on the search form.
// Entries live only for the duration of the form session and are never
// persisted as such; see HistoryField for the stored shape.
type IdentifierEntry struct {
	// ID is an opaque unique token used to address the entry while editing.
	ID string

	// Type selects the validation rule applied to Value.
	Type FieldType

	// Value is the raw user input.
	Value string
}

// SearchRequest is what the search form hands to the search service once
// the user submits.
type SearchRequest struct {
	// Name is the subject's name. Required, at least two characters.
	Name string

	// Entries are the identifier entries in the order they appear on the form.
	Entries []IdentifierEntry
}

// NonEmptyFields returns the entries that carry a value, converted to their
// persisted form.
func (r SearchRequest) NonEmptyFields() []HistoryField {
	fields := make([]HistoryField, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Value == "" {
			continue
		}
		fields = append(fields, HistoryField{Type: e.Type, Value: e.Value})
	}
	return fields
}
