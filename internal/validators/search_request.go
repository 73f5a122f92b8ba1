// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/horizon/models"
)

// Field name constants used to restrict [SearchRequestValidator.Validate] to
// a subset of rules. The default order is also the rule priority.
const (
	// FieldName targets the subject name rules (required, minimum length).
	FieldName = "name"

	// FieldIdentifiers requires at least one entry with a non-empty value.
	FieldIdentifiers = "identifiers"

	// FieldEntries checks every non-empty entry against its type's format.
	FieldEntries = "entries"
)

// MinNameLength is the shortest accepted subject name, in characters.
const MinNameLength = 2

// SearchRequestValidator validates submitted search forms.
type SearchRequestValidator struct {
}

// NewSearchRequestValidator constructs a new SearchRequestValidator and
// returns it as the Validator interface.
func NewSearchRequestValidator() Validator {
	return &SearchRequestValidator{}
}

// Validate accepts models.SearchRequest or *models.SearchRequest.
//
// Rules are applied in priority order: name, identifiers, entries. The first
// failing rule wins. Name and values are trimmed before checking.
func (v *SearchRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SearchRequestValidator) validateSearchRequest(_ context.Context, req models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldIdentifiers, FieldEntries}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(req.Name)
			if name == "" {
				return ErrNameRequired
			}
			if utf8.RuneCountInString(name) < MinNameLength {
				return ErrNameTooShort
			}
		case FieldIdentifiers:
			if !hasNonEmptyEntry(req.Entries) {
				return ErrNoIdentifiers
			}
		case FieldEntries:
			for _, e := range req.Entries {
				value := strings.TrimSpace(e.Value)
				if value == "" {
					continue
				}
				if err := ValidateField(e.Type, value); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func hasNonEmptyEntry(entries []models.IdentifierEntry) bool {
	for _, e := range entries {
		if strings.TrimSpace(e.Value) != "" {
			return true
		}
	}
	return false
}
