// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/horizon/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t models.FieldType, v string) models.IdentifierEntry {
	return models.IdentifierEntry{ID: "id-" + v, Type: t, Value: v}
}

func TestNewSearchRequestValidator(t *testing.T) {
	require.NotNil(t, NewSearchRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewSearchRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewSearchRequestValidator()
	err := v.Validate(context.Background(), models.SearchRequest{Name: "Jane"}, "age")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Priority(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SearchRequest
		wantErr error
	}{
		{
			name:    "empty name beats everything",
			req:     models.SearchRequest{Name: "   ", Entries: []models.IdentifierEntry{entry(models.Email, "bad")}},
			wantErr: ErrNameRequired,
		},
		{
			name:    "short name regardless of entries",
			req:     models.SearchRequest{Name: "A", Entries: []models.IdentifierEntry{entry(models.Email, "jane@x.com")}},
			wantErr: ErrNameTooShort,
		},
		{
			name:    "short name after trim",
			req:     models.SearchRequest{Name: " A ", Entries: nil},
			wantErr: ErrNameTooShort,
		},
		{
			name:    "all entries empty",
			req:     models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{entry(models.Email, ""), entry(models.Phone, "  ")}},
			wantErr: ErrNoIdentifiers,
		},
		{
			name:    "no entries at all",
			req:     models.SearchRequest{Name: "Jane Doe"},
			wantErr: ErrNoIdentifiers,
		},
		{
			name: "first invalid entry wins",
			req: models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{
				entry(models.Email, "jane@x.com"),
				entry(models.Domain, "nodot"),
				entry(models.Phone, "12"),
			}},
			wantErr: ErrInvalidDomain,
		},
		{
			name: "empty entries are skipped",
			req: models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{
				entry(models.Email, ""),
				entry(models.Employer, "Acme"),
			}},
		},
		{
			name: "empty entry of unknown type is skipped",
			req: models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{
				entry(models.FieldType(99), ""),
				entry(models.Email, "jane@x.com"),
			}},
		},
		{
			name: "filled entry of unknown type is rejected",
			req: models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{
				entry(models.FieldType(99), "555"),
			}},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "values are trimmed before matching",
			req:     models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{entry(models.Email, " jane@x.com ")}},
			wantErr: nil,
		},
	}

	v := NewSearchRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Pointer(t *testing.T) {
	v := NewSearchRequestValidator()
	req := &models.SearchRequest{Name: "Jane Doe", Entries: []models.IdentifierEntry{entry(models.Email, "jane@x.com")}}
	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewSearchRequestValidator()
	req := models.SearchRequest{Name: "A"}

	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldIdentifiers), ErrNoIdentifiers)
	assert.NoError(t, v.Validate(context.Background(), req, FieldEntries))
}

func TestErrNameTooShort_MentionsMinimum(t *testing.T) {
	assert.Contains(t, ErrNameTooShort.Error(), fmt.Sprintf("at least %d characters", MinNameLength))
}
