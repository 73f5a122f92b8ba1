// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/MKhiriev/horizon/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateField_EmptyAlwaysAccepted(t *testing.T) {
	for _, ft := range models.FieldTypes {
		assert.NoError(t, ValidateField(ft, ""), ft.String())
	}
}

func TestValidateField_UnknownType(t *testing.T) {
	assert.ErrorIs(t, ValidateField(models.FieldType(0), "x"), ErrUnsupportedType)
}

func TestValidateField_Email(t *testing.T) {
	valid := []string{"jane@x.com", "a.b+c@sub.example.org", "u@d.io"}
	invalid := []string{"jane", "jane@", "jane@x", "@x.com", "jane doe@x.com", "jane@x.", "jane@@x.com"}

	for _, s := range valid {
		assert.NoError(t, ValidateField(models.Email, s), s)
	}
	for _, s := range invalid {
		assert.ErrorIs(t, ValidateField(models.Email, s), ErrInvalidEmail, s)
	}
}

func TestValidateField_Domain(t *testing.T) {
	valid := []string{"example.com", "sub.example.co.uk", "a-b.io", "x1.dev"}
	invalid := []string{"example", "-bad.com", "bad-.com", "exa mple.com", "example.c", "example.123", ".com"}

	for _, s := range valid {
		assert.NoError(t, ValidateField(models.Domain, s), s)
	}
	for _, s := range invalid {
		assert.ErrorIs(t, ValidateField(models.Domain, s), ErrInvalidDomain, s)
	}
}

func TestValidateField_Employer(t *testing.T) {
	assert.NoError(t, ValidateField(models.Employer, "Acme"))
	assert.NoError(t, ValidateField(models.Employer, "IB"))
	assert.ErrorIs(t, ValidateField(models.Employer, "A"), ErrInvalidEmployer)
}

func TestValidateField_Phone(t *testing.T) {
	valid := []string{"555-123-4567", "(555) 123-4567", "+1 555 123 4567", "5551234567", "+44-555.123.4567"}
	invalid := []string{"12345", "555-1234", "phone", "555-123-45678"}

	for _, s := range valid {
		assert.NoError(t, ValidateField(models.Phone, s), s)
	}
	for _, s := range invalid {
		assert.ErrorIs(t, ValidateField(models.Phone, s), ErrInvalidPhone, s)
	}
}

// TestValidateField_NoTrimming verifies that surrounding whitespace is not
// removed by the validator itself.
func TestValidateField_NoTrimming(t *testing.T) {
	assert.ErrorIs(t, ValidateField(models.Email, " jane@x.com"), ErrInvalidEmail)
}

func TestDefinitionTable(t *testing.T) {
	for _, ft := range models.FieldTypes {
		def, ok := Definition(ft)
		assert.True(t, ok, ft.String())
		assert.NotEmpty(t, def.Placeholder)
		assert.NotEmpty(t, def.Icon)
		assert.NotNil(t, def.Match)
		assert.Error(t, def.Err)
	}

	assert.Equal(t, "name@example.com", Placeholder(models.Email))
	assert.Equal(t, "tel", Icon(models.Phone))
	assert.Equal(t, "?", Icon(models.FieldType(42)))
}
