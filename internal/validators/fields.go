// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/horizon/models"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	domainPattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	phonePattern  = regexp.MustCompile(`^(\+\d{1,3}[\s-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
)

// FieldDef describes how an identifier of one type is presented and checked.
type FieldDef struct {
	// Label is the human-readable type name.
	Label string

	// Placeholder is the example value shown in an empty input.
	Placeholder string

	// Icon is a short glyph rendered in front of the input.
	Icon string

	// Match reports whether a non-empty value has the expected format.
	Match func(string) bool

	// Err is returned when Match fails.
	Err error
}

var fieldDefs = map[models.FieldType]FieldDef{
	models.Email: {
		Label:       "Email",
		Placeholder: "name@example.com",
		Icon:        "@",
		Match:       emailPattern.MatchString,
		Err:         ErrInvalidEmail,
	},
	models.Domain: {
		Label:       "Domain",
		Placeholder: "example.com",
		Icon:        "www",
		Match:       domainPattern.MatchString,
		Err:         ErrInvalidDomain,
	},
	models.Employer: {
		Label:       "Employer",
		Placeholder: "Company name",
		Icon:        "org",
		Match:       func(s string) bool { return utf8.RuneCountInString(s) > 1 },
		Err:         ErrInvalidEmployer,
	},
	models.Phone: {
		Label:       "Phone",
		Placeholder: "+1 (555) 123-4567",
		Icon:        "tel",
		Match:       phonePattern.MatchString,
		Err:         ErrInvalidPhone,
	},
}

// Definition returns the presentation and validation table entry for t.
func Definition(t models.FieldType) (FieldDef, bool) {
	def, ok := fieldDefs[t]
	return def, ok
}

// Placeholder returns the example value for t, or an empty string for an
// unknown type.
func Placeholder(t models.FieldType) string {
	return fieldDefs[t].Placeholder
}

// Icon returns the glyph for t, or "?" for an unknown type.
func Icon(t models.FieldType) string {
	def, ok := fieldDefs[t]
	if !ok {
		return "?"
	}
	return def.Icon
}

// ValidateField checks value against the format rule of t. The empty string
// is always accepted as "not filled yet". Value is matched as given; trimming
// is up to the caller.
func ValidateField(t models.FieldType, value string) error {
	def, ok := fieldDefs[t]
	if !ok {
		return ErrUnsupportedType
	}
	if value == "" {
		return nil
	}
	if !def.Match(value) {
		return def.Err
	}
	return nil
}
