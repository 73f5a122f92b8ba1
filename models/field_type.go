// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownFieldType is returned by ParseFieldType when the string does not
// name one of the supported identifier field types.
var ErrUnknownFieldType = errors.New("unknown field type")

// FieldType defines the kind of identifier a user supplies next to the
// subject's name to narrow a search.
type FieldType int

const (
	// Email is an e-mail address in local@domain.tld form.
	Email FieldType = iota + 1

	// Domain is an internet domain name such as example.com.
	Domain

	// Employer is a free-form company or organisation name.
	Employer

	// Phone is a loosely formatted North-American style phone number.
	Phone
)

// FieldTypes lists every supported field type in the order they are offered
// to the user when cycling through types.
var FieldTypes = []FieldType{Email, Domain, Employer, Phone}

// String returns the lowercase wire name of the field type.
func (t FieldType) String() string {
	switch t {
	case Email:
		return "email"
	case Domain:
		return "domain"
	case Employer:
		return "employer"
	case Phone:
		return "phone"
	default:
		return "unknown"
	}
}

// Next returns the field type that follows t in FieldTypes, wrapping around
// at the end. Unknown types map to Email.
func (t FieldType) Next() FieldType {
	for i, ft := range FieldTypes {
		if ft == t {
			return FieldTypes[(i+1)%len(FieldTypes)]
		}
	}
	return Email
}

// ParseFieldType converts a wire name back into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return Email, nil
	case "domain":
		return Domain, nil
	case "employer":
		return Employer, nil
	case "phone":
		return Phone, nil
	default:
		return 0, ErrUnknownFieldType
	}
}

// MarshalText implements encoding.TextMarshaler so field types are stored as
// their names in JSON.
func (t FieldType) MarshalText() ([]byte, error) {
	if t < Email || t > Phone {
		return nil, ErrUnknownFieldType
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FieldType) UnmarshalText(b []byte) error {
	parsed, err := ParseFieldType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
