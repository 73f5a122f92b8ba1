// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the search pipeline.
//
// Core concepts:
//   - FieldValidator: a table keyed by [models.FieldType] that maps every
//     identifier type to a placeholder, an icon hint and a format rule.
//   - Validator: generic interface to validate arbitrary values or structures,
//     implemented by [SearchRequestValidator] for submitted search forms.
//
// Validation failures are reported as sentinel errors whose messages are
// suitable for showing to the user as-is.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
