package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Search form errors. Their messages are shown to the user verbatim.
var (
	ErrNameRequired  = errors.New("please enter a name to search for")
	ErrNameTooShort  = fmt.Errorf("name must be at least %d characters long", MinNameLength)
	ErrNoIdentifiers = errors.New("please provide at least one identifier: email, domain, employer or phone")

	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrInvalidDomain   = errors.New("please enter a valid domain (e.g. example.com)")
	ErrInvalidEmployer = errors.New("employer name must be longer than 1 character")
	ErrInvalidPhone    = errors.New("please enter a valid phone number (e.g. +1 555-123-4567)")
)
