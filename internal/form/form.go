// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form holds the transient state of the search form.
//
// A SearchForm owns the subject name and an ordered, never empty list of
// identifier entries. It moves through the states
//
//	editing -> validating -> error -> editing
//	                      -> submitting -> navigating
//
// and refuses every mutation while a submission is in flight.
package form

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/horizon/internal/utils"
	"github.com/MKhiriev/horizon/internal/validators"
	"github.com/MKhiriev/horizon/models"
)

// State is the lifecycle stage of a SearchForm.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateError
	StateSubmitting
	StateNavigating
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateError:
		return "error"
	case StateSubmitting:
		return "submitting"
	case StateNavigating:
		return "navigating"
	default:
		return "editing"
	}
}

// DefaultFieldType is the type of newly added entries.
const DefaultFieldType = models.Email

// SearchForm is not safe for concurrent use; it is driven from the UI loop.
type SearchForm struct {
	name    string
	entries []models.IdentifierEntry

	state State
	err   error
	route string

	ids       utils.IDGenerator
	validator validators.Validator
}

// New returns a form in the editing state with a single empty email entry.
func New(ids utils.IDGenerator, validator validators.Validator) *SearchForm {
	f := &SearchForm{
		ids:       ids,
		validator: validator,
	}
	f.Reset()
	return f
}

// Reset discards all input and returns the form to editing.
func (f *SearchForm) Reset() {
	f.name = ""
	f.entries = []models.IdentifierEntry{f.newEntry()}
	f.state = StateEditing
	f.err = nil
	f.route = ""
}

func (f *SearchForm) Name() string { return f.name }

func (f *SearchForm) State() State { return f.state }

// Err returns the message of the last failed submission, if any.
func (f *SearchForm) Err() error { return f.err }

// Route returns the destination set by Complete.
func (f *SearchForm) Route() string { return f.route }

// Busy reports whether the form currently rejects input.
func (f *SearchForm) Busy() bool {
	return f.state == StateSubmitting || f.state == StateNavigating
}

// Entries returns a copy of the identifier entries in display order.
func (f *SearchForm) Entries() []models.IdentifierEntry {
	return slices.Clone(f.entries)
}

func (f *SearchForm) SetName(name string) error {
	if err := f.beginEdit(); err != nil {
		return err
	}
	f.name = name
	return nil
}

// AddEntry appends an empty entry of [DefaultFieldType] and returns it.
func (f *SearchForm) AddEntry() (models.IdentifierEntry, error) {
	if err := f.beginEdit(); err != nil {
		return models.IdentifierEntry{}, err
	}
	e := f.newEntry()
	f.entries = append(f.entries, e)
	return e, nil
}

// RemoveEntry deletes the entry with the given id. It does nothing when
// only one entry is left.
func (f *SearchForm) RemoveEntry(id string) error {
	if err := f.beginEdit(); err != nil {
		return err
	}
	i, err := f.indexOf(id)
	if err != nil {
		return err
	}
	if len(f.entries) == 1 {
		return nil
	}
	f.entries = slices.Delete(f.entries, i, i+1)
	return nil
}

func (f *SearchForm) SetEntryType(id string, t models.FieldType) error {
	if err := f.beginEdit(); err != nil {
		return err
	}
	if _, ok := validators.Definition(t); !ok {
		return validators.ErrUnsupportedType
	}
	i, err := f.indexOf(id)
	if err != nil {
		return err
	}
	f.entries[i].Type = t
	return nil
}

func (f *SearchForm) SetEntryValue(id, value string) error {
	if err := f.beginEdit(); err != nil {
		return err
	}
	i, err := f.indexOf(id)
	if err != nil {
		return err
	}
	f.entries[i].Value = value
	return nil
}

// BeginSubmit validates the input. On success the form enters submitting
// and the returned request carries the trimmed name and values. On failure
// the form is left in the error state and the validation error returned.
func (f *SearchForm) BeginSubmit(ctx context.Context) (models.SearchRequest, error) {
	if f.Busy() {
		return models.SearchRequest{}, ErrFormBusy
	}

	f.state = StateValidating
	f.err = nil

	req := f.request()
	if err := f.validator.Validate(ctx, req); err != nil {
		f.state = StateError
		f.err = err
		return models.SearchRequest{}, err
	}

	f.state = StateSubmitting
	return req, nil
}

// Fail ends a submission that could not be completed and returns the form
// to the error state so the user can retry.
func (f *SearchForm) Fail(err error) {
	if f.state != StateSubmitting {
		return
	}
	f.state = StateError
	f.err = err
}

// Complete ends a submission and records where to navigate next.
func (f *SearchForm) Complete(route string) error {
	if f.state != StateSubmitting {
		return ErrNotSubmitting
	}
	f.state = StateNavigating
	f.route = route
	return nil
}

func (f *SearchForm) request() models.SearchRequest {
	entries := make([]models.IdentifierEntry, len(f.entries))
	for i, e := range f.entries {
		e.Value = strings.TrimSpace(e.Value)
		entries[i] = e
	}
	return models.SearchRequest{
		Name:    strings.TrimSpace(f.name),
		Entries: entries,
	}
}

// beginEdit moves an idle form back to editing. The last error stays
// visible until the next submission.
func (f *SearchForm) beginEdit() error {
	if f.Busy() {
		return ErrFormBusy
	}
	f.state = StateEditing
	return nil
}

func (f *SearchForm) indexOf(id string) (int, error) {
	i := slices.IndexFunc(f.entries, func(e models.IdentifierEntry) bool {
		return e.ID == id
	})
	if i < 0 {
		return -1, ErrEntryNotFound
	}
	return i, nil
}

func (f *SearchForm) newEntry() models.IdentifierEntry {
	return models.IdentifierEntry{
		ID:   f.ids.Generate(),
		Type: DefaultFieldType,
	}
}
