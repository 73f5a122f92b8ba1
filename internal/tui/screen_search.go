// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/horizon/internal/form"
	"github.com/MKhiriev/horizon/internal/validators"
	"github.com/MKhiriev/horizon/models"
)

type entryInput struct {
	id    string
	input textinput.Model
}

// searchModel renders a form.SearchForm. The form owns the values; the text
// inputs only mirror them for editing.
type searchModel struct {
	form    *form.SearchForm
	name    textinput.Model
	entries []entryInput
	focus   int
	spinner spinner.Model
}

func newSearchModel(f *form.SearchForm) searchModel {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.Width = 40
	name.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := searchModel{form: f, name: name, spinner: s}
	m.syncEntries()
	return m
}

// syncEntries rebuilds the entry inputs from the form, keeping the inputs of
// entries that still exist.
func (m *searchModel) syncEntries() {
	existing := make(map[string]textinput.Model, len(m.entries))
	for _, e := range m.entries {
		existing[e.id] = e.input
	}

	entries := m.form.Entries()
	m.entries = make([]entryInput, 0, len(entries))
	for _, e := range entries {
		in, ok := existing[e.ID]
		if !ok {
			in = textinput.New()
			in.Width = 34
			in.SetValue(e.Value)
		}
		in.Placeholder = validators.Placeholder(e.Type)
		m.entries = append(m.entries, entryInput{id: e.ID, input: in})
	}

	if m.focus > len(m.entries) {
		m.focus = len(m.entries)
	}
	m.applyFocus()
}

func (m *searchModel) applyFocus() {
	if m.focus == 0 {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
	for i := range m.entries {
		if m.focus == i+1 {
			m.entries[i].input.Focus()
		} else {
			m.entries[i].input.Blur()
		}
	}
}

func (m *searchModel) focusNext() {
	m.focus = (m.focus + 1) % (len(m.entries) + 1)
	m.applyFocus()
}

func (m *searchModel) focusPrev() {
	n := len(m.entries) + 1
	m.focus = (m.focus - 1 + n) % n
	m.applyFocus()
}

// focusedEntry returns the entry under the cursor, if the cursor is not on
// the name input.
func (m *searchModel) focusedEntry() (*entryInput, bool) {
	if m.focus == 0 || m.focus > len(m.entries) {
		return nil, false
	}
	return &m.entries[m.focus-1], true
}

func (m *searchModel) focusEntry(id string) {
	for i, e := range m.entries {
		if e.id == id {
			m.focus = i + 1
			break
		}
	}
	m.applyFocus()
}

func (m searchModel) entryType(id string) models.FieldType {
	for _, e := range m.form.Entries() {
		if e.ID == id {
			return e.Type
		}
	}
	return form.DefaultFieldType
}

func (m searchModel) View() string {
	var b strings.Builder

	b.WriteString("Find information about a person\n\n")
	b.WriteString("Name      [" + m.name.View() + "]\n\n")

	for _, e := range m.form.Entries() {
		in := m.inputFor(e.ID)
		label := fmt.Sprintf("%-4s %-9s", validators.Icon(e.Type), e.Type)
		b.WriteString(label + " [" + in.View() + "]\n")
	}

	if m.form.Busy() {
		b.WriteString("\n" + m.spinner.View() + " Searching...\n")
	}
	if err := m.form.Err(); err != nil && !m.form.Busy() {
		b.WriteString("\n" + errorStyle.Render(err.Error()) + "\n")
	}

	return renderPage("SEARCH", b.String(),
		"tab/shift+tab: field  ctrl+a: add  ctrl+x: remove  ctrl+t: type  enter: search")
}

func (m searchModel) inputFor(id string) textinput.Model {
	for _, e := range m.entries {
		if e.id == id {
			return e.input
		}
	}
	return textinput.New()
}
