package tui

import (
	"github.com/MKhiriev/horizon/models"
)

type searchDoneMsg struct {
	route string
	err   error
}

type profileLoadedMsg struct {
	route   string
	profile models.ProfileRecord
	err     error
}

type historyLoadedMsg struct {
	records []models.HistoryRecord
	err     error
}

type historyChangedMsg struct {
	err error
}

type repeatSearchMsg struct {
	route string
	err   error
}

type copiedMsg struct {
	what string
}

type notifyMsg struct {
	text string
}

type clearStatusMsg struct {
	seq int
}
