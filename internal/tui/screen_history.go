package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/horizon/models"
)

type historyModel struct {
	records []models.HistoryRecord
	idx     int
	loading bool
}

func (m historyModel) current() (models.HistoryRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.HistoryRecord{}, false
	}
	return m.records[m.idx], true
}

func (m historyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.records) == 0:
		b.WriteString("No search history\n")
		b.WriteString(helpStyle.Render("Your recent searches will appear here."))
	default:
		for i, r := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-30s %s\n", cursor, fitText(r.Query, 30), formatTimestamp(r))
			if len(r.Fields) > 0 {
				b.WriteString("    " + helpStyle.Render(formatFields(r.Fields)) + "\n")
			}
		}
	}

	return renderPage("SEARCH HISTORY", b.String(), "enter: search again  d: remove  D: clear all")
}

func formatTimestamp(r models.HistoryRecord) string {
	t := r.Time()
	if t.IsZero() {
		return r.Timestamp
	}
	return t.In(time.Local).Format("Jan 2, 2006 15:04")
}

func formatFields(fields []models.HistoryField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Type.String()+": "+f.Value)
	}
	return strings.Join(parts, "  ")
}
