// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/horizon/internal/form"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/navigation"
	"github.com/MKhiriev/horizon/internal/service"
	"github.com/MKhiriev/horizon/models"
)

const statusTTL = 2 * time.Second

type screen int

const (
	screenSearch screen = iota
	screenProfile
	screenHistory
	screenReports
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	build         models.AppBuildInfo
	currentScreen screen

	search  searchModel
	profile profileModel
	history historyModel

	status    string
	statusSeq int

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, f *form.SearchForm, build models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		build:         build,
		currentScreen: screenSearch,
		search:        newSearchModel(f),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdClearHistory()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.about):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.search):
			return m.navigate(navigation.RouteSearch)
		case key.Matches(msg, keys.history):
			return m.navigate(navigation.RouteHistory)
		case key.Matches(msg, keys.reports):
			return m.navigate(navigation.RouteReports)
		}

	case searchDoneMsg:
		return m.onSearchDone(msg)

	case profileLoadedMsg:
		if m.currentScreen != screenProfile || msg.route != m.profile.route {
			// the user navigated away while the lookup was running
			return m, nil
		}
		m.profile.loading = false
		if msg.err != nil {
			m.profile.profile = nil
			cmd := m.notify("Error fetching profile data. Please try again later")
			return m, cmd
		}
		p := msg.profile
		m.profile.profile = &p
		return m, nil

	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history.records = msg.records
		if m.history.idx >= len(m.history.records) {
			m.history.idx = len(m.history.records) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil

	case historyChangedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.cmdLoadHistory()

	case repeatSearchMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m.navigate(msg.route)

	case copiedMsg:
		cmd := m.notify(msg.what + " copied to clipboard")
		return m, cmd

	case notifyMsg:
		cmd := m.notify(msg.text)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		switch m.currentScreen {
		case screenSearch:
			if m.search.form.Busy() {
				m.search.spinner, cmd = m.search.spinner.Update(msg)
			}
		case screenProfile:
			if m.profile.loading {
				m.profile.spinner, cmd = m.profile.spinner.Update(msg)
			}
		}
		return m, cmd

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSearch:
		return m.updateSearch(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenReports:
		return m.updateReports(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenSearch:
		body = m.search.View()
	case screenProfile:
		body = m.profile.View()
	case screenHistory:
		body = m.history.View()
	case screenReports:
		body = renderReports()
	}

	if m.showBuildInfo {
		version := ""
		if m.services != nil && m.services.AppInfoService != nil {
			version = m.services.AppInfoService.GetAppVersion(m.ctx)
		}
		body = renderBuildInfoWindow(version, m.build)
	}

	out := renderNavbar(m.currentScreen) + "\n\n" + body
	if m.status != "" {
		out += "\n\n" + statusStyle.Render(m.status)
	}
	if m.showConfirm {
		out += "\n\n" + m.confirm.View()
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// notify shows message in the status line until statusTTL passes or a newer
// message replaces it.
func (m *appModel) notify(message string) tea.Cmd {
	m.statusSeq++
	m.status = message
	return cmdClearStatus(m.statusSeq)
}

// navigate switches to the screen route points at and starts whatever the
// screen needs to load.
func (m appModel) navigate(route string) (tea.Model, tea.Cmd) {
	dest, err := m.services.Router.Resolve(route)
	if err != nil {
		logger.FromContext(m.ctx).Err(err).Str("func", "appModel.navigate").Str("route", route).Msg("bad route")
		cmd := m.notify(humanizeError(err))
		m.currentScreen = screenSearch
		return m, cmd
	}

	switch dest.Page {
	case navigation.PageProfile:
		m.currentScreen = screenProfile
		m.profile = newProfileModel(dest.Path(), dest.Query)
		return m, tea.Batch(m.profile.spinner.Tick, m.cmdLoadProfile(m.profile.route))
	case navigation.PageHistory:
		m.currentScreen = screenHistory
		m.history.loading = true
		return m, m.cmdLoadHistory()
	case navigation.PageReports:
		m.currentScreen = screenReports
		return m, nil
	default:
		m.currentScreen = screenSearch
		return m, nil
	}
}

func (m appModel) onSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	f := m.search.form

	if msg.route == "" {
		f.Fail(msg.err)
		cmd := m.notify(humanizeError(msg.err))
		return m, cmd
	}

	if err := f.Complete(msg.route); err != nil {
		return m, nil
	}

	var cmds []tea.Cmd
	if msg.err != nil {
		cmds = append(cmds, m.notify(humanizeError(msg.err)))
	}

	route := f.Route()
	f.Reset()
	m.search = newSearchModel(f)

	if m.currentScreen != screenSearch {
		// the user left the search screen while the submission was running
		return m, tea.Batch(cmds...)
	}

	next, cmd := m.navigate(route)
	return next, tea.Batch(append(cmds, cmd)...)
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.search.form

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if f.Busy() {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.tab):
			m.search.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.search.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.addEntry):
			e, err := f.AddEntry()
			if err != nil {
				cmd := m.notify(humanizeError(err))
				return m, cmd
			}
			m.search.syncEntries()
			m.search.focusEntry(e.ID)
			return m, nil
		case key.Matches(keyMsg, keys.removeEntry):
			if e, ok := m.search.focusedEntry(); ok {
				if err := f.RemoveEntry(e.id); err != nil {
					cmd := m.notify(humanizeError(err))
					return m, cmd
				}
				m.search.syncEntries()
			}
			return m, nil
		case key.Matches(keyMsg, keys.cycleType):
			if e, ok := m.search.focusedEntry(); ok {
				if err := f.SetEntryType(e.id, m.search.entryType(e.id).Next()); err != nil {
					cmd := m.notify(humanizeError(err))
					return m, cmd
				}
				m.search.syncEntries()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req, err := f.BeginSubmit(m.ctx)
			if err != nil {
				cmd := m.notify(humanizeError(err))
				return m, cmd
			}
			return m, tea.Batch(m.search.spinner.Tick, m.cmdSubmit(req))
		}
	}

	var cmd tea.Cmd
	if e, ok := m.search.focusedEntry(); ok {
		e.input, cmd = e.input.Update(msg)
		if err := f.SetEntryValue(e.id, e.input.Value()); err != nil {
			cmd := m.notify(humanizeError(err))
			return m, cmd
		}
		return m, cmd
	}

	m.search.name, cmd = m.search.name.Update(msg)
	if err := f.SetName(m.search.name.Value()); err != nil {
		cmd := m.notify(humanizeError(err))
		return m, cmd
	}
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.navigate(navigation.RouteSearch)
	case key.Matches(keyMsg, keys.copy):
		if m.profile.profile == nil || m.profile.profile.AISummary == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard("Summary", m.profile.profile.AISummary)
	case key.Matches(keyMsg, keys.copyEmail):
		if m.profile.profile == nil || len(m.profile.profile.BasicInfo.Emails) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard("Email", m.profile.profile.BasicInfo.Emails[0])
	}

	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.history.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m.navigate(navigation.RouteSearch)
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.records)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if rec, ok := m.history.current(); ok {
			return m, m.cmdRepeatSearch(rec.ID)
		}
	case key.Matches(keyMsg, keys.delete):
		if rec, ok := m.history.current(); ok {
			return m, m.cmdRemoveHistory(rec.ID)
		}
	case key.Matches(keyMsg, keys.clearAll):
		if len(m.history.records) == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Clear all search history?"
	}

	return m, nil
}

func (m appModel) updateReports(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m.navigate(navigation.RouteSearch)
	}
	return m, nil
}

func (m appModel) cmdSubmit(req models.SearchRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService
	return func() tea.Msg {
		route, err := svc.Submit(ctx, req)
		return searchDoneMsg{route: route, err: err}
	}
}

func (m appModel) cmdLoadProfile(route string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService
	return func() tea.Msg {
		profile, err := svc.Load(ctx, route)
		return profileLoadedMsg{route: route, profile: profile, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		records, err := svc.List(ctx)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m appModel) cmdRemoveHistory(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return historyChangedMsg{err: svc.Remove(ctx, id)}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return historyChangedMsg{err: svc.Clear(ctx)}
	}
}

func (m appModel) cmdRepeatSearch(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		route, err := svc.Repeat(ctx, id)
		return repeatSearchMsg{route: route, err: err}
	}
}

func cmdCopyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return notifyMsg{text: fmt.Sprintf("Copy to clipboard failed: %v", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
