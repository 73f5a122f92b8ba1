// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the search client.
//
// The interface has four screens reachable from a navbar: search, profile,
// history and reports. Screen changes go through route paths resolved by
// the navigation package, so a finished search and a repeated history entry
// land on the profile screen the same way.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/horizon/internal/form"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/service"
	"github.com/MKhiriev/horizon/internal/utils"
	"github.com/MKhiriev/horizon/models"
)

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, build: build, logger: log.GetChildLogger("tui")}, nil
}

// Run shows the interface and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	f := form.New(utils.NewUUIDGenerator(), t.services.Validator)
	model := newAppModel(ctx, t.services, f, t.build)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("tui program: %w", err)
	}

	t.logger.Info().Msg("tui closed")
	return nil
}
