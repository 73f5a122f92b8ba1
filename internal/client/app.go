package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/store"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

func NewApp(storages *store.ClientStorages, ui UI, log *logger.Logger) (*App, error) {
	if storages == nil || ui == nil {
		return nil, ErrAppNotConfigured
	}
	return &App{storages: storages, ui: ui, logger: log}, nil
}

// Run shows the UI until the user quits or the process receives a stop
// signal, then releases the local store.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.logger.Info().Msg("client started")

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close storages")
		}
	}()

	err := a.ui.Run(ctx)
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
