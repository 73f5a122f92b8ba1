package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/horizon/internal/client"
	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/service"
	"github.com/MKhiriev/horizon/internal/store"
	"github.com/MKhiriev/horizon/internal/tui"
	"github.com/MKhiriev/horizon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("horizon-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	// the alt screen owns stdout from here on
	log := logger.NewFileLogger("horizon-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(storages, cfg, build, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, build, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(storages, ui, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		bootLog.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
