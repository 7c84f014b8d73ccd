package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/handler"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/server"
	"github.com/MKhiriev/epqs-catalog/internal/service"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("epqs-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("db_configured", cfg.Storage.DB.DSN != "").
		Dur("session_duration", cfg.App.SessionDuration).
		Msg("received configs")

	if cfg.App.SessionSignKeyGenerated {
		log.Warn().Msg("no session sign key configured, using a random one: sessions will not survive a restart")
	}

	ctx := context.Background()

	storage, err := store.NewStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer storage.Close()

	log.Info().Str("mode", string(storage.Mode())).Msg("storage selected")

	services, err := service.NewServices(storage, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
