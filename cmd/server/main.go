package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nutri-track/internal/adapter"
	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/handler"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/server"
	"github.com/MKhiriev/nutri-track/internal/service"
	"github.com/MKhiriev/nutri-track/internal/store"
	"github.com/MKhiriev/nutri-track/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("nutri-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("nutri-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Dur("session_ttl", cfg.App.SessionTTL).
		Bool("assistant_configured", cfg.Adapter.GeminiAPIKey != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cfg.App.SessionTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, adapter.NewGeminiAdapter(cfg.Adapter, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
