package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-posts/internal/config"
	"github.com/MKhiriev/go-users-posts/internal/handler"
	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/server"
	"github.com/MKhiriev/go-users-posts/internal/service"
	"github.com/MKhiriev/go-users-posts/internal/store"
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
		logger.NewLogger("users-posts-server").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.New("users-posts-server", os.Stdout, cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger("users-posts-server").Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
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
