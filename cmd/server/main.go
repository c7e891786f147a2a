package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/handler"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/server"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/store"
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
		logger.NewLogger("team-lock-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("team-lock-server", cfg.App.LogLevel)
	log.Debug().
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Int("min_kdf_iterations", cfg.App.MinKDFIterations).
		Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.Close()

	services, err := service.NewServices(repositories, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, repositories, cfg.Server, log)
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
