package main

import (
	"context"
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/team-lock/internal/adapter"
	"github.com/MKhiriev/team-lock/internal/client"
	"github.com/MKhiriev/team-lock/internal/config"
	"github.com/MKhiriev/team-lock/internal/gate"
	"github.com/MKhiriev/team-lock/internal/logger"
	"github.com/MKhiriev/team-lock/internal/service"
	"github.com/MKhiriev/team-lock/internal/session"
	"github.com/MKhiriev/team-lock/internal/store"
	"github.com/MKhiriev/team-lock/internal/tui"
	"github.com/MKhiriev/team-lock/internal/workers"
	"github.com/MKhiriev/team-lock/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		memguard.SafeExit(1)
	}
}

func run() error {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("team-lock-client", cfg.App.LogFile, cfg.App.LogLevel)
	ctx := log.WithContext(context.Background())

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	cache := session.NewMemoryCache()
	throttle := gate.NewAttemptThrottle()
	services := service.NewClientServices(storages, serverAdapter, cache, log)

	newGate := func(slug string) *gate.Gate {
		return gate.New(slug, services.TeamService, cache,
			gate.WithKeyRequired(),
			gate.WithThrottle(throttle),
			gate.WithLogger(log),
		)
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, newGate, buildInfo, log)

	bg := workers.NewWorkers(workers.NewThrottleSweeper(throttle, cfg.Workers.ThrottleSweepInterval, log))

	app := client.NewApp(services.AuthService, ui, cache, bg, log)
	return app.Run(ctx)
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
