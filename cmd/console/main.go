package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/meter-console/internal/client"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("meter-console", cfg.App.LogPath)
	log.Debug().
		Str("api", cfg.Adapter.HTTPAddress).
		Str("timezone", cfg.App.ReportTimezone).
		Str("dsn", cfg.Storage.DB.DSN).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
