package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/handler"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/server"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/store"
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

	log := logger.NewLogger("meter-api")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("issuer", cfg.Auth.TokenIssuer).Msg("received configs")

	seed, err := store.NewDirectorySeed(store.DefaultSeedUsers(), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding directory")
	}
	directory := store.NewMemoryDirectory(seed, log)

	services := service.NewServices(directory, cfg.Auth, buildInfo, log)

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

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
