package main

import (
	"context"
	"fmt"

	"github.com/akarpushin/go-notes-api/internal/adapter"
	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/handler"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/mail"
	"github.com/akarpushin/go-notes-api/internal/server"
	"github.com/akarpushin/go-notes-api/internal/service"
	"github.com/akarpushin/go-notes-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	googleProvider := adapter.NewGoogleAdapter(cfg.OAuth, log)
	mailSender := mail.NewSMTPSender(cfg.SMTP, int(cfg.Auth.OTPTTL.Minutes()), log)

	services := service.NewServices(storages, googleProvider, mailSender, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
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
