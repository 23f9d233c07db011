package handler

import (
	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/handler/http"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
