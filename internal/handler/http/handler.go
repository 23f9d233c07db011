package http

import (
	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	// validate checks request DTOs against their struct tags before any
	// payload reaches the service layer.
	validate *validator.Validate

	// clientURL is the frontend base URL the Google callback redirects to.
	clientURL string

	// rateLimit carries the per-IP throttling windows applied to the
	// authentication endpoints.
	rateLimit config.RateLimit

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validate:  validator.New(),
		clientURL: cfg.OAuth.ClientURL,
		rateLimit: cfg.RateLimit,
		logger:    logger,
	}
}
