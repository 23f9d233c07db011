package service

import (
	"github.com/akarpushin/go-notes-api/internal/adapter"
	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/mail"
	"github.com/akarpushin/go-notes-api/internal/store"
)

type Services struct {
	AuthService       AuthService
	GoogleAuthService GoogleAuthService
	NoteService       NoteService
}

func NewServices(storages *store.Storages, provider adapter.GoogleProvider, mailSender mail.Sender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, mailSender, cfg.Auth, logger)

	return &Services{
		AuthService:       authService,
		GoogleAuthService: NewGoogleAuthService(storages.UserRepository, provider, authService, logger),
		NoteService:       NewNoteService(storages.NoteRepository, logger),
	}
}
