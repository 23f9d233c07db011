// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpushin/go-notes-api/internal/adapter"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/store"
	"github.com/akarpushin/go-notes-api/models"
)

// googleAuthService bridges Google identities onto local accounts. It
// owns no credentials itself: token issuance is delegated to the
// AuthService and the OAuth protocol steps to the adapter.
type googleAuthService struct {
	userRepository store.UserRepository
	provider       adapter.GoogleProvider
	auth           AuthService
	logger         *logger.Logger
}

// NewGoogleAuthService constructs a [GoogleAuthService] on top of the
// user repository, the OAuth adapter and the token-issuing auth service.
func NewGoogleAuthService(userRepository store.UserRepository, provider adapter.GoogleProvider, auth AuthService, logger *logger.Logger) GoogleAuthService {
	return &googleAuthService{
		userRepository: userRepository,
		provider:       provider,
		auth:           auth,
		logger:         logger,
	}
}

// AuthURL returns the Google consent-screen URL for the given state nonce.
func (g *googleAuthService) AuthURL(state string) string {
	return g.provider.AuthCodeURL(state)
}

// HandleCallback resolves the authorization code into a local account and
// issues a session token for it.
func (g *googleAuthService) HandleCallback(ctx context.Context, code string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	profile, err := g.provider.ResolveProfile(ctx, code)
	if err != nil {
		log.Err(err).Msg("resolving google profile failed")
		return models.User{}, models.Token{}, fmt.Errorf("resolving google profile failed: %w", err)
	}

	user, err := g.ResolveGoogleProfile(ctx, profile)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := g.auth.GoogleLogin(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("token creation failed after google login")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResolveGoogleProfile maps a verified Google profile onto a local account:
//   - no local account → create one, pre-verified, without a password
//   - local account without a google identity → link it and force the
//     account verified (Google confirmed the address)
//   - already linked account → returned as-is
//
// Password state never rejects a Google sign-in.
func (g *googleAuthService) ResolveGoogleProfile(ctx context.Context, profile models.GoogleProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	if profile.ID == "" || profile.Email == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	email := normalizeEmail(profile.Email)

	user, err := g.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return g.createFromProfile(ctx, profile, email)
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.GoogleID != "" {
		return user, nil
	}

	if err := g.userRepository.LinkGoogleAccount(ctx, user.ID, profile.ID, profile.Avatar); err != nil {
		// lost the race to a concurrent callback, the account is linked now
		if !errors.Is(err, store.ErrGoogleAccountConflict) {
			log.Err(err).Str("email", email).Msg("linking google account failed")
			return models.User{}, fmt.Errorf("linking google account failed: %w", err)
		}
	}

	linked, err := g.userRepository.FindUserByID(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reloading linked account failed")
		return models.User{}, fmt.Errorf("reloading linked account failed: %w", err)
	}

	return linked, nil
}

func (g *googleAuthService) createFromProfile(ctx context.Context, profile models.GoogleProfile, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	name := profile.Name
	if name == "" {
		name = email
	}

	created, err := g.userRepository.CreateGoogleUser(ctx, models.User{
		Email:    email,
		Name:     name,
		GoogleID: profile.ID,
		Avatar:   profile.Avatar,
	})
	if err != nil {
		// a concurrent signup took the email first, fall back to linking
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return g.ResolveGoogleProfile(ctx, profile)
		}
		log.Err(err).Str("email", email).Msg("creating google account failed")
		return models.User{}, fmt.Errorf("creating google account failed: %w", err)
	}

	return created, nil
}
