// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

// Package adapter holds clients for external services. The only adapter
// today talks to Google's OAuth 2.0 endpoints for the social sign-in flow.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	// ErrCodeExchangeFailed is returned when the authorization code could
	// not be exchanged for an access token. Expired and already-used codes
	// end up here.
	ErrCodeExchangeFailed = errors.New("authorization code exchange failed")

	// ErrProfileFetchFailed is returned when the userinfo request fails or
	// comes back with a non-2xx status.
	ErrProfileFetchFailed = errors.New("fetching google profile failed")

	// ErrIncompleteProfile is returned when Google's userinfo response is
	// missing the subject identifier or the email address.
	ErrIncompleteProfile = errors.New("google profile is missing required fields")
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProvider exposes the two steps of the authorization-code flow the
// service layer needs: building the consent URL and resolving a callback
// code into a profile.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	ResolveProfile(ctx context.Context, code string) (models.GoogleProfile, error)
}

type googleAdapter struct {
	oauth       *oauth2.Config
	client      *resty.Client
	userInfoURL string
	logger      *logger.Logger
}

// NewGoogleAdapter constructs a [GoogleProvider] from the OAuth settings.
// The requested scopes cover exactly what the profile bridge consumes:
// the subject id, the email address and the display name.
func NewGoogleAdapter(cfg config.OAuth, log *logger.Logger) GoogleProvider {
	log.Debug().Str("callback", cfg.CallbackURL).Msg("creating google oauth adapter")
	return &googleAdapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"email", "profile"},
		},
		client:      resty.New().SetTimeout(15 * time.Second),
		userInfoURL: userInfoURL,
		logger:      log,
	}
}

// AuthCodeURL builds the consent-screen URL carrying the opaque state
// value the callback handler verifies on return.
func (a *googleAdapter) AuthCodeURL(state string) string {
	return a.oauth.AuthCodeURL(state)
}

// ResolveProfile exchanges the callback code for an access token and
// fetches the userinfo document with it.
func (a *googleAdapter) ResolveProfile(ctx context.Context, code string) (models.GoogleProfile, error) {
	log := logger.FromContext(ctx)

	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*googleAdapter.ResolveProfile").Msg("error exchanging authorization code")
		return models.GoogleProfile{}, fmt.Errorf("%w: %w", ErrCodeExchangeFailed, err)
	}

	var profile models.GoogleProfile
	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get(a.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*googleAdapter.ResolveProfile").Msg("error requesting userinfo")
		return models.GoogleProfile{}, fmt.Errorf("%w: %w", ErrProfileFetchFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*googleAdapter.ResolveProfile").Int("status", resp.StatusCode()).Msg("userinfo request rejected")
		return models.GoogleProfile{}, fmt.Errorf("%w: status %d", ErrProfileFetchFailed, resp.StatusCode())
	}

	if profile.ID == "" || profile.Email == "" {
		log.Error().Str("func", "*googleAdapter.ResolveProfile").Msg("userinfo response is incomplete")
		return models.GoogleProfile{}, ErrIncompleteProfile
	}

	return profile, nil
}
