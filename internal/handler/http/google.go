// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/akarpushin/go-notes-api/internal/logger"
)

const oauthStateCookie = "oauth_state"

func (h *Handler) googleRedirect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		MaxAge:   int(10 * time.Minute / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Msg("redirecting to google consent screen")
	http.Redirect(w, r, h.services.GoogleAuthService.AuthURL(state), http.StatusFound)
}

func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.verifyOAuthState(r); err != nil {
		log.Err(err).Msg("oauth state verification failed")
		h.redirectWithError(w, r, "invalid oauth state")
		return
	}

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		log.Warn().Str("error", errParam).Msg("google consent was denied")
		h.redirectWithError(w, r, "google sign-in was cancelled")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Warn().Msg("callback without authorization code")
		h.redirectWithError(w, r, "missing authorization code")
		return
	}

	_, token, err := h.services.GoogleAuthService.HandleCallback(ctx, code)
	if err != nil {
		log.Err(err).Msg("google callback handling failed")
		h.redirectWithError(w, r, "google sign-in failed")
		return
	}

	// the state cookie is single use
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     "/api/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
	})

	redirect := h.clientURL + "/auth/callback?token=" + url.QueryEscape(token.SignedString)
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *Handler) verifyOAuthState(r *http.Request) error {
	state := r.URL.Query().Get("state")
	if state == "" {
		return ErrInvalidStateParameter
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value != state {
		return ErrInvalidStateParameter
	}

	return nil
}

func (h *Handler) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	redirect := h.clientURL + "/auth/callback?error=" + url.QueryEscape(message)
	http.Redirect(w, r, redirect, http.StatusFound)
}
