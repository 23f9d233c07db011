// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package http

import (
	"errors"
	"net/http"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/service"
	"github.com/akarpushin/go-notes-api/internal/store"
	"github.com/akarpushin/go-notes-api/internal/utils"
	"github.com/akarpushin/go-notes-api/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, r, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, r, "user with this email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.SignUpResponse{
		Success: true,
		Message: "account created, a verification code was sent to your email",
		UserID:  user.ID,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing signup response")
	}
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.AuthService.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeError(w, r, "user not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrAlreadyVerified):
			log.Err(err).Msg("email is already verified")
			writeError(w, r, "email is already verified", http.StatusConflict)
			return
		case errors.Is(err, service.ErrNoOTPIssued):
			log.Err(err).Msg("no otp was issued")
			writeError(w, r, "no verification code was issued, request a new one", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrOTPMismatch):
			log.Err(err).Msg("wrong otp")
			writeError(w, r, "invalid verification code", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrOTPExpired):
			log.Err(err).Msg("otp expired")
			writeError(w, r, "verification code has expired, request a new one", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during otp verification")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.AuthResponse{
		Success: true,
		Message: "email verified successfully",
		Token:   token.SignedString,
		User:    user.Summary(),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing verification response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			writeError(w, r, "invalid email or password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrEmailNotVerified):
			log.Err(err).Msg("email not verified")
			writeError(w, r, "email is not verified, a new verification code was sent", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, r, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   token.SignedString,
		User:    user.Summary(),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

func (h *Handler) resendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResendOTPRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	if err := h.services.AuthService.ResendOTP(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeError(w, r, "user not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrAlreadyVerified):
			log.Err(err).Msg("email is already verified")
			writeError(w, r, "email is already verified", http.StatusConflict)
			return
		case errors.Is(err, service.ErrOTPDeliveryFailed):
			log.Err(err).Msg("otp delivery failed")
			writeError(w, r, "could not deliver the verification code, try again later", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during otp resend")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.MessageResponse{
		Success: true,
		Message: "a new verification code was sent to your email",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing resend response")
	}
}

func (h *Handler) passwordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PasswordResetRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	if err := h.services.AuthService.InitiatePasswordReset(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrGoogleOnlyAccount):
			log.Err(err).Msg("google-only account")
			writeError(w, r, "this account signs in with Google and has no password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password reset initiation")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// the acknowledgement never reveals whether the address is registered
	response := models.MessageResponse{
		Success: true,
		Message: "if the email exists, password reset instructions have been sent",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing password reset response")
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeError(w, r, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile lookup")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.ProfileResponse{
		Success: true,
		User:    user.Summary(),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile response")
	}
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, req.Name, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			writeError(w, r, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := models.ProfileResponse{
		Success: true,
		Message: "profile updated",
		User:    user.Summary(),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile update response")
	}
}
