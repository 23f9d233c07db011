package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/utils"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the request body into dst and validates it against its
// struct tags. On failure it writes the 400 response itself and returns
// false, so handlers can bail out with a bare return.
func (h *Handler) bindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.Err(err).Msg("request validation failed")
		writeError(w, r, validationMessage(err), http.StatusBadRequest)
		return false
	}

	return true
}

// validationMessage turns the first field violation into a client-facing
// message. Full validator output is only logged, never exposed.
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		switch first.Tag() {
		case "required":
			return first.Field() + " is required"
		case "email":
			return "invalid email address"
		case "min":
			return first.Field() + " is too short"
		case "max":
			return first.Field() + " is too long"
		case "len":
			return first.Field() + " has wrong length"
		case "url":
			return first.Field() + " must be a valid URL"
		}
		return first.Field() + " is invalid"
	}
	return "invalid request payload"
}

// requireUserID fetches the authenticated user's ID placed in the context
// by the auth middleware. A missing ID means the handler was wired without
// the middleware; the request is rejected with 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeError(w, r, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
