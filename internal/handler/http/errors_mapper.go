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

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrEmailNotVerified:        http.StatusForbidden,
	service.ErrAlreadyVerified:         http.StatusConflict,
	service.ErrNoOTPIssued:             http.StatusBadRequest,
	service.ErrOTPMismatch:             http.StatusBadRequest,
	service.ErrOTPExpired:              http.StatusBadRequest,
	service.ErrOTPDeliveryFailed:       http.StatusBadGateway,
	service.ErrGoogleOnlyAccount:       http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage returns a client-safe message for a known domain error.
// Internal failures are never echoed back to the client.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "invalid data provided"
	case errors.Is(err, store.ErrNoteNotFound):
		return "note not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// writeError renders the uniform JSON failure envelope.
func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
