package handlers

import (
	"errors"
	"net/http"

	"mumanager-backend/internal/services"
	"mumanager-backend/pkg/utils"

	"github.com/jackc/pgx/v5"
)

// respondServiceError maps a service error to an HTTP status with a JSON
// error body. Every handler funnels its service errors through here so
// nothing bubbles past the handler boundary.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, pgx.ErrNoRows):
		utils.Error(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		utils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrDuplicateClient),
		errors.Is(err, services.ErrReminderNotSent),
		errors.Is(err, services.ErrResetTokenInvalid):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrReminderThrottled):
		utils.Error(w, http.StatusTooManyRequests, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
