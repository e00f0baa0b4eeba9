package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mumanager-backend/internal/services"

	"github.com/jackc/pgx/v5"
)

func TestRespondServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.ValidationError("name is required"), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create client: %w", services.ValidationError("email is invalid")), http.StatusBadRequest},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not owner", services.ErrNotOwner, http.StatusForbidden},
		{"duplicate client", services.ErrDuplicateClient, http.StatusBadRequest},
		{"reminder on unsent invoice", services.ErrReminderNotSent, http.StatusBadRequest},
		{"reminder throttled", services.ErrReminderThrottled, http.StatusTooManyRequests},
		{"invalid reset token", services.ErrResetTokenInvalid, http.StatusBadRequest},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			respondServiceError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not valid JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error(`body is missing the "error" field`)
			}
		})
	}
}
