package services

import (
	"testing"
	"time"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/timeutil"
)

func TestDeriveStatus(t *testing.T) {
	t.Parallel()

	past := timeutil.Now().AddDate(0, -1, 0)
	future := timeutil.Now().AddDate(0, 1, 0)

	tests := []struct {
		name    string
		endDate *time.Time
		want    models.ContractStatus
	}{
		{"no end date", nil, models.ContractActive},
		{"end date in the future", &future, models.ContractActive},
		{"end date in the past", &past, models.ContractEnded},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := &models.Contract{EndDate: tt.endDate}
			if got := deriveStatus(c); got != tt.want {
				t.Errorf("deriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
