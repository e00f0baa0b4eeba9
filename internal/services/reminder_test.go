package services

import (
	"testing"
	"time"

	"mumanager-backend/internal/models"
)

func TestCanSendReminder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last *time.Time
		want bool
	}{
		{"never sent", nil, true},
		{"just under interval", timePtr(now.Add(-48*time.Hour + time.Minute)), false},
		{"exactly at interval", timePtr(now.Add(-48 * time.Hour)), true},
		{"well past interval", timePtr(now.Add(-72 * time.Hour)), true},
		{"sent moments ago", timePtr(now.Add(-time.Second)), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inv := &models.Invoice{LastReminderDate: tt.last}
			if got := CanSendReminder(inv, now); got != tt.want {
				t.Errorf("CanSendReminder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		issue time.Time
		want  int
	}{
		{"same day", now.Add(-6 * time.Hour), 0},
		{"one full day", now.Add(-24 * time.Hour), 1},
		{"partial day rounds down", now.Add(-47 * time.Hour), 1},
		{"ten days", now.AddDate(0, 0, -10), 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysOverdue(tt.issue, now); got != tt.want {
				t.Errorf("DaysOverdue() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsLate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	if IsLate(now.AddDate(0, 0, -45), now) {
		t.Error("invoice at exactly 45 days should not be late yet")
	}
	if !IsLate(now.AddDate(0, 0, -46), now) {
		t.Error("invoice at 46 days should be late")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
