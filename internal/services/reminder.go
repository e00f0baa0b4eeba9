package services

import (
	"math"
	"time"

	"mumanager-backend/internal/models"
)

const (
	// ReminderInterval is the minimum gap between two payment reminders
	// for the same invoice.
	ReminderInterval = 48 * time.Hour

	// latePaymentTermDays is France's statutory payment term.
	latePaymentTermDays = 45
)

// CanSendReminder reports whether a reminder may be sent now. True when no
// reminder was ever sent, or when at least 48 hours have elapsed since the
// last one. Exactly 48 hours counts as elapsed.
func CanSendReminder(invoice *models.Invoice, now time.Time) bool {
	if invoice.LastReminderDate == nil {
		return true
	}
	return now.Sub(*invoice.LastReminderDate) >= ReminderInterval
}

// DaysOverdue returns the whole days elapsed since the issue date
func DaysOverdue(issueDate, now time.Time) int {
	return int(math.Floor(now.Sub(issueDate).Hours() / 24))
}

// IsLate reports whether an invoice issued at issueDate has exceeded the
// statutory payment term.
func IsLate(issueDate, now time.Time) bool {
	return DaysOverdue(issueDate, now) > latePaymentTermDays
}
