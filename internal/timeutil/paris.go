package timeutil

import "time"

// Paris is the Europe/Paris location. Invoice issue dates and the 45-day
// statutory payment term follow French local time.
var Paris *time.Location

func init() {
	var err error
	Paris, err = time.LoadLocation("Europe/Paris")
	if err != nil {
		// Fallback: fixed CET if the tz database is unavailable
		Paris = time.FixedZone("CET", 60*60)
	}
}

// Now returns the current time in Paris local time.
func Now() time.Time {
	return time.Now().In(Paris)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	local := t.In(Paris)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, Paris)
}

// Common layouts
const (
	DateLayout = "2006-01-02"
)
