package timeutil

import (
	"testing"
	"time"
)

func TestStartOfMonth(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 3, 15, 18, 42, 7, 0, time.UTC)
	got := StartOfMonth(in)

	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("StartOfMonth() = %v, want 2026-03-01", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("StartOfMonth() = %v, want midnight", got)
	}
	if got.Location() != Paris {
		t.Errorf("StartOfMonth() location = %v, want Paris", got.Location())
	}
}

func TestStartOfMonthCrossesUTCBoundary(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on March 31 is already April 1 in Paris.
	in := time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)
	got := StartOfMonth(in)

	if got.Month() != time.April {
		t.Errorf("StartOfMonth() month = %v, want April", got.Month())
	}
}
