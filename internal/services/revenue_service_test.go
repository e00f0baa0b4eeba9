package services

import (
	"testing"

	"mumanager-backend/internal/models"
)

func TestCumulativeSums(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		months []float64
		want   []float64
	}{
		{
			"empty year",
			make([]float64, 12),
			make([]float64, 12),
		},
		{
			"running sums",
			[]float64{100, 0, 50.5, 0, 0, 200, 0, 0, 0, 0, 0, 0},
			[]float64{100, 100, 150.5, 150.5, 150.5, 350.5, 350.5, 350.5, 350.5, 350.5, 350.5, 350.5},
		},
		{
			"rounding stays at two decimals",
			[]float64{0.1, 0.2, 0.3},
			[]float64{0.1, 0.3, 0.6},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CumulativeSums(tt.months)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sums[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFillStatusRatio(t *testing.T) {
	t.Parallel()

	ratio := FillStatusRatio(map[models.InvoiceStatus]int{
		models.InvoiceDraft: 2,
		models.InvoicePaid:  1,
	})
	if ratio.Draft != 2 || ratio.Sent != 0 || ratio.Paid != 1 {
		t.Errorf("ratio = %+v, want {Draft:2 Sent:0 Paid:1}", ratio)
	}

	empty := FillStatusRatio(map[models.InvoiceStatus]int{})
	if empty.Draft != 0 || empty.Sent != 0 || empty.Paid != 0 {
		t.Errorf("empty ratio = %+v, want all zeroes", empty)
	}
}
