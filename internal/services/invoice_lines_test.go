package services

import (
	"encoding/json"
	"errors"
	"testing"

	"mumanager-backend/internal/models"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputs    []models.InvoiceLineInput
		wantTotal float64
		wantLines int
	}{
		{
			name:      "empty input yields zero total",
			inputs:    nil,
			wantTotal: 0,
			wantLines: 0,
		},
		{
			name: "single line",
			inputs: []models.InvoiceLineInput{
				{Description: "Consulting", Quantity: 3, UnitPrice: 100},
			},
			wantTotal: 300,
			wantLines: 1,
		},
		{
			name: "total sums all lines",
			inputs: []models.InvoiceLineInput{
				{Description: "Design", Quantity: 2, UnitPrice: 450.50},
				{Description: "Hosting", Quantity: 12, UnitPrice: 9.99},
			},
			wantTotal: 1020.88,
			wantLines: 2,
		},
		{
			name: "fractional amounts round to two decimals",
			inputs: []models.InvoiceLineInput{
				{Description: "Hours", Quantity: 1.5, UnitPrice: 33.33},
			},
			wantTotal: 50.00,
			wantLines: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, total := BuildLines(tt.inputs)
			if total != tt.wantTotal {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, want %d", len(lines), tt.wantLines)
			}
			var sum float64
			for _, line := range lines {
				if line.TotalPrice != round2(line.Quantity*line.UnitPrice) {
					t.Errorf("line %q total = %v, want %v", line.Description, line.TotalPrice, round2(line.Quantity*line.UnitPrice))
				}
				sum += line.TotalPrice
			}
			if round2(sum) != tt.wantTotal {
				t.Errorf("line sum = %v, want %v", round2(sum), tt.wantTotal)
			}
		})
	}
}

func TestReconcileLines(t *testing.T) {
	t.Parallel()

	existing := []models.InvoiceLine{
		{ID: 1, Description: "Design", Quantity: 1, UnitPrice: 500, TotalPrice: 500},
		{ID: 2, Description: "Development", Quantity: 10, UnitPrice: 80, TotalPrice: 800},
		{ID: 3, Description: "Hosting", Quantity: 1, UnitPrice: 20, TotalPrice: 20},
	}

	plan, err := ReconcileLines(existing, []models.InvoiceLineInput{
		{ID: 1, Description: "Design", Quantity: 2, UnitPrice: 500},
		{Description: "Support", Quantity: 5, UnitPrice: 60},
	})
	if err != nil {
		t.Fatalf("ReconcileLines returned error: %v", err)
	}

	if len(plan.Updates) != 1 || plan.Updates[0].ID != 1 {
		t.Errorf("updates = %+v, want single update of line 1", plan.Updates)
	}
	if plan.Updates[0].TotalPrice != 1000 {
		t.Errorf("updated line total = %v, want 1000", plan.Updates[0].TotalPrice)
	}
	if len(plan.Inserts) != 1 || plan.Inserts[0].Description != "Support" {
		t.Errorf("inserts = %+v, want single insert of Support line", plan.Inserts)
	}
	if len(plan.DeleteIDs) != 2 {
		t.Fatalf("deleteIDs = %v, want lines 2 and 3", plan.DeleteIDs)
	}
	deleted := map[int]bool{plan.DeleteIDs[0]: true, plan.DeleteIDs[1]: true}
	if !deleted[2] || !deleted[3] {
		t.Errorf("deleteIDs = %v, want lines 2 and 3", plan.DeleteIDs)
	}
	if plan.Total != 1300 {
		t.Errorf("total = %v, want 1300 over the resulting set", plan.Total)
	}
}

func TestReconcileLinesEmptyInputDeletesAll(t *testing.T) {
	t.Parallel()

	existing := []models.InvoiceLine{
		{ID: 7, Quantity: 1, UnitPrice: 100, TotalPrice: 100},
		{ID: 8, Quantity: 2, UnitPrice: 50, TotalPrice: 100},
	}

	plan, err := ReconcileLines(existing, nil)
	if err != nil {
		t.Fatalf("ReconcileLines returned error: %v", err)
	}
	if len(plan.Updates) != 0 || len(plan.Inserts) != 0 {
		t.Errorf("expected no updates or inserts, got %+v / %+v", plan.Updates, plan.Inserts)
	}
	if len(plan.DeleteIDs) != 2 {
		t.Errorf("deleteIDs = %v, want both existing lines", plan.DeleteIDs)
	}
	if plan.Total != 0 {
		t.Errorf("total = %v, want 0", plan.Total)
	}
}

func TestReconcileLinesRejectsForeignID(t *testing.T) {
	t.Parallel()

	existing := []models.InvoiceLine{{ID: 1, Quantity: 1, UnitPrice: 10, TotalPrice: 10}}

	_, err := ReconcileLines(existing, []models.InvoiceLineInput{
		{ID: 99, Description: "Smuggled", Quantity: 1, UnitPrice: 10},
	})
	if err == nil {
		t.Fatal("expected error for line id not on the invoice")
	}
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error = %T, want ValidationError", err)
	}
}

func TestPlanLineUpdateOmittedLinesKeepStoredSet(t *testing.T) {
	t.Parallel()

	invoice := &models.InvoiceWithDetails{
		Invoice: models.Invoice{ID: 7, Total: 1300},
		Lines: []models.InvoiceLine{
			{ID: 1, InvoiceID: 7, Description: "Consulting", Quantity: 2, UnitPrice: 500, TotalPrice: 1000},
			{ID: 2, InvoiceID: 7, Description: "Support", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
		},
	}

	// A status-only update body carries no lines field at all
	var req models.UpdateInvoiceRequest
	if err := json.Unmarshal([]byte(`{"status":"Paid"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Lines != nil {
		t.Fatalf("omitted lines field decoded to %v, want nil", req.Lines)
	}

	plan, err := PlanLineUpdate(invoice, req.Lines)
	if err != nil {
		t.Fatalf("PlanLineUpdate() error = %v", err)
	}
	if len(plan.DeleteIDs) != 0 || len(plan.Updates) != 0 || len(plan.Inserts) != 0 {
		t.Errorf("plan = %+v, want no line changes", plan)
	}
	if plan.Total != 1300 {
		t.Errorf("plan.Total = %v, want stored total 1300", plan.Total)
	}
}

func TestPlanLineUpdateExplicitEmptySetDeletesAll(t *testing.T) {
	t.Parallel()

	invoice := &models.InvoiceWithDetails{
		Invoice: models.Invoice{ID: 7, Total: 1300},
		Lines: []models.InvoiceLine{
			{ID: 1, InvoiceID: 7, Description: "Consulting", Quantity: 2, UnitPrice: 500, TotalPrice: 1000},
			{ID: 2, InvoiceID: 7, Description: "Support", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
		},
	}

	var req models.UpdateInvoiceRequest
	if err := json.Unmarshal([]byte(`{"status":"Paid","lines":[]}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Lines == nil {
		t.Fatal("explicit empty lines array decoded to nil")
	}

	plan, err := PlanLineUpdate(invoice, req.Lines)
	if err != nil {
		t.Fatalf("PlanLineUpdate() error = %v", err)
	}
	if len(plan.DeleteIDs) != 2 {
		t.Errorf("DeleteIDs = %v, want both lines scheduled", plan.DeleteIDs)
	}
	if plan.Total != 0 {
		t.Errorf("plan.Total = %v, want 0", plan.Total)
	}
}
