package services

import (
	"fmt"
	"math"

	"mumanager-backend/internal/models"
)

// round2 rounds a currency amount to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildLines turns caller-supplied line inputs into storable lines with
// computed per-line totals, and returns the invoice total over them. Used
// at invoice creation; an empty input yields no lines and a zero total.
func BuildLines(inputs []models.InvoiceLineInput) ([]models.InvoiceLine, float64) {
	lines := make([]models.InvoiceLine, 0, len(inputs))
	var total float64
	for _, in := range inputs {
		line := models.InvoiceLine{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TotalPrice:  round2(in.Quantity * in.UnitPrice),
		}
		total += line.TotalPrice
		lines = append(lines, line)
	}
	return lines, round2(total)
}

// ReconcileLines matches a requested replacement line-set against the lines
// currently stored for an invoice. Inputs carrying an id of a stored line
// become in-place updates, inputs without an id become inserts, and stored
// lines absent from the inputs are scheduled for deletion. The returned plan
// carries the recomputed invoice total over the resulting set.
//
// An input referencing an id that does not belong to the invoice is an
// error; callers map it to a validation failure.
func ReconcileLines(existing []models.InvoiceLine, inputs []models.InvoiceLineInput) (*models.LineReconciliation, error) {
	known := make(map[int]bool, len(existing))
	for _, line := range existing {
		known[line.ID] = true
	}

	plan := &models.LineReconciliation{}
	seen := make(map[int]bool, len(inputs))
	for _, in := range inputs {
		line := models.InvoiceLine{
			ID:          in.ID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TotalPrice:  round2(in.Quantity * in.UnitPrice),
		}
		plan.Total += line.TotalPrice

		if in.ID == 0 {
			plan.Inserts = append(plan.Inserts, line)
			continue
		}
		if !known[in.ID] {
			return nil, ValidationError(fmt.Sprintf("line %d does not belong to this invoice", in.ID))
		}
		seen[in.ID] = true
		plan.Updates = append(plan.Updates, line)
	}

	for _, line := range existing {
		if !seen[line.ID] {
			plan.DeleteIDs = append(plan.DeleteIDs, line.ID)
		}
	}

	plan.Total = round2(plan.Total)
	return plan, nil
}

// PlanLineUpdate builds the reconciliation for a full invoice update. A nil
// input set means the request omitted the lines field entirely: the stored
// lines survive and the total stays put. An explicit empty set still deletes
// every line.
func PlanLineUpdate(invoice *models.InvoiceWithDetails, inputs []models.InvoiceLineInput) (*models.LineReconciliation, error) {
	if inputs == nil {
		return &models.LineReconciliation{Total: invoice.Total}, nil
	}
	return ReconcileLines(invoice.Lines, inputs)
}
