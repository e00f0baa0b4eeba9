package services

import (
	"bytes"
	"testing"
	"time"

	"mumanager-backend/internal/models"
)

func TestGenerateInvoicePDF(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	inv := &models.InvoiceWithDetails{
		Invoice: models.Invoice{
			ID:        7,
			Total:     1250.50,
			Status:    models.InvoiceSent,
			IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate:   &due,
		},
		Lines: []models.InvoiceLine{
			{ID: 1, InvoiceID: 7, Description: "Consulting", Quantity: 5, UnitPrice: 200, TotalPrice: 1000},
			{ID: 2, InvoiceID: 7, Description: "Support", Quantity: 1, UnitPrice: 250.50, TotalPrice: 250.50},
		},
		Company: &models.Company{Name: "Acme SARL", Address: "1 rue de la Paix", PostalCode: "75002", City: "Paris", BankAccount: "FR76 1234 5678 9012"},
		Client:  &models.Client{Name: "Globex", Address: "9 avenue Foch", PostalCode: "69006", City: "Lyon"},
	}

	out, err := NewPDFService().GenerateInvoice(inv)
	if err != nil {
		t.Fatalf("GenerateInvoice() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header, got %q", out[:min(len(out), 8)])
	}
	if len(out) < 500 {
		t.Errorf("output suspiciously small: %d bytes", len(out))
	}
}
