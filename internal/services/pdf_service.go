package services

import (
	"bytes"
	"fmt"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders invoices as A4 PDF documents
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateInvoice renders an invoice with its line table and totals
func (s *PDFService) GenerateInvoice(inv *models.InvoiceWithDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("Invoice #%d", inv.ID), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Issued: %s", inv.IssueDate.Format("02-Jan-2006")), "", 1, "C", false, 0, "")
	if inv.DueDate != nil {
		pdf.CellFormat(190, 6, fmt.Sprintf("Due: %s", inv.DueDate.Format("02-Jan-2006")), "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Issuer and recipient blocks side by side
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 8, "From", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 8, "Billed To", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	if inv.Company != nil && inv.Client != nil {
		pdf.CellFormat(95, 6, inv.Company.Name, "LR", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, inv.Client.Name, "LR", 1, "L", false, 0, "")
		pdf.CellFormat(95, 6, inv.Company.Address, "LR", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, inv.Client.Address, "LR", 1, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("%s %s", inv.Company.PostalCode, inv.Company.City), "LRB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("%s %s", inv.Client.PostalCode, inv.Client.City), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Line table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(100, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(100, 6, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", line.TotalPrice), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(155, 8, "Total (EUR)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", inv.Total), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Footer
	pdf.SetFont("Arial", "I", 8)
	if inv.Company != nil && inv.Company.BankAccount != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("Payment to: %s", inv.Company.BankAccount), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated on %s", timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
