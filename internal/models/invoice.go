package models

import "time"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "Draft"
	InvoiceSent  InvoiceStatus = "Sent"
	InvoicePaid  InvoiceStatus = "Paid"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

type Invoice struct {
	ID               int           `json:"id"`
	CompanyID        int           `json:"company_id"`
	ClientID         int           `json:"client_id"`
	Total            float64       `json:"total"`
	Status           InvoiceStatus `json:"status"`
	IssueDate        time.Time     `json:"issue_date"`
	DueDate          *time.Time    `json:"due_date"`
	LastReminderDate *time.Time    `json:"last_reminder_date"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// InvoiceLine is one billable item row on an invoice.
// TotalPrice is computed as Quantity * UnitPrice at write time.
type InvoiceLine struct {
	ID          int       `json:"id"`
	InvoiceID   int       `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvoiceLineInput is a line item as supplied by the caller. A non-zero ID
// targets an existing line for in-place update; a zero ID inserts a new line.
type InvoiceLineInput struct {
	ID          int     `json:"id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	CompanyID int                `json:"company_id"`
	ClientID  int                `json:"client_id"`
	Status    InvoiceStatus      `json:"status"`
	IssueDate time.Time          `json:"issue_date"`
	DueDate   *time.Time         `json:"due_date"`
	Lines     []InvoiceLineInput `json:"lines"`
}

// UpdateInvoiceRequest represents the request body for a full invoice update.
// Lines is a full replacement set reconciled against the stored lines by id;
// nil (field omitted) leaves the stored lines and total untouched, while an
// explicit empty array deletes every line.
type UpdateInvoiceRequest struct {
	ClientID  int                `json:"client_id"`
	Status    InvoiceStatus      `json:"status"`
	IssueDate *time.Time         `json:"issue_date"`
	DueDate   *time.Time         `json:"due_date"`
	Lines     []InvoiceLineInput `json:"lines"`
}

// UpdateInvoiceLinesRequest represents the request body for the lines-only
// update endpoint.
type UpdateInvoiceLinesRequest struct {
	Lines []InvoiceLineInput `json:"lines"`
}

// LineReconciliation is the outcome of matching a requested replacement
// line-set against the stored lines by primary key: lines to update in
// place, lines to insert, line ids to delete, and the recomputed invoice
// total over the resulting set.
type LineReconciliation struct {
	Updates   []InvoiceLine
	Inserts   []InvoiceLine
	DeleteIDs []int
	Total     float64
}

// InvoiceWithDetails includes the lines plus client and company details
type InvoiceWithDetails struct {
	Invoice
	Lines   []InvoiceLine `json:"lines"`
	Client  *Client       `json:"client,omitempty"`
	Company *Company      `json:"company,omitempty"`
}

// OverdueInvoice is a Sent invoice annotated with how late it is.
type OverdueInvoice struct {
	Invoice
	ClientName  string `json:"client_name"`
	DaysOverdue int    `json:"days_overdue"`
	IsLate      bool   `json:"is_late"` // past the 45-day statutory payment term
}
