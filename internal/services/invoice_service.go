package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mumanager-backend/internal/mail"
	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
	"mumanager-backend/internal/storage"
	"mumanager-backend/internal/timeutil"
)

// Reminder preconditions. Handlers map ErrReminderThrottled to a 429 and
// ErrReminderNotSent to a 400.
var (
	ErrReminderThrottled = errors.New("a reminder was already sent within the last 48 hours")
	ErrReminderNotSent   = errors.New("reminders can only be sent for invoices with status Sent")
)

type InvoiceService struct {
	Repo      *repositories.InvoiceRepository
	Clients   *repositories.ClientRepository
	Companies *CompanyService
	Mailer    mail.Mailer
	PDF       *PDFService
	Store     *storage.ObjectStore
}

func NewInvoiceService(
	repo *repositories.InvoiceRepository,
	clients *repositories.ClientRepository,
	companies *CompanyService,
	mailer mail.Mailer,
	pdf *PDFService,
	store *storage.ObjectStore,
) *InvoiceService {
	return &InvoiceService{
		Repo:      repo,
		Clients:   clients,
		Companies: companies,
		Mailer:    mailer,
		PDF:       pdf,
		Store:     store,
	}
}

// CreateInvoice persists an invoice and its lines in one transaction. The
// total is always computed from the lines; an empty line set yields zero.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID int, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	if req.CompanyID == 0 || req.ClientID == 0 {
		return nil, ValidationError("company id and client id are required")
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, ValidationError("invalid invoice status")
	}
	if _, err := s.Companies.GetCompany(ctx, userID, req.CompanyID); err != nil {
		return nil, err
	}
	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client.CompanyID != req.CompanyID {
		return nil, ValidationError("client does not belong to this company")
	}

	lines, total := BuildLines(req.Lines)

	invoice := &models.Invoice{
		CompanyID: req.CompanyID,
		ClientID:  req.ClientID,
		Total:     total,
		Status:    req.Status,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceDraft
	}
	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = timeutil.Now()
	}

	if err := s.Repo.Create(ctx, invoice, lines); err != nil {
		return nil, err
	}

	// Confirmation email is best effort; the invoice is committed either way
	if client.Email != "" {
		go func(email, name string, id int, total float64) {
			if err := s.Mailer.SendInvoiceCreated(email, name, id, total); err != nil {
				log.Printf("[Mail] Invoice %d confirmation to %s failed: %v", id, email, err)
			}
		}(client.Email, client.Name, invoice.ID, invoice.Total)
	}

	return invoice, nil
}

// GetInvoice loads an invoice with lines, client and company, after
// checking ownership.
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, id int) (*models.InvoiceWithDetails, error) {
	invoice, err := s.Repo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Companies.GetCompany(ctx, userID, invoice.CompanyID); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, userID, companyID int) ([]*models.InvoiceWithDetails, error) {
	if _, err := s.Companies.GetCompany(ctx, userID, companyID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCompany(ctx, companyID)
}

// UpdateInvoice merges header fields and, when the request carries a line
// set, reconciles it in the same transaction. A nil line set means the field
// was omitted: the stored lines and total stay as they are, so a
// status-only update never touches them. The total is recomputed whenever
// the lines are.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID, id int, req *models.UpdateInvoiceRequest) (*models.InvoiceWithDetails, error) {
	current, err := s.GetInvoice(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !req.Status.Valid() {
		return nil, ValidationError("invalid invoice status")
	}

	invoice := current.Invoice
	if req.ClientID != 0 && req.ClientID != invoice.ClientID {
		client, err := s.Clients.Get(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		if client.CompanyID != invoice.CompanyID {
			return nil, ValidationError("client does not belong to this company")
		}
		invoice.ClientID = req.ClientID
	}
	if req.Status != "" {
		invoice.Status = req.Status
	}
	if req.IssueDate != nil {
		invoice.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}

	plan, err := PlanLineUpdate(current, req.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, &invoice, plan); err != nil {
		return nil, err
	}
	return s.Repo.GetWithDetails(ctx, id)
}

// UpdateLines reconciles the replacement line set only, leaving header
// fields other than the recomputed total untouched.
func (s *InvoiceService) UpdateLines(ctx context.Context, userID, id int, req *models.UpdateInvoiceLinesRequest) (*models.InvoiceWithDetails, error) {
	current, err := s.GetInvoice(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	plan, err := ReconcileLines(current.Lines, req.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateLines(ctx, id, plan); err != nil {
		return nil, err
	}
	return s.Repo.GetWithDetails(ctx, id)
}

// DeleteInvoice removes an invoice; its lines cascade in the database
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, id int) error {
	if _, err := s.GetInvoice(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// ListOverdue returns the Sent invoices of a company, oldest first, each
// annotated with days overdue and the statutory-term flag.
func (s *InvoiceService) ListOverdue(ctx context.Context, userID, companyID int) ([]*models.OverdueInvoice, error) {
	if _, err := s.Companies.GetCompany(ctx, userID, companyID); err != nil {
		return nil, err
	}

	invoices, err := s.Repo.ListSentByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	for _, inv := range invoices {
		inv.DaysOverdue = DaysOverdue(inv.IssueDate, now)
		inv.IsLate = inv.DaysOverdue > latePaymentTermDays
	}
	return invoices, nil
}

// SendReminder dispatches a payment-reminder email for a Sent invoice,
// subject to the 48-hour throttle. The reminder timestamp is committed
// before the email goes out, so a mail failure never rolls it back.
func (s *InvoiceService) SendReminder(ctx context.Context, userID, id int) error {
	invoice, err := s.GetInvoice(ctx, userID, id)
	if err != nil {
		return err
	}

	if invoice.Status != models.InvoiceSent {
		return ErrReminderNotSent
	}
	now := timeutil.Now()
	if !CanSendReminder(&invoice.Invoice, now) {
		return ErrReminderThrottled
	}
	if invoice.Client == nil || invoice.Client.Email == "" {
		return ValidationError("client has no email address")
	}

	if err := s.Repo.SetLastReminder(ctx, id, now); err != nil {
		return err
	}

	go func(email, name string, invoiceID int, total float64) {
		if err := s.Mailer.SendReminder(email, name, invoiceID, total); err != nil {
			log.Printf("[Mail] Reminder for invoice %d to %s failed: %v", invoiceID, email, err)
		}
	}(invoice.Client.Email, invoice.Client.Name, invoice.ID, invoice.Total)

	return nil
}

// SendByEmail renders the invoice as PDF and mails it to the client
func (s *InvoiceService) SendByEmail(ctx context.Context, userID, id int) error {
	invoice, err := s.GetInvoice(ctx, userID, id)
	if err != nil {
		return err
	}
	if invoice.Client == nil || invoice.Client.Email == "" {
		return ValidationError("client has no email address")
	}

	pdf, err := s.PDF.GenerateInvoice(invoice)
	if err != nil {
		return fmt.Errorf("failed to generate invoice PDF: %w", err)
	}

	if s.Store != nil && s.Store.Enabled() {
		go func(companyID, invoiceID int, doc []byte) {
			archiveCtx, cancel := context.WithTimeout(context.Background(), storage.UploadTimeout)
			defer cancel()
			if err := s.Store.ArchiveInvoicePDF(archiveCtx, companyID, invoiceID, doc); err != nil {
				log.Printf("[Storage] Invoice %d PDF archive failed: %v", invoiceID, err)
			}
		}(invoice.CompanyID, invoice.ID, pdf)
	}

	go func(email, name string, invoiceID int, doc []byte) {
		if err := s.Mailer.SendInvoice(email, name, invoiceID, doc); err != nil {
			log.Printf("[Mail] Invoice %d to %s failed: %v", invoiceID, email, err)
		}
	}(invoice.Client.Email, invoice.Client.Name, invoice.ID, pdf)

	return nil
}
