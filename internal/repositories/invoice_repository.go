package repositories

import (
	"context"
	"time"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `id, company_id, client_id, total, status, issue_date, due_date,
	last_reminder_date, created_at, updated_at`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.Total, &inv.Status,
		&inv.IssueDate, &inv.DueDate, &inv.LastReminderDate, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts an invoice together with its lines in one transaction, so
// a crash can never leave an invoice without its lines.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(company_id, client_id, total, status, issue_date, due_date)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		invoice.CompanyID, invoice.ClientID, invoice.Total, invoice.Status,
		invoice.IssueDate, invoice.DueDate,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range lines {
		line := &lines[i]
		line.InvoiceID = invoice.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO invoice_lines(invoice_id, description, quantity, unit_price, total_price)
			 VALUES($1, $2, $3, $4, $5)
			 RETURNING id, created_at`,
			line.InvoiceID, line.Description, line.Quantity, line.UnitPrice, line.TotalPrice,
		).Scan(&line.ID, &line.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get retrieves a bare invoice by ID
func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

// GetLines returns the lines of an invoice in insertion order
func (r *InvoiceRepository) GetLines(ctx context.Context, invoiceID int) ([]models.InvoiceLine, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, description, quantity, unit_price, total_price, created_at
		 FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.InvoiceLine
	for rows.Next() {
		var line models.InvoiceLine
		err := rows.Scan(&line.ID, &line.InvoiceID, &line.Description, &line.Quantity,
			&line.UnitPrice, &line.TotalPrice, &line.CreatedAt)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// GetWithDetails retrieves an invoice with its lines, client and company
func (r *InvoiceRepository) GetWithDetails(ctx context.Context, id int) (*models.InvoiceWithDetails, error) {
	invoice, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.InvoiceWithDetails{Invoice: *invoice}

	details.Lines, err = r.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}

	clientRow := r.DB.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, invoice.ClientID)
	if client, err := scanClient(clientRow); err == nil {
		details.Client = client
	}

	companyRow := r.DB.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, invoice.CompanyID)
	if company, err := scanCompany(companyRow); err == nil {
		details.Company = company
	}

	return details, nil
}

// ListByCompany returns all invoices of a company with lines and client
func (r *InvoiceRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.InvoiceWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE company_id = $1 ORDER BY issue_date DESC, id DESC`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.InvoiceWithDetails
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &models.InvoiceWithDetails{Invoice: *inv})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		inv.Lines, err = r.GetLines(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		clientRow := r.DB.QueryRow(ctx,
			`SELECT `+clientColumns+` FROM clients WHERE id = $1`, inv.ClientID)
		if client, err := scanClient(clientRow); err == nil {
			inv.Client = client
		}
	}

	return invoices, nil
}

// Update replaces the invoice header fields and applies a line
// reconciliation in a single transaction. The stored total always reflects
// the resulting line set.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice, plan *models.LineReconciliation) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE invoices
		 SET client_id = $1, total = $2, status = $3, issue_date = $4, due_date = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		invoice.ClientID, plan.Total, invoice.Status, invoice.IssueDate, invoice.DueDate, invoice.ID,
	)
	if err != nil {
		return err
	}

	if err := applyLinePlan(ctx, tx, invoice.ID, plan); err != nil {
		return err
	}

	invoice.Total = plan.Total
	return tx.Commit(ctx)
}

// UpdateLines applies a line reconciliation and the recomputed total,
// leaving the rest of the invoice untouched.
func (r *InvoiceRepository) UpdateLines(ctx context.Context, invoiceID int, plan *models.LineReconciliation) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE invoices SET total = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		plan.Total, invoiceID,
	)
	if err != nil {
		return err
	}

	if err := applyLinePlan(ctx, tx, invoiceID, plan); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func applyLinePlan(ctx context.Context, tx pgx.Tx, invoiceID int, plan *models.LineReconciliation) error {
	for _, id := range plan.DeleteIDs {
		if _, err := tx.Exec(ctx,
			`DELETE FROM invoice_lines WHERE id = $1 AND invoice_id = $2`, id, invoiceID); err != nil {
			return err
		}
	}

	for _, line := range plan.Updates {
		if _, err := tx.Exec(ctx,
			`UPDATE invoice_lines
			 SET description = $1, quantity = $2, unit_price = $3, total_price = $4
			 WHERE id = $5 AND invoice_id = $6`,
			line.Description, line.Quantity, line.UnitPrice, line.TotalPrice, line.ID, invoiceID); err != nil {
			return err
		}
	}

	for _, line := range plan.Inserts {
		if _, err := tx.Exec(ctx,
			`INSERT INTO invoice_lines(invoice_id, description, quantity, unit_price, total_price)
			 VALUES($1, $2, $3, $4, $5)`,
			invoiceID, line.Description, line.Quantity, line.UnitPrice, line.TotalPrice); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes an invoice. Its lines cascade.
func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

// ListSentByCompany returns the Sent invoices of a company with the client
// name, oldest first. Used by the overdue query.
func (r *InvoiceRepository) ListSentByCompany(ctx context.Context, companyID int) ([]*models.OverdueInvoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.company_id, i.client_id, i.total, i.status, i.issue_date, i.due_date,
		        i.last_reminder_date, i.created_at, i.updated_at, c.name
		 FROM invoices i
		 JOIN clients c ON i.client_id = c.id
		 WHERE i.company_id = $1 AND i.status = $2
		 ORDER BY i.issue_date ASC`,
		companyID, models.InvoiceSent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.OverdueInvoice
	for rows.Next() {
		var inv models.OverdueInvoice
		err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.Total, &inv.Status,
			&inv.IssueDate, &inv.DueDate, &inv.LastReminderDate, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.ClientName)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// SetLastReminder records when the last payment reminder was sent
func (r *InvoiceRepository) SetLastReminder(ctx context.Context, invoiceID int, at time.Time) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET last_reminder_date = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		at, invoiceID,
	)
	return err
}
