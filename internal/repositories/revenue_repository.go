package repositories

import (
	"context"
	"time"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RevenueRepository runs the read-only aggregation queries behind the
// revenue and dashboard endpoints. Revenue only ever counts Paid invoices;
// status-ratio queries count every status. Nothing is materialized or
// cached, every call hits the invoice table.
type RevenueRepository struct {
	DB *pgxpool.Pool
}

func NewRevenueRepository(db *pgxpool.Pool) *RevenueRepository {
	return &RevenueRepository{DB: db}
}

// TotalPaid returns the lifetime revenue of a company
func (r *RevenueRepository) TotalPaid(ctx context.Context, companyID int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM invoices WHERE company_id = $1 AND status = $2`,
		companyID, models.InvoicePaid,
	).Scan(&total)
	return total, err
}

// PaidBetween returns the revenue over invoices issued in [start, end]
func (r *RevenueRepository) PaidBetween(ctx context.Context, companyID int, start, end time.Time) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0)
		 FROM invoices
		 WHERE company_id = $1 AND status = $2 AND issue_date BETWEEN $3 AND $4`,
		companyID, models.InvoicePaid, start, end,
	).Scan(&total)
	return total, err
}

// PaidByClient returns the revenue attributable to one client
func (r *RevenueRepository) PaidByClient(ctx context.Context, companyID, clientID int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0)
		 FROM invoices
		 WHERE company_id = $1 AND status = $2 AND client_id = $3`,
		companyID, models.InvoicePaid, clientID,
	).Scan(&total)
	return total, err
}

// PaidForYear returns the revenue of one calendar year
func (r *RevenueRepository) PaidForYear(ctx context.Context, companyID, year int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0)
		 FROM invoices
		 WHERE company_id = $1 AND status = $2 AND EXTRACT(YEAR FROM issue_date) = $3`,
		companyID, models.InvoicePaid, year,
	).Scan(&total)
	return total, err
}

// MonthlyPaid returns month->revenue for one year. Months without paid
// invoices are simply absent from the map; zero-fill happens in the service.
func (r *RevenueRepository) MonthlyPaid(ctx context.Context, companyID, year int) (map[int]float64, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT EXTRACT(MONTH FROM issue_date)::int AS month, SUM(total)
		 FROM invoices
		 WHERE company_id = $1 AND status = $2 AND EXTRACT(YEAR FROM issue_date) = $3
		 GROUP BY month`,
		companyID, models.InvoicePaid, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byMonth := make(map[int]float64)
	for rows.Next() {
		var month int
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, err
		}
		byMonth[month] = total
	}
	return byMonth, rows.Err()
}

// YearsWithRevenue returns the distinct years with paid invoices, newest first
func (r *RevenueRepository) YearsWithRevenue(ctx context.Context, companyID int) ([]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT EXTRACT(YEAR FROM issue_date)::int AS year
		 FROM invoices
		 WHERE company_id = $1 AND status = $2
		 ORDER BY year DESC`,
		companyID, models.InvoicePaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// TopClients ranks clients by paid revenue, highest first
func (r *RevenueRepository) TopClients(ctx context.Context, companyID, limit int) ([]models.TopClient, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT c.id, c.name, c.contact_name, SUM(i.total) AS revenue
		 FROM invoices i
		 JOIN clients c ON i.client_id = c.id
		 WHERE i.company_id = $1 AND i.status = $2
		 GROUP BY c.id, c.name, c.contact_name
		 ORDER BY revenue DESC
		 LIMIT $3`,
		companyID, models.InvoicePaid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []models.TopClient
	for rows.Next() {
		var tc models.TopClient
		if err := rows.Scan(&tc.ClientID, &tc.Name, &tc.ContactName, &tc.Revenue); err != nil {
			return nil, err
		}
		top = append(top, tc)
	}
	return top, rows.Err()
}

// StatusCounts counts a company's invoices per status. The zero-fill over
// {Draft, Sent, Paid} happens in the service.
func (r *RevenueRepository) StatusCounts(ctx context.Context, companyID int) (map[models.InvoiceStatus]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT status, COUNT(*) FROM invoices WHERE company_id = $1 GROUP BY status`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatusCounts(rows)
}

// StatusCountsForMonth counts a company's invoices per status for one month
func (r *RevenueRepository) StatusCountsForMonth(ctx context.Context, companyID, year, month int) (map[models.InvoiceStatus]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT status, COUNT(*)
		 FROM invoices
		 WHERE company_id = $1
		   AND EXTRACT(YEAR FROM issue_date) = $2
		   AND EXTRACT(MONTH FROM issue_date) = $3
		 GROUP BY status`,
		companyID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatusCounts(rows)
}

func scanStatusCounts(rows pgx.Rows) (map[models.InvoiceStatus]int, error) {
	counts := make(map[models.InvoiceStatus]int)
	for rows.Next() {
		var status models.InvoiceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// MonthTotals returns {paid, pending, total} sums over invoices issued in
// [monthStart, monthEnd), where pending means status = Sent.
func (r *RevenueRepository) MonthTotals(ctx context.Context, companyID int, monthStart, monthEnd time.Time) (*models.MonthSnapshot, error) {
	var snap models.MonthSnapshot
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total) FILTER (WHERE status = $2), 0),
		        COALESCE(SUM(total) FILTER (WHERE status = $3), 0),
		        COALESCE(SUM(total), 0)
		 FROM invoices
		 WHERE company_id = $1 AND issue_date >= $4 AND issue_date < $5`,
		companyID, models.InvoicePaid, models.InvoiceSent, monthStart, monthEnd,
	).Scan(&snap.Paid, &snap.Pending, &snap.Total)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
