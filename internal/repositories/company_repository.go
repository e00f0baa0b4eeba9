package repositories

import (
	"context"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

const companyColumns = `id, user_id, name, address, city, postal_code, phone, email,
	bank_account, tax_number, created_at, updated_at`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Address, &c.City, &c.PostalCode,
		&c.Phone, &c.Email, &c.BankAccount, &c.TaxNumber, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new company owned by a user
func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO companies(user_id, name, address, city, postal_code, phone, email, bank_account, tax_number)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Address, c.City, c.PostalCode, c.Phone, c.Email, c.BankAccount, c.TaxNumber,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Get retrieves a company by ID
func (r *CompanyRepository) Get(ctx context.Context, id int) (*models.Company, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

// ListByUser returns all companies owned by a user
func (r *CompanyRepository) ListByUser(ctx context.Context, userID int) ([]*models.Company, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Update replaces the mutable company fields
func (r *CompanyRepository) Update(ctx context.Context, c *models.Company) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE companies
		 SET name = $1, address = $2, city = $3, postal_code = $4, phone = $5,
		     email = $6, bank_account = $7, tax_number = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9`,
		c.Name, c.Address, c.City, c.PostalCode, c.Phone, c.Email, c.BankAccount, c.TaxNumber, c.ID,
	)
	return err
}

// Delete removes a company. Clients, contracts and invoices cascade.
func (r *CompanyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
