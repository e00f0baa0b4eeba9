package repositories

import (
	"context"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, company_id, name, contact_name, address, city, postal_code,
	phone, email, bank_account, created_at, updated_at`

func scanClient(row pgx.Row) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.ContactName, &c.Address, &c.City,
		&c.PostalCode, &c.Phone, &c.Email, &c.BankAccount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(company_id, name, contact_name, address, city, postal_code, phone, email, bank_account)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		c.CompanyID, c.Name, c.ContactName, c.Address, c.City, c.PostalCode, c.Phone, c.Email, c.BankAccount,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Get retrieves a client by ID
func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return scanClient(row)
}

// ExistsByName reports whether the company already has a client with this name
func (r *ClientRepository) ExistsByName(ctx context.Context, companyID int, name string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE company_id = $1 AND name = $2)`,
		companyID, name,
	).Scan(&exists)
	return exists, err
}

// ListByCompany returns all clients of a company
func (r *ClientRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Update replaces the mutable client fields
func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients
		 SET name = $1, contact_name = $2, address = $3, city = $4, postal_code = $5,
		     phone = $6, email = $7, bank_account = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $9`,
		c.Name, c.ContactName, c.Address, c.City, c.PostalCode, c.Phone, c.Email, c.BankAccount, c.ID,
	)
	return err
}

// Delete removes a client. Its invoices cascade; its contracts keep living
// with a NULL client reference.
func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}
