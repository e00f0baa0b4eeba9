package repositories

import (
	"context"

	"mumanager-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContractRepository struct {
	DB *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{DB: db}
}

const contractColumns = `id, company_id, client_id, description, document, start_date,
	end_date, status, created_at, updated_at`

func scanContract(row pgx.Row) (*models.Contract, error) {
	var c models.Contract
	err := row.Scan(&c.ID, &c.CompanyID, &c.ClientID, &c.Description, &c.Document,
		&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new contract
func (r *ContractRepository) Create(ctx context.Context, c *models.Contract) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO contracts(company_id, client_id, description, document, start_date, end_date, status)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		c.CompanyID, c.ClientID, c.Description, c.Document, c.StartDate, c.EndDate, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Get retrieves a contract by ID
func (r *ContractRepository) Get(ctx context.Context, id int) (*models.Contract, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
	return scanContract(row)
}

// ListByCompany returns all contracts of a company
func (r *ContractRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Contract, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE company_id = $1 ORDER BY start_date DESC`,
		companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

// Update replaces the mutable contract fields
func (r *ContractRepository) Update(ctx context.Context, c *models.Contract) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE contracts
		 SET client_id = $1, description = $2, document = $3, start_date = $4,
		     end_date = $5, status = $6, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $7`,
		c.ClientID, c.Description, c.Document, c.StartDate, c.EndDate, c.Status, c.ID,
	)
	return err
}

// Delete removes a contract
func (r *ContractRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	return err
}
