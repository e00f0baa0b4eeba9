package models

import "time"

type Company struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	BankAccount string    `json:"bank_account"`
	TaxNumber   string    `json:"tax_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account"`
	TaxNumber   string `json:"tax_number"`
}

// UpdateCompanyRequest represents the request body for updating a company.
// Empty fields are filtered out before the merge.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account"`
	TaxNumber   string `json:"tax_number"`
}
