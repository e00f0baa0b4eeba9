package models

import "time"

// Client is a billed counterparty of a company.
type Client struct {
	ID          int       `json:"id"`
	CompanyID   int       `json:"company_id"`
	Name        string    `json:"name"` // client-company name, unique per company
	ContactName string    `json:"contact_name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	BankAccount string    `json:"bank_account,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	CompanyID   int    `json:"company_id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account"`
}

// UpdateClientRequest represents the request body for updating a client.
// Empty fields are filtered out before the merge.
type UpdateClientRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankAccount string `json:"bank_account"`
}
