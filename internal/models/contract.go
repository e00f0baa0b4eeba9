package models

import "time"

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractActive   ContractStatus = "Active"
	ContractEnded    ContractStatus = "Ended"
	ContractArchived ContractStatus = "Archived"
)

// Valid reports whether s is one of the known contract statuses.
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractActive, ContractEnded, ContractArchived:
		return true
	}
	return false
}

type Contract struct {
	ID          int            `json:"id"`
	CompanyID   int            `json:"company_id"`
	ClientID    *int           `json:"client_id"` // nullified when the client is deleted
	Description string         `json:"description"`
	Document    []byte         `json:"document,omitempty"` // opaque payload, base64 over the wire
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Status      ContractStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateContractRequest represents the request body for creating a contract
type CreateContractRequest struct {
	CompanyID   int            `json:"company_id"`
	ClientID    *int           `json:"client_id"`
	Description string         `json:"description"`
	Document    []byte         `json:"document"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Status      ContractStatus `json:"status"` // optional, derived from end_date when empty
}

// UpdateContractRequest represents the request body for updating a contract.
// Empty fields are filtered out before the merge.
type UpdateContractRequest struct {
	ClientID    *int           `json:"client_id"`
	Description string         `json:"description"`
	Document    []byte         `json:"document"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Status      ContractStatus `json:"status"`
}
