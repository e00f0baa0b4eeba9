package services

import (
	"context"
	"log"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
	"mumanager-backend/internal/storage"
	"mumanager-backend/internal/timeutil"
)

type ContractService struct {
	Repo      *repositories.ContractRepository
	Companies *CompanyService
	Store     *storage.ObjectStore
}

func NewContractService(repo *repositories.ContractRepository, companies *CompanyService, store *storage.ObjectStore) *ContractService {
	return &ContractService{Repo: repo, Companies: companies, Store: store}
}

// deriveStatus picks Active or Ended from the end date. Explicit statuses
// in the request win over the derived one.
func deriveStatus(contract *models.Contract) models.ContractStatus {
	if contract.EndDate != nil && contract.EndDate.Before(timeutil.Now()) {
		return models.ContractEnded
	}
	return models.ContractActive
}

func (s *ContractService) CreateContract(ctx context.Context, userID int, req *models.CreateContractRequest) (*models.Contract, error) {
	if req.CompanyID == 0 || req.StartDate.IsZero() {
		return nil, ValidationError("company id and start date are required")
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, ValidationError("invalid contract status")
	}
	if _, err := s.Companies.GetCompany(ctx, userID, req.CompanyID); err != nil {
		return nil, err
	}

	contract := &models.Contract{
		CompanyID:   req.CompanyID,
		ClientID:    req.ClientID,
		Description: req.Description,
		Document:    req.Document,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	}
	if contract.Status == "" {
		contract.Status = deriveStatus(contract)
	}

	if err := s.Repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	s.archiveDocument(contract)
	return contract, nil
}

// GetContract returns a contract after checking its company belongs to userID
func (s *ContractService) GetContract(ctx context.Context, userID, id int) (*models.Contract, error) {
	contract, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Companies.GetCompany(ctx, userID, contract.CompanyID); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) ListContracts(ctx context.Context, userID, companyID int) ([]*models.Contract, error) {
	if _, err := s.Companies.GetCompany(ctx, userID, companyID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCompany(ctx, companyID)
}

// UpdateContract merges non-empty request fields into the stored contract.
// Touching the end date without an explicit status re-derives it.
func (s *ContractService) UpdateContract(ctx context.Context, userID, id int, req *models.UpdateContractRequest) (*models.Contract, error) {
	contract, err := s.GetContract(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && !req.Status.Valid() {
		return nil, ValidationError("invalid contract status")
	}

	if req.ClientID != nil {
		contract.ClientID = req.ClientID
	}
	if req.Description != "" {
		contract.Description = req.Description
	}
	documentChanged := len(req.Document) > 0
	if documentChanged {
		contract.Document = req.Document
	}
	if req.StartDate != nil {
		contract.StartDate = *req.StartDate
	}

	endDateChanged := req.EndDate != nil
	if endDateChanged {
		contract.EndDate = req.EndDate
	}

	switch {
	case req.Status != "":
		contract.Status = req.Status
	case endDateChanged:
		contract.Status = deriveStatus(contract)
	}

	if err := s.Repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	if documentChanged {
		s.archiveDocument(contract)
	}
	return contract, nil
}

func (s *ContractService) DeleteContract(ctx context.Context, userID, id int) error {
	if _, err := s.GetContract(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// archiveDocument pushes the contract document to object storage without
// blocking or failing the request.
func (s *ContractService) archiveDocument(contract *models.Contract) {
	if s.Store == nil || !s.Store.Enabled() || len(contract.Document) == 0 {
		return
	}
	go func(companyID, contractID int, doc []byte) {
		ctx, cancel := context.WithTimeout(context.Background(), storage.UploadTimeout)
		defer cancel()
		if err := s.Store.ArchiveContractDocument(ctx, companyID, contractID, doc); err != nil {
			log.Printf("[Storage] Contract %d document archive failed: %v", contractID, err)
		}
	}(contract.CompanyID, contract.ID, contract.Document)
}
