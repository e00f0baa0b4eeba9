package services

import (
	"context"
	"errors"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
)

// ErrDuplicateClient marks a client name already taken within the company.
// Handlers map it to a 400.
var ErrDuplicateClient = errors.New("a client with this name already exists for this company")

type ClientService struct {
	Repo      *repositories.ClientRepository
	Companies *CompanyService
}

func NewClientService(repo *repositories.ClientRepository, companies *CompanyService) *ClientService {
	return &ClientService{Repo: repo, Companies: companies}
}

func (s *ClientService) CreateClient(ctx context.Context, userID int, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" || req.CompanyID == 0 {
		return nil, ValidationError("company id and client name are required")
	}
	if _, err := s.Companies.GetCompany(ctx, userID, req.CompanyID); err != nil {
		return nil, err
	}

	// Uniqueness is per (company, name); enforced here, not by the schema
	exists, err := s.Repo.ExistsByName(ctx, req.CompanyID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateClient
	}

	client := &models.Client{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Phone:       req.Phone,
		Email:       req.Email,
		BankAccount: req.BankAccount,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient returns a client after checking its company belongs to userID
func (s *ClientService) GetClient(ctx context.Context, userID, id int) (*models.Client, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Companies.GetCompany(ctx, userID, client.CompanyID); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, userID, companyID int) ([]*models.Client, error) {
	if _, err := s.Companies.GetCompany(ctx, userID, companyID); err != nil {
		return nil, err
	}
	return s.Repo.ListByCompany(ctx, companyID)
}

// UpdateClient merges non-empty request fields into the stored client
func (s *ClientService) UpdateClient(ctx context.Context, userID, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetClient(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != client.Name {
		exists, err := s.Repo.ExistsByName(ctx, client.CompanyID, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateClient
		}
		client.Name = req.Name
	}
	if req.ContactName != "" {
		client.ContactName = req.ContactName
	}
	if req.Address != "" {
		client.Address = req.Address
	}
	if req.City != "" {
		client.City = req.City
	}
	if req.PostalCode != "" {
		client.PostalCode = req.PostalCode
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.BankAccount != "" {
		client.BankAccount = req.BankAccount
	}

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client; its invoices cascade, contracts keep a
// null client reference.
func (s *ClientService) DeleteClient(ctx context.Context, userID, id int) error {
	if _, err := s.GetClient(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
