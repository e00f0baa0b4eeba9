package services

import (
	"context"
	"errors"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
)

// ErrNotOwner marks an access to a resource the caller does not own.
// Handlers map it to a 403.
var ErrNotOwner = errors.New("resource does not belong to the authenticated user")

type CompanyService struct {
	Repo *repositories.CompanyRepository
}

func NewCompanyService(repo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) CreateCompany(ctx context.Context, userID int, req *models.CreateCompanyRequest) (*models.Company, error) {
	if req.Name == "" {
		return nil, ValidationError("company name is required")
	}

	company := &models.Company{
		UserID:      userID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Phone:       req.Phone,
		Email:       req.Email,
		BankAccount: req.BankAccount,
		TaxNumber:   req.TaxNumber,
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany returns a company after checking it belongs to userID
func (s *CompanyService) GetCompany(ctx context.Context, userID, id int) (*models.Company, error) {
	company, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if company.UserID != userID {
		return nil, ErrNotOwner
	}
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, userID int) ([]*models.Company, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// UpdateCompany merges non-empty request fields into the stored company
func (s *CompanyService) UpdateCompany(ctx context.Context, userID, id int, req *models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetCompany(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.City != "" {
		company.City = req.City
	}
	if req.PostalCode != "" {
		company.PostalCode = req.PostalCode
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.Email != "" {
		company.Email = req.Email
	}
	if req.BankAccount != "" {
		company.BankAccount = req.BankAccount
	}
	if req.TaxNumber != "" {
		company.TaxNumber = req.TaxNumber
	}

	if err := s.Repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company; clients, contracts and invoices cascade
func (s *CompanyService) DeleteCompany(ctx context.Context, userID, id int) error {
	if _, err := s.GetCompany(ctx, userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
