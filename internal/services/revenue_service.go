package services

import (
	"context"
	"time"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/repositories"
	"mumanager-backend/internal/timeutil"
)

// RevenueService answers the revenue and dashboard queries. Every metric
// except the status ratio counts Paid invoices only.
type RevenueService struct {
	Repo      *repositories.RevenueRepository
	Companies *CompanyService
}

func NewRevenueService(repo *repositories.RevenueRepository, companies *CompanyService) *RevenueService {
	return &RevenueService{Repo: repo, Companies: companies}
}

func (s *RevenueService) checkOwner(ctx context.Context, userID, companyID int) error {
	_, err := s.Companies.GetCompany(ctx, userID, companyID)
	return err
}

// Total returns the lifetime revenue of a company
func (s *RevenueService) Total(ctx context.Context, userID, companyID int) (float64, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return 0, err
	}
	total, err := s.Repo.TotalPaid(ctx, companyID)
	return round2(total), err
}

// Period returns the revenue over invoices issued in [start, end]
func (s *RevenueService) Period(ctx context.Context, userID, companyID int, start, end time.Time) (float64, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return 0, err
	}
	total, err := s.Repo.PaidBetween(ctx, companyID, start, end)
	return round2(total), err
}

// ByClient returns the revenue attributable to one client
func (s *RevenueService) ByClient(ctx context.Context, userID, companyID, clientID int) (float64, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return 0, err
	}
	total, err := s.Repo.PaidByClient(ctx, companyID, clientID)
	return round2(total), err
}

// Compare returns this year's revenue next to last year's
func (s *RevenueService) Compare(ctx context.Context, userID, companyID int) (*models.RevenueCompare, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	year := timeutil.Now().Year()
	current, err := s.Repo.PaidForYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}
	previous, err := s.Repo.PaidForYear(ctx, companyID, year-1)
	if err != nil {
		return nil, err
	}

	return &models.RevenueCompare{
		CurrentYearRevenue:  round2(current),
		PreviousYearRevenue: round2(previous),
	}, nil
}

// Monthly returns the twelve monthly revenues of a year, zero-filled for
// months without paid invoices. Index 0 is January.
func (s *RevenueService) Monthly(ctx context.Context, userID, companyID, year int) ([]float64, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}
	return s.monthly(ctx, companyID, year)
}

func (s *RevenueService) monthly(ctx context.Context, companyID, year int) ([]float64, error) {
	byMonth, err := s.Repo.MonthlyPaid(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	months := make([]float64, 12)
	for month, total := range byMonth {
		if month >= 1 && month <= 12 {
			months[month-1] = round2(total)
		}
	}
	return months, nil
}

// Cumulative returns the running sum of the monthly revenues of a year
func (s *RevenueService) Cumulative(ctx context.Context, userID, companyID, year int) ([]float64, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	months, err := s.monthly(ctx, companyID, year)
	if err != nil {
		return nil, err
	}
	return CumulativeSums(months), nil
}

// CumulativeSums folds a monthly array into its running sums
func CumulativeSums(months []float64) []float64 {
	sums := make([]float64, len(months))
	var running float64
	for i, v := range months {
		running += v
		sums[i] = round2(running)
	}
	return sums
}

// Years returns the years with paid invoices, newest first
func (s *RevenueService) Years(ctx context.Context, userID, companyID int) ([]int, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}
	return s.Repo.YearsWithRevenue(ctx, companyID)
}

// TopClients ranks a company's five best clients by paid revenue
func (s *RevenueService) TopClients(ctx context.Context, userID, companyID int) ([]models.TopClient, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	top, err := s.Repo.TopClients(ctx, companyID, 5)
	if err != nil {
		return nil, err
	}
	for i := range top {
		top[i].Revenue = round2(top[i].Revenue)
	}
	return top, nil
}

// StatusRatio counts a company's invoices per status, zero-filled over
// {Draft, Sent, Paid}.
func (s *RevenueService) StatusRatio(ctx context.Context, userID, companyID int) (*models.StatusRatio, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	counts, err := s.Repo.StatusCounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return FillStatusRatio(counts), nil
}

// MonthStatusRatio is the dashboard variant scoped to one month
func (s *RevenueService) MonthStatusRatio(ctx context.Context, userID, companyID, year, month int) (*models.StatusRatio, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	counts, err := s.Repo.StatusCountsForMonth(ctx, companyID, year, month)
	if err != nil {
		return nil, err
	}
	return FillStatusRatio(counts), nil
}

// FillStatusRatio normalizes raw status counts to the fixed key set
func FillStatusRatio(counts map[models.InvoiceStatus]int) *models.StatusRatio {
	return &models.StatusRatio{
		Draft: counts[models.InvoiceDraft],
		Sent:  counts[models.InvoiceSent],
		Paid:  counts[models.InvoicePaid],
	}
}

// CurrentMonth summarises the invoices issued in the running calendar month
func (s *RevenueService) CurrentMonth(ctx context.Context, userID, companyID int) (*models.MonthSnapshot, error) {
	if err := s.checkOwner(ctx, userID, companyID); err != nil {
		return nil, err
	}

	start := timeutil.StartOfMonth(timeutil.Now())
	end := start.AddDate(0, 1, 0)
	snap, err := s.Repo.MonthTotals(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	snap.Paid = round2(snap.Paid)
	snap.Pending = round2(snap.Pending)
	snap.Total = round2(snap.Total)
	return snap, nil
}
