package service

import (
	"context"

	"github.com/spec-kit/metro-service/internal/repository"
)

// Summary is the public analytics rollup.
type Summary struct {
	TotalUsers    int64           `json:"total_users"`
	TotalJourneys int64           `json:"total_journeys"`
	TotalPayments float64         `json:"total_payments"`
	RevenueByYear map[int]float64 `json:"revenue_by_year"`
}

// AnalyticsService computes system-wide counts and the year-bucketed revenue
// summary. It is a read-only path with no authentication requirement.
type AnalyticsService struct {
	users    repository.UserRepository
	journeys repository.JourneyRepository
	payments repository.PaymentRepository
}

// AnalyticsDependencies bundles repositories for the analytics service.
type AnalyticsDependencies struct {
	UserRepo    repository.UserRepository
	JourneyRepo repository.JourneyRepository
	PaymentRepo repository.PaymentRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(deps AnalyticsDependencies) *AnalyticsService {
	return &AnalyticsService{
		users:    deps.UserRepo,
		journeys: deps.JourneyRepo,
		payments: deps.PaymentRepo,
	}
}

// GetSummary returns counts, the overall payment sum (0 when no payments
// exist) and per-year revenue covering only years with at least one payment.
// Any store failure fails the whole call; there are no partial results.
func (s *AnalyticsService) GetSummary(ctx context.Context) (*Summary, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalJourneys, err := s.journeys.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPayments, err := s.payments.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.RevenueByYear(ctx)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int]float64, len(revenue))
	for _, entry := range revenue {
		byYear[entry.Year] = entry.Total
	}

	return &Summary{
		TotalUsers:    totalUsers,
		TotalJourneys: totalJourneys,
		TotalPayments: totalPayments,
		RevenueByYear: byYear,
	}, nil
}
