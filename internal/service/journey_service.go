package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// JourneyService manages owner-scoped journey records.
type JourneyService struct {
	journeys repository.JourneyRepository
	payments repository.PaymentRepository
}

// NewJourneyService constructs the service.
func NewJourneyService(journeys repository.JourneyRepository, payments repository.PaymentRepository) *JourneyService {
	return &JourneyService{journeys: journeys, payments: payments}
}

// JourneyInput describes journey create/update payloads.
type JourneyInput struct {
	Route      string
	TravelDate time.Time
	Fare       float64
	PaymentID  *int64
}

func (s *JourneyService) validate(ctx context.Context, user *domain.User, input JourneyInput) error {
	if strings.TrimSpace(input.Route) == "" {
		return apperrors.NewValidationError("route required", nil)
	}
	if input.TravelDate.IsZero() {
		return apperrors.NewValidationError("date required", nil)
	}
	if input.Fare < 0 {
		return apperrors.NewValidationError("fare must not be negative", nil)
	}
	// A referenced payment must belong to the same user. The reference stays
	// weak: deleting the payment later clears it without touching the journey.
	if input.PaymentID != nil {
		if _, err := s.payments.GetOwned(ctx, *input.PaymentID, user.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewValidationError("unknown payment", nil)
			}
			return err
		}
	}
	return nil
}

// Create records a journey for user.
func (s *JourneyService) Create(ctx context.Context, user *domain.User, input JourneyInput) (*domain.Journey, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := s.validate(ctx, user, input); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		UserID:     user.ID,
		Route:      strings.TrimSpace(input.Route),
		TravelDate: input.TravelDate,
		Fare:       input.Fare,
		PaymentID:  input.PaymentID,
	}
	if err := s.journeys.Create(ctx, journey); err != nil {
		return nil, err
	}
	return journey, nil
}

// Get returns one of the caller's journeys.
func (s *JourneyService) Get(ctx context.Context, id int64, user *domain.User) (*domain.Journey, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	journey, err := s.journeys.GetOwned(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("journey")
		}
		return nil, err
	}
	return journey, nil
}

// List returns the caller's journeys.
func (s *JourneyService) List(ctx context.Context, user *domain.User) ([]domain.Journey, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.journeys.ListByUser(ctx, user.ID)
}

// Update edits one of the caller's journeys.
func (s *JourneyService) Update(ctx context.Context, id int64, user *domain.User, input JourneyInput) (*domain.Journey, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := s.validate(ctx, user, input); err != nil {
		return nil, err
	}

	journey := &domain.Journey{
		ID:         id,
		UserID:     user.ID,
		Route:      strings.TrimSpace(input.Route),
		TravelDate: input.TravelDate,
		Fare:       input.Fare,
		PaymentID:  input.PaymentID,
	}
	if err := s.journeys.UpdateOwned(ctx, journey); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("journey")
		}
		return nil, err
	}
	return journey, nil
}

// Delete removes one of the caller's journeys.
func (s *JourneyService) Delete(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.journeys.DeleteOwned(ctx, id, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("journey")
		}
		return err
	}
	return nil
}
