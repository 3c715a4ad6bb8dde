package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// PaymentService manages owner-scoped payment records. Amounts are recorded
// as supplied by the caller; there is no fare computation here.
type PaymentService struct {
	payments repository.PaymentRepository
}

// NewPaymentService constructs the service.
func NewPaymentService(payments repository.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// PaymentInput describes payment create/update payloads.
type PaymentInput struct {
	Method    domain.PaymentMethod
	Reference string
	Amount    float64
}

func validatePayment(input PaymentInput) error {
	if !domain.ValidPaymentMethod(input.Method) {
		return apperrors.NewValidationError("unknown payment method", map[string]any{"method": input.Method})
	}
	if input.Amount <= 0 {
		return apperrors.NewValidationError("amount must be positive", nil)
	}
	return nil
}

// Create records a payment for user.
func (s *PaymentService) Create(ctx context.Context, user *domain.User, input PaymentInput) (*domain.Payment, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := validatePayment(input); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		UserID:    user.ID,
		Method:    input.Method,
		Reference: strings.TrimSpace(input.Reference),
		Amount:    input.Amount,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Get returns one of the caller's payments.
func (s *PaymentService) Get(ctx context.Context, id int64, user *domain.User) (*domain.Payment, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	payment, err := s.payments.GetOwned(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("payment")
		}
		return nil, err
	}
	return payment, nil
}

// List returns the caller's payments.
func (s *PaymentService) List(ctx context.Context, user *domain.User) ([]domain.Payment, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.payments.ListByUser(ctx, user.ID)
}

// Update edits one of the caller's payments.
func (s *PaymentService) Update(ctx context.Context, id int64, user *domain.User, input PaymentInput) (*domain.Payment, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := validatePayment(input); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:        id,
		UserID:    user.ID,
		Method:    input.Method,
		Reference: strings.TrimSpace(input.Reference),
		Amount:    input.Amount,
	}
	if err := s.payments.UpdateOwned(ctx, payment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("payment")
		}
		return nil, err
	}
	return payment, nil
}

// Delete removes one of the caller's payments. Journeys referencing the
// payment keep existing with the reference cleared.
func (s *PaymentService) Delete(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.payments.DeleteOwned(ctx, id, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("payment")
		}
		return err
	}
	return nil
}
