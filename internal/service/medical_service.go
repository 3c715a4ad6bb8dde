package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// MedicalService manages medical assistance requests and their solutions.
// Requests may be filed anonymously.
type MedicalService struct {
	repo       repository.MedicalHelpRepository
	dispatcher events.Dispatcher
}

// NewMedicalService constructs the service.
func NewMedicalService(repo repository.MedicalHelpRepository, dispatcher events.Dispatcher) *MedicalService {
	return &MedicalService{repo: repo, dispatcher: dispatcher}
}

// RequestHelp files an assistance request. user may be nil.
func (s *MedicalService) RequestHelp(ctx context.Context, user *domain.User, problem, description string) (*domain.MedicalHelp, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, apperrors.NewValidationError("problem required", nil)
	}

	help := &domain.MedicalHelp{
		Problem:     strings.TrimSpace(problem),
		Description: description,
	}
	if user != nil {
		help.UserID = &user.ID
	}
	if err := s.repo.Create(ctx, help); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventMedicalHelpRequested,
			UserID:    help.UserID,
			Timestamp: time.Now(),
			Payload: events.MedicalHelpRequestedPayload{
				RequestID: help.ID,
				Problem:   help.Problem,
			},
		})
	}
	return help, nil
}

// List returns all assistance requests.
func (s *MedicalService) List(ctx context.Context) ([]domain.MedicalHelp, error) {
	return s.repo.List(ctx)
}

// Get returns a request with its solutions.
func (s *MedicalService) Get(ctx context.Context, id int64) (*domain.MedicalHelp, []domain.MedicalHelpSolution, error) {
	help, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("medical help request")
		}
		return nil, nil, err
	}
	solutions, err := s.repo.ListSolutions(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return help, solutions, nil
}

// AddSolution posts a solution against a request.
func (s *MedicalService) AddSolution(ctx context.Context, user *domain.User, helpID int64, text string) (*domain.MedicalHelpSolution, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("solution required", nil)
	}
	if _, err := s.repo.GetByID(ctx, helpID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("medical help request")
		}
		return nil, err
	}

	solution := &domain.MedicalHelpSolution{
		MedicalHelpID: helpID,
		UserID:        user.ID,
		Solution:      strings.TrimSpace(text),
	}
	if err := s.repo.AddSolution(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Delete removes an assistance request.
func (s *MedicalService) Delete(ctx context.Context, user *domain.User, id int64) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("medical help request")
		}
		return err
	}
	return nil
}
