package service

import (
	"context"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// QuizService records safety quiz scores.
type QuizService struct {
	results repository.QuizResultRepository
}

// NewQuizService constructs the service.
func NewQuizService(results repository.QuizResultRepository) *QuizService {
	return &QuizService{results: results}
}

// Submit records a quiz result for the caller.
func (s *QuizService) Submit(ctx context.Context, user *domain.User, score, total int) (*domain.QuizResult, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if total <= 0 || score < 0 || score > total {
		return nil, apperrors.NewValidationError("score must be between 0 and total", map[string]any{
			"score": score,
			"total": total,
		})
	}

	result := &domain.QuizResult{
		UserID: user.ID,
		Score:  score,
		Total:  total,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListForUser returns the caller's quiz history.
func (s *QuizService) ListForUser(ctx context.Context, user *domain.User) ([]domain.QuizResult, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.results.ListByUser(ctx, user.ID)
}
