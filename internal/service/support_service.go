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

// SupportService manages rider feedback and complaints.
type SupportService struct {
	feedback   repository.FeedbackRepository
	complaints repository.ComplaintRepository
}

// NewSupportService constructs the service.
func NewSupportService(feedback repository.FeedbackRepository, complaints repository.ComplaintRepository) *SupportService {
	return &SupportService{feedback: feedback, complaints: complaints}
}

// SubmitFeedback records a rating with an optional comment.
func (s *SupportService) SubmitFeedback(ctx context.Context, user *domain.User, rating int, comment string) (*domain.Feedback, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}

	feedback := &domain.Feedback{
		UserID:  user.ID,
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListFeedback returns all feedback entries for authenticated callers.
func (s *SupportService) ListFeedback(ctx context.Context, user *domain.User) ([]domain.Feedback, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.feedback.List(ctx)
}

// ComplaintInput describes a complaint submission.
type ComplaintInput struct {
	Title       string
	Description string
	Urgency     domain.ComplaintUrgency
}

// SubmitComplaint files a complaint for the caller; it opens as "open".
func (s *SupportService) SubmitComplaint(ctx context.Context, user *domain.User, input ComplaintInput) (*domain.Complaint, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if !domain.ValidComplaintUrgency(input.Urgency) {
		return nil, apperrors.NewValidationError("unknown urgency", map[string]any{"urgency": input.Urgency})
	}

	complaint := &domain.Complaint{
		UserID:      user.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Urgency:     input.Urgency,
		Status:      domain.ComplaintStatusOpen,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// ListComplaints returns the caller's complaints.
func (s *SupportService) ListComplaints(ctx context.Context, user *domain.User) ([]domain.Complaint, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.complaints.ListByUser(ctx, user.ID)
}

// CloseComplaint closes one of the caller's complaints.
func (s *SupportService) CloseComplaint(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.complaints.SetStatusOwned(ctx, id, user.ID, domain.ComplaintStatusClosed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("complaint")
		}
		return err
	}
	return nil
}

// DeleteComplaint removes one of the caller's complaints.
func (s *SupportService) DeleteComplaint(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.complaints.DeleteOwned(ctx, id, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("complaint")
		}
		return err
	}
	return nil
}
