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

// LostService manages found items posted by staff and riders, plus riders'
// own lost-property reports.
type LostService struct {
	items   repository.LostItemRepository
	reports repository.LostReportRepository
}

// NewLostService constructs the service.
func NewLostService(items repository.LostItemRepository, reports repository.LostReportRepository) *LostService {
	return &LostService{items: items, reports: reports}
}

// LostItemInput describes a found-item posting.
type LostItemInput struct {
	Title       string
	Description string
	ImageURL    *string
	Location    string
	Status      domain.LostItemStatus
}

// CreateItem posts a found item. Readable by anyone once posted.
func (s *LostService) CreateItem(ctx context.Context, user *domain.User, input LostItemInput) (*domain.LostItem, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Location) == "" {
		return nil, apperrors.NewValidationError("title and location required", nil)
	}
	status := input.Status
	if status == "" {
		status = domain.LostItemStatusUnclaimed
	}
	if status != domain.LostItemStatusClaimed && status != domain.LostItemStatusUnclaimed {
		return nil, apperrors.NewValidationError("unknown status", nil)
	}

	item := &domain.LostItem{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Location:    strings.TrimSpace(input.Location),
		Status:      status,
		PostedBy:    user.ID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all found items; no authentication required.
func (s *LostService) ListItems(ctx context.Context) ([]domain.LostItem, error) {
	return s.items.List(ctx)
}

// GetItem returns a single found item.
func (s *LostService) GetItem(ctx context.Context, id int64) (*domain.LostItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("lost item")
		}
		return nil, err
	}
	return item, nil
}

// MarkItemClaimed flips a found item to claimed.
func (s *LostService) MarkItemClaimed(ctx context.Context, user *domain.User, id int64) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.items.UpdateStatus(ctx, id, domain.LostItemStatusClaimed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("lost item")
		}
		return err
	}
	return nil
}

// LostReportInput describes a rider's lost-property report.
type LostReportInput struct {
	Title       string
	Description string
	Contact     string
}

// CreateReport files a lost-property report for the caller.
func (s *LostService) CreateReport(ctx context.Context, user *domain.User, input LostReportInput) (*domain.LostReport, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Contact) == "" {
		return nil, apperrors.NewValidationError("title and contact required", nil)
	}

	report := &domain.LostReport{
		UserID:      user.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Contact:     strings.TrimSpace(input.Contact),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns the caller's lost-property reports.
func (s *LostService) ListReports(ctx context.Context, user *domain.User) ([]domain.LostReport, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return s.reports.ListByUser(ctx, user.ID)
}

// DeleteReport removes one of the caller's reports.
func (s *LostService) DeleteReport(ctx context.Context, id int64, user *domain.User) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.reports.DeleteOwned(ctx, id, user.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("lost report")
		}
		return err
	}
	return nil
}
