package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/persistence"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

const activeAlertsCacheKey = "service_alerts:active"

// AlertService manages network-wide service alerts. Active alerts are polled
// frequently by clients, so they are cached in Redis with a short TTL and
// invalidated on every write. The cache is best-effort: a Redis failure falls
// back to the store.
type AlertService struct {
	alerts     repository.ServiceAlertRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AlertDependencies bundles collaborators for the alert service.
type AlertDependencies struct {
	AlertRepo  repository.ServiceAlertRepository
	Cache      *persistence.Redis
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAlertService constructs the service.
func NewAlertService(deps AlertDependencies) *AlertService {
	return &AlertService{
		alerts:     deps.AlertRepo,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// AlertInput describes alert create/update payloads.
type AlertInput struct {
	Title             string
	Message           string
	AffectedStations  string
	EstimatedDuration string
	AlternativeRoutes string
	IsActive          bool
}

func validateAlert(input AlertInput) error {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Message) == "" {
		return apperrors.NewValidationError("title and message required", nil)
	}
	return nil
}

// Create publishes a new alert; admin-only at the route layer.
func (s *AlertService) Create(ctx context.Context, user *domain.User, input AlertInput) (*domain.ServiceAlert, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := validateAlert(input); err != nil {
		return nil, err
	}

	alert := &domain.ServiceAlert{
		Title:             strings.TrimSpace(input.Title),
		Message:           input.Message,
		AffectedStations:  input.AffectedStations,
		EstimatedDuration: input.EstimatedDuration,
		AlternativeRoutes: input.AlternativeRoutes,
		IsActive:          input.IsActive,
		CreatedBy:         user.ID,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventAlertPublished,
			UserID:    &user.ID,
			Timestamp: time.Now(),
			Payload: events.AlertPublishedPayload{
				AlertID:  alert.ID,
				Title:    alert.Title,
				IsActive: alert.IsActive,
			},
		})
	}
	return alert, nil
}

// List returns all alerts, newest first.
func (s *AlertService) List(ctx context.Context) ([]domain.ServiceAlert, error) {
	return s.alerts.List(ctx)
}

// ListActive returns currently active alerts, served from cache when fresh.
func (s *AlertService) ListActive(ctx context.Context) ([]domain.ServiceAlert, error) {
	if cached, ok := s.readCache(ctx); ok {
		return cached, nil
	}

	alerts, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, alerts)
	return alerts, nil
}

// Update edits an alert.
func (s *AlertService) Update(ctx context.Context, user *domain.User, id int64, input AlertInput) (*domain.ServiceAlert, error) {
	if user == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := validateAlert(input); err != nil {
		return nil, err
	}

	existing, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("alert")
		}
		return nil, err
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Message = input.Message
	existing.AffectedStations = input.AffectedStations
	existing.EstimatedDuration = input.EstimatedDuration
	existing.AlternativeRoutes = input.AlternativeRoutes
	existing.IsActive = input.IsActive

	if err := s.alerts.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("alert")
		}
		return nil, err
	}
	s.invalidateCache(ctx)
	return existing, nil
}

// Delete removes an alert.
func (s *AlertService) Delete(ctx context.Context, user *domain.User, id int64) error {
	if user == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.alerts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("alert")
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *AlertService) readCache(ctx context.Context) ([]domain.ServiceAlert, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, activeAlertsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var alerts []domain.ServiceAlert
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, false
	}
	return alerts, true
}

func (s *AlertService) writeCache(ctx context.Context, alerts []domain.ServiceAlert) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(alerts)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, activeAlertsCacheKey, raw, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Warn("alert cache write failed", zap.Error(err))
	}
}

func (s *AlertService) invalidateCache(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, activeAlertsCacheKey).Err(); err != nil && s.logger != nil {
		s.logger.Warn("alert cache invalidation failed", zap.Error(err))
	}
}
