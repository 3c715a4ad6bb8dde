package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/repository"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// AdminService performs privilege maintenance. It is reachable only from the
// cmd/admin CLI, never from request handlers.
type AdminService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, logger *zap.Logger) *AdminService {
	return &AdminService{users: users, logger: logger}
}

// PromoteToAdmin grants the full privilege flag set to the user with the
// given email.
func (s *AdminService) PromoteToAdmin(ctx context.Context, email string) (*domain.User, error) {
	return s.setFlags(ctx, email, true)
}

// DemoteFromAdmin revokes the privilege flags.
func (s *AdminService) DemoteFromAdmin(ctx context.Context, email string) (*domain.User, error) {
	return s.setFlags(ctx, email, false)
}

func (s *AdminService) setFlags(ctx context.Context, email string, admin bool) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, apperrors.NewValidationError("email required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	if err := s.users.SetAdminFlags(ctx, user.ID, admin); err != nil {
		return nil, err
	}
	user.IsAdmin = admin
	user.IsStaff = admin
	user.IsSuperuser = admin

	s.logger.Info("admin flags changed",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.Bool("admin", admin),
	)
	return user, nil
}
