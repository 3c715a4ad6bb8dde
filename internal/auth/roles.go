package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// RequireUser ensures a rider is authenticated.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller carries the admin flag.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !user.IsAdmin {
			return apperrors.NewForbidden("admin required")
		}
		return c.Next()
	}
}
