package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/metro-service/internal/service"
)

// AnalyticsHandler exposes the public analytics summary.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Summary GET /analytics/summary. No authentication required.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
