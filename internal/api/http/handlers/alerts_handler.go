package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/metro-service/internal/api/dto"
	"github.com/spec-kit/metro-service/internal/auth"
	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/service"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

// AlertsHandler manages network-wide service alerts. Writes are admin-only
// at the route layer; reads are public.
type AlertsHandler struct {
	service *service.AlertService
}

// NewAlertsHandler constructs handler.
func NewAlertsHandler(alertService *service.AlertService) *AlertsHandler {
	return &AlertsHandler{service: alertService}
}

// Create POST /alerts.
func (h *AlertsHandler) Create(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.AlertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	alert, err := h.service.Create(c.Context(), user, alertInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": alertResponse(alert)})
}

// List GET /alerts. Public.
func (h *AlertsHandler) List(c *fiber.Ctx) error {
	alerts, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alertResponses(alerts)})
}

// ListActive GET /alerts/active. Public, cache-backed.
func (h *AlertsHandler) ListActive(c *fiber.Ctx) error {
	alerts, err := h.service.ListActive(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alertResponses(alerts)})
}

// Update PUT /alerts/:id.
func (h *AlertsHandler) Update(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.AlertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	alert, err := h.service.Update(c.Context(), user, id, alertInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alertResponse(alert)})
}

// Delete DELETE /alerts/:id.
func (h *AlertsHandler) Delete(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), user, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

func alertInput(req dto.AlertRequest) service.AlertInput {
	return service.AlertInput{
		Title:             req.Title,
		Message:           req.Message,
		AffectedStations:  req.AffectedStations,
		EstimatedDuration: req.EstimatedDuration,
		AlternativeRoutes: req.AlternativeRoutes,
		IsActive:          req.IsActive,
	}
}

func alertResponse(alert *domain.ServiceAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:                alert.ID,
		Title:             alert.Title,
		Message:           alert.Message,
		AffectedStations:  alert.AffectedStations,
		EstimatedDuration: alert.EstimatedDuration,
		AlternativeRoutes: alert.AlternativeRoutes,
		IsActive:          alert.IsActive,
		CreatedAt:         alert.CreatedAt,
	}
}

func alertResponses(alerts []domain.ServiceAlert) []dto.AlertResponse {
	resp := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		resp = append(resp, alertResponse(&alerts[i]))
	}
	return resp
}
