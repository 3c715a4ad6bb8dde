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

// LostHandler manages found items and lost-property reports.
type LostHandler struct {
	service *service.LostService
}

// NewLostHandler constructs handler.
func NewLostHandler(lostService *service.LostService) *LostHandler {
	return &LostHandler{service: lostService}
}

// CreateItem POST /lost-items.
func (h *LostHandler) CreateItem(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.LostItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	item, err := h.service.CreateItem(c.Context(), user, service.LostItemInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Status:      domain.LostItemStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": lostItemResponse(item)})
}

// ListItems GET /lost-items. Public.
func (h *LostHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.LostItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, lostItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// GetItem GET /lost-items/:id. Public.
func (h *LostHandler) GetItem(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	item, err := h.service.GetItem(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lostItemResponse(item)})
}

// ClaimItem POST /lost-items/:id/claim.
func (h *LostHandler) ClaimItem(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkItemClaimed(c.Context(), user, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"claimed": id}})
}

// CreateReport POST /lost-reports.
func (h *LostHandler) CreateReport(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.LostReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.CreateReport(c.Context(), user, service.LostReportInput{
		Title:       req.Title,
		Description: req.Description,
		Contact:     req.Contact,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": lostReportResponse(report)})
}

// ListReports GET /lost-reports.
func (h *LostHandler) ListReports(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	reports, err := h.service.ListReports(c.Context(), user)
	if err != nil {
		return err
	}
	resp := make([]dto.LostReportResponse, 0, len(reports))
	for i := range reports {
		resp = append(resp, lostReportResponse(&reports[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// DeleteReport DELETE /lost-reports/:id.
func (h *LostHandler) DeleteReport(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteReport(c.Context(), id, user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

func lostItemResponse(item *domain.LostItem) dto.LostItemResponse {
	return dto.LostItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Location:    item.Location,
		Status:      string(item.Status),
		PostedBy:    item.PostedBy,
	}
}

func lostReportResponse(report *domain.LostReport) dto.LostReportResponse {
	return dto.LostReportResponse{
		ID:          report.ID,
		Title:       report.Title,
		Description: report.Description,
		Contact:     report.Contact,
		SubmittedAt: report.SubmittedAt,
	}
}
