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

// SupportHandler manages rider feedback and complaints.
type SupportHandler struct {
	service *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{service: supportService}
}

// SubmitFeedback POST /feedback.
func (h *SupportHandler) SubmitFeedback(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	feedback, err := h.service.SubmitFeedback(c.Context(), user, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": feedbackResponse(feedback)})
}

// ListFeedback GET /feedback.
func (h *SupportHandler) ListFeedback(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	entries, err := h.service.ListFeedback(c.Context(), user)
	if err != nil {
		return err
	}
	resp := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, feedbackResponse(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// SubmitComplaint POST /complaints.
func (h *SupportHandler) SubmitComplaint(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.ComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.SubmitComplaint(c.Context(), user, service.ComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     domain.ComplaintUrgency(req.Urgency),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": complaintResponse(complaint)})
}

// ListComplaints GET /complaints.
func (h *SupportHandler) ListComplaints(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	complaints, err := h.service.ListComplaints(c.Context(), user)
	if err != nil {
		return err
	}
	resp := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		resp = append(resp, complaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CloseComplaint POST /complaints/:id/close.
func (h *SupportHandler) CloseComplaint(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.CloseComplaint(c.Context(), id, user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"closed": id}})
}

// DeleteComplaint DELETE /complaints/:id.
func (h *SupportHandler) DeleteComplaint(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteComplaint(c.Context(), id, user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

func feedbackResponse(feedback *domain.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}

func complaintResponse(complaint *domain.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:          complaint.ID,
		Title:       complaint.Title,
		Description: complaint.Description,
		Urgency:     string(complaint.Urgency),
		Status:      string(complaint.Status),
		SubmittedAt: complaint.SubmittedAt,
	}
}
