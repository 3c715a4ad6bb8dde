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

// MedicalHandler manages medical assistance requests. Requests may be
// filed without authentication.
type MedicalHandler struct {
	service *service.MedicalService
}

// NewMedicalHandler constructs handler.
func NewMedicalHandler(medicalService *service.MedicalService) *MedicalHandler {
	return &MedicalHandler{service: medicalService}
}

// Request POST /medical-help. Optional auth: principal attached if present.
func (h *MedicalHandler) Request(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.MedicalHelpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	help, err := h.service.RequestHelp(c.Context(), user, req.Problem, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": medicalHelpResponse(help, nil)})
}

// List GET /medical-help.
func (h *MedicalHandler) List(c *fiber.Ctx) error {
	helps, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.MedicalHelpResponse, 0, len(helps))
	for i := range helps {
		resp = append(resp, medicalHelpResponse(&helps[i], nil))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get GET /medical-help/:id, including solutions.
func (h *MedicalHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	help, solutions, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": medicalHelpResponse(help, solutions)})
}

// AddSolution POST /medical-help/:id/solutions.
func (h *MedicalHandler) AddSolution(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.MedicalHelpSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	solution, err := h.service.AddSolution(c.Context(), user, id, req.Solution)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": medicalSolutionResponse(solution)})
}

// Delete DELETE /medical-help/:id.
func (h *MedicalHandler) Delete(c *fiber.Ctx) error {
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

func medicalHelpResponse(help *domain.MedicalHelp, solutions []domain.MedicalHelpSolution) dto.MedicalHelpResponse {
	resp := dto.MedicalHelpResponse{
		ID:          help.ID,
		UserID:      help.UserID,
		Problem:     help.Problem,
		Description: help.Description,
		CreatedAt:   help.CreatedAt,
	}
	for i := range solutions {
		resp.Solutions = append(resp.Solutions, medicalSolutionResponse(&solutions[i]))
	}
	return resp
}

func medicalSolutionResponse(solution *domain.MedicalHelpSolution) dto.MedicalHelpSolutionResponse {
	return dto.MedicalHelpSolutionResponse{
		ID:        solution.ID,
		UserID:    solution.UserID,
		Solution:  solution.Solution,
		CreatedAt: solution.CreatedAt,
	}
}
