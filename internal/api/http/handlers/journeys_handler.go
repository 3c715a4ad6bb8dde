package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/metro-service/internal/api/dto"
	"github.com/spec-kit/metro-service/internal/auth"
	"github.com/spec-kit/metro-service/internal/domain"
	"github.com/spec-kit/metro-service/internal/service"
	apperrors "github.com/spec-kit/metro-service/pkg/util"
)

const journeyDateLayout = "2006-01-02"

// JourneysHandler manages owner-scoped journey endpoints.
type JourneysHandler struct {
	service *service.JourneyService
}

// NewJourneysHandler constructs handler.
func NewJourneysHandler(journeyService *service.JourneyService) *JourneysHandler {
	return &JourneysHandler{service: journeyService}
}

func parseJourneyRequest(c *fiber.Ctx) (service.JourneyInput, error) {
	var req dto.JourneyRequest
	if err := c.BodyParser(&req); err != nil {
		return service.JourneyInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	date, err := time.Parse(journeyDateLayout, req.Date)
	if err != nil {
		return service.JourneyInput{}, apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}
	return service.JourneyInput{
		Route:      req.Route,
		TravelDate: date,
		Fare:       req.Fare,
		PaymentID:  req.PaymentID,
	}, nil
}

// Create POST /journeys.
func (h *JourneysHandler) Create(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	input, err := parseJourneyRequest(c)
	if err != nil {
		return err
	}
	journey, err := h.service.Create(c.Context(), user, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": journeyResponse(journey)})
}

// List GET /journeys.
func (h *JourneysHandler) List(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	journeys, err := h.service.List(c.Context(), user)
	if err != nil {
		return err
	}
	items := make([]dto.JourneyResponse, 0, len(journeys))
	for i := range journeys {
		items = append(items, journeyResponse(&journeys[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /journeys/:id.
func (h *JourneysHandler) Get(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	journey, err := h.service.Get(c.Context(), id, user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": journeyResponse(journey)})
}

// Update PUT /journeys/:id.
func (h *JourneysHandler) Update(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	input, err := parseJourneyRequest(c)
	if err != nil {
		return err
	}
	journey, err := h.service.Update(c.Context(), id, user, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": journeyResponse(journey)})
}

// Delete DELETE /journeys/:id.
func (h *JourneysHandler) Delete(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id, user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": id}})
}

func journeyResponse(journey *domain.Journey) dto.JourneyResponse {
	return dto.JourneyResponse{
		ID:        journey.ID,
		Route:     journey.Route,
		Date:      journey.TravelDate.Format(journeyDateLayout),
		Fare:      journey.Fare,
		PaymentID: journey.PaymentID,
	}
}
