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

// TicketsHandler manages ticket issuance, lookup and QR endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Create(c.Context(), user, req.Destination, req.Price)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	tickets, err := h.service.ListForUser(c.Context(), user)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListAll GET /tickets/all. Unrestricted; returns every ticket with an owner
// summary.
func (h *TicketsHandler) ListAll(c *fiber.Ctx) error {
	tickets, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketWithOwnerResponse, 0, len(tickets))
	for i := range tickets {
		entry := &tickets[i]
		items = append(items, dto.TicketWithOwnerResponse{
			TicketResponse: ticketResponse(&entry.Ticket),
			Owner: dto.UserSummary{
				ID:    entry.UserID,
				Name:  entry.OwnerName,
				Email: entry.OwnerEmail,
			},
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /tickets/:id. Public; backs the unauthenticated detail display.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// RenderQR GET /tickets/:id/qr. Owner-only; the image is returned as a raw
// PNG body.
func (h *TicketsHandler) RenderQR(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	png, err := h.service.RenderQR(c.Context(), id, user)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// RenderDemoQR GET /tickets/demo/qr. Unauthenticated demonstration payload.
func (h *TicketsHandler) RenderDemoQR(c *fiber.Ctx) error {
	png, err := h.service.RenderDemoQR()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Delete DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
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

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          ticket.ID,
		TicketID:    ticket.ExternalKey,
		Destination: ticket.Destination,
		Price:       ticket.Price,
		CreatedAt:   ticket.CreatedAt,
	}
}
