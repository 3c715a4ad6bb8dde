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

// PaymentsHandler manages owner-scoped payment endpoints.
type PaymentsHandler struct {
	service *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{service: paymentService}
}

func parsePaymentRequest(c *fiber.Ctx) (service.PaymentInput, error) {
	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return service.PaymentInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.PaymentInput{
		Method:    domain.PaymentMethod(req.Method),
		Reference: req.Reference,
		Amount:    req.Amount,
	}, nil
}

// Create POST /payments.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	input, err := parsePaymentRequest(c)
	if err != nil {
		return err
	}
	payment, err := h.service.Create(c.Context(), user, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": paymentResponse(payment)})
}

// List GET /payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	payments, err := h.service.List(c.Context(), user)
	if err != nil {
		return err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, paymentResponse(&payments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	payment, err := h.service.Get(c.Context(), id, user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paymentResponse(payment)})
}

// Update PUT /payments/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	id, err := idParam(c)
	if err != nil {
		return err
	}
	input, err := parsePaymentRequest(c)
	if err != nil {
		return err
	}
	payment, err := h.service.Update(c.Context(), id, user, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": paymentResponse(payment)})
}

// Delete DELETE /payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
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

func paymentResponse(payment *domain.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        payment.ID,
		Method:    string(payment.Method),
		Reference: payment.Reference,
		Amount:    payment.Amount,
		CreatedAt: payment.CreatedAt,
	}
}
