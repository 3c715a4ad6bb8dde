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

// QuizHandler records safety quiz scores.
type QuizHandler struct {
	service *service.QuizService
}

// NewQuizHandler constructs handler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{service: quizService}
}

// Submit POST /quiz/submit.
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.Submit(c.Context(), user, req.Score, req.Total)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": quizResultResponse(result)})
}

// List GET /quiz/results.
func (h *QuizHandler) List(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	results, err := h.service.ListForUser(c.Context(), user)
	if err != nil {
		return err
	}
	resp := make([]dto.QuizResultResponse, 0, len(results))
	for i := range results {
		resp = append(resp, quizResultResponse(&results[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func quizResultResponse(result *domain.QuizResult) dto.QuizResultResponse {
	return dto.QuizResultResponse{
		ID:          result.ID,
		Score:       result.Score,
		Total:       result.Total,
		SubmittedAt: result.SubmittedAt,
	}
}
