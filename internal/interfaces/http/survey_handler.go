package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastano/taller-api/internal/application/dto"
	appsurvey "github.com/jfcastano/taller-api/internal/application/survey"
	"github.com/jfcastano/taller-api/internal/domain"
)

// SurveyHandler maneja la encuesta de satisfacción de una operación.
type SurveyHandler struct {
	uc *appsurvey.UseCase
}

// NewSurveyHandler construye el handler.
func NewSurveyHandler(uc *appsurvey.UseCase) *SurveyHandler {
	return &SurveyHandler{uc: uc}
}

// Create registra la encuesta de una operación entregada.
// POST /api/operaciones/:id/encuesta
func (h *SurveyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSurveyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "calificaciones fuera del rango 1-7"})
		}
		if err == domain.ErrNotEligible {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ELIGIBLE", Message: "la operación aún no admite encuesta"})
		}
		if err == domain.ErrDuplicateSurvey {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SURVEY", Message: "la operación ya tiene encuesta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
