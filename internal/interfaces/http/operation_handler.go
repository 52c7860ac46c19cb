package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastano/taller-api/internal/application/dto"
	appop "github.com/jfcastano/taller-api/internal/application/operation"
	"github.com/jfcastano/taller-api/internal/domain"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
)

// OperationHandler maneja las peticiones HTTP de órdenes de trabajo
// (protegido). Concentra el ciclo de vida completo: creación, cambio de
// estado, abonos, anulación y comprobante PDF.
type OperationHandler struct {
	uc     *appop.UseCase
	pdfGen appop.ReceiptPDFGenerator
}

// NewOperationHandler construye el handler.
func NewOperationHandler(uc *appop.UseCase, pdfGen appop.ReceiptPDFGenerator) *OperationHandler {
	return &OperationHandler{uc: uc, pdfGen: pdfGen}
}

// Create registra una orden de trabajo, opcionalmente con abono inicial.
// POST /api/operaciones
func (h *OperationHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return operationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista operaciones filtradas por estado, cliente y rango de fechas.
// GET /api/operaciones
func (h *OperationHandler) List(c *fiber.Ctx) error {
	var f dto.OperationListFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	f.DefaultPage()
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID obtiene una operación con líneas y abonos.
// GET /api/operaciones/:id
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return operationError(c, err)
	}
	return c.JSON(out)
}

// Update edita costo, descripción, fecha de entrega o líneas.
// PUT /api/operaciones/:id
func (h *OperationHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, userID)
	if err != nil {
		return operationError(c, err)
	}
	return c.JSON(out)
}

// Transition cambia el estado de la operación por el grafo del ciclo de vida.
// PATCH /api/operaciones/:id/estado
func (h *OperationHandler) Transition(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(c.Context(), c.Params("id"), in.Estado, userID)
	if err != nil {
		return operationError(c, err)
	}
	return c.JSON(out)
}

// Anular pasa la operación al estado terminal anulada, restaurando stock si
// estaba comprometido.
// POST /api/operaciones/:id/anular
func (h *OperationHandler) Anular(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Transition(c.Context(), c.Params("id"), domop.EstadoAnulada, userID)
	if err != nil {
		return operationError(c, err)
	}
	return c.JSON(out)
}

// Deposit registra un abono contra el costo cotizado.
// POST /api/operaciones/:id/abonos
func (h *OperationHandler) Deposit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.DepositRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PostDeposit(c.Context(), c.Params("id"), in, userID)
	if err != nil {
		return operationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt genera el comprobante de la orden en PDF.
// GET /api/operaciones/:id/recibo
func (h *OperationHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), c.Params("id"), h.pdfGen)
	if err != nil {
		return operationError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// operationError traduce los errores de negocio del ciclo de vida a HTTP.
func operationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación no encontrada"})
	case domain.ErrInvalidReference:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "cliente o producto referenciado no existe"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrInvalidAmount:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "monto o cantidad inválida"})
	case domain.ErrIllegalTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: "cambio de estado no permitido"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para iniciar el trabajo"})
	case domain.ErrOverPayment:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "OVER_PAYMENT", Message: "el abono excede el costo cotizado"})
	case domain.ErrPaymentIncomplete:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PAYMENT_INCOMPLETE", Message: "la operación no está totalmente pagada"})
	case domain.ErrIllegalEdit:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_EDIT", Message: "la operación no admite esta edición en su estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
