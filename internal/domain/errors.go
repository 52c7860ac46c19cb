package domain

import "errors"

// Errores de dominio (sin dependencias externas). El adaptador HTTP los mapea
// a códigos de respuesta; los errores de infraestructura se envuelven con %w y
// nunca se confunden con estos.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidReference  = errors.New("referencia a cliente o producto inexistente")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidAmount     = errors.New("monto o cantidad inválida")
	ErrIllegalTransition = errors.New("transición de estado no permitida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrOverPayment       = errors.New("el abono excede el costo de la operación")
	ErrPaymentIncomplete = errors.New("la operación no está totalmente pagada")
	ErrIllegalEdit       = errors.New("la operación no admite modificaciones")
	ErrNotEligible       = errors.New("la operación no admite encuesta")
	ErrDuplicateSurvey   = errors.New("la operación ya tiene encuesta")

	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
