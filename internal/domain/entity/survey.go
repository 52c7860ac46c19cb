package entity

import "time"

// Rango permitido para las calificaciones de encuesta.
const (
	CalificacionMin = 1
	CalificacionMax = 7
)

// Survey es la encuesta de satisfacción de una operación entregada.
// Relación 1:1 con la operación; se crea una sola vez.
type Survey struct {
	ID                  string
	OperationID         string
	CalificacionOrden   int // 1-7, calidad del trabajo
	CalificacionEntrega int // 1-7, calidad de la entrega
	Comentario          string
	CreatedAt           time.Time
}

// CalificacionValida verifica que la calificación esté en el rango 1-7.
func CalificacionValida(c int) bool {
	return c >= CalificacionMin && c <= CalificacionMax
}
