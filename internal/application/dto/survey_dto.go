package dto

import "time"

// CreateSurveyRequest encuesta de satisfacción de una operación entregada.
type CreateSurveyRequest struct {
	CalificacionOrden   int    `json:"calificacion_orden"`   // 1-7
	CalificacionEntrega int    `json:"calificacion_entrega"` // 1-7
	Comentario          string `json:"comentario"`
}

// SurveyResponse proyección de encuesta.
type SurveyResponse struct {
	ID                  string    `json:"id"`
	OperationID         string    `json:"operation_id"`
	CalificacionOrden   int       `json:"calificacion_orden"`
	CalificacionEntrega int       `json:"calificacion_entrega"`
	Comentario          string    `json:"comentario"`
	CreatedAt           time.Time `json:"created_at"`
}
