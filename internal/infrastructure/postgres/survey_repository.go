package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

var _ repository.SurveyRepository = (*SurveyRepo)(nil)

// SurveyRepo implementación de SurveyRepository.
type SurveyRepo struct {
	q Querier
}

// NewSurveyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSurveyRepository(q Querier) *SurveyRepo {
	return &SurveyRepo{q: q}
}

// Create registra la encuesta. El índice único sobre operation_id garantiza
// una sola encuesta por operación incluso bajo envíos concurrentes.
func (r *SurveyRepo) Create(s *entity.Survey) error {
	query := `
		INSERT INTO surveys (id, operation_id, calificacion_orden, calificacion_entrega, comentario, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OperationID, s.CalificacionOrden, s.CalificacionEntrega, s.Comentario, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert survey: %w", err)
	}
	return nil
}

// GetByOperation obtiene la encuesta de una operación. Retorna nil si no hay.
func (r *SurveyRepo) GetByOperation(operationID string) (*entity.Survey, error) {
	query := `
		SELECT id, operation_id, calificacion_orden, calificacion_entrega, comentario, created_at
		FROM surveys WHERE operation_id = $1`
	var s entity.Survey
	err := r.q.QueryRow(context.Background(), query, operationID).Scan(
		&s.ID, &s.OperationID, &s.CalificacionOrden, &s.CalificacionEntrega, &s.Comentario, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get survey: %w", err)
	}
	return &s, nil
}
