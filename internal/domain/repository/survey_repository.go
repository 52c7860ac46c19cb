package repository

import "github.com/jfcastano/taller-api/internal/domain/entity"

// SurveyRepository define el puerto de persistencia para las encuestas.
type SurveyRepository interface {
	Create(s *entity.Survey) error
	GetByOperation(operationID string) (*entity.Survey, error)
}
