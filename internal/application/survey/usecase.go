// Package survey implementa la puerta de encuestas: solo operaciones en un
// estado entregable admiten encuesta, y solo una vez.
package survey

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// UseCase casos de uso de encuestas de satisfacción.
type UseCase struct {
	surveyRepo repository.SurveyRepository
	opRepo     repository.OperationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(surveyRepo repository.SurveyRepository, opRepo repository.OperationRepository) *UseCase {
	return &UseCase{surveyRepo: surveyRepo, opRepo: opRepo}
}

// CanSurvey indica si la operación admite encuesta: estado entregable
// (entregada, pagada o completada) y sin encuesta previa.
func (uc *UseCase) CanSurvey(op *entity.Operation) (bool, error) {
	if !domop.Surveyable(op.Estado) {
		return false, nil
	}
	existing, err := uc.surveyRepo.GetByOperation(op.ID)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// Create registra la encuesta de una operación. Falla con ErrNotEligible si
// el estado no es entregable, ErrDuplicateSurvey si ya existe una y
// ErrInvalidInput si las calificaciones salen del rango 1-7.
func (uc *UseCase) Create(operationID string, in dto.CreateSurveyRequest) (*dto.SurveyResponse, error) {
	if !entity.CalificacionValida(in.CalificacionOrden) || !entity.CalificacionValida(in.CalificacionEntrega) {
		return nil, domain.ErrInvalidInput
	}
	op, err := uc.opRepo.GetByID(operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrNotFound
	}
	if !domop.Surveyable(op.Estado) {
		return nil, domain.ErrNotEligible
	}
	existing, err := uc.surveyRepo.GetByOperation(operationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSurvey
	}

	s := &entity.Survey{
		ID:                  uuid.New().String(),
		OperationID:         operationID,
		CalificacionOrden:   in.CalificacionOrden,
		CalificacionEntrega: in.CalificacionEntrega,
		Comentario:          in.Comentario,
		CreatedAt:           time.Now(),
	}
	if err := uc.surveyRepo.Create(s); err != nil {
		// La restricción única de operation_id cubre la carrera entre el
		// chequeo de duplicado y el insert.
		if err == domain.ErrDuplicate {
			return nil, domain.ErrDuplicateSurvey
		}
		return nil, err
	}
	return &dto.SurveyResponse{
		ID:                  s.ID,
		OperationID:         s.OperationID,
		CalificacionOrden:   s.CalificacionOrden,
		CalificacionEntrega: s.CalificacionEntrega,
		Comentario:          s.Comentario,
		CreatedAt:           s.CreatedAt,
	}, nil
}
