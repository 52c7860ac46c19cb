package survey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/application/survey"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: un mapa de encuestas y operaciones fijas por estado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSurveyRepo struct {
	byOperation map[string]*entity.Survey
}

func (r *fakeSurveyRepo) Create(s *entity.Survey) error {
	if _, ok := r.byOperation[s.OperationID]; ok {
		return domain.ErrDuplicate
	}
	r.byOperation[s.OperationID] = s
	return nil
}

func (r *fakeSurveyRepo) GetByOperation(operationID string) (*entity.Survey, error) {
	return r.byOperation[operationID], nil
}

type fakeOpRepo struct {
	ops map[string]*entity.Operation
}

func (r *fakeOpRepo) Create(op *entity.Operation) error { r.ops[op.ID] = op; return nil }

func (r *fakeOpRepo) GetByID(id string) (*entity.Operation, error) { return r.ops[id], nil }

func (r *fakeOpRepo) GetForUpdate(id string) (*entity.Operation, error) { return r.ops[id], nil }

func (r *fakeOpRepo) Update(op *entity.Operation) error { r.ops[op.ID] = op; return nil }

func (r *fakeOpRepo) ReplaceLines(string, []entity.OperationLine) error { return nil }

func (r *fakeOpRepo) List(repository.OperationFilter) ([]*entity.Operation, error) {
	return nil, nil
}

func (r *fakeOpRepo) CountByCliente(string) (int, error) { return 0, nil }

func (r *fakeOpRepo) AddAbono(*entity.Abono) error { return nil }

func (r *fakeOpRepo) ListAbonos(string) ([]*entity.Abono, error) { return nil, nil }

func newTestUseCase() (*survey.UseCase, *fakeSurveyRepo, *fakeOpRepo) {
	sr := &fakeSurveyRepo{byOperation: make(map[string]*entity.Survey)}
	or := &fakeOpRepo{ops: make(map[string]*entity.Operation)}
	return survey.NewUseCase(sr, or), sr, or
}

func opEnEstado(or *fakeOpRepo, id, estado string) {
	or.ops[id] = &entity.Operation{ID: id, Estado: estado}
}

// ──────────────────────────────────────────────────────────────────────────────
// Puerta de elegibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_OperacionEntregadaAdmiteEncuesta(t *testing.T) {
	uc, sr, or := newTestUseCase()
	opEnEstado(or, "op-1", domop.EstadoEntregada)

	out, err := uc.Create("op-1", dto.CreateSurveyRequest{
		CalificacionOrden:   7,
		CalificacionEntrega: 6,
		Comentario:          "la mesa quedó perfecta",
	})
	require.NoError(t, err)

	assert.Equal(t, "op-1", out.OperationID)
	assert.Equal(t, 7, out.CalificacionOrden)
	assert.Equal(t, 6, out.CalificacionEntrega)
	assert.NotNil(t, sr.byOperation["op-1"])
}

func TestCreate_EstadosEntregables(t *testing.T) {
	for _, estado := range []string{domop.EstadoCompletada, domop.EstadoEntregada, domop.EstadoPagada} {
		uc, _, or := newTestUseCase()
		opEnEstado(or, "op-1", estado)

		_, err := uc.Create("op-1", dto.CreateSurveyRequest{CalificacionOrden: 5, CalificacionEntrega: 5})
		assert.NoError(t, err, "estado %s debe admitir encuesta", estado)
	}
}

func TestCreate_EstadoNoEntregableRechazado(t *testing.T) {
	for _, estado := range []string{
		domop.EstadoCotizacion, domop.EstadoPendiente,
		domop.EstadoEnProceso, domop.EstadoAnulada,
	} {
		uc, _, or := newTestUseCase()
		opEnEstado(or, "op-1", estado)

		_, err := uc.Create("op-1", dto.CreateSurveyRequest{CalificacionOrden: 5, CalificacionEntrega: 5})
		assert.ErrorIs(t, err, domain.ErrNotEligible, "estado %s", estado)
	}
}

func TestCreate_OperacionInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Create("op-fantasma", dto.CreateSurveyRequest{CalificacionOrden: 5, CalificacionEntrega: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rango de calificaciones y unicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalificacionFueraDeRango(t *testing.T) {
	uc, _, or := newTestUseCase()
	opEnEstado(or, "op-1", domop.EstadoEntregada)

	casos := []struct{ orden, entrega int }{
		{0, 5}, {8, 5}, {5, 0}, {5, 8}, {-1, -1},
	}
	for _, c := range casos {
		_, err := uc.Create("op-1", dto.CreateSurveyRequest{
			CalificacionOrden: c.orden, CalificacionEntrega: c.entrega,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "orden=%d entrega=%d", c.orden, c.entrega)
	}
}

func TestCreate_SegundaEncuestaRechazada(t *testing.T) {
	uc, _, or := newTestUseCase()
	opEnEstado(or, "op-1", domop.EstadoPagada)

	_, err := uc.Create("op-1", dto.CreateSurveyRequest{CalificacionOrden: 6, CalificacionEntrega: 6})
	require.NoError(t, err)

	_, err = uc.Create("op-1", dto.CreateSurveyRequest{CalificacionOrden: 3, CalificacionEntrega: 3})
	assert.ErrorIs(t, err, domain.ErrDuplicateSurvey)
}

func TestCanSurvey(t *testing.T) {
	uc, sr, _ := newTestUseCase()

	ok, err := uc.CanSurvey(&entity.Operation{ID: "op-1", Estado: domop.EstadoEntregada})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CanSurvey(&entity.Operation{ID: "op-1", Estado: domop.EstadoEnProceso})
	require.NoError(t, err)
	assert.False(t, ok, "estado no entregable")

	sr.byOperation["op-1"] = &entity.Survey{ID: "s-1", OperationID: "op-1"}
	ok, err = uc.CanSurvey(&entity.Operation{ID: "op-1", Estado: domop.EstadoEntregada})
	require.NoError(t, err)
	assert.False(t, ok, "ya existe encuesta")
}
