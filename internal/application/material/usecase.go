// Package material implementa la gestión de materias primas: CRUD, entradas
// y ajustes de stock vía el libro de movimientos, y las alertas por nivel.
package material

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/application/dto"
	appop "github.com/jfcastano/taller-api/internal/application/operation"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	dommat "github.com/jfcastano/taller-api/internal/domain/material"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// UseCase casos de uso de materiales. Las mutaciones de stock corren dentro
// del TxRunner con bloqueo de fila, igual que los descuentos por operación.
type UseCase struct {
	repo     repository.MaterialRepository
	movRepo  repository.MaterialMovementRepository
	txRunner appop.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MaterialRepository, movRepo repository.MaterialMovementRepository, txRunner appop.TxRunner) *UseCase {
	return &UseCase{repo: repo, movRepo: movRepo, txRunner: txRunner}
}

// Create registra un material nuevo.
func (uc *UseCase) Create(in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Nombre == "" || !entity.UnidadValida(in.Unidad) {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioUnitario.LessThan(decimal.Zero) || in.StockInicial < 0 {
		return nil, domain.ErrInvalidAmount
	}
	if in.StockMinimo < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Material{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Unidad:         in.Unidad,
		PrecioUnitario: in.PrecioUnitario,
		Stock:          in.StockInicial,
		StockMinimo:    in.StockMinimo,
		Proveedor:      in.Proveedor,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Update edita los atributos de un material. El stock no se edita aquí.
func (uc *UseCase) Update(id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		m.Nombre = *in.Nombre
	}
	if in.Unidad != nil {
		if !entity.UnidadValida(*in.Unidad) {
			return nil, domain.ErrInvalidInput
		}
		m.Unidad = *in.Unidad
	}
	if in.PrecioUnitario != nil {
		if in.PrecioUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidAmount
		}
		m.PrecioUnitario = *in.PrecioUnitario
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 1 {
			return nil, domain.ErrInvalidInput
		}
		m.StockMinimo = *in.StockMinimo
	}
	if in.Proveedor != nil {
		m.Proveedor = *in.Proveedor
	}
	if in.Activo != nil {
		m.Activo = *in.Activo
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID devuelve el material con su nivel derivado.
func (uc *UseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// List lista materiales con paginación.
func (uc *UseCase) List(limit, offset int) ([]*dto.MaterialResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// RegisterMovement registra una entrada (compra) o un ajuste manual de stock.
// Bloquea la fila del material y escribe la mutación y su movimiento en la
// misma transacción. El ajuste nunca deja el stock negativo.
func (uc *UseCase) RegisterMovement(ctx context.Context, materialID, userID string, in dto.MaterialEntryRequest) (*dto.MaterialResponse, error) {
	switch in.Tipo {
	case entity.MovimientoEntrada:
		if in.Cantidad <= 0 {
			return nil, domain.ErrInvalidAmount
		}
	case entity.MovimientoAjuste:
		if in.Cantidad == 0 {
			return nil, domain.ErrInvalidAmount
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Material
	err := uc.txRunner.Run(ctx, func(
		_ repository.OperationRepository,
		materialRepo repository.MaterialRepository,
		movRepo repository.MaterialMovementRepository,
		_ repository.AuditRepository,
	) error {
		locked, err := materialRepo.GetForUpdateByIDs([]string{materialID})
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			return domain.ErrNotFound
		}
		m := locked[0]
		nuevo := m.Stock + in.Cantidad
		if nuevo < 0 {
			return domain.ErrInsufficientStock
		}
		if err := materialRepo.UpdateStock(m.ID, nuevo); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.MaterialMovement{
			ID:            uuid.New().String(),
			MaterialID:    m.ID,
			Tipo:          in.Tipo,
			Cantidad:      in.Cantidad,
			StockAnterior: m.Stock,
			StockNuevo:    nuevo,
			UserID:        userID,
			Fecha:         time.Now(),
		}); err != nil {
			return err
		}
		m.Stock = nuevo
		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(result), nil
}

// ListMovements devuelve el libro de movimientos de un material.
func (uc *UseCase) ListMovements(materialID string, limit, offset int) ([]*dto.MaterialMovementResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	list, err := uc.movRepo.ListByMaterial(materialID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialMovementResponse, 0, len(list))
	for _, mov := range list {
		out = append(out, &dto.MaterialMovementResponse{
			ID:            mov.ID,
			MaterialID:    mov.MaterialID,
			Tipo:          mov.Tipo,
			Cantidad:      mov.Cantidad,
			StockAnterior: mov.StockAnterior,
			StockNuevo:    mov.StockNuevo,
			OperationID:   mov.OperationID,
			Fecha:         mov.Fecha,
		})
	}
	return out, nil
}

// Alerts agrupa los materiales activos por nivel de stock derivado.
// Proyección de solo lectura sobre el inventario.
func (uc *UseCase) Alerts() (*dto.StockAlertsResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	resp := &dto.StockAlertsResponse{}
	for _, m := range list {
		r := *toMaterialResponse(m)
		switch r.Nivel {
		case dommat.NivelCritico:
			resp.Critical = append(resp.Critical, r)
		case dommat.NivelBajo:
			resp.Low = append(resp.Low, r)
		case dommat.NivelMedio:
			resp.Medium = append(resp.Medium, r)
		default:
			resp.Normal = append(resp.Normal, r)
		}
	}
	return resp, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:             m.ID,
		Nombre:         m.Nombre,
		Unidad:         m.Unidad,
		PrecioUnitario: m.PrecioUnitario,
		Stock:          m.Stock,
		StockMinimo:    m.StockMinimo,
		Nivel:          dommat.Classify(m.Stock, m.StockMinimo),
		Proveedor:      m.Proveedor,
		Activo:         m.Activo,
	}
}
