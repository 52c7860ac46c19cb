package operation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// Update edita costo, descripción, fecha estimada y líneas de una operación.
// Las operaciones anuladas o pagadas son inmutables (ErrIllegalEdit). Un
// costo nuevo nunca puede quedar por debajo de lo ya abonado. Las líneas solo
// se reemplazan mientras el stock no esté comprometido.
func (uc *UseCase) Update(ctx context.Context, operationID string, in dto.UpdateOperationRequest, userID string) (*dto.OperationResponse, error) {
	// Validar referencias de producto fuera de la transacción.
	var newLines []entity.OperationLine
	if in.Lines != nil {
		if len(in.Lines) == 0 {
			return nil, domain.ErrInvalidInput
		}
		for _, l := range in.Lines {
			if l.Cantidad <= 0 {
				return nil, domain.ErrInvalidAmount
			}
			product, err := uc.productRepo.GetByID(l.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil || !product.Activo {
				return nil, domain.ErrInvalidReference
			}
			newLines = append(newLines, entity.OperationLine{
				ID:          uuid.New().String(),
				OperationID: operationID,
				ProductID:   l.ProductID,
				Cantidad:    l.Cantidad,
				Detalle:     l.Detalle,
			})
		}
	}

	var result *entity.Operation
	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		_ repository.MaterialRepository,
		_ repository.MaterialMovementRepository,
		auditRepo repository.AuditRepository,
	) error {
		op, err := opRepo.GetForUpdate(operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if op.Estado == domop.EstadoAnulada || op.Estado == domop.EstadoPagada {
			return domain.ErrIllegalEdit
		}
		if newLines != nil && op.StockComprometido {
			return domain.ErrIllegalEdit
		}

		if in.Costo != nil {
			if err := domop.ValidateCost(*in.Costo, op.Abonado); err != nil {
				return err
			}
			op.Costo = in.Costo
		}
		if in.Descripcion != nil {
			op.Descripcion = *in.Descripcion
		}
		if in.FechaEntregaEstimada != nil {
			op.FechaEntregaEstimada = in.FechaEntregaEstimada
		}
		if newLines != nil {
			if err := opRepo.ReplaceLines(op.ID, newLines); err != nil {
				return err
			}
			op.Lines = newLines
		}

		now := time.Now()
		op.UpdatedAt = now
		if err := opRepo.Update(op); err != nil {
			return err
		}
		if err := auditRepo.Create(&entity.AuditEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Accion:    entity.AccionActualizar,
			Entidad:   "operation",
			EntidadID: op.ID,
			Fecha:     now,
		}); err != nil {
			return err
		}
		result = op
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOperationResponse(result, nil), nil
}
