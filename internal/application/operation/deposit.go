package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// PostDeposit registra un abono. Las reglas del libro de pagos se verifican
// sobre la fila bloqueada, antes de escribir: monto positivo, acumulado nunca
// mayor al costo cotizado. El primer abono exitoso fija fecha_primer_abono.
// No cambia el estado de la operación.
func (uc *UseCase) PostDeposit(ctx context.Context, operationID string, in dto.DepositRequest, userID string) (*dto.OperationResponse, error) {
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
		if err := domop.ValidateDeposit(op.Costo, op.Abonado, in.Monto); err != nil {
			return err
		}

		now := time.Now()
		op.Abonado = op.Abonado.Add(in.Monto)
		if op.FechaPrimerAbono == nil {
			op.FechaPrimerAbono = &now
		}
		op.UpdatedAt = now
		if err := opRepo.Update(op); err != nil {
			return err
		}
		if err := opRepo.AddAbono(&entity.Abono{
			ID:          uuid.New().String(),
			OperationID: op.ID,
			Monto:       in.Monto,
			Fecha:       now,
			UserID:      userID,
		}); err != nil {
			return err
		}
		if err := auditRepo.Create(&entity.AuditEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Accion:    entity.AccionAbono,
			Entidad:   "operation",
			EntidadID: op.ID,
			Detalle:   fmt.Sprintf("abono %s, acumulado %s", in.Monto.StringFixed(2), op.Abonado.StringFixed(2)),
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

	uc.log.Info().Str("operation_id", result.ID).
		Str("abonado", result.Abonado.StringFixed(2)).Msg("abono registrado")
	return toOperationResponse(result, nil), nil
}
