package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// Create registra una operación nueva. Valida cliente y productos
// (ErrInvalidReference si alguno no existe o está inactivo) y el abono
// inicial contra el costo. El stock NO se toca aquí: el compromiso de
// materiales ocurre al entrar a en_proceso.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateOperationRequest) (*dto.OperationResponse, error) {
	estado := in.EstadoInicial
	if estado == "" {
		estado = domop.EstadoPendiente
	}
	if !domop.ValidInitial(estado) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrInvalidReference
	}

	now := time.Now()
	op := &entity.Operation{
		ID:                   uuid.New().String(),
		ClienteID:            in.ClienteID,
		UserID:               userID,
		Estado:               estado,
		Descripcion:          in.Descripcion,
		FechaEntregaEstimada: in.FechaEntregaEstimada,
		Abonado:              decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
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
		op.Lines = append(op.Lines, entity.OperationLine{
			ID:          uuid.New().String(),
			OperationID: op.ID,
			ProductID:   l.ProductID,
			Cantidad:    l.Cantidad,
			Detalle:     l.Detalle,
		})
	}

	if in.Costo != nil {
		if err := domop.ValidateCost(*in.Costo, decimal.Zero); err != nil {
			return nil, err
		}
		op.Costo = in.Costo
	}

	var abono *entity.Abono
	if in.AbonoInicial != nil && !in.AbonoInicial.IsZero() {
		if err := domop.ValidateDeposit(op.Costo, decimal.Zero, *in.AbonoInicial); err != nil {
			// En la creación el abono inicial es parte de la entrada: si
			// excede el costo es un monto inválido, no un sobrepago sobre
			// una operación ya existente.
			if err == domain.ErrOverPayment {
				return nil, domain.ErrInvalidAmount
			}
			return nil, err
		}
		op.Abonado = *in.AbonoInicial
		op.FechaPrimerAbono = &now
		abono = &entity.Abono{
			ID:          uuid.New().String(),
			OperationID: op.ID,
			Monto:       *in.AbonoInicial,
			Fecha:       now,
			UserID:      userID,
		}
	}

	err = uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		_ repository.MaterialRepository,
		_ repository.MaterialMovementRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := opRepo.Create(op); err != nil {
			return err
		}
		if abono != nil {
			if err := opRepo.AddAbono(abono); err != nil {
				return err
			}
		}
		return auditRepo.Create(&entity.AuditEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Accion:    entity.AccionCrear,
			Entidad:   "operation",
			EntidadID: op.ID,
			Detalle:   fmt.Sprintf("estado inicial %s, %d líneas", op.Estado, len(op.Lines)),
			Fecha:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("operation_id", op.ID).Str("cliente_id", op.ClienteID).
		Str("estado", op.Estado).Msg("operación creada")

	var abonos []*entity.Abono
	if abono != nil {
		abonos = append(abonos, abono)
	}
	return toOperationResponse(op, abonos), nil
}
