package operation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jfcastano/taller-api/internal/application/dto"
	"github.com/jfcastano/taller-api/internal/domain"
	"github.com/jfcastano/taller-api/internal/domain/entity"
	dommat "github.com/jfcastano/taller-api/internal/domain/material"
	domop "github.com/jfcastano/taller-api/internal/domain/operation"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// Transition cambia el estado de una operación validando el grafo y aplicando
// los efectos de inventario en la misma transacción:
//   - entrar a en_proceso descuenta los materiales de todas las líneas
//     (todo-o-nada; ErrInsufficientStock revierte sin descuento parcial),
//   - entrar a anulada restaura exactamente lo descontado,
//   - entrar a pagada exige abonado >= costo.
func (uc *UseCase) Transition(ctx context.Context, operationID, target, userID string) (*dto.OperationResponse, error) {
	if !domop.IsValid(target) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Operation
	err := uc.txRunner.Run(ctx, func(
		opRepo repository.OperationRepository,
		materialRepo repository.MaterialRepository,
		movRepo repository.MaterialMovementRepository,
		auditRepo repository.AuditRepository,
	) error {
		op, err := opRepo.GetForUpdate(operationID)
		if err != nil {
			return err
		}
		if op == nil {
			return domain.ErrNotFound
		}
		if !domop.CanTransition(op.Estado, target) {
			return domain.ErrIllegalTransition
		}
		if target == domop.EstadoPagada {
			if err := domop.CanMarkPaid(op.Costo, op.Abonado); err != nil {
				return err
			}
		}

		now := time.Now()

		if domop.CommitsStock(target) && !op.StockComprometido {
			if err := uc.commitStock(op, materialRepo, movRepo, userID, now); err != nil {
				return err
			}
			op.StockComprometido = true
		}
		if target == domop.EstadoAnulada && op.StockComprometido {
			if err := uc.restoreStock(op, materialRepo, movRepo, userID, now); err != nil {
				return err
			}
			op.StockComprometido = false
		}

		previo := op.Estado
		op.Estado = target
		op.UpdatedAt = now
		if err := opRepo.Update(op); err != nil {
			return err
		}
		if err := auditRepo.Create(&entity.AuditEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Accion:    entity.AccionCambioEstado,
			Entidad:   "operation",
			EntidadID: op.ID,
			Detalle:   fmt.Sprintf("%s -> %s", previo, target),
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

	uc.log.Info().Str("operation_id", result.ID).Str("estado", result.Estado).
		Msg("transición aplicada")
	uc.notifyEstado(ctx, result)

	return toOperationResponse(result, nil), nil
}

// commitStock descuenta los materiales requeridos por las líneas de la
// operación. Estrategia en dos fases sobre filas bloqueadas en orden
// ascendente de id: primero se verifica la suficiencia de todos los
// materiales, después se aplican todas las mutaciones.
func (uc *UseCase) commitStock(
	op *entity.Operation,
	materialRepo repository.MaterialRepository,
	movRepo repository.MaterialMovementRepository,
	userID string,
	now time.Time,
) error {
	plan, err := uc.buildPlan(op)
	if err != nil {
		return err
	}
	if plan.Empty() {
		return nil
	}

	locked, err := materialRepo.GetForUpdateByIDs(plan.MaterialIDs())
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Material, len(locked))
	for _, m := range locked {
		byID[m.ID] = m
	}

	// Fase 1: verificar todo antes de mutar nada.
	if err := plan.Verify(byID); err != nil {
		return err
	}

	// Fase 2: aplicar todas las mutaciones dentro de la misma tx.
	for _, id := range plan.MaterialIDs() {
		m := byID[id]
		cantidad := plan.Required(id)
		nuevo := m.Stock - cantidad
		if err := materialRepo.UpdateStock(id, nuevo); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.MaterialMovement{
			ID:            uuid.New().String(),
			MaterialID:    id,
			Tipo:          entity.MovimientoConsumo,
			Cantidad:      -cantidad,
			StockAnterior: m.Stock,
			StockNuevo:    nuevo,
			OperationID:   op.ID,
			UserID:        userID,
			Fecha:         now,
		}); err != nil {
			return err
		}
		m.Stock = nuevo
	}
	return nil
}

// restoreStock devuelve al inventario exactamente lo que la operación
// consumió, releyendo sus movimientos de consumo del libro. La lista de
// materiales del producto puede haber cambiado desde el descuento; el libro
// es la fuente de verdad de lo que salió de bodega, no el plan recalculado.
func (uc *UseCase) restoreStock(
	op *entity.Operation,
	materialRepo repository.MaterialRepository,
	movRepo repository.MaterialMovementRepository,
	userID string,
	now time.Time,
) error {
	movs, err := movRepo.ListByOperation(op.ID)
	if err != nil {
		return err
	}
	consumido := make(map[string]int)
	for _, mov := range movs {
		if mov.Tipo == entity.MovimientoConsumo {
			consumido[mov.MaterialID] += -mov.Cantidad
		}
	}
	if len(consumido) == 0 {
		return nil
	}

	ids := make([]string, 0, len(consumido))
	for id := range consumido {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	locked, err := materialRepo.GetForUpdateByIDs(ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Material, len(locked))
	for _, m := range locked {
		byID[m.ID] = m
	}
	if len(byID) != len(ids) {
		return domain.ErrInvalidReference
	}

	for _, id := range ids {
		m := byID[id]
		cantidad := consumido[id]
		nuevo := m.Stock + cantidad
		if err := materialRepo.UpdateStock(id, nuevo); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.MaterialMovement{
			ID:            uuid.New().String(),
			MaterialID:    id,
			Tipo:          entity.MovimientoRestauracion,
			Cantidad:      cantidad,
			StockAnterior: m.Stock,
			StockNuevo:    nuevo,
			OperationID:   op.ID,
			UserID:        userID,
			Fecha:         now,
		}); err != nil {
			return err
		}
		m.Stock = nuevo
	}
	return nil
}

// buildPlan agrega los requerimientos de material de todas las líneas cuyo
// producto consume materiales (cantidad por unidad x cantidad encargada).
func (uc *UseCase) buildPlan(op *entity.Operation) (*dommat.ReservationPlan, error) {
	plan := dommat.NewReservationPlan()
	for _, l := range op.Lines {
		product, err := uc.productRepo.GetByID(l.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidReference
		}
		if !product.ConsumeMateriales {
			continue
		}
		reqs, err := uc.productRepo.GetMateriales(l.ProductID)
		if err != nil {
			return nil, err
		}
		for _, r := range reqs {
			plan.Add(r.MaterialID, r.CantidadPorUnidad*l.Cantidad)
		}
	}
	return plan, nil
}

// notifyEstado avisa al cliente del cambio de estado. Un fallo aquí no
// revierte la transición: se registra y se continúa.
func (uc *UseCase) notifyEstado(ctx context.Context, op *entity.Operation) {
	if uc.notifier == nil {
		return
	}
	cliente, err := uc.clienteRepo.GetByID(op.ClienteID)
	if err != nil || cliente == nil {
		uc.log.Warn().Str("operation_id", op.ID).Msg("cliente no disponible para notificar")
		return
	}
	if err := uc.notifier.OperationStatusChanged(ctx, cliente, op); err != nil {
		uc.log.Warn().Err(err).Str("operation_id", op.ID).Msg("notificación fallida")
	}
}
